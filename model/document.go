package model

// Point is one measured sample: X is key-dip distance, Y is force.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is the root entity for one loaded dataset. The json tags are
// the measuring device's wire contract and must not change. All the
// `_data` fields are parallel arrays aligned by key slot; slot 0 holds the
// null sentinel so key numbers index the arrays directly.
type Document struct {
	PianoName         string `json:"pianoname"`
	NumKeys           string `json:"numkeys"`
	StartingNoteIndex int    `json:"startingnoteindex"`

	KeyNumber     []*int     `json:"keynumber_data"`
	XYValues      [][]Point  `json:"xyvalues_data"`
	TWWindow      [][]Point  `json:"twwindow_data,omitempty"`
	DownWeight    []*float64 `json:"downweight_data"`
	UpWeight      []*float64 `json:"upweight_data"`
	BalanceWeight []*float64 `json:"balanceweight_data"`
	Friction      []*float64 `json:"friction_data"`
	KeyDip        []*float64 `json:"keydip_data"`
}
