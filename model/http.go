package model

// KeyRecord is one row of the per-key report, in valid-index order.
// Metric strings come from the formatter so unmeasured keys show "--".
type KeyRecord struct {
	KeyNumber     int    `json:"key_number"`
	Note          string `json:"note"`
	Black         bool   `json:"black"`
	DownWeight    string `json:"down_weight"`
	UpWeight      string `json:"up_weight"`
	BalanceWeight string `json:"balance_weight"`
	Friction      string `json:"friction"`
	KeyDip        string `json:"key_dip"`
}

type DocumentSummary struct {
	PianoName string               `json:"piano_name"`
	NumKeys   string               `json:"num_keys"`
	ValidKeys int                  `json:"valid_keys"`
	Warnings  []ConsistencyWarning `json:"warnings"`
	Metadata  *PianoMetadata       `json:"metadata,omitempty"`
}

// CurveResponse carries one key's split motion curve for the external
// charting frontend.
type CurveResponse struct {
	KeyNumber  int     `json:"key_number"`
	Note       string  `json:"note"`
	Downstroke []Point `json:"downstroke"`
	Upstroke   []Point `json:"upstroke"`
	Window     []Point `json:"window,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
