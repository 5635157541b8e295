package model

// PianoMetadata is the registry record for an instrument, keyed by piano
// name. All fields are optional on the registry side.
type PianoMetadata struct {
	Technician    string `json:"technician,omitempty"`
	Location      string `json:"location,omitempty"`
	LastRegulated uint   `json:"last_regulated,omitempty"`
}
