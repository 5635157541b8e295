package audition

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/abrantigan/KMD-Display/document"
	"github.com/abrantigan/KMD-Display/keymath"
	"github.com/abrantigan/KMD-Display/model"
)

const (
	ticksPerQuarter = 960

	// one eighth note per key keeps an 88-key sweep under a minute
	ticksPerKey = ticksPerQuarter / 2

	velocity = 96
)

// Create builds a one-track standard MIDI file playing every measured key
// in canonical index order, so a technician can audibly confirm which
// keys carry data before studying the curves. Unmeasured slots are simply
// skipped, which makes gaps easy to hear.
func Create(doc *model.Document) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(doc.PianoName))
	track.Add(0, smf.MetaTempo(120))
	for _, i := range document.ValidIndices(doc) {
		key := keymath.MidiNote(*doc.KeyNumber[i] + doc.StartingNoteIndex)
		track.Add(0, midi.NoteOn(0, key, velocity))
		track.Add(ticksPerKey, midi.NoteOff(0, key))
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}
