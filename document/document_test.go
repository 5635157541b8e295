package document

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"github.com/abrantigan/KMD-Display/model"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

// makeGrandFixture lays a dataset out the way the device does: slot 0 is
// the null sentinel, slots 1..75 each hold one measured key, and balance
// and friction carry the values the device derived itself, with a little
// noise inside the tolerance.
func makeGrandFixture() *model.Document {
	doc := &model.Document{
		PianoName:         "Fazioli F278 #124",
		NumKeys:           "88",
		StartingNoteIndex: 0,
		KeyNumber:         []*int{nil},
		XYValues:          [][]model.Point{nil},
		TWWindow:          [][]model.Point{nil},
		DownWeight:        []*float64{nil},
		UpWeight:          []*float64{nil},
		BalanceWeight:     []*float64{nil},
		Friction:          []*float64{nil},
		KeyDip:            []*float64{nil},
	}
	for k := 1; k <= 75; k++ {
		down := 55.0 - float64(k)*0.2
		up := 22.0 + float64(k)*0.1
		noise := math.Sin(float64(k)) * 0.004
		doc.KeyNumber = append(doc.KeyNumber, ptrI(k))
		doc.XYValues = append(doc.XYValues, []model.Point{
			{X: 0, Y: down + 5},
			{X: 5.1, Y: down},
			{X: 9.8, Y: down - 3},
			{X: 4.9, Y: up},
			{X: 0.2, Y: up + 1},
		})
		doc.TWWindow = append(doc.TWWindow, []model.Point{{X: 1, Y: 0}, {X: 9, Y: 0}})
		doc.DownWeight = append(doc.DownWeight, ptrF(down))
		doc.UpWeight = append(doc.UpWeight, ptrF(up))
		doc.BalanceWeight = append(doc.BalanceWeight, ptrF((down+up)/2+noise))
		doc.Friction = append(doc.Friction, ptrF((down-up)/2-noise))
		doc.KeyDip = append(doc.KeyDip, ptrF(9.8))
	}
	return doc
}

func marshalFixture(t *testing.T, doc *model.Document) []byte {
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestParseAcceptsWellFormedDocument(t *testing.T) {
	fixture := makeGrandFixture()
	doc, err := Parse(marshalFixture(t, fixture))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(fixture, doc)
}

func TestParseNamesFirstMissingRequiredField(t *testing.T) {
	for _, field := range requiredFields {
		t.Run(field, func(t *testing.T) {
			var raw map[string]json.RawMessage
			err := json.Unmarshal(marshalFixture(t, makeGrandFixture()), &raw)
			assert.NoError(t, err)
			delete(raw, field)
			data, err := json.Marshal(raw)
			assert.NoError(t, err)

			_, err = Parse(data)
			var missing *model.MissingFieldError
			assert.ErrorAs(t, err, &missing)
			assert.Equal(t, field, missing.Field)
		})
	}
}

func TestParseAllowsMissingTouchweightWindow(t *testing.T) {
	fixture := makeGrandFixture()
	fixture.TWWindow = nil
	doc, err := Parse(marshalFixture(t, fixture))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Nil(doc.TWWindow)
}

func TestParseRejectsNonSequenceKeyNumbers(t *testing.T) {
	var raw map[string]json.RawMessage
	err := json.Unmarshal(marshalFixture(t, makeGrandFixture()), &raw)
	assert.NoError(t, err)
	raw["keynumber_data"] = json.RawMessage(`"not a sequence"`)
	data, err := json.Marshal(raw)
	assert.NoError(t, err)

	_, err = Parse(data)
	var shape *model.ShapeError
	assert.ErrorAs(t, err, &shape)
	assert.Equal(t, "keynumber_data", shape.Field)
}

func TestParseRejectsTooFewKeySlots(t *testing.T) {
	var raw map[string]json.RawMessage
	err := json.Unmarshal(marshalFixture(t, makeGrandFixture()), &raw)
	assert.NoError(t, err)
	raw["keynumber_data"] = json.RawMessage(`[null]`)
	data, err := json.Marshal(raw)
	assert.NoError(t, err)

	_, err = Parse(data)
	var shape *model.ShapeError
	assert.ErrorAs(t, err, &shape)
}

func TestParseRejectsNonObjectInput(t *testing.T) {
	_, err := Parse([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestValidIndicesOnFixture(t *testing.T) {
	want := make([]int, 0, 75)
	for i := 1; i <= 75; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, ValidIndices(makeGrandFixture()))
}

func TestValidIndicesRequireBothKeyNumberAndCurve(t *testing.T) {
	doc := makeGrandFixture()
	doc.KeyNumber[10] = nil // key number lost
	doc.XYValues[20] = nil  // curve lost

	indices := ValidIndices(doc)
	assert := assert.New(t)
	assert.Len(indices, 73)
	assert.NotContains(indices, 10)
	assert.NotContains(indices, 20)
}

func TestCheckConsistencyAcceptsDeviceNoise(t *testing.T) {
	// the fixture's balance/friction noise stays inside the tolerance, so
	// the derived identity holds for every valid slot
	assert.Empty(t, CheckConsistency(makeGrandFixture()))
}

func TestCheckConsistencyFlagsBrokenIdentity(t *testing.T) {
	doc := makeGrandFixture()
	*doc.BalanceWeight[3] += 0.5
	*doc.Friction[9] -= 0.2

	warnings := CheckConsistency(doc)
	assert := assert.New(t)
	assert.Len(warnings, 2)
	assert.Equal(3, warnings[0].Slot)
	assert.Equal("balanceweight_data", warnings[0].Field)
	assert.Equal(9, warnings[1].Slot)
	assert.Equal("friction_data", warnings[1].Field)
}

func TestCheckConsistencyDoesNotCorrectData(t *testing.T) {
	doc := makeGrandFixture()
	stored := *doc.BalanceWeight[5] + 1.0
	*doc.BalanceWeight[5] = stored

	CheckConsistency(doc)
	assert.Equal(t, stored, *doc.BalanceWeight[5])
}

func TestCheckConsistencyFlagsUnequalLengths(t *testing.T) {
	doc := makeGrandFixture()
	doc.KeyDip = doc.KeyDip[:50]

	warnings := CheckConsistency(doc)
	assert := assert.New(t)
	assert.Len(warnings, 1)
	assert.Equal(-1, warnings[0].Slot)
	assert.Equal("keydip_data", warnings[0].Field)
}

func TestCheckConsistencySkipsSlotsMissingWeights(t *testing.T) {
	doc := makeGrandFixture()
	doc.DownWeight[7] = nil

	// no down weight means the identity can't be checked for that slot
	assert.Empty(t, CheckConsistency(doc))
}
