package document

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	"github.com/abrantigan/KMD-Display/constants"
	"github.com/abrantigan/KMD-Display/model"
	"github.com/abrantigan/KMD-Display/util"
)

// requiredFields in schema order; the first absent one is the one named
// in the error. twwindow_data and numkeys are optional on the wire.
var requiredFields = []string{
	"pianoname",
	"startingnoteindex",
	"keynumber_data",
	"xyvalues_data",
	"downweight_data",
	"upweight_data",
	"balanceweight_data",
	"friction_data",
	"keydip_data",
}

// Parse is the validating parse and the only place raw device JSON is
// examined; everything downstream works with the typed Document. A
// missing required field or a malformed key-number sequence aborts the
// load. Cross-array lengths and the balance/friction identity are checked
// separately by CheckConsistency so noisy data still loads.
func Parse(data []byte) (*model.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, &model.MissingFieldError{Field: field}
		}
	}

	var keyNumbers []json.RawMessage
	if err := json.Unmarshal(raw["keynumber_data"], &keyNumbers); err != nil {
		return nil, &model.ShapeError{Field: "keynumber_data", Reason: "not a sequence"}
	}
	if len(keyNumbers) < constants.MinKeySlots {
		return nil, &model.ShapeError{
			Field:  "keynumber_data",
			Reason: fmt.Sprintf("%v entries, need at least %v", len(keyNumbers), constants.MinKeySlots),
		}
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ValidIndices returns the slot positions holding a measured key, in
// ascending order: a slot is valid iff both its key number and its motion
// curve are present. This is the canonical iteration order for every
// per-key report, table, or aggregate.
func ValidIndices(doc *model.Document) []int {
	var res []int
	for i := range doc.KeyNumber {
		if doc.KeyNumber[i] == nil {
			continue
		}
		if i >= len(doc.XYValues) || doc.XYValues[i] == nil {
			continue
		}
		res = append(res, i)
	}
	return res
}

// CheckConsistency reports advisory problems in the source data: parallel
// arrays whose lengths disagree with keynumber_data, and valid slots
// where the stored balance weight or friction disagrees with the down/up
// weights they derive from. The device wrote those fields itself, so they
// are verified, never recomputed; warnings never block a load.
func CheckConsistency(doc *model.Document) []model.ConsistencyWarning {
	var warnings []model.ConsistencyWarning

	n := len(doc.KeyNumber)
	lengths := map[string]int{
		"xyvalues_data":      len(doc.XYValues),
		"downweight_data":    len(doc.DownWeight),
		"upweight_data":      len(doc.UpWeight),
		"balanceweight_data": len(doc.BalanceWeight),
		"friction_data":      len(doc.Friction),
		"keydip_data":        len(doc.KeyDip),
	}
	for _, field := range util.GetKeysSorted(lengths) {
		if lengths[field] != n {
			warnings = append(warnings, model.ConsistencyWarning{
				Slot:    -1,
				Field:   field,
				Message: fmt.Sprintf("%v entries where keynumber_data has %v", lengths[field], n),
			})
		}
	}

	for _, i := range ValidIndices(doc) {
		if i >= len(doc.DownWeight) || i >= len(doc.UpWeight) {
			continue
		}
		down, up := doc.DownWeight[i], doc.UpWeight[i]
		if down == nil || up == nil {
			continue
		}
		if i < len(doc.BalanceWeight) && doc.BalanceWeight[i] != nil {
			want := (*down + *up) / 2
			if math.Abs(*doc.BalanceWeight[i]-want) > constants.WeightTolerance {
				warnings = append(warnings, model.ConsistencyWarning{
					Slot:    i,
					Field:   "balanceweight_data",
					Want:    want,
					Got:     *doc.BalanceWeight[i],
					Message: "balance weight disagrees with (down+up)/2",
				})
			}
		}
		if i < len(doc.Friction) && doc.Friction[i] != nil {
			want := (*down - *up) / 2
			if math.Abs(*doc.Friction[i]-want) > constants.WeightTolerance {
				warnings = append(warnings, model.ConsistencyWarning{
					Slot:    i,
					Field:   "friction_data",
					Want:    want,
					Got:     *doc.Friction[i],
					Message: "friction disagrees with (down-up)/2",
				})
			}
		}
	}

	return warnings
}
