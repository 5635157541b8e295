package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/base64"

	json "github.com/goccy/go-json"

	"github.com/abrantigan/KMD-Display/document"
	"github.com/abrantigan/KMD-Display/model"
)

// The marker pair delimits the embedded dataset. Detection keys on the
// markers alone, never on the surrounding document structure, so
// snapshots stay readable after the viewer markup evolves.
const (
	beginMarker = "<!--kmd-snapshot:v1:"
	endMarker   = ":kmd-snapshot-->"
)

//go:embed viewer.html
var viewerTemplate []byte

// Template returns the pristine viewer markup the codec splices into,
// captured at build time. Every call returns a fresh copy so one export
// can never leak state into the next.
func Template() []byte {
	return append([]byte(nil), viewerTemplate...)
}

// Encode serializes doc to canonical JSON, wraps it in an ASCII-safe
// base64 block, and splices the block into template. An existing block is
// replaced so re-exporting a snapshot is idempotent; otherwise the block
// goes just before </body>, or at the end when there is no body close
// tag. The template is never modified in place.
func Encode(template []byte, doc *model.Document) ([]byte, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	block := []byte(beginMarker + base64.StdEncoding.EncodeToString(payload) + endMarker)

	if begin, end, ok := findBlock(template); ok {
		var res []byte
		res = append(res, template[:begin]...)
		res = append(res, block...)
		res = append(res, template[end:]...)
		return res, nil
	}
	if i := bytes.LastIndex(template, []byte("</body>")); i >= 0 {
		var res []byte
		res = append(res, template[:i]...)
		res = append(res, block...)
		res = append(res, '\n')
		res = append(res, template[i:]...)
		return res, nil
	}
	res := append([]byte(nil), template...)
	res = append(res, '\n')
	res = append(res, block...)
	return res, nil
}

// Detect scans markup for an embedded dataset. No marker returns
// (nil, nil) so the caller proceeds to interactive loading. A present but
// corrupt payload returns a DecodeError and never panics; the payload
// that does decode goes through the validating parse, so a detected
// document is a validated document.
func Detect(markup []byte) (*model.Document, error) {
	begin, end, ok := findBlock(markup)
	if !ok {
		return nil, nil
	}
	encoded := bytes.TrimSpace(markup[begin+len(beginMarker) : end-len(endMarker)])
	payload, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, &model.DecodeError{Reason: "payload is not valid base64", Cause: err}
	}
	doc, err := document.Parse(payload)
	if err != nil {
		return nil, &model.DecodeError{Reason: "payload is not a valid document", Cause: err}
	}
	return doc, nil
}

// findBlock returns the bounds of the whole marker region, end exclusive.
func findBlock(markup []byte) (begin, end int, ok bool) {
	begin = bytes.Index(markup, []byte(beginMarker))
	if begin < 0 {
		return 0, 0, false
	}
	rel := bytes.Index(markup[begin:], []byte(endMarker))
	if rel < 0 {
		return 0, 0, false
	}
	return begin, begin + rel + len(endMarker), true
}
