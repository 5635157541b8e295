package cmd

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abrantigan/KMD-Display/constants"
	"github.com/abrantigan/KMD-Display/curve"
	"github.com/abrantigan/KMD-Display/db"
	"github.com/abrantigan/KMD-Display/document"
	"github.com/abrantigan/KMD-Display/keymath"
	"github.com/abrantigan/KMD-Display/model"
	"github.com/abrantigan/KMD-Display/snapshot"
)

// The loaded document is written once before the server starts and only
// read by handlers afterwards; a new dataset means a new process.
var (
	serveDoc      *model.Document
	serveWarnings []model.ConsistencyWarning
)

var serveDecimals int

func init() {
	serveCmd.Flags().IntVarP(&serveDecimals, "decimals", "d", 1, "fractional digits for metric values")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serves derived key data over HTTP",
	Long:  `Serves derived key data over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		LoadServeDocument(args[0])
		serve()
	},
}

// LoadServeDocument loads and validates the dataset the handlers will
// serve. Exposed for the e2e tests.
func LoadServeDocument(path string) {
	doc, err := LoadDocument(path)
	if err != nil {
		logrus.Fatalf("Could not load %v: %v", path, err)
	}
	serveDoc = doc
	serveWarnings = document.CheckConsistency(doc)
}

// NewRouter builds the API the external charting frontend consumes.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/document", HandleDocument).Methods("GET")
	router.HandleFunc("/keys", HandleKeys).Methods("GET")
	router.HandleFunc("/keys/{num}/curve", HandleCurve).Methods("GET")
	router.HandleFunc("/snapshot", HandleSnapshot).Methods("GET")
	return router
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Could not write response: %v", err)
	}
}

func HandleDocument(w http.ResponseWriter, r *http.Request) {
	summary := model.DocumentSummary{
		PianoName: serveDoc.PianoName,
		NumKeys:   serveDoc.NumKeys,
		ValidKeys: len(document.ValidIndices(serveDoc)),
		Warnings:  serveWarnings,
		Metadata:  db.GetPianoMetadata(serveDoc.PianoName),
	}
	if summary.Warnings == nil {
		summary.Warnings = []model.ConsistencyWarning{}
	}
	writeJSON(w, summary)
}

func HandleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, buildKeyRecords(serveDoc, serveDecimals))
}

// slotForKey finds the slot holding the requested key number. Slots and
// key numbers normally coincide, but only keynumber_data is authoritative.
func slotForKey(doc *model.Document, num int) int {
	for _, i := range document.ValidIndices(doc) {
		if *doc.KeyNumber[i] == num {
			return i
		}
	}
	return -1
}

func HandleCurve(w http.ResponseWriter, r *http.Request) {
	num, err := strconv.Atoi(mux.Vars(r)["num"])
	if err != nil {
		http.Error(w, "key number must be an integer", 400)
		return
	}
	slot := slotForKey(serveDoc, num)
	if slot < 0 {
		w.WriteHeader(404)
		writeJSON(w, model.ErrorResponse{Error: "no measured key with that number"})
		return
	}

	down, up := curve.Split(serveDoc.XYValues[slot])
	res := model.CurveResponse{
		KeyNumber:  num,
		Note:       keymath.NoteName(num + serveDoc.StartingNoteIndex),
		Downstroke: down,
		Upstroke:   up,
	}
	if slot < len(serveDoc.TWWindow) {
		res.Window = serveDoc.TWWindow[slot]
	}
	writeJSON(w, res)
}

func HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	markup, err := snapshot.Encode(loadTemplate(), serveDoc)
	if err != nil {
		http.Error(w, "could not encode snapshot", 500)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(markup)
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	addr := constants.GetListenAddr()
	logrus.Infof("Listening on %v", addr)
	logrus.Fatal(http.ListenAndServe(addr, handler))
}
