package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/choralex/constants"
	"github.com/jsphweid/choralex/export"
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/pitch"
	"github.com/jsphweid/choralex/schedule"
	"github.com/jsphweid/choralex/sequence"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the export API",
	Long:  `Serves the export API the analysis frontend calls`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func decodeBundle(r *http.Request) (model.ExportRequestBody, error) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return model.ExportRequestBody{}, err
	}
	var input model.ExportRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		return model.ExportRequestBody{}, err
	}
	return input, nil
}

func wireSchedule(spans []schedule.NoteSpan) []model.WireNoteSpan {
	res := make([]model.WireNoteSpan, 0, len(spans))
	for _, s := range spans {
		res = append(res, model.WireNoteSpan{
			Voice:    s.Voice.String(),
			Pitch:    pitch.Format(s.Pitch),
			Start:    s.Start,
			Duration: s.Duration,
		})
	}
	return res
}

// HandleExport produces every artifact for one posted bundle. Exported so
// the e2e suite can drive it through httptest.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBundle(r)
	if err != nil {
		writeError(w, 400, "Could not decode bundle: "+err.Error())
		return
	}

	h, rhythm, meta := toBundle(input)
	arts := export.NewExporter().ExportAll(h, rhythm, meta)

	res := model.ExportResponse{
		MusicXML:      arts.MusicXML,
		EventSequence: sequence.Wire(arts.Sequence),
		SVG:           arts.SVG,
		Text:          arts.Text,
		Schedule:      wireSchedule(arts.Timeline),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleMusicXML returns just the notation document, the shape the
// frontend's download button wants.
func HandleMusicXML(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBundle(r)
	if err != nil {
		writeError(w, 400, "Could not decode bundle: "+err.Error())
		return
	}

	h, rhythm, meta := toBundle(input)
	arts := export.NewExporter().ExportAll(h, rhythm, meta)
	w.Header().Set("Content-Type", "application/vnd.recordare.musicxml+xml")
	fmt.Fprint(w, arts.MusicXML)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"message": "choralex is running",
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/export", HandleExport).Methods("POST")
	router.HandleFunc("/export/musicxml", HandleMusicXML).Methods("POST")
	router.HandleFunc("/health", HandleHealth).Methods("GET")

	// the frontend runs on its own origin
	handler := cors.AllowAll().Handler(router)

	addr := constants.GetAddr()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
