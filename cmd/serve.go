package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/export"
	"github.com/JamesXYZT/lstm-melody/melody"
	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// artifactMu guards artifact and artifactMtime: the debounced reload runs on
// a timer goroutine while handlers read on request goroutines
var artifactMu sync.RWMutex
var artifact model.Artifact
var artifactMtime time.Time
var reloadDebounced = debounce.New(500 * time.Millisecond)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the exported model and the codec over HTTP",
	Long:  `Serves the exported model and the codec over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func artifactPath() string {
	return filepath.Join(constants.GetOutputDir(), "model.json")
}

func LoadServeFiles() {
	loaded, err := export.Read(artifactPath())
	if err != nil {
		panic("Could not load artifact: " + err.Error())
	}

	artifactMu.Lock()
	defer artifactMu.Unlock()
	artifact = loaded
	if info, err := os.Stat(artifactPath()); err == nil {
		artifactMtime = info.ModTime()
	}
}

// training rewrites the artifact in place; pick the new one up without a
// restart, coalescing the reloads while the file is still being written
func maybeReloadArtifact() {
	info, err := os.Stat(artifactPath())
	if err != nil {
		return
	}
	mtime := info.ModTime()

	artifactMu.RLock()
	stale := mtime.After(artifactMtime)
	artifactMu.RUnlock()
	if !stale {
		return
	}

	reloadDebounced(func() {
		loaded, err := export.Read(artifactPath())
		if err != nil {
			fmt.Printf("Could not reload artifact: %v\n", err)
			return
		}
		artifactMu.Lock()
		artifact = loaded
		artifactMtime = mtime
		artifactMu.Unlock()
	})
}

func HandleModel(w http.ResponseWriter, r *http.Request) {
	maybeReloadArtifact()

	artifactMu.RLock()
	current := artifact
	artifactMu.RUnlock()
	json.NewEncoder(w).Encode(current)
}

func HandleEncode(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.EncodeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		http.Error(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	seq, err := melody.Encode(input.Timeline)
	if err != nil {
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}
	json.NewEncoder(w).Encode(model.EncodeResponse{Events: seq})
}

func HandleDecode(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.DecodeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		http.Error(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	frames := melody.Decode(input.Events)
	json.NewEncoder(w).Encode(model.DecodeResponse{Frames: frames})
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/model", HandleModel).Methods("GET")
	router.HandleFunc("/encode", HandleEncode).Methods("POST")
	router.HandleFunc("/decode", HandleDecode).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
