package internal

import (
	"collab-hub/observability"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ErrorCounter exposes the per-operation failure counts of the error sink.
type ErrorCounter interface {
	Counts() []observability.OpCount
}

// NewHealthRouter serves liveness and the process debug figures.
func NewHealthRouter(errs ErrorCounter) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/debug/process", func(w http.ResponseWriter, _ *http.Request) {
		stats, err := observability.CollectProcessStats()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats)
	})
	r.Get("/debug/errors", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, errs.Counts())
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
