package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/state"
	"github.com/gorilla/mux"
)

func HandleGetState(store state.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := store.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	}
}

func HandleGetPiece(store state.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pieceID := strings.ToUpper(mux.Vars(r)["pieceID"])

		snapshot, err := store.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}

		piece := snapshot.Piece(pieceID)
		if piece == nil {
			http.Error(w, "Piece not found", http.StatusNotFound)
			return
		}
		writeJSON(w, piece)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
