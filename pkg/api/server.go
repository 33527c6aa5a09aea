package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/cbodonnell/tangram/pkg/api/handlers"
	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/state"
	"github.com/gorilla/mux"
)

// DebugServer serves a read-only view of the puzzle state over HTTP.
type DebugServer struct {
	server *http.Server
}

type NewDebugServerOptions struct {
	// Addr is the listen address, e.g. 127.0.0.1:6061
	Addr  string
	Store state.SnapshotStore
}

func NewRouter(store state.SnapshotStore) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/state", handlers.HandleGetState(store)).Methods(http.MethodGet)
	r.HandleFunc("/pieces/{pieceID}", handlers.HandleGetPiece(store)).Methods(http.MethodGet)
	return r
}

func NewDebugServer(opts NewDebugServerOptions) *DebugServer {
	return &DebugServer{
		server: &http.Server{
			Addr:    opts.Addr,
			Handler: NewRouter(opts.Store),
		},
	}
}

// Start blocks serving requests until the server is stopped.
func (s *DebugServer) Start() {
	log.Info("Debug server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Debug server closed")
			return
		}
		log.Error("Debug server error: %v", err)
	}
}

func (s *DebugServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
