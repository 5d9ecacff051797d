// Package server exposes the persisted diagram document over a small HTTP
// API. It is a collaborator outside the editing core: every request goes
// through the state container's operations and read models, never around
// them.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/flowcanvas/flowcanvas/pkg/codec"
	"github.com/flowcanvas/flowcanvas/pkg/layout"
	"github.com/flowcanvas/flowcanvas/pkg/persist"
	"github.com/flowcanvas/flowcanvas/pkg/store"
)

// Server serves the document API. The core follows a single-threaded
// mutation model, so the server serializes all store access behind one
// mutex.
type Server struct {
	mu     sync.Mutex
	store  *store.Store
	kv     persist.KV
	writer *persist.Writer
	engine *layout.GraphvizEngine
	logger *log.Logger
}

// New creates a server around an existing store and persistence medium, and
// wires the store's subscriber to the coalescing writer so every durable
// mutation schedules a save.
func New(st *store.Store, kv persist.KV, writer *persist.Writer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		store:  st,
		kv:     kv,
		writer: writer,
		engine: &layout.GraphvizEngine{},
		logger: logger,
	}
	st.Subscribe(s.scheduleSave)
	return s
}

// scheduleSave encodes the current document and hands it to the writer.
// Encoding failures are logged and dropped: persistence must never fault
// back into interactive operations.
func (s *Server) scheduleSave() {
	data, err := codec.Encode(s.store.Document())
	if err != nil {
		s.logger.Error("encode document for save", "err", err)
		return
	}
	s.writer.Schedule(data)
}

// LoadDocument restores the persisted document into the store, if one
// exists. A malformed payload is rejected wholesale and the store is left on
// its defaults - fail-closed, never partially applied.
func (s *Server) LoadDocument(ctx context.Context) error {
	data, ok, err := s.kv.Get(ctx, persist.DocumentKey)
	if err != nil {
		s.logger.Warn("load document", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	doc, err := codec.Decode(data)
	if err != nil {
		s.logger.Warn("stored document is invalid, starting empty", "err", err)
		return nil
	}
	s.store.ReplaceDocument(doc)
	return nil
}

// Router builds the chi router for the API.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/document", s.handleGetDocument)
		r.Put("/document", s.handlePutDocument)
		r.Delete("/document", s.handleDeleteDocument)
		r.Get("/positions", s.handleGetPositions)
	})
	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts it
// down gracefully and flushes pending writes.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return s.writer.Close()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
