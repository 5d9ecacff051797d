package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/flowcanvas/flowcanvas/pkg/codec"
	ferrors "github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/layout"
	"github.com/flowcanvas/flowcanvas/pkg/persist"
	"github.com/flowcanvas/flowcanvas/pkg/position"
)

// maxPayloadBytes bounds uploaded documents.
const maxPayloadBytes = 8 << 20

// errorResponse is the JSON error body.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := string(ferrors.GetCode(err))
	if code == "" {
		code = string(ferrors.ErrCodeInternal)
	}
	writeJSON(w, status, errorResponse{Code: code, Error: ferrors.UserMessage(err)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleGetDocument returns the current durable state as a versioned
// payload.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, err := codec.Encode(s.store.Document())
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// handlePutDocument replaces the durable state with an uploaded payload.
// Validation is fail-closed: a rejected payload leaves the store untouched.
func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	doc, err := codec.Decode(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.mu.Lock()
	s.store.SaveSnapshot()
	s.store.ReplaceDocument(doc)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteDocument resets the store and removes the persisted payload.
// The reset notifies subscribers, which queues a coalesced save of the empty
// document; that pending write is cancelled so the deleted key cannot be
// recreated one delay later.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.store.ClearAll()
	s.writer.Cancel()
	s.mu.Unlock()

	if err := s.kv.Delete(r.Context(), persist.DocumentKey); err != nil {
		s.logger.Warn("delete persisted document", "err", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// positionsResponse carries composed final positions for every node and
// label the layout engine knows about.
type positionsResponse struct {
	Nodes  map[string]layout.Point `json:"nodes"`
	Labels map[string]layout.Point `json:"labels"`
}

// handleGetPositions computes base positions for the current flows and
// composes them with the stored overrides.
func (s *Server) handleGetPositions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc := s.store.Document()
	s.mu.Unlock()

	base, err := s.engine.Compute(r.Context(), doc.Flows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.mu.Lock()
	composer := position.NewComposer(base, s.store)
	resp := positionsResponse{
		Nodes:  map[string]layout.Point{},
		Labels: map[string]layout.Point{},
	}
	for _, id := range doc.NodeIDs() {
		if p, ok := composer.NodePosition(id); ok {
			resp.Nodes[id] = p
		}
		if p, ok := composer.LabelPosition(id); ok {
			resp.Labels[id] = p
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}
