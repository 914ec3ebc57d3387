package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"pgngrid/internal/board"
	"pgngrid/internal/logging"
	"pgngrid/internal/pgn"
	"pgngrid/internal/storage"
	"pgngrid/internal/templates"
	"pgngrid/internal/viewer"
)

// DefaultMaxUpload bounds pasted and uploaded PGN text.
const DefaultMaxUpload = 8 << 20

// Handler contains dependencies for HTTP handlers
type Handler struct {
	Hub        *viewer.Hub
	Store      *storage.Store
	PieceTheme string
	MaxUpload  int64
}

// NewHandler creates a new handler instance. store may be nil.
func NewHandler(hub *viewer.Hub, store *storage.Store) *Handler {
	return &Handler{
		Hub:        hub,
		Store:      store,
		PieceTheme: board.DefaultPieceTheme,
		MaxUpload:  DefaultMaxUpload,
	}
}

// Routes registers every endpoint on a new router.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.HandlePage).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions", h.HandleNew).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", h.HandleState).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/pgn", h.HandleLoad).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/select/{game:[0-9]+}", h.HandleSelect).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/plies", h.HandlePlies).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/grid", h.HandleGrid).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/board", h.HandleBoard).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/orientation", h.HandleOrientation).Methods(http.MethodPost)
	api.HandleFunc("/documents", h.HandleDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id}", h.HandleDeleteDocument).Methods(http.MethodDelete)
	api.HandleFunc("/documents/{id}/sessions", h.HandleOpenDocument).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "not found"})
	})
	return r
}

// HandlePage serves the viewer page
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	templates.WriteIndexHTML(w, h.PieceTheme)
}

// HandleNew opens an empty viewer session
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	s := h.Hub.Create()
	WriteJSON(w, http.StatusCreated, map[string]any{"ok": true, "state": s.State()})
}

// HandleState returns the session snapshot
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "state": s.State()})
}

// HandleLoad ingests pasted text or an uploaded file and renders its first game
func (h *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	raw, source, err := h.readPGN(w, r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteJSON(w, http.StatusRequestEntityTooLarge, map[string]any{"ok": false, "error": fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit)})
		return
	}
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	c, err := s.Load(raw)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(c.Skipped) > 0 {
		logging.Infof("session %s: %d games skipped", s.ID, len(c.Skipped))
	}

	if id, err := h.Store.SaveDocument(r.Context(), source, c); err != nil {
		logging.Errorf("store document: %v", err)
	} else if id != uuid.Nil {
		s.SetDocument(id)
	}

	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "skipped": len(c.Skipped), "state": s.State()})
}

// HandleSelect renders another game of the loaded document
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	idx, _ := strconv.Atoi(mux.Vars(r)["game"])
	if err := s.Select(idx); err != nil {
		writeError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "state": s.State()})
}

// HandlePlies returns the ply list of the selected game
func (h *Handler) HandlePlies(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	st := s.State()
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "plies": st.Plies})
}

// HandleGrid returns one board configuration per ply
func (h *Handler) HandleGrid(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	st := s.State()
	cells := board.Grid(st.Plies, st.Orientation, h.PieceTheme)
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "cells": cells})
}

// HandleBoard moves the cursor (?ply=n or ?step=±n) and returns the big board view
func (h *Handler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	if v := q.Get("ply"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad ply"})
			return
		}
		s.Jump(n)
	} else if v := q.Get("step"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad step"})
			return
		}
		s.Step(n)
	}

	st := s.State()
	view, ok := board.Big(st.Plies, st.Current, st.Orientation, h.PieceTheme)
	if !ok {
		WriteJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "no moves"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "board": view})
}

// HandleOrientation flips the board orientation, or sets it when a side is given
func (h *Handler) HandleOrientation(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if side := r.FormValue("side"); side != "" {
		o, err := board.ParseOrientation(side)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": err.Error()})
			return
		}
		s.SetOrientation(o)
	} else {
		s.ToggleOrientation()
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "orientation": s.State().Orientation})
}

// HandleDocuments lists recently stored documents
func (h *Handler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Store.RecentDocuments(r.Context(), 20)
	if err != nil {
		writeError(w, err)
		return
	}
	type item struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Source    string `json:"source"`
		GameCount int    `json:"gameCount"`
	}
	out := make([]item, 0, len(docs))
	for _, d := range docs {
		out = append(out, item{ID: d.ID.String(), Title: d.Title, Source: d.Source, GameCount: d.GameCount})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "documents": out})
}

// HandleOpenDocument opens a stored document in a new session
func (h *Handler) HandleOpenDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad document id"})
		return
	}
	games, err := h.Store.LoadDocument(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	s := h.Hub.Create()
	if err := s.Adopt(id, games); err != nil {
		writeError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"ok": true, "state": s.State()})
}

// HandleDeleteDocument removes a stored document
func (h *Handler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad document id"})
		return
	}
	if err := h.Store.DeleteDocument(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*viewer.Session, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad session id"})
		return nil, false
	}
	s, ok := h.Hub.Get(id)
	if !ok {
		WriteJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "unknown session"})
		return nil, false
	}
	s.Touch()
	return s, true
}

// readPGN takes the PGN text from a multipart "file" field, a "pgn" form
// field or the raw request body, in that order.
func (h *Handler) readPGN(w http.ResponseWriter, r *http.Request) (text, source string, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	ct := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(h.MaxUpload); err != nil {
			return "", "", fmt.Errorf("bad form: %w", err)
		}
		if f, hdr, err := r.FormFile("file"); err == nil {
			defer f.Close()
			b, err := io.ReadAll(f)
			if err != nil {
				return "", "", err
			}
			return pgn.DecodeText(b), hdr.Filename, nil
		}
		return r.FormValue("pgn"), "paste", nil
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return "", "", fmt.Errorf("bad form: %w", err)
		}
		return r.PostFormValue("pgn"), "paste", nil
	default:
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return "", "", err
		}
		return pgn.DecodeText(b), "paste", nil
	}
}

func writeError(w http.ResponseWriter, err error) {
	var re *pgn.ReplayError
	switch {
	case errors.Is(err, pgn.ErrEmptyInput), errors.Is(err, pgn.ErrNoValidGames):
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{"ok": false, "error": err.Error()})
	case errors.Is(err, viewer.ErrNoGame), errors.Is(err, storage.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": err.Error()})
	case errors.Is(err, viewer.ErrStale):
		WriteJSON(w, http.StatusConflict, map[string]any{"ok": false, "error": err.Error()})
	case errors.Is(err, storage.ErrDisabled):
		WriteJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "error": err.Error()})
	case errors.As(err, &re):
		WriteJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": err.Error()})
	default:
		logging.Errorf("request failed: %v", err)
		WriteJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "internal error"})
	}
}
