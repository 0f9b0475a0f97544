package server

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tilegrid/pkg/buildinfo"
	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/store"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Get().Version,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.Stats == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "stats are not enabled"))
		return
	}
	writeJSON(w, http.StatusOK, s.Stats.Snapshot())
}

// readOptions decodes pipeline options. An empty body yields zero options,
// which pick up the pipeline defaults.
func readOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	if err := decodeJSON(w, r, &opts); err != nil {
		if stderrors.Is(err, io.EOF) {
			return pipeline.Options{}, nil
		}
		return opts, err
	}
	return opts, nil
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := readOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, err := s.Runner.Layout(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	saved, err := s.Store.Save(r.Context(), l)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/layouts/"+saved.ID)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRender renders one format. With ?layout=<id> the stored layout is
// drawn and the body only supplies render options; otherwise the body's
// layout options are solved first.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := readOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	l, err := s.layoutFor(r, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts, err := s.Runner.Render(r.Context(), l, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) layoutFor(r *http.Request, opts pipeline.Options) (grid.Layout, error) {
	id := r.URL.Query().Get("layout")
	if id == "" {
		return s.Runner.Layout(r.Context(), opts)
	}
	if err := store.ValidateID(id); err != nil {
		return grid.Layout{}, err
	}
	return s.Store.Get(r.Context(), id)
}
