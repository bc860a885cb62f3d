package http

import (
	"encoding/json"
	"errors"
	"strings"

	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marksheet-io/marksheet/internal/record"
	"github.com/marksheet-io/marksheet/internal/render"
)

// Handlers only — routes stay in the serve command.

type putRecordReq struct {
	// subject fields
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	// test fields
	Subject   string  `json:"subject,omitempty"`
	Score     float64 `json:"score,omitempty"`
	Full      float64 `json:"full,omitempty"`
	Weightage float64 `json:"weightage,omitempty"`
}

// PUT /records/*
func PutRecordHandler(store record.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		p, ok := parseRecordPath(w, r)
		if !ok {
			return
		}
		var req putRecordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			nethttp.Error(w, "bad json: "+err.Error(), nethttp.StatusBadRequest)
			return
		}
		switch p.Kind {
		case record.KindSubject:
			color := req.Color
			if color == "" {
				color = render.HexColor(p.Name)
			}
			sub := record.Subject{Name: p.Name, Type: req.Type, Color: color}
			if err := store.PutSubject(r.Context(), sub); err != nil {
				writeStoreError(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(sub)
		case record.KindTest:
			t := record.Test{
				Name:      p.Name,
				Subject:   req.Subject,
				Score:     req.Score,
				Full:      req.Full,
				Weightage: req.Weightage,
			}
			if err := store.PutTest(r.Context(), p.Season, t); err != nil {
				writeStoreError(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(t)
		default:
			nethttp.Error(w, "path is not writable", nethttp.StatusBadRequest)
		}
	}
}

// GET /records/*
func GetRecordHandler(store record.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		p, ok := parseRecordPath(w, r)
		if !ok {
			return
		}
		ctx := r.Context()
		switch p.Kind {
		case record.KindSubjects:
			subs, err := store.ListSubjects(ctx)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(subs)
		case record.KindSubject:
			sub, err := store.GetSubject(ctx, p.Name)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(sub)
		case record.KindSeasons:
			snap, err := store.Snapshot(ctx)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(snap.Seasons)
		case record.KindSeason:
			snap, err := store.Snapshot(ctx)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			tests, ok := snap.Seasons[p.Season]
			if !ok {
				nethttp.Error(w, "season not found", nethttp.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(tests)
		case record.KindTest:
			t, err := store.GetTest(ctx, p.Season, p.Name)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(t)
		}
	}
}

// DELETE /records/*
func DeleteRecordHandler(store record.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		p, ok := parseRecordPath(w, r)
		if !ok {
			return
		}
		var err error
		switch p.Kind {
		case record.KindSubject:
			err = store.DeleteSubject(r.Context(), p.Name)
		case record.KindSeason:
			err = store.DeleteSeason(r.Context(), p.Season)
		case record.KindTest:
			err = store.DeleteTest(r.Context(), p.Season, p.Name)
		default:
			nethttp.Error(w, "path is not deletable", nethttp.StatusBadRequest)
			return
		}
		if err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}

func parseRecordPath(w nethttp.ResponseWriter, r *nethttp.Request) (record.Path, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "*"))
	p, err := record.ParsePath(raw)
	if err != nil {
		nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
		return record.Path{}, false
	}
	return p, true
}

func writeStoreError(w nethttp.ResponseWriter, err error) {
	if errors.Is(err, record.ErrNotFound) {
		nethttp.Error(w, err.Error(), nethttp.StatusNotFound)
		return
	}
	nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
}
