package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/core/model"
	"github.com/rosterboard/shiftboard/pkg/core/services"
	"github.com/rosterboard/shiftboard/pkg/core/shiftevent"
	"github.com/rosterboard/shiftboard/pkg/db"
)

// shiftActions backs the edit and delete callbacks of a card with the store.
// Edit toggles pinnedByUser against the version the client last saw.
type shiftActions struct {
	ctx     context.Context
	store   db.ShiftStore
	version int64

	updated *model.Shift
	err     error
}

func (a *shiftActions) edit(shift *model.Shift) {
	a.updated, a.err = a.store.SetPinned(a.ctx, shift.TenantID, shift.ID, a.version, !shift.PinnedByUser)
}

func (a *shiftActions) delete(shift *model.Shift) {
	a.err = a.store.DeleteShift(a.ctx, shift.TenantID, shift.ID)
}

func (a *shiftActions) callbacks() services.ShiftActions {
	return services.ShiftActions{OnEdit: a.edit, OnDelete: a.delete}
}

type boardPage struct {
	Spot  string
	Total int
	Cards []template.HTML
}

func shiftKey(r *http.Request) (tenantID, id int64, err error) {
	tenantID, err = strconv.ParseInt(chi.URLParam(r, "tenantID"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid tenant id %q", chi.URLParam(r, "tenantID"))
	}
	id, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shift id %q", chi.URLParam(r, "id"))
	}
	return tenantID, id, nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) board(w http.ResponseWriter, r *http.Request) {
	actions := &shiftActions{ctx: r.Context(), store: s.store}
	filter := services.ViewShiftsFilter{Spot: r.URL.Query().Get("spot")}

	views, err := services.ViewShifts(r.Context(), s.store, s.renderer, s.logger, filter, actions.callbacks())
	if err != nil {
		s.internalServerError(w, r, err)
		return
	}

	page := boardPage{Spot: filter.Spot, Total: len(views), Cards: make([]template.HTML, 0, len(views))}
	for _, view := range views {
		var card bytes.Buffer
		if err := view.Event.Render(&card); err != nil {
			s.internalServerError(w, r, err)
			return
		}
		page.Cards = append(page.Cards, template.HTML(card.String()))
	}

	var body bytes.Buffer
	if err := boardTemplate.ExecuteTemplate(&body, "board", page); err != nil {
		s.internalServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = body.WriteTo(w)
}

func (s *Server) shiftCard(w http.ResponseWriter, r *http.Request) {
	tenantID, id, err := shiftKey(r)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err.Error())
		return
	}

	shift, err := s.store.GetShift(r.Context(), tenantID, id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	actions := &shiftActions{ctx: r.Context(), store: s.store}
	view := services.NewShiftView(s.renderer, shiftevent.Props{
		Shift:    shift,
		OnEdit:   actions.edit,
		OnDelete: actions.delete,
	})

	var card bytes.Buffer
	if err := view.Event.Render(&card); err != nil {
		s.internalServerError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = card.WriteTo(w)
}

func (s *Server) editShift(w http.ResponseWriter, r *http.Request) {
	tenantID, id, err := shiftKey(r)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := r.ParseForm(); err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, "invalid form body")
		return
	}
	version, err := strconv.ParseInt(r.PostForm.Get("version"), 10, 64)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, "version is required")
		return
	}

	shift, err := s.store.GetShift(r.Context(), tenantID, id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	actions := &shiftActions{ctx: r.Context(), store: s.store, version: version}
	s.renderer.Event(shiftevent.Props{Shift: shift, OnEdit: actions.edit}).Edit()
	if actions.err != nil {
		s.storeError(w, r, actions.err)
		return
	}

	s.logger.Info("Shift pin toggled",
		zap.Int64("tenant_id", tenantID),
		zap.Int64("shift_id", id),
		zap.Bool("pinned", actions.updated.PinnedByUser),
		zap.Int64("version", actions.updated.Version))
	http.Redirect(w, r, "/shifts", http.StatusSeeOther)
}

func (s *Server) deleteShift(w http.ResponseWriter, r *http.Request) {
	tenantID, id, err := shiftKey(r)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err.Error())
		return
	}

	shift, err := s.store.GetShift(r.Context(), tenantID, id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	actions := &shiftActions{ctx: r.Context(), store: s.store}
	s.renderer.Event(shiftevent.Props{Shift: shift, OnDelete: actions.delete}).Delete()
	if actions.err != nil {
		s.storeError(w, r, actions.err)
		return
	}

	s.logger.Info("Shift deleted", zap.Int64("tenant_id", tenantID), zap.Int64("shift_id", id))
	http.Redirect(w, r, "/shifts", http.StatusSeeOther)
}

func (s *Server) listShifts(w http.ResponseWriter, r *http.Request) {
	filter := services.ViewShiftsFilter{Spot: r.URL.Query().Get("spot")}

	views, err := services.ViewShifts(r.Context(), s.store, s.renderer, s.logger, filter, services.ShiftActions{})
	if err != nil {
		s.internalServerError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, views)
}

func (s *Server) shiftIndictments(w http.ResponseWriter, r *http.Request) {
	tenantID, id, err := shiftKey(r)
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err.Error())
		return
	}

	shift, err := s.store.GetShift(r.Context(), tenantID, id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.renderer.Event(shiftevent.Props{Shift: shift}).Indictments())
}

type colorResponse struct {
	Score string `json:"score"`
	Class string `json:"class"`
	Value string `json:"value"`
}

func (s *Server) scoreColor(w http.ResponseWriter, r *http.Request) {
	score, err := model.ParseScore(r.URL.Query().Get("score"))
	if err != nil {
		s.errorJSON(w, r, http.StatusBadRequest, err.Error())
		return
	}

	color := s.colorizer.ShiftColor(score)
	s.writeJSON(w, r, http.StatusOK, colorResponse{
		Score: score.String(),
		Class: string(color.Class),
		Value: color.Value,
	})
}
