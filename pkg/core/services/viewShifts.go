package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/core/indictment"
	"github.com/rosterboard/shiftboard/pkg/core/model"
	"github.com/rosterboard/shiftboard/pkg/core/severity"
	"github.com/rosterboard/shiftboard/pkg/core/shiftevent"
)

// ViewShiftsStore is the store access needed to view shifts
type ViewShiftsStore interface {
	ListShifts(ctx context.Context) ([]model.Shift, error)
}

// ViewShiftsFilter narrows the shifts shown. Zero value shows everything.
type ViewShiftsFilter struct {
	Spot string
}

func (f ViewShiftsFilter) matches(shift *model.Shift) bool {
	return f.Spot == "" || strings.EqualFold(shift.SpotName(), f.Spot)
}

// ShiftActions are the edit and delete callbacks attached to every view. Nil callbacks leave the cards read-only.
type ShiftActions struct {
	OnEdit   func(shift *model.Shift)
	OnDelete func(shift *model.Shift)
}

// ShiftView is a shift as shown on the board
type ShiftView struct {
	TenantID    int64              `json:"tenantId"`
	ID          int64              `json:"id"`
	Version     int64              `json:"version"`
	Title       string             `json:"title"`
	Spot        string             `json:"spot"`
	Start       time.Time          `json:"startDateTime"`
	End         time.Time          `json:"endDateTime"`
	TimeRange   string             `json:"timeRange"`
	Pinned      bool               `json:"pinnedByUser"`
	Score       string             `json:"score"`
	Color       severity.Color     `json:"color"`
	Indictments []indictment.Block `json:"indictments"`

	Event *shiftevent.Event `json:"-"`
}

// NewShiftView builds the board view of a shift. Callbacks in props are kept on the view's event.
func NewShiftView(renderer *shiftevent.Renderer, props shiftevent.Props) ShiftView {
	event := renderer.Event(props)
	shift := event.Shift()

	return ShiftView{
		TenantID:    shift.TenantID,
		ID:          shift.ID,
		Version:     shift.Version,
		Title:       event.Title(),
		Spot:        shift.SpotName(),
		Start:       shift.StartDateTime,
		End:         shift.EndDateTime,
		TimeRange:   event.TimeRange(),
		Pinned:      shift.PinnedByUser,
		Score:       shift.IndictmentScore.String(),
		Color:       event.Color(),
		Indictments: event.Indictments(),
		Event:       event,
	}
}

// ViewShifts lists the stored shifts as board views, ordered by start time
func ViewShifts(
	ctx context.Context,
	store ViewShiftsStore,
	renderer *shiftevent.Renderer,
	logger *zap.Logger,
	filter ViewShiftsFilter,
	actions ShiftActions,
) ([]ShiftView, error) {
	logger.Debug("Fetching shifts", zap.String("spot_filter", filter.Spot))

	shifts, err := store.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	views := make([]ShiftView, 0, len(shifts))
	counts := make(map[severity.Class]int)
	for i := range shifts {
		shift := &shifts[i]
		if !filter.matches(shift) {
			continue
		}
		view := NewShiftView(renderer, shiftevent.Props{
			Shift:    shift,
			OnEdit:   actions.OnEdit,
			OnDelete: actions.OnDelete,
		})
		counts[view.Color.Class]++
		views = append(views, view)
	}

	logger.Debug("Shifts rendered",
		zap.Int("total", len(shifts)),
		zap.Int("shown", len(views)),
		zap.Int("hard_violations", counts[severity.HardViolation]),
		zap.Int("medium_violations", counts[severity.MediumViolation]),
		zap.Int("soft_violations", counts[severity.SoftViolation]))

	return views, nil
}
