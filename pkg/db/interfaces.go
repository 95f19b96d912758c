package db

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

var (
	// ErrShiftNotFound is returned when no shift has the requested tenant and id
	ErrShiftNotFound = errors.New("shift not found")

	// ErrVersionConflict is returned when a write is based on an outdated shift version
	ErrVersionConflict = errors.New("shift version conflict")
)

// ShiftStore defines the interface for shift storage.
// Both the roster-file-backed rosterfile.Store and postgres.DB implement this interface.
type ShiftStore interface {
	// ListShifts returns every shift ordered by start time, tenant and id
	ListShifts(ctx context.Context) ([]model.Shift, error)
	GetShift(ctx context.Context, tenantID, id int64) (*model.Shift, error)

	// UpsertShifts inserts new shifts as given and replaces existing ones by tenant and id, bumping their version
	UpsertShifts(ctx context.Context, shifts []model.Shift) error

	// SetPinned updates pinnedByUser if the stored version matches, and returns the shift with its version incremented
	SetPinned(ctx context.Context, tenantID, id, version int64, pinned bool) (*model.Shift, error)
	DeleteShift(ctx context.Context, tenantID, id int64) error
}

// SortShifts orders shifts by start time, then tenant, then id
func SortShifts(shifts []model.Shift) {
	slices.SortStableFunc(shifts, func(a, b model.Shift) int {
		if c := a.StartDateTime.Compare(b.StartDateTime); c != 0 {
			return c
		}
		if c := cmp.Compare(a.TenantID, b.TenantID); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
