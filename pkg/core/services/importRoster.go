package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

var validate = validator.New()

// ImportRosterStore is the store access needed to import a roster
type ImportRosterStore interface {
	ListShifts(ctx context.Context) ([]model.Shift, error)
	UpsertShifts(ctx context.Context, shifts []model.Shift) error
}

// ImportResult summarizes an import
type ImportResult struct {
	TenantID int64
	Created  int
	Updated  int
}

// ValidateRoster checks a roster snapshot before it is stored
func ValidateRoster(roster *model.Roster) error {
	if err := validate.Struct(roster); err != nil {
		return fmt.Errorf("roster validation failed: %w", err)
	}

	seen := make(map[[2]int64]bool, len(roster.Shifts))
	for i, shift := range roster.Shifts {
		if shift.TenantID != roster.TenantID {
			return fmt.Errorf("shift %d (index %d) belongs to tenant %d, roster is tenant %d",
				shift.ID, i, shift.TenantID, roster.TenantID)
		}
		key := [2]int64{shift.TenantID, shift.ID}
		if seen[key] {
			return fmt.Errorf("duplicate shift id %d in roster", shift.ID)
		}
		seen[key] = true

		for j, conflict := range shift.ShiftEmployeeConflictList {
			if !conflict.LeftShift.SameAs(&shift) && !conflict.RightShift.SameAs(&shift) {
				return fmt.Errorf("shift %d: employee conflict %d does not reference the shift", shift.ID, j)
			}
		}
		for j, violation := range shift.ContractMinutesViolationPenaltyList {
			if !violation.Type.IsValid() {
				return fmt.Errorf("shift %d: contract minutes violation %d has unknown period type %q", shift.ID, j, violation.Type)
			}
		}
	}

	return nil
}

// ImportRoster validates a roster snapshot and upserts its shifts
func ImportRoster(ctx context.Context, store ImportRosterStore, logger *zap.Logger, roster *model.Roster) (*ImportResult, error) {
	roster.Normalize()

	logger.Debug("Validating roster", zap.Int64("tenant_id", roster.TenantID), zap.Int("shifts", len(roster.Shifts)))
	if err := ValidateRoster(roster); err != nil {
		return nil, err
	}

	existing, err := store.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing shifts: %w", err)
	}
	stored := make(map[[2]int64]bool, len(existing))
	for _, shift := range existing {
		stored[[2]int64{shift.TenantID, shift.ID}] = true
	}

	result := &ImportResult{TenantID: roster.TenantID}
	for _, shift := range roster.Shifts {
		if stored[[2]int64{shift.TenantID, shift.ID}] {
			result.Updated++
		} else {
			result.Created++
		}
	}

	if err := store.UpsertShifts(ctx, roster.Shifts); err != nil {
		return nil, fmt.Errorf("failed to store shifts: %w", err)
	}

	logger.Info("Roster imported",
		zap.Int64("tenant_id", result.TenantID),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))

	return result, nil
}
