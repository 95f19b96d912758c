package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rosterboard/shiftboard/pkg/core/model"
	"github.com/rosterboard/shiftboard/pkg/db"
)

// The full shift, indictments included, is stored as a JSONB payload.
// version and pinned_by_user are columns so they can be updated without rewriting the payload.

const selectShift = `SELECT payload, version, pinned_by_user FROM shift`

func scanShift(row pgx.Row) (*model.Shift, error) {
	var payload []byte
	var version int64
	var pinned bool
	if err := row.Scan(&payload, &version, &pinned); err != nil {
		return nil, err
	}

	var shift model.Shift
	if err := json.Unmarshal(payload, &shift); err != nil {
		return nil, fmt.Errorf("failed to decode shift payload: %w", err)
	}
	shift.Version = version
	shift.PinnedByUser = pinned
	return &shift, nil
}

// ListShifts retrieves all shifts ordered by start time, tenant and id
func (d *DB) ListShifts(ctx context.Context) ([]model.Shift, error) {
	rows, err := d.pool.Query(ctx, selectShift+` ORDER BY start_date_time, tenant_id, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	shifts := []model.Shift{}
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, *shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// GetShift retrieves a single shift
func (d *DB) GetShift(ctx context.Context, tenantID, id int64) (*model.Shift, error) {
	row := d.pool.QueryRow(ctx, selectShift+` WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	shift, err := scanShift(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get shift %d/%d: %w", tenantID, id, db.ErrShiftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift %d/%d: %w", tenantID, id, err)
	}
	return shift, nil
}

// UpsertShifts inserts or replaces shifts in a single transaction
func (d *DB) UpsertShifts(ctx context.Context, shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, shift := range shifts {
		payload, err := json.Marshal(shift)
		if err != nil {
			return fmt.Errorf("failed to encode shift %d/%d: %w", shift.TenantID, shift.ID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO shift (tenant_id, id, version, start_date_time, end_date_time, spot_name, pinned_by_user, payload)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (tenant_id, id) DO UPDATE SET
				version = shift.version + 1,
				start_date_time = EXCLUDED.start_date_time,
				end_date_time = EXCLUDED.end_date_time,
				spot_name = EXCLUDED.spot_name,
				pinned_by_user = EXCLUDED.pinned_by_user,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`, shift.TenantID, shift.ID, shift.Version, shift.StartDateTime.UTC(), shift.EndDateTime.UTC(),
			shift.SpotName(), shift.PinnedByUser, payload)
		if err != nil {
			return fmt.Errorf("failed to upsert shift %d/%d: %w", shift.TenantID, shift.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SetPinned updates pinned_by_user when the stored version matches
func (d *DB) SetPinned(ctx context.Context, tenantID, id, version int64, pinned bool) (*model.Shift, error) {
	row := d.pool.QueryRow(ctx, `
		UPDATE shift SET pinned_by_user = $4, version = version + 1, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2 AND version = $3
		RETURNING payload, version, pinned_by_user
	`, tenantID, id, version, pinned)

	shift, err := scanShift(row)
	if err == nil {
		return shift, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to pin shift %d/%d: %w", tenantID, id, err)
	}

	// Nothing updated: either the shift is gone or its version moved on
	var exists bool
	if err := d.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM shift WHERE tenant_id = $1 AND id = $2)
	`, tenantID, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check shift %d/%d: %w", tenantID, id, err)
	}
	if !exists {
		return nil, fmt.Errorf("failed to pin shift %d/%d: %w", tenantID, id, db.ErrShiftNotFound)
	}
	return nil, fmt.Errorf("failed to pin shift %d/%d at version %d: %w", tenantID, id, version, db.ErrVersionConflict)
}

// DeleteShift removes a shift
func (d *DB) DeleteShift(ctx context.Context, tenantID, id int64) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM shift WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift %d/%d: %w", tenantID, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete shift %d/%d: %w", tenantID, id, db.ErrShiftNotFound)
	}
	return nil
}

var _ db.ShiftStore = (*DB)(nil)
