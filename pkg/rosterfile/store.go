package rosterfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/rosterboard/shiftboard/pkg/core/model"
	"github.com/rosterboard/shiftboard/pkg/db"
)

// ErrTenantMismatch is returned when an upsert mixes tenants in a single-tenant roster file
var ErrTenantMismatch = errors.New("shift tenant does not match roster file")

type shiftKey struct {
	tenantID int64
	id       int64
}

func keyOf(shift *model.Shift) shiftKey {
	return shiftKey{tenantID: shift.TenantID, id: shift.ID}
}

// Store is a shift store held in memory and persisted to a roster snapshot file after every write
type Store struct {
	path     string
	tenantID int64

	mu     sync.RWMutex
	shifts map[shiftKey]model.Shift
}

// Open loads the store from path. A missing file gives an empty store that is created on the first write.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		shifts: make(map[shiftKey]model.Shift),
	}

	roster, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	s.tenantID = roster.TenantID
	for _, shift := range roster.Shifts {
		s.shifts[keyOf(&shift)] = shift
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// sorted returns the shifts in listing order. Caller must hold the lock.
func (s *Store) sorted() []model.Shift {
	shifts := make([]model.Shift, 0, len(s.shifts))
	for _, shift := range s.shifts {
		shifts = append(shifts, shift)
	}
	db.SortShifts(shifts)
	return shifts
}

// persist writes the current state to disk. Caller must hold the write lock.
func (s *Store) persist() error {
	roster := &model.Roster{TenantID: s.tenantID, Shifts: s.sorted()}
	if err := Save(s.path, roster); err != nil {
		return fmt.Errorf("failed to persist shifts: %w", err)
	}
	return nil
}

func (s *Store) ListShifts(ctx context.Context) ([]model.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(), nil
}

func (s *Store) GetShift(ctx context.Context, tenantID, id int64) (*model.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shift, ok := s.shifts[shiftKey{tenantID: tenantID, id: id}]
	if !ok {
		return nil, fmt.Errorf("failed to get shift %d/%d: %w", tenantID, id, db.ErrShiftNotFound)
	}
	return &shift, nil
}

// UpsertShifts stores shifts of the file's tenant. An empty store takes the tenant of the first shift.
func (s *Store) UpsertShifts(ctx context.Context, shifts []model.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenantID := s.tenantID
	if len(s.shifts) == 0 && len(shifts) > 0 {
		tenantID = shifts[0].TenantID
	}
	for _, shift := range shifts {
		if shift.TenantID != tenantID {
			return fmt.Errorf("failed to upsert shift %d of tenant %d into roster file of tenant %d: %w",
				shift.ID, shift.TenantID, tenantID, ErrTenantMismatch)
		}
	}

	previous := make(map[shiftKey]model.Shift, len(s.shifts))
	for k, v := range s.shifts {
		previous[k] = v
	}
	previousTenant := s.tenantID
	s.tenantID = tenantID

	for _, shift := range shifts {
		shift.Normalize()
		key := keyOf(&shift)
		if existing, ok := s.shifts[key]; ok {
			shift.Version = existing.Version + 1
		}
		s.shifts[key] = shift
	}

	if err := s.persist(); err != nil {
		s.shifts = previous
		s.tenantID = previousTenant
		return err
	}
	return nil
}

func (s *Store) SetPinned(ctx context.Context, tenantID, id, version int64, pinned bool) (*model.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := shiftKey{tenantID: tenantID, id: id}
	shift, ok := s.shifts[key]
	if !ok {
		return nil, fmt.Errorf("failed to pin shift %d/%d: %w", tenantID, id, db.ErrShiftNotFound)
	}
	if shift.Version != version {
		return nil, fmt.Errorf("failed to pin shift %d/%d at version %d (stored %d): %w",
			tenantID, id, version, shift.Version, db.ErrVersionConflict)
	}

	original := shift
	shift.PinnedByUser = pinned
	shift.Version++
	s.shifts[key] = shift

	if err := s.persist(); err != nil {
		s.shifts[key] = original
		return nil, err
	}
	return &shift, nil
}

func (s *Store) DeleteShift(ctx context.Context, tenantID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := shiftKey{tenantID: tenantID, id: id}
	shift, ok := s.shifts[key]
	if !ok {
		return fmt.Errorf("failed to delete shift %d/%d: %w", tenantID, id, db.ErrShiftNotFound)
	}
	delete(s.shifts, key)

	if err := s.persist(); err != nil {
		s.shifts[key] = shift
		return err
	}
	return nil
}

var _ db.ShiftStore = (*Store)(nil)
