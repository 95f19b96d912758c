package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

func TestImportRoster_CreatesAndUpdates(t *testing.T) {
	day := time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC)
	store := &mockShiftStore{shifts: []model.Shift{makeShift(1, "Ambulance", day)}}

	roster := &model.Roster{Shifts: []model.Shift{
		makeShift(1, "Ambulance", day),
		makeShift(2, "Reception", day),
		unassigned(makeShift(3, "Reception", day.AddDate(0, 0, 1))),
	}}

	result, err := ImportRoster(context.Background(), store, zap.NewNop(), roster)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Len(t, store.upserted, 3)
}

func TestImportRoster_NormalizesMissingLists(t *testing.T) {
	day := time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC)
	shift := model.Shift{ID: 1, StartDateTime: day, EndDateTime: day.Add(time.Hour), Spot: &model.Spot{Name: "Reception"}}
	store := &mockShiftStore{}

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), &model.Roster{Shifts: []model.Shift{shift}})
	require.NoError(t, err)
	require.Len(t, store.upserted, 1)
	assert.NotNil(t, store.upserted[0].ShiftEmployeeConflictList)
}

func TestValidateRoster(t *testing.T) {
	day := time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(roster *model.Roster)
	}{
		{"end before start", func(r *model.Roster) { r.Shifts[0].EndDateTime = day.Add(-time.Hour) }},
		{"missing start", func(r *model.Roster) { r.Shifts[0].StartDateTime = time.Time{} }},
		{"missing spot", func(r *model.Roster) { r.Shifts[0].Spot = nil }},
		{"unnamed spot", func(r *model.Roster) { r.Shifts[0].Spot = &model.Spot{ID: 1} }},
		{"unnamed employee", func(r *model.Roster) { r.Shifts[0].Employee = &model.Employee{ID: 3} }},
		{"duplicate id", func(r *model.Roster) { r.Shifts[1].ID = r.Shifts[0].ID }},
		{"foreign tenant", func(r *model.Roster) { r.Shifts[1].TenantID = 9 }},
		{"unrelated conflict", func(r *model.Roster) {
			r.Shifts[0].ShiftEmployeeConflictList = []model.ShiftEmployeeConflict{{
				LeftShift: &model.Shift{ID: 50}, RightShift: &model.Shift{ID: 51},
			}}
		}},
		{"unknown period type", func(r *model.Roster) {
			r.Shifts[0].ContractMinutesViolationPenaltyList = []model.ContractMinutesViolation{{Type: "FORTNIGHT"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := &model.Roster{Shifts: []model.Shift{
				makeShift(1, "Ambulance", day),
				makeShift(2, "Reception", day),
			}}
			require.NoError(t, ValidateRoster(roster))

			tt.mutate(roster)
			assert.Error(t, ValidateRoster(roster))
		})
	}
}

func TestImportRoster_InvalidRosterNotStored(t *testing.T) {
	day := time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC)
	shift := makeShift(1, "Ambulance", day)
	shift.EndDateTime = day.Add(-time.Hour)
	store := &mockShiftStore{}

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), &model.Roster{Shifts: []model.Shift{shift}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster validation failed")
	assert.Empty(t, store.upserted)
}

func TestImportRoster_StoreError(t *testing.T) {
	day := time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC)
	store := &mockShiftStore{upsertErr: errors.New("disk full")}

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), &model.Roster{Shifts: []model.Shift{makeShift(1, "Ambulance", day)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store shifts")
}
