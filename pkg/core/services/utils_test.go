package services

import (
	"context"
	"time"

	"github.com/rosterboard/shiftboard/pkg/clients/sheetsclient"
	"github.com/rosterboard/shiftboard/pkg/core/model"
)

// mockShiftStore implements ViewShiftsStore and ImportRosterStore for testing
type mockShiftStore struct {
	shifts    []model.Shift
	upserted  []model.Shift
	listErr   error
	upsertErr error
}

func (m *mockShiftStore) ListShifts(ctx context.Context) ([]model.Shift, error) {
	return m.shifts, m.listErr
}

func (m *mockShiftStore) UpsertShifts(ctx context.Context, shifts []model.Shift) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, shifts...)
	return nil
}

// mockPublisher implements ReportPublisher for testing
type mockPublisher struct {
	spreadsheetID string
	report        *sheetsclient.Report
	err           error
}

func (m *mockPublisher) PublishReport(ctx context.Context, spreadsheetID string, report *sheetsclient.Report) error {
	m.spreadsheetID = spreadsheetID
	m.report = report
	return m.err
}

func makeShift(id int64, spot string, start time.Time) model.Shift {
	shift := model.Shift{
		TenantID:      0,
		ID:            id,
		StartDateTime: start,
		EndDateTime:   start.Add(8 * time.Hour),
		Spot:          &model.Spot{ID: 1, Name: spot, RequiredSkillSet: []model.Skill{}},
		Employee:      &model.Employee{ID: 3, Name: "Amy", SkillProficiencySet: []model.Skill{}},
	}
	shift.Normalize()
	return shift
}

func unassigned(shift model.Shift) model.Shift {
	shift.Employee = nil
	shift.IndictmentScore = model.HardMediumSoftScore{Medium: -1}
	shift.UnassignedShiftPenaltyList = []model.ShiftIndictment{{Score: model.HardMediumSoftScore{Medium: -1}}}
	return shift
}
