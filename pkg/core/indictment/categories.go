package indictment

import (
	"fmt"
	"strings"
	"time"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

const (
	dateLayout = "Mon Jan 2 2006"
	timeLayout = "15:04"
	noValue    = "-"
)

// FormatWindow formats a time window, omitting the end date when both ends fall on the same day
func FormatWindow(start, end time.Time) string {
	if sameDay(start, end) {
		return fmt.Sprintf("%s %s - %s", start.Format(dateLayout), start.Format(timeLayout), end.Format(timeLayout))
	}
	return fmt.Sprintf("%s %s - %s %s",
		start.Format(dateLayout), start.Format(timeLayout),
		end.Format(dateLayout), end.Format(timeLayout))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func employeeName(employee *model.Employee) string {
	if employee == nil {
		return noValue
	}
	return employee.Name
}

func describeShift(shift *model.Shift) string {
	if shift == nil {
		return noValue
	}
	return fmt.Sprintf("#%d %s, %s", shift.ID, shift.SpotName(), FormatWindow(shift.StartDateTime, shift.EndDateTime))
}

// missingSkills lists the spot's required skills the assigned employee lacks
func missingSkills(shift *model.Shift) []string {
	if shift.Spot == nil {
		return nil
	}

	held := make(map[int64]bool)
	if shift.Employee != nil {
		for _, skill := range shift.Employee.SkillProficiencySet {
			held[skill.ID] = true
		}
	}

	var missing []string
	for _, skill := range shift.Spot.RequiredSkillSet {
		if !held[skill.ID] {
			missing = append(missing, skill.Name)
		}
	}
	return missing
}

// availabilityEntry builds the shared entry shape of the three availability categories
func availabilityEntry(description string, shift *model.Shift, item model.AvailabilityIndictment) Entry {
	fields := make([]Field, 0, 2)

	availability := item.EmployeeAvailability
	if availability == nil {
		fields = append(fields,
			Field{Label: "Employee", Value: employeeName(shift.Employee)},
			Field{Label: "Window", Value: noValue})
	} else {
		employee := availability.Employee
		if employee == nil {
			employee = shift.Employee
		}
		fields = append(fields,
			Field{Label: "Employee", Value: employeeName(employee)},
			Field{Label: "Window", Value: FormatWindow(availability.StartDateTime, availability.EndDateTime)})
	}

	return Entry{Description: description, Fields: fields, Score: item.Score}
}

type requiredSkillCategory struct{}

func (requiredSkillCategory) Name() string      { return RequiredSkillViolation }
func (requiredSkillCategory) Title() string     { return "Required Skill Violations" }
func (requiredSkillCategory) DefaultTier() Tier { return TierHard }

func (requiredSkillCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.RequiredSkillViolationList {
		missing := noValue
		if skills := missingSkills(shift); len(skills) > 0 {
			missing = strings.Join(skills, ", ")
		}
		entries = append(entries, Entry{
			Description: "Employee lacks a skill required by the spot",
			Fields: []Field{
				{Label: "Employee", Value: employeeName(shift.Employee)},
				{Label: "Missing skills", Value: missing},
			},
			Score: item.Score,
		})
	}
	return entries
}

type contractMinutesCategory struct {
	weekStart time.Weekday
}

func (contractMinutesCategory) Name() string      { return ContractMinutesViolation }
func (contractMinutesCategory) Title() string     { return "Contract Minutes Violations" }
func (contractMinutesCategory) DefaultTier() Tier { return TierHard }

func (c contractMinutesCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.ContractMinutesViolationPenaltyList {
		employee := item.Employee
		if employee == nil {
			employee = shift.Employee
		}

		period := string(item.Type)
		if start, end, err := PeriodWindow(item.Type, shift.StartDateTime, c.weekStart); err == nil {
			period = fmt.Sprintf("%s (%s - %s)", item.Type,
				start.Format(dateLayout), end.AddDate(0, 0, -1).Format(dateLayout))
		}

		worked := fmt.Sprintf("%d", item.MinutesWorked)
		var contract *model.Contract
		if employee != nil {
			contract = employee.Contract
		}
		if limit, ok := contract.MaximumMinutes(item.Type); ok {
			worked = fmt.Sprintf("%d / %d max", item.MinutesWorked, limit)
		}

		entries = append(entries, Entry{
			Description: "Employee works more minutes than their contract allows",
			Fields: []Field{
				{Label: "Employee", Value: employeeName(employee)},
				{Label: "Period", Value: period},
				{Label: "Minutes worked", Value: worked},
			},
			Score: item.Score,
		})
	}
	return entries
}

type unavailableEmployeeCategory struct{}

func (unavailableEmployeeCategory) Name() string      { return UnavailableEmployeeViolation }
func (unavailableEmployeeCategory) Title() string     { return "Unavailable Employee Violations" }
func (unavailableEmployeeCategory) DefaultTier() Tier { return TierHard }

func (unavailableEmployeeCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.UnavailableEmployeeViolationList {
		entries = append(entries, availabilityEntry("Employee is unavailable during the shift", shift, item))
	}
	return entries
}

type shiftEmployeeConflictCategory struct{}

func (shiftEmployeeConflictCategory) Name() string      { return ShiftEmployeeConflict }
func (shiftEmployeeConflictCategory) Title() string     { return "Shift Employee Conflicts" }
func (shiftEmployeeConflictCategory) DefaultTier() Tier { return TierHard }

func (shiftEmployeeConflictCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.ShiftEmployeeConflictList {
		other := item.Other(shift)
		employee := shift.Employee
		if other != nil && other.Employee != nil {
			employee = other.Employee
		}
		entries = append(entries, Entry{
			Description: "Employee is assigned to a conflicting shift",
			Fields: []Field{
				{Label: "Employee", Value: employeeName(employee)},
				{Label: "Conflicting shift", Value: describeShift(other)},
			},
			Score: item.Score,
		})
	}
	return entries
}

type rotationViolationCategory struct{}

func (rotationViolationCategory) Name() string      { return RotationViolationPenalty }
func (rotationViolationCategory) Title() string     { return "Rotation Violation Penalties" }
func (rotationViolationCategory) DefaultTier() Tier { return TierSoft }

func (rotationViolationCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.RotationViolationPenaltyList {
		entries = append(entries, Entry{
			Description: "Shift is not assigned to its rotation employee",
			Fields: []Field{
				{Label: "Rotation employee", Value: employeeName(shift.RotationEmployee)},
				{Label: "Assigned employee", Value: shift.EmployeeName()},
			},
			Score: item.Score,
		})
	}
	return entries
}

type unassignedShiftCategory struct{}

func (unassignedShiftCategory) Name() string      { return UnassignedShiftPenalty }
func (unassignedShiftCategory) Title() string     { return "Unassigned Shift Penalties" }
func (unassignedShiftCategory) DefaultTier() Tier { return TierMedium }

func (unassignedShiftCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.UnassignedShiftPenaltyList {
		entries = append(entries, Entry{
			Description: "No employee is assigned to the shift",
			Fields:      []Field{},
			Score:       item.Score,
		})
	}
	return entries
}

type undesiredTimeslotCategory struct{}

func (undesiredTimeslotCategory) Name() string      { return UndesiredTimeslotForEmployeePenalty }
func (undesiredTimeslotCategory) Title() string     { return "Undesired Timeslot Penalties" }
func (undesiredTimeslotCategory) DefaultTier() Tier { return TierSoft }

func (undesiredTimeslotCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.UndesiredTimeslotForEmployeePenaltyList {
		entries = append(entries, availabilityEntry("Shift falls in a timeslot the employee would rather not work", shift, item))
	}
	return entries
}

type desiredTimeslotCategory struct{}

func (desiredTimeslotCategory) Name() string      { return DesiredTimeslotForEmployeeReward }
func (desiredTimeslotCategory) Title() string     { return "Desired Timeslot Rewards" }
func (desiredTimeslotCategory) DefaultTier() Tier { return TierSoft }

func (desiredTimeslotCategory) Indict(shift *model.Shift) []Entry {
	var entries []Entry
	for _, item := range shift.DesiredTimeslotForEmployeeRewardList {
		entries = append(entries, availabilityEntry("Shift falls in a timeslot the employee would like to work", shift, item))
	}
	return entries
}

// DefaultCategories returns the built-in categories in the order blocks are produced
func DefaultCategories(weekStart time.Weekday) []Category {
	return []Category{
		requiredSkillCategory{},
		contractMinutesCategory{weekStart: weekStart},
		unavailableEmployeeCategory{},
		shiftEmployeeConflictCategory{},
		rotationViolationCategory{},
		unassignedShiftCategory{},
		undesiredTimeslotCategory{},
		desiredTimeslotCategory{},
	}
}
