package shiftevent

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterboard/shiftboard/pkg/core/indictment"
	"github.com/rosterboard/shiftboard/pkg/core/model"
	"github.com/rosterboard/shiftboard/pkg/core/severity"
)

func newShift() *model.Shift {
	shift := &model.Shift{
		TenantID:         0,
		ID:               1,
		StartDateTime:    time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC),
		EndDateTime:      time.Date(2018, 7, 1, 17, 0, 0, 0, time.UTC),
		Spot:             &model.Spot{ID: 2, Name: "Ambulance", RequiredSkillSet: []model.Skill{{ID: 10, Name: "First Aid"}}},
		Employee:         &model.Employee{ID: 3, Name: "Amy", SkillProficiencySet: []model.Skill{}},
		RotationEmployee: &model.Employee{ID: 5, Name: "Beth"},
	}
	shift.Normalize()
	return shift
}

func TestEvent_Basics(t *testing.T) {
	shift := newShift()
	shift.IndictmentScore = model.HardMediumSoftScore{Hard: -1, Soft: -1}
	shift.RequiredSkillViolationList = []model.ShiftIndictment{{Score: model.HardMediumSoftScore{Hard: -1}}}
	shift.RotationViolationPenaltyList = []model.ShiftIndictment{{Score: model.HardMediumSoftScore{Soft: -1}}}

	event := New(Props{Shift: shift, Title: "Amy"})

	assert.Equal(t, "Amy", event.Title())
	assert.Equal(t, "09:00 - 17:00", event.TimeRange())
	assert.Equal(t, severity.HardViolation, event.Color().Class)
	require.Len(t, event.Indictments(), 2)
	assert.Equal(t, indictment.RequiredSkillViolation, event.Indictments()[0].Category)
	assert.Equal(t, indictment.RotationViolationPenalty, event.Indictments()[1].Category)
}

func TestEvent_TitleDefaultsToEmployee(t *testing.T) {
	shift := newShift()
	assert.Equal(t, "Amy", New(Props{Shift: shift}).Title())

	shift.Employee = nil
	assert.Equal(t, "Unassigned", New(Props{Shift: shift}).Title())
}

func TestEvent_TimeRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{"same day", time.Date(2018, 7, 1, 9, 0, 0, 0, time.UTC), time.Date(2018, 7, 1, 17, 30, 0, 0, time.UTC), "09:00 - 17:30"},
		{"overnight", time.Date(2018, 7, 1, 22, 0, 0, 0, time.UTC), time.Date(2018, 7, 2, 6, 0, 0, 0, time.UTC), "Jul 1 22:00 - Jul 2 06:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := newShift()
			shift.StartDateTime = tt.start
			shift.EndDateTime = tt.end
			assert.Equal(t, tt.expected, New(Props{Shift: shift}).TimeRange())
		})
	}
}

func TestEvent_NoIndictments(t *testing.T) {
	event := New(Props{Shift: newShift(), Title: "Amy"})

	assert.Equal(t, severity.Neutral, event.Color().Class)
	require.NotNil(t, event.Indictments())
	assert.Empty(t, event.Indictments())

	var buf bytes.Buffer
	require.NoError(t, event.Render(&buf))
	assert.NotContains(t, buf.String(), "<details")
}

func TestEvent_CallbacksReceiveShiftUnchanged(t *testing.T) {
	shift := newShift()
	var edited, deleted []*model.Shift

	event := New(Props{
		Shift:    shift,
		OnEdit:   func(s *model.Shift) { edited = append(edited, s) },
		OnDelete: func(s *model.Shift) { deleted = append(deleted, s) },
	})

	event.Edit()
	event.Edit()
	event.Delete()

	require.Len(t, edited, 2)
	assert.Same(t, shift, edited[0])
	require.Len(t, deleted, 1)
	assert.Same(t, shift, deleted[0])
}

func TestEvent_NilCallbacksAreNoOps(t *testing.T) {
	event := New(Props{Shift: newShift()})

	assert.NotPanics(t, func() {
		event.Edit()
		event.Delete()
	})
}

func TestEvent_Render(t *testing.T) {
	shift := newShift()
	shift.IndictmentScore = model.HardMediumSoftScore{Hard: -1}
	shift.RequiredSkillViolationList = []model.ShiftIndictment{{Score: model.HardMediumSoftScore{Hard: -1}}}

	event := New(Props{Shift: shift, Title: "Amy <lead>", OnEdit: func(*model.Shift) {}})

	var buf bytes.Buffer
	require.NoError(t, event.Render(&buf))
	html := buf.String()

	assert.Contains(t, html, `class="shift-event hard-violation"`)
	assert.Contains(t, html, "#c9190b")
	assert.Contains(t, html, "Amy &lt;lead&gt;")
	assert.Contains(t, html, "09:00 - 17:00")
	assert.Contains(t, html, "<details")
	assert.Contains(t, html, "Required Skill Violations")
	assert.Contains(t, html, "First Aid")
	assert.Contains(t, html, `action="/shifts/0/1/edit"`)
	assert.NotContains(t, html, "/delete")
}

func TestEvent_RenderIsIdempotent(t *testing.T) {
	shift := newShift()
	shift.IndictmentScore = model.HardMediumSoftScore{Medium: -1}
	shift.Employee = nil
	shift.UnassignedShiftPenaltyList = []model.ShiftIndictment{{Score: model.HardMediumSoftScore{Medium: -1}}}
	props := Props{Shift: shift, Title: "Unassigned"}

	var first, second bytes.Buffer
	require.NoError(t, New(props).Render(&first))
	require.NoError(t, New(props).Render(&second))
	assert.Equal(t, first.String(), second.String())

	first.Reset()
	second.Reset()
	require.NoError(t, New(props).RenderText(&first, true))
	require.NoError(t, New(props).RenderText(&second, true))
	assert.Equal(t, first.String(), second.String())
}

func TestEvent_RenderText(t *testing.T) {
	shift := newShift()
	shift.IndictmentScore = model.HardMediumSoftScore{Soft: 3}
	shift.PinnedByUser = true
	shift.DesiredTimeslotForEmployeeRewardList = []model.AvailabilityIndictment{{
		Score: model.HardMediumSoftScore{Soft: 3},
		EmployeeAvailability: &model.EmployeeAvailability{
			StartDateTime: time.Date(2018, 7, 1, 8, 0, 0, 0, time.UTC),
			EndDateTime:   time.Date(2018, 7, 1, 18, 0, 0, 0, time.UTC),
			State:         model.AvailabilityDesired,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, New(Props{Shift: shift}).RenderText(&buf, false))
	text := buf.String()

	lines := strings.Split(strings.TrimSpace(text), "\n")
	assert.Equal(t, "[positive] Amy  09:00 - 17:00", lines[0])
	assert.Equal(t, "  Ambulance, 0hard/0medium/3soft, pinned", lines[1])
	assert.Contains(t, text, "  Desired Timeslot Rewards (soft)\n")
	assert.Contains(t, text, "        Window: Sun Jul 1 2018 08:00 - 18:00\n")
	assert.NotContains(t, text, "\033[")

	buf.Reset()
	require.NoError(t, New(Props{Shift: shift}).RenderText(&buf, true))
	assert.True(t, strings.HasPrefix(buf.String(), colorGreen+"[positive]"))
}

func TestRenderer_UsesConfiguredTiersAndPalette(t *testing.T) {
	renderer := NewRenderer(
		indictment.NewExtractor(indictment.WithTiers(map[string]indictment.Tier{
			indictment.UnassignedShiftPenalty: indictment.TierHard,
		})),
		severity.NewColorizer(severity.Palette{severity.MediumViolation: "gold"}),
	)

	shift := newShift()
	shift.IndictmentScore = model.HardMediumSoftScore{Medium: -1}
	shift.UnassignedShiftPenaltyList = []model.ShiftIndictment{{Score: model.HardMediumSoftScore{Medium: -1}}}

	event := renderer.Event(Props{Shift: shift})
	assert.Equal(t, "gold", event.Color().Value)
	require.Len(t, event.Indictments(), 1)
	assert.Equal(t, indictment.TierHard, event.Indictments()[0].Tier)
}
