package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/internal/config"
	"github.com/rosterboard/shiftboard/pkg/core/indictment"
	"github.com/rosterboard/shiftboard/pkg/core/severity"
)

const rosterYAML = `tenantId: 0
shifts:
  - id: 1
    startDateTime: 2018-07-01T09:00:00Z
    endDateTime: 2018-07-01T17:00:00Z
    spot:
      name: Ambulance
    employee:
      name: Amy
    indictmentScore: {hardScore: -1, mediumScore: 0, softScore: 0}
    requiredSkillViolationList:
      - score: {hardScore: -1, mediumScore: 0, softScore: 0}
  - id: 2
    startDateTime: 2018-07-02T09:00:00Z
    endDateTime: 2018-07-02T13:00:00Z
    spot:
      name: Reception
    indictmentScore: {hardScore: 0, mediumScore: -1, softScore: 0}
    unassignedShiftPenaltyList:
      - score: {hardScore: 0, mediumScore: -1, softScore: 0}
`

func newTestApp(t *testing.T, cfg *config.Config) *AppContext {
	t.Helper()

	dir := t.TempDir()
	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.Store = config.StoreFile
	cfg.RosterFile = filepath.Join(dir, "store.json")

	app, err := NewAppContext(context.Background(), "test", cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func importFixture(t *testing.T, app *AppContext) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0644))

	var out bytes.Buffer
	cmd := ImportRosterCmd(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Created: 2")
	assert.Contains(t, out.String(), "Updated: 0")
}

func TestImportRosterCmd(t *testing.T) {
	app := newTestApp(t, nil)
	importFixture(t, app)

	shifts, err := app.Store.ListShifts(context.Background())
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "Ambulance", shifts[0].SpotName())

	// The store file survives a reopen
	reopened, closeStore, err := OpenStore(context.Background(), app.Cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeStore()
	shifts, err = reopened.ListShifts(context.Background())
	require.NoError(t, err)
	assert.Len(t, shifts, 2)
}

func TestImportRosterCmd_MissingFile(t *testing.T) {
	app := newTestApp(t, nil)

	cmd := ImportRosterCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, cmd.Execute())
}

func TestRenderShiftsCmd(t *testing.T) {
	app := newTestApp(t, nil)
	importFixture(t, app)

	var out bytes.Buffer
	cmd := RenderShiftsCmd(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-color"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "2 shifts")
	assert.Contains(t, text, "[hard-violation] Amy  09:00 - 17:00")
	assert.Contains(t, text, "  Required Skill Violations (hard)")
	assert.Contains(t, text, "[medium-violation] Unassigned  09:00 - 13:00")
	assert.Contains(t, text, "  Unassigned Shift Penalties (medium)")
	assert.NotContains(t, text, "\033[")
}

func TestRenderShiftsCmd_SpotAndColor(t *testing.T) {
	app := newTestApp(t, nil)
	importFixture(t, app)

	var out bytes.Buffer
	cmd := RenderShiftsCmd(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--spot", "Reception"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "1 shifts")
	assert.NotContains(t, out.String(), "Amy")
	assert.Contains(t, out.String(), "\033[")
}

func TestRenderShiftsCmd_Empty(t *testing.T) {
	app := newTestApp(t, nil)

	var out bytes.Buffer
	cmd := RenderShiftsCmd(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "No shifts found.\n", out.String())
}

func TestShiftColorCmd(t *testing.T) {
	app := newTestApp(t, &config.Config{Palette: map[string]string{"neutral": "#000000"}})

	tests := []struct {
		score    string
		expected string
	}{
		{"-5hard/0medium/0soft", "hard-violation #c9190b\n"},
		{"0hard/-1medium/0soft", "medium-violation #f0ab00\n"},
		{"0hard/0medium/-10soft", "soft-violation #ec7a08\n"},
		{"0hard/0medium/0soft", "neutral #000000\n"},
		{"0hard/0medium/5soft", "positive #3e8635\n"},
	}

	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			var out bytes.Buffer
			cmd := ShiftColorCmd(app)
			cmd.SetOut(&out)
			cmd.SetArgs([]string{tt.score})
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestShiftColorCmd_InvalidScore(t *testing.T) {
	app := newTestApp(t, nil)

	cmd := ShiftColorCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"1hard/2soft"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid score")
}

func TestShiftColorCmd_WithEnvFlag(t *testing.T) {
	app := newTestApp(t, nil)

	for _, args := range [][]string{
		{"-e", "test", "-5hard/0medium/0soft"},
		{"-5hard/0medium/0soft", "--env=test"},
		{"--env", "test", "-5hard/0medium/0soft"},
	} {
		var out bytes.Buffer
		cmd := ShiftColorCmd(app)
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute(), args)
		assert.Equal(t, "hard-violation #c9190b\n", out.String())
	}
}

func TestShiftColorCmd_ArgCount(t *testing.T) {
	app := newTestApp(t, nil)

	cmd := ShiftColorCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-e", "test"})
	assert.Error(t, cmd.Execute())
}

func TestSplitEnvFlag(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		env   string
		rest  []string
		found bool
	}{
		{"short", []string{"-e", "prod", "-1hard/0medium/0soft"}, "prod", []string{"-1hard/0medium/0soft"}, true},
		{"short joined", []string{"-eprod", "x"}, "prod", []string{"x"}, true},
		{"short equals", []string{"-e=prod", "x"}, "prod", []string{"x"}, true},
		{"long", []string{"x", "--env", "prod"}, "prod", []string{"x"}, true},
		{"long equals", []string{"--env=prod", "x"}, "prod", []string{"x"}, true},
		{"absent", []string{"-5hard/0medium/0soft"}, "", []string{"-5hard/0medium/0soft"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, rest, found := SplitEnvFlag(tt.args)
			assert.Equal(t, tt.env, env)
			assert.Equal(t, tt.rest, rest)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestNewEngine(t *testing.T) {
	extractor, colorizer, err := NewEngine(&config.Config{
		CategoryTiers: map[string]string{indictment.UnassignedShiftPenalty: "soft"},
		Palette:       map[string]string{"positive": "green"},
	})
	require.NoError(t, err)

	assert.Equal(t, indictment.TierSoft, extractor.TierOf(indictment.UnassignedShiftPenalty))
	assert.Equal(t, indictment.TierHard, extractor.TierOf(indictment.RequiredSkillViolation))
	assert.Equal(t, "green", colorizer.Palette()[severity.Positive])
	assert.Equal(t, "#c9190b", colorizer.Palette()[severity.HardViolation])
}

func TestNewEngine_UnknownCategory(t *testing.T) {
	_, _, err := NewEngine(&config.Config{CategoryTiers: map[string]string{"overtime": "hard"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid categoryTiers")
}

func TestOpenStore_UnknownStore(t *testing.T) {
	_, _, err := OpenStore(context.Background(), &config.Config{Store: "redis"}, zap.NewNop())
	assert.ErrorContains(t, err, `unknown store "redis"`)
}
