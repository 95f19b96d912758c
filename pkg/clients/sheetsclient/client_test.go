package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"
)

func TestBackgroundColorRequests(t *testing.T) {
	red := &sheets.Color{Red: 1}
	green := &sheets.Color{Green: 1}

	requests := backgroundColorRequests(42, 1, []*sheets.Color{red, nil, green})
	require.Len(t, requests, 3)

	// The first request clears the whole first column, so rows from an earlier, longer report lose their color
	reset := requests[0].RepeatCell
	require.NotNil(t, reset)
	assert.Equal(t, int64(42), reset.Range.SheetId)
	assert.Equal(t, int64(0), reset.Range.StartRowIndex)
	assert.Equal(t, int64(0), reset.Range.EndRowIndex)
	assert.Equal(t, int64(0), reset.Range.StartColumnIndex)
	assert.Equal(t, int64(1), reset.Range.EndColumnIndex)
	assert.Nil(t, reset.Cell.UserEnteredFormat.BackgroundColor)
	assert.Equal(t, "userEnteredFormat.backgroundColor", reset.Fields)

	first := requests[1].RepeatCell
	assert.Equal(t, int64(1), first.Range.StartRowIndex)
	assert.Equal(t, int64(2), first.Range.EndRowIndex)
	assert.Same(t, red, first.Cell.UserEnteredFormat.BackgroundColor)

	// Rows without a color are skipped
	third := requests[2].RepeatCell
	assert.Equal(t, int64(3), third.Range.StartRowIndex)
	assert.Equal(t, int64(4), third.Range.EndRowIndex)
	assert.Same(t, green, third.Cell.UserEnteredFormat.BackgroundColor)
}

func TestBackgroundColorRequests_NoRows(t *testing.T) {
	requests := backgroundColorRequests(7, 1, nil)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(7), requests[0].RepeatCell.Range.SheetId)
	assert.Equal(t, int64(1), requests[0].RepeatCell.Range.EndColumnIndex)
}
