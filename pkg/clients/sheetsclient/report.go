package sheetsclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// ReportRow is one line of the indictment report. A shift with no indictments has a single row with
// empty indictment columns; otherwise it has one row per indictment entry.
type ReportRow struct {
	Date        string // Format: "Mon Jan 02 2006"
	Time        string
	Spot        string
	Employee    string
	Score       string
	Severity    string
	Color       string // CSS hex color of the severity, used as the row's first cell background
	Category    string
	Tier        string
	Description string
	Details     string
}

// Report is the content of one report tab
type Report struct {
	Title string
	Rows  []ReportRow
}

var reportHeader = []interface{}{
	"Date", "Time", "Spot", "Employee", "Score", "Severity", "Category", "Tier", "Indictment", "Details",
}

// reportValues lays the report out as sheet rows, header first
func reportValues(report *Report) [][]interface{} {
	values := make([][]interface{}, 0, len(report.Rows)+1)
	values = append(values, reportHeader)
	for _, row := range report.Rows {
		values = append(values, []interface{}{
			row.Date, row.Time, row.Spot, row.Employee, row.Score, row.Severity,
			row.Category, row.Tier, row.Description, row.Details,
		})
	}
	return values
}

// parseHexColor converts "#rrggbb" to a Sheets color. Anything else gives nil.
func parseHexColor(value string) *sheets.Color {
	hex, ok := strings.CutPrefix(value, "#")
	if !ok || len(hex) != 6 {
		return nil
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	return &sheets.Color{
		Red:   float64((rgb>>16)&0xff) / 255,
		Green: float64((rgb>>8)&0xff) / 255,
		Blue:  float64(rgb&0xff) / 255,
	}
}

// quoteSheetTitle quotes a tab title for A1 notation
func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// PublishReport writes a report to the tab named after the report title.
// The tab is created if missing; an existing tab is cleared and overwritten.
func (c *Client) PublishReport(ctx context.Context, spreadsheetID string, report *Report) error {
	sheet, err := c.FindSheet(ctx, spreadsheetID, report.Title)
	if err != nil {
		return err
	}

	var sheetID int64
	tab := quoteSheetTitle(report.Title)
	if sheet == nil {
		c.logger.Debug("Creating report tab", zap.String("title", report.Title))
		sheetID, err = c.CreateSheet(ctx, spreadsheetID, report.Title)
		if err != nil {
			return fmt.Errorf("failed to create report tab: %w", err)
		}
	} else {
		c.logger.Debug("Overwriting report tab", zap.String("title", report.Title))
		sheetID = sheet.Properties.SheetId
		if err := c.ClearValues(ctx, spreadsheetID, tab); err != nil {
			return err
		}
	}

	if err := c.UpdateValues(ctx, spreadsheetID, tab+"!A1", reportValues(report)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	colors := make([]*sheets.Color, len(report.Rows))
	for i, row := range report.Rows {
		colors[i] = parseHexColor(row.Color)
	}
	if err := c.SetBackgroundColors(ctx, spreadsheetID, sheetID, 1, colors); err != nil {
		return err
	}

	c.logger.Info("Report published",
		zap.String("spreadsheet_id", spreadsheetID),
		zap.String("tab", report.Title),
		zap.Int("rows", len(report.Rows)))
	return nil
}
