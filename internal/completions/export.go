package completions

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	historySheet = "History"
	summarySheet = "Summary"
)

var historyHeader = []string{
	"ID", "Date", "Program", "Workout", "Week", "Stations", "Completed", "Edited At",
}

// WriteHistoryXLSX renders completions as a spreadsheet: one row per entry on the
// History sheet and the streak on the Summary sheet.
func WriteHistoryXLSX(w io.Writer, h *History) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), historySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, title := range historyHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(historySheet, cell, title); err != nil {
			return err
		}
	}

	for i, e := range h.Entries {
		editedAt := ""
		if e.EditedAt != nil {
			editedAt = e.EditedAt.UTC().Format(DateLayout)
		}
		row := []any{
			e.ID,
			e.CompletedAt.UTC().Format(DateLayout),
			e.ProgramID,
			e.WorkoutID,
			e.WeekNumber,
			stationsSummary(e),
			e.Completed,
			editedAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("new summary sheet: %w", err)
	}
	lastWeek := any("")
	if h.Streak.LastWeek != nil {
		lastWeek = *h.Streak.LastWeek
	}
	summary := [][]any{
		{"Completions", len(h.Entries)},
		{"Streak (weeks)", h.Streak.Streak},
		{"Last week", lastWeek},
	}
	for i, row := range summary {
		row := row
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// ExportHistory writes the user's completion history as xlsx.
func (s *Service) ExportHistory(ctx context.Context, userID int, w io.Writer) error {
	h, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	return WriteHistoryXLSX(w, h)
}

func stationsSummary(e LogEntry) string {
	parts := make([]string, 0, len(e.Stations))
	for _, st := range e.Stations {
		sets := make([]string, 0, len(st.Sets))
		for _, set := range st.Sets {
			sets = append(sets, fmt.Sprintf("%gx%d", set.Lbs, set.Reps))
		}
		parts = append(parts, fmt.Sprintf("%s [%s]", st.ExerciseName, strings.Join(sets, ", ")))
	}
	return strings.Join(parts, "; ")
}
