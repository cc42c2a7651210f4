// ABOUTME: Timetable extraction from raw workbook grids
// ABOUTME: Finds the time row, filters rows by class pattern, assembles the week

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"timetable-app-api/core/domain"
)

// periodPattern matches a period header like "7:00-9:00".
var periodPattern = regexp.MustCompile(`^\d{1,2}:\d{1,2}-\d{1,2}:\d{1,2}$`)

// whitespacePattern collapses runs of whitespace inside cell values.
var whitespacePattern = regexp.MustCompile(`\s+`)

// DailyTable is one sheet reduced to the rows and cells that match a class
// pattern. Cells align with Periods; an empty cell means no match.
type DailyTable struct {
	Periods []string
	Rows    []DailyRow
}

// DailyRow is one classroom's matching cells for a day.
type DailyRow struct {
	Classroom string
	Cells     []string
}

// timeRow locates the header row whose second cell is a period range and
// returns its index and the period headers.
func timeRow(grid [][]string) (int, []string, error) {
	for i, row := range grid {
		if len(row) < 2 {
			continue
		}
		if periodPattern.MatchString(strings.TrimSpace(row[1])) {
			periods := make([]string, 0, len(row)-1)
			for _, cell := range row[1:] {
				periods = append(periods, strings.TrimSpace(cell))
			}
			return i, periods, nil
		}
	}
	return 0, nil, fmt.Errorf("no time row found in sheet")
}

// DailyTableFor reduces a single sheet grid to the rows where the class
// pattern matches at least one period cell.
func DailyTableFor(grid [][]string, pattern *regexp.Regexp) (*DailyTable, error) {
	headerIdx, periods, err := timeRow(grid)
	if err != nil {
		return nil, err
	}

	table := &DailyTable{Periods: periods}

	for _, row := range grid[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}

		daily := DailyRow{
			Classroom: strings.TrimSpace(row[0]),
			Cells:     make([]string, len(periods)),
		}

		matched := false
		for j := range periods {
			// Cell columns are offset by one for the classroom column.
			col := j + 1
			if col >= len(row) {
				break
			}
			cell := row[col]
			if cell != "" && pattern.MatchString(cell) {
				daily.Cells[j] = cell
				matched = true
			}
		}

		if matched {
			table.Rows = append(table.Rows, daily)
		}
	}

	return table, nil
}

// WeeklyTimetable assembles the Monday-to-Friday timetable for a class
// pattern from per-sheet grids. Sheet names match weekdays
// case-insensitively; at least one weekday sheet must exist.
func WeeklyTimetable(sheets map[string][][]string, pattern *regexp.Regexp, class string) (*domain.Timetable, error) {
	dailies := make(map[string]*DailyTable, len(sheets))
	var periods []string

	for _, day := range domain.Weekdays {
		grid, ok := sheetForDay(sheets, day)
		if !ok {
			continue
		}
		table, err := DailyTableFor(grid, pattern)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", day, err)
		}
		dailies[day] = table
		if periods == nil {
			periods = table.Periods
		}
	}

	if periods == nil {
		return nil, fmt.Errorf("no sheet found for any of the days: %s", strings.Join(domain.Weekdays, ", "))
	}

	timetable := &domain.Timetable{
		Class:   class,
		Periods: periods,
		Days:    make([]domain.DaySchedule, 0, len(domain.Weekdays)),
	}

	for _, day := range domain.Weekdays {
		schedule := domain.DaySchedule{
			Day:   day,
			Slots: make([]domain.Slot, 0, len(periods)),
		}

		table := dailies[day]
		for j, period := range periods {
			start, end := domain.SplitPeriod(period)
			slot := domain.Slot{Start: start, End: end}
			if table != nil {
				slot.Value = joinEntries(table, j)
			}
			schedule.Slots = append(schedule.Slots, slot)
		}

		timetable.Days = append(timetable.Days, schedule)
	}

	return timetable, nil
}

// joinEntries collects the surviving cells of one period column as
// "VALUE (CLASSROOM)" lines.
func joinEntries(table *DailyTable, col int) string {
	var entries []string
	for _, row := range table.Rows {
		if col >= len(row.Cells) || row.Cells[col] == "" {
			continue
		}
		value := whitespacePattern.ReplaceAllString(strings.TrimSpace(row.Cells[col]), " ")
		entries = append(entries, fmt.Sprintf("%s (%s)", value, row.Classroom))
	}
	return strings.Join(entries, "\n")
}

// sheetForDay finds a sheet whose name matches the weekday, ignoring case.
func sheetForDay(sheets map[string][][]string, day string) ([][]string, bool) {
	if grid, ok := sheets[day]; ok {
		return grid, true
	}
	for name, grid := range sheets {
		if strings.EqualFold(strings.TrimSpace(name), day) {
			return grid, true
		}
	}
	return nil, false
}
