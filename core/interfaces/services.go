package interfaces

import (
	"context"
	"time"

	"timetable-app-api/core/domain"
)

// TimetableService extracts class timetables from draft workbooks.
type TimetableService interface {
	// GetTimetable returns the weekly timetable for a class pattern,
	// serving from cache when possible.
	GetTimetable(ctx context.Context, filename, classPattern string) (*domain.Timetable, error)

	// ExportExcel renders the timetable as a single-sheet xlsx workbook.
	ExportExcel(ctx context.Context, filename, classPattern string) ([]byte, error)
}

// CalendarService turns a timetable into an iCalendar document.
type CalendarService interface {
	// Generate emits one event per non-empty slot for every matching
	// weekday between start and end, inclusive.
	Generate(timetable *domain.Timetable, start, end time.Time) ([]byte, error)
}
