// ABOUTME: iCalendar generation from extracted timetables
// ABOUTME: Walks a date range and emits one event per non-empty slot

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timetable-app-api/core/domain"
	coreerrors "timetable-app-api/core/errors"
	"timetable-app-api/core/interfaces"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Service turns timetables into iCalendar documents.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new calendar service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Generate emits one VEVENT per non-empty slot for every day between start
// and end whose weekday appears in the timetable.
func (s *Service) Generate(timetable *domain.Timetable, start, end time.Time) ([]byte, error) {
	if timetable == nil {
		return nil, &coreerrors.ValidationError{Field: "timetable", Message: "cannot be nil"}
	}
	if end.Before(start) {
		return nil, &coreerrors.ValidationError{Field: "end_date", Message: "must not be before start_date"}
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	events := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day := scheduleFor(timetable, date.Weekday().String())
		if day == nil {
			continue
		}

		for _, slot := range day.Slots {
			if slot.Start == "" || slot.End == "" || slot.Value == "" {
				continue
			}

			startAt, err := atClock(date, slot.Start)
			if err != nil {
				return nil, coreerrors.WrapError(err, "parsing slot start")
			}
			endAt, err := atClock(date, slot.End)
			if err != nil {
				return nil, coreerrors.WrapError(err, "parsing slot end")
			}

			event := cal.AddEvent(uuid.New().String())
			event.SetSummary(strings.ReplaceAll(slot.Value, "\n", " "))
			event.SetStartAt(startAt)
			event.SetEndAt(endAt)
			events++
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Generated calendar", map[string]interface{}{
			"class":  timetable.Class,
			"events": events,
		})
	}

	return []byte(cal.Serialize()), nil
}

// scheduleFor returns the day schedule matching a weekday name, or nil.
func scheduleFor(timetable *domain.Timetable, weekday string) *domain.DaySchedule {
	for i := range timetable.Days {
		if timetable.Days[i].Day == weekday {
			return &timetable.Days[i]
		}
	}
	return nil
}

// atClock places a clock value like "7:00" on the given date.
func atClock(date time.Time, clock string) (time.Time, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid clock value %q", clock)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", clock)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", clock)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
