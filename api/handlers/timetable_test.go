package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"timetable-app-api/core/domain"
	coreerrors "timetable-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func TestNewTimetableHandler(t *testing.T) {
	handler := NewTimetableHandler(&mockTimetableService{}, &mockCalendarService{})

	if handler == nil {
		t.Fatal("NewTimetableHandler returned nil")
	}
	if handler.timetableService == nil {
		t.Error("TimetableHandler.timetableService is nil")
	}
}

func TestTimetableHandler_RegisterRoutes(t *testing.T) {
	handler := NewTimetableHandler(&mockTimetableService{}, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	for _, path := range []string{"/timetable", "/timetable/download", "/timetable/calendar"} {
		if openapi.Paths == nil || openapi.Paths[path] == nil || openapi.Paths[path].Post == nil {
			t.Errorf("POST %s not registered", path)
		}
	}
}

func TestGetTimetable_Success(t *testing.T) {
	service := &mockTimetableService{
		getFunc: func(ctx context.Context, filename, classPattern string) (*domain.Timetable, error) {
			if filename != "DRAFT_4" {
				t.Errorf("filename = %s, want DRAFT_4", filename)
			}
			if classPattern != "EL 3" {
				t.Errorf("classPattern = %s, want EL 3", classPattern)
			}
			return &domain.Timetable{
				Class:   "EL 3",
				Periods: []string{"7:00-9:00"},
				Days: []domain.DaySchedule{
					{Day: "Monday", Slots: []domain.Slot{{Start: "7:00", End: "9:00", Value: "EL 3 (LH 1)"}}},
				},
			}, nil
		},
	}
	handler := NewTimetableHandler(service, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/timetable", map[string]any{
		"filename":      "DRAFT_4",
		"class_pattern": "EL 3",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"Monday"`) {
		t.Errorf("response missing day schedule: %s", resp.Body.String())
	}
}

func TestGetTimetable_NotFound(t *testing.T) {
	service := &mockTimetableService{
		getFunc: func(ctx context.Context, filename, classPattern string) (*domain.Timetable, error) {
			return nil, &coreerrors.NotFoundError{Resource: "draft", ID: filename}
		},
	}
	handler := NewTimetableHandler(service, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/timetable", map[string]any{
		"filename":      "MISSING",
		"class_pattern": "EL 3",
	})

	if resp.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}

func TestGetTimetable_ValidationError(t *testing.T) {
	service := &mockTimetableService{
		getFunc: func(ctx context.Context, filename, classPattern string) (*domain.Timetable, error) {
			return nil, &coreerrors.ValidationError{Field: "class_pattern", Message: "not a valid pattern"}
		},
	}
	handler := NewTimetableHandler(service, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/timetable", map[string]any{
		"filename":      "DRAFT_4",
		"class_pattern": "EL [3",
	})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestDownloadTimetable_SetsAttachmentHeaders(t *testing.T) {
	handler := NewTimetableHandler(&mockTimetableService{}, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/timetable/download", map[string]any{
		"filename":      "DRAFT_4.xlsx",
		"class_pattern": "EL 3",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="DRAFT_4.xlsx"` {
		t.Errorf("Content-Disposition = %s", cd)
	}
}

func TestExportCalendar_Success(t *testing.T) {
	handler := NewTimetableHandler(&mockTimetableService{}, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/timetable/calendar", map[string]any{
		"filename":      "DRAFT_4",
		"class_pattern": "EL 3",
		"start_date":    "2024-09-02",
		"end_date":      "2024-09-06",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/calendar" {
		t.Errorf("Content-Type = %s, want text/calendar", ct)
	}
}

func TestExportCalendar_BadDate(t *testing.T) {
	handler := NewTimetableHandler(&mockTimetableService{}, &mockCalendarService{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/timetable/calendar", map[string]any{
		"filename":      "DRAFT_4",
		"class_pattern": "EL 3",
		"start_date":    "02/09/2024",
		"end_date":      "2024-09-06",
	})

	// Rejected either by schema validation (422) or by the handler's own
	// date parsing (400)
	if resp.Code != http.StatusBadRequest && resp.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 400 or 422", resp.Code)
	}
}
