// ABOUTME: Timetable handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for extraction, Excel download, and calendar export

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"timetable-app-api/api/dto/requests"
	"timetable-app-api/core/domain"
	"timetable-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// TimetableHandler handles timetable extraction requests
type TimetableHandler struct {
	timetableService interfaces.TimetableService
	calendarService  interfaces.CalendarService
}

// NewTimetableHandler creates a new timetable handler
func NewTimetableHandler(timetableService interfaces.TimetableService, calendarService interfaces.CalendarService) *TimetableHandler {
	return &TimetableHandler{
		timetableService: timetableService,
		calendarService:  calendarService,
	}
}

// RegisterRoutes registers all timetable-related routes
func (h *TimetableHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getTimetable",
		Method:      http.MethodPost,
		Path:        "/timetable",
		Summary:     "Extract a class timetable",
		Description: "Extracts the weekly timetable for a class pattern from a draft workbook",
		Tags:        []string{"Timetable"},
	}, h.GetTimetable)

	huma.Register(api, huma.Operation{
		OperationID: "downloadTimetable",
		Method:      http.MethodPost,
		Path:        "/timetable/download",
		Summary:     "Download a timetable as Excel",
		Description: "Extracts the weekly timetable and returns it as an xlsx workbook",
		Tags:        []string{"Timetable"},
	}, h.DownloadTimetable)

	huma.Register(api, huma.Operation{
		OperationID: "exportCalendar",
		Method:      http.MethodPost,
		Path:        "/timetable/calendar",
		Summary:     "Export a timetable as iCalendar",
		Description: "Generates class events for a date range and returns an ics document",
		Tags:        []string{"Timetable"},
	}, h.ExportCalendar)
}

// GetTimetableInput defines the input for the GetTimetable operation
type GetTimetableInput struct {
	Body requests.TimetableRequest
}

// GetTimetableOutput defines the output for the GetTimetable operation
type GetTimetableOutput struct {
	Body domain.Timetable
}

// GetTimetable handles timetable extraction
func (h *TimetableHandler) GetTimetable(ctx context.Context, input *GetTimetableInput) (*GetTimetableOutput, error) {
	timetable, err := h.timetableService.GetTimetable(ctx, input.Body.Filename, input.Body.ClassPattern)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetTimetableOutput{Body: *timetable}, nil
}

// DownloadTimetableOutput defines the output for the DownloadTimetable operation
type DownloadTimetableOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// DownloadTimetable handles Excel export
func (h *TimetableHandler) DownloadTimetable(ctx context.Context, input *GetTimetableInput) (*DownloadTimetableOutput, error) {
	data, err := h.timetableService.ExportExcel(ctx, input.Body.Filename, input.Body.ClassPattern)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DownloadTimetableOutput{
		ContentType:        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		ContentDisposition: attachment(input.Body.Filename, "xlsx"),
		Body:               data,
	}, nil
}

// ExportCalendarInput defines the input for the ExportCalendar operation
type ExportCalendarInput struct {
	Body requests.CalendarRequest
}

// ExportCalendarOutput defines the output for the ExportCalendar operation
type ExportCalendarOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// ExportCalendar handles iCalendar export
func (h *TimetableHandler) ExportCalendar(ctx context.Context, input *ExportCalendarInput) (*ExportCalendarOutput, error) {
	start, err := time.Parse("2006-01-02", input.Body.StartDate)
	if err != nil {
		return nil, huma.Error400BadRequest("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", input.Body.EndDate)
	if err != nil {
		return nil, huma.Error400BadRequest("end_date must be YYYY-MM-DD")
	}

	timetable, err := h.timetableService.GetTimetable(ctx, input.Body.Filename, input.Body.ClassPattern)
	if err != nil {
		return nil, toHumaError(err)
	}

	data, err := h.calendarService.Generate(timetable, start, end)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExportCalendarOutput{
		ContentType:        "text/calendar",
		ContentDisposition: attachment(input.Body.Filename, "ics"),
		Body:               data,
	}, nil
}

// attachment builds a Content-Disposition value for a generated file.
func attachment(filename, ext string) string {
	base := strings.SplitN(filename, ".", 2)[0]
	return fmt.Sprintf(`attachment; filename="%s.%s"`, base, ext)
}
