// ABOUTME: Request DTOs for timetable-related API endpoints
// ABOUTME: Provides validation constraints for incoming requests

package requests

// TimetableRequest represents the request body for extracting a timetable
type TimetableRequest struct {
	// Filename is the draft workbook name inside the drafts directory,
	// with or without the .xlsx extension
	Filename string `json:"filename" required:"true" minLength:"1" doc:"Draft workbook name, e.g. DRAFT_4"`

	// ClassPattern selects the class to extract, as a regular expression
	ClassPattern string `json:"class_pattern" required:"true" minLength:"1" doc:"Class pattern to extract, e.g. 'EL 3'"`
}

// CalendarRequest represents the request body for generating a calendar
type CalendarRequest struct {
	// Filename is the draft workbook name inside the drafts directory
	Filename string `json:"filename" required:"true" minLength:"1" doc:"Draft workbook name, e.g. DRAFT_4"`

	// ClassPattern selects the class to extract, as a regular expression
	ClassPattern string `json:"class_pattern" required:"true" minLength:"1" doc:"Class pattern to extract, e.g. 'EL 3'"`

	// StartDate is the first day covered by the calendar
	StartDate string `json:"start_date" required:"true" format:"date" doc:"First calendar day, YYYY-MM-DD"`

	// EndDate is the last day covered by the calendar, inclusive
	EndDate string `json:"end_date" required:"true" format:"date" doc:"Last calendar day, YYYY-MM-DD"`
}
