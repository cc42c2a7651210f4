// Package core contains the business logic for the Timetable API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Timetable, DaySchedule, Slot)
// - extract: Turning raw workbook grids into weekly timetables
// - timetable: Extraction orchestration, caching, and Excel export
// - calendar: iCalendar generation from timetables
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, workbook reader, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	service := timetable.NewService(deps, reader, "drafts", time.Hour)
//	tt, err := service.GetTimetable(ctx, "DRAFT_4", "EL 3")
package core
