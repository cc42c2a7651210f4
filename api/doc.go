// Package api provides the HTTP API layer for the Timetable application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type TimetableRequest struct {
//	    Filename     string `json:"filename" required:"true" minLength:"1"`
//	    ClassPattern string `json:"class_pattern" required:"true" minLength:"1"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 100,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	timetableHandler := handlers.NewTimetableHandler(timetableService, calendarService)
//	timetableHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "draft not found: DRAFT_4"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
