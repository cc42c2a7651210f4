package interfaces

// Dependencies holds the external dependencies required by the core
// business logic.
type Dependencies struct {
	// Cache provides caching functionality
	Cache Cache

	// Logger provides structured logging
	Logger Logger
}
