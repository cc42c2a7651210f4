// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, spreadsheet access, health probing, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-backed cache surviving restarts
// - health: Periodic probe gating startup on cache health
// - spreadsheet/excelize: Workbook reader with merged-cell expansion
// - logger/logrus: Structured logger implementation
//
// Infrastructure components are designed to be pluggable and configurable;
// the cache backend is selected at startup from configuration.
package infrastructure
