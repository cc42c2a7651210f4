// ABOUTME: Timetable service handles workbook extraction and caching
// ABOUTME: Provides business logic for timetable operations independent of HTTP layer

package timetable

import (
	"context"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"timetable-app-api/core/domain"
	coreerrors "timetable-app-api/core/errors"
	"timetable-app-api/core/extract"
	"timetable-app-api/core/interfaces"

	"errors"
)

// Service extracts timetables from draft workbooks with cache-aside reads.
type Service struct {
	deps      interfaces.Dependencies
	reader    interfaces.WorkbookReader
	draftsDir string
	ttl       time.Duration
}

// NewService creates a new timetable service instance
func NewService(deps interfaces.Dependencies, reader interfaces.WorkbookReader, draftsDir string, ttl time.Duration) *Service {
	return &Service{
		deps:      deps,
		reader:    reader,
		draftsDir: draftsDir,
		ttl:       ttl,
	}
}

// GetTimetable returns the weekly timetable for a class pattern, serving
// from cache when a fresh entry exists.
func (s *Service) GetTimetable(ctx context.Context, filename, classPattern string) (*domain.Timetable, error) {
	pattern, err := s.validate(filename, classPattern)
	if err != nil {
		return nil, err
	}

	key := domain.CacheKey(filename, classPattern)

	if cached := s.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	path := filepath.Join(s.draftsDir, draftFilename(filename))
	sheets, err := s.reader.ReadWorkbook(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &coreerrors.NotFoundError{Resource: "draft", ID: filename}
		}
		return nil, coreerrors.WrapError(err, "reading draft workbook")
	}

	timetable, err := extract.WeeklyTimetable(sheets, pattern, classPattern)
	if err != nil {
		return nil, coreerrors.WrapError(err, "extracting timetable")
	}

	s.cacheTimetable(ctx, key, timetable)

	return timetable, nil
}

// validate checks the request inputs and compiles the class pattern.
func (s *Service) validate(filename, classPattern string) (*regexp.Regexp, error) {
	if filename == "" {
		return nil, &coreerrors.ValidationError{Field: "filename", Message: "cannot be empty"}
	}
	// Draft names address files inside the drafts directory only.
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return nil, &coreerrors.ValidationError{Field: "filename", Message: "must not contain path separators"}
	}
	if classPattern == "" {
		return nil, &coreerrors.ValidationError{Field: "class_pattern", Message: "cannot be empty"}
	}

	pattern, err := regexp.Compile(classPattern)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "class_pattern", Message: "not a valid pattern"}
	}

	return pattern, nil
}

// getCached returns the cached timetable for key, or nil on miss or decode
// failure.
func (s *Service) getCached(ctx context.Context, key string) *domain.Timetable {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var timetable domain.Timetable
	if err := json.Unmarshal(data, &timetable); err != nil {
		// A corrupt entry is treated as a miss and overwritten.
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Discarding corrupt cache entry", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil
	}

	return &timetable
}

// cacheTimetable stores the timetable under key. Cache write failures are
// logged, never surfaced to the caller.
func (s *Service) cacheTimetable(ctx context.Context, key string, timetable *domain.Timetable) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(timetable)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to cache timetable", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// draftFilename appends the workbook extension when the draft name lacks it.
func draftFilename(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return filename
	}
	return filename + ".xlsx"
}
