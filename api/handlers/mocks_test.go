package handlers

import (
	"context"
	"errors"
	"time"

	"timetable-app-api/core/domain"
)

// mockTimetableService is a mock implementation of the timetable service
type mockTimetableService struct {
	getFunc    func(ctx context.Context, filename, classPattern string) (*domain.Timetable, error)
	exportFunc func(ctx context.Context, filename, classPattern string) ([]byte, error)
}

func (m *mockTimetableService) GetTimetable(ctx context.Context, filename, classPattern string) (*domain.Timetable, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, filename, classPattern)
	}
	return &domain.Timetable{Class: classPattern}, nil
}

func (m *mockTimetableService) ExportExcel(ctx context.Context, filename, classPattern string) ([]byte, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, filename, classPattern)
	}
	return []byte("xlsx-bytes"), nil
}

// mockCalendarService is a mock implementation of the calendar service
type mockCalendarService struct {
	generateFunc func(timetable *domain.Timetable, start, end time.Time) ([]byte, error)
}

func (m *mockCalendarService) Generate(timetable *domain.Timetable, start, end time.Time) ([]byte, error) {
	if m.generateFunc != nil {
		return m.generateFunc(timetable, start, end)
	}
	return []byte("BEGIN:VCALENDAR"), nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}
