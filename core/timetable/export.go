// ABOUTME: Excel export for extracted timetables
// ABOUTME: Renders one sheet with a period header row and one row per weekday

package timetable

import (
	"bytes"
	"context"

	coreerrors "timetable-app-api/core/errors"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Timetable"

// ExportExcel renders the timetable for a class pattern as an xlsx workbook.
func (s *Service) ExportExcel(ctx context.Context, filename, classPattern string) ([]byte, error) {
	timetable, err := s.GetTimetable(ctx, filename, classPattern)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, coreerrors.WrapError(err, "creating export sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, coreerrors.WrapError(err, "removing default sheet")
	}

	header := append([]string{"Day"}, timetable.Periods...)
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	for i, day := range timetable.Days {
		row := make([]string, 0, len(day.Slots)+1)
		row = append(row, day.Day)
		for _, slot := range day.Slots {
			row = append(row, slot.Value)
		}
		if err := setRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, coreerrors.WrapError(err, "writing workbook")
	}

	return buf.Bytes(), nil
}

// setRow writes one row of string cells starting at column A.
func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return coreerrors.WrapError(err, "resolving cell name")
	}
	if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
		return coreerrors.WrapError(err, "writing row")
	}
	return nil
}
