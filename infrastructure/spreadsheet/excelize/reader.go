// ABOUTME: Workbook reader built on excelize
// ABOUTME: Loads sheets as string grids with two-column merged ranges expanded

package excelize

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Reader implements the WorkbookReader interface using excelize
type Reader struct{}

// NewReader creates a new workbook reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadWorkbook loads every sheet of the workbook at path as a string grid.
// Draft timetables merge a class entry across two period columns when a
// session spans both; those merges are expanded so the value appears in each
// covered cell, matching how the grids are filtered downstream.
func (r *Reader) ReadWorkbook(path string) (map[string][][]string, error) {
	// Surface fs.ErrNotExist for missing drafts before excelize wraps it.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	grids := make(map[string][][]string, len(sheets))

	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}

		if err := expandMerges(f, sheet, &rows); err != nil {
			return nil, fmt.Errorf("expanding merges in sheet %s: %w", sheet, err)
		}

		grids[sheet] = rows
	}

	return grids, nil
}

// expandMerges copies the anchor value of every two-column-wide merged range
// into each cell the range covers.
func expandMerges(f *excelize.File, sheet string, rows *[][]string) error {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return err
	}

	for _, merge := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			return err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			return err
		}

		if endCol-startCol != 1 {
			continue
		}

		value := merge.GetCellValue()
		for row := startRow; row <= endRow; row++ {
			for col := startCol; col <= endCol; col++ {
				setCell(rows, row, col, value)
			}
		}
	}

	return nil
}

// setCell writes a value at 1-based coordinates, growing the grid as needed;
// GetRows trims trailing empty cells, so merged ranges can point past row
// ends.
func setCell(rows *[][]string, row, col int, value string) {
	for len(*rows) < row {
		*rows = append(*rows, nil)
	}
	r := &(*rows)[row-1]
	for len(*r) < col {
		*r = append(*r, "")
	}
	(*r)[col-1] = value
}
