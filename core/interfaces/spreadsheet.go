package interfaces

// WorkbookReader loads a spreadsheet workbook as plain string grids, one per
// sheet, with merged ranges already expanded. Grids are rows of cells; rows
// may be ragged where trailing cells are empty.
type WorkbookReader interface {
	ReadWorkbook(path string) (map[string][][]string, error)
}
