package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet loads the named sheet from an .xlsx workbook as a grid of
// cell strings. A missing file or missing sheet is an error; everything
// past that is handled row by row in Normalize.
func ReadSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
