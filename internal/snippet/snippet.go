package snippet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FromWorkbook reads the snippet values below the named column header in the
// named sheet of an xlsx workbook. Row order is preserved and every data row
// is included; blank cells are skipped.
func FromWorkbook(path, sheet, column string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	col := -1
	for i, name := range rows[0] {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in sheet %q", column, sheet)
	}

	var snippets []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		snippets = append(snippets, v)
	}

	return snippets, nil
}
