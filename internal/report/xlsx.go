package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes one sheet per table. Number columns are stored as numbers.
func WriteXLSX(w io.Writer, tables ...*TableData) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	used := map[string]bool{}
	for i, t := range tables {
		sheet := sheetName(t.Title, i, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeSheet(f, sheet, t, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sheet string, t *TableData, headerStyle int) error {
	if len(t.Columns) == 0 {
		return nil
	}
	for c, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Label); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range t.Rows {
		for c, val := range row {
			if c >= len(t.Columns) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(t.Columns[c], val)); err != nil {
				return err
			}
		}
	}

	for c, col := range t.Columns {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, columnWidth(col, t.Rows, c)); err != nil {
			return err
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cellValue(col Column, val string) any {
	if col.Type != "number" {
		return val
	}
	if n, err := strconv.ParseFloat(val, 64); err == nil {
		return n
	}
	return val
}

func columnWidth(col Column, rows [][]string, c int) float64 {
	width := len([]rune(col.Label))
	for _, row := range rows {
		if c < len(row) {
			width = max(width, len([]rune(row[c])))
		}
	}
	return float64(min(width, 60) + 2)
}

// sheetName makes a title usable as a sheet name: at most 31 characters,
// none of []:*?/\ and unique within the workbook.
func sheetName(title string, i int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = fmt.Sprintf("Sheet%d", i+1)
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	for base, n := name, 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(base)
		if len(r)+len(suffix) > 31 {
			r = r[:31-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
