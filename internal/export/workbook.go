package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// SheetSpec is one worksheet: a bold, filterable header row followed by data rows
type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

type Workbook struct {
	File *excelize.File
}

func NewWorkbook(sheets []SheetSpec) (*Workbook, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, s := range sheets {
		name := sheetName(s.Title)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet: %w", err)
		}

		for col, h := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, h); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		if len(s.Header) > 0 {
			end := colName(len(s.Header)) + "1"
			_ = f.SetCellStyle(name, "A1", end, bold)
			_ = f.AutoFilter(name, "A1:"+end, nil)
		}

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}

		// width from the header and the first 50 rows
		for c := 1; c <= len(s.Header); c++ {
			widest := len([]rune(s.Header[c-1]))
			for r := 0; r < min(50, len(s.Rows)); r++ {
				if c-1 < len(s.Rows[r]) {
					if l := len([]rune(s.Rows[r][c-1])); l > widest {
						widest = l
					}
				}
			}
			_ = f.SetColWidth(name, colName(c), colName(c), clampWidth(float64(widest)*0.9))
		}
	}
	return &Workbook{File: f}, nil
}

// Bytes renders the workbook for an HTTP attachment
func (w *Workbook) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.File.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Workbook) Close() error { return w.File.Close() }

// FileName builds "<prefix>_YYYY-MM-DD.xlsx"
func FileName(prefix string, at time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", sanitizeFileName(prefix), at.Format("2006-01-02"))
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func clampWidth(w float64) float64 {
	if w < 12 {
		return 12
	}
	if w > 40 {
		return 40
	}
	return w
}

// sheet names are limited to 31 chars and may not contain []:*?/\
func sheetName(title string) string {
	r := strings.NewReplacer("[", "", "]", "", ":", "", "*", "", "?", "", "/", "-", "\\", "-")
	name := strings.TrimSpace(r.Replace(title))
	if name == "" {
		name = defaultSheet
	}
	if rs := []rune(name); len(rs) > 31 {
		name = string(rs[:31])
	}
	return name
}

func sanitizeFileName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "export"
	}
	return b.String()
}
