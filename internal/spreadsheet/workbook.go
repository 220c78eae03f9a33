package spreadsheet

import (
	"io"
	"time"

	"github.com/calibre9/scrape-import-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook wraps an uploaded xlsx file. One sheet per keyword; bookkeeping
// sheets are filtered out by DataSheets.
type Workbook struct {
	file *excelize.File
}

func OpenWorkbook(r io.Reader) (*Workbook, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(ErrUnreadableWorkbook, err.Error())
	}

	return &Workbook{file: file}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// DataSheets returns the sheets that hold scraped rows for the given scrape
// type, preserving workbook order.
func (w *Workbook) DataSheets(scrapeTypeID domain.ScrapeTypeID) []string {
	skip := make(map[string]struct{})
	for _, name := range skipSheets(scrapeTypeID) {
		skip[name] = struct{}{}
	}

	sheets := make([]string, 0)
	for _, name := range w.file.GetSheetList() {
		if _, skipped := skip[name]; skipped {
			continue
		}
		sheets = append(sheets, name)
	}

	return sheets
}

// Sheet is one keyword's worth of raw rows: a header row and the data rows
// beneath it, all as strings.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string

	columnIndex map[string]int
}

func (w *Workbook) ReadSheet(name string) (*Sheet, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", name)
	}

	if len(rows) == 0 {
		return NewSheet(name, nil, nil), nil
	}

	return NewSheet(name, rows[0], rows[1:]), nil
}

func NewSheet(name string, header []string, rows [][]string) *Sheet {
	sheet := &Sheet{
		Name:   name,
		Header: header,
		Rows:   rows,
	}

	sheet.columnIndex = make(map[string]int, len(header))
	for i, column := range header {
		if _, exists := sheet.columnIndex[column]; !exists {
			sheet.columnIndex[column] = i
		}
	}

	return sheet
}

func (s *Sheet) Empty() bool {
	return len(s.Rows) == 0
}

// HasColumn matches the header case-sensitively, per the layout contract.
func (s *Sheet) HasColumn(name string) bool {
	_, ok := s.columnIndex[name]
	return ok
}

// Cell returns the named column's value in the given row, or "" when the
// column is absent or the row is ragged (trailing blank cells are omitted
// by the xlsx reader).
func (s *Sheet) Cell(row []string, column string) string {
	index, ok := s.columnIndex[column]
	if !ok || index >= len(row) {
		return ""
	}
	return row[index]
}

// DetectDate finds the first parsable Date cell in the sheet, which the
// scrapers use to stamp the run. Falls back to the zero time when absent.
func (s *Sheet) DetectDate() time.Time {
	if !s.HasColumn(colDate) {
		return time.Time{}
	}

	for _, row := range s.Rows {
		if date := parseDate(s.Cell(row, colDate)); !date.IsZero() {
			return date
		}
	}

	return time.Time{}
}
