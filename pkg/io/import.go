package io

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/tree"
)

// ReadOptions controls how rows are read from a source.
type ReadOptions struct {
	// Header skips the first record.
	Header bool
	// Sheet selects the worksheet of a spreadsheet. Empty means the sheet
	// that was active when the workbook was saved.
	Sheet string
	// Comma is the CSV field separator. Zero means ','.
	Comma rune
}

// Supported input formats, keyed by file extension.
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
)

// bom is the byte order mark spreadsheet tools put in front of CSV exports.
const bom = "\ufeff"

// DetectFormat returns the input format implied by path's extension.
func DetectFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported input format %q (want .csv, .tsv or .xlsx)", ext)
	}
}

// ReadCSV reads delimited rows from r.
//
// Records may have different lengths. Each record keeps its 1-based line
// number so later errors can point at the offending row. ReadCSV does not
// close r.
func ReadCSV(r io.Reader, opts ReadOptions) ([]tree.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	var rows []tree.Row
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read csv")
		}
		if first {
			if len(rec) > 0 {
				rec[0] = strings.TrimPrefix(rec[0], bom)
			}
			if opts.Header {
				continue
			}
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, tree.Row{Line: line, Cells: rec})
	}
	return rows, nil
}

// ReadXLSX reads rows from one worksheet of an Excel workbook.
//
// Cells are read as raw values, so numbers keep full precision regardless
// of their display format. Every row is padded to the widest row of the
// sheet. Line numbers are worksheet row numbers.
// ReadXLSX does not close r.
func ReadXLSX(r io.Reader, opts ReadOptions) ([]tree.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "workbook has no sheet %q", sheet)
	}

	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read sheet %q", sheet)
	}

	// GetRows drops trailing empty cells. Pad every row back to the sheet
	// width so a blank value cell stays in the value column.
	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}

	rows := make([]tree.Row, 0, len(records))
	for i, rec := range records {
		if i == 0 && opts.Header {
			continue
		}
		if n := width - len(rec); n > 0 {
			rec = append(rec, make([]string, n)...)
		}
		rows = append(rows, tree.Row{Line: i + 1, Cells: rec})
	}
	return rows, nil
}

// ImportRows reads the file at path, choosing the reader by extension.
func ImportRows(path string, opts ReadOptions) ([]tree.Row, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	switch format {
	case FormatXLSX:
		return ReadXLSX(f, opts)
	case FormatTSV:
		if opts.Comma == 0 {
			opts.Comma = '\t'
		}
	}
	return ReadCSV(f, opts)
}
