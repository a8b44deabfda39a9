// Package export serializes warehouse result sets to CSV and XLSX.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"github.com/zoobzio/wareql/internal/errors"
	"github.com/zoobzio/wareql/warehouse"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "warehouse_data.csv"

// SheetName is the single worksheet written by FormatXLSX.
const SheetName = "Data"

// ParseFormat parses a format name, accepting an optional leading dot.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(s, "."))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return ParseFormat(ext)
}

// Write serializes rs to w.
func Write(w io.Writer, format Format, rs *warehouse.ResultSet) error {
	if rs == nil {
		return fmt.Errorf("result set cannot be nil")
	}
	switch format {
	case FormatCSV:
		return writeCSV(w, rs)
	case FormatXLSX:
		return writeXLSX(w, rs)
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}

// WriteFile writes rs to path in the format implied by its extension.
// An empty path writes DefaultFileName.
func WriteFile(path string, rs *warehouse.ResultSet, logger zerolog.Logger) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer errors.DeferClose(logger, f, "failed to close export file")

	if err := Write(f, format, rs); err != nil {
		return "", err
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("rows", rs.Len()).
		Msg("Result exported")
	return path, nil
}

func writeCSV(w io.Writer, rs *warehouse.ResultSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rs.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		for i := range record {
			record[i] = FormatCell(row[i])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, rs *warehouse.ResultSet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, name := range rs.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for r, row := range rs.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetName, cell, excelValue(v)); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// excelValue keeps numbers and booleans native so spreadsheets can compute on them.
func excelValue(v any) any {
	switch val := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, bool:
		return val
	default:
		return FormatCell(v)
	}
}

// FormatCell renders a cell as text. NULL is empty, a time at midnight
// is a date and any other time is RFC3339.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		if isDate(val) {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case *big.Int:
		if val == nil {
			return ""
		}
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func isDate(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
