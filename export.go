package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	FORMAT_XLSX   = "xlsx"
	FORMAT_CSV    = "csv"
	FORMAT_TEXT   = "text"
	DEFAULT_SHEET = "Sheet1"
)

var ErrUnknownFormat = errors.New("unknown format")

// formatExt maps an export format to the file extension it is saved
// with
var formatExt = map[string]string{
	FORMAT_XLSX: ".xlsx",
	FORMAT_CSV:  ".csv",
	FORMAT_TEXT: ".txt",
}

// Export writes rep to filename in format, adding the extension for
// format if filename lacks it, and returns the name actually written
func Export(filename, format, sheet string, rep Report) (string, error) {
	ext, ok := formatExt[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	filename = EnsureExt(filename, ext)
	if format == FORMAT_XLSX {
		return filename, WriteXLSX(filename, sheet, rep)
	}
	write := WriteCSV
	if format == FORMAT_TEXT {
		write = WriteTable
	}
	return filename, writeFile(filename, rep, write)
}

// writeFile creates filename and fills it with write. The file is
// removed if anything fails so no partial report is left behind.
func writeFile(filename string, rep Report,
	write func(io.Writer, Report) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(filename)
		}
	}()
	if err = write(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteXLSX saves rep as a single worksheet named sheet with a bold
// header row
func WriteXLSX(filename, sheet string, rep Report) error {
	if sheet == "" {
		sheet = DEFAULT_SHEET
	}
	f := excelize.NewFile()
	defer f.Close()
	if sheet != DEFAULT_SHEET {
		if err := f.SetSheetName(DEFAULT_SHEET, sheet); err != nil {
			return err
		}
	}
	headers := make([]any, 0, len(rep.Headers()))
	for _, h := range rep.Headers() {
		headers = append(headers, h)
	}
	rows := append([][]any{headers}, rep.Table()...)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
		return err
	}
	return f.SaveAs(filename)
}

// WriteCSV writes rep to w as comma-separated values with full
// precision
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rep.Headers()); err != nil {
		return err
	}
	for _, row := range rep.Rows {
		err := cw.Write([]string{
			strconv.Itoa(row.Triplet),
			row.TripletEnergy.String(),
			strconv.Itoa(row.Singlet),
			row.SingletEnergy.String(),
			strconv.FormatFloat(row.SOC, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes rep to w as fixed-width columns
func WriteTable(w io.Writer, rep Report) error {
	nw := bufio.NewWriter(w)
	h := rep.Headers()
	fmt.Fprintf(nw, "%15s%21s%15s%21s%12s\n", h[0], h[1], h[2], h[3], h[4])
	for _, row := range rep.Rows {
		fmt.Fprintf(nw, "%15d%21s%15d%21s%12.4f\n",
			row.Triplet, row.TripletEnergy.Format(3),
			row.Singlet, row.SingletEnergy.Format(3),
			row.SOC,
		)
	}
	return nw.Flush()
}
