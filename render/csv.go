package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV(w io.Writer, data any, cfg config) error {
	g, err := tabulate(CSV, data, cfg)
	if err != nil || len(g.rows) == 0 {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = cfg.delimiter
	if err := cw.Write(g.header); err != nil {
		return err
	}
	for _, row := range g.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVRow(w io.Writer, row []string, cfg config) error {
	cw := csv.NewWriter(w)
	cw.Comma = cfg.delimiter
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, data any, cfg config) error {
	g, err := tabulate(TSV, data, cfg)
	if err != nil || len(g.rows) == 0 {
		return err
	}
	if err := writeTSVRow(w, g.header); err != nil {
		return err
	}
	for _, row := range g.rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

func writeTSVRow(w io.Writer, row []string) error {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = tsvEscaper.Replace(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}
