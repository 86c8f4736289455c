package render

import (
	"fmt"
	"io"
	"strings"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown(w io.Writer, data any, cfg config) error {
	g, err := tabulate(Markdown, data, cfg)
	if err != nil || len(g.rows) == 0 {
		return err
	}
	header := escapeMarkdown(g.header)
	rows := make([][]string, len(g.rows))
	for i, row := range g.rows {
		rows[i] = escapeMarkdown(row)
	}

	// Minimum width 3 leaves room for alignment markers.
	widths := computeWidths(header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := columnAligns(g)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if aligns[i] == alignRight {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
