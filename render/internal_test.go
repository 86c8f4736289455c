package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/presenter"
)

var errInternalWrite = errors.New("write failed")

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, alignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, alignRight))
	assert.Equal(t, "abcdef", alignCell("abcdef", 4, alignRight))
	assert.Equal(t, "你好", alignCell("你好", 4, alignLeft))
}

func TestCellString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want string
	}{
		"nil":    {in: nil, want: ""},
		"string": {in: "s", want: "s"},
		"int":    {in: 42, want: "42"},
		"bool":   {in: true, want: "true"},
		"map":    {in: presenter.MapOf("a", 1), want: `{"a":1}`},
		"list":   {in: []any{1, "x"}, want: `[1,"x"]`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cellString(tt.in))
		})
	}
}

func TestTabulateNumericColumns(t *testing.T) {
	t.Parallel()
	g, err := tabulate(Table, []any{
		presenter.MapOf("n", 1, "s", "x", "mixed", 1, "empty", nil),
		presenter.MapOf("n", 2.5, "s", "y", "mixed", "z", "empty", nil),
	}, newConfig(nil))
	assert.NoError(t, err)
	assert.Equal(t, []string{"n", "s", "mixed", "empty"}, g.header)
	assert.Equal(t, []bool{true, false, false, false}, g.numeric)
}

func TestRowsOfPageDetection(t *testing.T) {
	t.Parallel()
	rows, ok := rowsOf(presenter.MapOf("data", []any{1, 2}))
	assert.True(t, ok)
	assert.Len(t, rows, 1, "a map without current_page is a single row")

	rows, ok = rowsOf(presenter.MapOf("current_page", 1, "data", []any{1, 2}))
	assert.True(t, ok)
	assert.Len(t, rows, 2)
}

func TestWriteCSVRowSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := writeCSVRow(&buf, []string{"a", "b"}, newConfig(nil))
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n", buf.String())
}

func TestWriteCSVRowError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Small data: flush error hit via cw.Error().
	err := writeCSVRow(w, []string{"a", "b"}, newConfig(nil))
	assert.Error(t, err)
}

func TestWriteCSVRowLargeDataError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Large data exceeds bufio buffer (4096 bytes), causing cw.Write to fail.
	big := strings.Repeat("x", 5000)
	err := writeCSVRow(w, []string{big}, newConfig(nil))
	assert.Error(t, err)
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
