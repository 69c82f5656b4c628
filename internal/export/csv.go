// Package export serializes view tables to CSV and JSON, names download
// files, and hands image formats to a renderer snapshot.
package export

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/alexanderramin/vista/internal/insight"
)

// ToCSV writes the header row and then one line per data row, joined by
// "\n" with no trailing newline. A cell is quoted only when it contains a
// comma, a double quote or a newline.
func ToCSV(t insight.Table) string {
	var b strings.Builder
	writeCSVLine(&b, stringsToCells(t.Headers))
	for _, row := range t.Rows {
		b.WriteByte('\n')
		writeCSVLine(&b, row)
	}
	return b.String()
}

func writeCSVLine(b *strings.Builder, cells []any) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCSV(FormatCell(c)))
	}
}

func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatCell renders a table cell as text. Floats use the shortest
// representation that round-trips, so 45.0 prints as "45".
func FormatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(c)
	case interface{ String() string }:
		return c.String()
	}
	return formatKind(reflect.ValueOf(v))
}

// formatKind covers named and sized types by their underlying kind, so a
// domain.Department cell prints the same in CSV as it does in JSON.
func formatKind(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return formatKind(rv.Elem())
	}
	return fmt.Sprint(rv.Interface())
}

func stringsToCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
