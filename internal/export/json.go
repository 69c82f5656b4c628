package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/insight"
)

type jsonDocument struct {
	Title      string      `json:"title"`
	ExportedAt string      `json:"exportedAt"`
	Headers    []string    `json:"headers"`
	Data       []rowObject `json:"data"`
}

// rowObject marshals as a JSON object whose keys follow header order.
type rowObject struct {
	keys []string
	vals []any
}

func (r rowObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshal(k, "")
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshal(r.vals[i], "")
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON returns {title, exportedAt, headers, data} indented by two spaces.
// exportedAt is at in UTC with millisecond precision.
func ToJSON(t insight.Table, at time.Time) (string, error) {
	doc := jsonDocument{
		Title:      t.Title,
		ExportedAt: at.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Headers:    t.Headers,
		Data:       make([]rowObject, 0, len(t.Rows)),
	}
	if doc.Headers == nil {
		doc.Headers = []string{}
	}
	for _, row := range t.Rows {
		obj := rowObject{keys: t.Headers, vals: make([]any, len(t.Headers))}
		copy(obj.vals, row)
		doc.Data = append(doc.Data, obj)
	}
	b, err := marshal(doc, "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", t.Title, err)
	}
	return string(b), nil
}

// marshal encodes v without HTML escaping or the encoder's trailing newline.
func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
