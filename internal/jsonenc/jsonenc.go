// Package jsonenc holds the JSON encoding helpers shared by the record,
// geo and collection packages. Output is compact and never HTML-escaped.
package jsonenc

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Marshal encodes v like json.Marshal but leaves <, > and & unescaped.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, eris.Wrap(err, "jsonenc: encode")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Compact strips insignificant whitespace from raw.
func Compact(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, eris.Wrap(err, "jsonenc: compact")
	}
	return buf.Bytes(), nil
}
