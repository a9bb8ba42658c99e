// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf16"
	"unicode/utf8"
)

// WriteOptions controls JSON serialization.
type WriteOptions struct {
	// ASCIIOnly escapes every non-ASCII character (and DEL) as \uXXXX,
	// using surrogate pairs outside the Basic Multilingual Plane.
	ASCIIOnly bool
}

// Encode serializes v as a JSON document indented with two spaces. HTML
// characters are left as-is and no trailing newline is added. Pass a
// non-nil slice to get [] for an empty deck.
func Encode(v any, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if opts.ASCIIOnly {
		data = escapeNonASCII(data)
	}
	return data, nil
}

// WriteJSON encodes v and writes it to path, creating or truncating the
// file.
func WriteJSON(path string, v any, opts WriteOptions) error {
	data, err := Encode(v, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, classifyWriteError(err))
	}
	return nil
}

// escapeNonASCII rewrites encoded JSON so that it only contains printable
// ASCII. Bytes above 0x7e only ever occur inside string literals, so the
// rewrite is safe without tracking lexer state.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for len(data) > 0 {
		b := data[0]
		if b < 0x7f {
			out.WriteByte(b)
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r <= 0xffff {
			fmt.Fprintf(&out, `\u%04x`, r)
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(&out, `\u%04x\u%04x`, hi, lo)
	}
	return out.Bytes()
}
