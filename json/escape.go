package json

import (
	"unicode/utf8"

	"github.com/zoobzio/serde"
)

// escapes maps each escapable byte to its replacement. Empty entries pass
// through verbatim, including bytes above 0x1F and multi-byte UTF-8
// sequences; nothing is re-escaped as \uXXXX.
var escapes = [256]string{
	'"':  `\"`,
	'\\': `\\`,
	0x08: `\b`,
	0x0c: `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// EscapeBytes writes b to sink as a JSON string literal. The pass is single
// and linear: runs of unescaped bytes are flushed verbatim whenever an
// escapable byte interrupts them.
func EscapeBytes(sink serde.Sink, b []byte) error {
	if err := writeString(sink, `"`); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(b); i++ {
		esc := escapes[b[i]]
		if esc == "" {
			continue
		}
		if start < i {
			if err := write(sink, b[start:i]); err != nil {
				return err
			}
		}
		if err := writeString(sink, esc); err != nil {
			return err
		}
		start = i + 1
	}

	if start < len(b) {
		if err := write(sink, b[start:]); err != nil {
			return err
		}
	}

	return writeString(sink, `"`)
}

// EscapeString writes s to sink as a JSON string literal.
func EscapeString(sink serde.Sink, s string) error {
	if err := writeString(sink, `"`); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(s); i++ {
		esc := escapes[s[i]]
		if esc == "" {
			continue
		}
		if start < i {
			if err := writeString(sink, s[start:i]); err != nil {
				return err
			}
		}
		if err := writeString(sink, esc); err != nil {
			return err
		}
		start = i + 1
	}

	if start < len(s) {
		if err := writeString(sink, s[start:]); err != nil {
			return err
		}
	}

	return writeString(sink, `"`)
}

// EscapeRune writes r to sink as a one-character JSON string: the rune is
// encoded to UTF-8 first, then byte-escaped.
func EscapeRune(sink serde.Sink, r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return EscapeBytes(sink, buf[:n])
}
