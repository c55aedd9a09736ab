// Package text implements the escaping rules of the fastjson dialect.
//
// Escaped string content travels through the parse buffer and is unescaped in
// place, mangling the buffer but costing no allocation. The escape table is
// the RFC 8259 single-letter set plus the solidus; \u escapes are not
// supported in either direction.
package text

import (
	"errors"
	"fmt"
)

var (
	// ErrUnicodeEscape is returned for a \u sequence in either direction.
	ErrUnicodeEscape = errors.New("unicode escapes are not supported")
	// ErrInvalidEscape is returned for a backslash followed by anything not
	// in the escape table.
	ErrInvalidEscape = errors.New("invalid escape sequence in string")
	// ErrControlChar is returned when escaping content holding a control
	// character that has no single-letter escape.
	ErrControlChar = errors.New("control character has no supported escape")
)

// Escape appends the dialect-escaped form of src to dst. The characters
// " \ / and the control codes \b \f \n \r \t are escaped; any other byte
// below 0x20 fails with ErrControlChar as the dialect has no \u escapes to
// fall back on.
func Escape(dst, src []byte) (b []byte, err error) {
	b = dst
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '"', '\\', '/':
			b = append(b, '\\', c)
		case '\b':
			b = append(b, '\\', 'b')
		case '\f':
			b = append(b, '\\', 'f')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		default:
			if c < 0x20 {
				err = fmt.Errorf("%w: 0x%02x", ErrControlChar, c)
				return
			}
			b = append(b, c)
		}
	}
	return
}

// EscapeJSON appends the strict RFC 8259 escaped form of src to dst: the
// solidus is left verbatim and control characters outside the single-letter
// table become \u00XX escapes. It cannot fail.
func EscapeJSON(dst, src []byte) (b []byte) {
	const hextable = "0123456789abcdef"
	b = dst
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '"', '\\':
			b = append(b, '\\', c)
		case '\b':
			b = append(b, '\\', 'b')
		case '\f':
			b = append(b, '\\', 'f')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		default:
			if c < 0x20 {
				b = append(b, '\\', 'u', '0', '0', hextable[c>>4], hextable[c&0xf])
			} else {
				b = append(b, c)
			}
		}
	}
	return
}

// Unescape reverses Escape in place, rewriting dst instead of appending to a
// fresh slice, eliminating a memory copy. The original buffer is mangled by
// this operation; the result aliases its front.
//
// A \u sequence fails with ErrUnicodeEscape, any other unknown escape with
// ErrInvalidEscape, and a trailing lone backslash with ErrInvalidEscape.
func Unescape(dst []byte) (b []byte, err error) {
	var r, w int
	for ; r < len(dst); r++ {
		if dst[r] != '\\' {
			dst[w] = dst[r]
			w++
			continue
		}
		r++
		if r >= len(dst) {
			err = ErrInvalidEscape
			return
		}
		switch c := dst[r]; c {
		case '"', '\\', '/':
			dst[w] = c
			w++
		case 'b':
			dst[w] = '\b'
			w++
		case 'f':
			dst[w] = '\f'
			w++
		case 'n':
			dst[w] = '\n'
			w++
		case 'r':
			dst[w] = '\r'
			w++
		case 't':
			dst[w] = '\t'
			w++
		case 'u':
			err = ErrUnicodeEscape
			return
		default:
			err = fmt.Errorf("%w: \\%c", ErrInvalidEscape, c)
			return
		}
	}
	b = dst[:w]
	return
}
