// Package reader parses fastjson dialect text into values.
//
// A reader slurps its whole input at construction and then hands out one top
// level value per Next call until only whitespace and comments remain, which
// is io.EOF. Parsing is destructive: token terminators are overwritten and
// string escapes are rewritten in place, so the buffer handed to NewBytes
// cannot be reused or re-parsed. Values handed out are independent of the
// buffer.
//
// There is no recovery: after a parse error the reader must be discarded.
// Nesting depth is bounded only by the goroutine stack; pathologically deep
// input will exhaust it.
package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"fastjson.lol/chk"
	"fastjson.lol/ints"
	"fastjson.lol/text"
	"fastjson.lol/value"
)

// Error is a parse error carrying the position it was raised at. Line counts
// from 1; Col is the byte offset since the last line break.
type Error struct {
	Line, Col int
	err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// T is a single-use parser over one buffer. Not safe for concurrent use.
type T struct {
	data   []byte
	cur    int
	line   int
	lastbr int
}

// New reads r to completion and returns a parser over the content.
func New(r io.Reader) (t *T, err error) {
	var data []byte
	if data, err = io.ReadAll(r); chk.E(err) {
		return
	}
	t = NewBytes(data)
	return
}

// NewBytes returns a parser that takes ownership of data. The buffer is
// mutated during parsing and must not be touched again by the caller.
func NewBytes(data []byte) *T {
	return &T{data: data, line: 1}
}

func (r *T) err(format string, a ...any) error {
	return &Error{Line: r.line, Col: r.cur - r.lastbr, err: fmt.Errorf(format, a...)}
}

// newline consumes bookkeeping for the line break class at cur without
// advancing.
func (r *T) newline(c byte) {
	if c == '\n' {
		r.line++
	}
	r.lastbr = r.cur + 1
}

// Next parses the next top level value. io.EOF means the input held no
// further value, only whitespace and comments; any other error is a *Error
// and ends the parse for good.
func (r *T) Next() (v value.T, err error) {
	for r.cur < len(r.data) {
		switch c := r.data[r.cur]; c {
		case '\n', '\r':
			r.newline(c)
			r.cur++
		case ' ', '\t':
			r.cur++
		case '+', '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return r.readNumber()
		case '{':
			return r.readObject()
		case '[':
			return r.readArray()
		case '"':
			return r.readString()
		case 'N':
			if bytes.HasPrefix(r.data[r.cur:], []byte("NULL")) {
				r.cur += 4
				return
			}
			err = r.err("unexpected character %q", c)
			return
		case '/':
			if r.cur+1 < len(r.data) && r.data[r.cur+1] == '/' {
				// skip to the line break but leave it for the dispatch loop
				// so the line counter sees it
				r.cur += 2
				for r.cur < len(r.data) && r.data[r.cur] != '\n' {
					r.cur++
				}
				continue
			}
			err = r.err("malformed comment")
			return
		default:
			err = r.err("unexpected character %q", c)
			return
		}
	}
	err = io.EOF
	return
}

// atoi converts pre-scanned numeric text with optional sign the way C atoi
// does: junk after the digits is ignored, no digits at all is zero.
func atoi(b []byte) (n int64) {
	var neg bool
	if len(b) > 0 && (b[0] == '-' || b[0] == '+') {
		neg = b[0] == '-'
		b = b[1:]
	}
	t := &ints.T{}
	if _, err := t.Unmarshal(b); err != nil {
		return 0
	}
	n = int64(t.N)
	if neg {
		n = -n
	}
	return
}

// atof converts pre-scanned numeric text; malformed text yields zero, which
// the dialect permits as an implementation-defined result.
func atof(b []byte) float64 {
	f, _ := strconv.ParseFloat(string(b), 64)
	return f
}

func (r *T) readNumber() (v value.T, err error) {
	start := r.cur
	var real, exp bool
scan:
	for r.cur < len(r.data) {
		switch r.data[r.cur] {
		case 'e':
			exp = true
			r.cur++
		case 'u':
			lit := r.data[start:r.cur]
			r.data[r.cur] = 0
			r.cur++
			v = value.NewUInteger(uint64(atoi(lit)))
			return
		case 'd':
			lit := r.data[start:r.cur]
			r.data[r.cur] = 0
			r.cur++
			v = value.NewReal(atof(lit))
			return
		case '.':
			real = true
			r.cur++
		case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			r.cur++
		default:
			break scan
		}
	}
	// end of input terminates a literal the same as any non-number character
	lit := r.data[start:r.cur]
	if real || exp {
		v = value.NewReal(atof(lit))
	} else {
		v = value.NewInteger(atoi(lit))
	}
	return
}

// readQuoted scans from the opening quote at cur to the matching unescaped
// closing quote, overwrites the closer, and returns the unescaped content.
// The content aliases the mangled buffer; callers keeping it copy it out.
func (r *T) readQuoted() (content []byte, err error) {
	r.cur++
	start := r.cur
	for r.cur < len(r.data) {
		switch r.data[r.cur] {
		case '\\':
			r.cur += 2
		case '"':
			raw := r.data[start:r.cur]
			r.data[r.cur] = 0
			r.cur++
			if content, err = text.Unescape(raw); err != nil {
				err = r.err("%w", err)
			}
			return
		default:
			r.cur++
		}
	}
	err = r.err("reached EOF while parsing string")
	return
}

func (r *T) readString() (v value.T, err error) {
	var content []byte
	if content, err = r.readQuoted(); err != nil {
		return
	}
	v = value.NewString(bytes.Clone(content))
	return
}

func (r *T) readObject() (v value.T, err error) {
	v = value.NewObject()
	obj, _ := v.Object()
	var key []byte    // completed key text awaiting its value
	var haveKey bool  // key is complete
	keyStart := -1    // >= 0 while scanning a bare key
	finishBare := func(end int) {
		if keyStart >= 0 {
			key = r.data[keyStart:end]
			keyStart = -1
			haveKey = true
		}
	}
	r.cur++
	for r.cur < len(r.data) {
		switch c := r.data[r.cur]; c {
		case ' ', '\t', '\n', '\r':
			finishBare(r.cur)
			if c == '\n' || c == '\r' {
				r.newline(c)
			}
			r.cur++
		case '}':
			r.cur++
			if haveKey || keyStart >= 0 {
				err = r.err("} found where value expected")
				return
			}
			return
		case ',':
			r.cur++
			if haveKey || keyStart >= 0 {
				err = r.err(", found where value expected")
				return
			}
		case ':':
			if !haveKey && keyStart < 0 {
				err = r.err(": found where field expected")
				return
			}
			finishBare(r.cur)
			r.cur++
			var m value.T
			if m, err = r.Next(); err != nil {
				if errors.Is(err, io.EOF) {
					err = r.err("reached EOF while parsing object")
				}
				return
			}
			obj.Set(bytes.Clone(key), m)
			key = nil
			haveKey = false
		case '"':
			if haveKey || keyStart >= 0 {
				err = r.err("%q found where %q expected", c, ':')
				return
			}
			if key, err = r.readQuoted(); err != nil {
				return
			}
			haveKey = true
		default:
			if haveKey {
				err = r.err("%q found where value expected", c)
				return
			}
			if keyStart < 0 {
				keyStart = r.cur
			}
			r.cur++
		}
	}
	err = r.err("reached EOF while parsing object")
	return
}

func (r *T) readArray() (v value.T, err error) {
	v = value.NewArray()
	arr, _ := v.Array()
	r.cur++
	for r.cur < len(r.data) {
		switch c := r.data[r.cur]; c {
		case '\n', '\r':
			r.newline(c)
			r.cur++
		case ' ', '\t', ',':
			r.cur++
		case ']':
			r.cur++
			return
		default:
			var el value.T
			if el, err = r.Next(); err != nil {
				if errors.Is(err, io.EOF) {
					err = r.err("malformed array elements")
				}
				return
			}
			arr.Append(el)
		}
	}
	err = r.err("reached EOF while parsing array")
	return
}
