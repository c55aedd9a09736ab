// Package writer renders values as fastjson dialect text.
//
// The dialect output is a superset of JSON and will not please strict
// parsers: null is spelled NULL, unsigned integers carry a trailing u, and
// every object member and array element is followed by a trailing separator.
// Set Strict for RFC 8259 output instead.
//
// Rendering recurses through nested containers; depth is bounded only by
// the goroutine stack.
package writer

import (
	"io"
	"strconv"

	"fastjson.lol/chk"
	"fastjson.lol/ints"
	"fastjson.lol/kind"
	"fastjson.lol/text"
	"fastjson.lol/value"
)

// T renders values to W. Each Put is independent and written immediately;
// nothing is buffered between calls.
type T struct {
	W io.Writer
	// Strict renders standard JSON: no trailing separators, lowercase null,
	// no numeric suffixes, \u00XX escapes for bare control bytes.
	Strict bool
}

func New(w io.Writer) *T { return &T{W: w} }

// Put writes exactly one rendered value followed by a newline.
func (w *T) Put(v value.T) (err error) {
	var b []byte
	if b, err = w.Append(nil, v); chk.E(err) {
		return
	}
	b = append(b, '\n')
	_, err = w.W.Write(b)
	return
}

// Append renders v onto dst and returns the extended slice.
func (w *T) Append(dst []byte, v value.T) (b []byte, err error) {
	b = dst
	switch v.Kind() {
	case kind.Null:
		if w.Strict {
			b = append(b, "null"...)
		} else {
			b = append(b, "NULL"...)
		}
	case kind.Integer:
		n, _ := v.Integer()
		b = appendInt(b, n)
	case kind.UInteger:
		n, _ := v.UInteger()
		b = ints.New(n).Marshal(b)
		if !w.Strict {
			b = append(b, 'u')
		}
	case kind.Real:
		f, _ := v.Real()
		b = strconv.AppendFloat(b, f, 'g', -1, 64)
	case kind.Bool:
		truth, _ := v.Bool()
		if truth {
			b = append(b, "true"...)
		} else {
			b = append(b, "false"...)
		}
	case kind.String:
		s, _ := v.Str()
		if b, err = w.appendQuoted(b, s); err != nil {
			return
		}
	case kind.Object:
		o, _ := v.Object()
		b = append(b, '{', '\n')
		members := o.Members()
		for i := range members {
			if b, err = w.appendQuoted(b, members[i].Key); err != nil {
				return
			}
			b = append(b, " : "...)
			if b, err = w.Append(b, members[i].Value); err != nil {
				return
			}
			if !w.Strict || i != len(members)-1 {
				b = append(b, ',')
			}
			b = append(b, '\n')
		}
		b = append(b, '}')
	case kind.Array:
		a, _ := v.Array()
		b = append(b, '[')
		elements := a.Elements()
		for i := range elements {
			if b, err = w.Append(b, elements[i]); err != nil {
				return
			}
			if !w.Strict || i != len(elements)-1 {
				b = append(b, ',', ' ')
			}
		}
		b = append(b, ']')
	}
	return
}

func (w *T) appendQuoted(dst, s []byte) (b []byte, err error) {
	b = append(dst, '"')
	if w.Strict {
		b = text.EscapeJSON(b, s)
	} else if b, err = text.Escape(b, s); err != nil {
		return
	}
	b = append(b, '"')
	return
}

func appendInt(dst []byte, n int64) (b []byte) {
	b = dst
	u := uint64(n)
	if n < 0 {
		b = append(b, '-')
		u = -u
	}
	b = ints.New(u).Marshal(b)
	return
}
