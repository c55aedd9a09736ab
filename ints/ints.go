// Package ints is an optimised codec for positive decimal numbers in ASCII
// form. It is faster than strconv in part because it renders in base 10000
// through a lookup table.
package ints

import (
	_ "embed"

	"fastjson.lol/errorf"
)

// run this to regenerate the base 10 array of 4 places per entry
//go:generate go run ./gen/.

//go:embed base10k.txt
var base10k []byte

// T is a positive integer that marshals to and from ASCII decimal.
type T struct {
	N uint64
}

func New[V uint | int | uint64 | uint32 | uint16 | uint8 | int64 | int32 | int16 | int8](n V) *T {
	return &T{uint64(n)}
}

func (n *T) Uint64() uint64 { return n.N }
func (n *T) Int64() int64   { return int64(n.N) }

var powers = []uint64{
	1,
	1_0000,
	1_0000_0000,
	1_0000_0000_0000,
	1_0000_0000_0000_0000,
}

const zero = '0'
const nine = '9'

// Marshal appends the decimal rendering of the value to dst, four digits at
// a time through the base10k table, trimming the leading zeros of the first
// emitted quad.
func (n *T) Marshal(dst []byte) (b []byte) {
	b = dst
	if n.N == 0 {
		b = append(b, '0')
		return
	}
	v := n.N
	var trimmed bool
	k := len(powers)
	for k > 0 {
		k--
		q := v / powers[k]
		if !trimmed && q == 0 {
			continue
		}
		offset := q * 4
		bb := base10k[offset : offset+4]
		if !trimmed {
			for i := range bb {
				if bb[i] != '0' {
					bb = bb[i:]
					trimmed = true
					break
				}
			}
		}
		b = append(b, bb...)
		v -= q * powers[k]
	}
	return
}

// Unmarshal reads a run of decimal digits from the start of b, atoi style:
// the scan stops at the first non-digit and the remainder is returned. No
// digits at all is an error, as is a run longer than the 20 digits a uint64
// can hold.
func (n *T) Unmarshal(b []byte) (rem []byte, err error) {
	var sLen int
	for ; sLen < len(b) && b[sLen] >= zero && b[sLen] <= nine; sLen++ {
	}
	if sLen == 0 {
		err = errorf.E("zero length number")
		return
	}
	if sLen > 20 {
		err = errorf.E("too big number for uint64")
		return
	}
	rem = b[sLen:]
	n.N = 0
	for _, ch := range b[:sLen] {
		n.N = n.N*10 + uint64(ch-zero)
	}
	return
}
