package value

import (
	"strconv"

	"fastjson.lol/errorf"
	"fastjson.lol/ints"
	"fastjson.lol/kind"
)

// To converts v to the requested representation V.
//
//   - string / []byte: numbers and bool render in their canonical textual
//     form, null renders "null", a string yields its content, and object and
//     array yield an opaque placeholder (use the writer package for a
//     faithful rendering).
//   - int64 / int: only an integer value converts exactly.
//   - float64: integer, unsigned integer and real all convert.
//   - bool: the truthiness of the value; numbers are false only at zero,
//     null is false, bool passes through, and string, object and array are
//     always true.
//
// Any other V fails with ErrCastUnsupported; a kind that cannot reach a
// supported V fails with ErrTypeMismatch.
func To[V any](v T) (out V, err error) {
	switch p := any(&out).(type) {
	case *string:
		var b []byte
		if b, err = v.text(); err != nil {
			return
		}
		*p = string(b)
	case *[]byte:
		*p, err = v.text()
	case *int64:
		if v.k != kind.Integer {
			err = errorf.E("%w: cannot cast %v to int64", ErrTypeMismatch, v.k)
			return
		}
		*p = v.num
	case *int:
		if v.k != kind.Integer {
			err = errorf.E("%w: cannot cast %v to int", ErrTypeMismatch, v.k)
			return
		}
		*p = int(v.num)
	case *float64:
		switch v.k {
		case kind.Integer:
			*p = float64(v.num)
		case kind.UInteger:
			*p = float64(v.unum)
		case kind.Real:
			*p = v.real
		default:
			err = errorf.E("%w: cannot cast %v to float64", ErrTypeMismatch, v.k)
		}
	case *bool:
		*p = v.Truthy()
	default:
		err = errorf.E("%w: %T", ErrCastUnsupported, out)
	}
	return
}

// Truthy is the boolean interpretation of the value: numbers are false only
// at zero, null is false, bool passes through, everything structural is
// true.
func (v *T) Truthy() bool {
	switch v.k {
	case kind.Null:
		return false
	case kind.Integer:
		return v.num != 0
	case kind.UInteger:
		return v.unum != 0
	case kind.Real:
		return v.real != 0
	case kind.Bool:
		return v.truth
	default:
		return true
	}
}

func (v *T) text() (b []byte, err error) {
	switch v.k {
	case kind.Null:
		b = []byte("null")
	case kind.Integer:
		n := v.num
		if n < 0 {
			b = append(b, '-')
		}
		b = ints.New(uint64absInt(n)).Marshal(b)
	case kind.UInteger:
		b = ints.New(v.unum).Marshal(b)
	case kind.Real:
		b = strconv.AppendFloat(b, v.real, 'g', -1, 64)
	case kind.Bool:
		if v.truth {
			b = []byte("true")
		} else {
			b = []byte("false")
		}
	case kind.String:
		b = v.str.V
	case kind.Object:
		b = []byte("<object>")
	case kind.Array:
		b = []byte("<array>")
	}
	return
}

// uint64absInt is |n| as uint64, correct for math.MinInt64 too.
func uint64absInt(n int64) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}
