// Package value implements the tagged union at the centre of the fastjson
// dialect: a T is exactly one of null, integer, unsigned integer, real, bool,
// string, object or array.
//
// Scalar payloads are held inline and copy by value. String, object and
// array payloads live behind shared pointers, so assigning a structural T
// creates an alias: mutation through either copy is visible through the
// other until one of them is Reset. Reclamation of a container happens when
// its last alias is dropped, which the garbage collector handles; there is
// no explicit reference count to maintain.
//
// The package is not synchronized. Concurrent mutation of aliased values is
// a data race.
package value

import (
	"errors"

	"fastjson.lol/errorf"
	"fastjson.lol/kind"
)

var (
	// ErrTypeMismatch is returned by a typed accessor called on a value of a
	// different kind.
	ErrTypeMismatch = errors.New("value is not of the requested kind")
	// ErrNotFound is returned for a missing object key or an out of range
	// array index.
	ErrNotFound = errors.New("not found")
	// ErrCastUnsupported is returned by To for a target type the value
	// cannot convert to.
	ErrCastUnsupported = errors.New("unsupported cast")
)

// Str is the shared payload of a string value. Aliases of the same string
// value share one Str.
type Str struct {
	V []byte
}

// T is a fastjson value. The zero T is null.
type T struct {
	k     kind.T
	num   int64
	unum  uint64
	real  float64
	truth bool
	str   *Str
	obj   *Object
	arr   *Array
}

// New returns a null value.
func New() T { return T{} }

func NewInteger[V int | int8 | int16 | int32 | int64](n V) T {
	return T{k: kind.Integer, num: int64(n)}
}

func NewUInteger[V uint | uint8 | uint16 | uint32 | uint64](n V) T {
	return T{k: kind.UInteger, unum: uint64(n)}
}

func NewReal(f float64) T { return T{k: kind.Real, real: f} }

func NewBool(truth bool) T { return T{k: kind.Bool, truth: truth} }

// NewString returns a string value holding s. A []byte argument is adopted,
// not copied; the new value owns it.
func NewString[V string | []byte](s V) T {
	return T{k: kind.String, str: &Str{[]byte(s)}}
}

// NewObject returns an empty object value.
func NewObject() T { return T{k: kind.Object, obj: &Object{}} }

// NewArray returns an empty array value.
func NewArray() T { return T{k: kind.Array, arr: &Array{}} }

// Kind returns the kind the value currently holds.
func (v *T) Kind() kind.T { return v.k }

func (v *T) check(k kind.T) (err error) {
	if v.k != k {
		err = errorf.E("%w: have %v, requested %v", ErrTypeMismatch, v.k, k)
	}
	return
}

func (v *T) Integer() (n int64, err error) {
	if err = v.check(kind.Integer); err != nil {
		return
	}
	n = v.num
	return
}

func (v *T) UInteger() (n uint64, err error) {
	if err = v.check(kind.UInteger); err != nil {
		return
	}
	n = v.unum
	return
}

func (v *T) Real() (f float64, err error) {
	if err = v.check(kind.Real); err != nil {
		return
	}
	f = v.real
	return
}

func (v *T) Bool() (truth bool, err error) {
	if err = v.check(kind.Bool); err != nil {
		return
	}
	truth = v.truth
	return
}

// Str returns the content of a string value. The bytes are the shared
// payload, not a copy.
func (v *T) Str() (s []byte, err error) {
	if err = v.check(kind.String); err != nil {
		return
	}
	s = v.str.V
	return
}

// Object returns the shared object container of an object value.
func (v *T) Object() (o *Object, err error) {
	if err = v.check(kind.Object); err != nil {
		return
	}
	o = v.obj
	return
}

// Array returns the shared array container of an array value.
func (v *T) Array() (a *Array, err error) {
	if err = v.check(kind.Array); err != nil {
		return
	}
	a = v.arr
	return
}

// Member returns the value held under key. A missing key is ErrNotFound,
// distinct from calling this on a non-object, which is ErrTypeMismatch.
func (v *T) Member(key []byte) (m T, err error) {
	var o *Object
	if o, err = v.Object(); err != nil {
		return
	}
	var ok bool
	if m, ok = o.Get(key); !ok {
		err = errorf.E("%w: key %q", ErrNotFound, key)
	}
	return
}

// ArraySize returns the number of elements of an array value.
func (v *T) ArraySize() (n int, err error) {
	var a *Array
	if a, err = v.Array(); err != nil {
		return
	}
	n = a.Len()
	return
}

// Index returns the element at i. An out of range index is ErrNotFound.
func (v *T) Index(i int) (m T, err error) {
	var a *Array
	if a, err = v.Array(); err != nil {
		return
	}
	var ok bool
	if m, ok = a.At(i); !ok {
		err = errorf.E("%w: index %d of %d", ErrNotFound, i, a.Len())
	}
	return
}

// Reset discards the current payload and initialises the value to the
// default for k: empty string, empty object, empty array, or an unspecified
// scalar bit pattern. A structural payload held before the reset is released
// by this value only; aliases keep the original container.
func (v *T) Reset(k kind.T) {
	*v = T{k: k}
	switch k {
	case kind.String:
		v.str = &Str{}
	case kind.Object:
		v.obj = &Object{}
	case kind.Array:
		v.arr = &Array{}
	}
}

// ResetNull sets the value to null.
func (v *T) ResetNull() { v.Reset(kind.Null) }

func (v *T) checkReset(k kind.T) {
	if v.k != k {
		v.Reset(k)
	}
}

// Setters assign a new payload, resetting the kind first when it differs.

func (v *T) SetInteger(n int64) {
	v.checkReset(kind.Integer)
	v.num = n
}

func (v *T) SetUInteger(n uint64) {
	v.checkReset(kind.UInteger)
	v.unum = n
}

func (v *T) SetReal(f float64) {
	v.checkReset(kind.Real)
	v.real = f
}

func (v *T) SetBool(truth bool) {
	v.checkReset(kind.Bool)
	v.truth = truth
}

// SetString assigns string content. When the value already is a string the
// content is written through the shared payload, so aliases observe it.
func (v *T) SetString(s []byte) {
	v.checkReset(kind.String)
	v.str.V = s
}

// SetMember assigns a member of an object value, overwriting any prior entry
// under the same key.
func (v *T) SetMember(key []byte, m T) {
	v.checkReset(kind.Object)
	v.obj.Set(key, m)
}

// SetArraySize resizes an array value. Growth fills the new slots with null.
func (v *T) SetArraySize(n int) {
	v.checkReset(kind.Array)
	v.arr.Resize(n)
}

// SetIndex assigns the element at i of an array value. An out of range index
// is ErrNotFound; use SetArraySize or Append to grow first.
func (v *T) SetIndex(i int, m T) (err error) {
	v.checkReset(kind.Array)
	if !v.arr.Set(i, m) {
		err = errorf.E("%w: index %d of %d", ErrNotFound, i, v.arr.Len())
	}
	return
}

// Append adds an element to the end of an array value.
func (v *T) Append(m T) {
	v.checkReset(kind.Array)
	v.arr.Append(m)
}
