package writer

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"fastjson.lol/kind"
	"fastjson.lol/reader"
	"fastjson.lol/text"
	"fastjson.lol/value"
)

func render(t *testing.T, v value.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Put(v))
	return buf.String()
}

func TestScalars(t *testing.T) {
	require.Equal(t, "NULL\n", render(t, value.New()))
	require.Equal(t, "true\n", render(t, value.NewBool(true)))
	require.Equal(t, "false\n", render(t, value.NewBool(false)))
	require.Equal(t, "-5\n", render(t, value.NewInteger(-5)))
	require.Equal(t, "123u\n", render(t, value.NewUInteger(uint64(123))))
	require.Equal(t, "1.5\n", render(t, value.NewReal(1.5)))
}

func TestStringEscaping(t *testing.T) {
	require.Equal(t, "\"hi\"\n", render(t, value.NewString("hi")))
	require.Equal(t, `"a\nb\t\"q\"\/\\"`+"\n", render(t, value.NewString("a\nb\t\"q\"/\\")))
}

func TestControlCharacterRejected(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf).Put(value.NewString([]byte{'a', 0x01}))
	require.Error(t, err)
	require.ErrorIs(t, err, text.ErrControlChar)
	// a failed Put writes nothing
	require.Zero(t, buf.Len())
}

func TestObjectDialectShape(t *testing.T) {
	v := value.NewObject()
	v.SetMember([]byte("x"), value.NewInteger(1))
	require.Equal(t, "{\n\"x\" : 1,\n}\n", render(t, v))
}

func TestEmptyContainers(t *testing.T) {
	require.Equal(t, "{\n}\n", render(t, value.NewObject()))
	require.Equal(t, "[]\n", render(t, value.NewArray()))
}

func TestArrayDialectShape(t *testing.T) {
	v := value.NewArray()
	v.Append(value.NewInteger(1))
	v.Append(value.NewInteger(2))
	v.Append(value.NewInteger(3))
	require.Equal(t, "[1, 2, 3, ]\n", render(t, v))
}

func TestSortedMemberOrder(t *testing.T) {
	v := value.NewObject()
	v.SetMember([]byte("b"), value.NewInteger(2))
	v.SetMember([]byte("a"), value.NewInteger(1))
	v.SetMember([]byte("c"), value.NewInteger(3))
	require.Equal(t, "{\n\"a\" : 1,\n\"b\" : 2,\n\"c\" : 3,\n}\n", render(t, v))
}

func TestNested(t *testing.T) {
	v := value.NewObject()
	arr := value.NewArray()
	arr.Append(value.NewInteger(1))
	arr.Append(value.NewInteger(2))
	v.SetMember([]byte("b"), arr)
	v.SetMember([]byte("a"), value.NewInteger(1))
	require.Equal(t, "{\n\"a\" : 1,\n\"b\" : [1, 2, ],\n}\n", render(t, v))
}

func TestRepeatedPutsAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	require.NoError(t, w.Put(value.NewInteger(1)))
	require.NoError(t, w.Put(value.NewInteger(2)))
	require.Equal(t, "1\n2\n", buf.String())
}

func TestScalarRoundTrip(t *testing.T) {
	for _, src := range []string{"123", "-7", "123u", "1.5", "1.5d", "true", "false", "NULL"} {
		v, err := reader.NewBytes([]byte(src)).Next()
		require.NoError(t, err, src)
		out := render(t, v)
		again, err := reader.NewBytes([]byte(out)).Next()
		require.NoError(t, err, src)
		require.Equal(t, v.Kind(), again.Kind(), src)
		switch v.Kind() {
		case kind.Integer:
			a, _ := v.Integer()
			b, _ := again.Integer()
			require.Equal(t, a, b, src)
		case kind.UInteger:
			a, _ := v.UInteger()
			b, _ := again.UInteger()
			require.Equal(t, a, b, src)
		case kind.Real:
			a, _ := v.Real()
			b, _ := again.Real()
			require.Equal(t, a, b, src)
		case kind.Bool:
			a, _ := v.Bool()
			b, _ := again.Bool()
			require.Equal(t, a, b, src)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	v := value.NewString("line\none\ttab \"quoted\" back\\slash /slash")
	out := render(t, v)
	again, err := reader.NewBytes([]byte(out)).Next()
	require.NoError(t, err)
	s1, _ := v.Str()
	s2, err := again.Str()
	require.NoError(t, err)
	require.Equal(t, string(s1), string(s2))
}

func TestDocumentRoundTrip(t *testing.T) {
	src := `{"a": 1, "b": [1, 2.5, "x", NULL, 9u], "c": {nested: true}}`
	v, err := reader.NewBytes([]byte(src)).Next()
	require.NoError(t, err)
	out := render(t, v)
	again, err := reader.NewBytes([]byte(out)).Next()
	require.NoError(t, err)
	require.Equal(t, render(t, again), out)
}

func TestStrictMode(t *testing.T) {
	renderStrict := func(v value.T) string {
		var buf bytes.Buffer
		w := New(&buf)
		w.Strict = true
		require.NoError(t, w.Put(v))
		return buf.String()
	}
	require.Equal(t, "null\n", renderStrict(value.New()))
	require.Equal(t, "123\n", renderStrict(value.NewUInteger(uint64(123))))
	arr := value.NewArray()
	arr.Append(value.NewInteger(1))
	arr.Append(value.NewInteger(2))
	require.Equal(t, "[1, 2]\n", renderStrict(arr))
	obj := value.NewObject()
	obj.SetMember([]byte("a"), value.NewInteger(1))
	obj.SetMember([]byte("b"), arr)
	require.Equal(t, "{\n\"a\" : 1,\n\"b\" : [1, 2]\n}\n", renderStrict(obj))
	// control bytes get numeric escapes instead of an error
	require.Equal(t, "\"\\u0001\"\n", renderStrict(value.NewString([]byte{1})))
	// slash is not escaped in strict output
	require.Equal(t, "\"/\"\n", renderStrict(value.NewString("/")))
}

func TestErrorSurfacesSinkFailure(t *testing.T) {
	w := New(failWriter{})
	err := w.Put(value.NewInteger(1))
	require.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

var _ io.Writer = failWriter{}
