package text

import (
	"bytes"
	"errors"
	"testing"

	"lukechampine.com/frand"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	// every byte the dialect can carry: the escapable control codes plus
	// everything from 0x20 up
	var src []byte
	for _, c := range []byte{'\b', '\t', '\n', '\f', '\r', '"', '\\', '/'} {
		src = append(src, c)
	}
	for c := 0x20; c < 0x100; c++ {
		src = append(src, byte(c))
	}
	escaped, err := Escape(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	unescaped, err := Unescape(escaped)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, unescaped) {
		t.Log(src)
		t.Log(unescaped)
		t.FailNow()
	}
}

func TestEscapeUnescapeRandom(t *testing.T) {
	for i := 0; i < 1000; i++ {
		src := frand.Bytes(frand.Intn(256) + 1)
		// clamp below 0x20 into the printable range, the dialect cannot
		// carry bare control codes
		for i, c := range src {
			if c < 0x20 {
				src[i] = c + 0x20
			}
		}
		escaped, err := Escape(nil, src)
		if err != nil {
			t.Fatal(err)
		}
		unescaped, err := Unescape(escaped)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(src, unescaped) {
			t.Fatalf("round trip mismatch:\n%v\n%v", src, unescaped)
		}
	}
}

func TestEscapeControlChar(t *testing.T) {
	if _, err := Escape(nil, []byte{0x01}); !errors.Is(err, ErrControlChar) {
		t.Fatalf("expected control char error, got %v", err)
	}
}

func TestEscapeJSONControlChar(t *testing.T) {
	b := EscapeJSON(nil, []byte{0x01, 'a', '\n', '/'})
	if string(b) != `\u0001a\n/` {
		t.Fatalf("got %q", b)
	}
}

func TestUnescapeErrors(t *testing.T) {
	if _, err := Unescape([]byte(`a\u0041`)); !errors.Is(err, ErrUnicodeEscape) {
		t.Fatalf("expected unicode escape error, got %v", err)
	}
	if _, err := Unescape([]byte(`a\q`)); !errors.Is(err, ErrInvalidEscape) {
		t.Fatalf("expected invalid escape error, got %v", err)
	}
	if _, err := Unescape([]byte(`a\`)); !errors.Is(err, ErrInvalidEscape) {
		t.Fatalf("expected invalid escape error, got %v", err)
	}
}

func TestUnescapeInPlace(t *testing.T) {
	buf := []byte(`a\nb`)
	out, err := Unescape(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a\nb" {
		t.Fatalf("got %q", out)
	}
	// the result aliases the front of the input buffer
	if &out[0] != &buf[0] {
		t.Fatal("unescape must rewrite in place")
	}
}
