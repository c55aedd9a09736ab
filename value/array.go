package value

// Array is an ordered, resizable sequence of values.
type Array struct {
	elements []T
}

func (a *Array) Len() int { return len(a.elements) }

// Elements returns the elements in order. The slice aliases the array's
// storage.
func (a *Array) Elements() []T { return a.elements }

func (a *Array) At(i int) (m T, ok bool) {
	if ok = i >= 0 && i < len(a.elements); ok {
		m = a.elements[i]
	}
	return
}

func (a *Array) Set(i int, m T) (ok bool) {
	if ok = i >= 0 && i < len(a.elements); ok {
		a.elements[i] = m
	}
	return
}

func (a *Array) Append(m T) { a.elements = append(a.elements, m) }

// Resize sets the length to n. New slots hold null; shrinking drops the
// tail.
func (a *Array) Resize(n int) {
	if n < 0 {
		n = 0
	}
	for len(a.elements) < n {
		a.elements = append(a.elements, T{})
	}
	a.elements = a.elements[:n]
}
