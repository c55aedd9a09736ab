package value

import (
	"bytes"
	"sort"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   []byte
	Value T
}

// Object is a mapping from byte string keys to values. The members are kept
// sorted by key, so iteration order is deterministic byte-lexicographic
// order, not insertion order. Setting an existing key overwrites its value.
type Object struct {
	members []Member
}

// find returns the insertion index for key and whether it is present.
func (o *Object) find(key []byte) (i int, ok bool) {
	i = sort.Search(len(o.members), func(i int) bool {
		return bytes.Compare(o.members[i].Key, key) >= 0
	})
	ok = i < len(o.members) && bytes.Equal(o.members[i].Key, key)
	return
}

func (o *Object) Len() int { return len(o.members) }

// Members returns the members in sorted key order. The slice aliases the
// object's storage.
func (o *Object) Members() []Member { return o.members }

func (o *Object) Get(key []byte) (m T, ok bool) {
	var i int
	if i, ok = o.find(key); ok {
		m = o.members[i].Value
	}
	return
}

func (o *Object) Set(key []byte, m T) {
	i, ok := o.find(key)
	if ok {
		o.members[i].Value = m
		return
	}
	o.members = append(o.members, Member{})
	copy(o.members[i+1:], o.members[i:])
	o.members[i] = Member{Key: key, Value: m}
}

// Delete removes key if present and reports whether it was.
func (o *Object) Delete(key []byte) (ok bool) {
	var i int
	if i, ok = o.find(key); ok {
		o.members = append(o.members[:i], o.members[i+1:]...)
	}
	return
}
