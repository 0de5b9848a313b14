package serde

import "sort"

// Wrapper types making Go scalars Serializable. Each maps to exactly one
// visit call.

// Nil serializes as the null value.
type Nil struct{}

func (Nil) Serialize(v Visitor) error { return v.VisitNil() }

// Bool serializes as a boolean.
type Bool bool

func (b Bool) Serialize(v Visitor) error { return v.VisitBool(bool(b)) }

// Int serializes as a signed integer.
type Int int

func (i Int) Serialize(v Visitor) error { return v.VisitInt(int(i)) }

// Int8 serializes as a signed 8-bit integer.
type Int8 int8

func (i Int8) Serialize(v Visitor) error { return v.VisitInt8(int8(i)) }

// Int16 serializes as a signed 16-bit integer.
type Int16 int16

func (i Int16) Serialize(v Visitor) error { return v.VisitInt16(int16(i)) }

// Int32 serializes as a signed 32-bit integer.
type Int32 int32

func (i Int32) Serialize(v Visitor) error { return v.VisitInt32(int32(i)) }

// Int64 serializes as a signed 64-bit integer.
type Int64 int64

func (i Int64) Serialize(v Visitor) error { return v.VisitInt64(int64(i)) }

// Uint serializes as an unsigned integer.
type Uint uint

func (u Uint) Serialize(v Visitor) error { return v.VisitUint(uint(u)) }

// Uint8 serializes as an unsigned 8-bit integer.
type Uint8 uint8

func (u Uint8) Serialize(v Visitor) error { return v.VisitUint8(uint8(u)) }

// Uint16 serializes as an unsigned 16-bit integer.
type Uint16 uint16

func (u Uint16) Serialize(v Visitor) error { return v.VisitUint16(uint16(u)) }

// Uint32 serializes as an unsigned 32-bit integer.
type Uint32 uint32

func (u Uint32) Serialize(v Visitor) error { return v.VisitUint32(uint32(u)) }

// Uint64 serializes as an unsigned 64-bit integer.
type Uint64 uint64

func (u Uint64) Serialize(v Visitor) error { return v.VisitUint64(uint64(u)) }

// Float64 serializes as a floating-point value.
type Float64 float64

func (f Float64) Serialize(v Visitor) error { return v.VisitFloat64(float64(f)) }

// Rune serializes as a single character.
type Rune rune

func (r Rune) Serialize(v Visitor) error { return v.VisitRune(rune(r)) }

// String serializes as a string.
type String string

func (s String) Serialize(v Visitor) error { return v.VisitString(string(s)) }

// Slice adapts a slice of Serializable values into a lazily driven sequence.
type Slice[T Serializable] []T

func (s Slice[T]) Serialize(v Visitor) error {
	return v.VisitSeq(&sliceDriver[T]{elems: s})
}

// sliceDriver is an index cursor over a slice, implementing SeqVisitor.
type sliceDriver[T Serializable] struct {
	elems []T
	next  int
}

func (d *sliceDriver[T]) Visit(v Visitor) (bool, error) {
	if d.next >= len(d.elems) {
		return false, nil
	}
	first := d.next == 0
	elem := d.elems[d.next]
	d.next++
	if err := v.VisitSeqElt(first, elem); err != nil {
		return false, err
	}
	return true, nil
}

// SeqFunc adapts a pull function into a lazily driven sequence. The function
// returns the next element, or false once the sequence is exhausted. Elements
// are produced one at a time, so unbounded streams serialize without
// intermediate collection.
type SeqFunc func() (Serializable, bool)

func (f SeqFunc) Serialize(v Visitor) error {
	return v.VisitSeq(&funcDriver{next: f})
}

type funcDriver struct {
	next    SeqFunc
	emitted bool
}

func (d *funcDriver) Visit(v Visitor) (bool, error) {
	elem, ok := d.next()
	if !ok {
		return false, nil
	}
	first := !d.emitted
	d.emitted = true
	if err := v.VisitSeqElt(first, elem); err != nil {
		return false, err
	}
	return true, nil
}

// Pair is one key/value entry of a mapping.
type Pair struct {
	Key   Serializable
	Value Serializable
}

// Pairs adapts an ordered list of pairs into a lazily driven mapping.
// Entries render in slice order.
type Pairs []Pair

func (p Pairs) Serialize(v Visitor) error {
	return v.VisitMap(&pairsDriver{pairs: p})
}

type pairsDriver struct {
	pairs []Pair
	next  int
}

func (d *pairsDriver) Visit(v Visitor) (bool, error) {
	if d.next >= len(d.pairs) {
		return false, nil
	}
	first := d.next == 0
	pair := d.pairs[d.next]
	d.next++
	if err := v.VisitMapElt(first, pair.Key, pair.Value); err != nil {
		return false, err
	}
	return true, nil
}

// Map adapts a string-keyed Go map into a mapping. Keys are sorted so the
// output is deterministic.
type Map[V Serializable] map[string]V

func (m Map[V]) Serialize(v Visitor) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make(Pairs, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: String(k), Value: m[k]})
	}
	return pairs.Serialize(v)
}
