// Package serde provides a format-agnostic serialization protocol based on
// double dispatch.
//
// A value describes itself exactly once, as a sequence of primitive "visit"
// calls, without knowing which output format consumes those calls. A backend
// (such as the json subpackage) implements the Visitor interface and decides
// how each primitive is rendered. The value drives control flow; the visitor
// owns the representation.
//
// # Protocol
//
// Values implement Serializable:
//
//	type Point struct{ X, Y int }
//
//	func (p Point) Serialize(v serde.Visitor) error {
//	    return serde.Pairs{
//	        {Key: serde.String("x"), Value: serde.Int(p.X)},
//	        {Key: serde.String("y"), Value: serde.Int(p.Y)},
//	    }.Serialize(v)
//	}
//
// Scalars map to exactly one visit call. Sequences and mappings are driven
// lazily: a SeqVisitor or MapVisitor yields one element per invocation and
// reports exhaustion, so unbounded streams serialize without intermediate
// collection.
//
// # Built-in values
//
// The Nil, Bool, Int..Int64, Uint..Uint64, Float64, Rune, and String wrapper
// types make any Go scalar Serializable. Slice, Map, Pairs, and SeqFunc cover
// composites. For arbitrary values, Reflect builds a Serializable view via
// reflection:
//
//	data, err := json.ToVec(serde.Reflect(user))
//
// # Struct tags
//
// Reflect names struct fields after the `serde` tag when present:
//
//	type User struct {
//	    ID    string `serde:"id"`
//	    Email string `serde:"email"`
//	    cache []byte // unexported: skipped
//	}
//
// A tag value of "-" skips the field.
//
// # Backends
//
// The json subpackage provides the JSON text backend with ToVec and ToString
// entry points. A backend consumes the protocol by implementing Visitor; it
// never inspects the value's type.
//
// # Errors
//
// Every visit call may fail. A sink write failure surfaces as *SinkError and
// aborts the whole pass; there is no partial retry. ToString additionally
// reports *InvalidTextError if the produced bytes are not valid UTF-8.
package serde

// Visitor is the format side of the protocol: one method per scalar kind
// plus two driver-based composite methods. A backend implements Visitor and
// renders each call; it receives calls in document order, exactly once each.
//
// Any method may fail (typically on a sink write). A failure aborts the
// serialization pass; callers must not issue further visit calls.
type Visitor interface {
	VisitNil() error
	VisitBool(v bool) error

	VisitInt(v int) error
	VisitInt8(v int8) error
	VisitInt16(v int16) error
	VisitInt32(v int32) error
	VisitInt64(v int64) error

	VisitUint(v uint) error
	VisitUint8(v uint8) error
	VisitUint16(v uint16) error
	VisitUint32(v uint32) error
	VisitUint64(v uint64) error

	VisitFloat64(v float64) error

	// VisitRune renders a single character. Backends encode the rune to
	// UTF-8 and render it as a one-character string.
	VisitRune(v rune) error
	VisitString(v string) error

	// VisitSeq renders a sequence. The visitor brackets the elements and
	// invokes sv until it reports exhaustion; sv produces each element by
	// calling VisitSeqElt on this same visitor.
	VisitSeq(sv SeqVisitor) error

	// VisitSeqElt renders one sequence element. first is true only for the
	// first element the driver emits; separators hang off it. The driver,
	// not the visitor, computes first.
	VisitSeqElt(first bool, value Serializable) error

	// VisitMap renders a mapping, same shape as VisitSeq but with
	// key/value pairs produced through VisitMapElt.
	VisitMap(mv MapVisitor) error

	// VisitMapElt renders one key/value pair.
	VisitMapElt(first bool, key, value Serializable) error
}

// Serializable is the value side of the protocol. Serialize invokes exactly
// one method of v describing the receiver; composites invoke VisitSeq or
// VisitMap with a driver over their elements.
//
// Implementing Serializable also lets a type bypass the reflection walk in
// Reflect.
type Serializable interface {
	Serialize(v Visitor) error
}

// SeqVisitor drives sequence elements lazily. Each call to Visit either
// produces one element (by calling v.VisitSeqElt) and returns true, or
// returns false once the sequence is exhausted. After reporting exhaustion
// it must not be invoked again; visitors rely on this to close the bracket.
type SeqVisitor interface {
	Visit(v Visitor) (bool, error)
}

// MapVisitor drives key/value pairs lazily, with the same contract as
// SeqVisitor but producing pairs through v.VisitMapElt.
type MapVisitor interface {
	Visit(v Visitor) (bool, error)
}

// Codec provides content-type aware marshaling over the protocol.
// Backends expose a Codec so callers can serialize arbitrary Go values
// without touching the protocol directly.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)
}
