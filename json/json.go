// Package json provides the JSON text backend for the serde protocol.
//
// Serializer implements serde.Visitor over an owned sink, turning each visit
// call into JSON text. ToVec and ToString run one full serialization pass
// against an in-memory sink and return the result.
package json

import (
	"context"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/zoobzio/serde"
)

// ContentType is the MIME type for JSON.
const ContentType = "application/json"

// Serializer renders the serde visitor protocol as JSON text.
//
// A Serializer owns exactly one sink for its entire lifetime and holds no
// other state: comma placement inside sequences and mappings is decided by
// the element drivers through the first flag, never counted here. One
// Serializer serves one top-level serialization pass; create a new one for
// each document.
type Serializer struct {
	sink serde.Sink
}

var _ serde.Visitor = (*Serializer)(nil)

// New creates a JSON serializer whose output is appended to sink.
func New(sink serde.Sink) *Serializer {
	return &Serializer{sink: sink}
}

// Unwrap releases the sink from the Serializer. The Serializer must not be
// used afterwards.
func (s *Serializer) Unwrap() serde.Sink {
	sink := s.sink
	s.sink = nil
	return sink
}

// VisitNil writes the null literal.
func (s *Serializer) VisitNil() error {
	return writeString(s.sink, "null")
}

// VisitBool writes true or false.
func (s *Serializer) VisitBool(v bool) error {
	if v {
		return writeString(s.sink, "true")
	}
	return writeString(s.sink, "false")
}

// Integer visits write plain decimal, sign prefix for negatives.

func (s *Serializer) VisitInt(v int) error {
	return s.writeInt(int64(v))
}

func (s *Serializer) VisitInt8(v int8) error {
	return s.writeInt(int64(v))
}

func (s *Serializer) VisitInt16(v int16) error {
	return s.writeInt(int64(v))
}

func (s *Serializer) VisitInt32(v int32) error {
	return s.writeInt(int64(v))
}

func (s *Serializer) VisitInt64(v int64) error {
	return s.writeInt(v)
}

func (s *Serializer) VisitUint(v uint) error {
	return s.writeUint(uint64(v))
}

func (s *Serializer) VisitUint8(v uint8) error {
	return s.writeUint(uint64(v))
}

func (s *Serializer) VisitUint16(v uint16) error {
	return s.writeUint(uint64(v))
}

func (s *Serializer) VisitUint32(v uint32) error {
	return s.writeUint(uint64(v))
}

func (s *Serializer) VisitUint64(v uint64) error {
	return s.writeUint(v)
}

// VisitFloat64 writes the value at 6 significant digits. NaN and infinities
// have no JSON representation and collapse to null.
func (s *Serializer) VisitFloat64(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return writeString(s.sink, "null")
	}
	var buf [32]byte
	return write(s.sink, strconv.AppendFloat(buf[:0], v, 'g', 6, 64))
}

// VisitRune writes the character as a one-character JSON string.
func (s *Serializer) VisitRune(v rune) error {
	return EscapeRune(s.sink, v)
}

// VisitString writes the escaped string literal.
func (s *Serializer) VisitString(v string) error {
	return EscapeString(s.sink, v)
}

// VisitSeq brackets the driver's elements as a JSON array.
func (s *Serializer) VisitSeq(sv serde.SeqVisitor) error {
	if err := writeString(s.sink, "["); err != nil {
		return err
	}
	for {
		more, err := sv.Visit(s)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return writeString(s.sink, "]")
}

// VisitSeqElt writes a comma separator for non-first elements, then the
// element itself through this same serializer.
func (s *Serializer) VisitSeqElt(first bool, value serde.Serializable) error {
	if !first {
		if err := writeString(s.sink, ","); err != nil {
			return err
		}
	}
	return value.Serialize(s)
}

// VisitMap brackets the driver's pairs as a JSON object.
func (s *Serializer) VisitMap(mv serde.MapVisitor) error {
	if err := writeString(s.sink, "{"); err != nil {
		return err
	}
	for {
		more, err := mv.Visit(s)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return writeString(s.sink, "}")
}

// VisitMapElt writes a comma separator for non-first pairs, then the key,
// a colon, and the value.
func (s *Serializer) VisitMapElt(first bool, key, value serde.Serializable) error {
	if !first {
		if err := writeString(s.sink, ","); err != nil {
			return err
		}
	}
	if err := key.Serialize(s); err != nil {
		return err
	}
	if err := writeString(s.sink, ":"); err != nil {
		return err
	}
	return value.Serialize(s)
}

func (s *Serializer) writeInt(v int64) error {
	var buf [20]byte
	return write(s.sink, strconv.AppendInt(buf[:0], v, 10))
}

func (s *Serializer) writeUint(v uint64) error {
	var buf [20]byte
	return write(s.sink, strconv.AppendUint(buf[:0], v, 10))
}

// write appends p to sink, wrapping a failure as *serde.SinkError. Wrapping
// happens only here and in writeString, so nested visits propagate the same
// error unchanged.
func write(sink serde.Sink, p []byte) error {
	if err := sink.Write(p); err != nil {
		return serde.NewSinkError(err)
	}
	return nil
}

// writeString appends str to sink, wrapping a failure as *serde.SinkError.
func writeString(sink serde.Sink, str string) error {
	if err := sink.WriteString(str); err != nil {
		return serde.NewSinkError(err)
	}
	return nil
}

// ToVec serializes value to JSON bytes using a fresh in-memory sink.
func ToVec(value serde.Serializable) ([]byte, error) {
	start := time.Now()
	serde.EmitSerializeStart(context.Background(), ContentType)

	sink := serde.NewBufferSink()
	s := New(sink)
	err := value.Serialize(s)

	serde.EmitSerializeComplete(context.Background(), ContentType,
		sink.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	buf := s.Unwrap().(*serde.BufferSink)
	return buf.Bytes(), nil
}

// ToString serializes value to a JSON string.
//
// The serializer only ever emits ASCII punctuation and verbatim input bytes,
// so the output is valid UTF-8 whenever the input strings are. If it is not,
// the result is a *serde.InvalidTextError carrying the raw bytes.
func ToString(value serde.Serializable) (string, error) {
	data, err := ToVec(value)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", serde.NewInvalidTextError(data)
	}
	return string(data), nil
}

// jsonCodec implements serde.Codec for JSON.
type jsonCodec struct{}

// Codec returns a JSON codec that serializes arbitrary Go values through
// serde.Reflect.
func Codec() serde.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return ToVec(serde.Reflect(v))
}
