package serde

import (
	"fmt"
	"reflect"
	"testing"
)

// recordingVisitor logs every visit call so tests can assert on call order,
// first flags, and driver exhaustion without involving a backend.
type recordingVisitor struct {
	ops []string
}

func (r *recordingVisitor) log(format string, args ...any) error {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
	return nil
}

func (r *recordingVisitor) VisitNil() error              { return r.log("nil") }
func (r *recordingVisitor) VisitBool(v bool) error       { return r.log("bool:%v", v) }
func (r *recordingVisitor) VisitInt(v int) error         { return r.log("int:%d", v) }
func (r *recordingVisitor) VisitInt8(v int8) error       { return r.log("int8:%d", v) }
func (r *recordingVisitor) VisitInt16(v int16) error     { return r.log("int16:%d", v) }
func (r *recordingVisitor) VisitInt32(v int32) error     { return r.log("int32:%d", v) }
func (r *recordingVisitor) VisitInt64(v int64) error     { return r.log("int64:%d", v) }
func (r *recordingVisitor) VisitUint(v uint) error       { return r.log("uint:%d", v) }
func (r *recordingVisitor) VisitUint8(v uint8) error     { return r.log("uint8:%d", v) }
func (r *recordingVisitor) VisitUint16(v uint16) error   { return r.log("uint16:%d", v) }
func (r *recordingVisitor) VisitUint32(v uint32) error   { return r.log("uint32:%d", v) }
func (r *recordingVisitor) VisitUint64(v uint64) error   { return r.log("uint64:%d", v) }
func (r *recordingVisitor) VisitFloat64(v float64) error { return r.log("float64:%v", v) }
func (r *recordingVisitor) VisitRune(v rune) error       { return r.log("rune:%c", v) }
func (r *recordingVisitor) VisitString(v string) error   { return r.log("string:%s", v) }

func (r *recordingVisitor) VisitSeq(sv SeqVisitor) error {
	if err := r.log("seq-open"); err != nil {
		return err
	}
	for {
		more, err := sv.Visit(r)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return r.log("seq-close")
}

func (r *recordingVisitor) VisitSeqElt(first bool, value Serializable) error {
	if err := r.log("seq-elt:first=%v", first); err != nil {
		return err
	}
	return value.Serialize(r)
}

func (r *recordingVisitor) VisitMap(mv MapVisitor) error {
	if err := r.log("map-open"); err != nil {
		return err
	}
	for {
		more, err := mv.Visit(r)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return r.log("map-close")
}

func (r *recordingVisitor) VisitMapElt(first bool, key, value Serializable) error {
	if err := r.log("map-elt:first=%v", first); err != nil {
		return err
	}
	if err := key.Serialize(r); err != nil {
		return err
	}
	return value.Serialize(r)
}

func TestScalarWrappersVisitOnce(t *testing.T) {
	tests := []struct {
		name  string
		value Serializable
		want  string
	}{
		{name: "nil", value: Nil{}, want: "nil"},
		{name: "bool", value: Bool(true), want: "bool:true"},
		{name: "int", value: Int(-3), want: "int:-3"},
		{name: "int8", value: Int8(8), want: "int8:8"},
		{name: "int16", value: Int16(16), want: "int16:16"},
		{name: "int32", value: Int32(32), want: "int32:32"},
		{name: "int64", value: Int64(64), want: "int64:64"},
		{name: "uint", value: Uint(1), want: "uint:1"},
		{name: "uint8", value: Uint8(8), want: "uint8:8"},
		{name: "uint16", value: Uint16(16), want: "uint16:16"},
		{name: "uint32", value: Uint32(32), want: "uint32:32"},
		{name: "uint64", value: Uint64(64), want: "uint64:64"},
		{name: "float64", value: Float64(1.5), want: "float64:1.5"},
		{name: "rune", value: Rune('z'), want: "rune:z"},
		{name: "string", value: String("hi"), want: "string:hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingVisitor{}
			if err := tt.value.Serialize(rec); err != nil {
				t.Fatalf("Serialize() error: %v", err)
			}
			if len(rec.ops) != 1 || rec.ops[0] != tt.want {
				t.Errorf("visit calls = %v, want [%s]", rec.ops, tt.want)
			}
		})
	}
}

func TestSliceDriverFirstFlags(t *testing.T) {
	rec := &recordingVisitor{}
	if err := (Slice[Int]{10, 20, 30}).Serialize(rec); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	want := []string{
		"seq-open",
		"seq-elt:first=true", "int:10",
		"seq-elt:first=false", "int:20",
		"seq-elt:first=false", "int:30",
		"seq-close",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("visit calls = %v, want %v", rec.ops, want)
	}
}

func TestEmptySliceExhaustsImmediately(t *testing.T) {
	rec := &recordingVisitor{}
	if err := (Slice[Int]{}).Serialize(rec); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	want := []string{"seq-open", "seq-close"}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("visit calls = %v, want %v", rec.ops, want)
	}
}

func TestPairsDriverFirstFlags(t *testing.T) {
	rec := &recordingVisitor{}
	pairs := Pairs{
		{Key: String("a"), Value: Int(1)},
		{Key: String("b"), Value: Int(2)},
	}
	if err := pairs.Serialize(rec); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	want := []string{
		"map-open",
		"map-elt:first=true", "string:a", "int:1",
		"map-elt:first=false", "string:b", "int:2",
		"map-close",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("visit calls = %v, want %v", rec.ops, want)
	}
}

func TestSeqFuncFirstFlags(t *testing.T) {
	n := 0
	next := SeqFunc(func() (Serializable, bool) {
		if n >= 2 {
			return nil, false
		}
		n++
		return Int(n), true
	})

	rec := &recordingVisitor{}
	if err := next.Serialize(rec); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	want := []string{
		"seq-open",
		"seq-elt:first=true", "int:1",
		"seq-elt:first=false", "int:2",
		"seq-close",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("visit calls = %v, want %v", rec.ops, want)
	}
}

func TestMapSortsKeys(t *testing.T) {
	rec := &recordingVisitor{}
	m := Map[Int]{"c": 3, "a": 1, "b": 2}
	if err := m.Serialize(rec); err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	want := []string{
		"map-open",
		"map-elt:first=true", "string:a", "int:1",
		"map-elt:first=false", "string:b", "int:2",
		"map-elt:first=false", "string:c", "int:3",
		"map-close",
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("visit calls = %v, want %v", rec.ops, want)
	}
}

func TestDriverExhaustion(t *testing.T) {
	d := &sliceDriver[Int]{elems: []Int{1}}
	rec := &recordingVisitor{}

	more, err := d.Visit(rec)
	if err != nil || !more {
		t.Fatalf("first Visit() = (%v, %v), want (true, nil)", more, err)
	}

	more, err = d.Visit(rec)
	if err != nil || more {
		t.Fatalf("second Visit() = (%v, %v), want (false, nil)", more, err)
	}
}
