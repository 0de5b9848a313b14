package serde

import (
	"reflect"
	"sort"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field-naming tag with sentinel
	sentinel.Tag("serde")
}

// Reflect builds a Serializable view of an arbitrary Go value.
//
// Scalars, strings, slices, arrays, maps, pointers, interfaces, and structs
// all walk to their protocol primitives. Values that already implement
// Serializable bypass the walk. Struct fields are named after the `serde`
// tag when present; unexported fields and fields tagged "-" are skipped.
//
// Nil pointers, nil interfaces, nil slices, and nil maps serialize as null.
// Map entries render in sorted key order so output is deterministic.
// Channels, funcs, and complex numbers have no protocol mapping and fail
// with *UnsupportedTypeError.
func Reflect(v any) Serializable {
	return reflectValue{v: v}
}

type reflectValue struct {
	v any
}

func (r reflectValue) Serialize(vis Visitor) error {
	if r.v == nil {
		return vis.VisitNil()
	}
	if s, ok := r.v.(Serializable); ok {
		return s.Serialize(vis)
	}
	return serializeReflected(vis, reflect.ValueOf(r.v))
}

// serializeReflected dispatches one reflect.Value to its visit call.
func serializeReflected(vis Visitor, rv reflect.Value) error {
	if !rv.IsValid() {
		return vis.VisitNil()
	}

	if rv.CanInterface() {
		if s, ok := rv.Interface().(Serializable); ok {
			return s.Serialize(vis)
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return vis.VisitBool(rv.Bool())

	case reflect.Int:
		return vis.VisitInt(int(rv.Int()))
	case reflect.Int8:
		return vis.VisitInt8(int8(rv.Int()))
	case reflect.Int16:
		return vis.VisitInt16(int16(rv.Int()))
	case reflect.Int32:
		return vis.VisitInt32(int32(rv.Int()))
	case reflect.Int64:
		return vis.VisitInt64(rv.Int())

	case reflect.Uint:
		return vis.VisitUint(uint(rv.Uint()))
	case reflect.Uint8:
		return vis.VisitUint8(uint8(rv.Uint()))
	case reflect.Uint16:
		return vis.VisitUint16(uint16(rv.Uint()))
	case reflect.Uint32:
		return vis.VisitUint32(uint32(rv.Uint()))
	case reflect.Uint64, reflect.Uintptr:
		return vis.VisitUint64(rv.Uint())

	case reflect.Float32, reflect.Float64:
		return vis.VisitFloat64(rv.Float())

	case reflect.String:
		return vis.VisitString(rv.String())

	case reflect.Slice:
		if rv.IsNil() {
			return vis.VisitNil()
		}
		return vis.VisitSeq(&reflectSeqDriver{rv: rv})
	case reflect.Array:
		return vis.VisitSeq(&reflectSeqDriver{rv: rv})

	case reflect.Map:
		if rv.IsNil() {
			return vis.VisitNil()
		}
		return serializeReflectedMap(vis, rv)

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return vis.VisitNil()
		}
		return serializeReflected(vis, rv.Elem())

	case reflect.Struct:
		plan := planFor(rv.Type())
		return vis.VisitMap(&reflectStructDriver{rv: rv, plan: plan})

	default:
		return newUnsupportedTypeError(rv.Type())
	}
}

// reflectSeqDriver is an index cursor over a slice or array, implementing
// SeqVisitor.
type reflectSeqDriver struct {
	rv   reflect.Value
	next int
}

func (d *reflectSeqDriver) Visit(vis Visitor) (bool, error) {
	if d.next >= d.rv.Len() {
		return false, nil
	}
	first := d.next == 0
	elem := d.rv.Index(d.next)
	d.next++
	if err := vis.VisitSeqElt(first, reflectElem{rv: elem}); err != nil {
		return false, err
	}
	return true, nil
}

// serializeReflectedMap renders a Go map with sorted keys.
func serializeReflectedMap(vis Visitor, rv reflect.Value) error {
	keys := rv.MapKeys()
	sortMapKeys(keys)
	return vis.VisitMap(&reflectMapDriver{rv: rv, keys: keys})
}

// sortMapKeys orders keys for deterministic output. String and integer keys
// sort naturally; other key kinds keep map order.
func sortMapKeys(keys []reflect.Value) {
	if len(keys) == 0 {
		return
	}
	switch keys[0].Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	}
}

// reflectMapDriver is a cursor over pre-sorted map keys, implementing
// MapVisitor.
type reflectMapDriver struct {
	rv   reflect.Value
	keys []reflect.Value
	next int
}

func (d *reflectMapDriver) Visit(vis Visitor) (bool, error) {
	if d.next >= len(d.keys) {
		return false, nil
	}
	first := d.next == 0
	key := d.keys[d.next]
	d.next++
	elt := reflectElem{rv: d.rv.MapIndex(key)}
	if err := vis.VisitMapElt(first, reflectElem{rv: key}, elt); err != nil {
		return false, err
	}
	return true, nil
}

// reflectStructDriver walks a struct's field plan, implementing MapVisitor.
type reflectStructDriver struct {
	rv   reflect.Value
	plan *structPlan
	next int
}

func (d *reflectStructDriver) Visit(vis Visitor) (bool, error) {
	if d.next >= len(d.plan.fields) {
		return false, nil
	}
	first := d.next == 0
	field := d.plan.fields[d.next]
	d.next++
	elt := reflectElem{rv: d.rv.FieldByIndex(field.index)}
	if err := vis.VisitMapElt(first, String(field.name), elt); err != nil {
		return false, err
	}
	return true, nil
}

// reflectElem defers serialization of one reflected element so drivers can
// hand it to VisitSeqElt/VisitMapElt as a Serializable.
type reflectElem struct {
	rv reflect.Value
}

func (e reflectElem) Serialize(vis Visitor) error {
	return serializeReflected(vis, e.rv)
}

// structPlan describes how to serialize one struct type.
type structPlan struct {
	fields []structFieldPlan
}

// structFieldPlan describes one serializable field.
type structFieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // rendered key (tag value or field name)
}

// buildStructPlan scans a struct type into a field plan. Metadata comes from
// sentinel when the type has been scanned; otherwise the type is walked
// directly.
func buildStructPlan(rt reflect.Type) *structPlan {
	plan := &structPlan{}

	if spec, ok := sentinel.Lookup(rt.String()); ok {
		for _, field := range spec.Fields {
			name := field.Name
			if tag, ok := field.Tags["serde"]; ok {
				if tag == "-" {
					continue
				}
				name = tag
			}
			plan.fields = append(plan.fields, structFieldPlan{
				index: field.Index,
				name:  name,
			})
		}
		return plan
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("serde"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		plan.fields = append(plan.fields, structFieldPlan{
			index: sf.Index,
			name:  name,
		})
	}
	return plan
}
