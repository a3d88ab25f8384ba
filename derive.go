package enummap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// enumType is the codec derived once per key type: the total number of key
// values, the two inverse index functions, and the textual key form used by
// the serialization boundary. Indices are dense: every key value maps to
// exactly one index in [0, n), and every index in [0, n) decodes back to
// exactly one key value.
type enumType struct {
	typ  reflect.Type
	n    int
	enc  func(v reflect.Value) int
	dec  func(i int, dst reflect.Value)
	text func(i int) string

	parseOnce sync.Once
	parseMap  map[string]int
}

var enumTypes sync.Map

func enumTypeOf(typ reflect.Type) *enumType {
	if v, ok := enumTypes.Load(typ); ok {
		return v.(*enumType)
	}
	et := deriveEnumType(typ)
	actual, _ := enumTypes.LoadOrStore(typ, et)
	return actual.(*enumType)
}

func enumTypeFor[K any]() *enumType {
	return enumTypeOf(reflect.TypeOf((*K)(nil)).Elem())
}

func register(et *enumType) {
	if _, loaded := enumTypes.LoadOrStore(et.typ, et); loaded {
		panic(fmt.Errorf("enummap: %v is already defined", et.typ))
	}
}

func deriveEnumType(typ reflect.Type) *enumType {
	switch typ.Kind() {
	case reflect.Bool:
		return boolEnumType(typ)
	case reflect.Uint8:
		return byteEnumType(typ)
	case reflect.Struct:
		return structEnumType(typ)
	case reflect.Pointer:
		return ptrEnumType(typ)
	case reflect.Interface:
		panic(fmt.Errorf("enummap: union type %v is not defined, call DefineUnion first", typ))
	default:
		panic(fmt.Errorf("enummap does not know how to enumerate %v, call DefineEnum first", typ))
	}
}

// decode is the only entry point into dec; an index outside [0, n) means a
// broken caller, not bad data, so it's a panic rather than an error.
func (et *enumType) decode(i int, dst reflect.Value) {
	if i < 0 || i >= et.n {
		panic(fmt.Errorf("enummap: index %d out of range for %v (%d values)", i, et.typ, et.n))
	}
	et.dec(i, dst)
}

func (et *enumType) parse(s string) (int, bool) {
	et.parseOnce.Do(func() {
		m := make(map[string]int, et.n)
		for i := 0; i < et.n; i++ {
			m[et.text(i)] = i
		}
		et.parseMap = m
	})
	i, ok := et.parseMap[s]
	return i, ok
}

func boolEnumType(typ reflect.Type) *enumType {
	return &enumType{
		typ: typ,
		n:   2,
		enc: func(v reflect.Value) int {
			if v.Bool() {
				return 1
			}
			return 0
		},
		dec: func(i int, dst reflect.Value) {
			dst.Set(reflect.ValueOf(i == 1).Convert(typ))
		},
		text: func(i int) string {
			if i == 1 {
				return "true"
			}
			return "false"
		},
	}
}

func byteEnumType(typ reflect.Type) *enumType {
	return &enumType{
		typ: typ,
		n:   256,
		enc: func(v reflect.Value) int {
			return int(v.Uint())
		},
		dec: func(i int, dst reflect.Value) {
			dst.Set(reflect.ValueOf(uint8(i)).Convert(typ))
		},
		text: strconv.Itoa,
	}
}

// structEnumType enumerates a struct as the product of its fields, encoded
// as a mixed-radix little-endian number: the first declared field varies
// fastest, each later field's weight is the product of the counts of the
// fields before it.
func structEnumType(typ reflect.Type) *enumType {
	fields := make([]*enumType, typ.NumField())
	for i := range fields {
		f := typ.Field(i)
		if !f.IsExported() {
			panic(fmt.Errorf("enummap: key field %v.%s must be exported", typ, f.Name))
		}
		fields[i] = enumTypeOf(f.Type)
	}
	n := 1
	for _, ft := range fields {
		n = mulCardinality(n, ft.n)
	}
	return &enumType{
		typ: typ,
		n:   n,
		enc: func(v reflect.Value) int {
			idx, weight := 0, 1
			for i, ft := range fields {
				idx += weight * ft.enc(v.Field(i))
				weight *= ft.n
			}
			return idx
		},
		dec: func(i int, dst reflect.Value) {
			weight := 1
			for fi, ft := range fields {
				ft.dec(i/weight%ft.n, dst.Field(fi))
				weight *= ft.n
			}
		},
		text: func(i int) string {
			if len(fields) == 0 {
				return "()"
			}
			var b strings.Builder
			b.WriteByte('(')
			weight := 1
			for fi, ft := range fields {
				if fi > 0 {
					b.WriteByte(',')
				}
				b.WriteString(ft.text(i / weight % ft.n))
				weight *= ft.n
			}
			b.WriteByte(')')
			return b.String()
		},
	}
}

// ptrEnumType enumerates *T as an optional T: nil takes index 0, the values
// of T follow shifted by one.
func ptrEnumType(typ reflect.Type) *enumType {
	elem := enumTypeOf(typ.Elem())
	n := addCardinality(1, elem.n)
	return &enumType{
		typ: typ,
		n:   n,
		enc: func(v reflect.Value) int {
			if v.IsNil() {
				return 0
			}
			return 1 + elem.enc(v.Elem())
		},
		dec: func(i int, dst reflect.Value) {
			if i == 0 {
				dst.Set(reflect.Zero(typ))
				return
			}
			p := reflect.New(typ.Elem())
			elem.dec(i-1, p.Elem())
			dst.Set(p.Convert(typ))
		},
		text: func(i int) string {
			if i == 0 {
				return "nil"
			}
			return "&" + elem.text(i-1)
		},
	}
}

// DefineEnum declares K as a unit enum whose values are exactly the ones
// listed, in this order. The listing order assigns indices 0..len-1; the
// numeric values of the constants play no role in the assignment. The
// textual form of each value comes from its String method when K implements
// fmt.Stringer, and from fmt.Sprint otherwise.
//
// Call DefineEnum once per type, typically from a package-level var or init.
// Listing no values declares an uninhabited key type.
func DefineEnum[K comparable](values ...K) {
	typ := reflect.TypeOf((*K)(nil)).Elem()
	index := make(map[K]int, len(values))
	names := make([]string, len(values))
	byName := make(map[string]int, len(values))
	for i, v := range values {
		if _, dup := index[v]; dup {
			panic(fmt.Errorf("enummap: duplicate value %v in enum %v", v, typ))
		}
		index[v] = i
		name := enumValueName(v)
		if prev, dup := byName[name]; dup {
			panic(fmt.Errorf("enummap: values %v and %v of enum %v share the name %q", values[prev], v, typ, name))
		}
		byName[name] = i
		names[i] = name
	}
	register(&enumType{
		typ: typ,
		n:   len(values),
		enc: func(v reflect.Value) int {
			k := v.Interface().(K)
			i, ok := index[k]
			if !ok {
				panic(fmt.Errorf("enummap: %v is not a declared value of enum %v", k, typ))
			}
			return i
		},
		dec: func(i int, dst reflect.Value) {
			dst.Set(reflect.ValueOf(values[i]))
		},
		text: func(i int) string { return names[i] },
	})
}

func enumValueName[K any](v K) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// UnionCase names one concrete variant of a union key type. Construct with
// Case.
type UnionCase[K any] struct {
	name string
	typ  reflect.Type
}

// Case declares the struct type C as a variant of the union interface K.
// The variant's name on the wire is C's type name.
func Case[K, C any]() UnionCase[K] {
	typ := reflect.TypeOf((*C)(nil)).Elem()
	if typ.Name() == "" {
		panic(fmt.Errorf("enummap: union case %v must be a named type", typ))
	}
	return UnionCase[K]{name: typ.Name(), typ: typ}
}

type unionCase struct {
	name string
	typ  reflect.Type
	et   *enumType
	base int
}

// DefineUnion declares the interface type K as a sum of the given struct
// cases, in this order. Each case occupies a contiguous index sub-range
// whose size is the product of the case's field counts (one for an empty
// struct); sub-ranges are laid out in declaration order. Listing no cases
// declares an uninhabited key type.
func DefineUnion[K any](cases ...UnionCase[K]) {
	typ := reflect.TypeOf((*K)(nil)).Elem()
	if typ.Kind() != reflect.Interface {
		panic(fmt.Errorf("enummap: union type %v must be an interface", typ))
	}

	list := make([]*unionCase, len(cases))
	byType := make(map[reflect.Type]*unionCase, len(cases))
	byName := make(map[string]int, len(cases))
	base := 0
	for i, c := range cases {
		if c.typ.Kind() != reflect.Struct {
			panic(fmt.Errorf("enummap: union case %v of %v must be a struct", c.typ, typ))
		}
		if !c.typ.Implements(typ) {
			panic(fmt.Errorf("enummap: union case %v does not implement %v (methods must use value receivers)", c.typ, typ))
		}
		if byType[c.typ] != nil {
			panic(fmt.Errorf("enummap: duplicate union case %v in %v", c.typ, typ))
		}
		if prev, dup := byName[c.name]; dup {
			panic(fmt.Errorf("enummap: cases %v and %v of union %v share the name %q", cases[prev].typ, c.typ, typ, c.name))
		}
		byName[c.name] = i
		uc := &unionCase{name: c.name, typ: c.typ, et: enumTypeOf(c.typ), base: base}
		base = addCardinality(base, uc.et.n)
		list[i] = uc
		byType[c.typ] = uc
	}

	register(&enumType{
		typ: typ,
		n:   base,
		enc: func(v reflect.Value) int {
			if v.IsNil() {
				panic(fmt.Errorf("enummap: nil is not a value of union %v", typ))
			}
			cv := v.Elem()
			uc := byType[cv.Type()]
			if uc == nil {
				panic(fmt.Errorf("enummap: %v is not a declared case of union %v", cv.Type(), typ))
			}
			return uc.base + uc.et.enc(cv)
		},
		dec: func(i int, dst reflect.Value) {
			for _, uc := range list {
				if i < uc.base+uc.et.n {
					cv := reflect.New(uc.typ).Elem()
					uc.et.dec(i-uc.base, cv)
					dst.Set(cv)
					return
				}
			}
			panic(fmt.Errorf("enummap: index %d out of range for %v", i, typ))
		},
		text: func(i int) string {
			for _, uc := range list {
				if i < uc.base+uc.et.n {
					if uc.typ.NumField() == 0 {
						return uc.name
					}
					return uc.name + uc.et.text(i-uc.base)
				}
			}
			panic(fmt.Errorf("enummap: index %d out of range for %v", i, typ))
		},
	})
}
