package compact

// Kind discriminates the dynamic values produced by the metadata decoder.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindDouble
	KindBytes
	KindList
	KindStruct
)

// Value is one decoded Thrift compact-protocol value. Containers own their
// contents; byte strings are copied out of the input buffer so the decoded
// tree can outlive it.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	d      float64
	raw    []byte
	list   []Value
	fields map[int16]Value
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Bool() bool {
	return v.b
}

// Int returns the decoded integer. Both i32 and i64 fields are widened to
// 64 bits.
func (v Value) Int() int64 {
	return v.i
}

func (v Value) Double() float64 {
	return v.d
}

func (v Value) Bytes() []byte {
	return v.raw
}

func (v Value) List() []Value {
	return v.list
}

func (v Value) Struct() map[int16]Value {
	return v.fields
}

func (v Value) Field(id int16) (Value, bool) {
	f, ok := v.fields[id]

	return f, ok
}

func boolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func intValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func doubleValue(d float64) Value {
	return Value{kind: KindDouble, d: d}
}

func bytesValue(raw []byte) Value {
	return Value{kind: KindBytes, raw: raw}
}

func listValue(list []Value) Value {
	return Value{kind: KindList, list: list}
}

func structValue(fields map[int16]Value) Value {
	return Value{kind: KindStruct, fields: fields}
}
