package core

// AttributeKind identifies which variant of the Attribute tagged union is
// populated. The variant set is closed and known at compile time.
type AttributeKind uint8

// Attribute variants, one per on-disk type tag (§4.2.3).
const (
	KindBool AttributeKind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBoolArray
	KindInt32Array
	KindInt64Array
	KindFloat32Array
	KindFloat64Array
	KindRaw
	KindString
)

// Attribute is a closed sum type over FBX node attribute payloads. Exactly
// one of its value fields is meaningful, selected by Kind; callers should
// use the As* accessors rather than reading fields directly.
type Attribute struct {
	Kind AttributeKind

	boolVal bool
	i16Val  int16
	i32Val  int32
	i64Val  int64
	f32Val  float32
	f64Val  float64

	boolArr []bool
	i32Arr  []int32
	i64Arr  []int64
	f32Arr  []float32
	f64Arr  []float64

	// bytesVal backs both Raw and Str; Str is never UTF-8 decoded here —
	// FBX strings may embed NUL and the \x00\x01 path separator.
	bytesVal []byte
}

// NewBoolAttribute builds a Bool attribute.
func NewBoolAttribute(v bool) Attribute { return Attribute{Kind: KindBool, boolVal: v} }

// NewInt16Attribute builds an Int16 attribute.
func NewInt16Attribute(v int16) Attribute { return Attribute{Kind: KindInt16, i16Val: v} }

// NewInt32Attribute builds an Int32 attribute.
func NewInt32Attribute(v int32) Attribute { return Attribute{Kind: KindInt32, i32Val: v} }

// NewInt64Attribute builds an Int64 attribute.
func NewInt64Attribute(v int64) Attribute { return Attribute{Kind: KindInt64, i64Val: v} }

// NewFloat32Attribute builds a Float32 attribute.
func NewFloat32Attribute(v float32) Attribute { return Attribute{Kind: KindFloat32, f32Val: v} }

// NewFloat64Attribute builds a Float64 attribute.
func NewFloat64Attribute(v float64) Attribute { return Attribute{Kind: KindFloat64, f64Val: v} }

// NewBoolArrayAttribute builds a BoolArray attribute.
func NewBoolArrayAttribute(v []bool) Attribute { return Attribute{Kind: KindBoolArray, boolArr: v} }

// NewInt32ArrayAttribute builds an Int32Array attribute.
func NewInt32ArrayAttribute(v []int32) Attribute { return Attribute{Kind: KindInt32Array, i32Arr: v} }

// NewInt64ArrayAttribute builds an Int64Array attribute.
func NewInt64ArrayAttribute(v []int64) Attribute { return Attribute{Kind: KindInt64Array, i64Arr: v} }

// NewFloat32ArrayAttribute builds a Float32Array attribute.
func NewFloat32ArrayAttribute(v []float32) Attribute {
	return Attribute{Kind: KindFloat32Array, f32Arr: v}
}

// NewFloat64ArrayAttribute builds a Float64Array attribute.
func NewFloat64ArrayAttribute(v []float64) Attribute {
	return Attribute{Kind: KindFloat64Array, f64Arr: v}
}

// NewRawAttribute builds a Raw attribute from an opaque byte blob.
func NewRawAttribute(v []byte) Attribute { return Attribute{Kind: KindRaw, bytesVal: v} }

// NewStringAttribute builds a Str attribute from its exact on-disk bytes.
func NewStringAttribute(v []byte) Attribute { return Attribute{Kind: KindString, bytesVal: v} }

// AsBool returns the Bool value iff Kind == KindBool.
func (a Attribute) AsBool() (bool, bool) {
	if a.Kind != KindBool {
		return false, false
	}
	return a.boolVal, true
}

// AsI16 returns the Int16 value iff Kind == KindInt16.
func (a Attribute) AsI16() (int16, bool) {
	if a.Kind != KindInt16 {
		return 0, false
	}
	return a.i16Val, true
}

// AsI32 returns the Int32 value iff Kind == KindInt32. No coercion from
// Int16 or Int64 is performed.
func (a Attribute) AsI32() (int32, bool) {
	if a.Kind != KindInt32 {
		return 0, false
	}
	return a.i32Val, true
}

// AsI64 returns the Int64 value iff Kind == KindInt64.
func (a Attribute) AsI64() (int64, bool) {
	if a.Kind != KindInt64 {
		return 0, false
	}
	return a.i64Val, true
}

// AsF32 returns the Float32 value iff Kind == KindFloat32.
func (a Attribute) AsF32() (float32, bool) {
	if a.Kind != KindFloat32 {
		return 0, false
	}
	return a.f32Val, true
}

// AsF64 returns the Float64 value iff Kind == KindFloat64.
func (a Attribute) AsF64() (float64, bool) {
	if a.Kind != KindFloat64 {
		return 0, false
	}
	return a.f64Val, true
}

// AsBoolArray returns the BoolArray value iff Kind == KindBoolArray.
func (a Attribute) AsBoolArray() ([]bool, bool) {
	if a.Kind != KindBoolArray {
		return nil, false
	}
	return a.boolArr, true
}

// AsI32Array returns the Int32Array value iff Kind == KindInt32Array.
func (a Attribute) AsI32Array() ([]int32, bool) {
	if a.Kind != KindInt32Array {
		return nil, false
	}
	return a.i32Arr, true
}

// AsI64Array returns the Int64Array value iff Kind == KindInt64Array.
func (a Attribute) AsI64Array() ([]int64, bool) {
	if a.Kind != KindInt64Array {
		return nil, false
	}
	return a.i64Arr, true
}

// AsF32Array returns the Float32Array value iff Kind == KindFloat32Array.
func (a Attribute) AsF32Array() ([]float32, bool) {
	if a.Kind != KindFloat32Array {
		return nil, false
	}
	return a.f32Arr, true
}

// AsF64Array returns the Float64Array value iff Kind == KindFloat64Array.
func (a Attribute) AsF64Array() ([]float64, bool) {
	if a.Kind != KindFloat64Array {
		return nil, false
	}
	return a.f64Arr, true
}

// AsRaw returns the Raw byte blob iff Kind == KindRaw.
func (a Attribute) AsRaw() ([]byte, bool) {
	if a.Kind != KindRaw {
		return nil, false
	}
	return a.bytesVal, true
}

// AsBytesString returns the exact on-disk bytes of a Str attribute iff
// Kind == KindString. No UTF-8 validation or decoding is performed; that is
// the query layer's concern.
func (a Attribute) AsBytesString() ([]byte, bool) {
	if a.Kind != KindString {
		return nil, false
	}
	return a.bytesVal, true
}
