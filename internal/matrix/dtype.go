// Package matrix provides the core row-major matrix container for the
// preprocess feature-engineering library.
package matrix

// DType is a constraint for supported matrix element types.
// It uses Go generics to ensure compile-time type safety across the ten
// fixed-width numeric kinds.
type DType interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// DataType represents runtime type information for matrices.
type DataType int

// Supported element kinds.
const (
	Uint8 DataType = iota
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

// Domain identifies the arithmetic family an element kind belongs to.
// Bounded and Wide values must never meet in a single expression without
// an explicit conversion; Go's type system enforces this in the generic
// container, and the tag is kept for the raw, runtime-typed layer.
type Domain int

// Arithmetic domains.
const (
	// Bounded covers integers of 32 bits or fewer and both float widths.
	Bounded Domain = iota
	// Wide covers the 64-bit integer kinds, whose accumulation must stay
	// in 64-bit integer arithmetic.
	Wide
)

// String returns a human-readable domain name.
func (d Domain) String() string {
	switch d {
	case Bounded:
		return "bounded"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// Size returns the storage width of the element kind in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64:
		return 8
	default:
		panic("unknown element kind")
	}
}

// Domain returns the arithmetic domain of the element kind.
func (dt DataType) Domain() Domain {
	switch dt {
	case Uint64, Int64:
		return Wide
	case Uint8, Uint16, Uint32, Int8, Int16, Int32, Float32, Float64:
		return Bounded
	default:
		panic("unknown element kind")
	}
}

// String returns a human-readable name for the element kind.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf parses an element-kind name as produced by String.
// The boolean reports whether the name was recognized.
func DataTypeOf(name string) (DataType, bool) {
	for dt := Uint8; dt <= Float64; dt++ {
		if dt.String() == name {
			return dt, true
		}
	}
	return 0, false
}

// inferDataType infers the runtime tag from a generic element type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
