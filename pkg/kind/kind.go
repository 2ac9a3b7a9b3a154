package kind

import (
	"math/big"
	"time"

	"github.com/hxlib/argue/pkg/argue"
)

// DataType identifies a scalar data type by name, for schema-like code
// that labels values at runtime.
type DataType uint8

const (
	Invalid DataType = iota
	Bool
	Char
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	String
	Date
	Time
	DateTime
	Instant
	BigInteger
	BigDecimal
)

var names = map[DataType]string{
	Bool:       "bool",
	Char:       "char",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	UInt8:      "uint8",
	UInt16:     "uint16",
	UInt32:     "uint32",
	UInt64:     "uint64",
	Float32:    "float32",
	Float64:    "float64",
	String:     "string",
	Date:       "date",
	Time:       "time",
	DateTime:   "datetime",
	Instant:    "instant",
	BigInteger: "biginteger",
	BigDecimal: "bigdecimal",
}

func (d DataType) String() string {
	if n, ok := names[d]; ok {
		return n
	}
	return "invalid"
}

// Parse resolves a type name produced by String.
func Parse(s string) argue.Result[DataType] {
	for d, n := range names {
		if n == s {
			return argue.Success(d)
		}
	}
	return argue.Failf[DataType]("Unknown data type name: '%s'", s)
}

// Of labels a Go value. int maps to Int64 and uint to UInt64 regardless
// of platform width; rune is an alias of int32, so character values
// label as Int32, and Char remains reachable only through Parse.
func Of(v any) DataType {
	switch v.(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int, int64:
		return Int64
	case uint8:
		return UInt8
	case uint16:
		return UInt16
	case uint32:
		return UInt32
	case uint, uint64:
		return UInt64
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	case time.Time:
		return DateTime
	case *big.Int:
		return BigInteger
	case *big.Float:
		return BigDecimal
	default:
		return Invalid
	}
}
