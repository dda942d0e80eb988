package params

import (
	"encoding/binary"
	"math"
)

// Native is the closed set of in-memory representations a property may use.
// Byte reinterpretation happens only inside the codec closures generated for
// these types; raw buffers never cross this boundary untyped.
type Native interface {
	float32 | float64 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | bool
}

// Number is the ordered subset of Native, usable with InRange.
type Number interface {
	float32 | float64 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Float is the floating-point subset of Native.
type Float interface {
	float32 | float64
}

// nativeSize returns the encoded size in bytes of T's representation.
func nativeSize[T Native]() int {
	var v T
	switch any(v).(type) {
	case bool, uint8:
		return 1
	case int16, uint16:
		return 2
	case float32, int32, uint32:
		return 4
	default: // float64, int64, uint64
		return 8
	}
}

// encodeNative writes v into buf in little-endian order. buf must hold at
// least nativeSize[T]() bytes.
func encodeNative[T Native](buf []byte, v T) {
	switch x := any(v).(type) {
	case bool:
		buf[0] = 0
		if x {
			buf[0] = 1
		}
	case uint8:
		buf[0] = x
	case int16:
		binary.LittleEndian.PutUint16(buf, uint16(x))
	case uint16:
		binary.LittleEndian.PutUint16(buf, x)
	case float32:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(x))
	case int32:
		binary.LittleEndian.PutUint32(buf, uint32(x))
	case uint32:
		binary.LittleEndian.PutUint32(buf, x)
	case float64:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
	case int64:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(buf, x)
	}
}

// decodeNative reads a T from buf. buf must hold at least
// nativeSize[T]() bytes.
func decodeNative[T Native](buf []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = buf[0] != 0
	case *uint8:
		*p = buf[0]
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(buf))
	case *uint16:
		*p = binary.LittleEndian.Uint16(buf)
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(buf))
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(buf))
	case *uint32:
		*p = binary.LittleEndian.Uint32(buf)
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(buf))
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(buf))
	case *uint64:
		*p = binary.LittleEndian.Uint64(buf)
	}
	return v
}
