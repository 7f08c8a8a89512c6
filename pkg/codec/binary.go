package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Int32ToBytes returns v as 4 big-endian bytes.
func Int32ToBytes(v int32) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(v))
}

// Int64ToBytes returns v as 8 big-endian bytes.
func Int64ToBytes(v int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(v))
}

// Float64ToBytes returns the IEEE-754 bits of v as 8 big-endian bytes.
func Float64ToBytes(v float64) []byte {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(v))
}

// BytesToInt32 is the inverse of Int32ToBytes.
func BytesToInt32(b []byte) (int32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: int32 needs 4 bytes, got %d", ErrInvalidEncoding, len(b))
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// BytesToInt64 is the inverse of Int64ToBytes.
func BytesToInt64(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: int64 needs 8 bytes, got %d", ErrInvalidEncoding, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// BytesToFloat64 is the inverse of Float64ToBytes.
func BytesToFloat64(b []byte) (float64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: float64 needs 8 bytes, got %d", ErrInvalidEncoding, len(b))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}
