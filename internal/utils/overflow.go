package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow reports whether a*b would overflow uint64.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values, failing instead of wrapping on overflow.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// ValidateBufferSize rejects a length-prefixed field before it is used to
// size an allocation, guarding against a corrupt or hostile length value.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}
	return nil
}

// Size limits applied before allocating for length-prefixed fields. These are
// generous relative to any real FBX file; they exist to turn a corrupt length
// field into an error instead of an attempted multi-gigabyte allocation.
const (
	// MaxNodeNameLength is the largest value a node name length byte can hold.
	MaxNodeNameLength = 255

	// MaxStringAttributeSize bounds an 'S' or 'R' attribute payload.
	MaxStringAttributeSize = 256 * 1024 * 1024

	// MaxArrayElements bounds the element count of a typed array attribute.
	MaxArrayElements = 256 * 1024 * 1024

	// MaxCompressedArraySize bounds the compressed byte size read for a
	// deflated array payload before it is handed to the inflater.
	MaxCompressedArraySize = 256 * 1024 * 1024
)
