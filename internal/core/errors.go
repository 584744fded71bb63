package core

import (
	"errors"
	"fmt"

	"github.com/scigolib/fbx/internal/bytesource"
)

// ErrTruncated is returned when the source is exhausted mid-field.
var ErrTruncated = bytesource.ErrTruncated

// ErrNotBinaryFBX is returned by the dispatcher when the 23-byte magic
// prefix does not match.
var ErrNotBinaryFBX = errors.New("not a binary FBX file")

// ErrMisalignedFooter is returned when the footer padding post-condition
// ((cursor+1) divisible by 16) fails.
var ErrMisalignedFooter = errors.New("fbx: footer padding did not land on a 16-byte boundary")

// ErrInvalidFooter2Pattern is returned when the footer2 correction search
// (§4.3 step 3) finds no matching window.
var ErrInvalidFooter2Pattern = errors.New("fbx: footer2 byte pattern did not match the packed version")

// UnknownAttributeError is returned for an attribute type tag outside the
// closed set in §4.2.3.
type UnknownAttributeError struct {
	Tag byte
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("fbx: unknown attribute type tag %q (0x%02x)", rune(e.Tag), e.Tag)
}

// UnknownEncodingError is returned for an array encoding value other than 0
// (raw) or 1 (zlib-deflated).
type UnknownEncodingError struct {
	Encoding uint32
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("fbx: unknown array encoding %d", e.Encoding)
}

// Footer3MismatchError is returned when the 120-byte zero block does not
// match.
type Footer3MismatchError struct {
	Actual [120]byte
}

func (e *Footer3MismatchError) Error() string {
	return "fbx: footer3 zero block does not match"
}

// Footer4MismatchError is returned when the trailing 16-byte magic constant
// does not match.
type Footer4MismatchError struct {
	Actual [16]byte
}

func (e *Footer4MismatchError) Error() string {
	return fmt.Sprintf("fbx: footer4 magic mismatch: got % x", e.Actual[:])
}
