package fbx

import (
	"fmt"

	"github.com/scigolib/fbx/internal/core"
)

// Error kinds (§7), re-exported from internal/core so callers can branch on
// them with errors.Is/errors.As without reaching into an internal package.
var (
	// ErrTruncated means the source was exhausted mid-field.
	ErrTruncated = core.ErrTruncated

	// ErrNotBinaryFBX means the 23-byte magic prefix did not match; the
	// ASCII dialect is a cooperating collaborator but out of scope here.
	ErrNotBinaryFBX = core.ErrNotBinaryFBX

	// ErrMisalignedFooter means the footer's post-padding alignment
	// post-condition failed.
	ErrMisalignedFooter = core.ErrMisalignedFooter

	// ErrInvalidFooter2Pattern means the footer2 correction search (§4.3)
	// found no window matching the packed version's low two bytes.
	ErrInvalidFooter2Pattern = core.ErrInvalidFooter2Pattern
)

// UnknownAttributeError is returned for an attribute type tag outside the
// closed set in §4.2.3.
type UnknownAttributeError = core.UnknownAttributeError

// UnknownEncodingError is returned for an array encoding value other than
// raw (0) or zlib-deflated (1).
type UnknownEncodingError = core.UnknownEncodingError

// Footer3MismatchError is returned when the 120-byte zero block fails to
// match.
type Footer3MismatchError = core.Footer3MismatchError

// Footer4MismatchError is returned when the trailing 16-byte magic constant
// fails to match.
type Footer4MismatchError = core.Footer4MismatchError

// FailedToOpenFileError wraps a file I/O failure that occurred before
// parsing began.
type FailedToOpenFileError struct {
	Path  string
	Cause error
}

func (e *FailedToOpenFileError) Error() string {
	return fmt.Sprintf("fbx: failed to open file %q: %v", e.Path, e.Cause)
}

func (e *FailedToOpenFileError) Unwrap() error {
	return e.Cause
}

// InvalidUTF8Error is raised only by the query layer's UTF-8 string
// accessor (DecodeUTF8String); the parser itself never validates encoding,
// since FBX Str payloads are not guaranteed to be UTF-8.
type InvalidUTF8Error struct {
	Context string
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("fbx: invalid utf-8 in %s", e.Context)
}
