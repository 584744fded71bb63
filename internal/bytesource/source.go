// Package bytesource provides a sequential, cursor-tracking reader over a
// byte stream, plus fixed-width little- and big-endian primitive decoders.
//
// A Source never seeks: every read advances its cursor by exactly the number
// of bytes consumed. This matches the binary FBX format, whose node headers
// record absolute end-of-content offsets that are only meaningful against a
// reader that has walked the file front to back.
package bytesource

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/scigolib/fbx/internal/utils"
)

// ErrTruncated is returned when fewer than the requested bytes remain.
var ErrTruncated = errors.New("truncated: unexpected end of stream")

// Source is a stateful cursor over an io.Reader.
type Source struct {
	r      io.Reader
	cursor uint64
}

// New wraps r in a Source whose cursor starts at startCursor. The primary
// source for a binary FBX file starts at 23, since the dispatcher has
// already consumed the magic prefix before constructing it; a secondary
// source built over a decompressed array payload starts at 0.
func New(r io.Reader, startCursor uint64) *Source {
	return &Source{r: r, cursor: startCursor}
}

// Cursor returns the current byte offset from the logical start of this source.
func (s *Source) Cursor() uint64 {
	return s.cursor
}

func (s *Source) fill(buf []byte) error {
	n, err := io.ReadFull(s.r, buf)
	s.cursor += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}

// ReadExact reads and returns exactly n bytes, failing with ErrTruncated if
// fewer remain.
func (s *Source) ReadExact(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := s.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadString reads n raw bytes. No charset decoding is performed; FBX string
// attributes may embed NUL bytes and the \x00\x01 path separator.
func (s *Source) ReadString(n int) ([]byte, error) {
	return s.ReadExact(n)
}

// ReadU8 reads one unsigned byte.
func (s *Source) ReadU8() (uint8, error) {
	buf := utils.GetBuffer(1)
	defer utils.ReleaseBuffer(buf)
	if err := s.fill(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadBoolean reads one byte and applies the two historically observed FBX
// boolean encodings: 'Y' (0x59) is true, 'T' (0x54) is false, and otherwise
// the low bit of the byte decides.
func (s *Source) ReadBoolean() (bool, error) {
	b, err := s.ReadU8()
	if err != nil {
		return false, err
	}
	if b == 0x59 {
		return true, nil
	}
	if b == 0x54 {
		return false, nil
	}
	return b&1 == 1, nil
}

// ReadU16LE reads a little-endian uint16.
func (s *Source) ReadU16LE() (uint16, error) {
	buf := utils.GetBuffer(2)
	defer utils.ReleaseBuffer(buf)
	if err := s.fill(buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadU16BE reads a big-endian uint16. Unused by the binary FBX path; kept
// for symmetry with the little-endian readers.
func (s *Source) ReadU16BE() (uint16, error) {
	buf := utils.GetBuffer(2)
	defer utils.ReleaseBuffer(buf)
	if err := s.fill(buf); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadU32LE reads a little-endian uint32.
func (s *Source) ReadU32LE() (uint32, error) {
	buf := utils.GetBuffer(4)
	defer utils.ReleaseBuffer(buf)
	if err := s.fill(buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadU32BE reads a big-endian uint32. Unused by the binary FBX path; kept
// for symmetry with the little-endian readers.
func (s *Source) ReadU32BE() (uint32, error) {
	buf := utils.GetBuffer(4)
	defer utils.ReleaseBuffer(buf)
	if err := s.fill(buf); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadU64LE reads a little-endian uint64.
func (s *Source) ReadU64LE() (uint64, error) {
	buf := utils.GetBuffer(8)
	defer utils.ReleaseBuffer(buf)
	if err := s.fill(buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadI16LE reads a little-endian int16.
func (s *Source) ReadI16LE() (int16, error) {
	v, err := s.ReadU16LE()
	return int16(v), err
}

// ReadI32LE reads a little-endian int32.
func (s *Source) ReadI32LE() (int32, error) {
	v, err := s.ReadU32LE()
	return int32(v), err
}

// ReadI64LE reads a little-endian int64.
func (s *Source) ReadI64LE() (int64, error) {
	v, err := s.ReadU64LE()
	return int64(v), err
}

// ReadF32LE reads a little-endian IEEE-754 float32.
func (s *Source) ReadF32LE() (float32, error) {
	v, err := s.ReadU32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64LE reads a little-endian IEEE-754 float64.
func (s *Source) ReadF64LE() (float64, error) {
	v, err := s.ReadU64LE()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
