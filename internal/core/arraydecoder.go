package core

import (
	"bytes"

	"github.com/klauspost/compress/zlib"

	"github.com/scigolib/fbx/internal/bytesource"
	"github.com/scigolib/fbx/internal/utils"
)

// Array encodings (§4.4).
const (
	arrayEncodingRaw     uint32 = 0
	arrayEncodingDeflate uint32 = 1
)

// arrayHeader is the 12-byte header shared by every array attribute tag:
// element count, encoding, and the byte size of the encoded payload.
type arrayHeader struct {
	Length           uint32
	Encoding         uint32
	CompressedLength uint32
}

func readArrayHeader(s *bytesource.Source) (arrayHeader, error) {
	var h arrayHeader
	var err error

	if h.Length, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.Encoding, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.CompressedLength, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	return h, nil
}

// elementSource returns the byte source that `length` array elements should
// be decoded from, switching to a secondary inflater-backed source for the
// zlib-deflated encoding. For the raw encoding it returns s unchanged.
//
// On return, the primary source s has advanced by exactly h.CompressedLength
// bytes beyond the header in the deflated case (the whole compressed blob is
// consumed up front), regardless of how many decompressed bytes the caller
// goes on to read from the returned source.
func elementSource(s *bytesource.Source, h arrayHeader) (*bytesource.Source, error) {
	switch h.Encoding {
	case arrayEncodingRaw:
		return s, nil
	case arrayEncodingDeflate:
		if err := utils.ValidateBufferSize(uint64(h.CompressedLength), utils.MaxCompressedArraySize, "compressed array payload"); err != nil {
			return nil, err
		}
		compressed, err := s.ReadExact(int(h.CompressedLength))
		if err != nil {
			return nil, err
		}
		zr, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return bytesource.New(zr, 0), nil
	default:
		return nil, &UnknownEncodingError{Encoding: h.Encoding}
	}
}

func decodeBoolArray(s *bytesource.Source) ([]bool, error) {
	h, err := readArrayHeader(s)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateBufferSize(uint64(h.Length), utils.MaxArrayElements, "array elements"); err != nil {
		return nil, err
	}
	src, err := elementSource(s, h)
	if err != nil {
		return nil, err
	}
	out := make([]bool, h.Length)
	for i := range out {
		if out[i], err = src.ReadBoolean(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeInt32Array(s *bytesource.Source) ([]int32, error) {
	h, err := readArrayHeader(s)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateBufferSize(uint64(h.Length), utils.MaxArrayElements, "array elements"); err != nil {
		return nil, err
	}
	src, err := elementSource(s, h)
	if err != nil {
		return nil, err
	}
	out := make([]int32, h.Length)
	for i := range out {
		if out[i], err = src.ReadI32LE(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeInt64Array(s *bytesource.Source) ([]int64, error) {
	h, err := readArrayHeader(s)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateBufferSize(uint64(h.Length), utils.MaxArrayElements, "array elements"); err != nil {
		return nil, err
	}
	src, err := elementSource(s, h)
	if err != nil {
		return nil, err
	}
	out := make([]int64, h.Length)
	for i := range out {
		if out[i], err = src.ReadI64LE(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeFloat32Array(s *bytesource.Source) ([]float32, error) {
	h, err := readArrayHeader(s)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateBufferSize(uint64(h.Length), utils.MaxArrayElements, "array elements"); err != nil {
		return nil, err
	}
	src, err := elementSource(s, h)
	if err != nil {
		return nil, err
	}
	out := make([]float32, h.Length)
	for i := range out {
		if out[i], err = src.ReadF32LE(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeFloat64Array(s *bytesource.Source) ([]float64, error) {
	h, err := readArrayHeader(s)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateBufferSize(uint64(h.Length), utils.MaxArrayElements, "array elements"); err != nil {
		return nil, err
	}
	src, err := elementSource(s, h)
	if err != nil {
		return nil, err
	}
	out := make([]float64, h.Length)
	for i := range out {
		if out[i], err = src.ReadF64LE(); err != nil {
			return nil, err
		}
	}
	return out, nil
}
