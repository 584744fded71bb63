package core

import (
	"github.com/scigolib/fbx/internal/bytesource"
)

// footer3Length is the size of the all-zero block that must follow the
// re-derived version integer.
const footer3Length = 120

// footer4Magic is the 16-byte constant that must terminate every binary FBX
// file.
var footer4Magic = [16]byte{
	0xF8, 0x5A, 0x8C, 0x6A, 0xDE, 0xF5, 0xD9, 0x7E,
	0xEC, 0xE9, 0x0C, 0xE3, 0x75, 0x8F, 0x29, 0x0B,
}

// readFooter consumes the trailer that follows the root-level NULL sentinel
// (§4.3) and returns the opaque 16-byte footer1 block. version is the
// document's parsed version, needed for the footer2 correction heuristic.
func readFooter(s *bytesource.Source, version Version) ([16]byte, error) {
	var footer1 [16]byte

	b, err := s.ReadExact(16)
	if err != nil {
		return footer1, err
	}
	copy(footer1[:], b)

	if err := readFooterPadding(s); err != nil {
		return footer1, err
	}

	if err := readFooter2(s, version); err != nil {
		return footer1, err
	}

	if err := readFooter3(s); err != nil {
		return footer1, err
	}

	if err := readFooter4(s); err != nil {
		return footer1, err
	}

	return footer1, nil
}

// readFooterPadding aligns the cursor so that (cursor+1) is divisible by 16.
func readFooterPadding(s *bytesource.Source) error {
	remain := int(16-(s.Cursor()%16)) - 1
	if remain > 0 {
		if _, err := s.ReadExact(remain); err != nil {
			return err
		}
	}
	if (s.Cursor()+1)%16 != 0 {
		return ErrMisalignedFooter
	}
	return nil
}

// readFooter2 reads the 4-byte footer2 block. If it is all zero, a fresh
// packed-version integer follows and is discarded (its value was already
// established by the header read). Otherwise the block holds 0-2 stray
// bytes before the packed version; the correction heuristic in §4.3/§9
// locates them by searching offsets 0, 1 and 2 for the low two bytes of the
// packed version.
func readFooter2(s *bytesource.Source, version Version) error {
	b, err := s.ReadExact(4)
	if err != nil {
		return err
	}

	if b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0 {
		_, err := s.ReadU32LE()
		return err
	}

	packed := version.Packed()
	low := [2]byte{byte(packed), byte(packed >> 8)}

	for i := 0; i <= 2; i++ {
		if b[i] == low[0] && b[i+1] == low[1] {
			if i > 0 {
				if _, err := s.ReadExact(i); err != nil {
					return err
				}
			}
			return nil
		}
	}

	return ErrInvalidFooter2Pattern
}

func readFooter3(s *bytesource.Source) error {
	b, err := s.ReadExact(footer3Length)
	if err != nil {
		return err
	}

	var actual [120]byte
	copy(actual[:], b)

	for _, v := range b {
		if v != 0 {
			return &Footer3MismatchError{Actual: actual}
		}
	}
	return nil
}

func readFooter4(s *bytesource.Source) error {
	b, err := s.ReadExact(16)
	if err != nil {
		return err
	}

	var actual [16]byte
	copy(actual[:], b)

	if actual != footer4Magic {
		return &Footer4MismatchError{Actual: actual}
	}
	return nil
}
