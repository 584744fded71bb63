package fbx

import (
	"io"

	"github.com/scigolib/fbx/internal/bytesource"
	"github.com/scigolib/fbx/internal/core"
)

// binaryMagic is the 23-byte prefix that identifies the binary FBX dialect
// (§2). Every binary FBX file begins with this exact sequence.
var binaryMagic = [core.MagicPrefixLength]byte{
	'K', 'a', 'y', 'd', 'a', 'r', 'a', ' ', 'F', 'B', 'X', ' ', 'B', 'i', 'n', 'a', 'r', 'y', ' ', ' ',
	0x00, 0x1A, 0x00,
}

// dialectReader parses a Document once the dispatcher has identified which
// dialect r holds. ASCII FBX is a real collaborator in this seam, but its
// reader is a stub: a complete implementation is out of scope here.
type dialectReader interface {
	parse(r io.Reader) (*core.Document, error)
}

type binaryReader struct{}

func (binaryReader) parse(r io.Reader) (*core.Document, error) {
	return core.Parse(bytesource.New(r, uint64(core.MagicPrefixLength)))
}

// asciiReader is the extension point a text-mode FBX reader would fill in.
type asciiReader struct{}

func (asciiReader) parse(io.Reader) (*core.Document, error) {
	return nil, ErrNotBinaryFBX
}

// dispatch reads the 23-byte magic prefix from r, consuming it in the
// process, and returns the reader for the detected dialect. r is left
// positioned for that reader's parse method to continue from.
func dispatch(r io.Reader) (dialectReader, error) {
	var prefix [core.MagicPrefixLength]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, ErrTruncated
	}

	if prefix == binaryMagic {
		return binaryReader{}, nil
	}
	return asciiReader{}, nil
}
