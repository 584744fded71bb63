// Package fbx reads the binary Filmbox (FBX) 3D-scene interchange format:
// a magic-prefixed, version-gated node tree terminated by a NULL sentinel
// and closed off by a fixed-layout footer. See internal/core for the wire
// format itself; this package is the public surface over it.
package fbx

import (
	"bufio"
	"os"

	"github.com/scigolib/fbx/internal/core"
)

// Version, Node, Attribute, and AttributeKind are re-exported from
// internal/core so callers can name and construct them without importing an
// internal package.
type (
	Version       = core.Version
	Node          = core.Node
	Attribute     = core.Attribute
	AttributeKind = core.AttributeKind
)

// Document is a fully materialised binary FBX file: its version, root-level
// node tree, and opaque footer identifier block.
type Document struct {
	doc *core.Document
}

// ReadFBX opens the file at path, dispatches on its dialect, parses it, and
// returns the resulting Document. The file is always closed before ReadFBX
// returns.
func ReadFBX(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FailedToOpenFileError{Path: path, Cause: err}
	}
	defer f.Close()

	br := bufio.NewReader(f)

	reader, err := dispatch(br)
	if err != nil {
		return nil, err
	}

	doc, err := reader.parse(br)
	if err != nil {
		return nil, err
	}

	return &Document{doc: doc}, nil
}

// Version reports the document's version, as recorded in the 4-byte field
// immediately following the magic prefix.
func (d *Document) Version() Version {
	return d.doc.Version
}

// Footer returns the 16-byte footer1 identifier block. Its contents are
// opaque; only its presence and position are validated during parsing.
func (d *Document) Footer() [16]byte {
	return d.doc.Footer
}

// Roots returns the document's top-level nodes as NodeViews.
func (d *Document) Roots() []*NodeView {
	return wrapNodes(d.doc.Roots)
}
