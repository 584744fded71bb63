package core

import (
	"github.com/scigolib/fbx/internal/bytesource"
	"github.com/scigolib/fbx/internal/utils"
)

// MagicPrefixLength is the size of the binary FBX magic prefix. The
// dispatcher (format.go, in the root package) consumes and validates it
// before constructing the Source that Parse reads from.
const MagicPrefixLength = 23

// Parse decodes a binary FBX document: Header/Version → NodeList(root) →
// Footer. s must already be positioned past the magic prefix, with its
// cursor at MagicPrefixLength.
func Parse(s *bytesource.Source) (*Document, error) {
	version, err := readVersion(s)
	if err != nil {
		return nil, utils.WrapError("reading version", err)
	}

	roots, err := readNodeList(s, version.IsNewFormat())
	if err != nil {
		return nil, utils.WrapError("reading node tree", err)
	}

	footer, err := readFooter(s, version)
	if err != nil {
		return nil, utils.WrapError("reading footer", err)
	}

	return &Document{Version: version, Roots: roots, Footer: footer}, nil
}

func readVersion(s *bytesource.Source) (Version, error) {
	n, err := s.ReadU32LE()
	if err != nil {
		return Version{}, err
	}
	return versionFromPacked(n), nil
}

// readOffset reads one of a node header's three version-gated fields: a u64
// when isNewFormat, otherwise a u32 widened to u64. All three node header
// fields (end offset, attribute count, attribute list byte length) share
// this width, so one helper covers all three call sites.
func readOffset(s *bytesource.Source, isNewFormat bool) (uint64, error) {
	if isNewFormat {
		return s.ReadU64LE()
	}
	v, err := s.ReadU32LE()
	return uint64(v), err
}

// readNodeList reads sibling nodes until the NULL sentinel terminates the
// list (§3 invariant 3); the sentinel itself is consumed but not returned.
func readNodeList(s *bytesource.Source, isNewFormat bool) ([]*Node, error) {
	var nodes []*Node
	for {
		node, isSentinel, err := readNode(s, isNewFormat)
		if err != nil {
			return nil, err
		}
		if isSentinel {
			return nodes, nil
		}
		nodes = append(nodes, node)
	}
}

func readNode(s *bytesource.Source, isNewFormat bool) (node *Node, isSentinel bool, err error) {
	endOffset, err := readOffset(s, isNewFormat)
	if err != nil {
		return nil, false, err
	}
	numAttributes, err := readOffset(s, isNewFormat)
	if err != nil {
		return nil, false, err
	}
	attributeListBytes, err := readOffset(s, isNewFormat)
	if err != nil {
		return nil, false, err
	}
	nameLength, err := s.ReadU8()
	if err != nil {
		return nil, false, err
	}

	if endOffset == 0 && numAttributes == 0 && attributeListBytes == 0 && nameLength == 0 {
		return nil, true, nil
	}

	name, err := s.ReadExact(int(nameLength))
	if err != nil {
		return nil, false, err
	}

	attributes := make([]Attribute, 0, numAttributes)
	for i := uint64(0); i < numAttributes; i++ {
		attr, err := readAttribute(s)
		if err != nil {
			return nil, false, err
		}
		attributes = append(attributes, attr)
	}

	var children []*Node
	for s.Cursor() < endOffset {
		siblings, err := readNodeList(s, isNewFormat)
		if err != nil {
			return nil, false, err
		}
		children = append(children, siblings...)
	}

	return &Node{Name: name, Attributes: attributes, Children: children}, false, nil
}

// Attribute type tags (§4.2.3).
const (
	tagBool         = 'C'
	tagInt16        = 'Y'
	tagInt32        = 'I'
	tagInt64        = 'L'
	tagFloat32      = 'F'
	tagFloat64      = 'D'
	tagBoolArray    = 'b'
	tagInt32Array   = 'i'
	tagInt64Array   = 'l'
	tagFloat32Array = 'f'
	tagFloat64Array = 'd'
	tagRaw          = 'R'
	tagString       = 'S'
)

func readAttribute(s *bytesource.Source) (Attribute, error) {
	tag, err := s.ReadU8()
	if err != nil {
		return Attribute{}, err
	}

	switch tag {
	case tagBool:
		v, err := s.ReadBoolean()
		if err != nil {
			return Attribute{}, err
		}
		return NewBoolAttribute(v), nil
	case tagInt16:
		v, err := s.ReadI16LE()
		if err != nil {
			return Attribute{}, err
		}
		return NewInt16Attribute(v), nil
	case tagInt32:
		v, err := s.ReadI32LE()
		if err != nil {
			return Attribute{}, err
		}
		return NewInt32Attribute(v), nil
	case tagInt64:
		v, err := s.ReadI64LE()
		if err != nil {
			return Attribute{}, err
		}
		return NewInt64Attribute(v), nil
	case tagFloat32:
		v, err := s.ReadF32LE()
		if err != nil {
			return Attribute{}, err
		}
		return NewFloat32Attribute(v), nil
	case tagFloat64:
		v, err := s.ReadF64LE()
		if err != nil {
			return Attribute{}, err
		}
		return NewFloat64Attribute(v), nil
	case tagBoolArray:
		v, err := decodeBoolArray(s)
		if err != nil {
			return Attribute{}, err
		}
		return NewBoolArrayAttribute(v), nil
	case tagInt32Array:
		v, err := decodeInt32Array(s)
		if err != nil {
			return Attribute{}, err
		}
		return NewInt32ArrayAttribute(v), nil
	case tagInt64Array:
		v, err := decodeInt64Array(s)
		if err != nil {
			return Attribute{}, err
		}
		return NewInt64ArrayAttribute(v), nil
	case tagFloat32Array:
		v, err := decodeFloat32Array(s)
		if err != nil {
			return Attribute{}, err
		}
		return NewFloat32ArrayAttribute(v), nil
	case tagFloat64Array:
		v, err := decodeFloat64Array(s)
		if err != nil {
			return Attribute{}, err
		}
		return NewFloat64ArrayAttribute(v), nil
	case tagRaw:
		length, err := s.ReadU32LE()
		if err != nil {
			return Attribute{}, err
		}
		if err := utils.ValidateBufferSize(uint64(length), utils.MaxStringAttributeSize, "raw attribute"); err != nil {
			return Attribute{}, err
		}
		b, err := s.ReadExact(int(length))
		if err != nil {
			return Attribute{}, err
		}
		return NewRawAttribute(b), nil
	case tagString:
		length, err := s.ReadU32LE()
		if err != nil {
			return Attribute{}, err
		}
		if err := utils.ValidateBufferSize(uint64(length), utils.MaxStringAttributeSize, "string attribute"); err != nil {
			return Attribute{}, err
		}
		b, err := s.ReadExact(int(length))
		if err != nil {
			return Attribute{}, err
		}
		return NewStringAttribute(b), nil
	default:
		return Attribute{}, &UnknownAttributeError{Tag: tag}
	}
}
