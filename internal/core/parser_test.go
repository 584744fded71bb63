package core

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/fbx/internal/bytesource"
)

func TestReadVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(7400)))
	s := bytesource.New(bytes.NewReader(buf.Bytes()), 0)

	v, err := readVersion(s)
	require.NoError(t, err)
	require.Equal(t, Version{7, 4}, v)
}

func TestReadOffsetWidths(t *testing.T) {
	t.Run("old format reads u32", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(123)))
		s := bytesource.New(bytes.NewReader(buf.Bytes()), 0)

		v, err := readOffset(s, false)
		require.NoError(t, err)
		require.Equal(t, uint64(123), v)
		require.Equal(t, uint64(4), s.Cursor())
	})

	t.Run("new format reads u64", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1<<40)))
		s := bytesource.New(bytes.NewReader(buf.Bytes()), 0)

		v, err := readOffset(s, true)
		require.NoError(t, err)
		require.Equal(t, uint64(1<<40), v)
		require.Equal(t, uint64(8), s.Cursor())
	})
}

// oldFormatNodeHeader builds the 13-byte pre-version-7.5 node header (three
// u32 fields plus a name-length byte) with the given name length.
func oldFormatNodeHeader(t *testing.T, endOffset, numAttributes, attrListBytes uint32, nameLen uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, endOffset))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, numAttributes))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, attrListBytes))
	buf.WriteByte(nameLen)
	return buf.Bytes()
}

var nullSentinel13 = make([]byte, 13)

func TestReadNodeListEmpty(t *testing.T) {
	s := bytesource.New(bytes.NewReader(nullSentinel13), 0)
	nodes, err := readNodeList(s, false)
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestReadNodeListSingleLeafNode(t *testing.T) {
	name := "Test"
	const headerSize = 13
	endOffset := uint32(headerSize + len(name))

	var data []byte
	data = append(data, oldFormatNodeHeader(t, endOffset, 0, 0, uint8(len(name)))...)
	data = append(data, name...)
	data = append(data, nullSentinel13...)

	s := bytesource.New(bytes.NewReader(data), 0)
	nodes, err := readNodeList(s, false)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, []byte(name), nodes[0].Name)
	require.Empty(t, nodes[0].Attributes)
	require.Empty(t, nodes[0].Children)
}

func TestReadNodeMaxLengthName(t *testing.T) {
	name := bytes.Repeat([]byte{'a'}, 255)
	const headerSize = 13
	endOffset := uint32(headerSize + len(name))

	var data []byte
	data = append(data, oldFormatNodeHeader(t, endOffset, 0, 0, 255)...)
	data = append(data, name...)
	data = append(data, nullSentinel13...)

	s := bytesource.New(bytes.NewReader(data), 0)
	nodes, err := readNodeList(s, false)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, name, nodes[0].Name)
}

func TestReadNodeWithNestedChild(t *testing.T) {
	childName := "Child"
	const headerSize = 13
	childEnd := uint32(headerSize + len(childName))

	var childBytes []byte
	childBytes = append(childBytes, oldFormatNodeHeader(t, childEnd, 0, 0, uint8(len(childName)))...)
	childBytes = append(childBytes, childName...)

	parentName := "Parent"
	// parent header + name, then child bytes, then child-list's own
	// sentinel, all counted in parent's endOffset.
	parentBodyLen := headerSize + len(parentName) + len(childBytes) + 13
	parentEnd := uint32(parentBodyLen)

	var data []byte
	data = append(data, oldFormatNodeHeader(t, parentEnd, 0, 0, uint8(len(parentName)))...)
	data = append(data, parentName...)
	data = append(data, childBytes...)
	data = append(data, nullSentinel13...) // terminates the child list
	data = append(data, nullSentinel13...) // terminates the root list

	s := bytesource.New(bytes.NewReader(data), 0)
	nodes, err := readNodeList(s, false)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, []byte(parentName), nodes[0].Name)
	require.Len(t, nodes[0].Children, 1)
	require.Equal(t, []byte(childName), nodes[0].Children[0].Name)
}

func TestReadAttributeScalarTags(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want func(t *testing.T, a Attribute)
	}{
		{
			name: "bool true",
			data: []byte{tagBool, 0x59},
			want: func(t *testing.T, a Attribute) {
				v, ok := a.AsBool()
				require.True(t, ok)
				require.True(t, v)
			},
		},
		{
			name: "int32",
			data: append([]byte{tagInt32}, le32(42)...),
			want: func(t *testing.T, a Attribute) {
				v, ok := a.AsI32()
				require.True(t, ok)
				require.Equal(t, int32(42), v)
			},
		},
		{
			name: "int64",
			data: append([]byte{tagInt64}, le64(1<<40)...),
			want: func(t *testing.T, a Attribute) {
				v, ok := a.AsI64()
				require.True(t, ok)
				require.Equal(t, int64(1<<40), v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bytesource.New(bytes.NewReader(tt.data), 0)
			a, err := readAttribute(s)
			require.NoError(t, err)
			tt.want(t, a)
		})
	}
}

func TestReadAttributeStringAndRaw(t *testing.T) {
	payload := []byte("Mesh\x00\x01Node")

	var strData []byte
	strData = append(strData, tagString)
	strData = append(strData, le32(uint32(len(payload)))...)
	strData = append(strData, payload...)

	s := bytesource.New(bytes.NewReader(strData), 0)
	a, err := readAttribute(s)
	require.NoError(t, err)
	v, ok := a.AsBytesString()
	require.True(t, ok)
	require.Equal(t, payload, v)

	rawPayload := []byte{0x00, 0xFF, 0x10}

	var rawData []byte
	rawData = append(rawData, tagRaw)
	rawData = append(rawData, le32(uint32(len(rawPayload)))...)
	rawData = append(rawData, rawPayload...)

	s = bytesource.New(bytes.NewReader(rawData), 0)
	a, err = readAttribute(s)
	require.NoError(t, err)
	rv, ok := a.AsRaw()
	require.True(t, ok)
	require.Equal(t, rawPayload, rv)
}

func TestReadAttributeUnknownTag(t *testing.T) {
	s := bytesource.New(bytes.NewReader([]byte{'Z'}), 0)
	_, err := readAttribute(s)

	var unknown *UnknownAttributeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, byte('Z'), unknown.Tag)
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
