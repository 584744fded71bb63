package fbx

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// footer4MagicForTest mirrors the unexported footer4Magic constant in
// internal/core; this is a black-box test so it cannot reference it
// directly.
var footer4MagicForTest = [16]byte{
	0xF8, 0x5A, 0x8C, 0x6A, 0xDE, 0xF5, 0xD9, 0x7E,
	0xEC, 0xE9, 0x0C, 0xE3, 0x75, 0x8F, 0x29, 0x0B,
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// oldFormatNodeHeader builds the pre-7.5 13-byte node header.
func oldFormatNodeHeader(endOffset, numAttributes, attrListBytes uint32, nameLen byte) []byte {
	var buf bytes.Buffer
	buf.Write(le32(endOffset))
	buf.Write(le32(numAttributes))
	buf.Write(le32(attrListBytes))
	buf.WriteByte(nameLen)
	return buf.Bytes()
}

var nullSentinel13 = make([]byte, 13)

// buildMinimalBinaryFBX assembles a complete, version-7.4 binary FBX byte
// stream: magic, version, a single root node ("Model") holding one string
// attribute ("Mesh"), the root-list sentinel, and a fully valid footer.
func buildMinimalBinaryFBX(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.Write(binaryMagic[:])
	buf.Write(le32(7400)) // version 7.4, old node-header format

	nodeStart := uint64(buf.Len())

	name := []byte("Model")
	attrValue := []byte("Mesh")

	var attrBytes bytes.Buffer
	attrBytes.WriteByte('S')
	attrBytes.Write(le32(uint32(len(attrValue))))
	attrBytes.Write(attrValue)

	bodyLen := len(name) + attrBytes.Len()
	const headerSize = 13
	endOffset := uint32(nodeStart) + headerSize + uint32(bodyLen)

	buf.Write(oldFormatNodeHeader(endOffset, 1, uint32(attrBytes.Len()), byte(len(name))))
	buf.Write(name)
	buf.Write(attrBytes.Bytes())

	buf.Write(nullSentinel13) // terminates the root node list

	footerStart := buf.Len()
	var footer1 [16]byte
	for i := range footer1 {
		footer1[i] = byte(i + 1)
	}
	buf.Write(footer1[:])

	afterFooter1 := buf.Len()
	remain := 16 - (afterFooter1 % 16) - 1
	buf.Write(make([]byte, remain))

	buf.Write([]byte{0, 0, 0, 0}) // footer2 zero block
	buf.Write(le32(7400))         // re-derived packed version

	buf.Write(make([]byte, 120)) // footer3
	buf.Write(footer4MagicForTest[:])

	_ = footerStart
	return buf.Bytes()
}

func writeTempFBX(t *testing.T, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.fbx")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadFBXRoundTrip(t *testing.T) {
	path := writeTempFBX(t, buildMinimalBinaryFBX(t))

	doc, err := ReadFBX(path)
	require.NoError(t, err)

	require.Equal(t, Version{Major: 7, Minor: 4}, doc.Version())

	var wantFooter [16]byte
	for i := range wantFooter {
		wantFooter[i] = byte(i + 1)
	}
	require.Equal(t, wantFooter, doc.Footer())

	roots := doc.Roots()
	require.Len(t, roots, 1)
	require.Equal(t, []byte("Model"), roots[0].Name())

	attrs := roots[0].Attributes()
	require.Len(t, attrs, 1)

	single, ok := roots[0].SingleAttribute()
	require.True(t, ok)
	str, isString, err := DecodeUTF8String(single)
	require.NoError(t, err)
	require.True(t, isString)
	require.Equal(t, "Mesh", str)

	found, ok := doc.Find([]byte("Model"))
	require.True(t, ok)
	require.Equal(t, []byte("Model"), found.Name())

	_, ok = doc.Find([]byte("NoSuchNode"))
	require.False(t, ok)

	require.Empty(t, roots[0].AllChildren())
}

func TestReadFBXRejectsBadMagic(t *testing.T) {
	data := append([]byte("not an fbx file at all!"), 0x00)
	path := writeTempFBX(t, data)

	_, err := ReadFBX(path)
	require.ErrorIs(t, err, ErrNotBinaryFBX)
}

func TestReadFBXMissingFile(t *testing.T) {
	_, err := ReadFBX(filepath.Join(t.TempDir(), "does-not-exist.fbx"))
	var openErr *FailedToOpenFileError
	require.ErrorAs(t, err, &openErr)
}

func TestDecodeUTF8StringRejectsNonStringAttribute(t *testing.T) {
	_, ok, err := DecodeUTF8String(Attribute{})
	require.False(t, ok)
	require.NoError(t, err)
}
