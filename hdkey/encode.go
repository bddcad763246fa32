package hdkey

import "encoding/binary"

// IndexSerializationLen is the length of a serialized child index. The index
// is encoded as a 256-bit big endian integer.
const IndexSerializationLen = 32

// SerializeIndex encodes a child index as a 32 byte big endian integer, most
// significant byte first and zero padded. Taking a uint32 makes the "fits in
// 32 bytes" precondition part of the signature.
func SerializeIndex(index uint32) [IndexSerializationLen]byte {
	var b [IndexSerializationLen]byte
	binary.BigEndian.PutUint32(b[IndexSerializationLen-4:], index)
	return b
}
