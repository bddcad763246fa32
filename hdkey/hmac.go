package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
)

// IntermediaryLen is the length of the HMAC-SHA512 output that is split into
// key material and chain code.
const IntermediaryLen = sha512.Size

// HMACSHA512 returns HMAC-SHA512(Key = key, Data = msg).
func HMACSHA512(key, msg []byte) [IntermediaryLen]byte {
	hmac512 := hmac.New(sha512.New, key)
	_, _ = hmac512.Write(msg)

	var out [IntermediaryLen]byte
	copy(out[:], hmac512.Sum(nil))
	return out
}

// splitIntermediary splits I into the two 32-byte sequences IL and IR. IL is
// the key material, IR the new chain code.
func splitIntermediary(i *[IntermediaryLen]byte) ([ChainCodeLen]byte,
	[ChainCodeLen]byte) {

	var il, ir [ChainCodeLen]byte
	copy(il[:], i[:IntermediaryLen/2])
	copy(ir[:], i[IntermediaryLen/2:])
	return il, ir
}
