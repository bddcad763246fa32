package hdkey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// ChainCodeLen is the length of a chain code.
	ChainCodeLen = 32

	// PrivKeyLen is the length of a serialized private scalar.
	PrivKeyLen = secp256k1.PrivKeyBytesLen

	// PubKeyLen is the length of a compressed public key.
	PubKeyLen = secp256k1.PubKeyBytesLenCompressed
)

// ParseScalar interprets 32 bytes as a big endian scalar and makes sure it is
// usable as a private key, i.e. non-zero and less than the curve order N.
func ParseScalar(b *[PrivKeyLen]byte) (*btcec.ModNScalar, error) {
	var s btcec.ModNScalar
	overflow := s.SetBytes(b)
	if overflow != 0 || s.IsZero() {
		s.Zero()
		return nil, ErrInvalidScalar
	}

	return &s, nil
}

// PublicFromPrivate multiplies the generator with the given scalar.
func PublicFromPrivate(scalar *btcec.ModNScalar) *btcec.PublicKey {
	return secp256k1.NewPrivateKey(scalar).PubKey()
}

// ScalarAdd returns (a + b) mod N. Neither input is modified. A sum of zero is
// not a usable private key and is rejected.
func ScalarAdd(a, b *btcec.ModNScalar) (*btcec.ModNScalar, error) {
	var sum btcec.ModNScalar
	sum.Add2(a, b)
	if sum.IsZero() {
		return nil, ErrInvalidTweak
	}

	return &sum, nil
}

// PointAddScalarMult tweaks a public key by adding scalar*G to it:
//
//	point' = point + scalar*G
//
// Which is the public counterpart of ScalarAdd. The point at infinity is
// rejected.
func PointAddScalarMult(point *btcec.PublicKey,
	scalar *btcec.ModNScalar) (*btcec.PublicKey, error) {

	var (
		pointJacobian  btcec.JacobianPoint
		tweakJacobian  btcec.JacobianPoint
		resultJacobian btcec.JacobianPoint
	)
	btcec.ScalarBaseMultNonConst(scalar, &tweakJacobian)

	point.AsJacobian(&pointJacobian)
	btcec.AddNonConst(&pointJacobian, &tweakJacobian, &resultJacobian)

	resultJacobian.ToAffine()
	if resultJacobian.X.IsZero() && resultJacobian.Y.IsZero() {
		return nil, ErrInvalidTweak
	}

	return btcec.NewPublicKey(&resultJacobian.X, &resultJacobian.Y), nil
}

// parseCompressedPubKey parses a 33 byte compressed public key.
func parseCompressedPubKey(b []byte) (*btcec.PublicKey, error) {
	if len(b) != PubKeyLen {
		return nil, ErrInvalidPubKey
	}
	if b[0] != secp256k1.PubKeyFormatCompressedEven &&
		b[0] != secp256k1.PubKeyFormatCompressedOdd {

		return nil, ErrInvalidPubKey
	}

	pubKey, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPubKey, err)
	}

	return pubKey, nil
}
