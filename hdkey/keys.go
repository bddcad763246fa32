package hdkey

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// FingerprintLen is the length of a key fingerprint.
const FingerprintLen = 4

// ExtendedPrivateKey is a private scalar together with its chain code. The
// pair is immutable once created, every derivation returns a new key. Call
// Zero once the key is no longer needed.
type ExtendedPrivateKey struct {
	privKey   *btcec.PrivateKey
	chainCode [ChainCodeLen]byte
}

// NewExtendedPrivateKey creates an extended private key from a raw 32 byte
// scalar and a 32 byte chain code. The input slices are copied.
func NewExtendedPrivateKey(scalar, chainCode []byte) (*ExtendedPrivateKey,
	error) {

	if len(scalar) != PrivKeyLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidScalar,
			len(scalar))
	}
	if len(chainCode) != ChainCodeLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidChainCode,
			len(chainCode))
	}

	var scalarBytes [PrivKeyLen]byte
	copy(scalarBytes[:], scalar)
	defer clear(scalarBytes[:])

	s, err := ParseScalar(&scalarBytes)
	if err != nil {
		return nil, err
	}

	var cc [ChainCodeLen]byte
	copy(cc[:], chainCode)

	return newExtendedPrivateKey(s, cc), nil
}

// newExtendedPrivateKey copies the scalar into a new private key and wipes the
// source.
func newExtendedPrivateKey(scalar *btcec.ModNScalar,
	chainCode [ChainCodeLen]byte) *ExtendedPrivateKey {

	defer scalar.Zero()

	return &ExtendedPrivateKey{
		privKey:   secp256k1.NewPrivateKey(scalar),
		chainCode: chainCode,
	}
}

// scalar returns the private scalar. Callers must not modify it.
func (k *ExtendedPrivateKey) scalar() *btcec.ModNScalar {
	return &k.privKey.Key
}

// PrivKey returns a copy of the private key.
func (k *ExtendedPrivateKey) PrivKey() *btcec.PrivateKey {
	return secp256k1.NewPrivateKey(new(btcec.ModNScalar).Set(k.scalar()))
}

// PrivKeyBytes returns the 32 byte big endian private scalar.
func (k *ExtendedPrivateKey) PrivKeyBytes() [PrivKeyLen]byte {
	return k.scalar().Bytes()
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedPrivateKey) ChainCode() [ChainCodeLen]byte {
	return k.chainCode
}

// PubKey returns the public key belonging to the private scalar.
func (k *ExtendedPrivateKey) PubKey() *btcec.PublicKey {
	return PublicFromPrivate(k.scalar())
}

// SerializedPubKey returns the 33 byte compressed public key.
func (k *ExtendedPrivateKey) SerializedPubKey() []byte {
	return k.PubKey().SerializeCompressed()
}

// Neuter returns the extended public key with the same chain code. The
// conversion is one way.
func (k *ExtendedPrivateKey) Neuter() *ExtendedPublicKey {
	return &ExtendedPublicKey{
		pubKey:    k.PubKey(),
		chainCode: k.chainCode,
	}
}

// IsEqual returns true if both keys hold the same scalar and chain code.
func (k *ExtendedPrivateKey) IsEqual(other *ExtendedPrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}

	return k.scalar().Equals(other.scalar()) &&
		k.chainCode == other.chainCode
}

// Zero wipes the private scalar and the chain code. The key must not be used
// afterwards.
func (k *ExtendedPrivateKey) Zero() {
	if k == nil {
		return
	}
	if k.privKey != nil {
		k.privKey.Zero()
	}
	clear(k.chainCode[:])
}

// String never reveals the private material.
func (k *ExtendedPrivateKey) String() string {
	return fmt.Sprintf("ExtendedPrivateKey(fingerprint=%x)",
		k.Neuter().Fingerprint())
}

// ExtendedPublicKey is a public curve point together with its chain code.
type ExtendedPublicKey struct {
	pubKey    *btcec.PublicKey
	chainCode [ChainCodeLen]byte
}

// NewExtendedPublicKey creates an extended public key from a 33 byte
// compressed public key and a 32 byte chain code.
func NewExtendedPublicKey(pubKey, chainCode []byte) (*ExtendedPublicKey,
	error) {

	parsed, err := parseCompressedPubKey(pubKey)
	if err != nil {
		return nil, err
	}
	if len(chainCode) != ChainCodeLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidChainCode,
			len(chainCode))
	}

	k := &ExtendedPublicKey{pubKey: parsed}
	copy(k.chainCode[:], chainCode)

	return k, nil
}

// PubKey returns the public key.
func (k *ExtendedPublicKey) PubKey() *btcec.PublicKey {
	return k.pubKey
}

// SerializedPubKey returns the 33 byte compressed public key.
func (k *ExtendedPublicKey) SerializedPubKey() []byte {
	return k.pubKey.SerializeCompressed()
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedPublicKey) ChainCode() [ChainCodeLen]byte {
	return k.chainCode
}

// Fingerprint returns the first four bytes of the HASH160 of the compressed
// public key, which is how BIP32 identifies a parent key.
func (k *ExtendedPublicKey) Fingerprint() [FingerprintLen]byte {
	var fp [FingerprintLen]byte
	copy(fp[:], btcutil.Hash160(k.SerializedPubKey()))
	return fp
}

// IsEqual returns true if both keys hold the same point and chain code.
func (k *ExtendedPublicKey) IsEqual(other *ExtendedPublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}

	return bytes.Equal(k.SerializedPubKey(), other.SerializedPubKey()) &&
		k.chainCode == other.chainCode
}

// String returns the compressed public key and chain code in hex.
func (k *ExtendedPublicKey) String() string {
	return fmt.Sprintf("ExtendedPublicKey(pubkey=%x, chaincode=%x)",
		k.SerializedPubKey(), k.chainCode[:])
}

// ChildPrivateKey is one edge of the derivation tree: the index and mode used
// to reach the child and the child key itself. The parent is not recorded.
type ChildPrivateKey struct {
	Index ChildIndex
	Key   *ExtendedPrivateKey
}

// Mode returns the key mode the child was derived with.
func (c *ChildPrivateKey) Mode() KeyMode {
	return c.Index.Mode()
}

// Neuter returns the public projection of the child.
func (c *ChildPrivateKey) Neuter() *ChildPublicKey {
	return &ChildPublicKey{
		Index: c.Index,
		Key:   c.Key.Neuter(),
	}
}

// ChildPublicKey is the public counterpart of ChildPrivateKey.
type ChildPublicKey struct {
	Index ChildIndex
	Key   *ExtendedPublicKey
}

// Mode returns the key mode the child was derived with.
func (c *ChildPublicKey) Mode() KeyMode {
	return c.Index.Mode()
}

// IsEqual returns true if both children have the same index and key.
func (c *ChildPublicKey) IsEqual(other *ChildPublicKey) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.Index == other.Index && c.Key.IsEqual(other.Key)
}
