package hdkey

import "fmt"

// DerivePublic derives the child public key at the given index from a parent
// public key. Only normal indices can be derived this way, any index of 2^31
// or above is rejected with ErrIndexOutOfRange.
func DerivePublic(parent *ExtendedPublicKey, index uint64) (*ChildPublicKey,
	error) {

	if index >= HardenedKeyStart {
		return nil, fmt.Errorf("%w: cannot derive hardened index %d "+
			"from a public key", ErrIndexOutOfRange, index)
	}

	childIndex, err := NormalizeIndex(KeyModeNormal, index)
	if err != nil {
		return nil, err
	}

	return parent.Child(childIndex)
}

// Child derives the child public key at the given classified index:
//
//	I = HMAC-SHA512(Key = c_par, Data = serP(K_par) || ser256(i))
//	K_i = K_par + IL*G
//	c_i = IR
//
// A hardened index can't be derived from a public key and is rejected with
// ErrInvalidKeyMode.
func (k *ExtendedPublicKey) Child(index ChildIndex) (*ChildPublicKey, error) {
	if index.IsHardened() {
		return nil, fmt.Errorf("%w: hardened child %v requires the "+
			"private key", ErrInvalidKeyMode, index)
	}

	var data [derivationDataLen]byte
	copy(data[:], k.SerializedPubKey())

	serIndex := SerializeIndex(index.Uint32())
	copy(data[PubKeyLen:], serIndex[:])

	intermediary := HMACSHA512(k.chainCode[:], data[:])
	defer clear(intermediary[:])

	il, chainCode := splitIntermediary(&intermediary)
	defer clear(il[:])

	ilScalar, err := ParseScalar(&il)
	if err != nil {
		return nil, fmt.Errorf("%w %v: %w", ErrInvalidIndex, index, err)
	}
	defer ilScalar.Zero()

	childPubKey, err := PointAddScalarMult(k.pubKey, ilScalar)
	if err != nil {
		return nil, fmt.Errorf("%w %v: %w", ErrInvalidIndex, index, err)
	}

	log.Tracef("Derived public child %v", index)

	return &ChildPublicKey{
		Index: index,
		Key: &ExtendedPublicKey{
			pubKey:    childPubKey,
			chainCode: chainCode,
		},
	}, nil
}
