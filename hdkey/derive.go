package hdkey

import "fmt"

// derivationDataLen is the length of the HMAC message for both derivation
// modes: either 0x00 || ser256(k) || ser256(i) or serP(K) || ser256(i).
const derivationDataLen = PubKeyLen + IndexSerializationLen

// DerivePrivate derives the child private key at the given index. In hardened
// mode an index below 2^31 is treated as logical index and shifted into the
// hardened range. In normal mode an index in the hardened range is rejected
// with ErrIndexOutOfRange. The parent is never modified.
func DerivePrivate(parent *ExtendedPrivateKey, mode KeyMode,
	index uint64) (*ChildPrivateKey, error) {

	childIndex, err := NormalizeIndex(mode, index)
	if err != nil {
		return nil, err
	}

	return parent.Child(childIndex)
}

// Child derives the child private key at the given classified index.
//
// For a hardened index:
//
//	I = HMAC-SHA512(Key = c_par, Data = 0x00 || ser256(k_par) || ser256(i))
//	k_i = IL
//
// For a normal index:
//
//	I = HMAC-SHA512(Key = c_par, Data = serP(point(k_par)) || ser256(i))
//	k_i = IL + k_par (mod N)
//
// In both cases c_i = IR. If IL or k_i is not a valid scalar, ErrInvalidIndex
// is returned and the caller should continue with the next index.
func (k *ExtendedPrivateKey) Child(index ChildIndex) (*ChildPrivateKey,
	error) {

	var data [derivationDataLen]byte
	defer clear(data[:])

	switch index.Mode() {
	case KeyModeHardened:
		keyBytes := k.PrivKeyBytes()
		copy(data[1:], keyBytes[:])
		clear(keyBytes[:])

	case KeyModeNormal:
		copy(data[:], k.SerializedPubKey())

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMode,
			index.Mode())
	}

	serIndex := SerializeIndex(index.Uint32())
	copy(data[PubKeyLen:], serIndex[:])

	intermediary := HMACSHA512(k.chainCode[:], data[:])
	defer clear(intermediary[:])

	il, chainCode := splitIntermediary(&intermediary)
	defer clear(il[:])

	childScalar, err := ParseScalar(&il)
	if err != nil {
		return nil, fmt.Errorf("%w %v: %w", ErrInvalidIndex, index, err)
	}

	if !index.IsHardened() {
		ilScalar := childScalar
		childScalar, err = ScalarAdd(ilScalar, k.scalar())
		ilScalar.Zero()
		if err != nil {
			return nil, fmt.Errorf("%w %v: %w", ErrInvalidIndex,
				index, err)
		}
	}

	log.Tracef("Derived %v private child %v", index.Mode(), index)

	return &ChildPrivateKey{
		Index: index,
		Key:   newExtendedPrivateKey(childScalar, chainCode),
	}, nil
}
