package hdkey

import (
	"fmt"
	"io"
)

const (
	// MinSeedBytes is the minimum number of bytes allowed for a generated
	// seed (128 bits).
	MinSeedBytes = 16

	// MaxSeedBytes is the maximum number of bytes allowed for a generated
	// seed (2048 bits).
	MaxSeedBytes = 256

	// RecommendedSeedLen is the recommended length in bytes for a seed
	// (256 bits).
	RecommendedSeedLen = 32

	// MaxMasterKeyAttempts caps the rejection sampling in
	// GenerateMasterKey. The chance for a single seed to be unusable is
	// below 2^-127, so hitting the cap means the entropy source is broken.
	MaxMasterKeyAttempts = 16
)

// masterKey is the HMAC key used to derive the master key from a seed.
var masterKey = []byte("Bitcoin seed")

// NewMasterKey derives the master extended private key from a seed:
//
//	I = HMAC-SHA512(Key = "Bitcoin seed", Data = seed)
//
// With IL being the master scalar and IR the master chain code. If IL is not a
// valid scalar, ErrInvalidIndex is returned and the caller should retry with
// a different seed. The seed length is not checked here.
func NewMasterKey(seed []byte) (*ExtendedPrivateKey, error) {
	intermediary := HMACSHA512(masterKey, seed)
	defer clear(intermediary[:])

	il, chainCode := splitIntermediary(&intermediary)
	defer clear(il[:])

	scalar, err := ParseScalar(&il)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable seed: %w", ErrInvalidIndex,
			err)
	}

	key := newExtendedPrivateKey(scalar, chainCode)
	log.Debugf("Created master key with fingerprint %v",
		fingerprintClosure(key))

	return key, nil
}

// GenerateMasterKey reads seedLen fresh bytes from the entropy source and
// derives a master key from them. Unusable seeds are discarded and a new one
// is read, up to MaxMasterKeyAttempts times. The seed that produced the key
// is returned so the caller can back it up.
func GenerateMasterKey(entropy io.Reader, seedLen int) (*ExtendedPrivateKey,
	[]byte, error) {

	return generateMasterKey(entropy, seedLen, NewMasterKey)
}

// generateMasterKey implements GenerateMasterKey with a replaceable master
// key constructor.
func generateMasterKey(entropy io.Reader, seedLen int,
	newMaster func([]byte) (*ExtendedPrivateKey, error)) (
	*ExtendedPrivateKey, []byte, error) {

	if seedLen < MinSeedBytes || seedLen > MaxSeedBytes {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidSeedLen,
			seedLen)
	}

	seed := make([]byte, seedLen)
	for attempt := 1; attempt <= MaxMasterKeyAttempts; attempt++ {
		if _, err := io.ReadFull(entropy, seed); err != nil {
			clear(seed)
			return nil, nil, fmt.Errorf("unable to read seed: %w",
				err)
		}

		key, err := newMaster(seed)
		if err == nil {
			return key, seed, nil
		}

		log.Warnf("Seed %d/%d produced an unusable master key, "+
			"trying a new one", attempt, MaxMasterKeyAttempts)
		clear(seed)
	}

	return nil, nil, fmt.Errorf("%w after %d attempts: %w",
		ErrMasterKeyAttempts, MaxMasterKeyAttempts, ErrInvalidIndex)
}
