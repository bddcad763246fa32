package hdkey

import "errors"

var (
	// ErrIndexOutOfRange is returned when a child index, after any
	// mode-based normalization, falls outside of the 32-bit derivation
	// space or outside of the range allowed for the requested key mode.
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrInvalidIndex is returned when the HMAC output for an index does
	// not produce a usable key. BIP32 mandates that the caller proceeds
	// with the next index in that case.
	ErrInvalidIndex = errors.New("the extended key at this index is " +
		"invalid")

	// ErrInvalidKeyMode is returned when a key mode is unknown or when a
	// hardened index is handed to the public derivation engine.
	ErrInvalidKeyMode = errors.New("invalid key mode for this derivation")

	// ErrInvalidScalar is returned when 32 bytes do not encode a scalar in
	// the range [1, N-1].
	ErrInvalidScalar = errors.New("scalar is zero or not less than the " +
		"curve order")

	// ErrInvalidTweak is returned when tweaking a scalar or a point ends
	// up at zero or at the point at infinity.
	ErrInvalidTweak = errors.New("tweak results in an invalid key")

	// ErrInvalidChainCode is returned when a chain code is not exactly 32
	// bytes long.
	ErrInvalidChainCode = errors.New("chain code must be 32 bytes")

	// ErrInvalidPubKey is returned when a serialized public key cannot be
	// parsed as a compressed secp256k1 point.
	ErrInvalidPubKey = errors.New("invalid compressed public key")

	// ErrInvalidSeedLen describes an error in which the requested seed
	// length is not in the allowed range.
	ErrInvalidSeedLen = errors.New("seed length must be between 16 and " +
		"256 bytes")

	// ErrMasterKeyAttempts is returned when no usable master key could
	// be generated within MaxMasterKeyAttempts fresh seeds.
	ErrMasterKeyAttempts = errors.New("unable to generate usable master " +
		"key")

	// ErrInvalidPath is returned when a derivation path string cannot be
	// parsed.
	ErrInvalidPath = errors.New("invalid derivation path")
)
