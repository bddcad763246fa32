package hdkey

import (
	"fmt"
	"strconv"
)

const (
	// HardenedKeyStart is the index of the first hardened child key
	// (2^31).
	HardenedKeyStart = uint64(0x80000000)

	// MaxChildIndex is the largest index that can be derived (2^32 - 1).
	MaxChildIndex = uint64(0xffffffff)
)

// KeyMode tells whether a child key is derived in normal mode, so it can also
// be derived from the parent public key, or in hardened mode, which requires
// the parent private key.
type KeyMode uint8

const (
	// KeyModeNormal marks a publicly derivable child.
	KeyModeNormal KeyMode = iota

	// KeyModeHardened marks a child that can only be derived from the
	// parent private key.
	KeyModeHardened
)

// String returns a human readable name of the key mode.
func (m KeyMode) String() string {
	switch m {
	case KeyModeNormal:
		return "normal"

	case KeyModeHardened:
		return "hardened"

	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// ChildIndex is a child index that has already been validated and classified.
// The zero value is the normal index 0. A ChildIndex can only be created
// through the constructors below, so a value outside of [0, 2^32-1] or one
// whose mode disagrees with its range can't be represented.
type ChildIndex struct {
	mode  KeyMode
	index uint32
}

// NewChildIndex classifies a raw index by its range: indices below 2^31 are
// normal, indices in [2^31, 2^32-1] are hardened and anything above is
// rejected.
func NewChildIndex(raw uint64) (ChildIndex, error) {
	switch {
	case raw < HardenedKeyStart:
		return ChildIndex{mode: KeyModeNormal, index: uint32(raw)}, nil

	case raw <= MaxChildIndex:
		return ChildIndex{
			mode:  KeyModeHardened,
			index: uint32(raw),
		}, nil

	default:
		return ChildIndex{}, fmt.Errorf("%w: %d exceeds %d",
			ErrIndexOutOfRange, raw, MaxChildIndex)
	}
}

// NormalizeIndex maps a raw index into the range of the requested mode. In
// hardened mode a logical index below 2^31 is shifted up by 2^31 while an
// index that already is in the hardened range is kept as is. In normal mode
// the index must be below 2^31.
func NormalizeIndex(mode KeyMode, raw uint64) (ChildIndex, error) {
	switch mode {
	case KeyModeHardened:
		if raw < HardenedKeyStart {
			raw += HardenedKeyStart
		}
		if raw > MaxChildIndex {
			return ChildIndex{}, fmt.Errorf("%w: hardened index "+
				"%d exceeds %d", ErrIndexOutOfRange, raw,
				MaxChildIndex)
		}
		return ChildIndex{mode: mode, index: uint32(raw)}, nil

	case KeyModeNormal:
		if raw >= HardenedKeyStart {
			return ChildIndex{}, fmt.Errorf("%w: normal index %d "+
				"is in the hardened range", ErrIndexOutOfRange,
				raw)
		}
		return ChildIndex{mode: mode, index: uint32(raw)}, nil

	default:
		return ChildIndex{}, fmt.Errorf("%w: %v", ErrInvalidKeyMode,
			mode)
	}
}

// HardenedIndex returns the hardened child index for the given logical index,
// e.g. HardenedIndex(0) is 0'.
func HardenedIndex(logical uint32) (ChildIndex, error) {
	return NormalizeIndex(KeyModeHardened, uint64(logical))
}

// NormalIndex returns the normal child index i.
func NormalIndex(i uint32) (ChildIndex, error) {
	return NormalizeIndex(KeyModeNormal, uint64(i))
}

// Mode returns the key mode the index was classified as.
func (c ChildIndex) Mode() KeyMode {
	return c.mode
}

// IsHardened returns true if the index is in the hardened range.
func (c ChildIndex) IsHardened() bool {
	return c.mode == KeyModeHardened
}

// Uint32 returns the raw index as it is fed into the derivation.
func (c ChildIndex) Uint32() uint32 {
	return c.index
}

// Logical returns the index with the hardened offset removed.
func (c ChildIndex) Logical() uint32 {
	if c.IsHardened() {
		return c.index - uint32(HardenedKeyStart)
	}
	return c.index
}

// String formats the index in the usual path notation, hardened indices are
// suffixed with an apostrophe.
func (c ChildIndex) String() string {
	s := strconv.FormatUint(uint64(c.Logical()), 10)
	if c.IsHardened() {
		s += "'"
	}
	return s
}
