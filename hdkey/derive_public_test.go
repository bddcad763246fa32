package hdkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDerivePublicVector(t *testing.T) {
	master := zeroSeedMaster(t)

	child, err := DerivePublic(master.Neuter(), 5)
	require.NoError(t, err)
	require.Equal(t, KeyModeNormal, child.Mode())
	require.Equal(t, uint32(5), child.Index.Uint32())
	require.Equal(t, zeroNormal5Pub, hex.EncodeToString(
		child.Key.SerializedPubKey(),
	))

	chainCode := child.Key.ChainCode()
	require.Equal(t, zeroNormal5ChainCode, hex.EncodeToString(chainCode[:]))

	// The private route to the same child ends up at the same key.
	privChild, err := DerivePrivate(master, KeyModeNormal, 5)
	require.NoError(t, err)
	require.True(t, privChild.Neuter().IsEqual(child))
}

func TestDerivePublicHardenedRejected(t *testing.T) {
	pub := zeroSeedMaster(t).Neuter()

	_, err := DerivePublic(pub, HardenedKeyStart)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = DerivePublic(pub, MaxChildIndex)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = DerivePublic(pub, MaxChildIndex+1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	hardened, err := HardenedIndex(0)
	require.NoError(t, err)
	_, err = pub.Child(hardened)
	require.ErrorIs(t, err, ErrInvalidKeyMode)
}

// TestDerivePublicHardenedProperty makes sure no index of the hardened range
// can be derived from a public key.
func TestDerivePublicHardenedProperty(t *testing.T) {
	pub := zeroSeedMaster(t).Neuter()

	rapid.Check(t, func(t *rapid.T) {
		index := rapid.Uint64Range(HardenedKeyStart, MaxChildIndex).Draw(
			t, "index",
		)

		_, err := DerivePublic(pub, index)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

// TestDerivePublicMatchesPrivate checks that deriving a normal child from the
// public key yields the public projection of the private child.
func TestDerivePublicMatchesPrivate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.SliceOfN(
			rapid.Byte(), MinSeedBytes, 64,
		).Draw(t, "seed")
		index := rapid.Uint64Range(0, HardenedKeyStart-1).Draw(
			t, "index",
		)

		master, err := NewMasterKey(seed)
		if err != nil {
			// Practically unreachable, but an unusable seed is
			// not what this test is about.
			require.ErrorIs(t, err, ErrInvalidIndex)
			return
		}

		privChild, privErr := DerivePrivate(master, KeyModeNormal, index)
		pubChild, pubErr := DerivePublic(master.Neuter(), index)

		// Both routes fail on the same indices.
		if privErr != nil {
			require.ErrorIs(t, privErr, ErrInvalidIndex)
			require.ErrorIs(t, pubErr, ErrInvalidIndex)
			return
		}

		require.NoError(t, pubErr)
		require.True(t, privChild.Neuter().IsEqual(pubChild))
	})
}
