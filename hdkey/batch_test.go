package hdkey

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerivePrivateRange(t *testing.T) {
	ctx := context.Background()
	master := zeroSeedMaster(t)

	const count = 20
	for _, mode := range []KeyMode{KeyModeNormal, KeyModeHardened} {
		results, err := DerivePrivateRange(ctx, master, mode, 3, count, 3)
		require.NoError(t, err)
		require.Len(t, results, count)

		for i, result := range results {
			child, err := result.Unpack()
			require.NoError(t, err)

			expected, err := DerivePrivate(master, mode, 3+uint64(i))
			require.NoError(t, err)
			require.Equal(t, expected.Index, child.Index)
			require.True(t, expected.Key.IsEqual(child.Key))
		}
	}
}

func TestDerivePublicRange(t *testing.T) {
	ctx := context.Background()
	master := zeroSeedMaster(t)

	// A zero worker count falls back to the default.
	results, err := DerivePublicRange(ctx, master.Neuter(), 0, 8, 0)
	require.NoError(t, err)
	require.Len(t, results, 8)

	for i, result := range results {
		child, err := result.Unpack()
		require.NoError(t, err)

		privChild, err := DerivePrivate(
			master, KeyModeNormal, uint64(i),
		)
		require.NoError(t, err)
		require.True(t, privChild.Neuter().IsEqual(child))
	}
}

func TestDeriveRangePerIndexErrors(t *testing.T) {
	ctx := context.Background()
	pub := zeroSeedMaster(t).Neuter()

	// The range crosses into the hardened range, only those indices fail.
	results, err := DerivePublicRange(
		ctx, pub, HardenedKeyStart-2, 4, 2,
	)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.True(t, results[0].IsOk())
	require.True(t, results[1].IsOk())
	for _, result := range results[2:] {
		_, err := result.Unpack()
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestDeriveRangeIndexOverflow(t *testing.T) {
	ctx := context.Background()
	master := zeroSeedMaster(t)

	// Position 1 would be index 2^64 which must not wrap around to 0.
	privResults, err := DerivePrivateRange(
		ctx, master, KeyModeNormal, math.MaxUint64, 2, 1,
	)
	require.NoError(t, err)
	require.Len(t, privResults, 2)
	for _, result := range privResults {
		_, err := result.Unpack()
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	pubResults, err := DerivePublicRange(
		ctx, master.Neuter(), math.MaxUint64, 2, 1,
	)
	require.NoError(t, err)
	require.Len(t, pubResults, 2)
	for _, result := range pubResults {
		_, err := result.Unpack()
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestDeriveRangeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	master := zeroSeedMaster(t)
	_, err := DerivePrivateRange(ctx, master, KeyModeHardened, 0, 100, 2)
	require.ErrorIs(t, err, context.Canceled)

	_, err = DerivePublicRange(ctx, master.Neuter(), 0, 100, 2)
	require.ErrorIs(t, err, context.Canceled)
}
