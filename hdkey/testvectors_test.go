package hdkey

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// All vectors below are derived from a 256 byte all-zero seed.
const (
	zeroSeedLen = 256

	zeroMasterPriv = "392bbb27e74f8e5b1de32d8ece1d5243dbbdda33d0d658590de6" +
		"525f14222b8d"
	zeroMasterChainCode = "ee77f7bc61c8d609ed0c1d72ab1e6d9301ad8e15b3fa55f" +
		"df6f04faa87ea436e"
	zeroMasterPub = "0232aae16654bb9179dc96039c489f546e3735c87ddc276e70f1" +
		"1c47310e571165"
	zeroMasterFingerprint = "3c958226"

	zeroHardened0Priv = "591b839a58a5ff10b27f0e887a250f46c7881091a0e864df" +
		"7fcd395e764d702c"
	zeroHardened0ChainCode = "200d07404a6c3c5883845b913332245dcb9a84816db" +
		"fdd6abd58cef08907a93c"

	zeroNormal0Priv = "279b62e122352827846ce08f5d9eca4a18acee04b4ca49f0b46" +
		"5142fa2e449a6"
	zeroNormal0ChainCode = "34c72388350ae438f3b56c8a94d82791eb72c8a3b651d5" +
		"2f312ff8cdbd7f8b5a"
	zeroNormal0Pub = "030138eec0d29ea63bd345bcb5114748fe7d65025cb45cf2bc8c" +
		"93380e93b9f839"

	zeroNormal5Pub = "02ffcca7674aaa08225d1290b5c8af1d2b367c1b8b4e4d0ee65" +
		"3745c9dc17487f0"
	zeroNormal5ChainCode = "bb57a45e5aa6a0a9727594bc2fddcaf265f78a7027a23a" +
		"23e16c34d2cb214ec9"

	zeroMaxHardenedPriv = "e02d2d3100840013b58a97e82fea59912686facf005301b" +
		"5d11e2a47e5706cfb"

	zeroPath057 = "m/0'/5/7"
	zeroPath057Priv = "4e0059d54df8412b0b45a621b4dec4b2c1c5e40063dba6b152" +
		"e31a67712d1b9e"
	zeroPath057Pub = "02e9e60fc66a7a608bd284818a00d333b249d79b046ac995fdf2" +
		"30b82a555e4777"
	zeroPath05Pub = "03becebc90185c5dde05406318892dd0ca384a3f818a6a9a9935" +
		"b0b38db46514ee"
	zeroPath05ChainCode = "5926d55494ccf4c91364dc9d5045e1fa6d93c88a2fbcd34" +
		"4be3ecf44f23dd42c"

	// BIP32 test vector 1.
	tv1Seed      = "000102030405060708090a0b0c0d0e0f"
	tv1Priv      = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
	tv1ChainCode = "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"
	tv1Pub       = "0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2"
	tv1FP        = "3442193e"

	// curveOrder is N, the order of the secp256k1 group.
	curveOrder = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func zeroSeedMaster(t *testing.T) *ExtendedPrivateKey {
	t.Helper()

	master, err := NewMasterKey(make([]byte, zeroSeedLen))
	require.NoError(t, err)

	return master
}

func mustDecodeHex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}
