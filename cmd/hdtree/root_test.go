package main

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/btcsuite/btclog/v2"
	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/stretchr/testify/require"
)

var (
	// seedZero is a 256 byte seed of all zeroes.
	seedZero = strings.Repeat("00", 256)

	// seedTV1 is the seed of BIP32 test vector 1.
	seedTV1 = "000102030405060708090a0b0c0d0e0f"
)

const (
	zeroMasterPriv = "392bbb27e74f8e5b1de32d8ece1d5243dbbdda33d0d658590de6" +
		"525f14222b8d"
	zeroMasterChainCode = "ee77f7bc61c8d609ed0c1d72ab1e6d9301ad8e15b3fa55f" +
		"df6f04faa87ea436e"
	zeroMasterPub = "0232aae16654bb9179dc96039c489f546e3735c87ddc276e70f1" +
		"1c47310e571165"
	zeroMasterFingerprint = "3c958226"

	zeroNormal0Pub = "030138eec0d29ea63bd345bcb5114748fe7d65025cb45cf2bc8c" +
		"93380e93b9f839"

	zeroPath05Pub = "03becebc90185c5dde05406318892dd0ca384a3f818a6a9a9935" +
		"b0b38db46514ee"
	zeroPath05ChainCode = "5926d55494ccf4c91364dc9d5045e1fa6d93c88a2fbcd34" +
		"4be3ecf44f23dd42c"
	zeroPath057Priv = "4e0059d54df8412b0b45a621b4dec4b2c1c5e40063dba6b152" +
		"e31a67712d1b9e"
	zeroPath057Pub = "02e9e60fc66a7a608bd284818a00d333b249d79b046ac995fdf2" +
		"30b82a555e4777"

	tv1Priv = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8" +
		"436b35"
	tv1ChainCode = "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee22" +
		"7ffed37d508"
	tv1Pub = "0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff" +
		"49c85c2"
	tv1Fingerprint = "3442193e"
)

type harness struct {
	t         *testing.T
	logBuffer *bytes.Buffer
	logger    btclog.Logger
	tempDir   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	buf := &bytes.Buffer{}
	logBackend := btclog.NewDefaultHandler(buf)

	h := &harness{
		t:         t,
		logBuffer: buf,
		logger:    btclog.NewSLogger(logBackend.SubSystem(Subsystem)),
		tempDir:   t.TempDir(),
	}

	h.logger.SetLevel(btclog.LevelTrace)
	log = h.logger
	hdkey.UseLogger(h.logger)

	os.Clearenv()

	return h
}

func (h *harness) getLog() string {
	return h.logBuffer.String()
}

func (h *harness) clearLog() {
	h.logBuffer.Reset()
}

func (h *harness) assertLogContains(format string) {
	h.t.Helper()

	require.Contains(h.t, h.logBuffer.String(), format)
}

func (h *harness) assertLogNotContains(format string) {
	h.t.Helper()

	require.NotContains(h.t, h.logBuffer.String(), format)
}

func (h *harness) tempFile(name string) string {
	return path.Join(h.tempDir, name)
}

func TestRootCommandDoc(t *testing.T) {
	h := newHarness(t)

	docDir := h.tempFile("doc")
	rootCmd := newRootCommand()
	rootCmd.SetArgs([]string{
		"doc", "--dir", docDir, "--logdir", h.tempFile("logs"),
		"--loglevel", "off",
	})
	require.NoError(t, rootCmd.Execute())
	require.NoError(t, logWriter.Close())

	for _, name := range []string{
		"hdtree.md", "hdtree_genmaster.md", "hdtree_derivekey.md",
		"hdtree_derivepub.md", "hdtree_verify.md",
	} {
		require.FileExists(t, path.Join(docDir, name))
	}

	// The rotating log file was created in the configured directory.
	require.FileExists(t, h.tempFile(path.Join("logs", defaultLogFilename)))
}

func TestRootCommandEnvConfig(t *testing.T) {
	h := newHarness(t)

	// Every persistent flag can be set through the environment.
	t.Setenv("HDTREE_LOGLEVEL", "invalid")

	rootCmd := newRootCommand()
	rootCmd.SetArgs([]string{
		"doc", "--dir", h.tempFile("doc"), "--logdir", "",
	})
	err := rootCmd.Execute()
	require.ErrorContains(t, err, "invalid log level: invalid")
}

func TestRootCommandVersion(t *testing.T) {
	oldVersion, oldCommit := version, Commit
	t.Cleanup(func() {
		version, Commit = oldVersion, oldCommit
	})

	// Both are overwritten by the linker in release builds.
	version, Commit = "9.8.7", "abcdef"

	rootCmd := newRootCommand()
	require.Equal(t, "v9.8.7, commit abcdef", rootCmd.Version)
}
