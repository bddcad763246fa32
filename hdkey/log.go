package hdkey

import (
	"encoding/hex"

	"github.com/btcsuite/btclog/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/lightningnetwork/lnd/lnutils"
)

// Subsystem defines the logging code for this subsystem.
const Subsystem = "HDKY"

// log is a logger that is initialized with no output filters. This means the
// package will not perform any logging by default until the caller requests
// it.
var log btclog.Logger

// The default amount of logging is none.
func init() {
	DisableLog()
}

// DisableLog disables all library log output. Logging output is disabled by
// default until UseLogger is called.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// spewPath dumps a derivation path. Only indices are ever dumped, never key
// material.
func spewPath(path []ChildIndex) lnutils.LogClosure {
	return lnutils.NewLogClosure(func() string {
		return spew.Sdump(FormatPath(path), len(path))
	})
}

// fingerprintClosure formats the fingerprint of a private key lazily, the
// scalar multiplication is only done if the message is actually logged.
func fingerprintClosure(key *ExtendedPrivateKey) lnutils.LogClosure {
	return lnutils.NewLogClosure(func() string {
		fp := key.Neuter().Fingerprint()
		return hex.EncodeToString(fp[:])
	})
}
