package main

import (
	"errors"
	"fmt"

	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/spf13/cobra"
)

const verifyFormat = `
Master fingerprint:	%x
Range:			%d..%d
Verified:		%d
Skipped:		%d %v
Mismatches:		%d %v
`

type verifyCommand struct {
	Start   uint32
	Count   uint32
	Threads int

	seed *seedFlags
	cmd  *cobra.Command
}

func newVerifyCommand() *cobra.Command {
	cc := &verifyCommand{}
	cc.cmd = &cobra.Command{
		Use: "verify",
		Short: "Check that private and public derivation agree for a " +
			"range of normal child indices",
		Long: `This command derives a range of normal child keys of the
master key twice, once from the master private key and once from the master
public key, and makes sure both branches end up at the same public keys and
chain codes. Indices that don't produce a usable key are skipped on both
branches and reported as such.`,
		Example: `hdtree verify --start 0 --count 1000 --threads 8`,
		RunE:    cc.Execute,
	}
	cc.cmd.Flags().Uint32Var(
		&cc.Start, "start", 0, "first child index to verify",
	)
	cc.cmd.Flags().Uint32Var(
		&cc.Count, "count", 100, "number of child indices to verify",
	)
	cc.cmd.Flags().IntVar(
		&cc.Threads, "threads", hdkey.DefaultWorkers, "number of "+
			"parallel derivations",
	)

	cc.seed = newSeedFlags(cc.cmd, "verifying the derivation")

	return cc.cmd
}

func (c *verifyCommand) Execute(cmd *cobra.Command, _ []string) error {
	if c.Count == 0 {
		return errors.New("count must be positive")
	}
	end := uint64(c.Start) + uint64(c.Count)
	if end > hdkey.HardenedKeyStart {
		return fmt.Errorf("range %d..%d reaches into the hardened "+
			"range starting at %d", c.Start, end-1,
			hdkey.HardenedKeyStart)
	}

	master, err := c.seed.masterKey()
	if err != nil {
		return err
	}
	defer master.Zero()

	ctx := commandContext(cmd)
	start := uint64(c.Start)

	privResults, err := hdkey.DerivePrivateRange(
		ctx, master, hdkey.KeyModeNormal, start, c.Count, c.Threads,
	)
	if err != nil {
		return fmt.Errorf("private derivation aborted: %w", err)
	}
	defer wipePrivateResults(privResults)

	pubResults, err := hdkey.DerivePublicRange(
		ctx, master.Neuter(), start, c.Count, c.Threads,
	)
	if err != nil {
		return fmt.Errorf("public derivation aborted: %w", err)
	}

	verified, skipped, mismatches := compareRanges(
		start, privResults, pubResults,
	)

	fingerprint := master.Neuter().Fingerprint()
	result := fmt.Sprintf(
		verifyFormat, fingerprint[:], start, end-1, len(verified),
		len(skipped), skipped, len(mismatches), mismatches,
	)
	fmt.Println(result)

	// For the tests, also log as trace level which is disabled by default.
	log.Tracef("%s", result)

	if len(mismatches) > 0 {
		return fmt.Errorf("found %d mismatches between private and "+
			"public derivation", len(mismatches))
	}

	return nil
}

// compareRanges checks every private child against the public child at the
// same position and sorts the indices into verified, skipped and mismatched
// ones.
func compareRanges(start uint64,
	privResults []fn.Result[*hdkey.ChildPrivateKey],
	pubResults []fn.Result[*hdkey.ChildPublicKey]) ([]uint64, []uint64,
	[]uint64) {

	var verified, skipped, mismatches []uint64
	for i := range privResults {
		index := start + uint64(i)

		privChild, privErr := privResults[i].Unpack()
		pubChild, pubErr := pubResults[i].Unpack()

		switch {
		case privErr == nil && pubErr == nil:
			if privChild.Neuter().IsEqual(pubChild) {
				verified = append(verified, index)
			} else {
				log.Errorf("Public key mismatch at index %d",
					index)
				mismatches = append(mismatches, index)
			}

		case errors.Is(privErr, hdkey.ErrInvalidIndex) &&
			errors.Is(pubErr, hdkey.ErrInvalidIndex):

			log.Infof("Skipping invalid index %d", index)
			skipped = append(skipped, index)

		default:
			log.Errorf("Derivation mismatch at index %d: "+
				"private=%v, public=%v", index, privErr,
				pubErr)
			mismatches = append(mismatches, index)
		}
	}

	return verified, skipped, mismatches
}

// wipePrivateResults zeroes all successfully derived private children.
func wipePrivateResults(results []fn.Result[*hdkey.ChildPrivateKey]) {
	for _, result := range results {
		if child, err := result.Unpack(); err == nil {
			child.Key.Zero()
		}
	}
}
