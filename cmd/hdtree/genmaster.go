package main

import (
	"crypto/rand"
	"fmt"

	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/spf13/cobra"
)

const masterKeyFormat = `
Seed:			%s
Private key:		%s
Chain code:		%x
Public key:		%x
Fingerprint:		%x
`

type genMasterCommand struct {
	Random  bool
	SeedLen int
	Neuter  bool

	seed *seedFlags
	cmd  *cobra.Command
}

func newGenMasterCommand() *cobra.Command {
	cc := &genMasterCommand{}
	cc.cmd = &cobra.Command{
		Use:   "genmaster",
		Short: "Create the master key of a key tree",
		Long: `This command derives the master extended private key from
a seed and prints it to the console. With --random a fresh seed is read from
the operating system's random number generator, seeds that don't produce a
usable key are discarded automatically.`,
		Example: `hdtree genmaster --seed 000102030405060708090a0b0c0d0e0f

hdtree genmaster --random --seedlen 64 --neuter`,
		RunE: cc.Execute,
	}
	cc.cmd.Flags().BoolVar(
		&cc.Random, "random", false, "generate a new random seed "+
			"instead of reading one",
	)
	cc.cmd.Flags().IntVar(
		&cc.SeedLen, "seedlen", hdkey.RecommendedSeedLen, "length of "+
			"the random seed in bytes; must be between 16 and 256",
	)
	cc.cmd.Flags().BoolVar(
		&cc.Neuter, "neuter", false, "don't output the seed and "+
			"private key, only public information",
	)

	cc.seed = newSeedFlags(cc.cmd, "creating the master key")

	return cc.cmd
}

func (c *genMasterCommand) Execute(_ *cobra.Command, _ []string) error {
	var (
		master *hdkey.ExtendedPrivateKey
		seed   []byte
		err    error
	)
	switch {
	case c.Random:
		master, seed, err = hdkey.GenerateMasterKey(
			rand.Reader, c.SeedLen,
		)
		if err != nil {
			return fmt.Errorf("could not generate master key: %w",
				err)
		}

	default:
		master, err = c.seed.masterKey()
		if err != nil {
			return err
		}
	}
	defer master.Zero()
	defer clear(seed)

	// The seed is only shown if we generated it, the user already has it
	// otherwise.
	seedStr, privKey := na, na
	if !c.Neuter {
		privKeyBytes := master.PrivKeyBytes()
		privKey = fmt.Sprintf("%x", privKeyBytes[:])
		clear(privKeyBytes[:])

		if c.Random {
			seedStr = fmt.Sprintf("%x", seed)
		}
	}

	pub := master.Neuter()
	chainCode := pub.ChainCode()
	fingerprint := pub.Fingerprint()
	result := fmt.Sprintf(
		masterKeyFormat, seedStr, privKey, chainCode[:],
		pub.SerializedPubKey(), fingerprint[:],
	)
	fmt.Println(result)

	// For the tests, also log as trace level which is disabled by default.
	log.Tracef("%s", result)

	return nil
}
