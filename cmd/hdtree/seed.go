package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const seedEnvName = "HDTREE_SEED"

// seedFlags is the set of flags a command uses to get hold of the seed.
type seedFlags struct {
	Seed string
}

func newSeedFlags(cmd *cobra.Command, desc string) *seedFlags {
	s := &seedFlags{}
	cmd.Flags().StringVar(
		&s.Seed, "seed", "", "hex encoded seed to use for "+desc+
			"; leave empty to read it from the "+seedEnvName+
			" environment variable or the terminal",
	)

	return s
}

// source returns the hex seed if it was given as a flag or through the
// environment.
func (s *seedFlags) source() fn.Option[string] {
	if seed := strings.TrimSpace(s.Seed); seed != "" {
		return fn.Some(seed)
	}

	if seed := strings.TrimSpace(os.Getenv(seedEnvName)); seed != "" {
		return fn.Some(seed)
	}

	return fn.None[string]()
}

// read returns the decoded seed, prompting for it if necessary.
func (s *seedFlags) read() ([]byte, error) {
	seedHex, err := s.source().UnwrapOrFuncErr(readSeedFromTerminal)
	if err != nil {
		return nil, err
	}

	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("error decoding seed: %w", err)
	}

	return seed, nil
}

// masterKey reads the seed and derives the master key from it. The seed is
// wiped before returning.
func (s *seedFlags) masterKey() (*hdkey.ExtendedPrivateKey, error) {
	seed, err := s.read()
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	master, err := hdkey.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("could not create master key: %w", err)
	}

	return master, nil
}

func readSeedFromTerminal() (string, error) {
	fmt.Printf("Input your hex encoded seed: ")
	seedBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("error reading seed from terminal: %w",
			err)
	}
	fmt.Println()

	seed := strings.TrimSpace(string(seedBytes))
	clear(seedBytes)

	if seed == "" {
		return "", errors.New("no seed given")
	}

	return seed, nil
}

// decodeHexFlag decodes a hex flag value and names the flag in the error.
func decodeHexFlag(name, value string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("error decoding --%s: %w", name, err)
	}

	return decoded, nil
}
