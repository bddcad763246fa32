package main

import (
	"errors"
	"fmt"

	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/spf13/cobra"
)

const deriveKeyFormat = `
Path:			%s
Index:			%d
Mode:			%v
Public key:		%x
Chain code:		%x
Parent fingerprint:	%x
Private key:		%s
`

type deriveKeyCommand struct {
	Path      string
	PrivKey   string
	ChainCode string
	Neuter    bool

	seed *seedFlags
	cmd  *cobra.Command
}

func newDeriveKeyCommand() *cobra.Command {
	cc := &deriveKeyCommand{}
	cc.cmd = &cobra.Command{
		Use:   "derivekey",
		Short: "Derive a private key with a specific derivation path",
		Long: `This command derives a single child key with the given
derivation path from the master key of a seed or from an extended private key
given as private key and chain code, and prints it to the console.`,
		Example: `hdtree derivekey --path "m/0'/5/7" --neuter

hdtree derivekey --path "m/1/2'" --privkey 3a... --chaincode 0b...`,
		RunE: cc.Execute,
	}
	cc.cmd.Flags().StringVar(
		&cc.Path, "path", "", "derivation path to derive; must "+
			"start with \"m/\"",
	)
	cc.cmd.Flags().StringVar(
		&cc.PrivKey, "privkey", "", "hex encoded private key of the "+
			"extended key to derive from instead of a seed",
	)
	cc.cmd.Flags().StringVar(
		&cc.ChainCode, "chaincode", "", "hex encoded chain code that "+
			"belongs to --privkey",
	)
	cc.cmd.Flags().BoolVar(
		&cc.Neuter, "neuter", false, "don't output the private key, "+
			"only public information",
	)

	cc.seed = newSeedFlags(cc.cmd, "deriving the key")

	return cc.cmd
}

func (c *deriveKeyCommand) Execute(_ *cobra.Command, _ []string) error {
	path, err := hdkey.ParsePath(c.Path)
	if err != nil {
		return fmt.Errorf("could not parse path: %w", err)
	}

	parent, err := c.parentKey()
	if err != nil {
		return err
	}
	defer parent.Zero()

	return deriveKey(parent, path, c.Neuter)
}

// parentKey returns the extended private key to derive from.
func (c *deriveKeyCommand) parentKey() (*hdkey.ExtendedPrivateKey, error) {
	switch {
	case c.PrivKey != "" && c.ChainCode == "":
		return nil, errors.New("--chaincode is required with --privkey")

	case c.PrivKey != "":
		privKey, err := decodeHexFlag("privkey", c.PrivKey)
		if err != nil {
			return nil, err
		}
		defer clear(privKey)

		chainCode, err := decodeHexFlag("chaincode", c.ChainCode)
		if err != nil {
			return nil, err
		}

		return hdkey.NewExtendedPrivateKey(privKey, chainCode)

	default:
		return c.seed.masterKey()
	}
}

func deriveKey(parent *hdkey.ExtendedPrivateKey, path []hdkey.ChildIndex,
	neuter bool) error {

	// Deriving "m" just returns the parent itself.
	if len(path) == 0 {
		return errors.New("path must contain at least one child index")
	}

	child, err := hdkey.DerivePrivatePath(parent, path)
	if err != nil {
		return fmt.Errorf("could not derive keys: %w", err)
	}
	defer child.Key.Zero()

	parentFingerprint := parent.Neuter().Fingerprint()
	if len(path) > 1 {
		parentPath := path[:len(path)-1]
		directParent, err := hdkey.DerivePrivatePath(parent, parentPath)
		if err != nil {
			return fmt.Errorf("could not derive parent: %w", err)
		}
		parentFingerprint = directParent.Key.Neuter().Fingerprint()
		directParent.Key.Zero()
	}

	privKey := na
	if !neuter {
		privKeyBytes := child.Key.PrivKeyBytes()
		privKey = fmt.Sprintf("%x", privKeyBytes[:])
		clear(privKeyBytes[:])
	}

	chainCode := child.Key.ChainCode()
	result := fmt.Sprintf(
		deriveKeyFormat, hdkey.FormatPath(path), child.Index.Uint32(),
		child.Mode(), child.Key.SerializedPubKey(), chainCode[:],
		parentFingerprint[:], privKey,
	)
	fmt.Println(result)

	// For the tests, also log as trace level which is disabled by default.
	log.Tracef("%s", result)

	return nil
}
