package main

import (
	"errors"
	"fmt"

	"github.com/lightninglabs/hdtree/hdkey"
	"github.com/spf13/cobra"
)

const derivePubFormat = `
Path:			%s
Index:			%d
Public key:		%x
Chain code:		%x
Fingerprint:		%x
`

type derivePubCommand struct {
	Path      string
	PubKey    string
	ChainCode string

	cmd *cobra.Command
}

func newDerivePubCommand() *cobra.Command {
	cc := &derivePubCommand{}
	cc.cmd = &cobra.Command{
		Use:   "derivepub",
		Short: "Derive a public key from an extended public key",
		Long: `This command derives a child public key from a parent public
key and chain code without knowing any private key. Only normal (non-hardened)
indices can be derived this way.`,
		Example: `hdtree derivepub --path m/0/7 \
	--pubkey 03becebc... --chaincode 5926d554...`,
		RunE: cc.Execute,
	}
	cc.cmd.Flags().StringVar(
		&cc.Path, "path", "", "derivation path relative to the "+
			"given public key; must start with \"m/\" and must "+
			"not contain hardened indices",
	)
	cc.cmd.Flags().StringVar(
		&cc.PubKey, "pubkey", "", "hex encoded 33 byte compressed "+
			"public key to derive from",
	)
	cc.cmd.Flags().StringVar(
		&cc.ChainCode, "chaincode", "", "hex encoded chain code that "+
			"belongs to --pubkey",
	)

	return cc.cmd
}

func (c *derivePubCommand) Execute(_ *cobra.Command, _ []string) error {
	if c.PubKey == "" || c.ChainCode == "" {
		return errors.New("--pubkey and --chaincode are required")
	}

	path, err := hdkey.ParsePath(c.Path)
	if err != nil {
		return fmt.Errorf("could not parse path: %w", err)
	}
	if len(path) == 0 {
		return errors.New("path must contain at least one child index")
	}

	pubKey, err := decodeHexFlag("pubkey", c.PubKey)
	if err != nil {
		return err
	}
	chainCode, err := decodeHexFlag("chaincode", c.ChainCode)
	if err != nil {
		return err
	}

	parent, err := hdkey.NewExtendedPublicKey(pubKey, chainCode)
	if err != nil {
		return fmt.Errorf("invalid extended public key: %w", err)
	}

	child, err := hdkey.DerivePublicPath(parent, path)
	if err != nil {
		return fmt.Errorf("could not derive keys: %w", err)
	}

	childChainCode := child.Key.ChainCode()
	fingerprint := child.Key.Fingerprint()
	result := fmt.Sprintf(
		derivePubFormat, hdkey.FormatPath(path), child.Index.Uint32(),
		child.Key.SerializedPubKey(), childChainCode[:],
		fingerprint[:],
	)
	fmt.Println(result)

	// For the tests, also log as trace level which is disabled by default.
	log.Tracef("%s", result)

	return nil
}
