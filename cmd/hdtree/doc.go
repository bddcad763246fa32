package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

type docCommand struct {
	Dir string

	cmd *cobra.Command
}

func newDocCommand() *cobra.Command {
	cc := &docCommand{}
	cc.cmd = &cobra.Command{
		Use:    "doc",
		Short:  "Generate the markdown documentation of all commands",
		Hidden: true,
		RunE:   cc.Execute,
	}
	cc.cmd.Flags().StringVar(
		&cc.Dir, "dir", "./doc", "directory to write the markdown "+
			"files to",
	)

	return cc.cmd
}

func (c *docCommand) Execute(cmd *cobra.Command, _ []string) error {
	if err := os.MkdirAll(c.Dir, 0700); err != nil {
		return err
	}

	return doc.GenMarkdownTree(cmd.Root(), c.Dir)
}
