package cmd

import (
	"fmt"
	"os"

	"github.com/go-arbor/arbor/pkg/markup"
	"github.com/go-arbor/arbor/pkg/nodetest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Build a markup document and print its tree",
		Long: `Build the tree described by a markup document and print an
indented dump of the result. The document is built detached; nothing
is rendered.`,
		Usage: "arbor inspect <file.yaml>",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: arbor inspect <file.yaml>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	root, err := markup.DefaultLoader().Build(nil, f)
	if err != nil {
		return err
	}

	fmt.Print(nodetest.Dump(root))
	return nil
}
