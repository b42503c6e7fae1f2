package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-arbor/arbor/cmd/arbor/internal/config"
	"github.com/go-arbor/arbor/cmd/arbor/internal/gen"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Generate typed builder functions",
		Long: `Generate typed builder functions from the arbor.yaml manifest.

Reads arbor.yaml at the project root, resolves the module path from
go.mod, and writes one builder function per declared kind to the
manifest's output file. The file is formatted and marked as generated.`,
		Usage: "arbor gen",
		Run:   runGen,
	})
}

func runGen(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	res, err := config.Resolve(root)
	if err != nil {
		return err
	}
	slog.Debug("resolved manifest",
		slog.String("module", res.ModulePath),
		slog.String("elements", res.ElementsImport),
		slog.Int("kinds", len(res.Manifest.Kinds)))

	var g gen.Generator
	src, err := g.Generate(res)
	if err != nil {
		return fmt.Errorf("generating builders: %w", err)
	}

	out := filepath.Join(root, res.Manifest.Output)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}

	slog.Info("wrote builders",
		slog.String("output", res.Manifest.Output),
		slog.Int("kinds", len(res.Manifest.Kinds)))
	return nil
}
