package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/djcass44/debdeps/pkg/config"
	"github.com/djcass44/debdeps/pkg/debian"
	"github.com/djcass44/debdeps/pkg/fetch"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func query(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	return runQuery(cmd.Context(), cmd.OutOrStdout(), configPath)
}

func runQuery(ctx context.Context, out io.Writer, configPath string) error {
	log := logr.FromContextOrDiscard(ctx)

	// read the config file
	cfg, warnings, err := config.Read(ctx, configPath)
	for _, w := range warnings {
		_, _ = fmt.Fprintf(out, "Warning: %s\n", w)
	}
	if err != nil {
		return err
	}
	if cfg.ASCIITreeMode || cfg.FilterSubstring != "" {
		log.V(1).Info("tree rendering and filtering are not supported, printing direct dependencies only")
	}

	text, err := fetch.Fetch(ctx, cfg.RepoURLOrPath, cfg.RepoMode)
	if err != nil {
		return err
	}

	idx := debian.NewIndex(ctx, cfg.RepoURLOrPath, text)
	log.V(1).Info("loaded index", "count", idx.Count(), "source", idx.Source())

	deps, err := idx.GetDependencies(ctx, cfg.PackageName)
	if err != nil {
		return err
	}
	return printDependencies(out, cfg.PackageName, deps)
}

func printDependencies(w io.Writer, name string, deps []string) error {
	if len(deps) == 0 {
		_, err := fmt.Fprintf(w, "Package '%s' has no dependencies.\n", name)
		return err
	}
	if _, err := fmt.Fprintf(w, "Direct dependencies of '%s':\n", name); err != nil {
		return err
	}
	for _, d := range deps {
		if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
			return err
		}
	}
	return nil
}
