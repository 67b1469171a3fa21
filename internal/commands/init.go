package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/gitops"
	"github.com/karnotteam/finrep/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new finrep data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// streamWriters maps each stream file to the writer that emits its header.
var streamWriters = map[string]func(*os.File) error{
	store.QuotesFile:   func(f *os.File) error { return store.WriteQuotes(f, nil) },
	store.LedgerFile:   func(f *os.File) error { return store.WriteLedger(f, nil) },
	store.PayrollFile:  func(f *os.File) error { return store.WritePayroll(f, nil) },
	store.EquityFile:   func(f *os.File) error { return store.WriteEquity(f, nil) },
	store.AssetsFile:   func(f *os.File) error { return store.WriteAssets(f, nil) },
	store.PipelineFile: func(f *os.File) error { return store.WritePipeline(f, nil) },
}

func runInit(w io.Writer, dir, name string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "finrep.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Header-only stream files; the owning subsystems append the records.
	for file, write := range streamWriters {
		f, err := os.Create(filepath.Join(dir, file))
		if err != nil {
			return fmt.Errorf("creating %s: %w", file, err)
		}
		if err := write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", file, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", file, err)
		}
	}

	gitignore := "logs/\nexports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if !cfg.Git.AutoCommit {
		fmt.Fprintf(w, "Initialized finrep data directory at %s\n", dir)
		return nil
	}

	if err := gitops.EnsureRepo(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.Commit(dir, "init: scaffold "+name, gitops.Author{
		Name:  cfg.Git.AuthorName,
		Email: cfg.Git.AuthorEmail,
	})
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(w, "Initialized finrep data directory at %s (%s)\n", dir, hash)
	return nil
}
