package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/cli"
	"github.com/zqlz/ddlkit/internal/dialect"
)

// FilePerm is the mode for generated SQL files.
const FilePerm = 0o644

// genCmd synthesizes every spec file in a directory. With --watch it
// keeps running and regenerates on file changes.
func genCmd() *cobra.Command {
	var outputDir string
	var watch bool

	cmd := &cobra.Command{
		Use:   "gen <dir>",
		Short: "Synthesize every spec file in a directory",
		Long:  `Reads every .yaml/.yml spec file in the directory and writes the synthesized SQL next to it (or into --output). Spec files are envelopes with a kind of policy, trigger, function, or table.`,
		Args:  cobra.ExactArgs(1),
		Example: `  ddlkit gen specs/
  ddlkit gen specs/ -o sql/ --dialect mysql
  ddlkit gen specs/ --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			d := resolveDialect(cmd, "")

			if err := generateDir(dir, outputDir, d); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchDir(dir, outputDir, d)
		},
	}

	dialectFlag(cmd.Flags(), "")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for generated .sql files (default: next to each spec)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and regenerate when spec files change")

	return cmd
}

// generateDir renders every spec file in dir and reports a one-line
// status per file. Files that fail to render are reported but do not
// stop the rest of the directory.
func generateDir(dir, outputDir string, d dialect.Dialect) error {
	specs, err := listSpecFiles(dir)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		fmt.Println(cli.Dim("no spec files found in " + dir))
		return nil
	}

	failed := 0
	for _, path := range specs {
		outPath, err := generateFile(path, outputDir, d)
		if err != nil {
			failed++
			fmt.Printf("%s %s: %v\n", cli.Failed("✗"), cli.FilePath(path), err)
			continue
		}
		fmt.Printf("%s %s %s %s\n", cli.Done("✓"), cli.FilePath(path), cli.Dim("→"), outPath)
	}

	if failed > 0 {
		return fmt.Errorf("%s failed to generate", cli.FormatCount(failed, "spec", "specs"))
	}
	return nil
}

// generateFile renders one spec file and writes the SQL beside it, or
// into outputDir when set. Returns the output path.
func generateFile(path, outputDir string, d dialect.Dialect) (string, error) {
	spec, err := LoadSpecFile(path)
	if err != nil {
		return "", err
	}

	sql, err := spec.Render(d)
	if err != nil {
		return "", err
	}

	outPath := sqlPath(path, outputDir)
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(sql+"\n"), FilePerm); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return outPath, nil
}

// sqlPath maps a spec path to its generated .sql path.
func sqlPath(specPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(specPath), filepath.Ext(specPath)) + ".sql"
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(specPath), base)
}

// listSpecFiles returns the sorted .yaml/.yml files directly in dir.
func listSpecFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read spec directory: %w", err)
	}
	var specs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			specs = append(specs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(specs)
	return specs, nil
}

// watchDir blocks, regenerating the directory whenever a spec file is
// written, created, renamed, or removed. Events are debounced so an
// editor's write-then-rename dance triggers one regeneration.
func watchDir(dir, outputDir string, d dialect.Dialect) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fmt.Println(cli.Info("watching") + " " + dir + cli.Dim(" (ctrl-c to stop)"))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSpecEvent(event) {
				continue
			}
			// Debounce: wait for the burst of events to settle.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			fmt.Println()
			if err := generateDir(dir, outputDir, d); err != nil {
				fmt.Fprintln(os.Stderr, cli.Error("error")+": "+err.Error())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, cli.Error("watch error")+": "+err.Error())
		case <-sigs:
			return nil
		}
	}
}

// isSpecEvent reports whether the event concerns a spec file in a way
// that warrants regeneration.
func isSpecEvent(event fsnotify.Event) bool {
	switch filepath.Ext(event.Name) {
	case ".yaml", ".yml":
	default:
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename) ||
		event.Op.Has(fsnotify.Remove)
}
