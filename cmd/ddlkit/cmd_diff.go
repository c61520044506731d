package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/cli"
	"github.com/zqlz/ddlkit/internal/compare"
	"github.com/zqlz/ddlkit/internal/drift"
	"github.com/zqlz/ddlkit/internal/migrate"
	"github.com/zqlz/ddlkit/internal/schema"
)

// diffCmd compares two schema snapshots. The first argument is the
// desired schema, the second the baseline it is compared against.
func diffCmd() *cobra.Command {
	var genMigration bool
	var fingerprint bool
	var caseInsensitive bool

	cmd := &cobra.Command{
		Use:   "diff <source.yaml> <target.yaml>",
		Short: "Compare two schema snapshots",
		Args:  cobra.ExactArgs(2),
		Example: `  ddlkit diff desired.yaml current.yaml
  ddlkit diff desired.yaml current.yaml --migrate --dialect postgres
  ddlkit diff desired.yaml current.yaml --fingerprint`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := schema.Load(args[0])
			if err != nil {
				return err
			}
			target, err := schema.Load(args[1])
			if err != nil {
				return err
			}

			cfg := compare.DefaultConfig()
			if caseInsensitive {
				cfg = cfg.CaseInsensitive()
			}
			diff := compare.WithConfig(cfg).CompareSnapshots(source, target)

			if fingerprint {
				if err := printFingerprints(source, target); err != nil {
					return err
				}
				fmt.Println()
			}

			if diff.IsEmpty() {
				fmt.Println(cli.Success("No changes detected."))
				return nil
			}

			printDiffSummary(&diff)

			if genMigration {
				fmt.Println()
				gen := migrate.WithConfig(migrate.ForDialect(resolveDialect(cmd, "")))
				migration, err := gen.Generate(&diff)
				if err != nil {
					return err
				}
				fmt.Println(cli.Header("-- up"))
				fmt.Println(migration.UpScript())
				fmt.Println()
				fmt.Println(cli.Header("-- down"))
				fmt.Println(migration.DownScript())
			}
			return nil
		},
	}

	dialectFlag(cmd.Flags(), "")
	cmd.Flags().BoolVar(&genMigration, "migrate", false, "Also print up and down migration scripts")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Print merkle fingerprints of both snapshots")
	cmd.Flags().BoolVar(&caseInsensitive, "case-insensitive", false, "Match object names ignoring case")

	return cmd
}

// printDiffSummary renders the per-kind change counts and names the
// modified tables.
func printDiffSummary(diff *compare.SchemaDiff) {
	fmt.Printf("Found %s:\n", cli.FormatCount(diff.ChangeCount(), "change", "changes"))
	if diff.HasBreakingChanges() {
		fmt.Println(cli.Warning("!") + " contains breaking changes (removals or unsafe column modifications)")
	}
	fmt.Println()

	t := cli.NewTable("kind", "added", "removed", "modified")
	rows := []struct {
		kind                     string
		added, removed, modified int
	}{
		{"tables", len(diff.AddedTables), len(diff.RemovedTables), len(diff.ModifiedTables)},
		{"views", len(diff.AddedViews), len(diff.RemovedViews), len(diff.ModifiedViews)},
		{"functions", len(diff.AddedFunctions), len(diff.RemovedFunctions), len(diff.ModifiedFunctions)},
		{"procedures", len(diff.AddedProcedures), len(diff.RemovedProcedures), len(diff.ModifiedProcedures)},
		{"triggers", len(diff.AddedTriggers), len(diff.RemovedTriggers), len(diff.ModifiedTriggers)},
		{"sequences", len(diff.AddedSequences), len(diff.RemovedSequences), len(diff.ModifiedSequences)},
		{"types", len(diff.AddedTypes), len(diff.RemovedTypes), len(diff.ModifiedTypes)},
	}
	for _, r := range rows {
		if r.added == 0 && r.removed == 0 && r.modified == 0 {
			continue
		}
		t.AddRow(r.kind, strconv.Itoa(r.added), strconv.Itoa(r.removed), strconv.Itoa(r.modified))
	}
	fmt.Print(t.String())

	if len(diff.ModifiedTables) > 0 {
		fmt.Println()
		list := cli.NewList()
		for i := range diff.ModifiedTables {
			td := &diff.ModifiedTables[i]
			detail := fmt.Sprintf("%s (%s)", td.QualifiedName(), tableChangeSummary(td))
			if td.IsSafe() {
				list.AddInfo(detail)
			} else {
				list.AddWarning(detail)
			}
		}
		fmt.Print(list.String())
	}
}

// tableChangeSummary condenses one table diff into a short phrase.
func tableChangeSummary(td *compare.TableDiff) string {
	cols := len(td.AddedColumns) + len(td.RemovedColumns) + len(td.ModifiedColumns)
	idxs := len(td.AddedIndexes) + len(td.RemovedIndexes) + len(td.ModifiedIndexes)
	fks := len(td.AddedForeignKeys) + len(td.RemovedForeignKeys) + len(td.ModifiedForeignKeys)
	cons := len(td.AddedConstraints) + len(td.RemovedConstraints) + len(td.ModifiedConstraints)

	var parts []string
	if cols > 0 {
		parts = append(parts, cli.FormatCount(cols, "column", "columns"))
	}
	if idxs > 0 {
		parts = append(parts, cli.FormatCount(idxs, "index", "indexes"))
	}
	if fks > 0 {
		parts = append(parts, cli.FormatCount(fks, "foreign key", "foreign keys"))
	}
	if cons > 0 {
		parts = append(parts, cli.FormatCount(cons, "constraint", "constraints"))
	}
	if td.PrimaryKeyChange != nil {
		parts = append(parts, "primary key")
	}
	if len(parts) == 0 {
		return "no structural changes"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}

// printFingerprints computes and prints the merkle roots of both
// snapshots and, when they differ, the tables responsible.
func printFingerprints(source, target *schema.Snapshot) error {
	sf, err := drift.ComputeFingerprint(source)
	if err != nil {
		return err
	}
	tf, err := drift.ComputeFingerprint(target)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatKeyValue("source", sf.Root))
	fmt.Println(cli.FormatKeyValue("target", tf.Root))

	result := drift.Compare(sf, tf)
	if !result.HasDrift() {
		fmt.Println(cli.Success("fingerprints match"))
		return nil
	}

	list := cli.NewList()
	for _, name := range result.MissingTables {
		list.AddError(name + " only in source")
	}
	for _, name := range result.ExtraTables {
		list.AddError(name + " only in target")
	}
	modified := make([]string, 0, len(result.ModifiedTables))
	for name := range result.ModifiedTables {
		modified = append(modified, name)
	}
	sort.Strings(modified)
	for _, name := range modified {
		list.AddWarning(name + " differs")
	}
	fmt.Print(list.String())
	return nil
}
