package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/cli"
	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/table"
)

// tableCmd builds CREATE TABLE DDL from a design file. The dialect
// comes from the design file and may be overridden by --dialect.
func tableCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "table <design.yaml>",
		Short: "Build CREATE TABLE DDL from a design file",
		Args:  cobra.ExactArgs(1),
		Example: `  ddlkit table users.yaml
  ddlkit table users.yaml --dialect sqlite
  ddlkit table users.yaml --drop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			design, fileDialect, err := loadTableDesign(args[0])
			if err != nil {
				return err
			}
			if design.Dialect == "" {
				design.Dialect = fileDialect
			}
			if f := cmd.Flags().Lookup("dialect"); f != nil && f.Changed {
				if d, ok := dialect.Parse(f.Value.String()); ok {
					design.Dialect = d
				}
			}
			if design.Dialect == "" {
				design.Dialect = dialect.Postgres
			}

			if drop {
				fmt.Println(table.BuildDrop(design))
				return nil
			}

			sql, err := table.BuildCreate(design)
			if err != nil {
				var verrs table.ValidationErrors
				if errors.As(err, &verrs) {
					printValidationErrors(args[0], verrs)
					os.Exit(1)
				}
				return err
			}
			fmt.Println(sql)
			return nil
		},
	}

	dialectFlag(cmd.Flags(), "")
	cmd.Flags().BoolVar(&drop, "drop", false, "Emit DROP TABLE instead of CREATE TABLE")

	return cmd
}

// printValidationErrors renders every design problem with its field
// path, one per line.
func printValidationErrors(path string, errs table.ValidationErrors) {
	fmt.Fprintf(os.Stderr, "%s: %s has %s:\n",
		cli.Error("error"),
		cli.FilePath(path),
		cli.FormatCount(len(errs), "problem", "problems"))
	list := cli.NewList()
	for _, e := range errs {
		list.AddError(e.Error())
	}
	fmt.Fprint(os.Stderr, list.String())
}
