package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/function"
)

// functionCmd builds function DDL from a spec file.
func functionCmd() *cobra.Command {
	var drop bool
	var replace bool
	var cascade bool

	cmd := &cobra.Command{
		Use:   "function <spec.yaml>",
		Short: "Build function DDL from a spec file",
		Args:  cobra.ExactArgs(1),
		Example: `  ddlkit function slugify.yaml --dialect postgres
  ddlkit function slugify.yaml --replace
  ddlkit function slugify.yaml --drop --cascade`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, fileDialect, err := loadFunctionSpec(args[0])
			if err != nil {
				return err
			}
			d := resolveDialect(cmd, fileDialect)

			if drop {
				fmt.Println(function.BuildDrop(spec, d, true, cascade))
				return nil
			}

			var sql string
			if replace {
				sql, err = function.BuildCreateOrReplace(spec, d)
			} else {
				sql, err = function.BuildCreate(spec, d)
			}
			if err != nil {
				return err
			}
			fmt.Println(sql)
			return nil
		},
	}

	dialectFlag(cmd.Flags(), "")
	cmd.Flags().BoolVar(&drop, "drop", false, "Emit DROP FUNCTION instead of CREATE FUNCTION")
	cmd.Flags().BoolVar(&replace, "replace", false, "Emit CREATE OR REPLACE where the dialect supports it")
	cmd.Flags().BoolVar(&cascade, "cascade", false, "Append CASCADE to DROP FUNCTION (PostgreSQL)")

	return cmd
}
