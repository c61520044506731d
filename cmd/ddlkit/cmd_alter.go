package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/cli"
	"github.com/zqlz/ddlkit/internal/table"
)

// alterCmd computes the ordered ALTER TABLE statements between two
// table designs.
func alterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alter <old.yaml> <new.yaml>",
		Short: "Compute ALTER TABLE statements between two designs",
		Args:  cobra.ExactArgs(2),
		Example: `  ddlkit alter users_v1.yaml users_v2.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			original, _, err := loadTableDesign(args[0])
			if err != nil {
				return err
			}
			modified, _, err := loadTableDesign(args[1])
			if err != nil {
				return err
			}

			stmts, err := table.GenerateAlter(original, modified)
			if err != nil {
				return err
			}

			if len(stmts) == 0 {
				fmt.Println(cli.Dim("-- no changes"))
				return nil
			}
			fmt.Println(strings.Join(stmts, "\n"))
			return nil
		},
	}

	return cmd
}
