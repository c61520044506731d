package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/policy"
)

// policyCmd builds row-level security policy DDL from a spec file.
func policyCmd() *cobra.Command {
	var drop bool
	var enableRLS bool

	cmd := &cobra.Command{
		Use:   "policy <spec.yaml>",
		Short: "Build row-level security policy DDL from a spec file",
		Args:  cobra.ExactArgs(1),
		Example: `  ddlkit policy tenant_isolation.yaml
  ddlkit policy tenant_isolation.yaml --drop
  ddlkit policy tenant_isolation.yaml --enable-rls`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, fileDialect, err := loadPolicySpec(args[0])
			if err != nil {
				return err
			}
			d := resolveDialect(cmd, fileDialect)

			var sql string
			switch {
			case enableRLS:
				sql, err = policy.BuildEnableRLS(spec.Table, spec.Schema, d)
			case drop:
				sql, err = policy.BuildDrop(spec, d, true)
			default:
				sql, err = policy.BuildCreate(spec, d)
			}
			if err != nil {
				return err
			}

			fmt.Println(sql)
			return nil
		},
	}

	dialectFlag(cmd.Flags(), "")
	cmd.Flags().BoolVar(&drop, "drop", false, "Emit DROP POLICY instead of CREATE POLICY")
	cmd.Flags().BoolVar(&enableRLS, "enable-rls", false, "Emit ALTER TABLE ... ENABLE ROW LEVEL SECURITY for the spec's table")

	return cmd
}

// resolveDialect picks the dialect for a command: the --dialect flag
// wins, then the file-level dialect, then PostgreSQL.
func resolveDialect(cmd *cobra.Command, fileDialect dialect.Dialect) dialect.Dialect {
	if f := cmd.Flags().Lookup("dialect"); f != nil && f.Changed {
		if d, ok := dialect.Parse(f.Value.String()); ok {
			return d
		}
	}
	if fileDialect != "" {
		return fileDialect
	}
	return dialect.Postgres
}
