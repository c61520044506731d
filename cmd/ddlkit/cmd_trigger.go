package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/trigger"
)

// triggerCmd builds trigger DDL from a spec file.
func triggerCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "trigger <spec.yaml>",
		Short: "Build trigger DDL from a spec file",
		Args:  cobra.ExactArgs(1),
		Example: `  ddlkit trigger audit_users.yaml --dialect postgres
  ddlkit trigger audit_users.yaml --dialect mysql --drop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, fileDialect, err := loadTriggerSpec(args[0])
			if err != nil {
				return err
			}
			d := resolveDialect(cmd, fileDialect)

			if drop {
				fmt.Println(trigger.BuildDrop(spec, d, true))
				return nil
			}

			sql, err := trigger.BuildCreate(spec, d)
			if err != nil {
				return err
			}
			fmt.Println(sql)
			return nil
		},
	}

	dialectFlag(cmd.Flags(), "")
	cmd.Flags().BoolVar(&drop, "drop", false, "Emit DROP TRIGGER instead of CREATE TRIGGER")

	return cmd
}
