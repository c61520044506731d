// Package main provides the ddlkit CLI, a dialect-aware DDL synthesis
// and schema diffing tool. Every command reads YAML spec files and
// prints SQL text; nothing here opens a database connection.
//
// Usage:
//
//	ddlkit policy <spec.yaml>            # CREATE POLICY statement
//	ddlkit trigger <spec.yaml>           # CREATE TRIGGER statement
//	ddlkit function <spec.yaml>          # CREATE FUNCTION statement
//	ddlkit table <design.yaml>           # CREATE TABLE statement
//	ddlkit alter <old.yaml> <new.yaml>   # Ordered ALTER TABLE statements
//	ddlkit diff <source.yaml> <target.yaml>  # Snapshot diff summary
//	ddlkit gen <dir>                     # Synthesize every spec in a directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zqlz/ddlkit/internal/cli"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// customHelp displays a styled help message for the root command.
func customHelp() {
	categories := []CommandCategory{
		{
			Title: "Synthesis",
			Commands: []CommandInfo{
				{"policy", "Build row-level security policy DDL from a spec file"},
				{"trigger", "Build trigger DDL from a spec file"},
				{"function", "Build function DDL from a spec file"},
				{"table", "Build CREATE TABLE DDL from a design file"},
				{"gen", "Synthesize every spec file in a directory"},
			},
		},
		{
			Title: "Evolution",
			Commands: []CommandInfo{
				{"alter", "Compute ALTER TABLE statements between two designs"},
				{"diff", "Compare two schema snapshots"},
			},
		},
	}

	flags := []struct{ flag, desc string }{
		{"-h, --help", "Show help information"},
		{"-v, --version", "Show version information"},
	}

	renderCategoryHelp(
		"ddlkit - DDL Synthesis Toolkit",
		"Dialect-aware SQL DDL generation for PostgreSQL, MySQL, SQLite, and SQL Server",
		categories,
		flags,
	)
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "ddlkit",
		Short:   "Dialect-aware DDL synthesis and schema diffing",
		Long:    `ddlkit builds CREATE and ALTER statements from YAML spec files and compares schema snapshots. All output is SQL text; ddlkit never connects to a database.`,
		Version: version,
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			customHelp()
			return
		}
		fmt.Print(cmd.UsageString())
	})

	rootCmd.AddCommand(
		policyCmd(),
		triggerCmd(),
		functionCmd(),
		tableCmd(),
		alterCmd(),
		diffCmd(),
		genCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Error("error")+": "+err.Error())
		os.Exit(1)
	}
}

// CommandInfo is one row in the categorized help output.
type CommandInfo struct {
	Name string
	Desc string
}

// CommandCategory groups commands in the help output.
type CommandCategory struct {
	Title    string
	Commands []CommandInfo
}

// renderCategoryHelp prints the root help with commands grouped by
// category, styled through internal/cli.
func renderCategoryHelp(title, subtitle string, categories []CommandCategory, flags []struct{ flag, desc string }) {
	fmt.Println(cli.Header(title))
	fmt.Println(cli.Dim(subtitle))
	fmt.Println()

	for _, cat := range categories {
		fmt.Println(cli.Info(cat.Title))
		for _, c := range cat.Commands {
			fmt.Printf("  %-10s %s\n", cli.Highlight(c.Name), c.Desc)
		}
		fmt.Println()
	}

	fmt.Println(cli.Info("Flags"))
	for _, f := range flags {
		fmt.Printf("  %-18s %s\n", f.flag, f.desc)
	}
	fmt.Println()
	fmt.Println(cli.Dim(`Run "ddlkit <command> --help" for command details.`))
}
