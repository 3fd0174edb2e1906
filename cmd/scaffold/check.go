// cmd/scaffold/check.go
package main

import (
	"fmt"

	"github.com/gregvogt/Scaffold/internal/template"
	"github.com/gregvogt/Scaffold/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a template without prompting or writing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := loadTemplate(filenameFlag)
		if err != nil {
			return err
		}

		ui.Header(fmt.Sprintf("Template: %s", filenameFlag))

		fmt.Printf("\n  %-24s %-22s %-9s %s\n", "KEY", "DEFAULT", "QUESTION", "PATTERN")
		fmt.Printf("  %-24s %-22s %-9s %s\n", "---", "-------", "--------", "-------")
		for _, v := range vars {
			def := v.Default
			if n, ok := template.RandomLength(v.Default); ok {
				def = fmt.Sprintf("(random, %d chars)", n)
			}
			question := "-"
			if v.Question != "" {
				question = "yes"
			}
			pattern := "-"
			if v.Pattern != "" {
				pattern = v.Pattern
			}
			fmt.Printf("  %-24s %-22s %-9s %s\n", v.Key, def, question, pattern)
		}
		fmt.Println()
		ui.Success(fmt.Sprintf("%d variables parsed", len(vars)))

		if debugFlag {
			return dumpVariables(vars)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
