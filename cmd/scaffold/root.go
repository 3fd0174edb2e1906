// cmd/scaffold/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	filenameFlag string
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:          "scaffold",
	Short:        "Generate a .env file from an annotated template",
	Long:         "Scaffold reads a .env template annotated with Markdown comments, asks for each value, and writes the finished environment file.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filenameFlag, "filename", "f", ".env.template", "path to the .env template file")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "dump the parsed template as YAML")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print scaffold version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scaffold", version)
	},
}
