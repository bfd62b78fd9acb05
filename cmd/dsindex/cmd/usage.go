package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// usagePrepender heads every generated page with the title of its command and the tool version
func usagePrepender(filename string) string {
	title := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " ")
	return fmt.Sprintf("# %s\n\n**Version: %s**\n\n", title, NewVersionInfo().Version)
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Generates markdown documentation for dsindex commands",
	Long: `Writes one markdown page per dsindex command into the target directory.

The directory is created when missing.`,
	Example: `dsindex usage --target-dir docs/usage`,
	Run: func(cmd *cobra.Command, args []string) {
		target := dsFlags.doc.docTarget
		if err := os.MkdirAll(target, 0755); err != nil {
			wrapFatalln("cannot create documentation directory", err)
			return
		}
		if err := doc.GenMarkdownTreeCustom(rootCmd, target, usagePrepender, func(s string) string { return s }); err != nil {
			wrapFatalln("failed to generate usage documentation", err)
			return
		}
		infoLogger.Printf("usage documentation written to %s", target)
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
	addTargetFlag(usageCmd)
}
