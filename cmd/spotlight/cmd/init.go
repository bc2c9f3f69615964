package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/spotlight/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the example configuration",
	Long: `Write a config file holding the storymaster.ai landing page title:
a grey base layer, a rainbow highlight layer, a 120px spotlight with a
40px soft edge, and the page's tagline and footer.

Edit the file afterwards to change the title and colours.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := configPath()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Preset()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to set your title and colours")
	fmt.Fprintln(out, "  2. Run 'spotlight' and move the mouse over the title")
	fmt.Fprintln(out, "  3. Run 'spotlight geometry' to inspect the mask")

	return nil
}
