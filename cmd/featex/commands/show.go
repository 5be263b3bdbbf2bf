package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <feature>",
	Short: "Show one feature's identity details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	f, err := c.Resolve(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Full name:    %s\n", f.FullName())
	if short, ok := f.ShortName(); ok {
		fmt.Fprintf(w, "Short name:   %s\n", short)
	}
	fmt.Fprintf(w, "Simple name:  %s\n", f.SimpleName())
	fmt.Fprintf(w, "Display name: %s\n", f.DisplayName())
	fmt.Fprintf(w, "Visibility:   %s\n", f.Visibility())
	fmt.Fprintf(w, "Auto feature: %v\n", f.IsAutoFeature())
	fmt.Fprintf(w, "Has content:  %v\n", f.HasContent())
	if contained := f.ContainedFeatures(); len(contained) > 0 {
		fmt.Fprintf(w, "Contains:     %s\n", strings.Join(contained, ", "))
	}
	return nil
}
