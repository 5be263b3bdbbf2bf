package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liberty-tools/featex/pkg/feature"
)

var depsTransitive bool

var depsCmd = &cobra.Command{
	Use:   "deps <feature>",
	Short: "Show a feature's contained features",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeps,
}

func init() {
	depsCmd.Flags().BoolVarP(&depsTransitive, "transitive", "t", false, "resolve the full dependency closure")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	f, err := c.Resolve(args[0])
	if err != nil {
		return err
	}

	var deps []*feature.Feature
	var missing []string
	if depsTransitive {
		deps, missing = c.TransitiveDependencies(f)
	} else {
		deps, missing = c.Dependencies(f)
	}

	w := cmd.OutOrStdout()
	for _, dep := range deps {
		fmt.Fprintln(w, dep.DisplayName())
	}
	for _, name := range missing {
		fmt.Fprintf(w, "%s (no descriptor)\n", name)
	}
	return nil
}
