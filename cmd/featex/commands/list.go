package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liberty-tools/featex/pkg/catalog"
	"github.com/liberty-tools/featex/pkg/feature"
)

var listVisibility string

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List features in display order",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listVisibility, "visibility", "", "only features with this visibility (public, protected, private, unknown)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	feats, err := selectFeatures(c, args)
	if err != nil {
		return err
	}
	feats, err = filterByVisibility(feats, listVisibility)
	if err != nil {
		return err
	}
	for _, f := range feats {
		fmt.Fprintln(cmd.OutOrStdout(), f.DisplayName())
	}
	return nil
}

// selectFeatures returns the whole catalog, or the pattern matches
// when one was given. Either way the result is in display order.
func selectFeatures(c *catalog.Catalog, args []string) ([]*feature.Feature, error) {
	if len(args) == 0 {
		return c.List(), nil
	}
	return c.Find(args[0])
}

// filterByVisibility drops features whose visibility is not the named
// one. An empty name keeps everything.
func filterByVisibility(feats []*feature.Feature, name string) ([]*feature.Feature, error) {
	if name == "" {
		return feats, nil
	}
	want := feature.ParseVisibility(name)
	if want == feature.VisibilityUnknown && !strings.EqualFold(name, "unknown") {
		return nil, fmt.Errorf("unknown visibility %q", name)
	}
	var out []*feature.Feature
	for _, f := range feats {
		if f.Visibility() == want {
			out = append(out, f)
		}
	}
	return out, nil
}
