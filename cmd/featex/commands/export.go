package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/liberty-tools/featex/pkg/feature"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [pattern]",
	Short: "Export features as JSON or YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, yaml)")
	rootCmd.AddCommand(exportCmd)
}

// featureRecord is the serialized form of one feature.
type featureRecord struct {
	FullName          string   `json:"fullName" yaml:"fullName"`
	ShortName         string   `json:"shortName,omitempty" yaml:"shortName,omitempty"`
	Name              string   `json:"name" yaml:"name"`
	Visibility        string   `json:"visibility" yaml:"visibility"`
	AutoFeature       bool     `json:"autoFeature" yaml:"autoFeature"`
	HasContent        bool     `json:"hasContent" yaml:"hasContent"`
	ContainedFeatures []string `json:"containedFeatures,omitempty" yaml:"containedFeatures,omitempty"`
}

func recordOf(f *feature.Feature) featureRecord {
	short, _ := f.ShortName()
	return featureRecord{
		FullName:          f.FullName(),
		ShortName:         short,
		Name:              f.Name(),
		Visibility:        f.Visibility().String(),
		AutoFeature:       f.IsAutoFeature(),
		HasContent:        f.HasContent(),
		ContainedFeatures: f.ContainedFeatures(),
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	feats, err := selectFeatures(c, args)
	if err != nil {
		return err
	}
	records := make([]featureRecord, 0, len(feats))
	for _, f := range feats {
		records = append(records, recordOf(f))
	}

	var out []byte
	switch exportFormat {
	case "json":
		if out, err = json.MarshalIndent(records, "", "  "); err != nil {
			return err
		}
		out = append(out, '\n')
	case "yaml":
		if out, err = yaml.Marshal(records); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
