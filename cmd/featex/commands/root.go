// Package commands implements the featex CLI commands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liberty-tools/featex/pkg/catalog"
)

var rootCmd = &cobra.Command{
	Use:          "featex",
	Short:        "Inspect Liberty feature descriptors",
	Long:         "Featex reads the feature descriptors of an Open Liberty install and answers identity, visibility, and dependency queries over them.",
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .featex.yaml)")
	rootCmd.PersistentFlags().String("root", "", "feature directory or Liberty install root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".featex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("FEATEX")
	viper.AutomaticEnv()

	// It's fine if no config file is found; flags and env suffice.
	_ = viper.ReadInConfig()
}

// loadCatalog builds the catalog from the configured root. An install
// root is accepted in place of the feature directory itself.
func loadCatalog() (*catalog.Catalog, error) {
	root := viper.GetString("root")
	if root == "" {
		return nil, errors.New("feature directory required (--root, FEATEX_ROOT, or config)")
	}
	if sub := catalog.DefaultRoot(root); catalog.ValidRoot(sub) {
		root = sub
	}
	return catalog.Load(root, newLogger())
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
