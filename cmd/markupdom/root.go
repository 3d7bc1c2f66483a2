package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "markupdom",
	Short: "Strict markup parser",
	Long:  "markupdom parses well-formed HTML-like markup into a node tree and prints or lints it.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Maximum element nesting depth (0 = unbounded)")
	rootCmd.PersistentFlags().Bool("ignore-root-comments", false, "Ignore top-level comments when looking for the root node")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag("ignore_root_comments", rootCmd.PersistentFlags().Lookup("ignore-root-comments"))
}

func initConfig() {
	viper.SetEnvPrefix("MARKUPDOM")
	viper.AutomaticEnv()
}
