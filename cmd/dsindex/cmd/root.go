// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dsindex",
	Short: "dsindex indexes community datasets",
	Long: `dsindex indexes community datasets hosted in source-control repositories.

Namespaces and the repository locations of their datasets are declared in a TOML file:

  [Namespaces]
  <namespace0> = '<owner0>/<github_repo0>/tree/<ref>/<path/to/dataset/dir>'
  <namespace1> = 'file:///path/to/a/local/checkout'

Every directory <dataset>/ holding a <dataset>.py module under those locations
is recorded in a tab-separated index, stored locally, on GCS (gs://) or on S3 (s3://).
`,
}

var cliConfig *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevelFlag(rootCmd)
	addLogFormatFlag(rootCmd)
	addGithubTokenFlag(rootCmd)
	addGithubURLFlag(rootCmd)
	addCredentialFlag(rootCmd)
	addS3RegionFlag(rootCmd)
	addS3EndpointFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if os.Getenv("DSINDEX_CONFIG") != "" {
		// Use config file from the env.
		viper.SetConfigFile(os.Getenv("DSINDEX_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.dsindex")
		viper.AddConfigPath("/etc/dsindex")
		viper.SetConfigName("dsindex")
	}

	viper.SetEnvPrefix("dsindex")
	bindEnv()
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	cliConfig, err = newConfig()
	if err != nil {
		wrapFatalln("failed to read config", err)
		return
	}
	cliConfig.setParams(&dsFlags)
}
