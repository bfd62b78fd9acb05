package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
//
// Values apply to flags left empty on the command line.
type CLIConfig struct {
	Namespaces  string `json:"namespaces" yaml:"namespaces" mapstructure:"namespaces"`    // Path to the namespaces config
	Output      string `json:"output" yaml:"output" mapstructure:"output"`                // Destination of the index
	Credential  string `json:"credential" yaml:"credential" mapstructure:"credential"`    // Credentials to use for GCS
	GithubToken string `json:"githubToken" yaml:"githubToken" mapstructure:"githubToken"` // Token for the GitHub API
	GithubURL   string `json:"githubURL" yaml:"githubURL" mapstructure:"githubURL"`       // GitHub API endpoint
	S3Region    string `json:"s3Region" yaml:"s3Region" mapstructure:"s3Region"`          // Region of the S3 bucket
	S3Endpoint  string `json:"s3Endpoint" yaml:"s3Endpoint" mapstructure:"s3Endpoint"`    // S3 compatible endpoint
	LogLevel    string `json:"logLevel" yaml:"logLevel" mapstructure:"logLevel"`
}

func bindEnv() {
	// DSINDEX_<KEY>, plus the usual variables of the tools we talk to
	_ = viper.BindEnv("namespaces", "DSINDEX_NAMESPACES")
	_ = viper.BindEnv("output", "DSINDEX_OUTPUT")
	_ = viper.BindEnv("credential", "DSINDEX_CREDENTIAL", "GOOGLE_APPLICATION_CREDENTIALS")
	_ = viper.BindEnv("githubToken", "DSINDEX_GITHUB_TOKEN", "GITHUB_TOKEN")
	_ = viper.BindEnv("githubURL", "DSINDEX_GITHUB_URL")
	_ = viper.BindEnv("s3Region", "DSINDEX_S3_REGION", "AWS_REGION")
	_ = viper.BindEnv("s3Endpoint", "DSINDEX_S3_ENDPOINT")
	_ = viper.BindEnv("logLevel", "DSINDEX_LOGLEVEL")
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setParams(flags *flagsT) {
	setIfEmpty(&flags.export.namespaces, c.Namespaces)
	setIfEmpty(&flags.export.output, c.Output)
	setIfEmpty(&flags.gcs.credential, c.Credential)
	setIfEmpty(&flags.github.token, c.GithubToken)
	setIfEmpty(&flags.github.url, c.GithubURL)
	setIfEmpty(&flags.s3.region, c.S3Region)
	setIfEmpty(&flags.s3.endpoint, c.S3Endpoint)
	setIfEmpty(&flags.root.logLevel, c.LogLevel)
}

func setIfEmpty(flag *string, value string) {
	if *flag == "" {
		*flag = value
	}
}
