// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	"github.com/oneconcern/dsindex/pkg/community"
	"github.com/oneconcern/dsindex/pkg/dlogger"
	"github.com/spf13/cobra"
)

const (
	// namespacesConfigName is looked up next to the executable when no config is given
	namespacesConfigName = "community-datasets.toml"

	// defaultOutput is the well-known location of the community datasets index
	defaultOutput = "gs://tfds-data/community-datasets-list.tsv"
)

type flagsT struct {
	root struct {
		logLevel  string
		logFormat string
	}
	export struct {
		namespaces string
		output     string
		moduleExt  string
	}
	github struct {
		token string
		url   string
	}
	gcs struct {
		credential string
	}
	s3 struct {
		region   string
		endpoint string
	}
	doc struct {
		docTarget string
	}
}

var dsFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&dsFlags.root.logLevel, logLevel, "",
		`The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug (defaults to "info")`)
	return logLevel
}

func addLogFormatFlag(cmd *cobra.Command) string {
	logFormat := "logformat"
	cmd.PersistentFlags().StringVar(&dsFlags.root.logFormat, logFormat, dlogger.FormatConsole,
		"The encoding of logs: console or json")
	return logFormat
}

func addGithubTokenFlag(cmd *cobra.Command) string {
	token := "github-token"
	cmd.PersistentFlags().StringVar(&dsFlags.github.token, token, "",
		"A GitHub token to authenticate API calls (defaults to $GITHUB_TOKEN)")
	return token
}

func addGithubURLFlag(cmd *cobra.Command) string {
	u := "github-url"
	cmd.PersistentFlags().StringVar(&dsFlags.github.url, u, "",
		"The GitHub API endpoint, for GitHub Enterprise (defaults to https://api.github.com/)")
	return u
}

func addCredentialFlag(cmd *cobra.Command) string {
	credential := "credential"
	cmd.PersistentFlags().StringVar(&dsFlags.gcs.credential, credential, "",
		"The path to a GCS credentials file (defaults to application default credentials)")
	return credential
}

func addS3RegionFlag(cmd *cobra.Command) string {
	region := "s3-region"
	cmd.PersistentFlags().StringVar(&dsFlags.s3.region, region, "", "The region of the S3 bucket (defaults to $AWS_REGION)")
	return region
}

func addS3EndpointFlag(cmd *cobra.Command) string {
	endpoint := "s3-endpoint"
	cmd.PersistentFlags().StringVar(&dsFlags.s3.endpoint, endpoint, "",
		"An S3 compatible endpoint, e.g. a minio server. Buckets are then addressed with path-style URLs")
	return endpoint
}

func addNamespacesFlag(cmd *cobra.Command) string {
	namespaces := "config"
	cmd.Flags().StringVar(&dsFlags.export.namespaces, namespaces, "",
		"The TOML file declaring the namespaces to index (defaults to "+namespacesConfigName+" next to the executable)")
	return namespaces
}

func addOutputFlag(cmd *cobra.Command) string {
	output := "output"
	cmd.Flags().StringVar(&dsFlags.export.output, output, "",
		"The destination of the index: a file path, file://<path>, gs://<bucket>/<key> or s3://<bucket>/<key> (defaults to "+defaultOutput+")")
	return output
}

func addModuleExtFlag(cmd *cobra.Command) string {
	ext := "module-ext"
	cmd.Flags().StringVar(&dsFlags.export.moduleExt, ext, community.DefaultModuleExt,
		"The extension of the module file which marks a dataset directory")
	return ext
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target-dir"
	cmd.Flags().StringVar(&dsFlags.doc.docTarget, target, ".", "The target directory for generated documentation")
	return target
}

func namespacesPath() string {
	if dsFlags.export.namespaces != "" {
		return dsFlags.export.namespaces
	}
	exe, err := os.Executable()
	if err != nil {
		return namespacesConfigName
	}
	return filepath.Join(filepath.Dir(exe), namespacesConfigName)
}

func outputDestination() string {
	if dsFlags.export.output != "" {
		return dsFlags.export.output
	}
	return defaultOutput
}

func logLevel() string {
	if dsFlags.root.logLevel != "" {
		return dsFlags.root.logLevel
	}
	return dlogger.LogLevelInfo
}
