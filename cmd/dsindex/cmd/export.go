package cmd

import (
	"context"

	"github.com/oneconcern/dsindex/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the index of community datasets",
	Long: `Lists the datasets of every namespace declared in the config and saves their locations
as a tab-separated index (namespace, name, path).

Any previous index at the destination is replaced. The export stops at the first namespace
which cannot be listed, and then nothing is written.`,
	Example: `# Export to the default location
dsindex export --config community-datasets.toml

# Export to a local file
dsindex export --config community-datasets.toml --output /tmp/community-datasets-list.tsv`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger, err := newLogger()
		if err != nil {
			wrapFatalln("failed to set up logger", err)
			return
		}
		defer func() { _ = logger.Sync() }()

		namespaces, err := config.LoadNamespaces(appFs, namespacesPath())
		if err != nil {
			wrapFatalln("failed to load namespaces", err)
			return
		}

		exporter, err := newExporter(ctx, logger)
		if err != nil {
			wrapFatalln("failed to set up repository access", err)
			return
		}

		dest := outputDestination()
		store, key, err := newStore(ctx, dest, logger)
		if err != nil {
			wrapFatalln("failed to set up index destination "+dest, err)
			return
		}

		datasets, err := exporter.Export(ctx, namespaces, store, key)
		if err != nil {
			wrapFatalln("failed to export community datasets", err)
			return
		}
		logger.Info("community datasets exported",
			zap.String("destination", dest),
			zap.Int("namespaces", len(datasets)),
			zap.Int("datasets", datasets.Len()),
		)
	},
}

func init() {
	addNamespacesFlag(exportCmd)
	addOutputFlag(exportCmd)
	addModuleExtFlag(exportCmd)
	rootCmd.AddCommand(exportCmd)
}
