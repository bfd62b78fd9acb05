package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/dsindex/pkg/community"
	"github.com/oneconcern/dsindex/pkg/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List community datasets without exporting them",
	Long:    `Lists the datasets of every namespace declared in the config. Nothing is written.`,
	Aliases: []string{"ls"},
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

		datasets, err := exporter.Find(ctx, namespaces)
		if err != nil {
			wrapFatalln("failed to list community datasets", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), datasetsTable(datasets))
	},
}

func datasetsTable(datasets community.DatasetDict) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 120
	table.AddRow("NAMESPACE", "NAME", "PATH")
	for _, ns := range datasets {
		for _, dataset := range ns.Datasets {
			table.AddRow(ns.Namespace, dataset.Name(), color.HiBlackString(dataset.String()))
		}
	}
	return table
}

func init() {
	addNamespacesFlag(listCmd)
	addModuleExtFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}
