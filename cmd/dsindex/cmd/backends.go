package cmd

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/oneconcern/dsindex/pkg/community"
	"github.com/oneconcern/dsindex/pkg/dlogger"
	"github.com/oneconcern/dsindex/pkg/repopath"
	"github.com/oneconcern/dsindex/pkg/repopath/github"
	localrepo "github.com/oneconcern/dsindex/pkg/repopath/localfs"
	"github.com/oneconcern/dsindex/pkg/storage"
	"github.com/oneconcern/dsindex/pkg/storage/gcs"
	"github.com/oneconcern/dsindex/pkg/storage/localfs"
	"github.com/oneconcern/dsindex/pkg/storage/sthree"
	"go.uber.org/zap"
)

func newLogger() (*zap.Logger, error) {
	return dlogger.GetLogger(logLevel(), dsFlags.root.logFormat)
}

// newResolver sends file:// locations to the local file system and everything else to GitHub
func newResolver(ctx context.Context, logger *zap.Logger) (repopath.Resolver, error) {
	client, err := github.New(ctx,
		github.Token(dsFlags.github.token),
		github.BaseURL(dsFlags.github.url),
		github.Logger(logger),
	)
	if err != nil {
		return nil, err
	}
	return repopath.ByScheme(client.Resolve, map[string]repopath.Resolver{
		github.Scheme:    client.Resolve,
		localrepo.Scheme: localrepo.Resolver(appFs),
	}), nil
}

// newStore returns the store and the key of the index for a destination URI
func newStore(ctx context.Context, dest string, logger *zap.Logger) (storage.Store, string, error) {
	loc, err := storage.ParseURI(dest)
	if err != nil {
		return nil, "", err
	}

	var store storage.Store
	switch loc.Scheme {
	case storage.SchemeGCS:
		store, err = gcs.New(ctx, loc.Bucket, dsFlags.gcs.credential, gcs.Logger(logger))
	case storage.SchemeS3:
		cfg := aws.NewConfig()
		if dsFlags.s3.region != "" {
			cfg = cfg.WithRegion(dsFlags.s3.region)
		}
		if dsFlags.s3.endpoint != "" {
			cfg = cfg.WithEndpoint(dsFlags.s3.endpoint).WithS3ForcePathStyle(true)
		}
		store, err = sthree.New(sthree.Bucket(loc.Bucket), sthree.AWSConfig(cfg), sthree.Logger(logger))
	default:
		store = localfs.New(appFs)
	}
	if err != nil {
		return nil, "", err
	}
	return storage.Instrument(logger, store), loc.Key, nil
}

func newExporter(ctx context.Context, logger *zap.Logger) (*community.Exporter, error) {
	resolver, err := newResolver(ctx, logger)
	if err != nil {
		return nil, err
	}
	return community.NewExporter(
		community.Logger(logger),
		community.Resolver(resolver),
		community.ModuleExt(dsFlags.export.moduleExt),
	), nil
}
