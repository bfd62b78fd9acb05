// Copyright © 2018 One Concern

package gcs

import (
	"context"
	"io"

	gcsStorage "cloud.google.com/go/storage"
	"github.com/oneconcern/dsindex/pkg/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// DefaultContentType of index objects
const DefaultContentType = "text/tab-separated-values"

type gcs struct {
	client         *gcsStorage.Client
	readOnlyClient *gcsStorage.Client
	bucket         string
	contentType    string
	clientOpts     []option.ClientOption
	l              *zap.Logger
}

// New builds a store on a GCS bucket.
//
// An empty credentialFile falls back to the application default credentials.
func New(ctx context.Context, bucket, credentialFile string, opts ...Option) (storage.Store, error) {
	googleStore := &gcs{
		bucket:      bucket,
		contentType: DefaultContentType,
		l:           zap.NewNop(),
	}
	for _, apply := range opts {
		apply(googleStore)
	}
	if credentialFile != "" {
		googleStore.clientOpts = append(googleStore.clientOpts, option.WithCredentialsFile(credentialFile))
	}

	var err error
	googleStore.readOnlyClient, err = gcsStorage.NewClient(ctx,
		append([]option.ClientOption{option.WithScopes(gcsStorage.ScopeReadOnly)}, googleStore.clientOpts...)...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	googleStore.client, err = gcsStorage.NewClient(ctx,
		append([]option.ClientOption{option.WithScopes(gcsStorage.ScopeReadWrite)}, googleStore.clientOpts...)...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return googleStore, nil
}

func (g *gcs) String() string {
	return "gcs://" + g.bucket
}

func (g *gcs) Has(ctx context.Context, objectName string) (bool, error) {
	_, err := g.readOnlyClient.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err != nil {
		if err == gcsStorage.ErrObjectNotExist {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

// NewWriter replaces the object. The upload is committed on Close.
func (g *gcs) NewWriter(ctx context.Context, objectName string) (io.WriteCloser, error) {
	g.l.Debug("gcs new writer", zap.String("bucket", g.bucket), zap.String("object", objectName))
	writer := g.client.Bucket(g.bucket).Object(objectName).NewWriter(ctx)
	writer.ContentType = g.contentType
	return &gcsWriter{Writer: writer}, nil
}

type gcsWriter struct {
	*gcsStorage.Writer
}

func (w *gcsWriter) Write(p []byte) (int, error) {
	n, err := w.Writer.Write(p)
	return n, toSentinelErrors(err)
}

func (w *gcsWriter) Close() error {
	return toSentinelErrors(w.Writer.Close())
}
