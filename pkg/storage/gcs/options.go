package gcs

import (
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Option is a functor to pass optional parameters to the gcs store
type Option func(*gcs)

// Logger specifies a logger for this store
func Logger(logger *zap.Logger) Option {
	return func(g *gcs) {
		if logger != nil {
			g.l = logger
		}
	}
}

// ContentType sets the content type of written objects
func ContentType(contentType string) Option {
	return func(g *gcs) {
		g.contentType = contentType
	}
}

// ClientOptions appends options to the google storage clients, e.g. an endpoint for tests
func ClientOptions(opts ...option.ClientOption) Option {
	return func(g *gcs) {
		g.clientOpts = append(g.clientOpts, opts...)
	}
}
