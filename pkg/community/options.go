package community

import (
	"github.com/oneconcern/dsindex/pkg/repopath"
	"go.uber.org/zap"
)

// DefaultModuleExt is the extension of the module file expected in a dataset directory
const DefaultModuleExt = ".py"

// Option is a functor to pass optional parameters to the exporter
type Option func(*Exporter)

// Logger specifies a logger for the exporter
func Logger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.l = logger
		}
	}
}

// Resolver tells how to build repository paths from namespace locations
func Resolver(resolver repopath.Resolver) Option {
	return func(e *Exporter) {
		if resolver != nil {
			e.resolve = resolver
		}
	}
}

// ModuleExt overrides the extension of the module file which marks a dataset directory
func ModuleExt(ext string) Option {
	return func(e *Exporter) {
		if ext != "" {
			e.moduleExt = ext
		}
	}
}
