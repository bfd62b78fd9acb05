package repopath

import (
	"fmt"
	"strings"
)

// Resolver builds a Path from a repository location, as found in the namespaces config
type Resolver func(location string) (Path, error)

// ByScheme dispatches locations prefixed with "<scheme>://" to the matching resolver.
//
// Locations without a registered scheme go to def. The location is passed unaltered.
func ByScheme(def Resolver, schemes map[string]Resolver) Resolver {
	return func(location string) (Path, error) {
		if idx := strings.Index(location, "://"); idx > 0 {
			if resolve, ok := schemes[location[:idx]]; ok {
				return resolve(location)
			}
		}
		if def == nil {
			return nil, fmt.Errorf("no resolver for location %q", location)
		}
		return def(location)
	}
}
