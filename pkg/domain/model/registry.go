package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Unit is an independently deployable service directory within the monorepo
type Unit struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Registry is the fixed mapping from unit name to its path prefix, plus the
// shared-code prefix whose modification forces full fan-out. Unit order is
// the declaration order and is kept stable so executor logs are reproducible.
type Registry struct {
	Units        []Unit `yaml:"units"`
	SharedPrefix string `yaml:"shared_prefix"`
}

// DefaultRegistry returns the registry for the monorepo layout this tool was
// built for: four services under services/, shared code under shared/.
func DefaultRegistry() *Registry {
	return &Registry{
		Units: []Unit{
			{Name: "api_gateway", Path: "services/api_gateway/"},
			{Name: "user_service", Path: "services/user_service/"},
			{Name: "product_service", Path: "services/product_service/"},
			{Name: "notification_service", Path: "services/notification_service/"},
		},
		SharedPrefix: "shared/",
	}
}

// Validate checks the registry is usable: at least one unit, no empty or
// duplicate names, no empty path prefixes.
func (r *Registry) Validate() error {
	if len(r.Units) == 0 {
		return goerr.New("unit registry is empty")
	}

	seen := make(map[string]struct{}, len(r.Units))
	for _, u := range r.Units {
		if u.Name == "" {
			return goerr.New("unit with empty name", goerr.V("path", u.Path))
		}
		if u.Path == "" {
			return goerr.New("unit with empty path prefix", goerr.V("unit", u.Name))
		}
		if _, ok := seen[u.Name]; ok {
			return goerr.New("duplicate unit name", goerr.V("unit", u.Name))
		}
		seen[u.Name] = struct{}{}
	}

	return nil
}

// Names returns unit names in registry order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Units))
	for _, u := range r.Units {
		names = append(names, u.Name)
	}
	return names
}

// Lookup returns the unit with the given name
func (r *Registry) Lookup(name string) (Unit, bool) {
	for _, u := range r.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// String renders the registry as "name(prefix), ..." for logs
func (r *Registry) String() string {
	var sb strings.Builder
	for i, u := range r.Units {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(u.Name)
		sb.WriteString("(")
		sb.WriteString(u.Path)
		sb.WriteString(")")
	}
	return sb.String()
}
