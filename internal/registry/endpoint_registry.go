// Package registry accumulates generated call metadata for one generation
// pass and enforces that every (group, method) pair is defined exactly once
// across the whole input tree.
package registry

import (
	"sort"

	"github.com/toyz/ipcgen/internal/models"
)

type methodKey struct {
	group  string
	method string
}

// EndpointRegistry collects endpoints for a single pass. It is created fresh
// by the run driver at pass start and discarded at pass end; it never removes
// entries while a pass is running.
type EndpointRegistry struct {
	endpoints map[string]map[string]models.Endpoint
	sources   map[methodKey][]string
}

// NewEndpointRegistry creates an empty registry for one pass
func NewEndpointRegistry() *EndpointRegistry {
	return &EndpointRegistry{
		endpoints: make(map[string]map[string]models.Endpoint),
		sources:   make(map[methodKey][]string),
	}
}

// Register records an endpoint under its (group, method) key and the class
// name that declared it. A second definition of the same key fails the pass:
// the returned DuplicateMethodError names every class that attempted the
// definition, and the registry keeps the original entry untouched.
func (r *EndpointRegistry) Register(group, method string, endpoint models.Endpoint, className string) error {
	key := methodKey{group: group, method: method}

	methods, exists := r.endpoints[group]
	if !exists {
		methods = make(map[string]models.Endpoint)
		r.endpoints[group] = methods
	}

	if _, exists := methods[method]; exists {
		sources := append(append([]string{}, r.sources[key]...), className)
		return models.NewDuplicateMethodError(group, method, sources)
	}

	methods[method] = endpoint
	r.sources[key] = append(r.sources[key], className)
	return nil
}

// Groups returns all registered group names in sorted order. Sorting makes
// emission independent of directory-walk order.
func (r *EndpointRegistry) Groups() []string {
	groups := make([]string, 0, len(r.endpoints))
	for group := range r.endpoints {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}

// Methods returns all method names registered under a group in sorted order
func (r *EndpointRegistry) Methods(group string) []string {
	methods := make([]string, 0, len(r.endpoints[group]))
	for method := range r.endpoints[group] {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// Get retrieves the endpoint registered under a (group, method) key
func (r *EndpointRegistry) Get(group, method string) (models.Endpoint, bool) {
	endpoint, exists := r.endpoints[group][method]
	return endpoint, exists
}

// Sources returns the provenance list for a (group, method) key: every class
// name that defined it, in discovery order
func (r *EndpointRegistry) Sources(group, method string) []string {
	return r.sources[methodKey{group: group, method: method}]
}

// GroupCount returns the number of distinct groups registered
func (r *EndpointRegistry) GroupCount() int {
	return len(r.endpoints)
}

// MethodCount returns the total number of endpoints registered
func (r *EndpointRegistry) MethodCount() int {
	count := 0
	for _, methods := range r.endpoints {
		count += len(methods)
	}
	return count
}
