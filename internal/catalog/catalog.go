package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// NodeKindID identifies a node kind in the catalog.
type NodeKindID int

// NamingID identifies a naming in the catalog.
type NamingID int

// Catalog resolves node kinds and namings by name.
type Catalog interface {
	// LookupNode returns the identifier of a node kind and panics if the
	// name is unknown.
	LookupNode(name string) NodeKindID
	// LookupNaming returns the identifier of a naming and panics if the
	// name is unknown.
	LookupNaming(name string) NamingID
	// NodeName returns the name a node kind identifier was registered under.
	NodeName(id NodeKindID) string
	// NamingName returns the name a naming identifier was registered under.
	NamingName(id NamingID) string
}

// Store is an in-memory Catalog. Identifiers are assigned densely in
// registration order. It is read-only once built.
type Store struct {
	nodes       map[string]NodeKindID
	nodeNames   []string
	namings     map[string]NamingID
	namingNames []string
}

// New builds a catalog from node kind and naming name lists. Duplicate names
// keep their first identifier.
func New(nodes, namings []string) *Store {
	s := &Store{
		nodes:   make(map[string]NodeKindID, len(nodes)),
		namings: make(map[string]NamingID, len(namings)),
	}
	for _, name := range nodes {
		if _, ok := s.nodes[name]; ok {
			continue
		}
		s.nodes[name] = NodeKindID(len(s.nodeNames))
		s.nodeNames = append(s.nodeNames, name)
	}
	for _, name := range namings {
		if _, ok := s.namings[name]; ok {
			continue
		}
		s.namings[name] = NamingID(len(s.namingNames))
		s.namingNames = append(s.namingNames, name)
	}
	return s
}

// Builtin returns a catalog holding every name the engine references.
func Builtin() *Store {
	return New(RequiredNodes(), RequiredNamings())
}

// LookupNode implements Catalog.
func (s *Store) LookupNode(name string) NodeKindID {
	id, ok := s.nodes[name]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown node kind %q", name))
	}
	return id
}

// LookupNaming implements Catalog.
func (s *Store) LookupNaming(name string) NamingID {
	id, ok := s.namings[name]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown naming %q", name))
	}
	return id
}

// NodeName implements Catalog.
func (s *Store) NodeName(id NodeKindID) string {
	return s.nodeNames[id]
}

// NamingName implements Catalog.
func (s *Store) NamingName(id NamingID) string {
	return s.namingNames[id]
}

// Len returns the number of node kinds and namings registered.
func (s *Store) Len() (nodes, namings int) {
	return len(s.nodeNames), len(s.namingNames)
}

// Validate performs a strict parity check: every node kind and naming the
// engine may reference must be present in the catalog.
func (s *Store) Validate() error {
	var errs []error
	missingNodes := missing(RequiredNodes(), func(name string) bool {
		_, ok := s.nodes[name]
		return ok
	})
	for _, name := range missingNodes {
		errs = append(errs, fmt.Errorf("node kind %q is referenced by the engine but not declared", name))
	}
	missingNamings := missing(RequiredNamings(), func(name string) bool {
		_, ok := s.namings[name]
		return ok
	})
	for _, name := range missingNamings {
		errs = append(errs, fmt.Errorf("naming %q is referenced by the engine but not declared", name))
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func missing(required []string, has func(string) bool) []string {
	var out []string
	for _, name := range required {
		if !has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
