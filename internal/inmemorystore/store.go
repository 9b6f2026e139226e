// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the nodestore.Store interface.
//
// It uses sync.Map: the key space (the modules of one plan) is fixed before
// the build starts while values change constantly from many workers.
package inmemorystore

import (
	"context"
	"sync"

	"github.com/specialistvlad/modgraph/internal/node"
	"github.com/specialistvlad/modgraph/internal/nodestore"
)

// Store is an in-memory nodestore.Store.
type Store struct {
	states  sync.Map // module name -> node.Status
	outputs sync.Map // module name -> any
	errors  sync.Map // module name -> error
}

var _ nodestore.Store = (*Store)(nil)

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{}
}

// SetStatus implements nodestore.Store.
func (s *Store) SetStatus(_ context.Context, module string, status node.Status) error {
	s.states.Store(module, status)
	return nil
}

// GetStatus implements nodestore.Store.
func (s *Store) GetStatus(_ context.Context, module string) (node.Status, error) {
	status, ok := s.states.Load(module)
	if !ok {
		return node.StatusPending, nil
	}
	return status.(node.Status), nil
}

// SetOutput implements nodestore.Store.
func (s *Store) SetOutput(_ context.Context, module string, output any) error {
	s.outputs.Store(module, output)
	return nil
}

// GetOutput implements nodestore.Store.
func (s *Store) GetOutput(_ context.Context, module string) (any, error) {
	output, ok := s.outputs.Load(module)
	if !ok {
		return nil, nil
	}
	return output, nil
}

// SetError implements nodestore.Store.
func (s *Store) SetError(_ context.Context, module string, moduleErr error) error {
	s.errors.Store(module, moduleErr)
	return nil
}

// GetError implements nodestore.Store.
func (s *Store) GetError(_ context.Context, module string) (error, error) {
	err, ok := s.errors.Load(module)
	if !ok {
		return nil, nil
	}
	return err.(error), nil
}
