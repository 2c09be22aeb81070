package ejbmeta

import (
	"maps"
	"sync"
	"time"

	"github.com/zero-day-ai/ejbmeta/attrib"
	"github.com/zero-day-ai/ejbmeta/naming"
	"github.com/zero-day-ai/ejbmeta/store"
)

// MethodMetadata is the resolved metadata of one method of one interface
// view.
type MethodMetadata struct {
	Interface       attrib.InterfaceType
	Method          *attrib.Method
	Transaction     attrib.TxAttribute
	ActivitySession attrib.ActivitySessionAttribute
	Permission      attrib.Permission
	Asynchronous    bool

	// Lock is nil unless the bean is a singleton with container-managed
	// concurrency.
	Lock *attrib.LockType

	// AccessTimeout is in internal form (see attrib.WaitForever and
	// attrib.NoWait). It is nil unless the bean is a singleton or stateful
	// bean with container-managed concurrency.
	AccessTimeout *int64
}

// BeanMetadata is everything Assemble resolved for one bean.
//
// The generated class names and hash generation change when Locate has to
// upgrade the hash suffix, so they are read through methods.
type BeanMetadata struct {
	AssemblyID string
	Module     string
	Bean       string
	Kind       attrib.BeanKind
	Methods    []MethodMetadata
	HasAsync   bool

	// StatefulTimeout is set for stateful beans that configure one, in
	// internal form.
	StatefulTimeout *int64

	namer *naming.Namer

	mu         sync.RWMutex
	names      map[naming.Role]string
	generation naming.HashGeneration
}

// Name returns the generated class name for role.
func (m *BeanMetadata) Name(role naming.Role) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name, ok := m.names[role]
	return name, ok
}

// Names returns a copy of every generated class name by role.
func (m *BeanMetadata) Names() map[naming.Role]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.names)
}

// HashGeneration returns the hash generation the names were built with.
func (m *BeanMetadata) HashGeneration() naming.HashGeneration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// Method returns the metadata of the method with the given key in view.
// Keys are built by attrib.MethodKey.
func (m *BeanMetadata) Method(view attrib.InterfaceType, key string) (MethodMetadata, bool) {
	for _, mm := range m.Methods {
		if mm.Interface == view && mm.Method != nil && mm.Method.Key() == key {
			return mm, true
		}
	}
	return MethodMetadata{}, false
}

func (m *BeanMetadata) setNames(names map[naming.Role]string, g naming.HashGeneration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.names = names
	m.generation = g
}

// record returns the persisted form of the naming state.
func (m *BeanMetadata) record() *store.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make(map[string]string, len(m.names))
	for role, name := range m.names {
		names[string(role)] = name
	}
	return &store.Record{
		Key:            store.Key(m.Module, m.Bean),
		HashGeneration: m.generation,
		Names:          names,
		AssemblyID:     m.AssemblyID,
		UpdatedAt:      time.Now().UTC(),
	}
}
