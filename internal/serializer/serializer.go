// Package serializer renders entities into plain maps following explicit views.
//
// A View whitelists the scalar fields to emit and, per relation, the child view
// to expand. Rendering never walks the object graph on its own: only relations
// named in a view are visited, nesting is capped at MaxDepth, and a relation
// leading back to a resource kind already on the current path is rejected, so
// bidirectional relations such as restaurant <-> pizza cannot loop.
package serializer

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// MaxDepth is the deepest relation hop a view may expand (root is depth 0)
const MaxDepth = 2

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownRelation = errors.New("unknown relation")
	ErrDepthExceeded   = errors.New("view exceeds maximum depth")
	ErrCycle           = errors.New("view expands a relation back to its origin")
	ErrNotSerializable = errors.New("relation value is not serializable")
)

// Serializable is implemented by entities that can be rendered through a View
type Serializable interface {
	// ResourceName identifies the entity kind, used for cycle detection
	ResourceName() string
	// Field returns a scalar value by API name
	Field(name string) (any, bool)
	// Relation returns a related Serializable, a slice of them, or a nil pointer
	Relation(name string) (any, bool)
}

// View selects the fields and relations rendered for one entity
type View struct {
	Only    []string
	Include map[string]View
}

// Depth returns how many relation hops the view expands
func (v View) Depth() int {
	deepest := 0
	for _, child := range v.Include {
		deepest = max(deepest, child.Depth()+1)
	}
	return deepest
}

// Serialize renders a single entity
func Serialize(s Serializable, v View) (map[string]any, error) {
	return render(s, v, nil)
}

// SerializeList renders every item with the same view. The result is never nil.
func SerializeList[T Serializable](items []T, v View) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, err := render(item, v, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func render(s Serializable, v View, path []string) (map[string]any, error) {
	kind := s.ResourceName()
	if slices.Contains(path, kind) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(path, " -> "), kind)
	}
	if len(path) > MaxDepth {
		return nil, fmt.Errorf("%w: %s -> %s", ErrDepthExceeded, strings.Join(path, " -> "), kind)
	}
	path = append(slices.Clip(path), kind)

	out := make(map[string]any, len(v.Only)+len(v.Include))
	for _, name := range v.Only {
		value, ok := s.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, kind, name)
		}
		out[name] = value
	}

	for name, child := range v.Include {
		related, ok := s.Relation(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownRelation, kind, name)
		}
		rendered, err := renderRelation(related, child, path)
		if err != nil {
			return nil, err
		}
		out[name] = rendered
	}
	return out, nil
}

// renderRelation expands a to-one or to-many relation value
func renderRelation(related any, v View, path []string) (any, error) {
	if related == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(related)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
	case reflect.Slice:
		items := make([]map[string]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, ok := asSerializable(rv.Index(i))
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrNotSerializable, rv.Index(i).Type())
			}
			if item == nil {
				continue
			}
			m, err := render(item, v, path)
			if err != nil {
				return nil, err
			}
			items = append(items, m)
		}
		return items, nil
	}

	s, ok := related.(Serializable)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSerializable, related)
	}
	return render(s, v, path)
}

// asSerializable returns nil, true for nil pointer elements
func asSerializable(v reflect.Value) (Serializable, bool) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, true
	}
	if s, ok := v.Interface().(Serializable); ok {
		return s, true
	}
	if v.CanAddr() {
		if s, ok := v.Addr().Interface().(Serializable); ok {
			return s, true
		}
	}
	return nil, false
}
