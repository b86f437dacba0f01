// File: attrs.go
// Role: Name-based access to the structured Atom fields and the Metadata side table.
//
// Named attributes map onto typed Atom fields; every other name lives in Metadata.
// Categorical comparisons (product graphs, residue keys) go through Attr so callers
// can select attributes by name without caring where they are stored.

package core

import (
	"fmt"
	"reflect"
	"sort"
)

// Attribute names backed by typed Atom fields.
const (
	AttrElement  = "element"
	AttrAtomName = "atomname"
	AttrResName  = "resname"
	AttrChain    = "chain"
	AttrResID    = "resid"
	AttrCharge   = "charge"
	AttrPosition = "position"
)

// AttrWeight is the edge attribute name that reads Edge.Weight.
const AttrWeight = "weight"

// Attr returns the value of the named attribute and whether it is present.
// Position is returned as a Vec3 value.
func (v *Vertex) Attr(name string) (interface{}, bool) {
	switch name {
	case AttrElement:
		return v.Atom.Element, v.Atom.Element != ""
	case AttrAtomName:
		return v.Atom.Name, v.Atom.Name != ""
	case AttrResName:
		return v.Atom.ResName, v.Atom.ResName != ""
	case AttrChain:
		return v.Atom.Chain, v.Atom.Chain != ""
	case AttrResID:
		return v.Atom.ResID, true
	case AttrCharge:
		return v.Atom.Charge, true
	case AttrPosition:
		if v.Atom.Position == nil {
			return nil, false
		}
		return *v.Atom.Position, true
	}
	val, ok := v.Metadata[name]

	return val, ok
}

// SetAttr stores value under name, converting into the typed Atom field when one exists.
//
// Errors:
//   - ErrUnknownAttribute if a named attribute receives a value of the wrong type.
func (v *Vertex) SetAttr(name string, value interface{}) error {
	bad := func() error {
		return fmt.Errorf("%w: %s=%v (%T) on vertex %q", ErrUnknownAttribute, name, value, value, v.ID)
	}
	switch name {
	case AttrElement, AttrAtomName, AttrResName, AttrChain:
		s, ok := value.(string)
		if !ok {
			return bad()
		}
		switch name {
		case AttrElement:
			v.Atom.Element = s
		case AttrAtomName:
			v.Atom.Name = s
		case AttrResName:
			v.Atom.ResName = s
		default:
			v.Atom.Chain = s
		}
	case AttrResID:
		switch n := value.(type) {
		case int:
			v.Atom.ResID = n
		case int64:
			v.Atom.ResID = int(n)
		case int32:
			v.Atom.ResID = int(n)
		default:
			return bad()
		}
	case AttrCharge:
		switch c := value.(type) {
		case float64:
			v.Atom.Charge = c
		case int:
			v.Atom.Charge = float64(c)
		default:
			return bad()
		}
	case AttrPosition:
		switch p := value.(type) {
		case Vec3:
			v.Atom.Position = &p
		case *Vec3:
			v.Atom.Position = p
		default:
			return bad()
		}
	default:
		if v.Metadata == nil {
			v.Metadata = make(map[string]interface{})
		}
		v.Metadata[name] = value
	}

	return nil
}

// AttrNames returns the names of all present attributes, sorted.
func (v *Vertex) AttrNames() []string {
	names := make([]string, 0, 7+len(v.Metadata))
	for _, n := range []string{AttrElement, AttrAtomName, AttrResName, AttrChain, AttrResID, AttrCharge, AttrPosition} {
		if _, ok := v.Attr(n); ok {
			names = append(names, n)
		}
	}
	for k := range v.Metadata {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Attr returns the named edge attribute. "weight" reads Edge.Weight when non-zero.
func (e *Edge) Attr(name string) (interface{}, bool) {
	if name == AttrWeight && e.Weight != 0 {
		return e.Weight, true
	}
	val, ok := e.Metadata[name]

	return val, ok
}

// AttrNames returns the names of all present edge attributes, sorted.
func (e *Edge) AttrNames() []string {
	names := make([]string, 0, 1+len(e.Metadata))
	if e.Weight != 0 {
		names = append(names, AttrWeight)
	}
	for k := range e.Metadata {
		if k == AttrWeight && e.Weight != 0 {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// EqualValues compares two attribute values. Common scalar types are compared
// directly; anything else falls back to reflect.DeepEqual so slices and maps
// never panic.
func EqualValues(a, b interface{}) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int:
		y, ok := b.(int)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case nil:
		return b == nil
	}

	return reflect.DeepEqual(a, b)
}
