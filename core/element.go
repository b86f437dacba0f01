// File: element.go
// Role: Element completion. The element of an atom is required by every matcher;
// when a structure file leaves it blank it is derived from the atom name.

package core

import (
	"fmt"
	"unicode"
)

// FirstAlpha returns the first alphabetic character of s.
//
// Errors:
//   - ErrMalformedValue if s has no alphabetic character.
func FirstAlpha(s string) (string, error) {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return string(r), nil
		}
	}

	return "", fmt.Errorf("%w: %q has no alphabetic character", ErrMalformedValue, s)
}

// AddElementAttr sets Atom.Element on every vertex that lacks one, using the first
// alphabetic character of its atom name. Vertices are processed in ID order and the
// first failure aborts the operation.
//
// Errors:
//   - ErrMissingAttribute if a vertex has neither element nor atom name.
//   - ErrMalformedValue if the atom name has no alphabetic character.
func AddElementAttr(g *Graph) error {
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		if v.Atom.Element != "" {
			continue
		}
		if v.Atom.Name == "" {
			return fmt.Errorf("cannot guess the element of atom %q: %w: %s", id, ErrMissingAttribute, AttrAtomName)
		}
		el, err := FirstAlpha(v.Atom.Name)
		if err != nil {
			return fmt.Errorf("cannot guess the element of atom %q: %w", id, err)
		}
		g.mu.Lock()
		v.Atom.Element = el
		g.mu.Unlock()
	}

	return nil
}

// ElementOf returns the element of v.
//
// Errors:
//   - ErrMissingAttribute naming the vertex when the element is unset.
func ElementOf(v *Vertex) (string, error) {
	if v.Atom.Element == "" {
		return "", fmt.Errorf("%w: %s on vertex %q", ErrMissingAttribute, AttrElement, v.ID)
	}

	return v.Atom.Element, nil
}

// RequireElements checks that every vertex of g has an element.
func RequireElements(g *Graph) error {
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		if _, err = ElementOf(v); err != nil {
			return err
		}
	}

	return nil
}
