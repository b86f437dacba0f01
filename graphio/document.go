// SPDX-License-Identifier: MIT
// File: document.go
// Role: conversion between core.Graph and Document.
// Determinism:
//   - FromGraph lists atoms in sorted ID order and bonds in creation order.

package graphio

import (
	"fmt"

	"github.com/katalvlaran/molmatch/core"
)

// FromGraph captures g as a Document named name.
// Vertex Metadata is copied shallowly into AtomDoc.Meta.
func FromGraph(g *core.Graph, name string) Document {
	doc := Document{Name: name, Weighted: g.Weighted()}
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		a := AtomDoc{
			ID:      id,
			Element: v.Atom.Element,
			Name:    v.Atom.Name,
			ResName: v.Atom.ResName,
			Chain:   v.Atom.Chain,
			ResID:   v.Atom.ResID,
			Charge:  v.Atom.Charge,
		}
		if p := v.Atom.Position; p != nil {
			a.Position = []float64{p[0], p[1], p[2]}
		}
		if len(v.Metadata) > 0 {
			a.Meta = make(map[string]interface{}, len(v.Metadata))
			for k, val := range v.Metadata {
				a.Meta[k] = val
			}
		}
		doc.Atoms = append(doc.Atoms, a)
	}
	for _, e := range g.Edges() {
		b := BondDoc{From: e.From, To: e.To, Weight: e.Weight}
		if len(e.Metadata) > 0 {
			b.Meta = make(map[string]interface{}, len(e.Metadata))
			for k, val := range e.Metadata {
				b.Meta[k] = val
			}
		}
		doc.Bonds = append(doc.Bonds, b)
	}

	return doc
}

// Graph builds the molecular graph described by d.
//
// Errors:
//   - ErrBadDocument for an empty or duplicate atom ID, a position that is not
//     three components long, or a bond naming an unknown atom.
//   - core errors from AddEdge (loops, duplicate bonds, weights on unweighted docs).
func (d Document) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	for i, a := range d.Atoms {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: atom %d has no id", ErrBadDocument, i)
		}
		if g.HasVertex(a.ID) {
			return nil, fmt.Errorf("%w: duplicate atom %q", ErrBadDocument, a.ID)
		}
		atom := core.Atom{
			Element: a.Element,
			Name:    a.Name,
			ResName: a.ResName,
			Chain:   a.Chain,
			ResID:   a.ResID,
			Charge:  a.Charge,
		}
		switch len(a.Position) {
		case 0:
		case 3:
			atom.Position = &core.Vec3{a.Position[0], a.Position[1], a.Position[2]}
		default:
			return nil, fmt.Errorf("%w: atom %q position has %d components", ErrBadDocument, a.ID, len(a.Position))
		}
		if err := g.AddAtom(a.ID, atom); err != nil {
			return nil, err
		}
		if len(a.Meta) > 0 {
			v, _ := g.Vertex(a.ID)
			for k, val := range a.Meta {
				if err := v.SetAttr(k, val); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, b := range d.Bonds {
		if !g.HasVertex(b.From) || !g.HasVertex(b.To) {
			return nil, fmt.Errorf("%w: bond %s-%s names an unknown atom", ErrBadDocument, b.From, b.To)
		}
		eopts := make([]core.EdgeOption, 0, len(b.Meta))
		for k, val := range b.Meta {
			eopts = append(eopts, core.WithEdgeMetadata(k, val))
		}
		if _, err := g.AddEdge(b.From, b.To, b.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("bond %s-%s: %w", b.From, b.To, err)
		}
	}

	return g, nil
}
