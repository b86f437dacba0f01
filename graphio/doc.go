// Package graphio moves molecular graphs in and out of files.
//
// Three formats are supported:
//
//   - YAML documents (Document) for hand-written residue templates and for
//     human-readable output of graphs and matches.
//   - MessagePack snapshots of the same Document, a compact cache for large
//     template libraries.
//   - PDB structure files (read only). ATOM/HETATM records become atoms with
//     positions converted from Å to nm; CONECT records become bonds that carry
//     their length in the "distance" edge attribute.
//
// Load picks a reader by file extension.
package graphio
