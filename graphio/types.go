package graphio

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadDocument indicates a structurally invalid graph document.
	ErrBadDocument = errors.New("graphio: bad document")

	// ErrBadRecord indicates a PDB record that cannot be parsed.
	ErrBadRecord = errors.New("graphio: bad PDB record")

	// ErrNoModel is returned when the requested PDB model does not exist.
	ErrNoModel = errors.New("graphio: no such model")

	// ErrUnknownFormat is returned by Load for an unsupported file extension.
	ErrUnknownFormat = errors.New("graphio: unknown file format")
)

// Document is the serialized form of a molecular graph.
type Document struct {
	Name     string    `yaml:"name,omitempty" msgpack:"name,omitempty"`
	Weighted bool      `yaml:"weighted,omitempty" msgpack:"weighted,omitempty"`
	Atoms    []AtomDoc `yaml:"atoms" msgpack:"atoms"`
	Bonds    []BondDoc `yaml:"bonds,omitempty" msgpack:"bonds,omitempty"`
}

// AtomDoc is one vertex. Position is in nm and has zero or three components.
type AtomDoc struct {
	ID       string                 `yaml:"id" msgpack:"id"`
	Element  string                 `yaml:"element,omitempty" msgpack:"element,omitempty"`
	Name     string                 `yaml:"atomname,omitempty" msgpack:"atomname,omitempty"`
	ResName  string                 `yaml:"resname,omitempty" msgpack:"resname,omitempty"`
	Chain    string                 `yaml:"chain,omitempty" msgpack:"chain,omitempty"`
	ResID    int                    `yaml:"resid,omitempty" msgpack:"resid,omitempty"`
	Charge   float64                `yaml:"charge,omitempty" msgpack:"charge,omitempty"`
	Position []float64              `yaml:"position,omitempty,flow" msgpack:"position,omitempty"`
	Meta     map[string]interface{} `yaml:"meta,omitempty" msgpack:"meta,omitempty"`
}

// BondDoc is one edge.
//
// In YAML a bond is either a mapping with from/to/weight/meta keys or a
// two-element sequence [from, to].
type BondDoc struct {
	From   string                 `yaml:"from" msgpack:"from"`
	To     string                 `yaml:"to" msgpack:"to"`
	Weight float64                `yaml:"weight,omitempty" msgpack:"weight,omitempty"`
	Meta   map[string]interface{} `yaml:"meta,omitempty" msgpack:"meta,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler for BondDoc.
func (b *BondDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var ends []string
		if err := node.Decode(&ends); err != nil {
			return err
		}
		if len(ends) != 2 {
			return fmt.Errorf("%w: line %d: bond needs 2 atoms, got %d", ErrBadDocument, node.Line, len(ends))
		}
		*b = BondDoc{From: ends[0], To: ends[1]}
		return nil
	case yaml.MappingNode:
		type plain BondDoc
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*b = BondDoc(p)
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected bond mapping or pair, got %v", ErrBadDocument, node.Line, node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler for BondDoc, using the short pair
// form when the bond carries nothing but its endpoints.
func (b BondDoc) MarshalYAML() (any, error) {
	if b.Weight == 0 && len(b.Meta) == 0 {
		var pair yaml.Node
		if err := pair.Encode([]string{b.From, b.To}); err != nil {
			return nil, err
		}
		pair.Style = yaml.FlowStyle
		return &pair, nil
	}
	type plain BondDoc

	return plain(b), nil
}

// MatchDoc is the serialized form of one ranked match.
type MatchDoc struct {
	Rank    int               `yaml:"rank"`
	Score   *int              `yaml:"score,omitempty"`
	Mapping map[string]string `yaml:"mapping"`
}
