package graphio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molmatch/core"
)

// DecodeDocument parses a YAML graph document.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph document: %w", err)
	}

	return &doc, nil
}

// ReadYAML reads a YAML graph document from r and builds its graph.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read graph document: %w", err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// WriteYAML writes g as a YAML graph document named name.
func WriteYAML(w io.Writer, g *core.Graph, name string) error {
	return encodeYAML(w, FromGraph(g, name))
}

// WriteMatchesYAML writes ms as a ranked YAML list, best first as given.
// A non-nil score annotates every entry.
func WriteMatchesYAML[M ~map[string]string](w io.Writer, ms []M, score func(M) int) error {
	docs := make([]MatchDoc, len(ms))
	for i, m := range ms {
		docs[i] = MatchDoc{Rank: i + 1, Mapping: map[string]string(m)}
		if score != nil {
			s := score(m)
			docs[i].Score = &s
		}
	}

	return encodeYAML(w, docs)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	return enc.Close()
}
