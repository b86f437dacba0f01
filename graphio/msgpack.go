package graphio

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/molmatch/core"
)

// ReadMsgpack decodes a MessagePack graph snapshot from r.
func ReadMsgpack(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode msgpack snapshot: %w", err)
	}

	return doc.Graph()
}

// WriteMsgpack encodes g as a MessagePack snapshot named name.
func WriteMsgpack(w io.Writer, g *core.Graph, name string) error {
	if err := msgpack.NewEncoder(w).Encode(FromGraph(g, name)); err != nil {
		return fmt.Errorf("encode msgpack snapshot: %w", err)
	}

	return nil
}
