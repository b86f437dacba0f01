package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/molmatch/core"
)

// Load reads the graph stored at path, choosing the reader by extension:
// .yaml/.yml, .msgpack/.mpk or .pdb. PDB options apply to PDB files only.
//
// Errors:
//   - ErrUnknownFormat for other extensions.
func Load(path string, opts ...PDBOption) (*core.Graph, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".msgpack", ".mpk", ".pdb":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var g *core.Graph
	switch ext {
	case ".yaml", ".yml":
		g, err = ReadYAML(f)
	case ".msgpack", ".mpk":
		g, err = ReadMsgpack(f)
	default:
		g, err = ReadPDB(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return g, nil
}
