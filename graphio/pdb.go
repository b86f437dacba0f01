// SPDX-License-Identifier: MIT
// File: pdb.go
// Role: PDB reader (ATOM/HETATM, ENDMDL, CONECT).
// Determinism:
//   - Atoms of a model get IDs "0", "1", ... in file order; CONECT bonds are
//     added in file order.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/molmatch/core"
)

// Metadata keys set on atoms read from a PDB file.
const (
	MetaAtomID        = "atomid"
	MetaAltLoc        = "altloc"
	MetaInsertionCode = "insertion_code"
	MetaOccupancy     = "occupancy"
	MetaTempFactor    = "temp_factor"
)

// MetaDistance is the edge attribute holding a CONECT bond length in nm.
const MetaDistance = "distance"

// Fixed ATOM/HETATM columns, zero-based and half-open.
var (
	colAtomID    = [2]int{6, 11}
	colAtomName  = [2]int{12, 16}
	colAltLoc    = [2]int{16, 17}
	colResName   = [2]int{17, 21}
	colChain     = [2]int{21, 22}
	colResID     = [2]int{22, 26}
	colInsertion = [2]int{26, 27}
	colX         = [2]int{30, 38}
	colY         = [2]int{38, 46}
	colZ         = [2]int{46, 54}
	colOccupancy = [2]int{54, 60}
	colTemp      = [2]int{60, 66}
	colElement   = [2]int{76, 78}
	colCharge    = [2]int{78, 80}
)

const conectWidth = 5

// PDBOption configures ReadPDB.
type PDBOption func(*pdbOptions)

type pdbOptions struct {
	exclude map[string]bool
	ignoreH bool
	model   int
	logger  *log.Logger
}

func defaultPDBOptions() pdbOptions {
	return pdbOptions{exclude: map[string]bool{"SOL": true}, logger: log.New(io.Discard)}
}

// WithExclude replaces the set of residue names to skip (default SOL).
// Calling it with no names keeps every residue.
func WithExclude(resnames ...string) PDBOption {
	return func(o *pdbOptions) {
		o.exclude = make(map[string]bool, len(resnames))
		for _, r := range resnames {
			o.exclude[r] = true
		}
	}
}

// WithIgnoreH drops hydrogen atoms.
func WithIgnoreH(ignore bool) PDBOption {
	return func(o *pdbOptions) { o.ignoreH = ignore }
}

// WithModel selects the zero-based model to return.
func WithModel(n int) PDBOption {
	return func(o *pdbOptions) { o.model = n }
}

// WithLogger routes reader events to l. A nil logger is ignored.
func WithLogger(l *log.Logger) PDBOption {
	return func(o *pdbOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// pdbReader accumulates models while scanning.
type pdbReader struct {
	opts    pdbOptions
	models  []*core.Graph
	conect  []string
	skipped int
}

// ReadPDB reads one model of a PDB file.
//
// ATOM and HETATM records become atoms; a blank element column is derived from
// the atom name. Coordinates are converted from Å to nm. ENDMDL starts a new
// model. CONECT records are applied to the selected model; numbers that do not
// name one of its atoms are skipped.
//
// Errors:
//   - ErrBadRecord for unparsable numeric columns or atom names without letters.
//   - ErrNoModel if the selected model does not exist.
func ReadPDB(r io.Reader, opts ...PDBOption) (*core.Graph, error) {
	o := defaultPDBOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pr := &pdbReader{opts: o, models: []*core.Graph{core.NewGraph()}}

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		switch record(line) {
		case "ENDMDL":
			pr.models = append(pr.models, core.NewGraph())
		case "ATOM  ", "HETATM":
			if err := pr.atom(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "CONECT":
			pr.conect = append(pr.conect, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pdb: %w", err)
	}
	if last := pr.models[len(pr.models)-1]; last.VertexCount() == 0 {
		pr.models = pr.models[:len(pr.models)-1]
	}
	if o.model < 0 || o.model >= len(pr.models) {
		return nil, fmt.Errorf("%w: model %d of %d", ErrNoModel, o.model, len(pr.models))
	}

	mol := pr.models[o.model]
	if err := applyConect(mol, pr.conect); err != nil {
		return nil, err
	}
	o.logger.Debug("pdb read", "models", len(pr.models), "model", o.model,
		"atoms", mol.VertexCount(), "bonds", mol.EdgeCount(), "skipped", pr.skipped)

	return mol, nil
}

func record(line string) string {
	if len(line) >= 6 {
		return line[:6]
	}

	return line + strings.Repeat(" ", 6-len(line))
}

// column returns the trimmed text of col, or "" when the line is too short.
func column(line string, col [2]int) string {
	if col[0] >= len(line) {
		return ""
	}

	return strings.TrimSpace(line[col[0]:min(col[1], len(line))])
}

func (pr *pdbReader) atom(line string) error {
	atomID, err := strconv.Atoi(column(line, colAtomID))
	if err != nil {
		return fmt.Errorf("%w: atom serial: %v", ErrBadRecord, err)
	}
	resID, err := strconv.Atoi(column(line, colResID))
	if err != nil {
		return fmt.Errorf("%w: residue number: %v", ErrBadRecord, err)
	}
	var pos core.Vec3
	for i, col := range [3][2]int{colX, colY, colZ} {
		f, err := strconv.ParseFloat(column(line, col), 64)
		if err != nil {
			return fmt.Errorf("%w: coordinate: %v", ErrBadRecord, err)
		}
		pos[i] = f / 10
	}
	occupancy, err := optionalFloat(column(line, colOccupancy), 1)
	if err != nil {
		return fmt.Errorf("%w: occupancy: %v", ErrBadRecord, err)
	}
	temp, err := optionalFloat(column(line, colTemp), 0)
	if err != nil {
		return fmt.Errorf("%w: temperature factor: %v", ErrBadRecord, err)
	}
	charge, err := ParseCharge(column(line, colCharge))
	if err != nil {
		return err
	}

	atom := core.Atom{
		Element:  column(line, colElement),
		Name:     column(line, colAtomName),
		ResName:  column(line, colResName),
		Chain:    column(line, colChain),
		ResID:    resID,
		Charge:   charge,
		Position: &pos,
	}
	if atom.Element == "" {
		el, err := core.FirstAlpha(atom.Name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadRecord, err)
		}
		atom.Element = el
	}
	if pr.opts.exclude[atom.ResName] || (pr.opts.ignoreH && atom.Element == "H") {
		pr.skipped++
		return nil
	}

	mol := pr.models[len(pr.models)-1]
	id := strconv.Itoa(mol.VertexCount())
	if err := mol.AddAtom(id, atom); err != nil {
		return err
	}
	v, _ := mol.Vertex(id)
	_ = v.SetAttr(MetaAtomID, atomID)
	_ = v.SetAttr(MetaOccupancy, occupancy)
	_ = v.SetAttr(MetaTempFactor, temp)
	if s := column(line, colAltLoc); s != "" {
		_ = v.SetAttr(MetaAltLoc, s)
	}
	if s := column(line, colInsertion); s != "" {
		_ = v.SetAttr(MetaInsertionCode, s)
	}

	return nil
}

func optionalFloat(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}

	return strconv.ParseFloat(s, 64)
}

// ParseCharge reads a PDB formal charge such as "2+", "1-" or "-1".
// An empty string is a zero charge.
func ParseCharge(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	sign := 1.0
	switch {
	case strings.HasSuffix(s, "-") || strings.HasPrefix(s, "-"):
		sign = -1
	case !strings.HasSuffix(s, "+") && !strings.HasPrefix(s, "+"):
		return 0, fmt.Errorf("%w: charge %q has no sign", ErrBadRecord, s)
	}
	digits := strings.Trim(s, "+-")
	if digits == "" {
		return sign, nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: charge %q", ErrBadRecord, s)
	}

	return sign * float64(n), nil
}

// applyConect bonds atoms listed on CONECT records: the first serial on a
// record is bonded to every following one.
func applyConect(mol *core.Graph, lines []string) error {
	bySerial := make(map[int]string, mol.VertexCount())
	for _, id := range mol.Vertices() {
		v, _ := mol.Vertex(id)
		if serial, ok := v.Metadata[MetaAtomID].(int); ok {
			bySerial[serial] = id
		}
	}

	for _, line := range lines {
		body := strings.TrimRight(line, " \t\r")
		var serials []int
		for at := 6; at < len(body); at += conectWidth {
			field := strings.TrimSpace(body[at:min(at+conectWidth, len(body))])
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("%w: CONECT serial %q", ErrBadRecord, field)
			}
			serials = append(serials, n)
		}
		if len(serials) < 2 {
			continue
		}
		from, ok := bySerial[serials[0]]
		if !ok {
			continue
		}
		for _, s := range serials[1:] {
			to, ok := bySerial[s]
			if !ok || to == from || mol.HasEdge(from, to) {
				continue
			}
			if _, err := mol.AddEdge(from, to, 0, core.WithEdgeMetadata(MetaDistance, distance(mol, from, to))); err != nil {
				return err
			}
		}
	}

	return nil
}

func distance(mol *core.Graph, a, b string) float64 {
	va, _ := mol.Vertex(a)
	vb, _ := mol.Vertex(b)
	pa, pb := va.Atom.Position, vb.Atom.Position
	if pa == nil || pb == nil {
		return 0
	}
	dx, dy, dz := pa[0]-pb[0], pa[1]-pb[1], pa[2]-pb[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
