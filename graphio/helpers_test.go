package graphio_test

import (
	"fmt"
	"strings"
)

// atomLine formats an ATOM record in standard PDB columns. Coordinates are in Å.
func atomLine(serial int, name, resname string, resid int, x, y, z float64, element string) string {
	return fmt.Sprintf("%-6s%5d %-4s%1s%-4s%1s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s",
		"ATOM", serial, name, "", resname, "A", resid, "", x, y, z, 1.0, 0.0, element, "")
}

func conectLine(serials ...int) string {
	var b strings.Builder
	b.WriteString("CONECT")
	for _, s := range serials {
		fmt.Fprintf(&b, "%5d", s)
	}

	return b.String()
}

func pdb(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
