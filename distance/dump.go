// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable diagnostic view of t: the city set, the
// name→identifier mapping, every directed table entry and the fingerprint.
// The layout is for people; nothing should parse it.
func Dump(w io.Writer, t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	var sb strings.Builder

	fmt.Fprintf(&sb, "cities (%d): {%s}\n", t.n, strings.Join(t.names, ", "))

	sb.WriteString("ids:\n")
	for id, name := range t.names {
		fmt.Fprintf(&sb, "  %s => %d\n", name, id)
	}

	sb.WriteString("distances:\n")
	var a, b int
	for a = 0; a < t.n; a++ {
		for b = 0; b < t.n; b++ {
			if a == b {
				continue
			}
			fmt.Fprintf(&sb, "  (%d, %d) %s -> %s = %d\n", a, b, t.names[a], t.names[b], t.w[a*t.n+b])
		}
	}

	fmt.Fprintf(&sb, "fingerprint: %016x\n", t.Fingerprint())

	_, err := io.WriteString(w, sb.String())
	return err
}
