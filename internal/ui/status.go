package ui

import (
	"fmt"
	"strings"

	"torus-life/internal/sim"
)

// Help lists the key bindings shared by both front ends.
const Help = "[P] play/pause  [.] step  [R] reset  [S] random"

// StatusLine formats a one-line summary of the simulation.
func StatusLine(st sim.Status) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(st.State.String()))
	fmt.Fprintf(&b, "  gen %d  live %d", st.Generation, st.Live)
	if st.Pending {
		b.WriteString("  step pending")
	}
	return b.String()
}
