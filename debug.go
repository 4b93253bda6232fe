package polyclip

import (
	"fmt"
	"io"
	"os"
)

// Debug tracing for the sweep. Off by default; every helper is a cheap
// branch when disabled, so calls may stay in the hot path.
var (
	// Debug enables detailed trace logging when true
	Debug = false
	// DebugOutput is where trace output goes (default: os.Stdout)
	DebugOutput io.Writer = os.Stdout
)

// debugLog prints a trace message if Debug is enabled
func debugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[sweep] "+format+"\n", args...)
	}
}

// debugLogPhase prints a phase separator in trace output
func debugLogPhase(phase string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "\n==== %s ====\n", phase)
	}
}

// debugLogAEL prints the active edge list left to right
func debugLogAEL(ael *active) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOutput, "  AEL:")
	if ael == nil {
		fmt.Fprintf(DebugOutput, " (empty)\n")
		return
	}
	for e := ael; e != nil; e = e.nextInAEL {
		fmt.Fprintf(DebugOutput, " [x=%d wc=%d/%d hot=%v]", e.curX, e.windCount, e.windCount2, e.outrec != nil)
	}
	fmt.Fprintf(DebugOutput, "\n")
}
