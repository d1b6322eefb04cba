// Package keycode maps platform key and button codes to the logical
// identifiers in the event package, and back again for simulation.
//
// The tables are plain data with no build tags so every mapping is testable
// on every platform. Unknown raw codes map to event.KeyUnknown; the raw code
// itself travels alongside in the event payload, so nothing is lost for
// callers that want to handle unmapped hardware themselves.
package keycode

import "inputtap/internal/event"

// invert builds a reverse table from a forward map. When several raw codes
// map to the same logical key the lowest code wins, which keeps simulation
// deterministic.
func invert(forward map[uint32]event.Key) map[event.Key]uint32 {
	reverse := make(map[event.Key]uint32, len(forward))
	for code, key := range forward {
		if key == event.KeyUnknown {
			continue
		}
		if prev, ok := reverse[key]; !ok || code < prev {
			reverse[key] = code
		}
	}
	return reverse
}

func lookup(table map[uint32]event.Key, code uint32) event.Key {
	if k, ok := table[code]; ok {
		return k
	}
	return event.KeyUnknown
}
