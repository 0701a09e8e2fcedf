package obj

import "sync/atomic"

var idCounter uint64

// NextID returns a process-unique entity ID. The editor ledger and save/load
// key everything off these instead of matching entities by proximity.
func NextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
