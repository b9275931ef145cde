package threads

import "unsafe"

// schedulerState is the single, process-wide scheduler instance. Its
// lifetime is the program's lifetime: zero-initialized at program start,
// finalized by Init/bootstrap, never torn down.
type schedulerState struct {
	// curr and next are addresses of entries in threads[], not indices: a
	// non-owning, lifetime-bound back-reference the PendSV trampoline
	// dereferences directly. curr == next means no switch is pending.
	// curr == 0 before the first switch has ever happened.
	curr uintptr
	next uintptr

	inited bool
	idx    int
	addIdx int

	threads [maxThreads]ThreadControlBlock
}

// globalState is the one process-wide instance. addIdx starts at 1 (slot 0
// reserved for the idle thread) from program start, not from Init/bootstrap,
// so CreateThread can be called before Init and still land its first thread
// in slot 1.
var globalState = schedulerState{addIdx: 1}

// globalStatePtr is published by bootstrap so the PendSV trampoline can
// locate globalState without any linker trick beyond this symbol.
var globalStatePtr uintptr

// addrOf returns the back-reference address for slot i.
func (s *schedulerState) addrOf(i int) uintptr {
	return uintptr(unsafe.Pointer(&s.threads[i]))
}
