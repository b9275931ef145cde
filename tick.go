package threads

// SysTick is the tick handler's entry point, exported under the name a
// board support package links as the SysTick exception vector. It may also
// be called directly to yield and force a reschedule.
//
// It must be called with interrupts unmasked; it masks them itself for the
// duration of the critical section and restores them before returning.
func SysTick() {
	criticalEnter()
	tickLocked()
	criticalExit()
}

// tickLocked runs the scheduling decision with the critical section already
// held by the caller. Sleep and wfe call this directly instead of SysTick
// to avoid masking interrupts twice from the same goroutine.
func tickLocked() {
	s := &globalState
	if !s.inited {
		return
	}
	if s.curr == s.next {
		s.idx = s.selectNext()
		s.next = s.addrOf(s.idx)
	}
	if s.curr != s.next {
		icsrWrite(icsrRead() | icsrPendSVSet)
	}
}
