package threads

// selectNext picks the next thread to run. It must be called with
// interrupts masked (the caller holds the critical section; see tick.go).
//
// If no user thread exists, it returns 0 (idle). Otherwise it first
// advances every sleeping user thread's countdown by one tick — waking
// those whose countdown was already zero — then picks the highest-priority non-sleeping
// user thread, breaking ties by lowest slot index. If none is runnable, it
// returns 0 (idle).
func (s *schedulerState) selectNext() int {
	if s.addIdx <= 1 {
		return 0
	}

	for i := 1; i < s.addIdx; i++ {
		t := &s.threads[i]
		if t.Status != StatusSleeping {
			continue
		}
		if t.SleepTicks > 0 {
			t.SleepTicks--
		} else {
			t.Status = StatusIdle
		}
	}

	best := -1
	var bestPriority uint8
	for i := 1; i < s.addIdx; i++ {
		t := &s.threads[i]
		if t.Status == StatusSleeping {
			continue
		}
		if best == -1 || t.Priority > bestPriority {
			best = i
			bestPriority = t.Priority
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
