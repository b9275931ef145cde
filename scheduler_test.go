package threads

import "testing"

// TestSelectNextNoUserThreads checks that with no user thread ever
// created, selectNext always falls back to idle.
func TestSelectNextNoUserThreads(t *testing.T) {
	var s schedulerState
	s.addIdx = 1

	if got := s.selectNext(); got != 0 {
		t.Fatalf("selectNext() = %d, want 0", got)
	}
}

// TestSelectNextPicksHighestPriority checks that among runnable
// user threads, the highest Priority wins, ties broken by lowest slot index.
func TestSelectNextPicksHighestPriority(t *testing.T) {
	var s schedulerState
	s.addIdx = 4
	s.threads[1] = ThreadControlBlock{Priority: 5}
	s.threads[2] = ThreadControlBlock{Priority: 9}
	s.threads[3] = ThreadControlBlock{Priority: 9}

	if got := s.selectNext(); got != 2 {
		t.Fatalf("selectNext() = %d, want 2 (first of the tied highest priority)", got)
	}
}

// TestSelectNextSkipsSleepingThreads covers the sleeping-thread exclusion: a
// sleeping thread is never selected even if it has the highest priority.
func TestSelectNextSkipsSleepingThreads(t *testing.T) {
	var s schedulerState
	s.addIdx = 3
	s.threads[1] = ThreadControlBlock{Priority: 9, Status: StatusSleeping, SleepTicks: 5}
	s.threads[2] = ThreadControlBlock{Priority: 1}

	if got := s.selectNext(); got != 2 {
		t.Fatalf("selectNext() = %d, want 2", got)
	}
}

// TestSelectNextWakesOnCountdown checks that SleepTicks decrements
// by exactly one per call and the thread becomes runnable on the first call
// after it reaches zero, not the call it reaches zero.
func TestSelectNextWakesOnCountdown(t *testing.T) {
	var s schedulerState
	s.addIdx = 2
	s.threads[1] = ThreadControlBlock{Priority: 1, Status: StatusSleeping, SleepTicks: 1}

	if got := s.selectNext(); got != 0 {
		t.Fatalf("tick 1: selectNext() = %d, want 0 (still sleeping)", got)
	}
	if ticks := s.threads[1].SleepTicks; ticks != 0 {
		t.Fatalf("tick 1: SleepTicks = %d, want 0", ticks)
	}

	if got := s.selectNext(); got != 1 {
		t.Fatalf("tick 2: selectNext() = %d, want 1 (woken)", got)
	}
	if s.threads[1].Status != StatusIdle {
		t.Fatalf("tick 2: Status = %v, want StatusIdle", s.threads[1].Status)
	}
}

// TestSelectNextFallsBackWhenAllSleeping checks the "none runnable" branch:
// every user thread sleeping still yields idle.
func TestSelectNextFallsBackWhenAllSleeping(t *testing.T) {
	var s schedulerState
	s.addIdx = 2
	s.threads[1] = ThreadControlBlock{Priority: 9, Status: StatusSleeping, SleepTicks: 10}

	if got := s.selectNext(); got != 0 {
		t.Fatalf("selectNext() = %d, want 0", got)
	}
}
