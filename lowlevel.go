package threads

import "sync"

// This file is the one seam where the scheduler core hands off to code it
// does not implement: interrupt masking, the WFE low-power wait, the ICSR
// memory-mapped register, and the PendSV context-switch trampoline. It
// plays the boundary role a Bus interface plays for a CPU core — the seam
// the core calls through without caring what's on the other side, as long
// as the contract holds.
//
// Each hook is a package-level function variable, defaulted here to a
// host/test backend, so a build-tagged file can swap in the real hardware
// versions without colliding symbol definitions. There is exactly one real
// implementation per target and it is never chosen at runtime, so the
// selection happens by build tag rather than by constructor argument.
// lowlevel_arm.go does exactly that for GOARCH=arm.
var (
	criticalEnter = simCriticalEnter
	criticalExit  = simCriticalExit
	wfe           = simWfe
	icsrRead      = simIcsrRead
	icsrWrite     = simIcsrWrite

	// performSwitch stands in for the PendSV trampoline once tickLocked has
	// found globalState.curr != globalState.next. On real hardware,
	// pending the exception (already done inside tickLocked) is enough —
	// PendSV fires asynchronously and there is nothing further for Go code
	// to do, so lowlevel_arm.go replaces this with a no-op. The host
	// backend below still has to perform the handoff itself, since nothing
	// else will.
	performSwitch = simApplyPendingSwitch
)

var critMu sync.Mutex

func simCriticalEnter() { critMu.Lock() }
func simCriticalExit()  { critMu.Unlock() }

// icsrSim stands in for the real ICSR register at 0xE000ED04.
var icsrSim uint32

const icsrPendSVSet = 1 << 28

func simIcsrRead() uint32   { return icsrSim }
func simIcsrWrite(v uint32) { icsrSim = v }

// simWfe is the idle thread's low-power wait primitive on the host
// backend. It behaves like Sleep's reschedule-and-yield, since idle is
// forbidden from calling Sleep itself: it re-evaluates the schedule and
// hands off if another thread is now due to run.
func simWfe() {
	criticalEnter()
	tickLocked()
	pending := globalState.curr != globalState.next
	criticalExit()
	if pending {
		performSwitch()
	}
}

// --- host/test backend: goroutine-per-thread cooperative handoff ---
//
// This stands in for a harness that stubs the assembly trampoline. It lets
// CreateThread's entry functions actually run and voluntarily hand off
// control via Sleep/wfe, which is enough to exercise any scenario that does
// not require asynchronous, mid-instruction preemption of a thread that
// never yields (see scenario_test.go for why priority preemption is
// verified differently).

// simResume[i] wakes thread i's goroutine when it becomes current.
// Buffered by one so the handoff never blocks the sender.
var simResume [maxThreads]chan struct{}

// simRunning is the slot index of the goroutine presently allowed to run,
// or -1 before the first switch. Guarded by critMu.
var simRunning = -1

// startSimThread spawns idx's entry function in its own goroutine, parked
// until it is first scheduled. Called once per slot, at creation time. A
// no-op under the arm backend, where thread bodies run by stack
// resumption rather than as goroutines.
var startSimThread = func(idx int, entry func()) {
	simResume[idx] = make(chan struct{}, 1)
	go func() {
		<-simResume[idx]
		entry()
	}()
}

// simApplyPendingSwitch must be called exactly when globalState.curr !=
// globalState.next, and only from a context that is safe to block: either
// a thread's own goroutine (via Sleep or wfe) or the startup context
// (bootstrap, where no thread is yet running).
//
// It wakes the incoming thread, then — unless nothing was running before —
// blocks the calling goroutine until some future switch wakes it again.
// This reproduces voluntary-yield scheduling faithfully; it cannot
// reproduce a timer interrupt preempting a thread that never yields, since
// nothing in a cooperative goroutine model can pause arbitrary Go code
// asynchronously. That gap is intentional and documented in DESIGN.md.
func simApplyPendingSwitch() {
	criticalEnter()
	fromIdx := simRunning
	toIdx := globalState.idx
	globalState.curr = globalState.next
	simRunning = toIdx
	criticalExit()

	simResume[toIdx] <- struct{}{}

	if fromIdx >= 0 && fromIdx != toIdx {
		<-simResume[fromIdx]
	}
}
