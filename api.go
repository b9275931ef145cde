package threads

import "unsafe"

// idleStackWords is the idle thread's dedicated stack size, larger than
// the 32-word minimum required of user threads: the idle thread gets its
// own 64-word array rather than the bare minimum.
const idleStackWords = 64

var idleStack [idleStackWords]uint32

// idleEntry is the idle thread's body: wait for an event, forever. It must
// never call Sleep — Sleep is a no-op from slot 0 regardless, but idle
// should never try.
func idleEntry() {
	for {
		wfe()
	}
}

// Init finalizes scheduler setup: it builds and installs the idle thread at
// slot 0, publishes the scheduler state for the PendSV trampoline, marks
// the scheduler initialized, invokes the tick handler to select the first
// thread to run, and then loops on low-power wait. Init never returns. It
// panics if the idle thread's stack frame cannot be built — a programming
// error far too early for a caller to recover from.
func Init() {
	bootstrap()
	for {
		wfe()
	}
}

// bootstrap does everything Init does except the final infinite wait, so
// tests can drive the scheduler afterward without blocking forever.
func bootstrap() {
	criticalEnter()
	globalStatePtr = uintptr(unsafe.Pointer(&globalState))
	criticalExit()

	sp, err := buildInitialFrame(idleStack[:], idleEntry)
	if err != nil {
		panic("threads: could not create idle thread: " + err.Error())
	}

	criticalEnter()
	globalState.threads[0] = ThreadControlBlock{
		SP:       sp,
		Priority: PriorityIdle,
		Status:   StatusIdle,
		// Privileged left 0: the real CONTROL-register load inverts it
		// to CONTROL bit 0 = 1, so idle runs hardware-unprivileged, and
		// CreateThreadWithConfig called from idle after Init fails with
		// CodeNoCreatePrivilege.
	}
	globalState.inited = true
	criticalExit()

	startSimThread(0, idleEntry)

	criticalEnter()
	tickLocked()
	pending := globalState.curr != globalState.next
	criticalExit()
	if pending {
		performSwitch()
	}
}

// CreateThread creates a thread with the default configuration: lowest
// priority, unprivileged. It is exactly CreateThreadWithConfig(stack, fn,
// 0x00, false).
//
//	var stack [512]uint32
//	err := threads.CreateThread(stack[:], func() {
//		for {
//			doWork()
//			threads.Sleep(50)
//		}
//	})
func CreateThread(stack []uint32, entry func()) error {
	return CreateThreadWithConfig(stack, entry, 0x00, false)
}

// CreateThreadWithConfig creates a thread with explicit priority (larger
// runs first) and privilege (whether the thread may itself call
// CreateThread/CreateThreadWithConfig, and runs hardware-privileged).
//
// It must be called either before Init (the startup context is privileged
// by definition) or from a privileged thread after Init; calling from an
// unprivileged thread after Init fails with a *ThreadError wrapping
// CodeNoCreatePrivilege. All mutation happens with interrupts masked;
// interrupts are re-enabled on every return path, including the error
// paths.
//
//	var stack [512]uint32
//	err := threads.CreateThreadWithConfig(stack[:], func() {
//		for {
//			pollSensor()
//			threads.Sleep(30)
//		}
//	}, 0x01, true)
func CreateThreadWithConfig(stack []uint32, entry func(), priority uint8, privileged bool) error {
	criticalEnter()
	defer criticalExit()

	s := &globalState
	if s.addIdx >= len(s.threads) {
		return errTooManyThreads
	}
	if s.inited && s.threads[s.idx].Privileged == 0 {
		return errNoCreatePriv
	}

	sp, err := buildInitialFrame(stack, entry)
	if err != nil {
		return err
	}

	idx := s.addIdx
	var priv uint32
	if privileged {
		priv = 1
	}
	s.threads[idx] = ThreadControlBlock{
		SP:         sp,
		Privileged: priv,
		Priority:   priority,
		Status:     StatusIdle,
	}
	s.addIdx++

	startSimThread(idx, entry)
	return nil
}

// Sleep marks the calling thread Sleeping for at least ticks scheduler
// invocations and immediately reschedules. It is a no-op when called from
// the idle thread (slot 0), which must never sleep.
func Sleep(ticks uint32) {
	criticalEnter()
	s := &globalState
	self := s.idx
	if self == 0 {
		criticalExit()
		return
	}
	s.threads[self].Status = StatusSleeping
	s.threads[self].SleepTicks = ticks
	tickLocked()
	pending := s.curr != s.next
	criticalExit()

	if pending {
		performSwitch()
	}
}

// GetThreadID returns the currently scheduled thread's slot index.
func GetThreadID() int {
	criticalEnter()
	defer criticalExit()
	return globalState.idx
}
