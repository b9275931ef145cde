package threads

import "unsafe"

// ThreadStatus is a thread's scheduling state. The naming follows the
// source this package is ported from: "Idle" means "not sleeping", and is
// unrelated to the dedicated idle thread that always occupies slot 0.
type ThreadStatus uint32

const (
	// StatusIdle marks a thread runnable, or currently running.
	StatusIdle ThreadStatus = iota
	// StatusSleeping excludes a thread from selection until SleepTicks
	// counts down to zero.
	StatusSleeping
)

// PriorityIdle is the idle thread's priority by convention. It is never
// compared against user priorities: selectNext special-cases slot 0 rather
// than relying on it sorting below every user priority.
const PriorityIdle uint8 = 0xFF

// maxThreads is the TCB table's fixed capacity. Slot 0 is reserved for the
// idle thread, so 31 user threads may be created.
const maxThreads = 32

// ThreadControlBlock is the per-thread scheduling record.
//
// SP and Privileged are a binary ABI with the PendSV trampoline in
// asm_arm.s: their field order, and this struct's stride within
// schedulerState.threads, must never change without updating the assembly.
// The init function below freezes that layout with a pair of offset
// assertions, the way a wire format pins its layout with a version
// constant.
type ThreadControlBlock struct {
	// SP is this thread's saved stack pointer: the value PSP must hold
	// when the thread resumes. Written by buildInitialFrame at creation
	// and by the PendSV trampoline on every switch thereafter; read by
	// the trampoline on every switch.
	SP uintptr

	// Privileged gates CreateThreadWithConfig and, inverted, seeds CONTROL
	// register bit 0 on resume: 1 means this thread may create further
	// threads and runs hardware-privileged; 0 means it cannot, and runs
	// unprivileged. The bit loaded into CONTROL is the complement of this
	// field, because CONTROL bit 0 is 0 for privileged execution. Stored
	// as a machine word rather than bool for the assembly's convenience.
	Privileged uint32

	// Priority: larger runs first among non-sleeping user threads.
	Priority uint8
	// Status is Idle (runnable) or Sleeping.
	Status ThreadStatus
	// SleepTicks counts down while Status == Sleeping; meaningless
	// otherwise.
	SleepTicks uint32
}

func init() {
	var tcb ThreadControlBlock
	if unsafe.Offsetof(tcb.SP) != 0 {
		panic("threads: ThreadControlBlock.SP must be the first field")
	}
	if unsafe.Offsetof(tcb.Privileged) != unsafe.Sizeof(tcb.SP) {
		panic("threads: ThreadControlBlock.Privileged must immediately follow SP")
	}
}
