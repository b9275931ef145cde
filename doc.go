// Package threads implements a minimal preemptive, priority-based thread
// scheduler for ARM Cortex-M class microcontrollers (M0/M0+/M3/M4/M4F).
//
// It offers application code independent threads of execution, each with
// its own stack, multiplexed onto a single CPU core by exploiting the
// Cortex-M exception model: SysTick for timekeeping, PendSV for deferred
// context switches, MSP/PSP stack duality, and the hardware-stacked
// exception frame. Scheduling is strict priority, run-to-yield: there is no
// round-robin among threads of equal priority, and a high-priority thread
// that never sleeps starves lower-priority work. This is intentional.
//
// A minimal firmware main looks like:
//
//	func main() {
//		configureSysTick() // application's responsibility, not this package's
//
//		var stack1, stack2 [512]uint32
//		threads.CreateThread(stack1[:], func() {
//			for {
//				blink()
//				threads.Sleep(50)
//			}
//		})
//		threads.CreateThreadWithConfig(stack2[:], func() {
//			for {
//				poll()
//				threads.Sleep(30)
//			}
//		}, 0x01, true)
//
//		threads.Init() // never returns
//	}
//
// The scheduler core (this package) depends on three external collaborators
// it does not implement: the application's own SysTick/CPU initialization,
// the assembly stubs that mask interrupts and perform the PendSV register
// save/restore (contract documented on lowlevel.go and asm_arm.s), and any
// panic/logging facility the application wants for faults outside this
// package's responsibility (bus faults, stack overflow).
package threads
