//go:build arm

package threads

import "unsafe"

// Real Cortex-M backend. It replaces the host-simulation hooks in
// lowlevel.go with the actual hardware operations: interrupt masking and
// WFE via the assembly stubs in asm_arm.s, and ICSR via direct MMIO. The
// PendSV handler in asm_arm.s performs the actual context switch in
// hardware, so performSwitch has nothing left to do once tickLocked has
// pended the exception.

// __cortexm_threads_cpsid and __cortexm_threads_cpsie mask/unmask
// interrupts on the i flag (CPSID i / CPSIE i); __cortexm_threads_wfe
// issues wfe. Implemented in asm_arm.s. Only the contract that they do
// what their names say matters here, not the exact instruction sequence.
//
//go:noescape
func __cortexm_threads_cpsid()

//go:noescape
func __cortexm_threads_cpsie()

//go:noescape
func __cortexm_threads_wfe()

const icsrAddr = 0xE000ED04

func init() {
	criticalEnter = __cortexm_threads_cpsid
	criticalExit = __cortexm_threads_cpsie
	wfe = __cortexm_threads_wfe

	icsrRead = func() uint32 {
		return *(*uint32)(unsafe.Pointer(uintptr(icsrAddr)))
	}
	icsrWrite = func(v uint32) {
		*(*uint32)(unsafe.Pointer(uintptr(icsrAddr))) = v
	}

	// PendSV (asm_arm.s) performs the switch in hardware once pended;
	// there is nothing further for Go code to do.
	performSwitch = func() {}

	// Thread bodies run by stack resumption through PendSV, not as
	// goroutines; CreateThread must not spawn one on real hardware.
	startSimThread = func(int, func()) {}
}
