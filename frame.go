package threads

import (
	"reflect"
	"unsafe"
)

// minStackWords is the smallest stack buffer buildInitialFrame accepts.
const minStackWords = 32

// Values written into a fresh thread's stack frame. markerXPSR and markerLR
// are real initial register values the CPU acts on; the R0-R12 markers
// carry no meaning to the CPU and exist so a thread that underflows its
// stack is obvious in a debugger.
const (
	markerXPSR = 0x01000000 // xPSR, T-bit set
	markerLR   = 0xFFFFFFFD // EXC_RETURN: Thread mode, PSP
	markerR12  = 0xCCCCCCCC
	markerR3   = 0x33333333
	markerR2   = 0x22222222
	markerR1   = 0x11111111
	markerR0   = 0x00000000
	markerR7   = 0x77777777
	markerR6   = 0x66666666
	markerR5   = 0x55555555
	markerR4   = 0x44444444
	markerR11  = 0xBBBBBBBB
	markerR10  = 0xAAAAAAAA
	markerR9   = 0x99999999
	markerR8   = 0x88888888
)

// entryAddress returns the code address of entry, as the hardware-stacked
// PC needs it. entry must be a plain function value (not a method value),
// same as the rest of this package's func()-typed entry points.
func entryAddress(entry func()) uintptr {
	return reflect.ValueOf(entry).Pointer()
}

// buildInitialFrame writes a synthetic Cortex-M exception frame, plus the
// callee-saved registers R4-R11, into the top of stack, so that the first
// PendSV-mediated switch into this thread lands at entry, running in Thread
// mode. entry must never return.
//
// stack must hold at least minStackWords words. On failure no word of
// stack is modified.
func buildInitialFrame(stack []uint32, entry func()) (uintptr, error) {
	if len(stack) < minStackWords {
		return 0, errStackTooSmall
	}

	n := len(stack)
	stack[n-1] = markerXPSR
	stack[n-2] = uint32(entryAddress(entry))
	stack[n-3] = markerLR
	stack[n-4] = markerR12
	stack[n-5] = markerR3
	stack[n-6] = markerR2
	stack[n-7] = markerR1
	stack[n-8] = markerR0
	stack[n-9] = markerR7
	stack[n-10] = markerR6
	stack[n-11] = markerR5
	stack[n-12] = markerR4
	stack[n-13] = markerR11
	stack[n-14] = markerR10
	stack[n-15] = markerR9
	stack[n-16] = markerR8

	return uintptr(unsafe.Pointer(&stack[n-16])), nil
}
