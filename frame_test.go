package threads

import (
	"testing"
	"unsafe"
)

// TestBuildInitialFrameLayout checks that the words written at the top of
// the stack decode back to the entry point in PC position and the
// documented markers everywhere else, and that the returned SP points at
// the lowest word written (R8's marker).
func TestBuildInitialFrameLayout(t *testing.T) {
	var stack [64]uint32
	called := func() {}

	sp, err := buildInitialFrame(stack[:], called)
	if err != nil {
		t.Fatalf("buildInitialFrame: %v", err)
	}

	n := len(stack)
	if stack[n-1] != markerXPSR {
		t.Errorf("xPSR = %#x, want %#x", stack[n-1], uint32(markerXPSR))
	}
	if got, want := stack[n-2], uint32(entryAddress(called)); got != want {
		t.Errorf("PC = %#x, want %#x", got, want)
	}
	if stack[n-3] != markerLR {
		t.Errorf("LR = %#x, want %#x", stack[n-3], uint32(markerLR))
	}

	wantSP := uintptr(unsafe.Pointer(&stack[n-16]))
	if sp != wantSP {
		t.Errorf("SP = %#x, want %#x", sp, wantSP)
	}
}

func TestBuildInitialFrameRejectsSmallStack(t *testing.T) {
	var stack [minStackWords - 1]uint32
	before := stack

	_, err := buildInitialFrame(stack[:], func() {})
	if err == nil {
		t.Fatal("expected error for undersized stack")
	}
	te, ok := err.(*ThreadError)
	if !ok {
		t.Fatalf("err is %T, want *ThreadError", err)
	}
	if te.Code != CodeStackTooSmall {
		t.Errorf("Code = %#x, want %#x", te.Code, CodeStackTooSmall)
	}
	if stack != before {
		t.Error("buildInitialFrame modified stack on the error path")
	}
}

func TestBuildInitialFrameMinimumStack(t *testing.T) {
	var stack [minStackWords]uint32
	if _, err := buildInitialFrame(stack[:], func() {}); err != nil {
		t.Fatalf("buildInitialFrame at minimum size: %v", err)
	}
}
