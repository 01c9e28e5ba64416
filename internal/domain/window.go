package domain

import "fmt"

// Window is a half-open range [Left, Right) on the sample axis.
type Window struct {
	Left  int
	Right int
}

// Len returns the number of samples covered by the window.
func (w Window) Len() int {
	if w.Right <= w.Left {
		return 0
	}
	return w.Right - w.Left
}

// Clamp bounds the window to [0, n] and collapses an inverted window to an
// empty one at Left.
func (w Window) Clamp(n int) Window {
	if w.Left < 0 {
		w.Left = 0
	}
	if w.Left > n {
		w.Left = n
	}
	if w.Right > n {
		w.Right = n
	}
	if w.Right < w.Left {
		w.Right = w.Left
	}
	return w
}

// String implements fmt.Stringer.
func (w Window) String() string {
	return fmt.Sprintf("[%d,%d)", w.Left, w.Right)
}

// Bounds holds the indices found by the trigger/guard resolver.
// The triggers are kept for annotation only; slicing uses the guards.
type Bounds struct {
	LeftTrigger  int
	RightTrigger int
	LeftGuard    int
	RightGuard   int
}

// Window returns the slice window spanned by the guards.
func (b Bounds) Window() Window {
	return Window{Left: b.LeftGuard, Right: b.RightGuard}
}
