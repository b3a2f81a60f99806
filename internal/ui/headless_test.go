package ui

import "testing"

func TestHeadlessManagerForce(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
}

func TestHeadlessManagerClearForce(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	hm.ClearForce()

	// After clearing, detection falls back to the real TTY state; in either
	// case the call must not panic and must be stable.
	first := hm.IsHeadless()
	second := hm.IsHeadless()
	if first != second {
		t.Errorf("IsHeadless() unstable after ClearForce: %v then %v", first, second)
	}
}
