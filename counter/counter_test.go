// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package counter

import "testing"

func TestBind_RendersZero(t *testing.T) {
	btn := &Button{}
	Bind(btn)

	if btn.Text() != "count is 0" {
		t.Errorf("expected 'count is 0', got '%s'", btn.Text())
	}
}

func TestClick_Increments(t *testing.T) {
	btn := &Button{}
	c := Bind(btn)

	btn.Click()
	if btn.Text() != "count is 1" {
		t.Errorf("after one click: expected 'count is 1', got '%s'", btn.Text())
	}

	btn.Click()
	if btn.Text() != "count is 2" {
		t.Errorf("after two clicks: expected 'count is 2', got '%s'", btn.Text())
	}
	if c.Count() != 2 {
		t.Errorf("expected count 2, got %d", c.Count())
	}
}

func TestRebind_DetachesAndResets(t *testing.T) {
	btn := &Button{}
	c := Bind(btn)
	btn.Click()
	btn.Click()

	// Rebinding the same element must not leak a second listener
	c.Bind(btn)

	if btn.ListenerCount() != 1 {
		t.Fatalf("expected exactly 1 listener after rebind, got %d", btn.ListenerCount())
	}
	if btn.Text() != "count is 0" {
		t.Errorf("rebind should reset display: got '%s'", btn.Text())
	}

	btn.Click()
	if btn.Text() != "count is 1" {
		t.Errorf("a click after rebind must count once: got '%s'", btn.Text())
	}
}

func TestRebind_ToAnotherElement(t *testing.T) {
	first := &Button{}
	second := &Button{}
	c := Bind(first)
	first.Click()

	c.Bind(second)

	if first.ListenerCount() != 0 {
		t.Errorf("expected old element to be released, %d listeners remain", first.ListenerCount())
	}

	// Clicks on the old element no longer count
	first.Click()
	if c.Count() != 0 {
		t.Errorf("expected count 0 after rebind, got %d", c.Count())
	}

	second.Click()
	if second.Text() != "count is 1" {
		t.Errorf("expected 'count is 1' on new element, got '%s'", second.Text())
	}
}

func TestUnbind(t *testing.T) {
	btn := &Button{}
	c := Bind(btn)

	c.Unbind()
	c.Unbind() // idempotent

	if btn.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after unbind, got %d", btn.ListenerCount())
	}

	btn.Click()
	if c.Count() != 0 {
		t.Errorf("expected no counting after unbind, got %d", c.Count())
	}
}

func TestCounters_AreIndependent(t *testing.T) {
	left := &Button{}
	right := &Button{}
	Bind(left)
	Bind(right)

	left.Click()
	left.Click()
	right.Click()

	if left.Text() != "count is 2" {
		t.Errorf("left: expected 'count is 2', got '%s'", left.Text())
	}
	if right.Text() != "count is 1" {
		t.Errorf("right: expected 'count is 1', got '%s'", right.Text())
	}
}
