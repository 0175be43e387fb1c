// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

// Package counter implements the click-counter demo widget.
//
// A Counter binds to one UI element, renders "count is <n>", and bumps n on
// every click. The count lives on the Counter itself, not in package state,
// so multiple widgets on one page stay independent. Rebinding detaches the
// previous listener first; stacking a second live listener on the same
// element is never possible through this API.
//
// The widget is a standalone demo and test fixture: it shares nothing with
// the score-tracking backend.
package counter

import "fmt"

// Element is the minimal UI surface a counter needs: something that shows
// text and dispatches clicks. AddClickListener returns a detach func that
// unregisters exactly the listener it added.
type Element interface {
	SetText(text string)
	AddClickListener(handler func()) (detach func())
}

// Counter owns the click count for one bound element.
type Counter struct {
	el     Element
	count  int
	detach func()
}

// Bind creates a counter attached to el, starting at "count is 0".
func Bind(el Element) *Counter {
	c := &Counter{}
	c.Bind(el)
	return c
}

// Bind attaches the counter to el. Any previously attached listener is
// detached first and the count restarts at 0.
func (c *Counter) Bind(el Element) {
	c.Unbind()
	c.el = el
	c.count = 0
	c.detach = el.AddClickListener(c.click)
	c.render()
}

// Unbind detaches the counter's listener. Safe to call repeatedly.
func (c *Counter) Unbind() {
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
	c.el = nil
}

// Count returns the current click count.
func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) click() {
	c.count++
	c.render()
}

func (c *Counter) render() {
	c.el.SetText(fmt.Sprintf("count is %d", c.count))
}
