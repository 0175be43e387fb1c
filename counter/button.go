// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package counter

// Button is an in-memory Element for demos and tests. Click simulates user
// input by firing every registered listener in registration order.
type Button struct {
	text      string
	nextID    int
	listeners []buttonListener
}

type buttonListener struct {
	id int
	fn func()
}

func (b *Button) SetText(text string) {
	b.text = text
}

// Text returns the currently displayed text.
func (b *Button) Text() string {
	return b.text
}

func (b *Button) AddClickListener(handler func()) func() {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, buttonListener{id: id, fn: handler})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Click fires every registered listener once.
func (b *Button) Click() {
	for _, l := range b.listeners {
		l.fn()
	}
}

// ListenerCount reports how many listeners are attached.
func (b *Button) ListenerCount() int {
	return len(b.listeners)
}
