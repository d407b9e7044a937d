// SPDX-License-Identifier: MIT

package preference

// Len returns the number of candidate pairs not yet tried.
func (m *Model) Len() int { return len(m.queue) - m.head }

// Consumed returns the number of candidate pairs already popped.
func (m *Model) Consumed() int { return m.head }

// Exhausted reports whether every candidate pair has been tried.
func (m *Model) Exhausted() bool { return m.head >= len(m.queue) }

// Peek returns the next untried pair without consuming it.
func (m *Model) Peek() (Pair, bool) {
	if m.Exhausted() {
		return Pair{}, false
	}

	return m.queue[m.head], true
}

// Pop consumes and returns the next untried pair. Each pair is returned at
// most once over the model's lifetime.
func (m *Model) Pop() (Pair, bool) {
	p, ok := m.Peek()
	if ok {
		m.head++
	}

	return p, ok
}

// Remaining returns a copy of the untried pairs, best first.
func (m *Model) Remaining() []Pair {
	out := make([]Pair, m.Len())
	copy(out, m.queue[m.head:])

	return out
}

// Ranked returns a copy of the full ranked pair order, consumed pairs included.
func (m *Model) Ranked() []Pair {
	out := make([]Pair, len(m.queue))
	copy(out, m.queue)

	return out
}
