package parts

// The MRU list has exactly two mutation rules: a part's focus moves it to
// the front, and unregistration removes it. Nothing else may reorder it.

// promoteMRULocked moves part to the front of the MRU list.
func (c *Coordinator) promoteMRULocked(part Part) {
	c.removeFromMRULocked(part)
	c.mru = append([]Part{part}, c.mru...)
}

// removeFromMRULocked removes part from the MRU list if present.
func (c *Coordinator) removeFromMRULocked(part Part) {
	for i, p := range c.mru {
		if p == part {
			c.mru = append(c.mru[:i], c.mru[i+1:]...)
			return
		}
	}
}

// MostRecentlyActivePart returns the MRU head, or the main part when the
// list is empty.
func (c *Coordinator) MostRecentlyActivePart() Part {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mostRecentlyActiveLocked()
}

func (c *Coordinator) mostRecentlyActiveLocked() Part {
	if len(c.mru) > 0 {
		return c.mru[0]
	}
	return c.main
}

// PartsByRecency returns every registered part ordered by activation
// recency. Parts not yet present in the MRU list are appended in
// registration order, so every live part is represented exactly once.
func (c *Coordinator) PartsByRecency() []Part {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.partsByRecencyLocked()
}

func (c *Coordinator) partsByRecencyLocked() []Part {
	seen := make(map[Part]bool, len(c.parts))
	out := make([]Part, 0, len(c.parts))

	for _, p := range c.mru {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, rp := range c.parts {
		if !seen[rp.part] {
			seen[rp.part] = true
			out = append(out, rp.part)
		}
	}
	return out
}
