package library

const (
	// MaxRecentlyViewed caps the recently-viewed stack; the oldest
	// entry is evicted beyond this.
	MaxRecentlyViewed = 20

	// MaxUndoDepth caps the undo stack; the oldest memento is evicted
	// beyond this.
	MaxUndoDepth = 50
)

// ListRecentlyViewed returns the recently-viewed items, most recent
// first. Ids whose items no longer exist are skipped.
func (l *Library) ListRecentlyViewed() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	var recent []Item
	for i := len(l.recent) - 1; i >= 0; i-- {
		if pos, ok := l.pos[l.recent[i]]; ok {
			recent = append(recent, l.items[pos].Clone())
		}
	}
	return recent
}

// GoBack pops the current item off the recently-viewed stack and
// returns the one beneath it. It reports false when fewer than two
// items have been viewed.
func (l *Library) GoBack() (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.recent) < 2 {
		return Item{}, false
	}
	l.recent = l.recent[:len(l.recent)-1]
	pos, ok := l.pos[l.recent[len(l.recent)-1]]
	if !ok {
		return Item{}, false
	}
	return l.items[pos].Clone(), true
}

// CanUndo reports whether there is a mutation to undo.
func (l *Library) CanUndo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.undo) > 0
}

// Undo reverses the most recent mutation: undoing a create deletes the
// snapshotted item, undoing an update restores the pre-update
// snapshot in place, and undoing a delete re-inserts the snapshotted
// item. It reports false when there is nothing to undo.
//
// Undo is one-directional: reversing a mutation never records an undo
// entry of its own.
func (l *Library) Undo() (Memento, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.undo) == 0 {
		return Memento{}, false
	}

	memento := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	saved := memento.SavedItem()

	switch memento.Op {
	case OpCreate:
		if _, ok := l.pos[saved.ID]; ok {
			l.removeItemLocked(saved.ID)
		}
	case OpUpdate:
		// If the item was deleted after the snapshotted update, there is
		// nothing to restore into; the memento is still consumed.
		if pos, ok := l.pos[saved.ID]; ok {
			l.ix.deindex(l.items[pos])
			l.items[pos] = saved
			l.ix.index(saved)
		}
	case OpDelete:
		if _, ok := l.pos[saved.ID]; !ok {
			l.pos[saved.ID] = len(l.items)
			l.items = append(l.items, saved)
			l.ix.index(saved)
		}
	}

	return memento, true
}

// UndoHistory returns the undo stack, most recent first.
func (l *Library) UndoHistory() []Memento {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := make([]Memento, 0, len(l.undo))
	for i := len(l.undo) - 1; i >= 0; i-- {
		history = append(history, l.undo[i])
	}
	return history
}

// ClearUndoHistory destroys all mementos.
func (l *Library) ClearUndoHistory() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.undo = nil
}

// markViewedLocked pushes an id onto the recently-viewed stack,
// promoting it to the top if already present and evicting the oldest
// entry past the cap.
func (l *Library) markViewedLocked(id string) {
	l.dropRecentLocked(id)
	l.recent = append(l.recent, id)
	if len(l.recent) > MaxRecentlyViewed {
		copy(l.recent, l.recent[1:])
		l.recent = l.recent[:MaxRecentlyViewed]
	}
}

func (l *Library) dropRecentLocked(id string) {
	for i, existing := range l.recent {
		if existing == id {
			l.recent = append(l.recent[:i], l.recent[i+1:]...)
			return
		}
	}
}

func (l *Library) pushUndoLocked(m Memento) {
	l.undo = append(l.undo, m)
	if len(l.undo) > MaxUndoDepth {
		copy(l.undo, l.undo[1:])
		l.undo = l.undo[:MaxUndoDepth]
	}
}
