// Package library implements the curio collection engine.
//
// The engine maintains a collection of items (notes, documents, media
// references) together with the derived structures that must stay
// consistent with it under mutation: a keyword index, a tag-frequency
// index, a file-path index for duplicate detection, a bounded undo
// stack of mementos, a bounded recently-viewed stack, and a
// priority-ordered task queue. The whole state persists to a single
// versioned binary file with rotating backups (see Repository).
//
// The public API mirrors what a UI or import shell needs:
//   - AddItem, UpdateItem, DeleteItem, GetItem for item lifecycle
//   - Search, ListItems, ListItemsByCategory, ListItemsByTag for querying
//   - AddTask, PeekNextTask, PollNextTask for scheduling
//   - CanUndo, Undo for reversing mutations
//   - Save, Load, CreateBackup for persistence
//
// A Library is constructed explicitly and passed to collaborators;
// there is no package-level instance.
package library

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Library is the in-process engine holding the item collection, its
// derived indices, the task queue, and the history stacks.
//
// All state is guarded by one mutex: the cross-structure invariants
// (item/index consistency, undo-stack agreement with the store) must
// change as a unit, so no finer-grained locking is offered.
type Library struct {
	mu   sync.Mutex
	repo *Repository

	// Primary store: insertion-ordered items plus id -> position.
	items []Item
	pos   map[string]int

	ix *indices

	// Task queue: insertion-ordered tasks plus id -> position.
	// Ordering is evaluated at query time because effective priority
	// depends on the clock.
	tasks   []Task
	taskPos map[string]int

	// recent holds item ids, oldest first; the top of the stack is the
	// last element.
	recent []string

	// undo holds mementos, oldest first.
	undo []Memento
}

// New returns an empty library backed by the given repository.
func New(repo *Repository) *Library {
	return &Library{
		repo:    repo,
		pos:     make(map[string]int),
		ix:      newIndices(),
		taskPos: make(map[string]int),
	}
}

// Open creates a library rooted at dir and loads any persisted state.
// A missing data file yields an empty library, not an error.
func Open(dir string) (*Library, error) {
	lib := New(NewRepository(dir))
	if err := lib.Load(); err != nil {
		return nil, err
	}
	return lib, nil
}

// AddItem adds a new item to the collection. An unset ID is assigned;
// a previously seen ID is rejected. The item is indexed and a CREATE
// memento is recorded so the addition can be undone.
func (l *Library) AddItem(item Item) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}
	item.Tags = normalizeTags(item.Tags)

	if err := ValidateItem(&item); err != nil {
		return Item{}, err
	}
	if _, exists := l.pos[item.ID]; exists {
		return Item{}, fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
	}

	stored := item.Clone()
	l.pushUndoLocked(newMemento(stored, OpCreate, "Created: "+stored.Title))

	l.pos[stored.ID] = len(l.items)
	l.items = append(l.items, stored)
	l.ix.index(stored)

	return stored.Clone(), nil
}

// UpdateItem replaces an existing item with the given version,
// preserving its position in the collection. The pre-update state is
// snapshotted as an UPDATE memento before anything changes.
func (l *Library) UpdateItem(item Item) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pos, ok := l.pos[item.ID]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, item.ID)
	}

	item.Tags = normalizeTags(item.Tags)
	if err := ValidateItem(&item); err != nil {
		return Item{}, err
	}

	existing := l.items[pos]
	// Creation time is immutable; callers cannot rewrite it.
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()

	l.pushUndoLocked(newMemento(existing, OpUpdate, "Updated: "+existing.Title))

	l.ix.deindex(existing)
	stored := item.Clone()
	l.items[pos] = stored
	l.ix.index(stored)

	return stored.Clone(), nil
}

// DeleteItem removes the item with the given id from the collection,
// the indices, and the recently-viewed stack. The deleted state is
// snapshotted as a DELETE memento so the removal can be undone.
func (l *Library) DeleteItem(id string) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pos, ok := l.pos[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	existing := l.items[pos]
	l.pushUndoLocked(newMemento(existing, OpDelete, "Deleted: "+existing.Title))

	l.removeItemLocked(id)
	l.dropRecentLocked(id)

	return existing.Clone(), nil
}

// GetItem returns the item with the given id and records the view on
// the recently-viewed stack. A miss is a normal query outcome, not an
// error.
func (l *Library) GetItem(id string) (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pos, ok := l.pos[id]
	if !ok {
		return Item{}, false
	}
	l.markViewedLocked(id)
	return l.items[pos].Clone(), true
}

// ListItems returns all items in insertion order.
func (l *Library) ListItems() []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	return cloneItems(l.items)
}

// ListItemsByCategory returns items whose category matches,
// case-insensitively, in insertion order.
func (l *Library) ListItemsByCategory(category string) []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	var matched []Item
	for _, it := range l.items {
		if strings.EqualFold(it.Category, category) {
			matched = append(matched, it.Clone())
		}
	}
	return matched
}

// ListItemsByTag returns items carrying the given tag, in insertion
// order. The tag is normalized before lookup.
func (l *Library) ListItemsByTag(tag string) []Item {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := l.ix.lookup(NormalizeTag(tag))
	if len(bucket) == 0 {
		return nil
	}

	var matched []Item
	for _, it := range l.items {
		if _, ok := bucket[it.ID]; ok {
			matched = append(matched, it.Clone())
		}
	}
	return matched
}

// ItemByPath returns the item recorded for the given file path.
func (l *Library) ItemByPath(path string) (Item, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, ok := l.ix.pathID(path)
	if !ok {
		return Item{}, false
	}
	pos, ok := l.pos[id]
	if !ok {
		return Item{}, false
	}
	return l.items[pos].Clone(), true
}

// IsDuplicatePath reports whether a file path is already present in
// the collection. Importers rely on this for dedup decisions.
func (l *Library) IsDuplicatePath(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.ix.pathID(path)
	return ok
}

// RebuildIndexes clears and rebuilds all derived indices from the
// primary store. Used after bulk loads or suspected index drift.
func (l *Library) RebuildIndexes() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ix.rebuild(l.items)
}

// ClearAll empties the collection, indices, task queue, and history
// stacks. The persisted data file is left untouched until the next
// Save.
func (l *Library) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.pos = make(map[string]int)
	l.ix.clear()
	l.tasks = nil
	l.taskPos = make(map[string]int)
	l.recent = nil
	l.undo = nil
}

// Stats summarizes the engine state for display.
type Stats struct {
	TotalItems     int            `json:"total_items"`
	TotalKeywords  int            `json:"total_keywords"`
	UniqueTags     int            `json:"unique_tags"`
	TotalTasks     int            `json:"total_tasks"`
	OverdueTasks   int            `json:"overdue_tasks"`
	RecentlyViewed int            `json:"recently_viewed"`
	UndoDepth      int            `json:"undo_depth"`
	Backups        int            `json:"backups"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// Stats returns current counts across the engine's structures.
func (l *Library) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	stats := Stats{
		TotalItems:     len(l.items),
		TotalKeywords:  len(l.ix.keywords),
		UniqueTags:     len(l.ix.tagFrequency),
		TotalTasks:     len(l.tasks),
		RecentlyViewed: len(l.recent),
		UndoDepth:      len(l.undo),
		Backups:        l.repo.BackupCount(),
		CategoryCounts: make(map[string]int),
	}
	for _, task := range l.tasks {
		if task.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}
	for _, it := range l.items {
		stats.CategoryCounts[it.Category]++
	}
	return stats
}

// Save persists the full engine state through the repository.
func (l *Library) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.repo.Save(l.snapshotLocked())
}

// Load replaces the in-memory state with the persisted state. A
// missing data file yields a fresh empty state.
func (l *Library) Load() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, err := l.repo.Load()
	if err != nil {
		return err
	}
	l.restoreLocked(st)
	return nil
}

// CreateBackup copies the live data file into the backup directory.
func (l *Library) CreateBackup() error {
	return l.repo.CreateBackup()
}

// BackupCount returns the number of backups currently retained.
func (l *Library) BackupCount() int {
	return l.repo.BackupCount()
}

// Repository exposes the persistence layer for advanced operations.
func (l *Library) Repository() *Repository {
	return l.repo
}

// snapshotLocked captures the full state as a serializable aggregate.
func (l *Library) snapshotLocked() *State {
	st := NewState()
	st.Items = cloneItems(l.items)
	st.KeywordIndex = l.ix.keywordSnapshot()
	st.TagFrequency = l.ix.tagFrequencySnapshot()
	st.PathIndex = l.ix.pathSnapshot()
	st.Tasks = cloneTasks(l.tasks)
	st.RecentlyViewed = append([]string(nil), l.recent...)
	st.UndoHistory = append([]Memento(nil), l.undo...)
	return st
}

// restoreLocked replaces all in-memory structures with the aggregate.
func (l *Library) restoreLocked(st *State) {
	l.items = cloneItems(st.Items)
	l.pos = make(map[string]int, len(l.items))
	for i, it := range l.items {
		l.pos[it.ID] = i
	}

	l.ix.restore(st.KeywordIndex, st.TagFrequency, st.PathIndex)

	l.tasks = cloneTasks(st.Tasks)
	l.taskPos = make(map[string]int, len(l.tasks))
	for i, task := range l.tasks {
		l.taskPos[task.ID] = i
	}

	l.recent = append([]string(nil), st.RecentlyViewed...)
	l.undo = append([]Memento(nil), st.UndoHistory...)
}

// removeItemLocked removes an item from the store and indices. The
// caller has already verified the id exists.
func (l *Library) removeItemLocked(id string) {
	pos := l.pos[id]
	l.ix.deindex(l.items[pos])
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	delete(l.pos, id)
	for i := pos; i < len(l.items); i++ {
		l.pos[l.items[i].ID] = i
	}
}

func cloneItems(items []Item) []Item {
	cloned := make([]Item, len(items))
	for i, it := range items {
		cloned[i] = it.Clone()
	}
	return cloned
}

func cloneTasks(tasks []Task) []Task {
	cloned := make([]Task, len(tasks))
	for i, task := range tasks {
		cloned[i] = task.Clone()
	}
	return cloned
}
