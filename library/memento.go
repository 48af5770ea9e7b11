package library

import (
	"time"

	"github.com/google/uuid"
)

// MementoOp identifies the mutation a memento snapshots.
type MementoOp string

const (
	// OpCreate records that an item was created.
	OpCreate MementoOp = "create"

	// OpUpdate records that an item was edited.
	OpUpdate MementoOp = "update"

	// OpDelete records that an item was deleted.
	OpDelete MementoOp = "delete"
)

// ValidMementoOps returns all valid memento operation values.
func ValidMementoOps() []MementoOp {
	return []MementoOp{OpCreate, OpUpdate, OpDelete}
}

// IsValid returns true if the operation is a known value.
func (op MementoOp) IsValid() bool {
	for _, valid := range ValidMementoOps() {
		if op == valid {
			return true
		}
	}
	return false
}

// Memento is an immutable snapshot of one item, taken immediately
// before a mutation so the pre-mutation state can be restored.
//
// The snapshot is a value copy: it shares no storage with the live
// item it was cloned from, so later edits to the live item cannot
// corrupt the undo history.
type Memento struct {
	// ID uniquely identifies the memento.
	ID string `json:"id"`

	// Op is the mutation this memento snapshots.
	Op MementoOp `json:"op"`

	// Description is a human-readable summary of the mutation.
	Description string `json:"description"`

	// CreatedAt is when the memento was taken.
	CreatedAt time.Time `json:"created_at"`

	// Item is the snapshotted item state.
	Item Item `json:"item"`
}

// newMemento captures a deep copy of the item tagged with the
// operation about to be applied.
func newMemento(it Item, op MementoOp, description string) Memento {
	return Memento{
		ID:          uuid.NewString(),
		Op:          op,
		Description: description,
		CreatedAt:   time.Now(),
		Item:        it.Clone(),
	}
}

// SavedItem returns a copy of the snapshotted item. A copy is returned
// so callers cannot mutate the stored snapshot.
func (m Memento) SavedItem() Item {
	return m.Item.Clone()
}

// ItemID returns the id of the snapshotted item.
func (m Memento) ItemID() string {
	return m.Item.ID
}
