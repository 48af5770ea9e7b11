package library

import (
	"fmt"
	"testing"
)

func TestUndoCreateRemovesItem(t *testing.T) {
	lib := newTestLibrary(t)

	added := mustAddItem(t, lib, Item{Title: "Dune"})

	memento, ok := lib.Undo()
	if !ok {
		t.Fatal("expected undo to apply")
	}
	if memento.Op != OpCreate {
		t.Errorf("Op = %s, want create", memento.Op)
	}
	if _, ok := lib.GetItem(added.ID); ok {
		t.Error("item survived undo of create")
	}
	if lib.CanUndo() {
		t.Error("undo stack should be empty")
	}
}

func TestUndoUpdateRestoresPriorState(t *testing.T) {
	lib := newTestLibrary(t)

	added := mustAddItem(t, lib, Item{Title: "Dune", Rating: 3})

	changed := added
	changed.Title = "Dune Messiah"
	changed.Rating = 5
	if _, err := lib.UpdateItem(changed); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	memento, ok := lib.Undo()
	if !ok || memento.Op != OpUpdate {
		t.Fatalf("Undo = %+v, %v", memento, ok)
	}

	restored, ok := lib.GetItem(added.ID)
	if !ok {
		t.Fatal("item missing after undo of update")
	}
	if restored.Title != "Dune" || restored.Rating != 3 {
		t.Errorf("prior state not restored: %+v", restored)
	}
}

func TestUndoDeleteReinsertsItem(t *testing.T) {
	lib := newTestLibrary(t)

	added := mustAddItem(t, lib, Item{Title: "Dune", Tags: []string{"scifi"}})
	if _, err := lib.DeleteItem(added.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	memento, ok := lib.Undo()
	if !ok || memento.Op != OpDelete {
		t.Fatalf("Undo = %+v, %v", memento, ok)
	}

	restored, ok := lib.GetItem(added.ID)
	if !ok {
		t.Fatal("item not reinserted")
	}
	if !restored.HasTag("scifi") {
		t.Error("restored item lost its tags")
	}
	if got := lib.ListItemsByTag("scifi"); len(got) != 1 {
		t.Error("restored item not reindexed")
	}
}

func TestUndoIsOneDirectional(t *testing.T) {
	lib := newTestLibrary(t)

	mustAddItem(t, lib, Item{Title: "Dune"})

	if _, ok := lib.Undo(); !ok {
		t.Fatal("expected undo to apply")
	}
	// Reversing the create must not itself be undoable.
	if _, ok := lib.Undo(); ok {
		t.Fatal("undo of an undo should not exist")
	}
}

func TestUndoUpdateOfDeletedItemIsConsumed(t *testing.T) {
	lib := newTestLibrary(t)

	added := mustAddItem(t, lib, Item{Title: "Dune"})
	changed := added
	changed.Title = "Dune Messiah"
	if _, err := lib.UpdateItem(changed); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if _, err := lib.DeleteItem(added.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	// Drop the delete memento so the update memento sits on top while
	// its item is gone.
	lib.mu.Lock()
	lib.undo = lib.undo[:len(lib.undo)-1]
	lib.mu.Unlock()

	memento, ok := lib.Undo()
	if !ok || memento.Op != OpUpdate {
		t.Fatalf("Undo = %+v, %v", memento, ok)
	}
	if _, ok := lib.GetItem(added.ID); ok {
		t.Error("undo of an update must not resurrect a deleted item")
	}
	if history := lib.UndoHistory(); len(history) != 1 || history[0].Op != OpCreate {
		t.Errorf("unexpected remaining history: %v", history)
	}
}

func TestUndoStackCap(t *testing.T) {
	lib := newTestLibrary(t)

	first := mustAddItem(t, lib, Item{Title: "Item 0"})
	for i := 1; i <= MaxUndoDepth; i++ {
		mustAddItem(t, lib, Item{Title: fmt.Sprintf("Item %d", i)})
	}

	history := lib.UndoHistory()
	if len(history) != MaxUndoDepth {
		t.Fatalf("history length = %d, want %d", len(history), MaxUndoDepth)
	}
	// The oldest memento (for the first item) was evicted.
	for _, memento := range history {
		if memento.ItemID() == first.ID {
			t.Fatal("oldest memento should have been evicted")
		}
	}
}

func TestRecentlyViewedOrderAndPromotion(t *testing.T) {
	lib := newTestLibrary(t)

	a := mustAddItem(t, lib, Item{Title: "A"})
	b := mustAddItem(t, lib, Item{Title: "B"})
	c := mustAddItem(t, lib, Item{Title: "C"})

	lib.GetItem(a.ID)
	lib.GetItem(b.ID)
	lib.GetItem(c.ID)
	lib.GetItem(a.ID) // promote A back to the top

	recent := lib.ListRecentlyViewed()
	if len(recent) != 3 {
		t.Fatalf("recent length = %d", len(recent))
	}
	want := []string{"A", "C", "B"}
	for i, title := range want {
		if recent[i].Title != title {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i].Title, title)
		}
	}
}

func TestRecentlyViewedCap(t *testing.T) {
	lib := newTestLibrary(t)

	var first Item
	for i := 0; i < MaxRecentlyViewed+5; i++ {
		item := mustAddItem(t, lib, Item{Title: fmt.Sprintf("Item %d", i)})
		if i == 0 {
			first = item
		}
		lib.GetItem(item.ID)
	}

	recent := lib.ListRecentlyViewed()
	if len(recent) != MaxRecentlyViewed {
		t.Fatalf("recent length = %d, want %d", len(recent), MaxRecentlyViewed)
	}
	for _, item := range recent {
		if item.ID == first.ID {
			t.Fatal("oldest view should have been evicted")
		}
	}
}

func TestUndoHistoryMostRecentFirst(t *testing.T) {
	lib := newTestLibrary(t)

	added := mustAddItem(t, lib, Item{Title: "Dune"})
	changed := added
	changed.Rating = 5
	if _, err := lib.UpdateItem(changed); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	history := lib.UndoHistory()
	if len(history) != 2 {
		t.Fatalf("history length = %d", len(history))
	}
	if history[0].Op != OpUpdate || history[1].Op != OpCreate {
		t.Errorf("history order = %s, %s", history[0].Op, history[1].Op)
	}

	lib.ClearUndoHistory()
	if lib.CanUndo() {
		t.Error("history should be empty after clear")
	}
}

func TestGoBack(t *testing.T) {
	lib := newTestLibrary(t)

	a := mustAddItem(t, lib, Item{Title: "A"})
	b := mustAddItem(t, lib, Item{Title: "B"})

	if _, ok := lib.GoBack(); ok {
		t.Fatal("GoBack with empty history should fail")
	}

	lib.GetItem(a.ID)
	if _, ok := lib.GoBack(); ok {
		t.Fatal("GoBack with a single view should fail")
	}

	lib.GetItem(b.ID)
	previous, ok := lib.GoBack()
	if !ok || previous.ID != a.ID {
		t.Fatalf("GoBack = %+v, %v", previous, ok)
	}
}
