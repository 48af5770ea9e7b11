package library

import (
	"reflect"
	"testing"
)

func TestNewItem(t *testing.T) {
	item := NewItem("Dune", "Book")

	if item.ID == "" {
		t.Error("expected assigned ID")
	}
	if item.Title != "Dune" || item.Category != "Book" {
		t.Errorf("unexpected fields: %+v", item)
	}
	if item.CreatedAt.IsZero() || !item.UpdatedAt.Equal(item.CreatedAt) {
		t.Errorf("unexpected timestamps: %v %v", item.CreatedAt, item.UpdatedAt)
	}
}

func TestCloneIsDeep(t *testing.T) {
	item := NewItem("Dune", "Book")
	item.SetTags([]string{"scifi", "classic"})

	cloned := item.Clone()
	cloned.Tags[0] = "changed"

	if item.Tags[0] == "changed" {
		t.Fatal("Clone shares the tag slice")
	}
}

func TestTagOperations(t *testing.T) {
	item := NewItem("Dune", "Book")

	item.SetTags([]string{"SciFi", " Classic ", "scifi"})
	if want := []string{"classic", "scifi"}; !reflect.DeepEqual(item.Tags, want) {
		t.Fatalf("SetTags = %v, want %v", item.Tags, want)
	}

	item.AddTag("Epic")
	if !item.HasTag("epic") {
		t.Error("AddTag did not normalize and add")
	}
	item.AddTag("epic")
	if got := len(item.Tags); got != 3 {
		t.Errorf("duplicate AddTag grew tags to %d", got)
	}

	item.RemoveTag(" EPIC ")
	if item.HasTag("epic") {
		t.Error("RemoveTag did not normalize and remove")
	}

	if !item.HasTag("  SCIFI  ") {
		t.Error("HasTag should normalize its argument")
	}
}

func TestSetRating(t *testing.T) {
	item := NewItem("Dune", "Book")

	if err := item.SetRating(5); err != nil {
		t.Fatalf("SetRating(5): %v", err)
	}
	if item.Rating != 5 {
		t.Errorf("Rating = %d", item.Rating)
	}

	if err := item.SetRating(6); err == nil {
		t.Error("expected error for rating 6")
	}
	if err := item.SetRating(-1); err == nil {
		t.Error("expected error for rating -1")
	}
	if item.Rating != 5 {
		t.Errorf("rejected rating mutated the item: %d", item.Rating)
	}
}

func TestHasMedia(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"media url", Item{MediaURL: "https://example.com/talk"}, true},
		{"video file type", Item{FilePath: "/x/clip", FileType: ".MP4"}, true},
		{"audio path suffix", Item{FilePath: "/x/song.FLAC"}, true},
		{"document", Item{FilePath: "/x/paper.pdf", FileType: ".pdf"}, false},
		{"no file", Item{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.HasMedia(); got != tt.want {
				t.Errorf("HasMedia() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDocument(t *testing.T) {
	if !(Item{FileType: ".PDF"}).IsDocument() {
		t.Error("expected .PDF to be a document")
	}
	if (Item{FileType: ".mp3"}).IsDocument() {
		t.Error("expected .mp3 not to be a document")
	}
}
