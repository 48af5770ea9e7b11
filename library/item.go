package library

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	internalstrings "github.com/curiolib/curio/internal/strings"
)

// Item represents a single library record: a note, a document, or a
// media reference.
type Item struct {
	// ID is a unique identifier, assigned once at creation and never
	// reused or reassigned.
	ID string `json:"id"`

	// Title is the short display name of the item.
	Title string `json:"title"`

	// Category groups items for browsing (e.g. "PDF Document", "Audio").
	Category string `json:"category"`

	// Tags is the normalized tag set: lowercase, trimmed, sorted,
	// no duplicates.
	Tags []string `json:"tags,omitempty"`

	// Rating is the user rating on a 0-5 scale.
	Rating int `json:"rating"`

	// Description provides free-text context about the item.
	Description string `json:"description,omitempty"`

	// FilePath is the path of a linked local file, if any.
	FilePath string `json:"file_path,omitempty"`

	// MediaURL references an online resource, if any.
	MediaURL string `json:"media_url,omitempty"`

	// FileType is the file extension including the leading dot.
	FileType string `json:"file_type,omitempty"`

	// FileSize is the linked file's size in bytes.
	FileSize int64 `json:"file_size,omitempty"`

	// CreatedAt is when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the item was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItem returns an item with a fresh ID and creation timestamps.
func NewItem(title, category string) Item {
	now := time.Now()
	return Item{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the item. The copy shares no mutable
// storage with the receiver, so mutating one can never leak into the
// other.
func (it Item) Clone() Item {
	copied := it
	if it.Tags != nil {
		copied.Tags = append([]string(nil), it.Tags...)
	}
	return copied
}

// Equal reports whether two items refer to the same record. Identity
// is the ID alone.
func (it Item) Equal(other Item) bool {
	return it.ID == other.ID
}

// NormalizeTag lowercases and trims a tag.
func NormalizeTag(tag string) string {
	return internalstrings.NormalizeLowerTrimSpace(tag)
}

// SetTags replaces the tag set with the normalized, deduplicated form
// of the given tags.
func (it *Item) SetTags(tags []string) {
	it.Tags = normalizeTags(tags)
	it.touch()
}

// AddTag adds a tag, normalizing it first. Empty and duplicate tags
// are ignored.
func (it *Item) AddTag(tag string) {
	normalized := NormalizeTag(tag)
	if normalized == "" || it.HasTag(normalized) {
		return
	}
	it.Tags = append(it.Tags, normalized)
	sort.Strings(it.Tags)
	it.touch()
}

// RemoveTag removes a tag, normalizing it first.
func (it *Item) RemoveTag(tag string) {
	normalized := NormalizeTag(tag)
	for i, existing := range it.Tags {
		if existing == normalized {
			it.Tags = append(it.Tags[:i], it.Tags[i+1:]...)
			it.touch()
			return
		}
	}
}

// HasTag reports whether the item carries the given tag.
func (it Item) HasTag(tag string) bool {
	normalized := NormalizeTag(tag)
	for _, existing := range it.Tags {
		if existing == normalized {
			return true
		}
	}
	return false
}

// SetRating sets the rating, rejecting values outside [0,5].
func (it *Item) SetRating(rating int) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}
	it.Rating = rating
	it.touch()
	return nil
}

func (it *Item) touch() {
	it.UpdatedAt = time.Now()
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".flv": true,
	".wmv": true, ".webm": true, ".mkv": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".m4a": true, ".aac": true,
	".ogg": true, ".flac": true, ".wma": true,
}

var documentExtensions = map[string]bool{
	".pdf": true, ".txt": true, ".md": true, ".doc": true, ".docx": true,
}

// HasMedia reports whether the item references audio or video content,
// either through a media URL or a linked media file.
func (it Item) HasMedia() bool {
	if it.MediaURL != "" {
		return true
	}
	if it.FilePath == "" {
		return false
	}
	lowerType := internalstrings.NormalizeLower(it.FileType)
	if videoExtensions[lowerType] || audioExtensions[lowerType] {
		return true
	}
	lowerPath := internalstrings.NormalizeLower(it.FilePath)
	for ext := range videoExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return true
		}
	}
	for ext := range audioExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return true
		}
	}
	return false
}

// IsDocument reports whether the item represents a document file.
func (it Item) IsDocument() bool {
	return documentExtensions[internalstrings.NormalizeLower(it.FileType)]
}

// normalizeTags normalizes, deduplicates, and sorts a tag list.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		cleaned := NormalizeTag(tag)
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}
	if len(normalized) == 0 {
		return nil
	}
	sort.Strings(normalized)
	return normalized
}
