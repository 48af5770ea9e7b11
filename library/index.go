package library

import (
	"sort"
	"strings"
)

// minDescriptionWordLength filters short description words out of the
// keyword index as noise. Title words and tags are indexed regardless
// of length.
const minDescriptionWordLength = 4

// indices holds the derived lookup tables kept consistent with the
// primary store: keyword -> item ids, tag -> occurrence count, and
// file path -> item id for duplicate detection.
//
// Buckets are keyed by item id rather than holding item references, so
// the item-to-index fan-out cannot form reference cycles.
type indices struct {
	keywords     map[string]map[string]struct{}
	tagFrequency map[string]int
	paths        map[string]string
}

func newIndices() *indices {
	ix := &indices{}
	ix.clear()
	return ix
}

func (ix *indices) clear() {
	ix.keywords = make(map[string]map[string]struct{})
	ix.tagFrequency = make(map[string]int)
	ix.paths = make(map[string]string)
}

// index files the item under every keyword derived from its title,
// tags, and description, bumps tag-frequency counters, and records the
// file path when one is set.
func (ix *indices) index(it Item) {
	for _, token := range itemTokens(it) {
		bucket, ok := ix.keywords[token]
		if !ok {
			bucket = make(map[string]struct{})
			ix.keywords[token] = bucket
		}
		bucket[it.ID] = struct{}{}
	}

	for _, tag := range it.Tags {
		ix.tagFrequency[tag]++
	}

	if it.FilePath != "" {
		ix.paths[it.FilePath] = it.ID
	}
}

// deindex removes the item's id from every keyword bucket it was filed
// under, decrements tag-frequency counters (dropping entries at zero),
// and removes the path entry. Buckets that empty out are removed so
// the indices stay identical to a from-scratch rebuild.
func (ix *indices) deindex(it Item) {
	for _, token := range itemTokens(it) {
		bucket, ok := ix.keywords[token]
		if !ok {
			continue
		}
		delete(bucket, it.ID)
		if len(bucket) == 0 {
			delete(ix.keywords, token)
		}
	}

	for _, tag := range it.Tags {
		if count, ok := ix.tagFrequency[tag]; ok {
			if count <= 1 {
				delete(ix.tagFrequency, tag)
			} else {
				ix.tagFrequency[tag] = count - 1
			}
		}
	}

	if it.FilePath != "" {
		delete(ix.paths, it.FilePath)
	}
}

// rebuild clears all indices and re-indexes every item in order. The
// result is identical to having indexed each item individually.
func (ix *indices) rebuild(items []Item) {
	ix.clear()
	for _, it := range items {
		ix.index(it)
	}
}

// lookup returns the keyword bucket for a token, or nil.
func (ix *indices) lookup(token string) map[string]struct{} {
	return ix.keywords[token]
}

// tagWeight sums the corpus-wide frequency of the item's tags, used as
// a ranking weight.
func (ix *indices) tagWeight(it Item) int {
	total := 0
	for _, tag := range it.Tags {
		total += ix.tagFrequency[tag]
	}
	return total
}

// pathID returns the item id recorded for a file path.
func (ix *indices) pathID(path string) (string, bool) {
	id, ok := ix.paths[path]
	return id, ok
}

// keywordSnapshot converts the keyword index to its serialized form,
// with each bucket sorted for stable output.
func (ix *indices) keywordSnapshot() map[string][]string {
	snapshot := make(map[string][]string, len(ix.keywords))
	for token, bucket := range ix.keywords {
		ids := make([]string, 0, len(bucket))
		for id := range bucket {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		snapshot[token] = ids
	}
	return snapshot
}

func (ix *indices) tagFrequencySnapshot() map[string]int {
	snapshot := make(map[string]int, len(ix.tagFrequency))
	for tag, count := range ix.tagFrequency {
		snapshot[tag] = count
	}
	return snapshot
}

func (ix *indices) pathSnapshot() map[string]string {
	snapshot := make(map[string]string, len(ix.paths))
	for path, id := range ix.paths {
		snapshot[path] = id
	}
	return snapshot
}

// restore replaces the indices with their serialized form.
func (ix *indices) restore(keywords map[string][]string, tagFrequency map[string]int, paths map[string]string) {
	ix.clear()
	for token, ids := range keywords {
		bucket := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			bucket[id] = struct{}{}
		}
		ix.keywords[token] = bucket
	}
	for tag, count := range tagFrequency {
		ix.tagFrequency[tag] = count
	}
	for path, id := range paths {
		ix.paths[path] = id
	}
}

// itemTokens returns the distinct index tokens for an item: cleaned
// title words, normalized tags, and cleaned description words of at
// least minDescriptionWordLength characters.
func itemTokens(it Item) []string {
	seen := make(map[string]struct{})
	var tokens []string
	add := func(token string) {
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, word := range strings.Fields(it.Title) {
		add(cleanToken(word))
	}
	for _, tag := range it.Tags {
		add(tag)
	}
	for _, word := range strings.Fields(it.Description) {
		cleaned := cleanToken(word)
		if len(cleaned) >= minDescriptionWordLength {
			add(cleaned)
		}
	}
	return tokens
}

// cleanToken lowercases a word and strips every non-alphanumeric
// ASCII character.
func cleanToken(word string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(word) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
