package library

import (
	"sort"
	"strings"
	"time"
)

// Relevance weights. Keyword matches dominate, tag popularity and the
// user rating contribute, and newer items get a small boost.
const (
	keywordMatchWeight = 10
	tagFrequencyWeight = 2
	ratingWeight       = 5

	freshRecencyBonus  = 5 // created within the last 7 days
	recentRecencyBonus = 2 // created within the last 30 days
)

// SearchResult pairs an item with its computed relevance and the raw
// match counts the score was derived from.
type SearchResult struct {
	// Item is the matched item.
	Item Item `json:"item"`

	// Relevance is the computed ranking score.
	Relevance int `json:"relevance"`

	// KeywordMatches is how many distinct query tokens matched the item.
	KeywordMatches int `json:"keyword_matches"`

	// TagFrequency is the summed corpus frequency of the item's tags.
	TagFrequency int `json:"tag_frequency"`
}

// Search resolves a query to a relevance-ordered result list. The
// query is lowercased, split on whitespace, and each token stripped of
// non-alphanumeric characters; a blank query returns no results.
// Results are ordered by relevance descending, ties broken by creation
// time descending. The recency bonus is evaluated against the clock at
// query time.
func (l *Library) Search(query string) []SearchResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.searchLocked(query, time.Now())
}

func (l *Library) searchLocked(query string, now time.Time) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	// Tally, per item, how many query tokens matched. Each bucket is a
	// set, so one token counts at most once per item no matter how many
	// indexed forms it matched.
	matchCounts := make(map[string]int)
	for _, word := range strings.Fields(query) {
		token := cleanToken(word)
		if token == "" {
			continue
		}
		for id := range l.ix.lookup(token) {
			matchCounts[id]++
		}
	}

	results := make([]SearchResult, 0, len(matchCounts))
	for id, matches := range matchCounts {
		pos, ok := l.pos[id]
		if !ok {
			continue
		}
		it := l.items[pos]
		tagFreq := l.ix.tagWeight(it)
		results = append(results, SearchResult{
			Item:           it.Clone(),
			Relevance:      relevance(it, matches, tagFreq, now),
			KeywordMatches: matches,
			TagFrequency:   tagFreq,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Relevance != b.Relevance {
			return a.Relevance > b.Relevance
		}
		if !a.Item.CreatedAt.Equal(b.Item.CreatedAt) {
			return a.Item.CreatedAt.After(b.Item.CreatedAt)
		}
		return a.Item.ID < b.Item.ID
	})
	return results
}

// relevance computes the ranking score for a matched item.
func relevance(it Item, keywordMatches, tagFrequency int, now time.Time) int {
	score := keywordMatches*keywordMatchWeight +
		tagFrequency*tagFrequencyWeight +
		it.Rating*ratingWeight
	return score + recencyBonus(it.CreatedAt, now)
}

func recencyBonus(createdAt, now time.Time) int {
	age := now.Sub(createdAt)
	switch {
	case age < 7*24*time.Hour:
		return freshRecencyBonus
	case age < 30*24*time.Hour:
		return recentRecencyBonus
	default:
		return 0
	}
}
