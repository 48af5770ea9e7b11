package library

import (
	"fmt"
	"strings"
)

// ResolveItemID resolves a full item id or a unique prefix of one to
// the full id. Prefix matching is case-insensitive.
func (l *Library) ResolveItemID(prefix string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]string, 0, len(l.items))
	for _, it := range l.items {
		ids = append(ids, it.ID)
	}
	return resolveID(ids, prefix, ErrItemNotFound)
}

// ResolveTaskID resolves a full task id or a unique prefix of one to
// the full id.
func (l *Library) ResolveTaskID(prefix string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]string, 0, len(l.tasks))
	for _, task := range l.tasks {
		ids = append(ids, task.ID)
	}
	return resolveID(ids, prefix, ErrTaskNotFound)
}

func resolveID(ids []string, prefix string, notFound error) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(prefix))
	if normalized == "" {
		return "", fmt.Errorf("%w: empty id", notFound)
	}

	var matches []string
	for _, id := range ids {
		lower := strings.ToLower(id)
		if lower == normalized {
			return id, nil
		}
		if strings.HasPrefix(lower, normalized) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", notFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d ids", ErrAmbiguousIDPrefix, prefix, len(matches))
	}
}
