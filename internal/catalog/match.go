package catalog

import "strings"

const DefaultSuggestionLimit = 6

// NormalizeQuery trims surrounding whitespace and lowercases q.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Match returns at most limit items whose lowercased name contains the
// normalized query, in source order. A blank query matches nothing.
func Match(query string, items []Item, limit int) []Item {
	q := NormalizeQuery(query)
	if q == "" || limit <= 0 {
		return nil
	}

	out := make([]Item, 0, min(limit, len(items)))
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out
}
