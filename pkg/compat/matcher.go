package compat

import (
	"strings"

	"skincare-assistant-be/internal/entity"
)

// Pair is one flagged incompatibility, directional: A's tags matched B's name.
type Pair struct {
	A *entity.IngredientRecord
	B *entity.IngredientRecord
}

// Result partitions the user's input lines into resolved records and literal
// unmatched strings, plus the flagged incompatibility pairs.
type Result struct {
	Found    []*entity.IngredientRecord
	NotFound []string
	Pairs    []Pair
}

// Match resolves each input line against the catalog and scans the resolved
// records pairwise for incompatibilities.
//
// Resolution is first-match-wins in catalog definition order: a record is
// selected when its lowercased display name or its key contains the trimmed,
// lowercased line as a substring. Empty lines stay in as empty tokens and
// never resolve (Go's Contains(s, "") is true, so they are skipped before the
// scan). Duplicate resolutions are kept.
func Match(catalog []*entity.IngredientRecord, input string) Result {
	var result Result

	for _, line := range strings.Split(input, "\n") {
		token := strings.ToLower(strings.TrimSpace(line))
		record := resolve(catalog, token)
		if record == nil {
			result.NotFound = append(result.NotFound, token)
			continue
		}
		result.Found = append(result.Found, record)
	}

	result.Pairs = incompatiblePairs(result.Found)
	return result
}

func resolve(catalog []*entity.IngredientRecord, token string) *entity.IngredientRecord {
	if token == "" {
		return nil
	}
	for _, record := range catalog {
		if strings.Contains(strings.ToLower(record.Name), token) ||
			strings.Contains(record.Key, token) {
			return record
		}
	}
	return nil
}

// incompatiblePairs checks every ordered pair (a, b) of distinct record
// instances. A pair is flagged when any of a's tags, underscores replaced
// with spaces, is a substring of b's lowercased display name. Both directions
// are evaluated independently, so a mutual conflict yields two pairs, and
// repeated resolutions of different records yield repeated pairs.
func incompatiblePairs(found []*entity.IngredientRecord) []Pair {
	var pairs []Pair
	for _, a := range found {
		for _, b := range found {
			if a == b {
				continue
			}
			if conflicts(a, b) {
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
	}
	return pairs
}

func conflicts(a, b *entity.IngredientRecord) bool {
	name := strings.ToLower(b.Name)
	for _, tag := range a.IncompatibleWith {
		if strings.Contains(name, strings.ReplaceAll(tag, "_", " ")) {
			return true
		}
	}
	return false
}
