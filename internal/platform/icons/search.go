package icons

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	apperrors "github.com/sunit1986/JioBharatIQ-Server/internal/platform/errors"
)

// Search limits.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	maxSuggestions     = 3
)

// MatchType records which field of a definition matched a query.
type MatchType string

const (
	MatchName    MatchType = "name"
	MatchKeyword MatchType = "keyword"
)

// Match is one search hit.
type Match struct {
	Key       Key       `json:"key"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Keywords  []string  `json:"keywords"`
	MatchType MatchType `json:"match_type"`
}

// SearchResult holds the hits for a query. When nothing matches,
// MatchingCategories and Suggestions help the caller refine the query.
type SearchResult struct {
	Query              string   `json:"query"`
	Matches            []Match  `json:"matches"`
	MatchingCategories []string `json:"matching_categories,omitempty"`
	Suggestions        []Key    `json:"suggestions,omitempty"`
}

// ClampLimit maps a requested result limit into 1..MaxSearchLimit. Zero and
// negative values select DefaultSearchLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

// Find searches defs for query. Names are matched first; a definition whose
// name does not match is checked against its keywords. Matching is a case
// insensitive substring test and results keep catalog order.
func Find(defs []Definition, query string, limit int) (SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}, apperrors.New(apperrors.CodeInvalidArgument, "search query is required")
	}
	limit = ClampLimit(limit)
	needle := strings.ToLower(query)
	defs = Unique(defs)

	result := SearchResult{Query: query, Matches: []Match{}}
	for _, def := range defs {
		if len(result.Matches) >= limit {
			break
		}
		matchType, ok := matchDefinition(def, needle)
		if !ok {
			continue
		}
		result.Matches = append(result.Matches, Match{
			Key:       def.Key,
			Name:      SnakeName(def.Key),
			Category:  def.Category,
			Keywords:  append([]string(nil), def.Keywords...),
			MatchType: matchType,
		})
	}
	if len(result.Matches) > 0 {
		return result, nil
	}

	for _, category := range Categories(defs) {
		if strings.Contains(strings.ToLower(category), needle) {
			result.MatchingCategories = append(result.MatchingCategories, category)
		}
	}
	result.Suggestions = suggest(defs, needle)
	return result, nil
}

func matchDefinition(def Definition, needle string) (MatchType, bool) {
	if strings.Contains(strings.ToLower(string(def.Key)), needle) ||
		strings.Contains(SnakeName(def.Key), needle) {
		return MatchName, true
	}
	for _, keyword := range def.Keywords {
		if strings.Contains(strings.ToLower(keyword), needle) {
			return MatchKeyword, true
		}
	}
	return "", false
}

// suggest returns the keys closest to needle by edit distance. The common
// "ic_" prefix is ignored so short queries are compared to the meaningful
// part of each name.
func suggest(defs []Definition, needle string) []Key {
	type candidate struct {
		key  Key
		dist int
	}
	target := strings.TrimPrefix(needle, "ic_")
	candidates := make([]candidate, 0, len(defs))
	for _, def := range defs {
		name := strings.TrimPrefix(SnakeName(def.Key), "ic_")
		candidates = append(candidates, candidate{
			key:  def.Key,
			dist: levenshtein.ComputeDistance(target, name),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].key < candidates[j].key
	})
	n := min(maxSuggestions, len(candidates))
	suggestions := make([]Key, 0, n)
	for _, c := range candidates[:n] {
		suggestions = append(suggestions, c.key)
	}
	return suggestions
}
