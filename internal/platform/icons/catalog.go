package icons

import (
	"sort"
	"strings"

	"github.com/sunit1986/JioBharatIQ-Server/internal/platform/svg"
)

// Key is a canonical icon name in PascalCase, e.g. "IcArrowBack".
type Key string

// Constructor builds a fresh graphic for one icon. Constructors take no
// arguments, keep no state, and return an equivalent element on every call.
type Constructor func() svg.Element

// Definition describes a catalog entry.
type Definition struct {
	Key      Key
	Category string
	Keywords []string
	Build    Constructor
}

// Catalog returns a copy of the built-in definitions in registration order.
// Keys registered more than once appear once per registration.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Unique returns defs with one definition per key. The last registration of
// a key wins and takes the position of its first appearance.
func Unique(defs []Definition) []Definition {
	index := make(map[Key]int, len(defs))
	result := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if i, ok := index[def.Key]; ok {
			result[i] = def
			continue
		}
		index[def.Key] = len(result)
		result = append(result, def)
	}
	return result
}

// Categories returns the sorted distinct categories used by defs.
func Categories(defs []Definition) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, def := range defs {
		if def.Category == "" {
			continue
		}
		if _, ok := seen[def.Category]; ok {
			continue
		}
		seen[def.Category] = struct{}{}
		result = append(result, def.Category)
	}
	sort.Strings(result)
	return result
}

// KeysIn returns the sorted distinct keys of defs in category, ignoring
// case. An empty category selects every definition.
func KeysIn(defs []Definition, category string) []Key {
	category = strings.TrimSpace(category)
	keys := []Key{}
	for _, def := range Unique(defs) {
		if category != "" && !strings.EqualFold(def.Category, category) {
			continue
		}
		keys = append(keys, def.Key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./internal/platform/icons`.\n\n")
	builder.WriteString("| Key | Name | Category | Keywords |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range Unique(catalog) {
		builder.WriteString("| ")
		builder.WriteString(string(def.Key))
		builder.WriteString(" | ")
		builder.WriteString(SnakeName(def.Key))
		builder.WriteString(" | ")
		builder.WriteString(def.Category)
		builder.WriteString(" | ")
		builder.WriteString(strings.Join(def.Keywords, ", "))
		builder.WriteString(" |\n")
	}
	return builder.String()
}
