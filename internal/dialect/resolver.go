package dialect

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"entity-annotator/internal/model"
)

//go:embed keywords.yaml
var builtinKeywords []byte

// Resolver answers reserved-keyword queries. It is immutable and safe for
// concurrent use.
type Resolver struct {
	tables map[model.Dialect]map[string]struct{}
}

// NewResolver builds a resolver from dialect -> keyword lists.
func NewResolver(tables map[model.Dialect][]string) *Resolver {
	r := &Resolver{tables: make(map[model.Dialect]map[string]struct{}, len(tables))}
	r.merge(tables)

	return r
}

var loadBuiltin = sync.OnceValues(func() (*Resolver, error) {
	tables, err := Parse(builtinKeywords)
	if err != nil {
		return nil, fmt.Errorf("builtin keyword tables: %w", err)
	}

	return NewResolver(tables), nil
})

// Builtin returns the resolver for the embedded keyword tables.
// It panics if the embedded tables are malformed.
func Builtin() *Resolver {
	r, err := loadBuiltin()
	if err != nil {
		panic(err)
	}

	return r
}

// IsReserved reports whether name is a reserved keyword of dialect.
// The comparison is case-insensitive.
func (r *Resolver) IsReserved(name string, dialect model.Dialect) bool {
	if r == nil {
		return false
	}

	words, ok := r.tables[dialect.Normalize()]
	if !ok {
		return false
	}

	_, ok = words[strings.ToUpper(strings.TrimSpace(name))]

	return ok
}

// With returns a new resolver containing r's keywords plus extra.
func (r *Resolver) With(extra map[model.Dialect][]string) *Resolver {
	out := &Resolver{tables: make(map[model.Dialect]map[string]struct{}, len(r.tables)+len(extra))}

	for d, words := range r.tables {
		set := make(map[string]struct{}, len(words))
		for w := range words {
			set[w] = struct{}{}
		}

		out.tables[d] = set
	}

	out.merge(extra)

	return out
}

// Dialects returns the known dialects in sorted order.
func (r *Resolver) Dialects() []model.Dialect {
	out := make([]model.Dialect, 0, len(r.tables))
	for d := range r.tables {
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of keywords known for dialect.
func (r *Resolver) Len(dialect model.Dialect) int {
	return len(r.tables[dialect.Normalize()])
}

func (r *Resolver) merge(tables map[model.Dialect][]string) {
	for d, words := range tables {
		d = d.Normalize()

		set, ok := r.tables[d]
		if !ok {
			set = make(map[string]struct{}, len(words))
			r.tables[d] = set
		}

		for _, w := range words {
			w = strings.ToUpper(strings.TrimSpace(w))
			if w != "" {
				set[w] = struct{}{}
			}
		}
	}
}

// keywordFile is the layout of keywords.yaml.
type keywordFile struct {
	Dialects map[model.Dialect]wordList `yaml:"dialects"`
}

// wordList flattens one level of nested sequences, so a shared list can be
// spliced in with a YAML alias. Entries keep their literal text: NULL and TRUE
// are keywords, not YAML null or bool.
type wordList []string

func (w *wordList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: keyword list must be a sequence", node.Line)
	}

	for _, item := range node.Content {
		if item.Kind == yaml.AliasNode {
			item = item.Alias
		}

		switch item.Kind {
		case yaml.ScalarNode:
			*w = append(*w, item.Value)
		case yaml.SequenceNode:
			for _, nested := range item.Content {
				if nested.Kind != yaml.ScalarNode {
					return fmt.Errorf("line %d: keyword must be a scalar", nested.Line)
				}

				*w = append(*w, nested.Value)
			}
		default:
			return fmt.Errorf("line %d: keyword must be a scalar", item.Line)
		}
	}

	return nil
}

// Parse decodes a keyword table document.
func Parse(data []byte) (map[model.Dialect][]string, error) {
	var kf keywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("failed to parse keyword YAML: %w", err)
	}

	out := make(map[model.Dialect][]string, len(kf.Dialects))
	for d, words := range kf.Dialects {
		out[d] = words
	}

	return out, nil
}
