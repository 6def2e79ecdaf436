package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"entity-annotator/internal/model"
)

// Document is a set of entity descriptions with shared application settings.
type Document struct {
	// JhiPrefix applies to entities without one. A nil pointer means unset;
	// an explicit empty string disables prefixing.
	JhiPrefix        *string         `yaml:"jhiPrefix,omitempty"`
	ProdDatabaseType model.Dialect   `yaml:"prodDatabaseType,omitempty"`
	Entities         []*model.Entity `yaml:"entities"`
}

// Defaults are application settings applied when neither the document nor
// the entity provides them.
type Defaults struct {
	JhiPrefix *string
	Dialect   model.Dialect
}

// LoadFile loads and parses an entity description file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses YAML or JSON data into a Document. A top-level "entities" key
// selects the multi-entity shape; otherwise the data is a single entity.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("entity description is empty")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse entity YAML: %w", err)
	}

	var doc Document

	if hasKey(&root, "entities") {
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode entities: %w", err)
		}
	} else {
		var e model.Entity
		if err := root.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}

		doc.Entities = []*model.Entity{&e}
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func hasKey(root *yaml.Node, key string) bool {
	n := root
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}

	if n.Kind != yaml.MappingNode {
		return false
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}

	return false
}

func validate(doc *Document) error {
	seen := make(map[string]struct{}, len(doc.Entities))

	for i, e := range doc.Entities {
		if e == nil || e.Name == "" {
			return fmt.Errorf("entity #%d has no name", i)
		}

		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("duplicate entity %q", e.Name)
		}

		seen[e.Name] = struct{}{}
	}

	return nil
}

// ApplyDefaults fills each entity's jhiPrefix and prodDatabaseType from the
// document, then from d, when the entity leaves them unset. An entity's
// explicit empty jhiPrefix is kept.
func (doc *Document) ApplyDefaults(d Defaults) {
	prefix := d.JhiPrefix
	if doc.JhiPrefix != nil {
		prefix = doc.JhiPrefix
	}

	dialect := d.Dialect
	if doc.ProdDatabaseType != "" {
		dialect = doc.ProdDatabaseType
	}

	for _, e := range doc.Entities {
		if e.JhiPrefix == nil && prefix != nil {
			e.JhiPrefix = model.String(*prefix)
		}

		if e.ProdDatabaseType == "" {
			e.ProdDatabaseType = dialect
		}
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal entities: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal entities: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write entity file %s: %w", path, err)
	}

	return nil
}
