package model

import "strings"

// Dialect identifies the production database engine whose naming rules apply.
type Dialect string

const (
	DialectMySQL      Dialect = "mysql"
	DialectMariaDB    Dialect = "mariadb"
	DialectPostgreSQL Dialect = "postgresql"
	DialectOracle     Dialect = "oracle"
	DialectMSSQL      Dialect = "mssql"
	DialectH2         Dialect = "h2"
)

// Normalize returns the canonical lower-case form of the dialect name.
func (d Dialect) Normalize() Dialect {
	return Dialect(strings.ToLower(strings.TrimSpace(string(d))))
}

// GenerationStrategy is the JPA primary key generation strategy.
type GenerationStrategy string

const (
	GenerationIdentity GenerationStrategy = "identity"
	GenerationSequence GenerationStrategy = "sequence"
)

// State tracks whether an entity went through the pipeline.
type State int

const (
	StatePending State = iota
	StateProcessed
)

func (s State) String() string {
	if s == StateProcessed {
		return "processed"
	}

	return "pending"
}

// Entity describes one data entity together with the attributes derived from
// its annotations.
type Entity struct {
	Name             string      `yaml:"name"`
	// JhiPrefix is nil when the entity leaves it to the application default.
	// An explicit empty string disables prefixing.
	JhiPrefix        *string     `yaml:"jhiPrefix,omitempty"`
	ProdDatabaseType Dialect     `yaml:"prodDatabaseType,omitempty"`
	Fields           []*Field    `yaml:"fields,omitempty"`
	Annotations      Annotations `yaml:"annotations,omitempty"`

	Lombok           *bool   `yaml:"lombok,omitempty"`
	HasSchema        *bool   `yaml:"hasSchema,omitempty"`
	EntitySchemaName *string `yaml:"entitySchemaName,omitempty"`
	NoCodeComment    *bool   `yaml:"noCodeComment,omitempty"`
	EsjtPattern      *bool   `yaml:"esjtPattern,omitempty"`
	HasAPIVersion    *bool   `yaml:"hasApiVersion,omitempty"`
	APIVersion       *string `yaml:"apiVersion,omitempty"`
	HasAPIURL        *bool   `yaml:"hasApiUrl,omitempty"`
	APIURL           *string `yaml:"apiUrl,omitempty"`

	State State `yaml:"-"`
}

// Field describes one entity field.
type Field struct {
	Name         string      `yaml:"name"`
	IsPrimaryKey bool        `yaml:"id,omitempty"`
	Options      Annotations `yaml:"options,omitempty"`

	// FieldNameAsDatabaseColumn may be preset by the parser; when set it is
	// copied into ColumnName instead of deriving a new one.
	FieldNameAsDatabaseColumn string             `yaml:"fieldNameAsDatabaseColumn,omitempty"`
	ColumnName                string             `yaml:"columnName,omitempty"`
	JpaGeneratedValue         GenerationStrategy `yaml:"jpaGeneratedValue,omitempty"`
	LiquibaseAutoIncrement    *bool              `yaml:"liquibaseAutoIncrement,omitempty"`
}

// Prefix returns the entity's jhiPrefix, or "" when unset.
func (e *Entity) Prefix() string {
	if e.JhiPrefix == nil {
		return ""
	}

	return *e.JhiPrefix
}

// FieldByName returns the first field with the given name, or nil.
func (e *Entity) FieldByName(name string) *Field {
	for _, f := range e.Fields {
		if f != nil && f.Name == name {
			return f
		}
	}

	return nil
}

// Clone returns a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}

	out := *e
	out.JhiPrefix = cloneString(e.JhiPrefix)
	out.Annotations = e.Annotations.clone()
	out.Lombok = cloneBool(e.Lombok)
	out.HasSchema = cloneBool(e.HasSchema)
	out.EntitySchemaName = cloneString(e.EntitySchemaName)
	out.NoCodeComment = cloneBool(e.NoCodeComment)
	out.EsjtPattern = cloneBool(e.EsjtPattern)
	out.HasAPIVersion = cloneBool(e.HasAPIVersion)
	out.APIVersion = cloneString(e.APIVersion)
	out.HasAPIURL = cloneBool(e.HasAPIURL)
	out.APIURL = cloneString(e.APIURL)

	if e.Fields != nil {
		out.Fields = make([]*Field, len(e.Fields))
		for i, f := range e.Fields {
			if f == nil {
				continue
			}

			fc := *f
			fc.Options = f.Options.clone()
			fc.LiquibaseAutoIncrement = cloneBool(f.LiquibaseAutoIncrement)
			out.Fields[i] = &fc
		}
	}

	return &out
}

func (a Annotations) clone() Annotations {
	if a == nil {
		return nil
	}

	out := make(Annotations, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}

	return Bool(*p)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}

	return String(*p)
}
