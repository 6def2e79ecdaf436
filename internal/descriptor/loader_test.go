package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entity-annotator/internal/model"
)

func TestParse_Document(t *testing.T) {
	yaml := `
jhiPrefix: jhi
prodDatabaseType: postgresql
entities:
  - name: Invoice
    annotations:
      lombok:
      noCodeComment: true
      apiVersion: v2
      schema: ""
      esjtPattern: 3
    fields:
      - name: id
        id: true
        options:
          generatedValue: identity
      - name: total
        options:
          column: order
  - name: Customer
    jhiPrefix: crm
    prodDatabaseType: mysql
`

	doc, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 2)

	require.NotNil(t, doc.JhiPrefix)
	assert.Equal(t, "jhi", *doc.JhiPrefix)
	assert.Equal(t, model.DialectPostgreSQL, doc.ProdDatabaseType)

	inv := doc.Entities[0]
	assert.Equal(t, "Invoice", inv.Name)

	v, ok := inv.Annotations.Lookup("lombok")
	require.True(t, ok)
	assert.True(t, v.IsFlag())

	v, ok = inv.Annotations.Lookup("noCodeComment")
	require.True(t, ok)
	assert.True(t, v.IsFlag())

	v, ok = inv.Annotations.Lookup("apiVersion")
	require.True(t, ok)
	text, hasText := v.Text()
	assert.True(t, hasText)
	assert.Equal(t, "v2", text)

	v, ok = inv.Annotations.Lookup("schema")
	require.True(t, ok)
	assert.Equal(t, model.WithText(""), v)

	v, ok = inv.Annotations.Lookup("esjtPattern")
	require.True(t, ok)
	assert.Equal(t, model.WithText("3"), v)

	require.Len(t, inv.Fields, 2)
	assert.True(t, inv.Fields[0].IsPrimaryKey)
	assert.Equal(t, model.WithText("identity"), inv.Fields[0].Options["generatedValue"])
	assert.Equal(t, model.WithText("order"), inv.Fields[1].Options["column"])

	assert.Equal(t, "crm", doc.Entities[1].Prefix())
	assert.Equal(t, model.DialectMySQL, doc.Entities[1].ProdDatabaseType)
}

func TestParse_SingleEntityJSON(t *testing.T) {
	json := `{
  "name": "Invoice",
  "annotations": {"apiUrl": "/api/invoices"},
  "fields": [{"name": "total", "options": {"column": "order"}}]
}`

	doc, err := Parse([]byte(json))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	assert.Nil(t, doc.JhiPrefix)
	assert.Equal(t, "Invoice", doc.Entities[0].Name)
	assert.Equal(t, model.WithText("/api/invoices"), doc.Entities[0].Annotations["apiUrl"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"empty", "   \n", "entity description is empty"},
		{"bad yaml", "name: [", "failed to parse entity YAML"},
		{"false flag", "name: A\nannotations:\n  lombok: false\n", "annotation flag can only be true"},
		{"nested value", "name: A\nannotations:\n  schema: {a: b}\n", "annotation value must be a scalar"},
		{"missing name", "entities:\n  - fields: []\n", "entity #0 has no name"},
		{"duplicate", "entities:\n  - name: A\n  - name: A\n", `duplicate entity "A"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	empty := ""

	tests := []struct {
		name           string
		doc            *Document
		defaults       Defaults
		expectedPrefix string
		expectedDB     model.Dialect
	}{
		{
			name:           "config defaults",
			doc:            &Document{Entities: []*model.Entity{{Name: "A"}}},
			defaults:       Defaults{JhiPrefix: model.String("jhi"), Dialect: model.DialectMySQL},
			expectedPrefix: "jhi",
			expectedDB:     model.DialectMySQL,
		},
		{
			name:           "document wins over config",
			doc:            &Document{JhiPrefix: model.String("app"), ProdDatabaseType: model.DialectOracle, Entities: []*model.Entity{{Name: "A"}}},
			defaults:       Defaults{JhiPrefix: model.String("jhi"), Dialect: model.DialectMySQL},
			expectedPrefix: "app",
			expectedDB:     model.DialectOracle,
		},
		{
			name:           "explicit empty document prefix",
			doc:            &Document{JhiPrefix: &empty, Entities: []*model.Entity{{Name: "A"}}},
			defaults:       Defaults{JhiPrefix: model.String("jhi")},
			expectedPrefix: "",
		},
		{
			name:           "entity wins",
			doc:            &Document{JhiPrefix: model.String("app"), Entities: []*model.Entity{{Name: "A", JhiPrefix: model.String("own"), ProdDatabaseType: model.DialectH2}}},
			defaults:       Defaults{Dialect: model.DialectMySQL},
			expectedPrefix: "own",
			expectedDB:     model.DialectH2,
		},
		{
			name:           "explicit empty entity prefix wins",
			doc:            &Document{JhiPrefix: model.String("app"), Entities: []*model.Entity{{Name: "A", JhiPrefix: &empty}}},
			defaults:       Defaults{JhiPrefix: model.String("jhi")},
			expectedPrefix: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doc.ApplyDefaults(tt.defaults)
			require.NotNil(t, tt.doc.Entities[0].JhiPrefix)
			assert.Equal(t, tt.expectedPrefix, *tt.doc.Entities[0].JhiPrefix)
			assert.Equal(t, tt.expectedDB, tt.doc.Entities[0].ProdDatabaseType)
		})
	}
}

func TestApplyDefaults_KeepsParsedEmptyPrefix(t *testing.T) {
	doc, err := Parse([]byte("name: Invoice\njhiPrefix: \"\"\nfields:\n  - name: total\n"))
	require.NoError(t, err)

	doc.ApplyDefaults(Defaults{JhiPrefix: model.String("jhi"), Dialect: model.DialectPostgreSQL})

	inv := doc.Entities[0]
	require.NotNil(t, inv.JhiPrefix, "an explicit empty prefix must survive decoding")
	assert.Equal(t, "", *inv.JhiPrefix)

	out, err := Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `jhiPrefix: ""`)

	unset, err := Parse([]byte("name: Invoice\n"))
	require.NoError(t, err)
	unset.ApplyDefaults(Defaults{JhiPrefix: model.String("jhi")})
	assert.Equal(t, "jhi", unset.Entities[0].Prefix())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	doc := &Document{
		Entities: []*model.Entity{{
			Name:        "Invoice",
			Annotations: model.Annotations{"lombok": model.Present(), "schema": model.WithText("sales")},
			Fields: []*model.Field{{
				Name:                   "id",
				IsPrimaryKey:           true,
				Options:                model.Annotations{"generatedValue": model.WithText("identity")},
				JpaGeneratedValue:      model.GenerationIdentity,
				LiquibaseAutoIncrement: model.Bool(true),
			}},
			Lombok:           model.Bool(true),
			HasSchema:        model.Bool(true),
			EntitySchemaName: model.String("sales"),
			HasAPIURL:        model.Bool(false),
		}},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(doc, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "lombok: true")
	assert.Contains(t, string(raw), "hasApiUrl: false")
	assert.NotContains(t, string(raw), "apiVersion")

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Entities, back.Entities)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read entity file")
}
