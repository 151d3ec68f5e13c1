// Package schema parses GSettings-style XML schema documents into an
// ordered sequence of key declarations and maps each declaration to the
// semantic type its generated accessors will use.
package schema

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

// Document is the parsed form of one schema element. It is built once per
// generation run and never mutated afterwards.
type Document struct {
	SchemaID string
	Keys     []Key // document order, which fixes generated-code order
}

// Key is a single key declaration extracted from the schema.
type Key struct {
	Name           string
	Type           string // raw type signature, e.g. "b", "i", "as"
	DefaultLiteral string
	Summary        string
	Description    string
	Choices        []string // declaration order; empty for unconstrained keys
}

// keyNameRe is the GSettings key-name grammar: lowercase segments of
// letters and digits separated by single dashes, starting with a letter.
var keyNameRe = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// XML document shapes. Default uses a pointer so an absent element can be
// told apart from an empty one.
type xmlSchemaList struct {
	XMLName xml.Name    `xml:"schemalist"`
	Schemas []xmlSchema `xml:"schema"`
}

type xmlSchema struct {
	ID   string   `xml:"id,attr"`
	Path string   `xml:"path,attr"`
	Keys []xmlKey `xml:"key"`
}

type xmlKey struct {
	Name        string      `xml:"name,attr"`
	Type        string      `xml:"type,attr"`
	Default     *xmlText    `xml:"default"`
	Summary     string      `xml:"summary"`
	Description string      `xml:"description"`
	Choices     []xmlChoice `xml:"choices>choice"`
}

type xmlText struct {
	Value string `xml:",chardata"`
}

type xmlChoice struct {
	Value string `xml:"value,attr"`
}

// Parse reads a schema document and returns the declarations of the schema
// whose id attribute equals schemaID. An empty schemaID selects the
// document's only schema and fails when there is more than one. All
// failures are *Error values; malformed XML is wrapped.
func Parse(data []byte, schemaID string) (*Document, error) {
	var list xmlSchemaList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("malformed schema document: %w", err)
	}

	target, err := selectSchema(list.Schemas, schemaID)
	if err != nil {
		return nil, err
	}

	doc := &Document{SchemaID: target.ID}
	seen := make(map[string]bool, len(target.Keys))

	for _, k := range target.Keys {
		key, err := extractKey(k)
		if err != nil {
			return nil, err
		}
		if seen[key.Name] {
			return nil, errf(KindNameCollision, key.Name, "name", "declared more than once")
		}
		seen[key.Name] = true
		doc.Keys = append(doc.Keys, key)
	}

	return doc, nil
}

// ListSchemaIDs returns the id of every schema element in the document, in
// document order. Used by schema-file discovery.
func ListSchemaIDs(data []byte) ([]string, error) {
	var list xmlSchemaList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("malformed schema document: %w", err)
	}
	ids := make([]string, 0, len(list.Schemas))
	for _, s := range list.Schemas {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

func selectSchema(schemas []xmlSchema, schemaID string) (*xmlSchema, error) {
	if schemaID == "" {
		switch len(schemas) {
		case 1:
			return &schemas[0], nil
		case 0:
			return nil, errf(KindSchemaNotFound, "", "", "document declares no schema")
		default:
			return nil, errf(KindSchemaNotFound, "", "", "document declares %d schemas, a schema id is required", len(schemas))
		}
	}
	for i := range schemas {
		if schemas[i].ID == schemaID {
			return &schemas[i], nil
		}
	}
	return nil, errf(KindSchemaNotFound, "", "", "no schema with id %q", schemaID)
}

func extractKey(k xmlKey) (Key, error) {
	name := strings.TrimSpace(k.Name)
	if name == "" {
		return Key{}, &Error{Kind: KindMissingAttribute, Attr: "name"}
	}
	if !keyNameRe.MatchString(name) {
		return Key{}, errf(KindInvalidName, name, "name", "key names are lowercase kebab-case starting with a letter")
	}
	// Keys declared through enum= or flags= carry no type attribute; they
	// land here too, and failing loudly beats guessing a representation.
	if strings.TrimSpace(k.Type) == "" {
		return Key{}, &Error{Kind: KindMissingAttribute, Key: name, Attr: "type"}
	}
	if k.Default == nil {
		return Key{}, &Error{Kind: KindMissingAttribute, Key: name, Attr: "default"}
	}

	key := Key{
		Name:           name,
		Type:           strings.TrimSpace(k.Type),
		DefaultLiteral: strings.TrimSpace(k.Default.Value),
		Summary:        collapseSpace(k.Summary),
		Description:    collapseSpace(k.Description),
	}
	for _, c := range k.Choices {
		if c.Value == "" {
			return Key{}, &Error{Kind: KindMissingAttribute, Key: name, Attr: "choice value"}
		}
		key.Choices = append(key.Choices, c.Value)
	}

	return key, nil
}

// collapseSpace trims a text element and folds internal runs of whitespace,
// so multi-line schema prose becomes a single doc-comment line.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
