// Package gen synthesizes the typed settings wrapper for a parsed schema:
// one getter/setter/connect triple per key, plus a closed variant type per
// choice-constrained key.
package gen

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/vhdirk/gsettings-gen/internal/schema"
)

// runtimeImport is the package the generated code delegates store access to.
const runtimeImport = "github.com/vhdirk/gsettings-gen"

// Options configures one generation run.
type Options struct {
	// Package is the package name of the generated file.
	Package string

	// Source names the schema file in the generated header, if known.
	Source string

	// SkipKeys lists key names to generate no code for.
	SkipKeys []string

	// SkipSignatures lists raw type signatures to generate no code for.
	// Skipped keys are exempt from type-table validation.
	SkipSignatures []string
}

// keyData is the per-key template model.
type keyData struct {
	Key         string
	Method      string
	GoType      string
	StoreMethod string
	DefaultExpr string
	DefaultDoc  string
	Summary     string
	Description string
	Variant     *variantData
}

type variantData struct {
	TypeName string
	Key      string
	Cases    []caseData
}

type caseData struct {
	Ident string
	Value string
}

type fileData struct {
	Package       string
	SchemaID      string
	Source        string
	RuntimeImport string
	Keys          []keyData
	Variants      []variantData
}

// Generate renders the settings wrapper for doc as gofmt-formatted source.
// All schema validation errors are *schema.Error values; nothing is
// emitted on failure.
func Generate(doc *schema.Document, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "settings"
	}

	data := fileData{
		Package:       opts.Package,
		SchemaID:      doc.SchemaID,
		Source:        opts.Source,
		RuntimeImport: runtimeImport,
	}

	skipKey := toSet(opts.SkipKeys)
	skipSig := toSet(opts.SkipSignatures)
	methods := make(map[string]string) // derived method -> key name

	for _, key := range doc.Keys {
		if skipKey[key.Name] || skipSig[key.Type] {
			continue
		}

		desc, err := schema.DescribeKey(key)
		if err != nil {
			return nil, err
		}
		def, err := schema.DecodeDefault(key.Name, key.DefaultLiteral, desc)
		if err != nil {
			return nil, err
		}

		method := ExportedName(key.Name)
		if prev, taken := methods[method]; taken {
			return nil, &schema.Error{
				Kind:   schema.KindNameCollision,
				Key:    key.Name,
				Detail: fmt.Sprintf("accessor name %s already derived from key %q", method, prev),
			}
		}
		if method == "Settings" || method == "Store" {
			return nil, &schema.Error{
				Kind:   schema.KindNameCollision,
				Key:    key.Name,
				Detail: fmt.Sprintf("accessor name %s collides with a generated declaration", method),
			}
		}
		methods[method] = key.Name

		kd := keyData{
			Key:         key.Name,
			Method:      method,
			GoType:      desc.GoType(),
			StoreMethod: storeMethod(desc),
			DefaultExpr: goLiteral(def, desc),
			DefaultDoc:  schema.EncodeDefault(def, desc),
			Summary:     key.Summary,
			Description: key.Description,
		}

		if desc.IsChoice() {
			variant, err := buildVariant(key.Name, method, desc.Choices)
			if err != nil {
				return nil, err
			}
			kd.Variant = variant
			data.Variants = append(data.Variants, *variant)
		}

		data.Keys = append(data.Keys, kd)
	}

	var buf strings.Builder
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	src, err := format.Source([]byte(buf.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// buildVariant derives the closed variant type for a choice key. Case
// identifiers come from the choice nicks through the same name transform
// as accessors, so they collide under the same conditions.
func buildVariant(keyName, typeName string, choices []string) (*variantData, error) {
	v := &variantData{TypeName: typeName, Key: keyName}
	idents := make(map[string]string)
	for _, choice := range choices {
		ident := typeName + ExportedName(choice)
		if ident == typeName || ident == typeName+"FromString" {
			return nil, &schema.Error{
				Kind:   schema.KindNameCollision,
				Key:    keyName,
				Attr:   "choices",
				Detail: fmt.Sprintf("case name %s collides with a generated declaration", ident),
			}
		}
		if prev, taken := idents[ident]; taken {
			return nil, &schema.Error{
				Kind:   schema.KindNameCollision,
				Key:    keyName,
				Attr:   "choices",
				Detail: fmt.Sprintf("case name %s already derived from choice %q", ident, prev),
			}
		}
		idents[ident] = choice
		v.Cases = append(v.Cases, caseData{Ident: ident, Value: choice})
	}
	return v, nil
}

// storeMethod picks the typed Store accessor backing the getter. Choice
// keys read through String: the store only ever holds the raw nick.
func storeMethod(desc schema.TypeDescriptor) string {
	if desc.Array {
		return "StringSlice"
	}
	if desc.IsChoice() {
		return "String"
	}
	switch desc.Kind {
	case schema.KindBool:
		return "Bool"
	case schema.KindString:
		return "String"
	case schema.KindInt32:
		return "Int32"
	case schema.KindUint32:
		return "Uint32"
	case schema.KindInt64:
		return "Int64"
	case schema.KindUint64:
		return "Uint64"
	case schema.KindFloat64:
		return "Float64"
	}
	return "GetValue"
}

// goLiteral renders the decoded default as the Go expression the generated
// constructor registers. Numeric widths are spelled explicitly so the
// registered type matches the accessor type exactly.
func goLiteral(value any, desc schema.TypeDescriptor) string {
	if desc.Array {
		elems, _ := value.([]string)
		if len(elems) == 0 {
			return "[]string{}"
		}
		quoted := make([]string, len(elems))
		for i, elem := range elems {
			quoted[i] = strconv.Quote(elem)
		}
		return "[]string{" + strings.Join(quoted, ", ") + "}"
	}

	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	case int32:
		return fmt.Sprintf("int32(%d)", v)
	case uint32:
		return fmt.Sprintf("uint32(%d)", v)
	case int64:
		return fmt.Sprintf("int64(%d)", v)
	case uint64:
		return fmt.Sprintf("uint64(%d)", v)
	case float64:
		return fmt.Sprintf("float64(%s)", strconv.FormatFloat(v, 'g', -1, 64))
	}
	return fmt.Sprintf("%#v", value)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
