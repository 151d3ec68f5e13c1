package gen

import "text/template"

// fileTemplate renders the whole generated file. The output runs through
// go/format, so the template only has to be syntactically exact, not
// perfectly spaced.
var fileTemplate = template.Must(template.New("settings").Parse(`// Code generated by gsettings-gen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}} (schema {{.SchemaID}}).
{{- end}}

package {{.Package}}

import (
	gsettings {{printf "%q" .RuntimeImport}}
)
{{range $v := .Variants}}
// {{$v.TypeName}} enumerates the values accepted by the {{printf "%q" $v.Key}} key.
type {{$v.TypeName}} int

const (
{{- range $i, $c := $v.Cases}}
{{- if eq $i 0}}
	{{$c.Ident}} {{$v.TypeName}} = iota
{{- else}}
	{{$c.Ident}}
{{- end}}
{{- end}}
)

// String returns the string stored for the value. Values outside the
// declared cases render as the empty string.
func (v {{$v.TypeName}}) String() string {
	switch v {
{{- range $c := $v.Cases}}
	case {{$c.Ident}}:
		return {{printf "%q" $c.Value}}
{{- end}}
	}
	return ""
}

// {{$v.TypeName}}FromString converts a stored string into a {{$v.TypeName}}.
// It returns a *gsettings.UnknownVariantError for strings outside the
// declared choices.
func {{$v.TypeName}}FromString(raw string) ({{$v.TypeName}}, error) {
	switch raw {
{{- range $c := $v.Cases}}
	case {{printf "%q" $c.Value}}:
		return {{$c.Ident}}, nil
{{- end}}
	}
	return 0, &gsettings.UnknownVariantError{Key: {{printf "%q" $v.Key}}, Value: raw}
}
{{end}}
// Settings provides typed access to the {{printf "%q" .SchemaID}} schema.
type Settings struct {
	store *gsettings.Store
}

// NewSettings returns a Settings bound to the {{printf "%q" .SchemaID}}
// schema, with every key registered at its schema default.
func NewSettings() *Settings {
	store := gsettings.NewStore({{printf "%q" .SchemaID}})
{{- range $k := .Keys}}
	store.Register({{printf "%q" $k.Key}}, {{$k.DefaultExpr}})
{{- end}}
	return &Settings{store: store}
}

// NewSettingsWithStore wraps an existing store, which must have the schema
// keys registered. Useful for tests and custom backends.
func NewSettingsWithStore(store *gsettings.Store) *Settings {
	return &Settings{store: store}
}

// Store returns the underlying settings store.
func (s *Settings) Store() *gsettings.Store {
	return s.store
}
{{range $k := .Keys}}
{{- if $k.Variant}}
// {{$k.Method}} returns the value of the {{printf "%q" $k.Key}} key.
{{- if $k.Summary}}
//
// {{$k.Summary}}
{{- end}}
{{- if $k.Description}}
//
// {{$k.Description}}
{{- end}}
//
// Default: {{$k.DefaultDoc}}. The error is a *gsettings.UnknownVariantError
// when the store holds a string outside the declared choices.
func (s *Settings) {{$k.Method}}() ({{$k.Variant.TypeName}}, error) {
	v, err := s.store.String({{printf "%q" $k.Key}})
	if err != nil {
		return 0, err
	}
	return {{$k.Variant.TypeName}}FromString(v)
}

// Set{{$k.Method}} updates the {{printf "%q" $k.Key}} key. Values outside
// the declared cases are rejected with a *gsettings.UnknownVariantError;
// it returns gsettings.ErrNotWritable when the key cannot be written.
func (s *Settings) Set{{$k.Method}}(v {{$k.Variant.TypeName}}) error {
	raw := v.String()
	if raw == "" {
		return &gsettings.UnknownVariantError{Key: {{printf "%q" $k.Key}}, Value: raw}
	}
	return s.store.SetValue({{printf "%q" $k.Key}}, raw)
}
{{- else}}
// {{$k.Method}} returns the value of the {{printf "%q" $k.Key}} key.
{{- if $k.Summary}}
//
// {{$k.Summary}}
{{- end}}
{{- if $k.Description}}
//
// {{$k.Description}}
{{- end}}
//
// Default: {{$k.DefaultDoc}}.
func (s *Settings) {{$k.Method}}() {{$k.GoType}} {
	v, _ := s.store.{{$k.StoreMethod}}({{printf "%q" $k.Key}})
	return v
}

// Set{{$k.Method}} updates the {{printf "%q" $k.Key}} key.
// It returns gsettings.ErrNotWritable when the key cannot be written.
func (s *Settings) Set{{$k.Method}}(v {{$k.GoType}}) error {
	return s.store.SetValue({{printf "%q" $k.Key}}, v)
}
{{- end}}

// Connect{{$k.Method}}Changed calls fn after each change to the
// {{printf "%q" $k.Key}} key. The returned function cancels the
// subscription.
func (s *Settings) Connect{{$k.Method}}Changed(fn func()) func() {
	return s.store.Subscribe({{printf "%q" $k.Key}}, func(any) { fn() })
}
{{end -}}
`))
