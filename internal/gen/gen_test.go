package gen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhdirk/gsettings-gen/internal/schema"
)

func exampleDoc() *schema.Document {
	return &schema.Document{
		SchemaID: "io.example.App",
		Keys: []schema.Key{
			{Name: "is-maximized", Type: "b", DefaultLiteral: "false", Summary: "Window maximized"},
			{Name: "window-width", Type: "i", DefaultLiteral: "600"},
			{Name: "volume", Type: "d", DefaultLiteral: "0.75"},
			{Name: "recent-files", Type: "as", DefaultLiteral: "[]"},
			{Name: "profile-name", Type: "s", DefaultLiteral: "'default'"},
			{
				Name:           "preferred-audio-source",
				Type:           "s",
				DefaultLiteral: "'microphone'",
				Choices:        []string{"microphone", "desktop-audio"},
			},
		},
	}
}

// TestGenerate tests rendering the full accessor surface
func TestGenerate(t *testing.T) {
	src, err := Generate(exampleDoc(), Options{Package: "settings", Source: "io.example.App.gschema.xml"})
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by gsettings-gen. DO NOT EDIT."))
	assert.Contains(t, out, "// Source: io.example.App.gschema.xml (schema io.example.App).")
	assert.Contains(t, out, "package settings")
	assert.Contains(t, out, `gsettings "github.com/vhdirk/gsettings-gen"`)

	// One getter, setter, and connect per key.
	for _, method := range []string{"IsMaximized", "WindowWidth", "Volume", "RecentFiles", "ProfileName", "PreferredAudioSource"} {
		assert.Contains(t, out, "func (s *Settings) "+method+"(", method)
		assert.Contains(t, out, "func (s *Settings) Set"+method+"(", method)
		assert.Contains(t, out, "func (s *Settings) Connect"+method+"Changed(", method)
	}

	// Typed signatures delegate to the matching store accessor.
	assert.Contains(t, out, "func (s *Settings) WindowWidth() int32")
	assert.Contains(t, out, "func (s *Settings) SetWindowWidth(v int32) error")
	assert.Contains(t, out, "func (s *Settings) Volume() float64")
	assert.Contains(t, out, "func (s *Settings) RecentFiles() []string")

	// Defaults register with explicit widths.
	assert.Contains(t, out, `store.Register("window-width", int32(600))`)
	assert.Contains(t, out, `store.Register("volume", float64(0.75))`)
	assert.Contains(t, out, `store.Register("recent-files", []string{})`)
	assert.Contains(t, out, `store.Register("preferred-audio-source", "microphone")`)
}

// TestGenerateVariant tests the closed type emitted for a choice key
func TestGenerateVariant(t *testing.T) {
	src, err := Generate(exampleDoc(), Options{})
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "type PreferredAudioSource int")
	assert.Contains(t, out, "PreferredAudioSourceMicrophone PreferredAudioSource = iota")
	assert.Contains(t, out, "PreferredAudioSourceDesktopAudio")
	assert.Contains(t, out, "func (v PreferredAudioSource) String() string")
	assert.Contains(t, out, "func PreferredAudioSourceFromString(raw string) (PreferredAudioSource, error)")
	assert.Contains(t, out, "gsettings.UnknownVariantError")

	// The choice getter surfaces decode failures instead of guessing.
	assert.Contains(t, out, "func (s *Settings) PreferredAudioSource() (PreferredAudioSource, error)")
	assert.Contains(t, out, "func (s *Settings) SetPreferredAudioSource(v PreferredAudioSource) error")

	// The choice setter rejects values outside the declared cases before
	// touching the store.
	assert.Contains(t, out, "raw := v.String()")
	assert.Contains(t, out, `if raw == "" {`)
	assert.Contains(t, out, `s.store.SetValue("preferred-audio-source", raw)`)
	assert.NotContains(t, out, `SetValue("preferred-audio-source", v.String())`)
}

// TestGenerateDefaultPackage tests the fallback package name
func TestGenerateDefaultPackage(t *testing.T) {
	src, err := Generate(exampleDoc(), Options{})
	require.NoError(t, err)
	assert.Contains(t, string(src), "package settings")
	assert.NotContains(t, string(src), "// Source:")
}

// TestGenerateSkip tests the key and signature exclusion lists
func TestGenerateSkip(t *testing.T) {
	t.Run("SkipKey", func(t *testing.T) {
		src, err := Generate(exampleDoc(), Options{SkipKeys: []string{"volume"}})
		require.NoError(t, err)
		assert.NotContains(t, string(src), "Volume")
		assert.Contains(t, string(src), "WindowWidth")
	})

	t.Run("SkipSignature", func(t *testing.T) {
		src, err := Generate(exampleDoc(), Options{SkipSignatures: []string{"as"}})
		require.NoError(t, err)
		assert.NotContains(t, string(src), "RecentFiles")
	})

	t.Run("SkippedKeysExemptFromValidation", func(t *testing.T) {
		doc := exampleDoc()
		doc.Keys = append(doc.Keys, schema.Key{Name: "cache-map", Type: "a{ss}", DefaultLiteral: "{}"})

		_, err := Generate(doc, Options{})
		requireGenKind(t, err, schema.KindUnsupportedType)

		src, err := Generate(doc, Options{SkipSignatures: []string{"a{ss}"}})
		require.NoError(t, err)
		assert.NotContains(t, string(src), "CacheMap")

		src, err = Generate(doc, Options{SkipKeys: []string{"cache-map"}})
		require.NoError(t, err)
		assert.NotContains(t, string(src), "CacheMap")
	})
}

// TestGenerateErrors tests that schema faults abort with no output
func TestGenerateErrors(t *testing.T) {
	t.Run("UnsupportedType", func(t *testing.T) {
		doc := &schema.Document{SchemaID: "io.example.App", Keys: []schema.Key{
			{Name: "some-key", Type: "v", DefaultLiteral: "0"},
		}}
		src, err := Generate(doc, Options{})
		assert.Nil(t, src)
		schemaErr := requireGenKind(t, err, schema.KindUnsupportedType)
		assert.Equal(t, "some-key", schemaErr.Key)
	})

	t.Run("InvalidDefault", func(t *testing.T) {
		doc := &schema.Document{SchemaID: "io.example.App", Keys: []schema.Key{
			{Name: "some-key", Type: "i", DefaultLiteral: "'six hundred'"},
		}}
		src, err := Generate(doc, Options{})
		assert.Nil(t, src)
		requireGenKind(t, err, schema.KindInvalidDefault)
	})

	t.Run("AccessorCollision", func(t *testing.T) {
		doc := &schema.Document{SchemaID: "io.example.App", Keys: []schema.Key{
			{Name: "a-2b", Type: "b", DefaultLiteral: "false"},
			{Name: "a2b", Type: "b", DefaultLiteral: "true"},
		}}
		src, err := Generate(doc, Options{})
		assert.Nil(t, src)
		schemaErr := requireGenKind(t, err, schema.KindNameCollision)
		assert.Equal(t, "a2b", schemaErr.Key)
	})

	t.Run("ReservedName", func(t *testing.T) {
		doc := &schema.Document{SchemaID: "io.example.App", Keys: []schema.Key{
			{Name: "settings", Type: "b", DefaultLiteral: "false"},
		}}
		_, err := Generate(doc, Options{})
		requireGenKind(t, err, schema.KindNameCollision)

		doc.Keys[0].Name = "store"
		_, err = Generate(doc, Options{})
		requireGenKind(t, err, schema.KindNameCollision)
	})

	t.Run("VariantReservedIdent", func(t *testing.T) {
		// A choice nick of "from-string" would derive ModeFromString, the
		// name of the generated conversion function.
		doc := &schema.Document{SchemaID: "io.example.App", Keys: []schema.Key{
			{
				Name:           "mode",
				Type:           "s",
				DefaultLiteral: "'from-string'",
				Choices:        []string{"from-string"},
			},
		}}
		src, err := Generate(doc, Options{})
		assert.Nil(t, src)
		schemaErr := requireGenKind(t, err, schema.KindNameCollision)
		assert.Equal(t, "mode", schemaErr.Key)
		assert.Equal(t, "choices", schemaErr.Attr)
	})

	t.Run("VariantCaseCollision", func(t *testing.T) {
		doc := &schema.Document{SchemaID: "io.example.App", Keys: []schema.Key{
			{
				Name:           "some-key",
				Type:           "s",
				DefaultLiteral: "'a-2b'",
				Choices:        []string{"a-2b", "a2b"},
			},
		}}
		src, err := Generate(doc, Options{})
		assert.Nil(t, src)
		schemaErr := requireGenKind(t, err, schema.KindNameCollision)
		assert.Equal(t, "some-key", schemaErr.Key)
		assert.Equal(t, "choices", schemaErr.Attr)
	})
}

func requireGenKind(t *testing.T, err error, kind schema.ErrorKind) *schema.Error {
	t.Helper()
	require.Error(t, err)
	var schemaErr *schema.Error
	require.True(t, errors.As(err, &schemaErr), "expected *schema.Error, got %T: %v", err, err)
	assert.Equal(t, kind, schemaErr.Kind, "error: %v", err)
	return schemaErr
}
