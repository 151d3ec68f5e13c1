package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeDefault tests literal decoding per descriptor
func TestDecodeDefault(t *testing.T) {
	tests := []struct {
		name      string
		literal   string
		signature string
		want      any
	}{
		{"BoolTrue", "true", "b", true},
		{"BoolFalse", "false", "b", false},
		{"Int32", "600", "i", int32(600)},
		{"Int32Negative", "-1", "i", int32(-1)},
		{"Uint32", "42", "u", uint32(42)},
		{"Int64", "-1099511627776", "x", int64(-1099511627776)},
		{"Uint64", "1099511627776", "t", uint64(1099511627776)},
		{"Double", "0.75", "d", 0.75},
		{"DoubleInteger", "2", "d", 2.0},
		{"SingleQuotedString", "'default'", "s", "default"},
		{"DoubleQuotedString", `"default"`, "s", "default"},
		{"EscapedQuote", `'it\'s'`, "s", "it's"},
		{"EmptyArray", "[]", "as", []string{}},
		{"Array", "['a.txt', 'b.txt']", "as", []string{"a.txt", "b.txt"}},
		{"ArrayDoubleQuotes", `["a", "b"]`, "as", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := MapType("some-key", tt.signature)
			require.NoError(t, err)

			got, err := DecodeDefault("some-key", tt.literal, desc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDecodeDefaultInvalid tests rejected literals
func TestDecodeDefaultInvalid(t *testing.T) {
	tests := []struct {
		name      string
		literal   string
		signature string
	}{
		{"BoolCapitalized", "True", "b"},
		{"BoolNumeric", "1", "b"},
		{"Int32Overflow", "4294967296", "i"},
		{"Int32Float", "1.5", "i"},
		{"Uint32Negative", "-1", "u"},
		{"DoubleWord", "loud", "d"},
		{"UnquotedString", "default", "s"},
		{"MismatchedQuotes", `'default"`, "s"},
		{"UnescapedQuote", "'it's'", "s"},
		{"DanglingEscape", `'oops\'`, "s"},
		{"ArrayMissingBracket", "'a', 'b'", "as"},
		{"ArrayUnquotedElement", "[a]", "as"},
		{"ArrayTrailingComma", "['a',]", "as"},
		{"ArrayUnterminated", "['a", "as"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := MapType("some-key", tt.signature)
			require.NoError(t, err)

			_, err = DecodeDefault("some-key", tt.literal, desc)
			schemaErr := requireKind(t, err, KindInvalidDefault)
			assert.Equal(t, "some-key", schemaErr.Key)
		})
	}
}

// TestDecodeDefaultChoice tests membership checking for choice keys
func TestDecodeDefaultChoice(t *testing.T) {
	desc, err := DescribeKey(Key{
		Name:    "preferred-audio-source",
		Type:    "s",
		Choices: []string{"microphone", "desktop-audio"},
	})
	require.NoError(t, err)

	t.Run("DeclaredChoice", func(t *testing.T) {
		got, err := DecodeDefault("preferred-audio-source", "'microphone'", desc)
		require.NoError(t, err)
		assert.Equal(t, "microphone", got)
	})

	t.Run("UndeclaredChoice", func(t *testing.T) {
		_, err := DecodeDefault("preferred-audio-source", "'bluetooth'", desc)
		requireKind(t, err, KindInvalidDefault)
	})

	t.Run("UnquotedChoice", func(t *testing.T) {
		_, err := DecodeDefault("preferred-audio-source", "microphone", desc)
		requireKind(t, err, KindInvalidDefault)
	})
}

// TestDefaultRoundTrip tests that decode then encode is idempotent
func TestDefaultRoundTrip(t *testing.T) {
	tests := []struct {
		literal   string
		signature string
	}{
		{"true", "b"},
		{"false", "b"},
		{"600", "i"},
		{"-42", "i"},
		{"42", "u"},
		{"0.75", "d"},
		{"'default'", "s"},
		{`'it\'s'`, "s"},
		{"[]", "as"},
		{"['a.txt', 'b.txt']", "as"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			desc, err := MapType("some-key", tt.signature)
			require.NoError(t, err)

			decoded, err := DecodeDefault("some-key", tt.literal, desc)
			require.NoError(t, err)

			encoded := EncodeDefault(decoded, desc)
			assert.Equal(t, tt.literal, encoded)

			// Re-decoding the encoded form yields the same value.
			again, err := DecodeDefault("some-key", encoded, desc)
			require.NoError(t, err)
			assert.Equal(t, decoded, again)
		})
	}
}
