package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapType tests the fixed signature table
func TestMapType(t *testing.T) {
	tests := []struct {
		signature string
		kind      Kind
		array     bool
		goType    string
	}{
		{"b", KindBool, false, "bool"},
		{"s", KindString, false, "string"},
		{"i", KindInt32, false, "int32"},
		{"u", KindUint32, false, "uint32"},
		{"x", KindInt64, false, "int64"},
		{"t", KindUint64, false, "uint64"},
		{"d", KindFloat64, false, "float64"},
		{"as", KindString, true, "[]string"},
	}

	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			desc, err := MapType("some-key", tt.signature)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, desc.Kind)
			assert.Equal(t, tt.array, desc.Array)
			assert.Equal(t, tt.goType, desc.GoType())
			assert.False(t, desc.IsChoice())
		})
	}
}

// TestMapTypeUnsupported tests signatures outside the table
func TestMapTypeUnsupported(t *testing.T) {
	for _, signature := range []string{"a{ss}", "(ii)", "ay", "v", "", "ss"} {
		t.Run(signature, func(t *testing.T) {
			_, err := MapType("cache-dir", signature)
			schemaErr := requireKind(t, err, KindUnsupportedType)
			assert.Equal(t, "cache-dir", schemaErr.Key)
		})
	}
}

// TestDescribeKey tests the choice override
func TestDescribeKey(t *testing.T) {
	t.Run("ChoicesOverrideString", func(t *testing.T) {
		desc, err := DescribeKey(Key{
			Name:    "preferred-audio-source",
			Type:    "s",
			Choices: []string{"microphone", "desktop-audio"},
		})
		require.NoError(t, err)
		assert.True(t, desc.IsChoice())
		assert.Equal(t, KindString, desc.Kind)
		assert.Equal(t, []string{"microphone", "desktop-audio"}, desc.Choices)
	})

	t.Run("NoChoicesStaysPlain", func(t *testing.T) {
		desc, err := DescribeKey(Key{Name: "profile-name", Type: "s"})
		require.NoError(t, err)
		assert.False(t, desc.IsChoice())
	})

	t.Run("ChoicesRequireStringType", func(t *testing.T) {
		_, err := DescribeKey(Key{
			Name:    "window-width",
			Type:    "i",
			Choices: []string{"small", "large"},
		})
		schemaErr := requireKind(t, err, KindUnsupportedType)
		assert.Equal(t, "window-width", schemaErr.Key)
	})

	t.Run("ChoicesOnArrayRejected", func(t *testing.T) {
		_, err := DescribeKey(Key{
			Name:    "recent-files",
			Type:    "as",
			Choices: []string{"a"},
		})
		requireKind(t, err, KindUnsupportedType)
	})
}
