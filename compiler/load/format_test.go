package load

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"model.yaml", FormatYAML},
		{"model.yml", FormatYAML},
		{"MODEL.YAML", FormatYAML},
		{"model.json", FormatJSON},
		{"model.msgpack", FormatMsgpack},
		{"model.mpk", FormatMsgpack},
		{"dir/sub/model.yaml", FormatYAML},
		{"model.txt", FormatUnknown},
		{"model", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "msgpack", FormatMsgpack.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestDecode(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		doc, err := Decode([]byte("unit:\n  name: UnitX\n  namespace: [App]\n"), FormatYAML)

		require.NoError(t, err)
		require.NotNil(t, doc.Unit)
		assert.Equal(t, "UnitX", doc.Unit.Name)
		assert.Equal(t, []string{"App"}, doc.Unit.Namespace)
	})

	t.Run("json", func(t *testing.T) {
		doc, err := Decode([]byte(`{"unit":{"name":"UnitX"}}`), FormatJSON)

		require.NoError(t, err)
		require.NotNil(t, doc.Unit)
		assert.Equal(t, "UnitX", doc.Unit.Name)
	})

	t.Run("msgpack round trip", func(t *testing.T) {
		doc := &Document{Unit: &Unit{
			Name:      "UnitX",
			Namespace: []string{"App"},
			Interface: &InterfaceSection{Uses: []*Reference{{Unit: "System.SysUtils"}}},
		}}

		data, err := Encode(doc, FormatMsgpack)
		require.NoError(t, err)
		decoded, err := Decode(data, FormatMsgpack)
		require.NoError(t, err)

		assert.Equal(t, doc, decoded)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Decode([]byte("{}"), FormatUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Decode([]byte("unit: ["), FormatYAML)

		require.Error(t, err)
		assert.True(t, IsDecodeError(err))
		assert.ErrorIs(t, err, ErrInvalidDocument)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.NotNil(t, decodeErr.Cause)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode([]byte("{"), FormatJSON)

		require.Error(t, err)
		assert.True(t, IsDecodeError(err))
	})
}

func TestEncode(t *testing.T) {
	doc := &Document{Unit: &Unit{Name: "UnitX"}}

	t.Run("yaml", func(t *testing.T) {
		data, err := Encode(doc, FormatYAML)

		require.NoError(t, err)
		assert.Contains(t, string(data), "name: UnitX")
	})

	t.Run("json is indented", func(t *testing.T) {
		data, err := Encode(doc, FormatJSON)

		require.NoError(t, err)
		assert.Contains(t, string(data), "\"name\": \"UnitX\"")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Encode(doc, FormatUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}
