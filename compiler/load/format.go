package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies a document serialization format.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
	FormatMsgpack
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// DetectFormat maps a file path to its document format by extension:
// .yaml/.yml, .json and .msgpack/.mpk. Matching is case-insensitive.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatUnknown
	}
}

// Decode parses a document in the given format. Parse failures come back as
// DecodeErrors wrapping the codec error; mapping onto the schema model is a
// separate step, Document.SourceFile.
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, NewDecodeError("", "parse "+format.String(), err)
	}
	return doc, nil
}

// Encode serializes a document in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// LoadFile reads and parses the document at path, detecting the format from
// the file extension.
func LoadFile(path string) (*Document, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// WriteFile serializes the document to path, detecting the format from the
// file extension.
func WriteFile(path string, doc *Document) error {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
