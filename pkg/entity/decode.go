package entity

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Supported input encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Decode errors.
var (
	ErrUnsupportedInputFormat = errors.New("unsupported input format")
	ErrSchemaViolations       = errors.New("input does not match the scan stream schema")
)

//go:embed schema.json
var streamSchema []byte

// Decode reads one scan stream document in the given encoding.
func Decode(r io.Reader, format string) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scan input: %w", err)
	}

	stream := &Stream{}

	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()

		if decodeErr := decoder.Decode(stream); decodeErr != nil {
			return nil, fmt.Errorf("decode JSON scan input: %w", decodeErr)
		}
	case FormatYAML:
		if decodeErr := yaml.Unmarshal(data, stream); decodeErr != nil {
			return nil, fmt.Errorf("decode YAML scan input: %w", decodeErr)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInputFormat, format)
	}

	return stream, nil
}

// ValidateSchema checks a JSON scan document against the embedded stream
// schema and reports every mismatch at once.
func ValidateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(streamSchema)
	inputLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, inputLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	reasons := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		reasons = append(reasons, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolations, strings.Join(reasons, "; "))
}
