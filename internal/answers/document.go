package answers

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://pathcheck/answers.json"

// Format is the encoding of an answers document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrInvalidDocument is returned when an answers document does not match
// the answers schema.
var ErrInvalidDocument = errors.New("invalid answers document")

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func answersSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse answers schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add answers schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported answers file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// DecodeFile reads and validates an answers file.
func DecodeFile(path string) (Sets, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Sets{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Sets{}, fmt.Errorf("open answers file: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads an answers document, validates it against the answers
// schema and returns the decoded sets.
func Decode(r io.Reader, format Format) (Sets, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Sets{}, fmt.Errorf("read answers: %w", err)
	}

	if format == FormatYAML {
		data, err = yamlToJSON(data)
		if err != nil {
			return Sets{}, err
		}
	} else if format != FormatJSON {
		return Sets{}, fmt.Errorf("unsupported answers format %q", format)
	}

	if err := validateDocument(data); err != nil {
		return Sets{}, err
	}

	var sets Sets
	if err := json.Unmarshal(data, &sets); err != nil {
		return Sets{}, fmt.Errorf("decode answers: %w", err)
	}
	return sets, nil
}

func validateDocument(data []byte) error {
	schema, err := answersSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: not valid JSON: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// yamlToJSON converts a YAML answers document to JSON so both formats go
// through the same schema. Mapping keys must be strings.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode answers yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return out, nil
}

// Encode writes sets in the given format.
func Encode(w io.Writer, sets Sets, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sets)
	case FormatYAML:
		return encodeYAML(w, sets)
	default:
		return fmt.Errorf("unsupported answers format %q", format)
	}
}

func encodeYAML(w io.Writer, sets Sets) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range []struct {
		name string
		set  Set
	}{
		{"psychometric", sets.Psychometric},
		{"technical", sets.Technical},
		{"wiscar", sets.WISCAR},
	} {
		if len(key.set) == 0 {
			continue
		}
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, id := range key.set.IDs() {
			a := key.set[id]
			v := &yaml.Node{Kind: yaml.ScalarNode, Value: a.String(), Tag: "!!str"}
			if a.IsNumber() {
				v.Tag = "!!float"
				if n, _ := a.Float(); n == float64(int64(n)) {
					v.Tag = "!!int"
				}
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: id}, v)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key.name}, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode answers yaml: %w", err)
	}
	return enc.Close()
}
