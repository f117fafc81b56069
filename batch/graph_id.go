package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GraphID identifies a graph in a batch. Input documents may use a number or
// a string; the original form is kept so output echoes it unchanged.
type GraphID struct {
	raw     string
	numeric bool
}

// StringID returns a string-valued GraphID.
func StringID(s string) GraphID { return GraphID{raw: s} }

// IntID returns a numeric GraphID.
func IntID(n int) GraphID { return GraphID{raw: strconv.Itoa(n), numeric: true} }

// String returns the ID as text.
func (id GraphID) String() string { return id.raw }

// Numeric reports whether the ID was given as a number.
func (id GraphID) Numeric() bool { return id.numeric }

// IsZero reports whether no ID was given.
func (id GraphID) IsZero() bool { return id.raw == "" && !id.numeric }

// MarshalJSON emits a number or a string, matching the input form.
func (id GraphID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}

	return json.Marshal(id.raw)
}

// UnmarshalJSON accepts a JSON number, string or null.
func (id *GraphID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = GraphID{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("batch: graph id %s: must be a number or string", b)
		}
		*id = GraphID{raw: n.String(), numeric: true}
		return nil
	}
}

// MarshalYAML emits an int/float scalar or a string, matching the input form.
func (id GraphID) MarshalYAML() (interface{}, error) {
	if !id.numeric {
		return id.raw, nil
	}
	tag := "!!int"
	if strings.ContainsAny(id.raw, ".eE") {
		tag = "!!float"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: id.raw}, nil
}

// UnmarshalYAML accepts an int, float or string scalar.
func (id *GraphID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("batch: graph id at line %d: must be a scalar", value.Line)
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		raw, err := yamlNumber(value)
		if err != nil {
			return err
		}
		*id = GraphID{raw: raw, numeric: true}
	case "!!null":
		*id = GraphID{}
	default:
		*id = StringID(value.Value)
	}

	return nil
}

// yamlNumber rewrites a YAML number (0x10, +7, 1_000, 0o17, ...) in the plain
// decimal form JSON accepts.
func yamlNumber(value *yaml.Node) (string, error) {
	var n interface{}
	if err := value.Decode(&n); err != nil {
		return "", fmt.Errorf("batch: graph id at line %d: %w", value.Line, err)
	}
	switch v := n.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return "", fmt.Errorf("batch: graph id at line %d: %s is not a finite number", value.Line, value.Value)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("batch: graph id at line %d: %s is not a number", value.Line, value.Value)
	}
}
