// Package graphio reads batch input documents and writes result documents.
//
// Input is JSON or YAML, selected by file extension:
//
//	{"graphs":[{"id":1,"nodes":["A","B"],"edges":[{"from":"A","to":"B","weight":3}]}]}
//
// Output is indented JSON:
//
//	{"run_id":"…","results":[{"graph_id":1,"input_stats":{…},"prim":{…},"kruskal":{…}}]}
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/batch"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrNoGraphs indicates an input document without a non-empty "graphs" list.
	ErrNoGraphs = errors.New("graphio: document contains no graphs")
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// BatchDocument is the top-level input document.
type BatchDocument struct {
	Graphs []batch.GraphInput `json:"graphs" yaml:"graphs"`
}

// ResultDocument is the top-level output document.
type ResultDocument struct {
	RunID   string         `json:"run_id,omitempty"`
	Results []batch.Result `json:"results"`
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseFormat maps a format name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// DecodeBatch reads an input document in format f.
func DecodeBatch(r io.Reader, f Format) ([]batch.GraphInput, error) {
	var doc BatchDocument
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("graphio: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphio: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if len(doc.Graphs) == 0 {
		return nil, ErrNoGraphs
	}

	return doc.Graphs, nil
}

// ReadBatch opens path and decodes it according to its extension.
func ReadBatch(path string) ([]batch.GraphInput, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open input: %w", err)
	}
	defer file.Close()

	graphs, err := DecodeBatch(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return graphs, nil
}

// EncodeBatch writes graphs as an input document in format f.
func EncodeBatch(w io.Writer, f Format, graphs []batch.GraphInput) error {
	doc := BatchDocument{Graphs: graphs}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteBatch writes graphs to path in the format implied by its extension.
func WriteBatch(path string, graphs []batch.GraphInput) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return EncodeBatch(w, f, graphs) })
}

// EncodeResults writes a result document as indented JSON.
func EncodeResults(w io.Writer, runID string, results []batch.Result) error {
	if results == nil {
		results = []batch.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(ResultDocument{RunID: runID, Results: results})
}

// WriteResults writes a result document to path, creating parent directories.
func WriteResults(path, runID string, results []batch.Result) error {
	return writeFile(path, func(w io.Writer) error { return EncodeResults(w, runID, results) })
}

// DecodeResults reads a result document previously written by EncodeResults.
func DecodeResults(r io.Reader) (ResultDocument, error) {
	var doc ResultDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ResultDocument{}, fmt.Errorf("graphio: decode results: %w", err)
	}

	return doc, nil
}

// ReadResults opens and decodes a result document.
func ReadResults(path string) (ResultDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return ResultDocument{}, fmt.Errorf("graphio: open results: %w", err)
	}
	defer file.Close()

	return DecodeResults(file)
}

// writeFile creates path (and its directory) and runs encode against it.
func writeFile(path string, encode func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("graphio: create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("graphio: close %s: %w", path, cerr)
		}
	}()

	if err := encode(file); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}

	return nil
}
