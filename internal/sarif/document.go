package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

const indent = "    "

// MalformedInputError reports a SARIF input that is not valid JSON.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed SARIF input %q: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Document is a SARIF log kept as a generic JSON value tree. Only runs[0].results and
// the location URIs inside it are ever inspected; everything else passes through untouched.
type Document struct {
	Path string
	root map[string]interface{}
}

// ReadDocument opens and parses the SARIF file at path.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	return ParseDocument(f, path)
}

// ParseDocument decodes a single JSON value from r. Numbers are kept as json.Number so
// they are written back exactly as read.
func ParseDocument(r io.Reader, path string) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &MalformedInputError{Path: path, Err: err}
	}

	doc := &Document{Path: path}
	if root, ok := value.(map[string]interface{}); ok {
		doc.root = root
	}
	return doc, nil
}

// IsObject reports whether the document's top-level value is a JSON object and can
// therefore serve as a merge template.
func (d *Document) IsObject() bool {
	return d != nil && d.root != nil
}

// Results returns runs[0].results. Missing or mistyped fields yield an empty slice.
func (d *Document) Results() []interface{} {
	run := d.firstRun()
	if run == nil {
		return nil
	}
	results, _ := run["results"].([]interface{})
	return results
}

// SetResults replaces runs[0].results, creating runs[0] when the document has none.
func (d *Document) SetResults(results []interface{}) {
	if d.root == nil {
		d.root = map[string]interface{}{}
	}
	if results == nil {
		results = []interface{}{}
	}

	if run := d.firstRun(); run != nil {
		run["results"] = results
		return
	}

	newRun := map[string]interface{}{"results": results}
	if runs, ok := d.root["runs"].([]interface{}); ok && len(runs) > 0 {
		runs[0] = newRun
		return
	}
	d.root["runs"] = []interface{}{newRun}
}

// Get returns the top-level field key.
func (d *Document) Get(key string) (interface{}, bool) {
	if d == nil || d.root == nil {
		return nil, false
	}
	v, ok := d.root[key]
	return v, ok
}

// Encode serialises the document as indented JSON.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	root := d.root
	if root == nil {
		root = map[string]interface{}{}
	}
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode SARIF document: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) firstRun() map[string]interface{} {
	if d == nil || d.root == nil {
		return nil
	}
	runs, ok := d.root["runs"].([]interface{})
	if !ok || len(runs) == 0 {
		return nil
	}
	run, _ := runs[0].(map[string]interface{})
	return run
}
