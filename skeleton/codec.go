/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package skeleton

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/spineseq/fs"
)

// Indent is the indentation used when writing documents.
const Indent = "    "

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses a skeleton document. Comments and trailing commas are
// tolerated so hand-edited files load.
func Decode(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	doc := &Document{}
	if err := json.Unmarshal(jsonc.ToJSON(data), doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return doc, nil
}

// Encode serializes a document with four-space indentation and a trailing
// newline. HTML characters are written as is.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads and decodes the document at path.
func Load(filesystem fs.FileSystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// Save encodes doc and writes it to path, creating parent directories.
func Save(filesystem fs.FileSystem, path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return filesystem.WriteFile(path, data, 0644)
}
