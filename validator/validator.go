/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks the structure of Spine skeleton documents.
//
// Only structural presence is checked: required members exist with the
// right JSON types, and names that refer to bones and slots resolve.
package validator

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/spineseq/skeleton"
)

// schemaURL identifies the embedded schema. It is never fetched.
const schemaURL = "https://bennypowers.dev/spineseq/skeleton.schema.json"

//go:embed skeleton.schema.json
var skeletonSchema string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, skeletonSchema)
})

// ValidationError represents a structural problem in a skeleton document.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dotted path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks content and returns every problem found. Reference
// checks only run when the shape is valid.
func Validate(content []byte, filePath string) []ValidationError {
	content = jsonc.ToJSON(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF}))

	var instance any
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&instance); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	schema, err := compiledSchema()
	if err != nil {
		return []ValidationError{{FilePath: filePath, Message: fmt.Sprintf("invalid built-in schema: %v", err)}}
	}

	if err := schema.Validate(instance); err != nil {
		return schemaErrors(err, filePath)
	}

	doc, err := skeleton.Decode(content)
	if err != nil {
		return []ValidationError{{FilePath: filePath, Message: err.Error()}}
	}
	return referenceErrors(doc, filePath)
}

// schemaErrors flattens a jsonschema error tree into its leaf causes.
func schemaErrors(err error, filePath string) []ValidationError {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []ValidationError{{FilePath: filePath, Message: err.Error()}}
	}
	var result []ValidationError
	collectSchemaErrors(ve, filePath, &result)
	return result
}

func collectSchemaErrors(err *jsonschema.ValidationError, filePath string, result *[]ValidationError) {
	if len(err.Causes) == 0 {
		*result = append(*result, ValidationError{
			FilePath: filePath,
			Path:     pointerToPath(err.InstanceLocation),
			Message:  err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, filePath, result)
	}
}

// pointerToPath converts a JSON pointer like /slots/0/bone to slots.0.bone.
func pointerToPath(pointer string) string {
	p := strings.TrimPrefix(pointer, "/")
	parts := strings.Split(p, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}

// referenceErrors checks that slot, skin and timeline names resolve.
func referenceErrors(doc *skeleton.Document, filePath string) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(doc.Slots))
	for i, slot := range doc.Slots {
		if slot == nil {
			continue
		}
		path := fmt.Sprintf("slots.%d", i)
		if seen[slot.Name] {
			errs = append(errs, ValidationError{
				FilePath:   filePath,
				Path:       path + ".name",
				Message:    fmt.Sprintf("duplicate slot name %q", slot.Name),
				Suggestion: "rename one of the slots",
			})
		}
		seen[slot.Name] = true

		if !doc.HasBone(slot.Bone) {
			errs = append(errs, ValidationError{
				FilePath:   filePath,
				Path:       path + ".bone",
				Message:    fmt.Sprintf("slot %q references unknown bone %q", slot.Name, slot.Bone),
				Suggestion: "add the bone or attach the slot to an existing one",
			})
		}
	}

	slotNames := doc.SlotNames()
	if doc.Skins != nil {
		for skin := doc.Skins.Oldest(); skin != nil; skin = skin.Next() {
			if skin.Value == nil {
				continue
			}
			for slot := skin.Value.Oldest(); slot != nil; slot = slot.Next() {
				if !slices.Contains(slotNames, slot.Key) {
					errs = append(errs, ValidationError{
						FilePath: filePath,
						Path:     fmt.Sprintf("skins.%s.%s", skin.Key, slot.Key),
						Message:  fmt.Sprintf("skin %q has attachments for unknown slot %q", skin.Key, slot.Key),
					})
				}
			}
		}
	}

	if doc.Animations != nil {
		for anim := doc.Animations.Oldest(); anim != nil; anim = anim.Next() {
			if anim.Value == nil || anim.Value.Slots == nil {
				continue
			}
			for slot := anim.Value.Slots.Oldest(); slot != nil; slot = slot.Next() {
				if !slices.Contains(slotNames, slot.Key) {
					errs = append(errs, ValidationError{
						FilePath: filePath,
						Path:     fmt.Sprintf("animations.%s.slots.%s", anim.Key, slot.Key),
						Message:  fmt.Sprintf("animation %q has a timeline for unknown slot %q", anim.Key, slot.Key),
					})
				}
			}
		}
	}

	return errs
}
