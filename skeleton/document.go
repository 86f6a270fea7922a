/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package skeleton provides an order-preserving model of Spine skeleton JSON documents.
package skeleton

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultSkin is the name of the skin every Spine document falls back to.
const DefaultSkin = "default"

// DefaultAnimation is the animation a new document starts with.
const DefaultAnimation = "animation"

// RootOrder is the order top-level keys are written in. Keys outside this
// list are not written.
var RootOrder = []string{"skeleton", "bones", "slots", "skins", "events", "animations"}

// emptySkeleton is the template for a document built from scratch.
const emptySkeleton = `{
	"skeleton": { "hash": "AnNGCgm1KE26nDxUu2R4xqNyrKs", "spine": "3.0.10", "width": 0, "height": 0 },
	"bones": [
		{ "name": "root" }
	],
	"animations": {
		"animation": {}
	}
}`

// Document is a Spine skeleton document. A nil field means the key is absent.
type Document struct {
	Skeleton   *Info
	Bones      []*Bone
	Slots      []*Slot
	Skins      *orderedmap.OrderedMap[string, *Skin]
	Events     json.RawMessage
	Animations *orderedmap.OrderedMap[string, *Animation]

	// Source names where the document was loaded from, for diagnostics.
	Source string

	dropped []string
}

// New returns a minimal document with a single "root" bone and an empty
// "animation".
func New() *Document {
	doc, err := Decode([]byte(emptySkeleton))
	if err != nil {
		panic(fmt.Sprintf("skeleton: invalid built-in template: %v", err))
	}
	return doc
}

// Dropped returns the top-level keys that were read but will not be written.
func (d *Document) Dropped() []string {
	return d.dropped
}

// Bone returns the first bone with the given name.
func (d *Document) Bone(name string) (*Bone, bool) {
	for _, b := range d.Bones {
		if b != nil && b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// HasBone reports whether a bone with the given name exists.
func (d *Document) HasBone(name string) bool {
	_, ok := d.Bone(name)
	return ok
}

// SlotNames returns the names of all slots in order.
func (d *Document) SlotNames() []string {
	names := make([]string, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s != nil {
			names = append(names, s.Name)
		}
	}
	return names
}

// EnsureSkeleton returns the metadata, creating it if absent.
func (d *Document) EnsureSkeleton() *Info {
	if d.Skeleton == nil {
		d.Skeleton = &Info{}
	}
	return d.Skeleton
}

// EnsureSlots creates an empty slots list if absent.
func (d *Document) EnsureSlots() {
	if d.Slots == nil {
		d.Slots = []*Slot{}
	}
}

// EnsureSkin returns the named skin, creating it and the skins map if absent.
func (d *Document) EnsureSkin(name string) *Skin {
	if d.Skins == nil {
		d.Skins = orderedmap.New[string, *Skin]()
	}
	skin, ok := d.Skins.Get(name)
	if !ok || skin == nil {
		skin = orderedmap.New[string, *AttachmentSet]()
		d.Skins.Set(name, skin)
	}
	return skin
}

// EnsureAnimation returns the named animation, creating it and the
// animations map if absent.
func (d *Document) EnsureAnimation(name string) *Animation {
	if d.Animations == nil {
		d.Animations = orderedmap.New[string, *Animation]()
	}
	anim, ok := d.Animations.Get(name)
	if !ok || anim == nil {
		anim = &Animation{}
		d.Animations.Set(name, anim)
	}
	return anim
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var f fields
	if err := f.read(data); err != nil {
		return err
	}

	if _, err := f.decode("skeleton", &d.Skeleton); err != nil {
		return err
	}
	if _, err := f.decode("bones", &d.Bones); err != nil {
		return err
	}
	ok, err := f.decode("slots", &d.Slots)
	if err != nil {
		return err
	}
	if ok && d.Slots == nil {
		d.Slots = []*Slot{}
	}
	if raw, ok := f.raw("skins"); ok {
		if !isObject(raw) {
			return ErrUnsupportedSkins
		}
		d.Skins = orderedmap.New[string, *Skin]()
		if err := json.Unmarshal(raw, d.Skins); err != nil {
			return fmt.Errorf("skins: %w", err)
		}
	}
	if raw, ok := f.raw("events"); ok {
		d.Events = raw
	}
	if raw, ok := f.raw("animations"); ok {
		if !isObject(raw) {
			return fmt.Errorf("animations: %w", ErrNotObject)
		}
		d.Animations = orderedmap.New[string, *Animation]()
		if err := json.Unmarshal(raw, d.Animations); err != nil {
			return fmt.Errorf("animations: %w", err)
		}
	}

	known := make(map[string]bool, len(RootOrder))
	for _, k := range RootOrder {
		known[k] = true
	}
	d.dropped = nil
	for pair := f.members.Oldest(); pair != nil; pair = pair.Next() {
		if !known[pair.Key] {
			d.dropped = append(d.dropped, pair.Key)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Keys are written in RootOrder.
func (d *Document) MarshalJSON() ([]byte, error) {
	values := map[string]func() ([]byte, error){
		"skeleton": func() ([]byte, error) { return encode(d.Skeleton) },
		"bones":    func() ([]byte, error) { return encode(d.Bones) },
		"slots":    func() ([]byte, error) { return encode(d.Slots) },
		"skins": func() ([]byte, error) {
			return marshalMap(d.Skins, func(skin *Skin) ([]byte, error) {
				return marshalMap(skin, func(set *AttachmentSet) ([]byte, error) {
					return marshalMap(set, encodeValue[*Attachment])
				})
			})
		},
		"events":     func() ([]byte, error) { return encode(d.Events) },
		"animations": func() ([]byte, error) { return marshalMap(d.Animations, encodeValue[*Animation]) },
	}
	present := map[string]bool{
		"skeleton":   d.Skeleton != nil,
		"bones":      d.Bones != nil,
		"slots":      d.Slots != nil,
		"skins":      d.Skins != nil,
		"events":     d.Events != nil,
		"animations": d.Animations != nil,
	}

	var out []rawMember
	for _, key := range RootOrder {
		if !present[key] {
			continue
		}
		b, err := values[key]()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, rawMember{key, b})
	}
	return writeObject(out)
}
