/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package skeleton

import (
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Info is the document-level metadata stored under the "skeleton" key.
// Only the bounds are typed; hash, spine version and everything else pass
// through unchanged.
type Info struct {
	// Width and Height keep the number literal they were read with.
	Width  json.Number
	Height json.Number

	fields
}

// Grow raises the bounds to at least width by height. Bounds never shrink.
func (i *Info) Grow(width, height int) {
	i.Width = growNumber(i.Width, width)
	i.Height = growNumber(i.Height, height)
}

func growNumber(current json.Number, v int) json.Number {
	if current == "" {
		return json.Number(strconv.Itoa(v))
	}
	n, err := current.Float64()
	if err != nil || float64(v) > n {
		return json.Number(strconv.Itoa(v))
	}
	return current
}

// Field returns the value of a passthrough string member such as "hash" or "spine".
func (i *Info) Field(name string) string {
	var s string
	if _, err := i.decode(name, &s); err != nil {
		return ""
	}
	return s
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Info) UnmarshalJSON(data []byte) error {
	if err := i.read(data); err != nil {
		return err
	}
	if _, err := i.decode("width", &i.Width); err != nil {
		return err
	}
	_, err := i.decode("height", &i.Height)
	return err
}

// MarshalJSON implements json.Marshaler.
func (i *Info) MarshalJSON() ([]byte, error) {
	return i.write(
		member{name: "width", value: i.Width},
		member{name: "height", value: i.Height},
	)
}

// Bone is a named transform node. Only the name is interpreted.
type Bone struct {
	Name string

	fields
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bone) UnmarshalJSON(data []byte) error {
	if err := b.read(data); err != nil {
		return err
	}
	_, err := b.decode("name", &b.Name)
	return err
}

// MarshalJSON implements json.Marshaler.
func (b *Bone) MarshalJSON() ([]byte, error) {
	return b.write(member{name: "name", value: b.Name})
}

// Slot is an attachment point bound to a bone.
type Slot struct {
	Name string
	Bone string

	// Attachment is the attachment shown in setup pose. Empty means none.
	Attachment string

	// Color is the slot tint as RRGGBBAA hex. Empty means untinted.
	Color string

	fields
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Slot) UnmarshalJSON(data []byte) error {
	if err := s.read(data); err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		dst  *string
	}{
		{"name", &s.Name},
		{"bone", &s.Bone},
		{"color", &s.Color},
		{"attachment", &s.Attachment},
	} {
		if _, err := s.decode(m.name, m.dst); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Slot) MarshalJSON() ([]byte, error) {
	return s.write(
		member{name: "name", value: s.Name},
		member{name: "bone", value: s.Bone},
		member{name: "color", value: s.Color},
		member{name: "attachment", value: s.Attachment},
	)
}

// Skin maps slot names to the attachments each slot can display.
type Skin = orderedmap.OrderedMap[string, *AttachmentSet]

// AttachmentSet maps attachment names to attachments for one slot.
type AttachmentSet = orderedmap.OrderedMap[string, *Attachment]

// Attachment is a renderable image region.
type Attachment struct {
	Width  json.Number
	Height json.Number

	fields
}

// NewAttachment returns a region attachment of the given size.
func NewAttachment(width, height int) *Attachment {
	return &Attachment{
		Width:  json.Number(strconv.Itoa(width)),
		Height: json.Number(strconv.Itoa(height)),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	if err := a.read(data); err != nil {
		return err
	}
	if _, err := a.decode("width", &a.Width); err != nil {
		return err
	}
	_, err := a.decode("height", &a.Height)
	return err
}

// MarshalJSON implements json.Marshaler.
func (a *Attachment) MarshalJSON() ([]byte, error) {
	return a.write(
		member{name: "width", value: a.Width},
		member{name: "height", value: a.Height},
	)
}

// Animation holds the timelines of one named animation. Bone, event and
// draw order timelines pass through unchanged.
type Animation struct {
	// Slots is nil when the animation has no "slots" member.
	Slots *orderedmap.OrderedMap[string, *SlotTimeline]

	fields
}

// EnsureSlots returns the slot timelines, creating the map if absent.
func (a *Animation) EnsureSlots() *orderedmap.OrderedMap[string, *SlotTimeline] {
	if a.Slots == nil {
		a.Slots = orderedmap.New[string, *SlotTimeline]()
	}
	return a.Slots
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Animation) UnmarshalJSON(data []byte) error {
	if err := a.read(data); err != nil {
		return err
	}
	raw, ok := a.raw("slots")
	if !ok {
		return nil
	}
	if !isObject(raw) {
		return ErrNotObject
	}
	a.Slots = orderedmap.New[string, *SlotTimeline]()
	return json.Unmarshal(raw, a.Slots)
}

// MarshalJSON implements json.Marshaler.
func (a *Animation) MarshalJSON() ([]byte, error) {
	var slots json.RawMessage
	if a.Slots != nil {
		var err error
		if slots, err = marshalMap(a.Slots, encodeValue[*SlotTimeline]); err != nil {
			return nil, err
		}
	}
	return a.write(member{name: "slots", value: slots})
}

// SlotTimeline holds the timelines of one slot within an animation.
// Color timelines pass through unchanged.
type SlotTimeline struct {
	// Attachment is nil when the slot has no attachment timeline.
	Attachment []*Keyframe

	fields
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *SlotTimeline) UnmarshalJSON(data []byte) error {
	if err := t.read(data); err != nil {
		return err
	}
	ok, err := t.decode("attachment", &t.Attachment)
	if ok && err == nil && t.Attachment == nil {
		t.Attachment = []*Keyframe{}
	}
	return err
}

// MarshalJSON implements json.Marshaler.
func (t *SlotTimeline) MarshalJSON() ([]byte, error) {
	return t.write(member{name: "attachment", value: t.Attachment})
}

// Keyframe switches a slot to the named attachment at Time seconds.
type Keyframe struct {
	Time json.Number

	// Name is nil to hide the slot's attachment. A nil Name is only written
	// when the keyframe was read with "name": null.
	Name *string

	fields
}

// NewKeyframe returns a keyframe showing name at time.
func NewKeyframe(time json.Number, name string) *Keyframe {
	return &Keyframe{Time: time, Name: &name}
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Keyframe) UnmarshalJSON(data []byte) error {
	if err := k.read(data); err != nil {
		return err
	}
	if _, err := k.decode("time", &k.Time); err != nil {
		return err
	}
	_, err := k.decode("name", &k.Name)
	return err
}

// MarshalJSON implements json.Marshaler.
func (k *Keyframe) MarshalJSON() ([]byte, error) {
	return k.write(
		member{name: "time", value: k.Time},
		member{name: "name", value: k.Name},
	)
}
