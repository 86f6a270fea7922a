/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sequence merges image sequences into Spine skeleton documents.
//
// A sequence becomes one new slot on a bone, one region attachment per image
// under the default skin, and an attachment timeline that steps through the
// images at a fixed framerate.
package sequence

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"bennypowers.dev/spineseq/skeleton"
)

// Options configures how a sequence is merged.
type Options struct {
	// Bone is the bone the new slot is attached to.
	Bone string

	// Framerate is the number of images shown per second.
	Framerate float64

	// Animation is the animation that receives the attachment timeline.
	Animation string

	// Color optionally tints the new slot. Any CSS color is accepted.
	Color string
}

// DefaultOptions returns options with the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{
		Bone:      "root",
		Framerate: 30,
		Animation: skeleton.DefaultAnimation,
	}
}

// Merge adds the image sequence to doc as a new animated slot and returns
// the document. A nil doc starts from skeleton.New. Every image is
// registered with the same width and height.
//
// All preconditions are checked before doc is touched, so a returned error
// means doc is unchanged.
func Merge(doc *skeleton.Document, images []string, width, height int, opts Options) (*skeleton.Document, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if opts.Framerate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFramerate, opts.Framerate)
	}
	if opts.Bone == "" {
		opts.Bone = "root"
	}
	if opts.Animation == "" {
		opts.Animation = skeleton.DefaultAnimation
	}
	tint, err := slotColor(opts.Color)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		doc = skeleton.New()
	}
	if !doc.HasBone(opts.Bone) {
		return nil, &BoneNotFoundError{Bone: opts.Bone, Source: doc.Source}
	}

	doc.EnsureSkeleton().Grow(width, height)

	doc.EnsureSlots()
	skin := doc.EnsureSkin(skeleton.DefaultSkin)
	timelines := doc.EnsureAnimation(opts.Animation).EnsureSlots()

	first := AttachmentName(images[0])
	slotName := UniqueSlotName(first, doc.SlotNames())

	doc.Slots = append(doc.Slots, &skeleton.Slot{
		Name:       slotName,
		Bone:       opts.Bone,
		Attachment: first,
		Color:      tint,
	})

	attachments := orderedAttachments(images, width, height)
	skin.Set(slotName, attachments)

	keyframes := make([]*skeleton.Keyframe, 0, len(images))
	for i, img := range images {
		time := RoundTime(float64(i) / opts.Framerate)
		keyframes = append(keyframes, skeleton.NewKeyframe(time, AttachmentName(img)))
	}
	timelines.Set(slotName, &skeleton.SlotTimeline{Attachment: keyframes})

	return doc, nil
}

// orderedAttachments registers one region per image, keyed by attachment name.
func orderedAttachments(images []string, width, height int) *skeleton.AttachmentSet {
	set := orderedmap.New[string, *skeleton.Attachment]()
	for _, img := range images {
		set.Set(AttachmentName(img), skeleton.NewAttachment(width, height))
	}
	return set
}

// slotColor converts a CSS color to Spine's RRGGBBAA form.
func slotColor(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidColor, value, err)
	}
	r, g, b, a := c.RGBA255()
	return fmt.Sprintf("%02x%02x%02x%02x", r, g, b, a), nil
}
