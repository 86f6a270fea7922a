/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors for sequence merging.
var (
	// ErrNoImages indicates an empty image sequence.
	ErrNoImages = errors.New("no images to process")

	// ErrBoneNotFound indicates the target bone is missing from the skeleton.
	ErrBoneNotFound = errors.New("bone not found")

	// ErrInvalidFramerate indicates a framerate that is not positive.
	ErrInvalidFramerate = errors.New("framerate must be greater than zero")

	// ErrInvalidColor indicates a slot tint that is not a parsable color.
	ErrInvalidColor = errors.New("invalid slot color")
)

// BoneNotFoundError reports a merge target bone missing from a skeleton.
type BoneNotFoundError struct {
	// Bone is the name that was looked up.
	Bone string
	// Source is where the skeleton was loaded from. Empty for a new skeleton.
	Source string
}

// Error implements the error interface.
func (e *BoneNotFoundError) Error() string {
	return fmt.Sprintf("cannot find bone %q in skeleton %q", e.Bone, e.Source)
}

// Unwrap lets errors.Is match ErrBoneNotFound.
func (e *BoneNotFoundError) Unwrap() error {
	return ErrBoneNotFound
}
