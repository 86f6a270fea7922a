/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package skeleton

import "errors"

// Sentinel errors for skeleton document operations.
var (
	// ErrNotObject indicates a JSON value that must be an object is something else.
	ErrNotObject = errors.New("expected a JSON object")

	// ErrUnsupportedSkins indicates skins stored in a layout other than
	// the name-keyed object used by Spine 3.x documents.
	ErrUnsupportedSkins = errors.New("skins must be an object keyed by skin name")

	// ErrDecode indicates the document could not be parsed.
	ErrDecode = errors.New("failed to decode skeleton document")
)
