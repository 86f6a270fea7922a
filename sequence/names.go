/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sequence

import (
	"encoding/json"
	"fmt"
	"math"
	"path"
	"slices"
	"strconv"
	"strings"
)

// timePrecision is the number of keyframe time steps per second that survive rounding.
const timePrecision = 10000

// AttachmentName returns the attachment name for an image path: backslashes
// become forward slashes and the file extension is removed. A leading dot
// in the file name (".hidden") is not treated as an extension.
func AttachmentName(imagePath string) string {
	name := strings.ReplaceAll(imagePath, `\`, "/")
	base := path.Base(name)
	if strings.HasSuffix(name, "/") || base == "." || base == "/" {
		return name
	}

	stem := strings.TrimLeft(base, ".")
	ext := path.Ext(stem)
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// UniqueSlotName returns name if unused, otherwise "name (N)" with the
// smallest N >= 1 not in existing.
func UniqueSlotName(name string, existing []string) string {
	candidate := name
	for i := 1; slices.Contains(existing, candidate); i++ {
		candidate = fmt.Sprintf("%s (%d)", name, i)
	}
	return candidate
}

// RoundTime truncates seconds to four decimal places the way Spine writes
// key times. Whole values are written without a fraction: 0, not 0.0.
func RoundTime(seconds float64) json.Number {
	t := math.Floor(seconds*timePrecision) / timePrecision
	if t == math.Trunc(t) {
		return json.Number(strconv.FormatInt(int64(t), 10))
	}
	return json.Number(strconv.FormatFloat(t, 'f', -1, 64))
}
