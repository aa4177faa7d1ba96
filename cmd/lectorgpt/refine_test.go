/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Silverdust-ZH/LectorGPT/internal/editor"
)

func TestParseLineRangeValid(t *testing.T) {
	selection, err := parseLineRange("3:10")
	assert.NoError(t, err)
	assert.Equal(t, editor.Selection{StartLine: 3, EndLine: 10}, selection)

	selection, err = parseLineRange("5:5")
	assert.NoError(t, err)
	assert.Equal(t, editor.Selection{StartLine: 5, EndLine: 5}, selection)
}

func TestParseLineRangeInvalid(t *testing.T) {
	for _, raw := range []string{"", "3", "3-10", "a:b", "0:4", "7:3"} {
		_, err := parseLineRange(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}
