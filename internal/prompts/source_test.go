/* Copyright © 2025-2026 Silverdust-ZH. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceConstructors(t *testing.T) {
	asset := AssetSource()
	assert.Equal(t, SourceAsset, asset.Type)
	assert.Equal(t, "", asset.Path)

	file := FileSource("docs/style.prompt.md")
	assert.Equal(t, SourceFile, file.Type)
	assert.Equal(t, "docs/style.prompt.md", file.Path)
}

func TestSourceEqual(t *testing.T) {
	assert.True(t, Equal(AssetSource(), AssetSource()))
	assert.True(t, Equal(FileSource("a.prompt.md"), FileSource("a.prompt.md")))
	assert.False(t, Equal(FileSource("a.prompt.md"), FileSource("b.prompt.md")))
	assert.False(t, Equal(AssetSource(), FileSource("a.prompt.md")))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(AssetSource(), nil))
	assert.False(t, Equal(nil, AssetSource()))
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "<default>", AssetSource().Label())
	assert.Equal(t, "docs/style.prompt.md",
		FileSource("docs/style.prompt.md").Label())
}

func TestBundledDefaultPromptNotEmpty(t *testing.T) {
	assert.NotEmpty(t, defaultSystemPrompt)
}
