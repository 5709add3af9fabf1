package textbuffer

import (
	"testing"

	"github.com/opentui/textengine/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStyledTextRegistersHighlights(t *testing.T) {
	b := newTestBuffer()
	reg := style.NewStyleRegistry()
	b.SetSyntaxStyle(reg)

	bold := style.NewTextStyle().WithAttr(style.AttrBold)
	err := b.SetStyledText([]StyledChunk{
		{Bytes: []byte("hello ")},
		{Bytes: []byte("world"), Style: &bold},
	})
	require.NoError(t, err)

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "hello world", string(text))

	spans, err := b.ResolveLineSpans(0)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, 6, spans[1].Col)

	resolved, ok := reg.Resolve(spans[1].StyleID)
	require.True(t, ok)
	assert.True(t, resolved.Bold())
}

func TestSetStyledTextWithoutRegistryStillSetsText(t *testing.T) {
	b := newTestBuffer()
	bold := style.NewTextStyle().WithAttr(style.AttrBold)
	err := b.SetStyledText([]StyledChunk{{Bytes: []byte("hi"), Style: &bold}})
	require.NoError(t, err)

	text, _ := b.GetPlainTextInto(nil)
	assert.Equal(t, "hi", string(text))
}

func TestStyleRegistryDestroyClearsBufferReference(t *testing.T) {
	b := newTestBuffer()
	reg := style.NewStyleRegistry()
	b.SetSyntaxStyle(reg)
	reg.Destroy()
	assert.Nil(t, b.SyntaxStyle())
}
