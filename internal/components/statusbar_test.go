package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/yank/internal/types"
	"github.com/renato0307/yank/internal/ui"
)

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(ui.GetTheme("charm"))
	sb.SetWidth(80)

	first := sb.SetMessage("Copied", types.MessageTypeSuccess)
	assert.Contains(t, sb.View(), "Copied")

	second := sb.SetMessage("Copy failed: boom", types.MessageTypeError)
	assert.NotEqual(t, first, second)

	// Stale clear keeps the newer message
	sb.Clear(first)
	msg, msgType := sb.Message()
	assert.Equal(t, "Copy failed: boom", msg)
	assert.Equal(t, types.MessageTypeError, msgType)

	sb.Clear(second)
	msg, _ = sb.Message()
	assert.Empty(t, msg)
	assert.NotContains(t, sb.View(), "Copy failed")
}

func TestHeader(t *testing.T) {
	h := NewHeader("yank", ui.GetTheme("charm"))
	h.SetWidth(40)

	h.SetCounts(3, 3)
	assert.Contains(t, h.View(), "yank")
	assert.Contains(t, h.View(), "3 snippets")

	h.SetCounts(1, 3)
	assert.Contains(t, h.View(), "1 of 3 snippets")

	h.SetCounts(1, 1)
	assert.Contains(t, h.View(), "1 snippet")
}
