package tokenlist

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/search"
	"github.com/tranvictor/jarvis-tokens/tokens"
)

type editorFixture struct {
	editor    *Editor
	store     *tokens.MemoryStore
	scheduler *search.ManualScheduler
	updates   []FilterResult
}

func newEditorFixture() *editorFixture {
	f := &editorFixture{
		store:     tokens.NewMemoryStore(tokens.DefaultTokens()...),
		scheduler: search.NewManualScheduler(time.Unix(0, 0)),
	}
	dispatcher := search.NewDispatcher(
		search.DefaultQuietPeriod,
		search.WithScheduler(f.scheduler),
		search.WithClock(f.scheduler.Now),
	)
	projection := NewProjection(ByEnabled, WithSectionOrder(SectionEnabled, SectionDisabled))
	f.editor = NewEditor(
		f.store, dispatcher, projection,
		WithPinnedTokens(tokens.NativeToken(networks.EthereumMainnet)),
	)
	f.editor.OnUpdate(func(r FilterResult) {
		f.updates = append(f.updates, r)
	})
	return f
}

func TestEditorDebouncesTyping(t *testing.T) {
	f := newEditorFixture()

	for _, q := range []string{"u", "us", "usd"} {
		f.editor.Search(q)
		f.scheduler.Advance(100 * time.Millisecond)
	}
	assert.Empty(t, f.updates)

	f.scheduler.Advance(search.DefaultQuietPeriod)
	require.Len(t, f.updates, 1)
	assert.Equal(t, "usd", f.updates[0].Query)
	assert.Equal(t, []string{"USDC", "USDT"}, symbols(f.updates[0].Tokens()))
}

func TestEditorClearQueryListsNativeFirst(t *testing.T) {
	f := newEditorFixture()

	f.editor.Search("")
	f.scheduler.Advance(search.DefaultQuietPeriod)

	require.Len(t, f.updates, 1)
	all := f.updates[0].Tokens()
	require.Len(t, all, len(tokens.DEFAULT_TOKENS)+1)
	assert.True(t, all[0].IsNative())
	assert.Equal(t, "ETH", all[0].Symbol)
}

func TestEditorSetEnabledReappliesLastQuery(t *testing.T) {
	f := newEditorFixture()
	f.editor.Search("dai")
	f.scheduler.Advance(search.DefaultQuietPeriod)

	_, err := f.editor.SetEnabled("0x6b175474e89094c44da98b954eedeac495271d0f", false)
	require.NoError(t, err)

	require.Len(t, f.updates, 2)
	last := f.updates[1]
	assert.Equal(t, "dai", last.Query)
	assert.Empty(t, last.Sections[0].Tokens)
	assert.Equal(t, []string{"DAI"}, symbols(last.Sections[1].Tokens))

	p := f.editor.Projection()
	item, err := p.ItemAt(1, 0)
	require.NoError(t, err)
	assert.True(t, item.Disabled)
}

func TestEditorSetEnabledUnknownToken(t *testing.T) {
	f := newEditorFixture()

	_, err := f.editor.SetEnabled(tokens.NativeTokenAddress, false)
	assert.True(t, errors.Is(err, tokens.ErrNotFound))
	assert.Empty(t, f.updates)
}

func TestEditorFlushAndClose(t *testing.T) {
	f := newEditorFixture()

	f.editor.Search("link")
	require.True(t, f.editor.Flush())
	require.Len(t, f.updates, 1)
	assert.Equal(t, []string{"LINK"}, symbols(f.updates[0].Tokens()))

	f.editor.Search("knc")
	f.editor.Close()
	f.scheduler.Advance(time.Hour)
	assert.Len(t, f.updates, 1)
}
