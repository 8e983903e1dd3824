package cmd

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/jarvis-tokens/config"
	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/tokens"
	"github.com/tranvictor/jarvis-tokens/transfer"
	"github.com/tranvictor/jarvis-tokens/ui"
)

const daiAddr = "0x6b175474e89094c44da98b954eedeac495271d0f"

func newStore() *tokens.MemoryStore {
	return tokens.NewMemoryStore(tokens.DefaultTokens()...)
}

// symbolColumn returns the symbols of every group of the last rendered
// table.
func symbolColumn(r *ui.RecordingUI) [][]string {
	tables := r.Tables()
	if len(tables) == 0 {
		return nil
	}
	res := [][]string{}
	for _, group := range tables[len(tables)-1] {
		syms := []string{}
		for _, row := range group {
			syms = append(syms, row[1])
		}
		res = append(res, syms)
	}
	return res
}

func TestListAllWithNativeFirst(t *testing.T) {
	r := ui.NewRecordingUI()
	store := newStore()
	_, err := store.Update(daiAddr, tokens.Disable(true))
	require.NoError(t, err)

	result := runList(r, store, networks.BSCMainnet, "", false)

	assert.Equal(t, len(tokens.DEFAULT_TOKENS)+1, result.Len())
	groups := symbolColumn(r)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"BNB", "USDC", "USDT", "WETH", "KNC", "LINK"}, groups[0])
	assert.Equal(t, []string{"DAI"}, groups[1])
	assert.True(t, r.HasMessage("All tokens"))
}

func TestListFiltered(t *testing.T) {
	r := ui.NewRecordingUI()

	runList(r, newStore(), networks.EthereumMainnet, "eth", true)

	// "Tether USD" contains "eth" too
	assert.Equal(t, [][]string{{"ETH", "USDT", "WETH"}}, symbolColumn(r))
	assert.True(t, r.HasMessage("matching 'eth'"))
}

func TestListNoMatch(t *testing.T) {
	r := ui.NewRecordingUI()

	result := runList(r, newStore(), networks.EthereumMainnet, "nothing-like-this", false)

	assert.Equal(t, 0, result.Len())
	assert.Empty(t, r.Tables())
	assert.True(t, r.HasMessage("No token matches"))
}

func TestFindFuzzyThenIndex(t *testing.T) {
	r := ui.NewRecordingUI()
	require.NoError(t, runFind(r, newStore(), "usdc", false))
	require.Len(t, r.Tables(), 1)
	assert.Equal(t, "USDC", r.Tables()[0][0][0][1])

	r = ui.NewRecordingUI()
	require.NoError(t, runFind(r, newStore(), "tethr", true))
	require.Len(t, r.Tables(), 1)
	assert.Equal(t, "USDT", r.Tables()[0][0][0][1])
}

func TestToggle(t *testing.T) {
	r := ui.NewRecordingUI()
	store := newStore()

	updated, err := runToggle(r, store, "dai", false)
	require.NoError(t, err)
	assert.True(t, updated.Disabled)
	assert.True(t, store.Tokens()[tokens.IndexOf(store.Tokens(), daiAddr)].Disabled)
	assert.True(t, r.HasMessage("Disabled DAI"))

	updated, err = runToggle(r, store, daiAddr, true)
	require.NoError(t, err)
	assert.False(t, updated.Disabled)
	assert.Len(t, r.SuccessMessages(), 1)

	_, err = runToggle(r, store, "0x0000000000000000000000000000000000000001", true)
	assert.True(t, errors.Is(err, tokens.ErrNotFound))
}

func TestAdd(t *testing.T) {
	r := ui.NewRecordingUI()
	store := newStore()

	tok, err := runAdd(r, store, []string{"0x1f9840a85d5af5bf1d1762f925bdaddc4201f984", "UNI", "18", "Uniswap"})
	require.NoError(t, err)
	assert.Equal(t, "Uniswap", tok.Name)
	assert.GreaterOrEqual(t, tokens.IndexOf(store.Tokens(), tok.Address), 0)

	_, err = runAdd(r, store, []string{daiAddr, "DAI", "18"})
	assert.True(t, errors.Is(err, tokens.ErrDuplicated))

	_, err = runAdd(r, store, []string{daiAddr, "DAI", "eighteen"})
	assert.Error(t, err)
}

func TestSearchCommitsLastLineOnly(t *testing.T) {
	r := ui.NewRecordingUI()
	in := strings.NewReader("l\nli\nlin\nlink\n")

	require.NoError(t, runSearch(r, in, newStore(), networks.EthereumMainnet, time.Minute))

	require.Len(t, r.Tables(), 1)
	assert.Equal(t, [][]string{{"LINK"}}, symbolColumn(r))
}

func TestSearchToggleRefreshesResults(t *testing.T) {
	r := ui.NewRecordingUI()
	store := newStore()
	in := strings.NewReader("dai\n:disable dai\n")

	require.NoError(t, runSearch(r, in, store, networks.EthereumMainnet, time.Minute))

	tables := r.Tables()
	require.Len(t, tables, 2)
	// enabled first, then disabled
	assert.Equal(t, "enabled", tables[0][0][0][5])
	assert.Equal(t, "disabled", tables[1][0][0][5])
	assert.True(t, store.Tokens()[tokens.IndexOf(store.Tokens(), daiAddr)].Disabled)
}

func TestSearchUnknownTokenCommand(t *testing.T) {
	r := ui.NewRecordingUI()
	in := strings.NewReader(":enable qqqqqqq\n")

	require.NoError(t, runSearch(r, in, newStore(), networks.EthereumMainnet, time.Minute))
	assert.Len(t, r.ErrorMessages(), 1)
}

func TestTransferTargetNative(t *testing.T) {
	r := ui.NewRecordingUI()
	to := "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"

	tt, err := runTransferTarget(r, newStore(), networks.BSCMainnet, "bnb", to)
	require.NoError(t, err)
	assert.Equal(t, transfer.KindNative, tt.Kind())
	dest, ok := tt.Destination()
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress(to), dest)
	assert.True(t, r.HasMessage("Symbol: BNB"))
	assert.True(t, r.HasMessage("Chain ID: 56"))
	assert.True(t, r.HasMessage("Block time: 3s"))
	assert.True(t, r.HasMessage("Contract: 0x0000000000000000000000000000000000000000"))

	_, err = runTransferTarget(r, newStore(), networks.BSCMainnet, "native", "0x12")
	assert.True(t, errors.Is(err, tokens.ErrInvalidAddress))
}

func TestTransferTargetToken(t *testing.T) {
	r := ui.NewRecordingUI()

	tt, err := runTransferTarget(r, newStore(), networks.EthereumMainnet, "dai", "")
	require.NoError(t, err)
	assert.Equal(t, transfer.KindToken, tt.Kind())
	assert.Equal(t, common.HexToAddress(daiAddr), tt.Contract())
	assert.True(t, r.HasMessage("Symbol: DAI"))
}

func TestTokensFilePath(t *testing.T) {
	defer func() { config.TokensFile = "" }()

	t.Setenv(config.TOKENS_FILE_VAR, "/tmp/from-env.json")
	assert.Equal(t, "/tmp/from-env.json", config.TokensFilePath())

	config.TokensFile = "/tmp/from-flag.json"
	assert.Equal(t, "/tmp/from-flag.json", config.TokensFilePath())
}

func TestTokensFilePathExpandsHome(t *testing.T) {
	defer func() { config.TokensFile = "" }()
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.TOKENS_FILE_VAR, "")

	assert.Equal(t, filepath.Join(home, ".jarvis", "tokens.json"), config.TokensFilePath())

	config.TokensFile = "~/lists/tokens.json"
	assert.Equal(t, filepath.Join(home, "lists", "tokens.json"), config.TokensFilePath())
}

// pacedReader hands out one line at a time, waiting gap before each.
type pacedReader struct {
	lines   []string
	gap     time.Duration
	pending []byte
}

func (r *pacedReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if len(r.lines) == 0 {
			return 0, io.EOF
		}
		time.Sleep(r.gap)
		r.pending = []byte(r.lines[0] + "\n")
		r.lines = r.lines[1:]
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

type overlapWriter struct {
	active   int32
	overlaps int32
}

func (w *overlapWriter) Write(p []byte) (int, error) {
	if atomic.AddInt32(&w.active, 1) > 1 {
		atomic.AddInt32(&w.overlaps, 1)
	}
	time.Sleep(20 * time.Microsecond)
	atomic.AddInt32(&w.active, -1)
	return len(p), nil
}

func TestSearchOutputDoesNotInterleave(t *testing.T) {
	lines := []string{}
	for i := 0; i < 40; i++ {
		lines = append(lines, "e", ":disable nosuchtokenzz")
	}
	w := &overlapWriter{}

	err := runSearch(
		ui.NewTerminalUI(w),
		&pacedReader{lines: lines, gap: 3 * time.Millisecond},
		newStore(),
		networks.EthereumMainnet,
		2*time.Millisecond,
	)
	require.NoError(t, err)
	// let a commit scheduled by the last line settle
	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&w.overlaps))
}
