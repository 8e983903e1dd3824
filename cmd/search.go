package cmd

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/tranvictor/jarvis-tokens/config"
	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/search"
	"github.com/tranvictor/jarvis-tokens/tokenlist"
	"github.com/tranvictor/jarvis-tokens/tokens"
	"github.com/tranvictor/jarvis-tokens/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search tokens interactively, one search box edit per line",
	Long: `Every line read from stdin replaces the content of the search box. Results
are shown once no new line came in for the quiet period. An empty line clears
the filter.

Lines starting with ":enable " or ":disable " toggle the given token and
refresh the current results.`,
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd)
		store, err := openStore()
		if err != nil {
			u.Error("Couldn't open token list: %s", err)
			return
		}
		u.Info("Type to search, Ctrl-D to quit.")
		if err = runSearch(u, cmd.InOrStdin(), store, networks.CurrentNetwork(), config.QuietPeriod); err != nil {
			u.Error("Reading input failed: %s", err)
		}
	},
}

func runSearch(u ui.UI, in io.Reader, store tokens.Store, network networks.Network, quietPeriod time.Duration) error {
	editor := tokenlist.NewEditor(
		store,
		search.NewDispatcher(quietPeriod),
		newProjection(false, nil),
		tokenlist.WithPinnedTokens(tokens.NativeToken(network)),
	)
	defer editor.Close()
	// results are rendered from the dispatcher's timer while toggle errors
	// come from this goroutine, keep each block of output together
	var outMu sync.Mutex
	editor.OnUpdate(func(r tokenlist.FilterResult) {
		outMu.Lock()
		defer outMu.Unlock()
		renderResult(u, r)
	})
	report := func(err error) {
		outMu.Lock()
		defer outMu.Unlock()
		u.Error("%s", err)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, ":enable "):
			toggleInSearch(report, editor, store, strings.TrimPrefix(line, ":enable "), true)
		case strings.HasPrefix(line, ":disable "):
			toggleInSearch(report, editor, store, strings.TrimPrefix(line, ":disable "), false)
		default:
			editor.Search(line)
		}
	}
	// input is over, don't wait for the quiet period
	editor.Flush()
	return scanner.Err()
}

func toggleInSearch(report func(error), editor *tokenlist.Editor, store tokens.Store, input string, enabled bool) {
	editor.Flush()
	token, err := resolveToken(strings.TrimSpace(input), store)
	if err != nil {
		report(err)
		return
	}
	if _, err = editor.SetEnabled(token.Address, enabled); err != nil {
		report(err)
	}
}

func init() {
	tokensCmd.AddCommand(searchCmd)
}
