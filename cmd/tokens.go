package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/jarvis-tokens/bleve"
	"github.com/tranvictor/jarvis-tokens/config"
	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/tokenlist"
	"github.com/tranvictor/jarvis-tokens/tokens"
	"github.com/tranvictor/jarvis-tokens/ui"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List, find, enable and disable tracked tokens",
	Long:  ``,
}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List tracked tokens, filtered by a case-insensitive search on symbol or name",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd)
		store, err := openStore()
		if err != nil {
			u.Error("Couldn't open token list: %s", err)
			return
		}
		runList(u, store, networks.CurrentNetwork(), strings.Join(args, " "), config.FlatList)
	},
}

func runList(u ui.UI, store tokens.Store, network networks.Network, query string, flat bool) tokenlist.FilterResult {
	p := newProjection(flat, store)
	p.SetSource(append([]tokens.Token{tokens.NativeToken(network)}, store.Tokens()...))
	result := p.ApplyFilter(query)
	renderResult(u, result)
	return result
}

var findCmd = &cobra.Command{
	Use:   "find <words>",
	Short: "Find at max 10 tokens by fuzzy matching their symbol, name and address",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd)
		store, err := openStore()
		if err != nil {
			u.Error("Couldn't open token list: %s", err)
			return
		}
		if err = runFind(u, store, strings.Join(args, " "), config.UseIndex); err != nil {
			u.Error("%s", err)
		}
	},
}

// runFind tries the fuzzy matcher first and falls back to the full-text
// index, which tolerates typos, when it finds nothing.
func runFind(u ui.UI, store tokens.Store, input string, forceIndex bool) error {
	list := store.Tokens()
	var matches []tokens.Token
	var scores []int
	if !forceIndex {
		matches, scores = tokens.FindTokens(input, tokens.FuzzySource(list))
	}
	if len(matches) == 0 {
		stop := u.Spinner("Indexing tokens...")
		index, err := bleve.NewTokenIndex(list)
		stop()
		if err != nil {
			return fmt.Errorf("building token index failed: %w", err)
		}
		defer index.Close()
		matches, scores, err = index.Search(input)
		if err != nil {
			return err
		}
	}
	if len(matches) == 0 {
		u.Warn("No token is found with '%s'.", input)
		return nil
	}

	rows := [][]string{}
	for i, t := range matches {
		rows = append(rows, []string{
			fmt.Sprintf("%d", scores[i]),
			t.Symbol,
			t.Name,
			t.Address,
			u.Style(statusText(t)),
		})
	}
	u.Table([]string{"Score", "Symbol", "Name", "Address", "Status"}, rows)
	return nil
}

func newToggleCmd(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <token>",
		Short: fmt.Sprintf("%s a token, given its address, symbol or name", use),
		Long:  ``,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			u := newUI(cmd)
			store, err := openStore()
			if err != nil {
				u.Error("Couldn't open token list: %s", err)
				return
			}
			if _, err = runToggle(u, store, strings.Join(args, " "), enabled); err != nil {
				u.Error("%s", err)
			}
		},
	}
}

func runToggle(u ui.UI, store tokens.Store, input string, enabled bool) (tokens.Token, error) {
	token, err := resolveToken(input, store)
	if err != nil {
		return tokens.Token{}, err
	}
	p := newProjection(false, store)
	p.SetSource(store.Tokens())
	updated, err := p.UpdateToken(token.Address, tokens.Disable(!enabled))
	if err != nil {
		return tokens.Token{}, err
	}
	if enabled {
		u.Success("Enabled %s", updated)
	} else {
		u.Warn("Disabled %s", updated)
	}
	return updated, nil
}

var addCmd = &cobra.Command{
	Use:   "add <address> <symbol> <decimals> [name]",
	Short: "Track a new token",
	Long:  ``,
	Args:  cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd)
		store, err := openStore()
		if err != nil {
			u.Error("Couldn't open token list: %s", err)
			return
		}
		if _, err = runAdd(u, store, args); err != nil {
			u.Error("%s", err)
		}
	},
}

func runAdd(u ui.UI, store tokenStore, args []string) (tokens.Token, error) {
	decimals, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return tokens.Token{}, fmt.Errorf("invalid decimals '%s': %w", args[2], err)
	}
	name := strings.Join(args[3:], " ")
	if name == "" {
		name = args[1]
	}
	token, err := tokens.NewToken(args[0], args[1], name, decimals)
	if err != nil {
		return tokens.Token{}, err
	}
	if err = store.Add(token); err != nil {
		if errors.Is(err, tokens.ErrDuplicated) {
			u.Warn("%s is already tracked.", token.Address)
		}
		return tokens.Token{}, err
	}
	u.Success("Added %s", token)
	return token, nil
}

func init() {
	listCmd.Flags().BoolVar(&config.FlatList, "flat", false, "list tokens in a single section instead of enabled/disabled")
	findCmd.Flags().BoolVar(&config.UseIndex, "index", false, "search the full-text index directly, tolerating typos")

	tokensCmd.AddCommand(listCmd)
	tokensCmd.AddCommand(findCmd)
	tokensCmd.AddCommand(newToggleCmd("enable", true))
	tokensCmd.AddCommand(newToggleCmd("disable", false))
	tokensCmd.AddCommand(addCmd)
	rootCmd.AddCommand(tokensCmd)
}
