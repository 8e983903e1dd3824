package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/jarvis-tokens/config"
	"github.com/tranvictor/jarvis-tokens/tokenlist"
	"github.com/tranvictor/jarvis-tokens/tokens"
	"github.com/tranvictor/jarvis-tokens/ui"
)

// tokenStore is what the commands need from a store: the Store contract plus
// adding tokens.
type tokenStore interface {
	tokens.Store
	Add(token tokens.Token) error
}

func newUI(cmd *cobra.Command) ui.UI {
	return ui.NewTerminalUI(cmd.OutOrStdout())
}

func openStore() (tokenStore, error) {
	store, err := tokens.NewFileStore(config.TokensFilePath())
	if err != nil {
		return nil, err
	}
	return store, nil
}

func newProjection(flat bool, store tokens.Store) *tokenlist.Projection {
	if flat {
		return tokenlist.NewProjection(tokenlist.Flat, tokenlist.WithStore(store))
	}
	return tokenlist.NewProjection(
		tokenlist.ByEnabled,
		tokenlist.WithSectionOrder(tokenlist.SectionEnabled, tokenlist.SectionDisabled),
		tokenlist.WithStore(store),
	)
}

func resolveToken(input string, store tokens.Store) (tokens.Token, error) {
	return tokens.FindToken(input, tokens.FuzzySource(store.Tokens()))
}

func statusText(t tokens.Token) ui.StyledText {
	switch {
	case t.IsNative():
		return ui.StyledText{Text: "native", Severity: ui.SeverityCritical}
	case t.Disabled:
		return ui.StyledText{Text: "disabled", Severity: ui.SeverityWarn}
	default:
		return ui.StyledText{Text: "enabled", Severity: ui.SeveritySuccess}
	}
}

// renderResult prints r as one table, one group of rows per non empty
// section.
func renderResult(u ui.UI, r tokenlist.FilterResult) {
	if r.Query == "" {
		u.Section("All tokens")
	} else {
		u.Section(fmt.Sprintf("Tokens matching '%s'", r.Query))
	}
	if r.Len() == 0 {
		u.Warn("No token matches '%s'.", r.Query)
		return
	}

	groups := [][][]string{}
	row := 1
	for _, s := range r.Sections {
		if s.Len() == 0 {
			continue
		}
		group := [][]string{}
		for _, t := range s.Tokens {
			group = append(group, []string{
				fmt.Sprintf("%d", row),
				t.Symbol,
				t.Name,
				t.Address,
				fmt.Sprintf("%d", t.Decimals),
				u.Style(statusText(t)),
			})
			row++
		}
		groups = append(groups, group)
	}
	u.TableWithGroups([]string{"#", "Symbol", "Name", "Address", "Decimals", "Status"}, groups)
}
