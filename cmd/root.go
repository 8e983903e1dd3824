// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tranvictor/jarvis-tokens/config"
	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/search"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jarvis-tokens",
	Short: "Manage and search the tokens your wallet tracks",
	Long: fmt.Sprintf(`jarvis-tokens manages the list of tokens tracked by your wallet.

It helps you to:

	1. List tracked tokens, grouped as enabled and disabled, optionally
	filtered by a case-insensitive search on symbol or name.

	2. Search interactively: every line you type is a search box edit,
	results are shown once you stop typing for the quiet period
	(--quiet-period, 700ms by default).

	3. Enable, disable and add tokens, and find them by fuzzy name.

The native currency of the selected network (--network) is always listed
first. Tokens are kept in ~/.jarvis/tokens.json, you can point to another
file with --tokens-file or the %s env var.

Supported networks: %s.

For more information or support, reach me at https://github.com/tranvictor.`,
		config.TOKENS_FILE_VAR,
		strings.Join(networks.GetSupportedNetworkNames(), ", "),
	),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		networks.SetNetwork(config.Network)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet", "network whose native currency is listed, by name or chain id. Valid values: mainnet, bsc, matic, arbitrum, optimism, base, avalanche and custom networks.")
	rootCmd.PersistentFlags().StringVar(&config.TokensFile, "tokens-file", "", fmt.Sprintf("token list file. Defaults to $%s or ~/.jarvis/tokens.json", config.TOKENS_FILE_VAR))
	rootCmd.PersistentFlags().DurationVar(&config.QuietPeriod, "quiet-period", search.DefaultQuietPeriod, "how long input must stay unchanged before a search runs")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
