package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/jarvis-tokens/config"
	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/tokens"
	"github.com/tranvictor/jarvis-tokens/transfer"
	"github.com/tranvictor/jarvis-tokens/ui"
)

var transferTargetCmd = &cobra.Command{
	Use:   "transfer-target <native|token>",
	Short: "Show the contract and symbol a transfer of the given asset goes through",
	Long: `The asset is either "native" (or the native symbol of the network, ETH on
mainnet), or a tracked token given by address, symbol or name.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd)
		store, err := openStore()
		if err != nil {
			u.Error("Couldn't open token list: %s", err)
			return
		}
		if _, err = runTransferTarget(u, store, networks.CurrentNetwork(), strings.Join(args, " "), config.To); err != nil {
			u.Error("%s", err)
		}
	},
}

func resolveTransferType(store tokens.Store, network networks.Network, input, to string) (transfer.Type, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "native") || strings.EqualFold(input, network.GetNativeTokenSymbol()) {
		if to == "" {
			return transfer.Native(nil), nil
		}
		if !common.IsHexAddress(to) {
			return transfer.Type{}, fmt.Errorf("%w: '%s'", tokens.ErrInvalidAddress, to)
		}
		dest := common.HexToAddress(to)
		return transfer.Native(&dest), nil
	}
	token, err := resolveToken(input, store)
	if err != nil {
		return transfer.Type{}, err
	}
	return transfer.FromToken(token), nil
}

func runTransferTarget(u ui.UI, store tokens.Store, network networks.Network, input, to string) (transfer.Type, error) {
	t, err := resolveTransferType(store, network, input, to)
	if err != nil {
		return transfer.Type{}, err
	}
	rows := [][2]string{
		{"Network", network.GetName()},
		{"Chain ID", fmt.Sprintf("%d", network.GetChainID())},
		{"Block time", network.GetBlockTime().String()},
		{"Kind", t.Kind().String()},
		{"Symbol", t.Symbol(network)},
		{"Decimals", fmt.Sprintf("%d", t.Decimals(network))},
		{"Contract", t.Contract().Hex()},
	}
	if dest, ok := t.Destination(); ok {
		rows = append(rows, [2]string{"Destination", dest.Hex()})
	}
	u.KeyValue(rows)
	return t, nil
}

func init() {
	transferTargetCmd.Flags().StringVar(&config.To, "to", "", "destination of a native transfer")
	rootCmd.AddCommand(transferTargetCmd)
}
