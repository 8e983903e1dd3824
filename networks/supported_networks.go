package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

var (
	BSCMainnet Network = NewGenericNetwork(GenericNetworkConfig{
		Name:               "bsc",
		AlternativeNames:   []string{"binance"},
		ChainID:            56,
		NativeTokenSymbol:  "BNB",
		NativeTokenDecimal: 18,
		BlockTime:          3,
	})
	Matic Network = NewGenericNetwork(GenericNetworkConfig{
		Name:               "matic",
		AlternativeNames:   []string{"polygon"},
		ChainID:            137,
		NativeTokenSymbol:  "POL",
		NativeTokenDecimal: 18,
		BlockTime:          2,
	})
	ArbitrumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
		Name:               "arbitrum",
		ChainID:            42161,
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		BlockTime:          1,
	})
	OptimismMainnet Network = NewGenericNetwork(GenericNetworkConfig{
		Name:               "optimism",
		ChainID:            10,
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		BlockTime:          2,
	})
	BaseMainnet Network = NewGenericNetwork(GenericNetworkConfig{
		Name:               "base",
		ChainID:            8453,
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: 18,
		BlockTime:          2,
	})
	Avalanche Network = NewGenericNetwork(GenericNetworkConfig{
		Name:               "avalanche",
		AlternativeNames:   []string{"avax"},
		ChainID:            43114,
		NativeTokenSymbol:  "AVAX",
		NativeTokenDecimal: 18,
		BlockTime:          2,
	})
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	BSCMainnet,
	Matic,
	ArbitrumMainnet,
	OptimismMainnet,
	BaseMainnet,
	Avalanche,
}

var globalSupportedNetworks = newSupportedNetworks(supportedNetworks, customNetworksDir())
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks     map[string]Network
	networksByID map[uint64]Network
	// primary names in registration order
	names []string
}

func (n *networks) getSupportedNetworkNames() []string {
	return append([]string{}, n.names...)
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) add(network Network) error {
	names := append([]string{network.GetName()}, network.GetAlternativeNames()...)
	for _, name := range names {
		if _, found := n.networks[name]; found {
			return fmt.Errorf("network with name or alternative name of '%s' already exists", name)
		}
	}
	for _, name := range names {
		n.networks[name] = network
	}
	n.networksByID[network.GetChainID()] = network
	n.names = append(n.names, network.GetName())
	return nil
}

func newSupportedNetworks(builtin []Network, customDir string) *networks {
	result := networks{
		networks:     map[string]Network{},
		networksByID: map[uint64]Network{},
	}
	for _, n := range builtin {
		if err := result.add(n); err != nil {
			panic(err)
		}
	}

	if customDir == "" {
		return &result
	}
	customNetworks, err := loadCustomNetworks(customDir)
	if err != nil {
		fmt.Printf("WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
		return &result
	}
	for _, n := range customNetworks {
		if err := result.add(n); err != nil {
			fmt.Printf("Skipping custom network '%s': %s\n", n.GetName(), err)
		}
	}
	return &result
}

func customNetworksDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jarvis", "networks")
}

func loadCustomNetworks(dir string) ([]Network, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	networks := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse network from file %s: %s. Ignore and continue with other custom networks.\n", file, err)
			continue
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if networkConfig.Name == "" || networkConfig.NativeTokenSymbol == "" {
		return nil, fmt.Errorf("network config requires name and native_token_symbol")
	}
	return NewGenericNetwork(networkConfig), nil
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}
