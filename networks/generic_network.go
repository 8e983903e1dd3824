package networks

import (
	"encoding/json"
	"time"
)

type GenericNetworkConfig struct {
	Name               string   `json:"name"`
	AlternativeNames   []string `json:"alternative_names"`
	ChainID            uint64   `json:"chain_id"`
	NativeTokenSymbol  string   `json:"native_token_symbol"`
	NativeTokenDecimal uint64   `json:"native_token_decimal"`
	BlockTime          uint64   `json:"block_time"`
}

// GenericNetwork is a Network defined purely by its config. Custom networks
// in ~/.jarvis/networks/ are loaded as GenericNetwork.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() uint64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(gn.config)
}
