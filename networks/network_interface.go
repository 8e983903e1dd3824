package networks

import (
	"time"
)

// Network describes a chain as far as token listing and transfers are
// concerned: its identity and its native currency.
type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64
	GetBlockTime() time.Duration
}
