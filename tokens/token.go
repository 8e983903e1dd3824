// Package tokens holds the token model shared by the search, projection and
// transfer packages, together with the stores that own the token list.
package tokens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator"

	"github.com/tranvictor/jarvis-tokens/networks"
)

// NativeTokenAddress is the pseudo contract address used for a chain's native
// currency (ETH on mainnet, BNB on bsc...).
const NativeTokenAddress = "0x0000000000000000000000000000000000000000"

var (
	ErrNotFound       = errors.New("token not found")
	ErrInvalidAddress = errors.New("invalid token address")
	ErrDuplicated     = errors.New("token already exists")
)

// Token is a tracked token. Address is always lowercase hex, use NewToken or
// NormalizeAddress to build one from user input.
type Token struct {
	Address  string `json:"address" validate:"required"`
	Symbol   string `json:"symbol" validate:"required"`
	Name     string `json:"name" validate:""`
	Decimals uint64 `json:"decimals" validate:"max=77"`
	Disabled bool   `json:"disabled" validate:""`
}

// Validate checks the fields a token can't do without. Decimals above 77
// can't be represented by a uint256 amount.
func (t Token) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

func NewToken(address, symbol, name string, decimals uint64) (Token, error) {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return Token{}, err
	}
	t := Token{
		Address:  addr,
		Symbol:   symbol,
		Name:     name,
		Decimals: decimals,
	}
	if err = t.Validate(); err != nil {
		return Token{}, fmt.Errorf("invalid token %s: %w", addr, err)
	}
	return t, nil
}

// NativeToken returns the pseudo token standing for the native currency of
// network. It is never persisted in a Store.
func NativeToken(network networks.Network) Token {
	return Token{
		Address:  NativeTokenAddress,
		Symbol:   network.GetNativeTokenSymbol(),
		Name:     network.GetNativeTokenSymbol(),
		Decimals: network.GetNativeTokenDecimal(),
	}
}

// NormalizeAddress validates a hex address and returns it lowercased.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: '%s'", ErrInvalidAddress, address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

func (t Token) IsNative() bool {
	return t.Address == NativeTokenAddress
}

// HexAddress returns the checksummed address.
func (t Token) HexAddress() common.Address {
	return common.HexToAddress(t.Address)
}

func (t Token) Enabled() bool {
	return !t.Disabled
}

func (t Token) String() string {
	if t.Name == "" || t.Name == t.Symbol {
		return fmt.Sprintf("%s (%s)", t.Symbol, t.Address)
	}
	return fmt.Sprintf("%s - %s (%s)", t.Symbol, t.Name, t.Address)
}

// Action is a mutation applied to a token held by a store. Tokens are values,
// an action returns the updated copy.
type Action interface {
	Apply(t Token) Token
	String() string
}

type disableAction struct {
	disabled bool
}

// Disable returns an action setting the disabled flag of a token. The edit
// screen sends Disable(!state) when a token switch is toggled.
func Disable(disabled bool) Action {
	return disableAction{disabled: disabled}
}

func (a disableAction) Apply(t Token) Token {
	t.Disabled = a.disabled
	return t
}

func (a disableAction) String() string {
	if a.disabled {
		return "disable"
	}
	return "enable"
}
