// Package transfer describes what a transfer moves: the chain's native
// currency or an ERC20 token.
package transfer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/jarvis-tokens/networks"
	"github.com/tranvictor/jarvis-tokens/tokens"
)

type Kind uint8

const (
	KindNative Kind = iota
	KindToken
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindToken:
		return "token"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Type is either a native currency transfer, optionally to a known
// destination, or a token transfer. The zero value is a native transfer
// without destination.
type Type struct {
	kind        Kind
	destination *common.Address
	token       tokens.Token
}

func Native(destination *common.Address) Type {
	return Type{kind: KindNative, destination: destination}
}

func Token(token tokens.Token) Type {
	return Type{kind: KindToken, token: token}
}

func (t Type) Kind() Kind {
	return t.kind
}

// Destination returns the destination of a native transfer, if any.
func (t Type) Destination() (common.Address, bool) {
	if t.kind != KindNative || t.destination == nil {
		return common.Address{}, false
	}
	return *t.destination, true
}

// TokenInfo returns the token of a token transfer.
func (t Type) TokenInfo() (tokens.Token, bool) {
	if t.kind != KindToken {
		return tokens.Token{}, false
	}
	return t.token, true
}

// Contract returns the contract address the transfer goes through. Native
// transfers resolve to tokens.NativeTokenAddress.
func (t Type) Contract() common.Address {
	if t.kind == KindToken {
		return t.token.HexAddress()
	}
	return common.HexToAddress(tokens.NativeTokenAddress)
}

// Symbol returns the symbol of the transferred asset on network.
func (t Type) Symbol(network networks.Network) string {
	if t.kind == KindToken {
		return t.token.Symbol
	}
	return network.GetNativeTokenSymbol()
}

// Decimals returns the decimals of the transferred asset on network.
func (t Type) Decimals(network networks.Network) uint64 {
	if t.kind == KindToken {
		return t.token.Decimals
	}
	return network.GetNativeTokenDecimal()
}

// FromToken builds the transfer type for a listed token, mapping the native
// pseudo token back to a native transfer.
func FromToken(token tokens.Token) Type {
	if token.IsNative() {
		return Native(nil)
	}
	return Token(token)
}
