package tokens

// DEFAULT_TOKENS seeds a fresh token file. Addresses are mainnet ERC20
// contracts.
var DEFAULT_TOKENS = []Token{
	{Address: "0x6b175474e89094c44da98b954eedeac495271d0f", Symbol: "DAI", Name: "Dai Stablecoin", Decimals: 18},
	{Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	{Address: "0xdac17f958d2ee523a2206206994597c13d831ec7", Symbol: "USDT", Name: "Tether USD", Decimals: 6},
	{Address: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", Symbol: "WETH", Name: "Wrapped Ether", Decimals: 18},
	{Address: "0xdefa4e8a7bcba345f687a2f1456f5edd9ce97202", Symbol: "KNC", Name: "Kyber Network Crystal v2", Decimals: 18},
	{Address: "0x514910771af9ca656af840dff83e8264ecf986ca", Symbol: "LINK", Name: "ChainLink Token", Decimals: 18},
}

func DefaultTokens() []Token {
	return append([]Token{}, DEFAULT_TOKENS...)
}
