package networks

import (
	"strconv"
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

var NetworkString string

// CurrentNetwork returns the network selected by NetworkString, a name, an
// alternative name or a chain id. It falls back to mainnet when nothing
// matches.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()
	if cachedNetwork == nil {
		cachedNetwork = resolve(NetworkString)
	}
	return cachedNetwork
}

func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()
	NetworkString = networkStr
	cachedNetwork = resolve(networkStr)
}

func resolve(name string) Network {
	if n, err := GetNetwork(name); err == nil {
		return n
	}
	if id, err := strconv.ParseUint(name, 10, 64); err == nil {
		if n, err := GetNetworkByID(id); err == nil {
			return n
		}
	}
	return EthereumMainnet
}
