package model

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// NetworkID is the key of a network in the network table.
type NetworkID string

// Sepolia is the only network registered by default.
const Sepolia NetworkID = "sepolia"

// ErrUnknownNetwork is returned when a network id is not in the table.
var ErrUnknownNetwork = errors.New("unknown network")

// Network describes a chain the invoices can refer to.
type Network struct {
	ID        NetworkID `yaml:"-" json:"id"`
	ChainID   string    `yaml:"chain_id" json:"chainId"`
	ChainName string    `yaml:"chain_name" json:"chainName"`
	RPCURLs   []string  `yaml:"rpc_urls" json:"-"`
	Currency  string    `yaml:"currency" json:"currency"`
	Decimals  int32     `yaml:"decimals" json:"decimals"`
}

// Endpoint returns the RPC url used for reads.
func (n Network) Endpoint() string {
	if len(n.RPCURLs) == 0 {
		return ""
	}
	return n.RPCURLs[0]
}

// Networks is the static network table keyed by id.
type Networks map[NetworkID]Network

// DefaultNetworks returns the built-in table.
func DefaultNetworks() Networks {
	return Networks{
		Sepolia: {
			ID:        Sepolia,
			ChainID:   "0xaa36a7",
			ChainName: "Sepolia",
			RPCURLs:   []string{"https://rpc.sepolia.org"},
			Currency:  "ETH",
			Decimals:  18,
		},
	}
}

// Lookup returns the network registered under id.
func (n Networks) Lookup(id NetworkID) (Network, error) {
	network, ok := n[id]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, id)
	}
	return network, nil
}

// Sorted returns the networks ordered by id.
func (n Networks) Sorted() []Network {
	out := make([]Network, 0, len(n))
	for _, network := range n {
		out = append(out, network)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadNetworks reads a network table from a YAML file of the form
//
//	sepolia:
//	  chain_id: "0xaa36a7"
//	  chain_name: Sepolia
//	  rpc_urls: ["https://rpc.sepolia.org"]
//	  currency: ETH
//	  decimals: 18
func LoadNetworks(path string) (Networks, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read networks file: %w", err)
	}
	return ParseNetworks(raw)
}

// ParseNetworks decodes and validates a YAML network table.
func ParseNetworks(raw []byte) (Networks, error) {
	var table map[NetworkID]Network
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode networks: %w", err)
	}
	if len(table) == 0 {
		return nil, errors.New("networks file defines no networks")
	}

	networks := make(Networks, len(table))
	for id, network := range table {
		if network.Endpoint() == "" {
			return nil, fmt.Errorf("network %q: no rpc urls", id)
		}
		if network.Decimals <= 0 {
			network.Decimals = 18
		}
		if network.Currency == "" {
			network.Currency = "ETH"
		}
		if network.ChainName == "" {
			network.ChainName = string(id)
		}
		network.ID = id
		networks[id] = network
	}
	return networks, nil
}
