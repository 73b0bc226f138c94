// Package evm reads transactions from EVM-compatible nodes over JSON-RPC.
package evm

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// Reader resolves transaction records on the configured networks.
type Reader struct {
	networks model.Networks
	clients  map[model.NetworkID]TransactionClient
}

// NewReader creates a Reader over per-network clients.
func NewReader(networks model.Networks, clients map[model.NetworkID]TransactionClient) *Reader {
	return &Reader{
		networks: networks,
		clients:  clients,
	}
}

// FetchTransaction returns the sender and value of a transaction, or nil when the
// node has no such transaction. Node failures are returned as *TransportError.
func (r *Reader) FetchTransaction(ctx context.Context, networkID model.NetworkID, hash string) (*model.TransactionRecord, error) {
	network, err := r.networks.Lookup(networkID)
	if err != nil {
		return nil, err
	}
	client, ok := r.clients[networkID]
	if !ok {
		return nil, fmt.Errorf("%w: no client for %q", model.ErrUnknownNetwork, networkID)
	}

	tx, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, &TransportError{Network: networkID, Hash: hash, Err: err}
	}
	if tx == nil {
		return nil, nil
	}

	value := FormatUnits(nil, network.Decimals)
	if tx.Value != nil {
		value = FormatUnits(tx.Value.ToInt(), network.Decimals)
	}
	return &model.TransactionRecord{
		From:  tx.From.Hex(),
		Value: value,
	}, nil
}
