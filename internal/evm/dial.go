package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// Dial opens an instrumented client for every network in the table, using its first endpoint.
// The returned func closes all clients.
func Dial(
	ctx context.Context,
	networks model.Networks,
	metricsFor func(model.NetworkID) RPCMetrics,
	rps int,
) (map[model.NetworkID]TransactionClient, func(), error) {
	opened := make([]*rpc.Client, 0, len(networks))
	closeAll := func() {
		for _, c := range opened {
			c.Close()
		}
	}

	clients := make(map[model.NetworkID]TransactionClient, len(networks))
	for id, network := range networks {
		c, err := rpc.DialContext(ctx, network.Endpoint())
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("dial %s node %s: %w", id, network.Endpoint(), err)
		}
		opened = append(opened, c)
		clients[id] = NewRPCClient(c, metricsFor(id), rps)
	}
	return clients, closeAll, nil
}
