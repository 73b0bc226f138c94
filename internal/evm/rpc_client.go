package evm

import (
	"context"
	"time"

	"go.uber.org/ratelimit"
)

// RPCClient wraps a node client with metrics instrumentation and a request rate limit.
type RPCClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewRPCClient constructs an instrumented RPC client. rps <= 0 disables rate limiting.
func NewRPCClient(client NodeClient, rpcMetrics RPCMetrics, rps int) *RPCClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// TransactionByHash returns the transaction or nil when the node does not know the hash.
func (r *RPCClient) TransactionByHash(ctx context.Context, hash string) (tx *RPCTransaction, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction_by_hash", err, started)
	}()
	r.limiter.Take()
	if err = r.client.CallContext(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
		return nil, err
	}
	return tx, nil
}
