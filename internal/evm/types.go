package evm

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the JSON-RPC transport to a node, satisfied by *rpc.Client.
	NodeClient interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// TransactionClient fetches raw transactions from one network.
	TransactionClient interface {
		TransactionByHash(ctx context.Context, hash string) (*RPCTransaction, error)
	}
)

// RPCTransaction is the part of an eth_getTransactionByHash result used for invoices.
type RPCTransaction struct {
	Hash  string         `json:"hash"`
	From  common.Address `json:"from"`
	Value *hexutil.Big   `json:"value"`
}
