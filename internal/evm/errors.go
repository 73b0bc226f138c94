package evm

import (
	"fmt"

	"github.com/goodnatureofminers/txinvoice-backend/internal/model"
)

// TransportError reports a failed node request: endpoint unreachable, bad status or an RPC error.
type TransportError struct {
	Network model.NetworkID
	Hash    string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch transaction %s on %s: %v", e.Hash, e.Network, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
