package ethereum

import (
	"context"
	"errors"
	"fmt"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const defaultPollInterval = time.Second

type NodeService struct {
	client EthClient
}

func NewNodeService(ethClient EthClient) *NodeService {
	return &NodeService{
		client: ethClient,
	}
}

// WaitForReceipt polls the node until the transaction is mined and returns
// its receipt. A receipt that is not found yet means the transaction is still
// in flight and the poll continues; any other node error is returned to the
// caller.
func (s *NodeService) WaitForReceipt(ctx context.Context, txHash string, pollInterval time.Duration) (*Receipt, error) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return toReceipt(receipt), nil
		}
		if err != nil && !errors.Is(err, goethereum.NotFound) {
			return nil, fmt.Errorf("transaction receipt %q: %w", txHash, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func toReceipt(receipt *types.Receipt) *Receipt {
	return &Receipt{
		TransactionHash: receipt.TxHash.Hex(),
		BlockHash:       receipt.BlockHash.Hex(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
		Status:          receipt.Status,
	}
}
