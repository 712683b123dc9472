package ethereum

import "github.com/ethereum/go-ethereum/core/types"

// Receipt is the confirmation result the node returns for a mined
// transaction, reduced to what the tracker inspects.
type Receipt struct {
	TransactionHash string
	BlockHash       string
	BlockNumber     uint64
	GasUsed         uint64
	Status          uint64
}

// Succeeded reports whether the transaction executed successfully on-chain.
func (r *Receipt) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}
