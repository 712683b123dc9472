package core

import (
	"context"
)

// spawnPendingWatch kicks off confirmation watching in the background after a
// write. The goroutine is supervised: a panic inside it is logged instead of
// crashing the caller or vanishing.
func (t *Tracker) spawnPendingWatch(account string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				t.logs.Errorw("pending transaction watch panicked", "account", account, "panic", r)
			}
		}()
		t.WaitForPendingTransactions(context.Background(), account)
	}()
}

// WaitForPendingTransactions dispatches a confirmation watch for every
// pending transaction of the account. For a fixed hash at most one watch
// exists process-wide; callers hitting an in-flight hash join that watch
// instead of issuing another provider request. Provider failures degrade to
// an error status on the record, never to a returned error.
func (t *Tracker) WaitForPendingTransactions(ctx context.Context, account string) {
	t.mu.Lock()
	provider := t.provider
	t.mu.Unlock()

	if provider == nil {
		t.logs.Warnw("no provider bound, pending transactions are not being watched", "account", account)
		return
	}

	data, err := t.loadDataset(ctx)
	if err != nil {
		t.logs.Errorw("loading transactions for confirmation watch", "account", account, "error", err)
		return
	}

	for _, rec := range data[account] {
		if rec.Status != StatusPending {
			continue
		}

		t.watchMu.Lock()
		if _, inFlight := t.watches[rec.Hash]; inFlight {
			// join the watch already running for this hash
			t.watchMu.Unlock()
			continue
		}
		t.watches[rec.Hash] = struct{}{}
		t.watchMu.Unlock()

		go t.watchConfirmation(provider, account, rec.Hash)
	}
}

// watchConfirmation awaits finality for one hash and settles the record. Once
// dispatched there is no way to abort it; it runs to whatever completion the
// provider eventually yields.
func (t *Tracker) watchConfirmation(provider Provider, account, txHash string) {
	defer func() {
		if r := recover(); r != nil {
			t.logs.Errorw("confirmation watch panicked", "hash", txHash, "panic", r)
		}
		t.watchMu.Lock()
		delete(t.watches, txHash)
		t.watchMu.Unlock()
	}()

	receipt, err := provider.WaitForReceipt(context.Background(), txHash, t.pollInterval)
	if err != nil {
		t.logs.Warnw("waiting for transaction receipt", "hash", txHash, "error", err)
		t.settle(account, txHash, StatusError)
		return
	}

	if receipt == nil {
		t.logs.Warnw("transaction resolved without a receipt", "hash", txHash)
		return
	}

	status := StatusError
	if receipt.Succeeded() {
		status = StatusSuccess
	}
	t.settle(account, txHash, status)
}

func (t *Tracker) settle(account, txHash string, status Status) {
	if err := t.SetTransactionStatus(context.Background(), account, txHash, status); err != nil {
		t.logs.Errorw("recording transaction settlement",
			"account", account,
			"hash", txHash,
			"status", status,
			"error", err)
	}
}
