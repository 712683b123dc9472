package core

import "github.com/google/uuid"

// ChangeFunc is invoked once per persisted mutation, with no payload;
// consumers re-read through GetTransactions.
type ChangeFunc func()

// StatusFunc is invoked once per SetTransactionStatus call, for every
// account; consumers filter by account themselves.
type StatusFunc func(status Status, txHash string)

// OnChange registers a change subscriber and returns its unsubscribe func.
func (t *Tracker) OnChange(fn ChangeFunc) func() {
	id := uuid.NewString()

	t.subMu.Lock()
	t.changeSubs[id] = fn
	t.subMu.Unlock()

	return func() {
		t.subMu.Lock()
		delete(t.changeSubs, id)
		t.subMu.Unlock()
	}
}

// OnTransactionStatus registers a status subscriber and returns its
// unsubscribe func.
func (t *Tracker) OnTransactionStatus(fn StatusFunc) func() {
	id := uuid.NewString()

	t.subMu.Lock()
	t.statusSubs[id] = fn
	t.subMu.Unlock()

	return func() {
		t.subMu.Lock()
		delete(t.statusSubs, id)
		t.subMu.Unlock()
	}
}

func (t *Tracker) notifyChange() {
	t.subMu.Lock()
	subs := make([]ChangeFunc, 0, len(t.changeSubs))
	for _, fn := range t.changeSubs {
		subs = append(subs, fn)
	}
	t.subMu.Unlock()

	// callbacks run outside the lock so subscribers may re-read the tracker
	for _, fn := range subs {
		fn()
	}
}

func (t *Tracker) notifyStatus(status Status, txHash string) {
	t.subMu.Lock()
	subs := make([]StatusFunc, 0, len(t.statusSubs))
	for _, fn := range t.statusSubs {
		subs = append(subs, fn)
	}
	t.subMu.Unlock()

	for _, fn := range subs {
		fn(status, txHash)
	}
}
