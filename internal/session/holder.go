package session

import "sync"

// Holder publishes the current credential to the pollers and the queue
// processors. Login replaces the credential at runtime, so consumers must
// read it through Get at the moment of use rather than capturing it once.
type Holder struct {
	mu   sync.RWMutex
	cred Credential
}

func NewHolder(cred Credential) *Holder {
	return &Holder{cred: cred}
}

func (h *Holder) Get() Credential {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cred
}

func (h *Holder) Set(cred Credential) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cred = cred
}
