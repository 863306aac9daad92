// Package clipboard holds the process-wide page transfer buffer. One
// Clipboard is constructed per application session and passed explicitly to
// every component that needs transfer capability; there is no package-level
// instance.
package clipboard

import (
	"sync"

	"github.com/pagedeck/pagedeck/models"
)

// Clipboard holds at most one transfer payload. A new copy or cut overwrites
// the previous payload.
//
// All methods are safe for concurrent use. Read-modify-write sequences that
// must not interleave with a concurrent overwrite (paste-then-clear,
// restore) exist as single methods: CompareAndClear and TakeActiveCut.
type Clipboard struct {
	mu      sync.Mutex
	payload *models.TransferPayload
}

// New returns an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// SetPayload stores a payload, overwriting any existing one.
func (c *Clipboard) SetPayload(p *models.TransferPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = p
}

// Payload returns the current payload without consuming it, or nil.
func (c *Clipboard) Payload() *models.TransferPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload
}

// HasPayload reports whether a payload is present. UI layers use it to gate
// paste affordances.
func (c *Clipboard) HasPayload() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload != nil
}

// ActiveCutPayload returns the current payload only if it is a cut payload
// originating from the given document; otherwise nil. It gates the
// "Restore Cut" affordance to the document that produced the cut.
func (c *Clipboard) ActiveCutPayload(id models.DocumentID) *models.TransferPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeCutLocked(id)
}

// TakeActiveCut atomically removes and returns the active cut payload for
// the given document, or nil if there is none. A payload from a different
// document, or a copy payload, is left in place.
func (c *Clipboard) TakeActiveCut(id models.DocumentID) *models.TransferPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.activeCutLocked(id)
	if p != nil {
		c.payload = nil
	}
	return p
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = nil
}

// CompareAndClear clears the clipboard only if p is still the current
// payload, reporting whether it cleared. A payload stored by a newer copy or
// cut is never discarded by a paste of an older one.
func (c *Clipboard) CompareAndClear(p *models.TransferPayload) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil || c.payload != p {
		return false
	}
	c.payload = nil
	return true
}

func (c *Clipboard) activeCutLocked(id models.DocumentID) *models.TransferPayload {
	if c.payload == nil {
		return nil
	}
	if c.payload.Operation() != models.OperationCut {
		return nil
	}
	if c.payload.SourceID() != id {
		return nil
	}
	return c.payload
}
