// Package transfer orchestrates cut, copy, paste, and restore of document
// pages, mediating between UI selections, the page document, and the
// clipboard.
package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/pagedeck/pagedeck/clipboard"
	"github.com/pagedeck/pagedeck/document"
	"github.com/pagedeck/pagedeck/logger"
	"github.com/pagedeck/pagedeck/models"
)

// ErrEmptySelection reports a transfer attempt with nothing eligible
// selected. Recoverable; the UI surfaces it as a no-op or message.
var ErrEmptySelection = errors.New("no pages selected")

// Service validates selections, builds transfer payloads, and applies them.
// Operations run as asynchronous tasks in the host application, so every
// document-mutating method takes a context and checks cancellation before
// mutating; combined with the document's atomic mutations, an abandoned task
// never leaves a document half-applied.
type Service struct {
	clip *clipboard.Clipboard
	log  logger.Logger
}

// NewService creates a transfer service around the session clipboard.
func NewService(clip *clipboard.Clipboard, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Service{clip: clip, log: log}
}

// eligibleIndices filters a selection down to in-range, non-provisional
// indices in ascending order. An empty or entirely out-of-range selection
// fails with ErrEmptySelection; a selection whose every in-range index is
// provisional fails with ErrProvisionalConflict ("save the draft first").
func eligibleIndices(doc *document.Document, sel models.Selection) ([]int, error) {
	count := doc.PageCount()
	eligible := make([]int, 0, sel.Len())
	droppedProvisional := false
	for _, index := range sel.Sorted() {
		if index < 0 || index >= count {
			continue
		}
		if doc.IsProvisional(index) {
			droppedProvisional = true
			continue
		}
		eligible = append(eligible, index)
	}
	if len(eligible) == 0 {
		if droppedProvisional {
			return nil, fmt.Errorf("selected pages are part of an unsaved draft: %w", document.ErrProvisionalConflict)
		}
		return nil, ErrEmptySelection
	}
	return eligible, nil
}

// collectPages reads the pages at the given indices.
func collectPages(doc *document.Document, indices []int) ([]*models.Page, error) {
	pages := make([]*models.Page, 0, len(indices))
	for _, index := range indices {
		page, err := doc.Page(index)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Copy snapshots the selected pages into a copy payload and stores it in the
// clipboard. The document is not mutated.
func (s *Service) Copy(ctx context.Context, doc *document.Document, sel models.Selection) (*models.TransferPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	indices, err := eligibleIndices(doc, sel)
	if err != nil {
		return nil, err
	}
	pages, err := collectPages(doc, indices)
	if err != nil {
		return nil, err
	}
	payload := models.NewTransferPayload(models.OperationCopy, doc.ID(), pages, nil)
	s.clip.SetPayload(payload)
	s.log.Debug("copied %d pages from %s", payload.PageCount(), doc.ID())
	return payload, nil
}

// Cut snapshots the selected pages and the full pre-cut serialization of the
// document into a cut payload, removes the pages, and stores the payload in
// the clipboard. The caller persists the document's new serialized state.
func (s *Service) Cut(ctx context.Context, doc *document.Document, sel models.Selection) (*models.TransferPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	indices, err := eligibleIndices(doc, sel)
	if err != nil {
		return nil, err
	}
	pages, err := collectPages(doc, indices)
	if err != nil {
		return nil, err
	}

	// Captured before removal so Restore can return the document to a
	// byte-identical state.
	snapshot, err := doc.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot document before cut: %w", err)
	}
	payload := models.NewTransferPayload(models.OperationCut, doc.ID(), pages, snapshot)

	// Serialization above may be slow for large documents; re-check for
	// abandonment before the mutation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc.RemovePages(models.NewSelection(indices...))
	s.clip.SetPayload(payload)
	s.log.Debug("cut %d pages from %s, %d remain", payload.PageCount(), doc.ID(), doc.PageCount())
	return payload, nil
}

// Paste inserts copies of the payload's pages into doc before index; index
// may equal doc.PageCount() to append. It returns the number of pages
// inserted so the caller can select [index, index+n). After a successful
// paste of a cut payload that is still current, the clipboard is cleared.
func (s *Service) Paste(ctx context.Context, payload *models.TransferPayload, doc *document.Document, index int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	// Defensive copies: the payload may be pasted into several documents,
	// and no page instance may live in two documents at once.
	pages := payload.Pages()
	if err := doc.InsertPages(pages, index); err != nil {
		return 0, err
	}
	if payload.Operation() == models.OperationCut {
		s.clip.CompareAndClear(payload)
	}
	s.log.Debug("pasted %d pages into %s at %d", len(pages), doc.ID(), index)
	return len(pages), nil
}

// Restore reverts a cut for the given document: it atomically consumes the
// active cut payload and returns the pre-cut serialized document, which the
// caller reloads and persists. ok is false when no cut payload for this
// document is in the clipboard.
func (s *Service) Restore(id models.DocumentID) (data models.DocumentData, ok bool) {
	payload := s.clip.TakeActiveCut(id)
	if payload == nil {
		return nil, false
	}
	s.log.Debug("restored pre-cut state of %s", id)
	return payload.SourceSnapshot(), true
}
