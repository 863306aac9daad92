// Package document holds the in-memory page sequence of one scanned
// document and its mapping to the serialized container format.
package document

import (
	"fmt"
	"sync/atomic"

	"github.com/pagedeck/pagedeck/internal/container"
	"github.com/pagedeck/pagedeck/models"
)

// Codec converts between the serialized container format and individual
// pages. The default codec handles PDF; tests inject deterministic fakes.
//
// Serialize-twice byte-identity of a document holds exactly when Assemble is
// deterministic for an unchanged page sequence.
type Codec interface {
	Split(data models.DocumentData) ([]models.Page, error)
	Assemble(pages []models.Page) (models.DocumentData, error)
}

// ProvisionalFunc reports whether the page at index belongs to an unsaved
// draft. Draft pages are excluded from cut/copy eligibility and from
// reordering; the surrounding application supplies the policy.
type ProvisionalFunc func(index int) bool

// ProvisionalRange returns a predicate marking the contiguous index range
// [start, start+length) as provisional.
func ProvisionalRange(start, length int) ProvisionalFunc {
	return func(index int) bool {
		return index >= start && index < start+length
	}
}

var docSeq atomic.Uint64

func nextID() models.DocumentID {
	return models.DocumentID(fmt.Sprintf("doc-%d", docSeq.Add(1)))
}

// Document is an ordered sequence of pages backed by a container codec.
// Page order is document order and indices are always [0, PageCount()).
//
// A document is not safe for concurrent mutation; the caller serializes all
// mutating calls (the application opens at most one page-management session
// per document). Every mutating method is atomic: it either applies fully or
// leaves the page sequence unchanged.
type Document struct {
	id          models.DocumentID
	codec       Codec
	pages       []*models.Page
	provisional ProvisionalFunc
}

// DetectContainer reports whether data looks like a supported container.
// It lets callers distinguish "not a container at all" from a corrupt one
// before attempting a full Load.
func DetectContainer(data models.DocumentData) bool {
	return container.IsContainer(data)
}

// Load parses container bytes into a document using the default PDF codec.
// Empty input yields a valid empty document. Malformed input yields a valid
// empty document together with a *ParseError, so callers can keep a usable
// handle while surfacing "could not open".
func Load(data models.DocumentData) (*Document, error) {
	return LoadWith(container.NewCodec(), data)
}

// LoadWith is Load with an explicit codec.
func LoadWith(codec Codec, data models.DocumentData) (*Document, error) {
	doc := &Document{
		id:    nextID(),
		codec: codec,
	}
	if len(data) == 0 {
		return doc, nil
	}
	pages, err := codec.Split(data)
	if err != nil {
		return doc, &ParseError{Err: err}
	}
	doc.pages = make([]*models.Page, 0, len(pages))
	for i := range pages {
		page := pages[i]
		doc.pages = append(doc.pages, &page)
	}
	return doc, nil
}

// ID returns the document's process-unique identity.
func (d *Document) ID() models.DocumentID {
	return d.id
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns the page at index.
func (d *Document) Page(index int) (*models.Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page %d of %d: %w", index, len(d.pages), ErrIndexOutOfRange)
	}
	return d.pages[index], nil
}

// SetProvisional installs the draft-page predicate. A nil predicate marks
// nothing provisional.
func (d *Document) SetProvisional(fn ProvisionalFunc) {
	d.provisional = fn
}

// IsProvisional reports whether the page at index belongs to an unsaved
// draft.
func (d *Document) IsProvisional(index int) bool {
	return d.provisional != nil && d.provisional(index)
}

// RemovePages removes the pages at the selected indices. Indices refer to
// positions before the call. Out-of-range (including negative) indices are
// ignored; an empty selection is a no-op. The page sequence is rebuilt in a
// single step.
func (d *Document) RemovePages(sel models.Selection) {
	if sel.Len() == 0 {
		return
	}
	kept := make([]*models.Page, 0, len(d.pages))
	for i, page := range d.pages {
		if sel.Contains(i) {
			continue
		}
		kept = append(kept, page)
	}
	d.pages = kept
}

// InsertPages inserts pages before the page currently at index; index may
// equal PageCount() to append. The inserted pages become owned by this
// document.
func (d *Document) InsertPages(pages []*models.Page, index int) error {
	if index < 0 || index > len(d.pages) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(d.pages), ErrIndexOutOfRange)
	}
	if len(pages) == 0 {
		return nil
	}
	updated := make([]*models.Page, 0, len(d.pages)+len(pages))
	updated = append(updated, d.pages[:index]...)
	updated = append(updated, pages...)
	updated = append(updated, d.pages[index:]...)
	d.pages = updated
	return nil
}

// Reorder moves the page at source so that it ends up at destination,
// preserving page identity: the moved entry is the same *Page, not a copy.
// Both indices must be in [0, PageCount()). Moves touching provisional pages
// are rejected with ErrProvisionalConflict; source == destination is a no-op.
func (d *Document) Reorder(source, destination int) error {
	count := len(d.pages)
	if source < 0 || source >= count {
		return fmt.Errorf("reorder source %d of %d: %w", source, count, ErrIndexOutOfRange)
	}
	if destination < 0 || destination >= count {
		return fmt.Errorf("reorder destination %d of %d: %w", destination, count, ErrIndexOutOfRange)
	}
	if source == destination {
		return nil
	}
	if d.IsProvisional(source) || d.IsProvisional(destination) {
		return fmt.Errorf("reorder %d -> %d: %w", source, destination, ErrProvisionalConflict)
	}

	page := d.pages[source]
	remaining := make([]*models.Page, 0, count)
	remaining = append(remaining, d.pages[:source]...)
	remaining = append(remaining, d.pages[source+1:]...)

	updated := make([]*models.Page, 0, count)
	updated = append(updated, remaining[:destination]...)
	updated = append(updated, page)
	updated = append(updated, remaining[destination:]...)
	d.pages = updated
	return nil
}

// Serialize rebuilds the container reflecting the current page order. An
// empty document serializes to empty data.
func (d *Document) Serialize() (models.DocumentData, error) {
	if len(d.pages) == 0 {
		return nil, nil
	}
	pages := make([]models.Page, len(d.pages))
	for i, page := range d.pages {
		pages[i] = *page
	}
	data, err := d.codec.Assemble(pages)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document %s: %w", d.id, err)
	}
	return data, nil
}
