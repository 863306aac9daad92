package models

import "sort"

// DocumentData is a serialized multi-page container (a PDF). The core treats
// it as an opaque blob; the surrounding application owns reading and writing
// it to storage.
type DocumentData []byte

// PageData is a serialized single-page container extracted from a document.
type PageData []byte

// Page is one page of a document: its serialized content plus its media box
// dimensions in points. Within a document a page is addressed by index and
// identified by pointer; moving a *Page between documents transfers
// ownership.
type Page struct {
	Data   PageData
	Width  float64
	Height float64
}

// Clone creates a deep copy of the page.
func (p *Page) Clone() *Page {
	clone := &Page{
		Width:  p.Width,
		Height: p.Height,
	}
	if p.Data != nil {
		clone.Data = make(PageData, len(p.Data))
		copy(clone.Data, p.Data)
	}
	return clone
}

// DocumentID identifies one loaded document instance. It is opaque to
// callers and unique within the process.
type DocumentID string

// TransferOperation distinguishes copy payloads from cut payloads.
type TransferOperation int

const (
	OperationCopy TransferOperation = iota
	OperationCut
)

// String returns the string representation of the operation.
func (op TransferOperation) String() string {
	switch op {
	case OperationCopy:
		return "copy"
	case OperationCut:
		return "cut"
	default:
		return "unknown"
	}
}

// Selection is a set of zero-based page indices chosen within one document.
// It is owned by the caller and passed into transfer operations by value.
type Selection map[int]struct{}

// NewSelection builds a selection from the given indices.
func NewSelection(indices ...int) Selection {
	sel := make(Selection, len(indices))
	for _, i := range indices {
		sel[i] = struct{}{}
	}
	return sel
}

// Contains reports whether index is part of the selection.
func (s Selection) Contains(index int) bool {
	_, ok := s[index]
	return ok
}

// Len returns the number of selected indices.
func (s Selection) Len() int {
	return len(s)
}

// Sorted returns the selected indices in ascending order.
func (s Selection) Sorted() []int {
	indices := make([]int, 0, len(s))
	for i := range s {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// TransferPayload is the immutable snapshot produced by a copy or cut
// operation. The constructor deep-copies its inputs and the accessors return
// copies, so a payload can be shared between the clipboard and concurrent
// paste attempts without further locking.
type TransferPayload struct {
	operation TransferOperation
	sourceID  DocumentID
	pages     []Page
	// Full serialized source document captured before a cut removed pages.
	// Nil for copy payloads.
	sourceSnapshot DocumentData
}

// NewTransferPayload builds a payload from page contents. snapshot must be
// the pre-cut serialization of the source document for cut operations and
// nil for copies.
func NewTransferPayload(op TransferOperation, sourceID DocumentID, pages []*Page, snapshot DocumentData) *TransferPayload {
	p := &TransferPayload{
		operation: op,
		sourceID:  sourceID,
		pages:     make([]Page, 0, len(pages)),
	}
	for _, page := range pages {
		p.pages = append(p.pages, *page.Clone())
	}
	if snapshot != nil {
		p.sourceSnapshot = make(DocumentData, len(snapshot))
		copy(p.sourceSnapshot, snapshot)
	}
	return p
}

// Operation returns whether the payload came from a copy or a cut.
func (p *TransferPayload) Operation() TransferOperation {
	return p.operation
}

// SourceID returns the identity of the document the payload was taken from.
func (p *TransferPayload) SourceID() DocumentID {
	return p.sourceID
}

// PageCount returns the number of pages in the payload.
func (p *TransferPayload) PageCount() int {
	return len(p.pages)
}

// Pages returns deep copies of the payload's pages in order.
func (p *TransferPayload) Pages() []*Page {
	pages := make([]*Page, len(p.pages))
	for i := range p.pages {
		pages[i] = p.pages[i].Clone()
	}
	return pages
}

// SourceSnapshot returns a copy of the pre-cut serialized source document,
// or nil for copy payloads.
func (p *TransferPayload) SourceSnapshot() DocumentData {
	if p.sourceSnapshot == nil {
		return nil
	}
	snapshot := make(DocumentData, len(p.sourceSnapshot))
	copy(snapshot, p.sourceSnapshot)
	return snapshot
}
