// Package container reads and writes the serialized multi-page container
// format (PDF) that backs every document. It is the only package that talks
// to pdfcpu directly.
package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pagedeck/pagedeck/models"
)

// Codec splits a container into single-page units and assembles page units
// back into one container. It is stateless and safe for concurrent use.
type Codec struct{}

// NewCodec returns the PDF container codec.
func NewCodec() *Codec {
	return &Codec{}
}

// IsContainer reports whether data starts like a PDF container. It is a
// cheap magic-byte check, not a validation.
func IsContainer(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// Split parses a container and extracts every page as a standalone
// single-page container, paired with its media box dimensions in points.
func (c *Codec) Split(data models.DocumentData) ([]models.Page, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	reader := bytes.NewReader(data)
	pdfContext, err := api.ReadValidateAndOptimize(reader, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read container: %w", err)
	}

	pageCount := pdfContext.PageCount
	if pageCount == 0 {
		return nil, nil
	}

	dims, err := api.PageDims(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}
	if len(dims) != pageCount {
		return nil, fmt.Errorf("page dimension count %d does not match page count %d", len(dims), pageCount)
	}

	pages := make([]models.Page, 0, pageCount)
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pageReader, err := api.ExtractPage(pdfContext, pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d: %w", pageNum, err)
		}
		pageData, err := io.ReadAll(pageReader)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageNum, err)
		}
		pages = append(pages, models.Page{
			Data:   models.PageData(pageData),
			Width:  dims[pageNum-1].Width,
			Height: dims[pageNum-1].Height,
		})
	}
	return pages, nil
}

// Assemble merges single-page containers into one container holding the
// pages in the given order. Zero pages yield empty data.
func (c *Codec) Assemble(pages []models.Page) (models.DocumentData, error) {
	if len(pages) == 0 {
		return nil, nil
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	readers := make([]io.ReadSeeker, 0, len(pages))
	for i, page := range pages {
		if len(page.Data) == 0 {
			return nil, fmt.Errorf("page %d has no content", i)
		}
		readers = append(readers, bytes.NewReader(page.Data))
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, conf); err != nil {
		return nil, fmt.Errorf("failed to assemble container: %w", err)
	}
	return models.DocumentData(buf.Bytes()), nil
}

// PageCount reports the number of pages in a container without extracting
// them.
func (c *Codec) PageCount(data models.DocumentData) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return count, nil
}
