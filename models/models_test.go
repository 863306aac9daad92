package models_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pagedeck/pagedeck/models"
)

func TestSelection(t *testing.T) {
	sel := models.NewSelection(3, 1, 1, 7)
	if sel.Len() != 3 {
		t.Errorf("Len = %d, want 3 (duplicates collapse)", sel.Len())
	}
	if diff := cmp.Diff([]int{1, 3, 7}, sel.Sorted()); diff != "" {
		t.Errorf("Sorted (-want +got):\n%s", diff)
	}
	if !sel.Contains(3) || sel.Contains(2) {
		t.Error("Contains gave wrong membership")
	}
}

func TestPageClone(t *testing.T) {
	page := &models.Page{Data: models.PageData("content"), Width: 612, Height: 792}
	clone := page.Clone()
	if clone == page {
		t.Fatal("Clone returned the same instance")
	}
	clone.Data[0] = '?'
	if string(page.Data) != "content" {
		t.Error("mutating the clone changed the original")
	}
	if clone.Width != 612 || clone.Height != 792 {
		t.Errorf("clone bounds = %gx%g, want 612x792", clone.Width, clone.Height)
	}
}

func TestTransferOperationString(t *testing.T) {
	if models.OperationCopy.String() != "copy" || models.OperationCut.String() != "cut" {
		t.Error("unexpected operation names")
	}
}

func TestTransferPayload_Immutable(t *testing.T) {
	pages := []*models.Page{{Data: models.PageData("A")}, {Data: models.PageData("B")}}
	snapshot := models.DocumentData("snapshot")
	payload := models.NewTransferPayload(models.OperationCut, "doc-1", pages, snapshot)

	// Mutating the construction inputs must not reach the payload.
	pages[0].Data[0] = '?'
	snapshot[0] = '?'

	got := payload.Pages()
	if string(got[0].Data) != "A" {
		t.Errorf("payload page = %q, want %q", got[0].Data, "A")
	}
	if string(payload.SourceSnapshot()) != "snapshot" {
		t.Errorf("snapshot = %q, want %q", payload.SourceSnapshot(), "snapshot")
	}

	// Mutating accessor results must not reach the payload either.
	got[1].Data[0] = '?'
	returned := payload.SourceSnapshot()
	returned[0] = '!'

	if string(payload.Pages()[1].Data) != "B" {
		t.Error("mutating Pages() result changed the payload")
	}
	if string(payload.SourceSnapshot()) != "snapshot" {
		t.Error("mutating SourceSnapshot() result changed the payload")
	}

	if payload.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", payload.PageCount())
	}
	if payload.Operation() != models.OperationCut {
		t.Errorf("Operation = %v, want cut", payload.Operation())
	}
	if payload.SourceID() != "doc-1" {
		t.Errorf("SourceID = %q, want doc-1", payload.SourceID())
	}
}

func TestTransferPayload_CopyHasNoSnapshot(t *testing.T) {
	payload := models.NewTransferPayload(models.OperationCopy, "doc-1",
		[]*models.Page{{Data: models.PageData("A")}}, nil)
	if payload.SourceSnapshot() != nil {
		t.Error("copy payload returned a snapshot")
	}
}
