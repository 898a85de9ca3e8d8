package page

import "testing"

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestBuild_FirstPage(t *testing.T) {
	pg := Build(seq(12), 1, 10)

	if len(pg.Items) != 10 {
		t.Fatalf("len(Items) = %d, want 10", len(pg.Items))
	}
	if pg.Items[0] != 1 || pg.Items[9] != 10 {
		t.Errorf("Items = %v, want 1..10", pg.Items)
	}
	if pg.TotalDocs != 12 {
		t.Errorf("TotalDocs = %d, want 12", pg.TotalDocs)
	}
	if pg.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", pg.TotalPages)
	}
	if pg.PagingCounter != 1 {
		t.Errorf("PagingCounter = %d, want 1", pg.PagingCounter)
	}
	if pg.HasPrevPage {
		t.Error("HasPrevPage = true, want false")
	}
	if !pg.HasNextPage {
		t.Error("HasNextPage = false, want true")
	}
	if pg.PrevPage != nil {
		t.Errorf("PrevPage = %v, want nil", *pg.PrevPage)
	}
	if pg.NextPage == nil || *pg.NextPage != 2 {
		t.Errorf("NextPage = %v, want 2", pg.NextPage)
	}
}

func TestBuild_LastPartialPage(t *testing.T) {
	pg := Build(seq(12), 2, 10)

	if len(pg.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(pg.Items))
	}
	if pg.Items[0] != 11 || pg.Items[1] != 12 {
		t.Errorf("Items = %v, want [11 12]", pg.Items)
	}
	if pg.PagingCounter != 11 {
		t.Errorf("PagingCounter = %d, want 11", pg.PagingCounter)
	}
	if !pg.HasPrevPage {
		t.Error("HasPrevPage = false, want true")
	}
	if pg.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
	if pg.PrevPage == nil || *pg.PrevPage != 1 {
		t.Errorf("PrevPage = %v, want 1", pg.PrevPage)
	}
	if pg.NextPage != nil {
		t.Errorf("NextPage = %v, want nil", *pg.NextPage)
	}
}

func TestBuild_PageBeyondEnd(t *testing.T) {
	pg := Build(seq(12), 5, 10)

	if len(pg.Items) != 0 {
		t.Fatalf("len(Items) = %d, want 0", len(pg.Items))
	}
	if pg.TotalDocs != 12 {
		t.Errorf("TotalDocs = %d, want 12", pg.TotalDocs)
	}
	if pg.Page != 5 {
		t.Errorf("Page = %d, want 5", pg.Page)
	}
	if pg.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
	if !pg.HasPrevPage {
		t.Error("HasPrevPage = false, want true")
	}
	if pg.PrevPage == nil || *pg.PrevPage != 4 {
		t.Errorf("PrevPage = %v, want 4", pg.PrevPage)
	}
}

func TestBuild_Empty(t *testing.T) {
	pg := Build([]int(nil), 1, 10)

	if len(pg.Items) != 0 {
		t.Fatalf("len(Items) = %d, want 0", len(pg.Items))
	}
	if pg.TotalDocs != 0 {
		t.Errorf("TotalDocs = %d, want 0", pg.TotalDocs)
	}
	if pg.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", pg.TotalPages)
	}
	if pg.PagingCounter != 0 {
		t.Errorf("PagingCounter = %d, want 0", pg.PagingCounter)
	}
	if pg.HasPrevPage || pg.HasNextPage {
		t.Error("expected no prev/next on empty result")
	}
	if pg.PrevPage != nil || pg.NextPage != nil {
		t.Error("expected nil prev/next pointers on empty result")
	}
}

func TestBuild_ExactMultiple(t *testing.T) {
	pg := Build(seq(20), 2, 10)

	if pg.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", pg.TotalPages)
	}
	if len(pg.Items) != 10 {
		t.Errorf("len(Items) = %d, want 10", len(pg.Items))
	}
	if pg.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
}

func TestBuild_SinglePage(t *testing.T) {
	pg := Build(seq(3), 1, 10)

	if pg.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", pg.TotalPages)
	}
	if pg.HasPrevPage || pg.HasNextPage {
		t.Error("expected single page with no neighbours")
	}
}
