package relevance

import (
	"testing"
)

// testDoc is a minimal Candidate for scoring tests.
type testDoc struct {
	id      string
	text    string
	created int64
}

func (d testDoc) ID() string                    { return d.id }
func (d testDoc) OwnerID() string               { return "owner" }
func (d testDoc) SearchText() string            { return d.text }
func (d testDoc) CreatedAt() int64              { return d.created }
func (d testDoc) SortValue(string) (float64, bool) { return 0, false }

func TestScore_NoTermsPassesAll(t *testing.T) {
	docs := []testDoc{{id: "a"}, {id: "b"}, {id: "c"}}

	scored := Score(docs, nil)
	if len(scored) != 3 {
		t.Fatalf("len = %d, want 3", len(scored))
	}
	for _, s := range scored {
		if s.Matches != 0 {
			t.Errorf("doc %s: Matches = %d, want 0", s.Doc.ID(), s.Matches)
		}
	}
}

func TestScore_CountsDistinctTerms(t *testing.T) {
	docs := []testDoc{
		{id: "both", text: "quick fox jumps"},
		{id: "one", text: "a lazy fox"},
		{id: "none", text: "sleeping cat"},
	}

	scored := Score(docs, []string{"quick", "fox"})
	if len(scored) != 2 {
		t.Fatalf("len = %d, want 2 (zero-score excluded)", len(scored))
	}
	if scored[0].Doc.ID() != "both" || scored[0].Matches != 2 {
		t.Errorf("scored[0] = %s/%d, want both/2", scored[0].Doc.ID(), scored[0].Matches)
	}
	if scored[1].Doc.ID() != "one" || scored[1].Matches != 1 {
		t.Errorf("scored[1] = %s/%d, want one/1", scored[1].Doc.ID(), scored[1].Matches)
	}
}

func TestScore_DuplicateTermsCountOnce(t *testing.T) {
	docs := []testDoc{{id: "a", text: "fox den"}}

	scored := Score(docs, []string{"fox", "fox", "fox"})
	if len(scored) != 1 {
		t.Fatalf("len = %d, want 1", len(scored))
	}
	if scored[0].Matches != 1 {
		t.Errorf("Matches = %d, want 1", scored[0].Matches)
	}
}

func TestScore_CaseInsensitiveSubstring(t *testing.T) {
	docs := []testDoc{{id: "a", text: "The Quick Brown FOX"}}

	scored := Score(docs, []string{"fox", "quick"})
	if len(scored) != 1 || scored[0].Matches != 2 {
		t.Fatalf("got %+v, want one doc with 2 matches", scored)
	}
}

func TestScore_SubstringNotWholeWord(t *testing.T) {
	// "fox" matches inside "foxes": matching is substring, not token equality.
	docs := []testDoc{{id: "a", text: "foxes everywhere"}}

	scored := Score(docs, []string{"fox"})
	if len(scored) != 1 || scored[0].Matches != 1 {
		t.Fatalf("got %+v, want substring match", scored)
	}
}

func TestScore_AllExcluded(t *testing.T) {
	docs := []testDoc{{id: "a", text: "cats"}, {id: "b", text: "dogs"}}

	scored := Score(docs, []string{"fox"})
	if len(scored) != 0 {
		t.Errorf("len = %d, want 0", len(scored))
	}
}
