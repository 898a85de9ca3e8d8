package token

import (
	"reflect"
	"testing"
)

func defaultTokenizer() *Tokenizer {
	return NewTokenizer(NewSet(DefaultStopWords()))
}

func TestTokenize_DropsStopWords(t *testing.T) {
	got := defaultTokenizer().Tokenize("the quick fox")
	want := []string{"quick", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(%q) = %v, want %v", "the quick fox", got, want)
	}
}

func TestTokenize_Lowercases(t *testing.T) {
	got := defaultTokenizer().Tokenize("Quick BROWN Fox")
	want := []string{"quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_StopWordsCaseInsensitive(t *testing.T) {
	got := defaultTokenizer().Tokenize("The THE tHe fox")
	want := []string{"fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_BlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if got := defaultTokenizer().Tokenize(in); got != nil {
			t.Errorf("Tokenize(%q) = %v, want nil", in, got)
		}
	}
}

func TestTokenize_AllStopWords(t *testing.T) {
	got := defaultTokenizer().Tokenize("the and of")
	if len(got) != 0 {
		t.Errorf("Tokenize(%q) = %v, want empty", "the and of", got)
	}
}

func TestTokenize_KeepsDuplicates(t *testing.T) {
	// Dedup is the scorer's job, not the tokenizer's.
	got := defaultTokenizer().Tokenize("fox fox fox")
	want := []string{"fox", "fox", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_CustomStopWords(t *testing.T) {
	tok := NewTokenizer(NewSet([]string{"foo"}))
	got := tok.Tokenize("foo the bar")
	want := []string{"the", "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestNewSet_TrimsAndNormalizes(t *testing.T) {
	s := NewSet([]string{" The ", "", "AND"})
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if !s.Contains("the") || !s.Contains("and") {
		t.Error("expected normalized words to be present")
	}
}
