package diag

import (
	"testing"

	"ember/internal/source"
)

func TestBagAddAndCap(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(SemaDuplicateLangItem, source.Span{}, "first")) {
		t.Error("Add below cap must succeed")
	}
	if !bag.Add(NewError(SemaDuplicateLangItem, source.Span{}, "second")) {
		t.Error("Add at cap boundary must succeed")
	}
	if bag.Add(NewError(SemaDuplicateLangItem, source.Span{}, "third")) {
		t.Error("Add over cap must be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() {
		t.Error("fresh bag must have no errors")
	}

	bag.Add(New(SevWarning, SemaInfo, source.Span{}, "just a warning"))
	if bag.HasErrors() {
		t.Error("warnings alone must not count as errors")
	}

	bag.Add(NewError(SemaDuplicateLangItem, source.Span{}, "boom"))
	if !bag.HasErrors() {
		t.Error("error diagnostic must flip HasErrors")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SemaDuplicateLangItem, source.Span{File: 1, Start: 9, End: 10}, "later"))
	bag.Add(NewError(SemaDuplicateLangItem, source.Span{File: 0, Start: 5, End: 6}, "earlier"))
	bag.Add(New(SevWarning, SemaInfo, source.Span{File: 0, Start: 5, End: 6}, "same span warning"))

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "earlier" {
		t.Errorf("first after sort = %q, want %q (errors outrank warnings on equal spans)", items[0].Message, "earlier")
	}
	if items[1].Message != "same span warning" {
		t.Errorf("second after sort = %q, want the warning", items[1].Message)
	}
	if items[2].Message != "later" {
		t.Errorf("last after sort = %q, want %q", items[2].Message, "later")
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, SemaDuplicateLangItem, source.Span{}, "dup").
		WithNote(source.Span{}, "first defined here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("builder must emit exactly once, got %d diagnostics", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Errorf("note lost: %+v", bag.Items()[0])
	}
}
