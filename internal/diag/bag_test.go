package diag

import (
	"testing"

	"minic/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(Diagnostic{Code: LexUnknownChar, Severity: SevError}) {
		t.Error("first Add should succeed")
	}
	if !bag.Add(Diagnostic{Code: SemaUndeclaredVariable, Severity: SevError}) {
		t.Error("second Add should succeed")
	}
	if bag.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError}) {
		t.Error("Add beyond the limit should be rejected")
	}
	if bag.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() {
		t.Error("empty bag should have no errors")
	}

	bag.Add(Diagnostic{Code: SynBadLine, Severity: SevWarning})
	if bag.HasErrors() {
		t.Error("warning-only bag should have no errors")
	}
	if !bag.HasWarnings() {
		t.Error("warning diagnostic should be visible to HasWarnings")
	}

	bag.Add(Diagnostic{Code: SemaDuplicateDeclaration, Severity: SevError})
	if !bag.HasErrors() {
		t.Error("bag with an error diagnostic should report errors")
	}
}

func TestBagSortIsPositional(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Code: SemaUndeclaredVariable, Severity: SevError, Primary: source.Span{Start: 20, End: 21}})
	bag.Add(Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: source.Span{Start: 3, End: 4}})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != LexUnknownChar || items[1].Code != SemaUndeclaredVariable {
		t.Errorf("Expected positional order, got %v then %v", items[0].Code, items[1].Code)
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnknownChar.ID(); got != "MIN1001" {
		t.Errorf("LexUnknownChar.ID() = %q, want MIN1001", got)
	}
	if got := SemaDuplicateDeclaration.ID(); got != "MIN3001" {
		t.Errorf("SemaDuplicateDeclaration.ID() = %q, want MIN3001", got)
	}
}
