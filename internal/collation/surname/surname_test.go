package surname

import (
	"errors"
	"testing"

	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
)

func TestSplitCompound(t *testing.T) {
	set := NewSet([]string{"欧阳"})
	sur, given, err := Split("欧阳锋", set)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if sur != "欧阳" || given != "锋" {
		t.Errorf("Split(欧阳锋) = (%q, %q), want (欧阳, 锋)", sur, given)
	}
}

func TestSplitWithoutCompoundSet(t *testing.T) {
	set := NewSet(nil)
	sur, given, err := Split("欧阳锋", set)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if sur != "欧" || given != "阳锋" {
		t.Errorf("Split(欧阳锋) = (%q, %q), want (欧, 阳锋)", sur, given)
	}
}

func TestSplitCompoundExactLength(t *testing.T) {
	set := NewSet([]string{"欧阳"})
	sur, given, err := Split("欧阳", set)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if sur != "欧阳" || given != "" {
		t.Errorf("Split(欧阳) = (%q, %q), want (欧阳, \"\")", sur, given)
	}
}

func TestSplitSingleCharacter(t *testing.T) {
	// Compound check is skipped when a 2-rune prefix cannot be formed.
	for _, set := range []*Set{NewSet(nil), NewSet([]string{"欧阳", "锋甲"})} {
		sur, given, err := Split("锋", set)
		if err != nil {
			t.Fatalf("Split returned error: %v", err)
		}
		if sur != "锋" || given != "" {
			t.Errorf("Split(锋) = (%q, %q), want (锋, \"\")", sur, given)
		}
	}
}

func TestSplitEmptyName(t *testing.T) {
	_, _, err := Split("", NewSet(nil))
	if !errors.Is(err, apperrors.ErrEmptyName) {
		t.Fatalf("Split(\"\") error = %v, want ErrEmptyName", err)
	}
}
