package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/joe/dirstamp/pkg/errors"
)

func TestFormatSuggestions(t *testing.T) {
	t.Parallel()

	actionable := pkgerrors.NewActionableError(
		errors.New("clock skew"),
		pkgerrors.CategoryClock,
		[]string{"first", "second"},
		"",
	)

	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"plain error", errors.New("plain"), ""},
		{"no suggestions", pkgerrors.NewActionableError(errors.New("x"), pkgerrors.CategoryUnknown, nil, ""), ""},
		{"bulleted list", actionable, "  • first\n  • second"},
	}

	for _, testCase := range testCases {
		if got := pkgerrors.FormatSuggestions(testCase.err); got != testCase.expected {
			t.Errorf("%s: FormatSuggestions() = %q, want %q", testCase.name, got, testCase.expected)
		}
	}
}

func TestSuggestionGenerator_EveryCategoryHasSuggestions(t *testing.T) {
	t.Parallel()

	generator := pkgerrors.NewSuggestionGenerator()

	categories := []pkgerrors.ErrorCategory{
		pkgerrors.CategoryClock,
		pkgerrors.CategoryConsistency,
		pkgerrors.CategoryMetadata,
		pkgerrors.CategoryOrdering,
		pkgerrors.CategoryOutput,
		pkgerrors.CategoryPath,
		pkgerrors.CategoryPermission,
		pkgerrors.CategoryRemote,
		pkgerrors.CategoryUnknown,
		pkgerrors.ErrorCategory("made-up"),
	}

	for _, category := range categories {
		for _, path := range []string{"", "src/a.txt"} {
			if suggestions := generator.Generate(category, path); len(suggestions) == 0 {
				t.Errorf("Generate(%q, %q) returned no suggestions", category, path)
			}
		}
	}
}

func TestActionableError_Accessors(t *testing.T) {
	t.Parallel()

	original := errors.New("statx src/a.txt: permission denied")
	actionable := pkgerrors.NewActionableError(original, pkgerrors.CategoryPermission, []string{"s"}, "src/a.txt")

	if actionable.Error() != original.Error() || actionable.OriginalError() != original.Error() {
		t.Errorf("message mismatch: %q / %q", actionable.Error(), actionable.OriginalError())
	}
	if actionable.Category() != pkgerrors.CategoryPermission {
		t.Errorf("Category() = %q", actionable.Category())
	}
	if actionable.AffectedPath() != "src/a.txt" {
		t.Errorf("AffectedPath() = %q", actionable.AffectedPath())
	}
	if !errors.Is(actionable, original) {
		t.Error("errors.Is should see the original error")
	}
}
