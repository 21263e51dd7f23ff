// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	if got := Render(&Diff{Changed: map[string]Delta{}}); got != "" {
		t.Errorf("Render(empty) = %q, want empty string", got)
	}
}

func TestRender_AddedOnly(t *testing.T) {
	t.Parallel()

	d := Compare(Manifest{}, Manifest{"a": {"function foo() view"}})
	got := Render(d)

	want := "### Added\n\n- `a`\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_AllSections(t *testing.T) {
	t.Parallel()

	d := &Diff{
		Added:   []string{"fresh"},
		Removed: []string{"gone"},
		Changed: map[string]Delta{
			"x": {
				Added:   []string{"function h() nonpayable"},
				Removed: []string{"function g() view"},
			},
		},
	}

	got := Render(d)

	wantOrder := []string{"### Added", "`fresh`", "### Removed", "`gone`", "### Changed", "`x`",
		"Added: `function h() nonpayable`", "Removed: `function g() view`"}
	pos := -1
	for _, frag := range wantOrder {
		idx := strings.Index(got, frag)
		if idx < 0 {
			t.Fatalf("Render() missing %q:\n%s", frag, got)
		}
		if idx < pos {
			t.Errorf("Render() places %q out of order:\n%s", frag, got)
		}
		pos = idx
	}

	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("Render() must end with exactly one newline, got %q", got)
	}
}

func TestRender_OmitsEmptySections(t *testing.T) {
	t.Parallel()

	d := &Diff{Removed: []string{"gone"}, Changed: map[string]Delta{}}
	got := Render(d)

	if strings.Contains(got, "### Added") || strings.Contains(got, "### Changed") {
		t.Errorf("Render() includes empty sections:\n%s", got)
	}
	if !strings.Contains(got, "### Removed") {
		t.Errorf("Render() missing Removed section:\n%s", got)
	}
}
