package styles

import (
	"testing"

	"github.com/canvasite/canvasite-terminal/pkg/models"
)

func TestResolveDefaultFallback(t *testing.T) {
	store := NewStore(nil)

	got := store.Resolve("header-1")
	if got != models.DefaultElementStyle() {
		t.Errorf("Resolve without override = %+v, want default", got)
	}
	if store.HasOverride("header-1") {
		t.Error("Resolve must not create an override")
	}
}

func TestSetCreatesOverrideFromDefaults(t *testing.T) {
	store := NewStore(nil)

	if err := store.Set("text-1", models.FieldFontSize, "24px"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := store.Resolve("text-1")
	if got.FontSize != "24px" {
		t.Errorf("FontSize = %q", got.FontSize)
	}
	// The untouched fields keep their default values.
	if got.Padding != "16px" || got.TextColor != "#000000" {
		t.Errorf("override not seeded from defaults: %+v", got)
	}
}

func TestSetRejectsOutOfDomainValues(t *testing.T) {
	store := NewStore(nil)

	tests := []struct {
		field models.StyleField
		value string
	}{
		{models.FieldFontSize, "13px"},
		{models.FieldFontWeight, "900"},
		{models.FieldTextAlign, "middle"},
		{models.FieldPadding, "12px"},
		{models.FieldBorderWidth, "3px"},
		{models.FieldBorderRadius, "25%"},
		{models.FieldAnimation, "spin"},
		{models.FieldTextColor, "red"},
		{models.FieldTextColor, "#12345"},
		{models.FieldBackgroundColor, "#ggg"},
		{"mysteryField", "x"},
	}
	for _, tt := range tests {
		if err := store.Set("s-1", tt.field, tt.value); err == nil {
			t.Errorf("Set(%s, %q) accepted an out-of-domain value", tt.field, tt.value)
		}
	}
	if store.HasOverride("s-1") {
		t.Error("rejected values must not create an override")
	}
}

func TestSetAcceptsHexAndTransparent(t *testing.T) {
	store := NewStore(nil)

	if err := store.Set("s-1", models.FieldBackgroundColor, "transparent"); err != nil {
		t.Errorf("transparent background rejected: %v", err)
	}
	if err := store.Set("s-1", models.FieldTextColor, "#ABC"); err != nil {
		t.Errorf("short hex rejected: %v", err)
	}
	if err := store.Set("s-1", models.FieldBorderColor, "#123abc"); err != nil {
		t.Errorf("hex rejected: %v", err)
	}
	if err := store.Set("s-1", models.FieldTextColor, "transparent"); err == nil {
		t.Error("transparent text color accepted")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	store := NewStore(nil)

	store.Set("a-1", models.FieldFontWeight, "bold")
	store.Set("b-1", models.FieldFontWeight, "bold")

	store.Reset("a-1")
	if store.Resolve("a-1") != models.DefaultElementStyle() {
		t.Error("Reset did not restore defaults")
	}
	if !store.HasOverride("b-1") {
		t.Error("Reset removed an unrelated override")
	}

	store.ResetAll()
	if store.Len() != 0 {
		t.Errorf("ResetAll left %d overrides", store.Len())
	}
}

func TestMutationHook(t *testing.T) {
	var calls int
	store := NewStore(func() { calls++ })

	store.Set("s-1", models.FieldFontSize, "18px") // 1
	store.Set("s-1", models.FieldFontSize, "oops") // rejected, no call
	store.Reset("s-1")                             // 2
	store.ResetAll()                               // 3

	if calls != 3 {
		t.Errorf("mutation hook ran %d times, want 3", calls)
	}
}

func TestProjectionDerivedFields(t *testing.T) {
	store := NewStore(nil)

	// Defaults: no border, no animation.
	props := store.Projection("s-1")
	if props["border-style"] != "none" {
		t.Errorf("border-style = %q, want none", props["border-style"])
	}
	if props["animation"] != "none" {
		t.Errorf("animation = %q, want none", props["animation"])
	}

	store.Set("s-1", models.FieldBorderWidth, "2px")
	store.Set("s-1", models.FieldAnimation, "pulse")

	props = store.Projection("s-1")
	if props["border-style"] != "solid" {
		t.Errorf("border-style = %q, want solid", props["border-style"])
	}
	if props["animation"] != "pulse 2s infinite" {
		t.Errorf("animation = %q, want \"pulse 2s infinite\"", props["animation"])
	}
	if props["border-width"] != "2px" {
		t.Errorf("border-width = %q", props["border-width"])
	}
}

func TestProjectionCopiesStoredFields(t *testing.T) {
	store := NewStore(nil)
	store.Set("s-1", models.FieldBackgroundColor, "#10b981")
	store.Set("s-1", models.FieldTextAlign, "center")

	props := store.Projection("s-1")
	want := map[string]string{
		"background-color": "#10b981",
		"text-align":       "center",
		"color":            "#000000",
		"font-family":      "Inter",
		"box-shadow":       "none",
	}
	for k, v := range want {
		if props[k] != v {
			t.Errorf("props[%q] = %q, want %q", k, props[k], v)
		}
	}
}
