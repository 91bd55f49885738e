// Package styles owns the per-section style overrides and their projection
// into renderer-ready properties.
package styles

import (
	"fmt"
	"strings"

	"github.com/canvasite/canvasite-terminal/pkg/models"
)

// Props is a css-like property map derived from a resolved style. Keys are
// CSS property names so the HTML exporter can emit them verbatim.
type Props map[string]string

// Store maps section ids to style overrides. A missing entry means the
// section uses the default style. The store is owned by one session; the
// session registers an onMutate hook to flip its dirty flag.
type Store struct {
	overrides map[string]models.ElementStyle
	onMutate  func()
}

// NewStore returns an empty override store. onMutate is called after every
// successful mutation; nil is allowed.
func NewStore(onMutate func()) *Store {
	return &Store{
		overrides: make(map[string]models.ElementStyle),
		onMutate:  onMutate,
	}
}

// Resolve returns the override for the section if present, else the
// default style. Total: never fails.
func (s *Store) Resolve(sectionID string) models.ElementStyle {
	if st, ok := s.overrides[sectionID]; ok {
		return st
	}
	return models.DefaultElementStyle()
}

// HasOverride reports whether the section deviates from the defaults.
func (s *Store) HasOverride(sectionID string) bool {
	_, ok := s.overrides[sectionID]
	return ok
}

// Len returns the number of overridden sections.
func (s *Store) Len() int {
	return len(s.overrides)
}

// Set updates one field of the section's override, creating the override
// from the defaults first if the section had none. Values outside the
// field's enumerated domain are rejected; color fields accept any hex
// string.
func (s *Store) Set(sectionID string, field models.StyleField, value string) error {
	st := s.Resolve(sectionID)

	switch field {
	case models.FieldBackgroundColor:
		if err := validateColor(value, true); err != nil {
			return err
		}
		st.BackgroundColor = value
	case models.FieldTextColor:
		if err := validateColor(value, false); err != nil {
			return err
		}
		st.TextColor = value
	case models.FieldBorderColor:
		if err := validateColor(value, false); err != nil {
			return err
		}
		st.BorderColor = value
	case models.FieldFontSize:
		if err := validateEnum(field, value, models.FontSizes); err != nil {
			return err
		}
		st.FontSize = value
	case models.FieldFontWeight:
		if err := validateEnum(field, value, models.FontWeights); err != nil {
			return err
		}
		st.FontWeight = value
	case models.FieldFontFamily:
		if err := validateEnum(field, value, models.FontFamilies); err != nil {
			return err
		}
		st.FontFamily = value
	case models.FieldTextAlign:
		if err := validateEnum(field, value, models.TextAligns); err != nil {
			return err
		}
		st.TextAlign = value
	case models.FieldPadding:
		if err := validateEnum(field, value, models.SpacingSteps); err != nil {
			return err
		}
		st.Padding = value
	case models.FieldMargin:
		if err := validateEnum(field, value, models.SpacingSteps); err != nil {
			return err
		}
		st.Margin = value
	case models.FieldBorderWidth:
		if err := validateEnum(field, value, models.BorderWidths); err != nil {
			return err
		}
		st.BorderWidth = value
	case models.FieldBorderRadius:
		if err := validateEnum(field, value, models.BorderRadii); err != nil {
			return err
		}
		st.BorderRadius = value
	case models.FieldBoxShadow:
		if err := validateEnum(field, value, models.BoxShadows); err != nil {
			return err
		}
		st.BoxShadow = value
	case models.FieldAnimation:
		if err := validateEnum(field, value, models.Animations); err != nil {
			return err
		}
		st.Animation = value
	default:
		return fmt.Errorf("unknown style field %q", field)
	}

	s.overrides[sectionID] = st
	s.mutated()
	return nil
}

// Reset deletes the section's override, reverting it to the defaults.
// Resetting a section without an override still counts as a mutation, as
// the styling panel treats it as one.
func (s *Store) Reset(sectionID string) {
	delete(s.overrides, sectionID)
	s.mutated()
}

// ResetAll clears every override.
func (s *Store) ResetAll() {
	s.overrides = make(map[string]models.ElementStyle)
	s.mutated()
}

// Projection derives the renderer-ready property map from the resolved
// style. borderStyle and the animation shorthand are computed, never
// stored.
func (s *Store) Projection(sectionID string) Props {
	st := s.Resolve(sectionID)

	borderStyle := "none"
	if st.BorderWidth != "0px" {
		borderStyle = "solid"
	}
	animation := "none"
	if st.Animation != "none" {
		animation = fmt.Sprintf("%s 2s infinite", st.Animation)
	}

	return Props{
		"background-color": st.BackgroundColor,
		"color":            st.TextColor,
		"font-size":        st.FontSize,
		"font-weight":      st.FontWeight,
		"font-family":      st.FontFamily,
		"text-align":       st.TextAlign,
		"padding":          st.Padding,
		"margin":           st.Margin,
		"border-width":     st.BorderWidth,
		"border-color":     st.BorderColor,
		"border-style":     borderStyle,
		"border-radius":    st.BorderRadius,
		"box-shadow":       st.BoxShadow,
		"animation":        animation,
	}
}

func (s *Store) mutated() {
	if s.onMutate != nil {
		s.onMutate()
	}
}

func validateEnum(field models.StyleField, value string, domain []string) error {
	for _, v := range domain {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("invalid %s value %q", field, value)
}

func validateColor(value string, allowTransparent bool) error {
	if allowTransparent && value == "transparent" {
		return nil
	}
	if len(value) != 4 && len(value) != 7 {
		return fmt.Errorf("invalid color %q", value)
	}
	if !strings.HasPrefix(value, "#") {
		return fmt.Errorf("invalid color %q", value)
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("invalid color %q", value)
		}
	}
	return nil
}
