package jsx

import (
	"strings"

	"github.com/wippyai/jsx-luau/errors"
)

// Options controls how elements are lowered.
type Options struct {
	// Intrinsics maps lowercase tags to the class name passed to the
	// element factory. Unlisted lowercase tags get their first letter
	// upper-cased.
	Intrinsics map[string]string

	Factory         string // element library global, e.g. "Roact"
	CreateElement   string // factory function, e.g. "createElement"
	KeyAttribute    string // reconciliation key, never forwarded as a prop
	RefAttribute    string
	EventAttribute  string
	ChangeAttribute string

	// ElementSentinels are the fields a runtime value must carry to be
	// treated as a single element rather than a collection of children.
	ElementSentinels []string
}

// DefaultOptions returns Roact conventions.
func DefaultOptions() Options {
	return Options{
		Factory:          "Roact",
		CreateElement:    "createElement",
		KeyAttribute:     "Key",
		RefAttribute:     "Ref",
		EventAttribute:   "Event",
		ChangeAttribute:  "Change",
		ElementSentinels: []string{"props", "component"},
		Intrinsics: map[string]string{
			"billboardgui":            "BillboardGui",
			"frame":                   "Frame",
			"imagebutton":             "ImageButton",
			"imagelabel":              "ImageLabel",
			"screengui":               "ScreenGui",
			"scrollingframe":          "ScrollingFrame",
			"surfacegui":              "SurfaceGui",
			"textbox":                 "TextBox",
			"textbutton":              "TextButton",
			"textlabel":               "TextLabel",
			"uiaspectratioconstraint": "UIAspectRatioConstraint",
			"uicorner":                "UICorner",
			"uigridlayout":            "UIGridLayout",
			"uilistlayout":            "UIListLayout",
			"uipadding":               "UIPadding",
			"uisizeconstraint":        "UISizeConstraint",
			"uistroke":                "UIStroke",
			"videoframe":              "VideoFrame",
			"viewportframe":           "ViewportFrame",
		},
	}
}

// Validate reports options that would produce invalid code.
func (o Options) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"factory", o.Factory},
		{"create_element", o.CreateElement},
		{"key_attribute", o.KeyAttribute},
		{"ref_attribute", o.RefAttribute},
		{"event_attribute", o.EventAttribute},
		{"change_attribute", o.ChangeAttribute},
	}
	for _, f := range fields {
		if !isLuauName(f.value) {
			return errors.InvalidData(errors.PhaseConfig, []string{f.name}, "must be a Luau identifier, got "+quoteOrEmpty(f.value))
		}
	}
	if len(o.ElementSentinels) == 0 {
		return errors.InvalidData(errors.PhaseConfig, []string{"element_sentinels"}, "at least one sentinel field is required")
	}
	for _, s := range o.ElementSentinels {
		if !isLuauName(s) {
			return errors.InvalidData(errors.PhaseConfig, []string{"element_sentinels"}, "must be Luau identifiers, got "+quoteOrEmpty(s))
		}
	}
	return nil
}

// intrinsicName resolves a lowercase tag to its class name.
func (o Options) intrinsicName(tag string) string {
	if name, ok := o.Intrinsics[tag]; ok {
		return name
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}

func isLuauName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "empty string"
	}
	return `"` + s + `"`
}
