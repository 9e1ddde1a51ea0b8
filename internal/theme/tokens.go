package theme

// Design tokens consumed by the storefront UI build. Purely
// declarative; served verbatim at GET /theme.

// Tokens is the full design-token set.
type Tokens struct {
	Colors    map[string]ColorScale `json:"colors"`
	Fonts     map[string][]string   `json:"fonts"`
	Shadows   map[string]string     `json:"shadows"`
	Keyframes []Keyframe            `json:"keyframes"`
	ZIndex    map[string]int        `json:"z_index"`
}

// ColorScale is a named shade ramp, 50 (lightest) to 900 (darkest).
type ColorScale map[string]string

// Keyframe names a CSS animation and its duration.
type Keyframe struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

// Default is the MitthuuG brand token set.
var Default = Tokens{
	Colors: map[string]ColorScale{
		"gud": {
			"50":  "#fdf8f0",
			"100": "#f9ecd9",
			"200": "#f2d5ab",
			"300": "#e9b877",
			"400": "#de9648",
			"500": "#c97a2b",
			"600": "#a85f20",
			"700": "#86481c",
			"800": "#6e3b1d",
			"900": "#5c321b",
		},
		"leaf": {
			"50":  "#f2f8ef",
			"500": "#4f7942",
			"900": "#1f3318",
		},
		"cream": {
			"50":  "#fffdf8",
			"100": "#fdf6e9",
		},
	},
	Fonts: map[string][]string{
		"display": {"Fraunces", "Georgia", "serif"},
		"body":    {"Inter", "system-ui", "sans-serif"},
	},
	Shadows: map[string]string{
		"card":  "0 2px 8px rgba(92, 50, 27, 0.08)",
		"hover": "0 8px 24px rgba(92, 50, 27, 0.16)",
		"glow":  "0 0 0 3px rgba(201, 122, 43, 0.35)",
	},
	Keyframes: []Keyframe{
		{Name: "fade-in", Duration: "300ms", Easing: "ease-out"},
		{Name: "slide-up", Duration: "400ms", Easing: "cubic-bezier(0.16, 1, 0.3, 1)"},
		{Name: "shimmer", Duration: "1.5s"},
	},
	ZIndex: map[string]int{
		"dropdown": 1000,
		"sticky":   1100,
		"overlay":  1200,
		"modal":    1300,
		"toast":    1400,
	},
}
