package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "94",
	core.ColorGold:          "220",
}

// Theme decides how cells are painted beyond their foreground color.
type Theme struct {
	HUDRows       int            // top rows drawn as a status bar
	HUDBackground lipgloss.Color // empty leaves the bar unpainted
	SkyBackground lipgloss.Color // background behind the world; empty for the terminal's own
	Solid         map[rune]bool  // glyphs painted as filled blocks of their color
	Bold          map[core.Color]bool
}

// DefaultTheme paints terrain and bodies as solid blocks under a dark status bar.
func DefaultTheme() Theme {
	return Theme{
		HUDRows:       platformer.HUDRows,
		HUDBackground: "236",
		Solid: map[rune]bool{
			platformer.GrassGlyph: true,
			platformer.DirtGlyph:  true,
			platformer.EnemyGlyph: true,
			// PlayerGlyph shares its rune with GrassGlyph, so it is covered above.
		},
		Bold: map[core.Color]bool{
			core.ColorGold:        true,
			core.ColorBrightWhite: true,
		},
	}
}

type layer uint8

const (
	layerSky layer = iota
	layerHUD
	layerSolid
)

type styleKey struct {
	color core.Color
	layer layer
}

// Renderer turns a Screen into styled terminal output.
// Styles are built once per color and layer and reused across frames.
type Renderer struct {
	theme  Theme
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer for the theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		theme:  theme,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}

	st := lipgloss.NewStyle()
	fg, hasFG := palette[k.color]
	if hasFG {
		st = st.Foreground(fg)
	}
	if r.theme.Bold[k.color] {
		st = st.Bold(true)
	}

	switch k.layer {
	case layerHUD:
		if r.theme.HUDBackground != "" {
			st = st.Background(r.theme.HUDBackground)
		}
	case layerSky:
		if r.theme.SkyBackground != "" {
			st = st.Background(r.theme.SkyBackground)
		}
	case layerSolid:
		if hasFG {
			st = st.Background(fg)
		}
	}

	r.styles[k] = st
	return st
}

// cell classifies one screen cell, returning the rune to print and its style key.
func (r *Renderer) cell(c core.Cell, y int) (rune, styleKey) {
	switch {
	case y < r.theme.HUDRows:
		return c.Rune, styleKey{c.Color, layerHUD}
	case r.theme.Solid[c.Rune] && c.Color != core.ColorDefault:
		return ' ', styleKey{c.Color, layerSolid}
	default:
		return c.Rune, styleKey{c.Color, layerSky}
	}
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells sharing a style become one styled run.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			_, key := r.cell(s.GetCell(x, y), y)
			run.Reset()
			for x < s.Width() {
				ch, k := r.cell(s.GetCell(x, y), y)
				if k != key {
					break
				}
				run.WriteRune(ch)
				x++
			}
			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
