package log

import (
	"charm.land/lipgloss/v2"
)

// Palette hex constants. Light variants are tuned for light backgrounds and
// dark variants for dark ones. Vivid styles pair a bright foreground with a
// translucent-looking background swatch.
const (
	traceLight = "#8A8F98"
	traceDark  = "#6C7079"
	traceVivid = "#B06AD9"

	debugLight = "#4F7CAC"
	debugDark  = "#7FA7D4"
	debugVivid = "#2F80ED"

	infoLight = "#3D7A4A"
	infoDark  = "#7CC38A"
	infoVivid = "#27AE60"

	objectLight = "#5E6B7A"
	objectDark  = "#A9B6C4"
	objectVivid = "#00A3A3"

	warnVivid = "#F2994A"

	errorLight = "#B3403A"
	errorDark  = "#E57F79"
	errorVivid = "#EB5757"

	fatalVivid = "#FFFFFF"

	swatchLight = "#F2F2F2"
	swatchDark  = "#2B2B2B"
	fatalSwatch = "#C0392B"
)

// StyleTable holds the styled variants for one function-set entry. A nil
// field means the entry has no such branch and falls through to the next one
// in precedence order, ending at plain output.
type StyleTable struct {
	PaleLight  *lipgloss.Style
	PaleDark   *lipgloss.Style
	VividLight *lipgloss.Style
	VividDark  *lipgloss.Style
}

func pale(hex string) *lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	return &s
}

func vivid(fg, bg string) *lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))

	return &s
}

// fullTable builds a table with all four branches.
func fullTable(paleLight, paleDark, vividFg string) StyleTable {
	return StyleTable{
		PaleLight:  pale(paleLight),
		PaleDark:   pale(paleDark),
		VividLight: vivid(vividFg, swatchLight),
		VividDark:  vivid(vividFg, swatchDark),
	}
}

var (
	traceStyles  = fullTable(traceLight, traceDark, traceVivid)
	debugStyles  = fullTable(debugLight, debugDark, debugVivid)
	infoStyles   = fullTable(infoLight, infoDark, infoVivid)
	objectStyles = fullTable(objectLight, objectDark, objectVivid)
	errorStyles  = fullTable(errorLight, errorDark, errorVivid)

	// Warn has no pale variant.
	warnStyles = StyleTable{
		VividLight: vivid(warnVivid, swatchLight),
		VividDark:  vivid(warnVivid, swatchDark),
	}

	fatalStyles = func() StyleTable {
		s := vivid(fatalVivid, fatalSwatch).Bold(true)
		// Same style on every background, and pale collapses into vivid.
		return StyleTable{
			PaleLight:  &s,
			PaleDark:   &s,
			VividLight: &s,
			VividDark:  &s,
		}
	}()
)

// selectStyle picks the style for one entry. Precedence is
// vivid+dark, vivid+light, pale+dark, pale+light, then plain (nil).
func selectStyle(t StyleTable, vividOn, colored, dark bool) *lipgloss.Style {
	switch {
	case vividOn && dark && t.VividDark != nil:
		return t.VividDark
	case vividOn && !dark && t.VividLight != nil:
		return t.VividLight
	case colored && dark && t.PaleDark != nil:
		return t.PaleDark
	case colored && !dark && t.PaleLight != nil:
		return t.PaleLight
	}

	return nil
}
