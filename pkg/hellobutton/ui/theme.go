package ui

import "github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"

// Theme supplies the base style of every object kind. Objects receive their
// theme style when created; local and added styles override it.
type Theme struct {
	Primary   Color // Button background
	Secondary Color // Button shadow
	Dark      bool  // Dark screen background with light text
}

// DefaultTheme returns the dark theme with the stock primary and secondary colors.
func DefaultTheme() Theme {
	return Theme{
		Primary:   HexToColor(constants.ThemePrimaryHex),
		Secondary: HexToColor(constants.ThemeSecondaryHex),
		Dark:      true,
	}
}

type themeStyles struct {
	screen Style
	button Style
}

func (t Theme) build() *themeStyles {
	ts := &themeStyles{}

	ts.screen.SetBgOpa(OpaCover)
	if t.Dark {
		ts.screen.SetBgColor(HexToColor(0x15171A))
		ts.screen.SetTextColor(HexToColor(0xF0F0F0))
	} else {
		ts.screen.SetBgColor(White())
		ts.screen.SetTextColor(HexToColor(0x212121))
	}

	ts.button.SetBgOpa(OpaCover)
	ts.button.SetBgColor(t.Primary)
	ts.button.SetTextColor(White())
	ts.button.SetRadius(4)
	ts.button.SetPadding(SymmetricPadding(10, 16))
	ts.button.SetShadowWidth(3)
	ts.button.SetShadowColor(t.Secondary)
	ts.button.SetShadowOfsY(2)

	return ts
}

func (ts *themeStyles) forKind(kind Kind) *Style {
	switch kind {
	case KindScreen:
		return &ts.screen
	case KindButton:
		return &ts.button
	default:
		return nil
	}
}
