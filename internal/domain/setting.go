package domain

// LigaturesFlag toggles orthographic ligatures.
type LigaturesFlag int

const (
	LigaturesEnable LigaturesFlag = iota + 1
	LigaturesDisable
)

// String returns the flag as it appears in history records.
func (l LigaturesFlag) String() string {
	switch l {
	case LigaturesEnable:
		return "enable"
	case LigaturesDisable:
		return "disable"
	default:
		return "unknown"
	}
}

// Enabled reports whether the flag turns ligatures on.
func (l LigaturesFlag) Enabled() bool {
	return l == LigaturesEnable
}

// Setting describes what to change in an app.
//
// Having neither a font nor a ligatures flag is not a Setting: the only
// implementations are FontSetting, LigaturesSetting and BothSetting, and
// NewSetting refuses to build one from two absent inputs.
type Setting interface {
	// Font returns the requested font, if any.
	Font() (Font, bool)
	// Ligatures returns the requested ligatures flag, if any.
	Ligatures() (LigaturesFlag, bool)

	sealed()
}

// FontSetting only sets the font.
type FontSetting struct {
	Value Font
}

func (s FontSetting) Font() (Font, bool)               { return s.Value, true }
func (s FontSetting) Ligatures() (LigaturesFlag, bool) { return 0, false }
func (FontSetting) sealed()                            {}

// LigaturesSetting only sets orthographic ligatures.
type LigaturesSetting struct {
	Flag LigaturesFlag
}

func (s LigaturesSetting) Font() (Font, bool)               { return Font{}, false }
func (s LigaturesSetting) Ligatures() (LigaturesFlag, bool) { return s.Flag, true }
func (LigaturesSetting) sealed()                            {}

// BothSetting sets the font and orthographic ligatures.
type BothSetting struct {
	Value Font
	Flag  LigaturesFlag
}

func (s BothSetting) Font() (Font, bool)               { return s.Value, true }
func (s BothSetting) Ligatures() (LigaturesFlag, bool) { return s.Flag, true }
func (BothSetting) sealed()                            {}

// NewSetting builds the Setting matching the given inputs. It returns false
// when both are nil; callers treat that as a usage error.
func NewSetting(font *Font, ligatures *LigaturesFlag) (Setting, bool) {
	switch {
	case font != nil && ligatures != nil:
		return BothSetting{Value: *font, Flag: *ligatures}, true
	case font != nil:
		return FontSetting{Value: *font}, true
	case ligatures != nil:
		return LigaturesSetting{Flag: *ligatures}, true
	default:
		return nil, false
	}
}
