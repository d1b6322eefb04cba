package event

// Key is a platform-independent identifier for a physical key. Values are
// stable; new keys are only ever appended so serialized values stay valid.
type Key int

const (
	// Letters.
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Number row.
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Function keys.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Special keys.
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight
	KeyCapsLock
	KeyDelete

	// Arrows.
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown

	// KeyUnknown marks an unmapped raw code. The raw platform code is
	// preserved in KeyboardData.RawCode.
	KeyUnknown

	// Navigation.
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Lock keys.
	KeyNumLock
	KeyScrollLock
	KeyPrintScreen
	KeyPause

	// Punctuation and symbols.
	KeyGrave
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyComma
	KeyPeriod
	KeySlash

	// Extended function keys.
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Numpad.
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter
	KeyNumpadEqual

	// Media keys.
	KeyVolumeUp
	KeyVolumeDown
	KeyVolumeMute
	KeyMediaPlayPause
	KeyMediaStop
	KeyMediaNext
	KeyMediaPrevious

	// Browser keys.
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserSearch
	KeyBrowserFavorites
	KeyBrowserHome

	// Application launch keys.
	KeyLaunchMail
	KeyLaunchApp1
	KeyLaunchApp2

	// International.
	KeyIntlBackslash
	KeyIntlYen
	KeyIntlRo

	KeyContextMenu

	// keyCount is the number of named keys. Update keyNames and
	// keyCategories when adding variants.
	keyCount
)

// KeyCount is the number of named Key values.
const KeyCount = int(keyCount)

var keyNames = [...]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	KeyNum0: "0", KeyNum1: "1", KeyNum2: "2", KeyNum3: "3", KeyNum4: "4",
	KeyNum5: "5", KeyNum6: "6", KeyNum7: "7", KeyNum8: "8", KeyNum9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",

	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyShiftLeft:    "Left Shift",
	KeyShiftRight:   "Right Shift",
	KeyControlLeft:  "Left Control",
	KeyControlRight: "Right Control",
	KeyAltLeft:      "Left Alt",
	KeyAltRight:     "Right Alt",
	KeyMetaLeft:     "Left Meta",
	KeyMetaRight:    "Right Meta",
	KeyCapsLock:     "Caps Lock",
	KeyDelete:       "Delete",

	KeyArrowLeft:  "Left Arrow",
	KeyArrowRight: "Right Arrow",
	KeyArrowUp:    "Up Arrow",
	KeyArrowDown:  "Down Arrow",

	KeyUnknown: "Unknown",

	KeyInsert:   "Insert",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "Page Up",
	KeyPageDown: "Page Down",

	KeyNumLock:     "Num Lock",
	KeyScrollLock:  "Scroll Lock",
	KeyPrintScreen: "Print Screen",
	KeyPause:       "Pause",

	KeyGrave:        "`",
	KeyMinus:        "-",
	KeyEqual:        "=",
	KeyBracketLeft:  "[",
	KeyBracketRight: "]",
	KeyBackslash:    "\\",
	KeySemicolon:    ";",
	KeyQuote:        "'",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeySlash:        "/",

	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16",
	KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
	KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyNumpad0: "Numpad 0", KeyNumpad1: "Numpad 1", KeyNumpad2: "Numpad 2",
	KeyNumpad3: "Numpad 3", KeyNumpad4: "Numpad 4", KeyNumpad5: "Numpad 5",
	KeyNumpad6: "Numpad 6", KeyNumpad7: "Numpad 7", KeyNumpad8: "Numpad 8",
	KeyNumpad9: "Numpad 9",
	KeyNumpadAdd:      "Numpad +",
	KeyNumpadSubtract: "Numpad -",
	KeyNumpadMultiply: "Numpad *",
	KeyNumpadDivide:   "Numpad /",
	KeyNumpadDecimal:  "Numpad .",
	KeyNumpadEnter:    "Numpad Enter",
	KeyNumpadEqual:    "Numpad =",

	KeyVolumeUp:       "Volume Up",
	KeyVolumeDown:     "Volume Down",
	KeyVolumeMute:     "Volume Mute",
	KeyMediaPlayPause: "Play/Pause",
	KeyMediaStop:      "Media Stop",
	KeyMediaNext:      "Next Track",
	KeyMediaPrevious:  "Previous Track",

	KeyBrowserBack:      "Browser Back",
	KeyBrowserForward:   "Browser Forward",
	KeyBrowserRefresh:   "Browser Refresh",
	KeyBrowserStop:      "Browser Stop",
	KeyBrowserSearch:    "Browser Search",
	KeyBrowserFavorites: "Browser Favorites",
	KeyBrowserHome:      "Browser Home",

	KeyLaunchMail: "Launch Mail",
	KeyLaunchApp1: "Launch App 1",
	KeyLaunchApp2: "Launch App 2",

	KeyIntlBackslash: "Intl Backslash",
	KeyIntlYen:       "Intl Yen",
	KeyIntlRo:        "Intl Ro",

	KeyContextMenu: "Context Menu",
}

// Category groups keys for display and filtering purposes.
type Category string

const (
	CategoryLetter        Category = "letter"
	CategoryDigit         Category = "digit"
	CategoryFunction      Category = "function"
	CategoryModifier      Category = "modifier"
	CategoryArrow         Category = "arrow"
	CategoryNavigation    Category = "navigation"
	CategoryLock          Category = "lock"
	CategoryPunctuation   Category = "punctuation"
	CategoryNumpad        Category = "numpad"
	CategoryMedia         Category = "media"
	CategoryBrowser       Category = "browser"
	CategoryApplication   Category = "application"
	CategoryInternational Category = "international"
	CategorySpecial       Category = "special"
	CategoryUnknown       Category = "unknown"
)

// DisplayName returns a human-readable name for the key.
func (k Key) DisplayName() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Category returns the group the key belongs to.
func (k Key) Category() Category {
	switch {
	case k >= KeyA && k <= KeyZ:
		return CategoryLetter
	case k >= KeyNum0 && k <= KeyNum9:
		return CategoryDigit
	case (k >= KeyF1 && k <= KeyF12) || (k >= KeyF13 && k <= KeyF24):
		return CategoryFunction
	case k >= KeyShiftLeft && k <= KeyCapsLock:
		return CategoryModifier
	case k >= KeyArrowLeft && k <= KeyArrowDown:
		return CategoryArrow
	case k >= KeyInsert && k <= KeyPageDown:
		return CategoryNavigation
	case k == KeyNumLock || k == KeyScrollLock:
		return CategoryLock
	case k >= KeyGrave && k <= KeySlash:
		return CategoryPunctuation
	case k >= KeyNumpad0 && k <= KeyNumpadEqual:
		return CategoryNumpad
	case k >= KeyVolumeUp && k <= KeyMediaPrevious:
		return CategoryMedia
	case k >= KeyBrowserBack && k <= KeyBrowserHome:
		return CategoryBrowser
	case k >= KeyLaunchMail && k <= KeyLaunchApp2:
		return CategoryApplication
	case k >= KeyIntlBackslash && k <= KeyIntlRo:
		return CategoryInternational
	case k == KeyEscape || k == KeySpace || k == KeyEnter || k == KeyBackspace ||
		k == KeyTab || k == KeyDelete || k == KeyPrintScreen || k == KeyPause ||
		k == KeyContextMenu:
		return CategorySpecial
	default:
		return CategoryUnknown
	}
}

// IsModifier reports whether the key is a modifier (Shift, Control, Alt,
// Meta or Caps Lock).
func (k Key) IsModifier() bool {
	return k >= KeyShiftLeft && k <= KeyCapsLock
}

func (k Key) String() string {
	return k.DisplayName()
}

// KeyInfo describes one named key for bulk listing.
type KeyInfo struct {
	Key         Key
	DisplayName string
	Category    Category
}

// AllKeyInfo returns display info for every named key, in value order.
func AllKeyInfo() []KeyInfo {
	infos := make([]KeyInfo, 0, KeyCount)
	for k := Key(0); k < keyCount; k++ {
		infos = append(infos, KeyInfo{
			Key:         k,
			DisplayName: k.DisplayName(),
			Category:    k.Category(),
		})
	}
	return infos
}
