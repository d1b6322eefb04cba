package keycode

import "inputtap/internal/event"

// x11Keys maps X11 keycodes to logical keys, assuming the evdev keycode
// rules used by every modern X server (Linux input code + 8).
var x11Keys = map[uint32]event.Key{
	9:  event.KeyEscape,
	10: event.KeyNum1,
	11: event.KeyNum2,
	12: event.KeyNum3,
	13: event.KeyNum4,
	14: event.KeyNum5,
	15: event.KeyNum6,
	16: event.KeyNum7,
	17: event.KeyNum8,
	18: event.KeyNum9,
	19: event.KeyNum0,
	20: event.KeyMinus,
	21: event.KeyEqual,
	22: event.KeyBackspace,
	23: event.KeyTab,
	24: event.KeyQ,
	25: event.KeyW,
	26: event.KeyE,
	27: event.KeyR,
	28: event.KeyT,
	29: event.KeyY,
	30: event.KeyU,
	31: event.KeyI,
	32: event.KeyO,
	33: event.KeyP,
	34: event.KeyBracketLeft,
	35: event.KeyBracketRight,
	36: event.KeyEnter,
	37: event.KeyControlLeft,
	38: event.KeyA,
	39: event.KeyS,
	40: event.KeyD,
	41: event.KeyF,
	42: event.KeyG,
	43: event.KeyH,
	44: event.KeyJ,
	45: event.KeyK,
	46: event.KeyL,
	47: event.KeySemicolon,
	48: event.KeyQuote,
	49: event.KeyGrave,
	50: event.KeyShiftLeft,
	51: event.KeyBackslash,
	52: event.KeyZ,
	53: event.KeyX,
	54: event.KeyC,
	55: event.KeyV,
	56: event.KeyB,
	57: event.KeyN,
	58: event.KeyM,
	59: event.KeyComma,
	60: event.KeyPeriod,
	61: event.KeySlash,
	62: event.KeyShiftRight,
	63: event.KeyNumpadMultiply,
	64: event.KeyAltLeft,
	65: event.KeySpace,
	66: event.KeyCapsLock,
	67: event.KeyF1,
	68: event.KeyF2,
	69: event.KeyF3,
	70: event.KeyF4,
	71: event.KeyF5,
	72: event.KeyF6,
	73: event.KeyF7,
	74: event.KeyF8,
	75: event.KeyF9,
	76: event.KeyF10,
	77: event.KeyNumLock,
	78: event.KeyScrollLock,
	79: event.KeyNumpad7,
	80: event.KeyNumpad8,
	81: event.KeyNumpad9,
	82: event.KeyNumpadSubtract,
	83: event.KeyNumpad4,
	84: event.KeyNumpad5,
	85: event.KeyNumpad6,
	86: event.KeyNumpadAdd,
	87: event.KeyNumpad1,
	88: event.KeyNumpad2,
	89: event.KeyNumpad3,
	90: event.KeyNumpad0,
	91: event.KeyNumpadDecimal,
	94: event.KeyIntlBackslash,
	95: event.KeyF11,
	96: event.KeyF12,
	97: event.KeyIntlRo,

	104: event.KeyNumpadEnter,
	105: event.KeyControlRight,
	106: event.KeyNumpadDivide,
	107: event.KeyPrintScreen,
	108: event.KeyAltRight,
	110: event.KeyHome,
	111: event.KeyArrowUp,
	112: event.KeyPageUp,
	113: event.KeyArrowLeft,
	114: event.KeyArrowRight,
	115: event.KeyEnd,
	116: event.KeyArrowDown,
	117: event.KeyPageDown,
	118: event.KeyInsert,
	119: event.KeyDelete,
	121: event.KeyVolumeMute,
	122: event.KeyVolumeDown,
	123: event.KeyVolumeUp,
	125: event.KeyNumpadEqual,
	127: event.KeyPause,
	132: event.KeyIntlYen,
	133: event.KeyMetaLeft,
	134: event.KeyMetaRight,
	135: event.KeyContextMenu,

	163: event.KeyLaunchMail,
	164: event.KeyBrowserFavorites,
	166: event.KeyBrowserBack,
	167: event.KeyBrowserForward,
	171: event.KeyMediaNext,
	172: event.KeyMediaPlayPause,
	173: event.KeyMediaPrevious,
	174: event.KeyMediaStop,
	180: event.KeyBrowserHome,
	181: event.KeyBrowserRefresh,
	186: event.KeyBrowserStop,

	191: event.KeyF13,
	192: event.KeyF14,
	193: event.KeyF15,
	194: event.KeyF16,
	195: event.KeyF17,
	196: event.KeyF18,
	197: event.KeyF19,
	198: event.KeyF20,
	199: event.KeyF21,
	200: event.KeyF22,
	201: event.KeyF23,
	202: event.KeyF24,

	225: event.KeyBrowserSearch,
}

var x11Reverse = invert(x11Keys)

// FromX11 maps an X11 keycode to a logical key.
func FromX11(code uint32) event.Key {
	return lookup(x11Keys, code)
}

// ToX11 maps a logical key to an X11 keycode for XTEST injection.
func ToX11(key event.Key) (uint32, bool) {
	code, ok := x11Reverse[key]
	return code, ok
}

// ButtonFromX11 maps an X11 core button number to a logical button.
// Buttons 4-7 are wheel events on X11 and never reach this table.
func ButtonFromX11(code uint32) event.Button {
	switch code {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 8:
		return event.Button4
	case 9:
		return event.Button5
	default:
		return event.ButtonUnknown
	}
}

// ButtonToX11 maps a logical button to an X11 core button number.
func ButtonToX11(b event.Button) (uint32, bool) {
	switch b {
	case event.ButtonLeft:
		return 1, true
	case event.ButtonMiddle:
		return 2, true
	case event.ButtonRight:
		return 3, true
	case event.Button4:
		return 8, true
	case event.Button5:
		return 9, true
	default:
		return 0, false
	}
}
