package keycode

import "inputtap/internal/event"

// darwinKeys maps CGKeyCode values (ANSI layout, plus JIS international
// keys) to logical keys.
var darwinKeys = map[uint32]event.Key{
	0:  event.KeyA,
	1:  event.KeyS,
	2:  event.KeyD,
	3:  event.KeyF,
	4:  event.KeyH,
	5:  event.KeyG,
	6:  event.KeyZ,
	7:  event.KeyX,
	8:  event.KeyC,
	9:  event.KeyV,
	10: event.KeyIntlBackslash,
	11: event.KeyB,
	12: event.KeyQ,
	13: event.KeyW,
	14: event.KeyE,
	15: event.KeyR,
	16: event.KeyY,
	17: event.KeyT,
	18: event.KeyNum1,
	19: event.KeyNum2,
	20: event.KeyNum3,
	21: event.KeyNum4,
	22: event.KeyNum6,
	23: event.KeyNum5,
	24: event.KeyEqual,
	25: event.KeyNum9,
	26: event.KeyNum7,
	27: event.KeyMinus,
	28: event.KeyNum8,
	29: event.KeyNum0,
	30: event.KeyBracketRight,
	31: event.KeyO,
	32: event.KeyU,
	33: event.KeyBracketLeft,
	34: event.KeyI,
	35: event.KeyP,
	36: event.KeyEnter,
	37: event.KeyL,
	38: event.KeyJ,
	39: event.KeyQuote,
	40: event.KeyK,
	41: event.KeySemicolon,
	42: event.KeyBackslash,
	43: event.KeyComma,
	44: event.KeySlash,
	45: event.KeyN,
	46: event.KeyM,
	47: event.KeyPeriod,
	48: event.KeyTab,
	49: event.KeySpace,
	50: event.KeyGrave,
	51: event.KeyBackspace,
	53: event.KeyEscape,
	54: event.KeyMetaRight,
	55: event.KeyMetaLeft,
	56: event.KeyShiftLeft,
	57: event.KeyCapsLock,
	58: event.KeyAltLeft,
	59: event.KeyControlLeft,
	60: event.KeyShiftRight,
	61: event.KeyAltRight,
	62: event.KeyControlRight,

	64:  event.KeyF17,
	65:  event.KeyNumpadDecimal,
	67:  event.KeyNumpadMultiply,
	69:  event.KeyNumpadAdd,
	71:  event.KeyNumLock, // keypad clear
	72:  event.KeyVolumeUp,
	73:  event.KeyVolumeDown,
	74:  event.KeyVolumeMute,
	75:  event.KeyNumpadDivide,
	76:  event.KeyNumpadEnter,
	78:  event.KeyNumpadSubtract,
	79:  event.KeyF18,
	80:  event.KeyF19,
	81:  event.KeyNumpadEqual,
	82:  event.KeyNumpad0,
	83:  event.KeyNumpad1,
	84:  event.KeyNumpad2,
	85:  event.KeyNumpad3,
	86:  event.KeyNumpad4,
	87:  event.KeyNumpad5,
	88:  event.KeyNumpad6,
	89:  event.KeyNumpad7,
	91:  event.KeyNumpad8,
	92:  event.KeyNumpad9,
	93:  event.KeyIntlYen,
	94:  event.KeyIntlRo,
	96:  event.KeyF5,
	97:  event.KeyF6,
	98:  event.KeyF7,
	99:  event.KeyF3,
	100: event.KeyF8,
	101: event.KeyF9,
	103: event.KeyF11,
	105: event.KeyF13,
	106: event.KeyF16,
	107: event.KeyF14,
	109: event.KeyF10,
	110: event.KeyContextMenu,
	111: event.KeyF12,
	113: event.KeyF15,
	114: event.KeyInsert, // help key on older hardware
	115: event.KeyHome,
	116: event.KeyPageUp,
	117: event.KeyDelete, // forward delete
	118: event.KeyF4,
	119: event.KeyEnd,
	120: event.KeyF2,
	121: event.KeyPageDown,
	122: event.KeyF1,
	123: event.KeyArrowLeft,
	124: event.KeyArrowRight,
	125: event.KeyArrowDown,
	126: event.KeyArrowUp,
}

var darwinReverse = invert(darwinKeys)

// FromDarwin maps a CGKeyCode to a logical key.
func FromDarwin(code uint32) event.Key {
	return lookup(darwinKeys, code)
}

// ToDarwin maps a logical key to a CGKeyCode for simulation.
func ToDarwin(key event.Key) (uint32, bool) {
	code, ok := darwinReverse[key]
	return code, ok
}

// ButtonFromDarwin maps a CGMouseButton value to a logical button.
func ButtonFromDarwin(code uint32) event.Button {
	switch code {
	case 0:
		return event.ButtonLeft
	case 1:
		return event.ButtonRight
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.Button4
	case 4:
		return event.Button5
	default:
		return event.ButtonUnknown
	}
}

// ButtonToDarwin maps a logical button to a CGMouseButton value.
func ButtonToDarwin(b event.Button) (uint32, bool) {
	switch b {
	case event.ButtonLeft:
		return 0, true
	case event.ButtonRight:
		return 1, true
	case event.ButtonMiddle:
		return 2, true
	case event.Button4:
		return 3, true
	case event.Button5:
		return 4, true
	default:
		return 0, false
	}
}
