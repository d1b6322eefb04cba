package keycode

import "inputtap/internal/event"

// windowsKeys maps virtual-key codes to logical keys. Left/right variants
// (VK_LSHIFT etc.) are what the low-level hook reports; the generic codes
// are included for callers translating WM_KEYDOWN wParam values directly.
var windowsKeys = map[uint32]event.Key{
	0x08: event.KeyBackspace,
	0x09: event.KeyTab,
	0x0D: event.KeyEnter,
	0x10: event.KeyShiftLeft,   // generic VK_SHIFT
	0x11: event.KeyControlLeft, // generic VK_CONTROL
	0x12: event.KeyAltLeft,     // generic VK_MENU
	0x13: event.KeyPause,
	0x14: event.KeyCapsLock,
	0x1B: event.KeyEscape,
	0x20: event.KeySpace,
	0x21: event.KeyPageUp,
	0x22: event.KeyPageDown,
	0x23: event.KeyEnd,
	0x24: event.KeyHome,
	0x25: event.KeyArrowLeft,
	0x26: event.KeyArrowUp,
	0x27: event.KeyArrowRight,
	0x28: event.KeyArrowDown,
	0x2C: event.KeyPrintScreen,
	0x2D: event.KeyInsert,
	0x2E: event.KeyDelete,

	0x30: event.KeyNum0,
	0x31: event.KeyNum1,
	0x32: event.KeyNum2,
	0x33: event.KeyNum3,
	0x34: event.KeyNum4,
	0x35: event.KeyNum5,
	0x36: event.KeyNum6,
	0x37: event.KeyNum7,
	0x38: event.KeyNum8,
	0x39: event.KeyNum9,

	0x41: event.KeyA,
	0x42: event.KeyB,
	0x43: event.KeyC,
	0x44: event.KeyD,
	0x45: event.KeyE,
	0x46: event.KeyF,
	0x47: event.KeyG,
	0x48: event.KeyH,
	0x49: event.KeyI,
	0x4A: event.KeyJ,
	0x4B: event.KeyK,
	0x4C: event.KeyL,
	0x4D: event.KeyM,
	0x4E: event.KeyN,
	0x4F: event.KeyO,
	0x50: event.KeyP,
	0x51: event.KeyQ,
	0x52: event.KeyR,
	0x53: event.KeyS,
	0x54: event.KeyT,
	0x55: event.KeyU,
	0x56: event.KeyV,
	0x57: event.KeyW,
	0x58: event.KeyX,
	0x59: event.KeyY,
	0x5A: event.KeyZ,

	0x5B: event.KeyMetaLeft,
	0x5C: event.KeyMetaRight,
	0x5D: event.KeyContextMenu,

	0x60: event.KeyNumpad0,
	0x61: event.KeyNumpad1,
	0x62: event.KeyNumpad2,
	0x63: event.KeyNumpad3,
	0x64: event.KeyNumpad4,
	0x65: event.KeyNumpad5,
	0x66: event.KeyNumpad6,
	0x67: event.KeyNumpad7,
	0x68: event.KeyNumpad8,
	0x69: event.KeyNumpad9,
	0x6A: event.KeyNumpadMultiply,
	0x6B: event.KeyNumpadAdd,
	0x6D: event.KeyNumpadSubtract,
	0x6E: event.KeyNumpadDecimal,
	0x6F: event.KeyNumpadDivide,

	0x70: event.KeyF1,
	0x71: event.KeyF2,
	0x72: event.KeyF3,
	0x73: event.KeyF4,
	0x74: event.KeyF5,
	0x75: event.KeyF6,
	0x76: event.KeyF7,
	0x77: event.KeyF8,
	0x78: event.KeyF9,
	0x79: event.KeyF10,
	0x7A: event.KeyF11,
	0x7B: event.KeyF12,
	0x7C: event.KeyF13,
	0x7D: event.KeyF14,
	0x7E: event.KeyF15,
	0x7F: event.KeyF16,
	0x80: event.KeyF17,
	0x81: event.KeyF18,
	0x82: event.KeyF19,
	0x83: event.KeyF20,
	0x84: event.KeyF21,
	0x85: event.KeyF22,
	0x86: event.KeyF23,
	0x87: event.KeyF24,

	0x90: event.KeyNumLock,
	0x91: event.KeyScrollLock,

	0xA0: event.KeyShiftLeft,
	0xA1: event.KeyShiftRight,
	0xA2: event.KeyControlLeft,
	0xA3: event.KeyControlRight,
	0xA4: event.KeyAltLeft,
	0xA5: event.KeyAltRight,

	0xA6: event.KeyBrowserBack,
	0xA7: event.KeyBrowserForward,
	0xA8: event.KeyBrowserRefresh,
	0xA9: event.KeyBrowserStop,
	0xAA: event.KeyBrowserSearch,
	0xAB: event.KeyBrowserFavorites,
	0xAC: event.KeyBrowserHome,

	0xAD: event.KeyVolumeMute,
	0xAE: event.KeyVolumeDown,
	0xAF: event.KeyVolumeUp,
	0xB0: event.KeyMediaNext,
	0xB1: event.KeyMediaPrevious,
	0xB2: event.KeyMediaStop,
	0xB3: event.KeyMediaPlayPause,
	0xB4: event.KeyLaunchMail,
	0xB6: event.KeyLaunchApp1,
	0xB7: event.KeyLaunchApp2,

	0xBA: event.KeySemicolon,
	0xBB: event.KeyEqual,
	0xBC: event.KeyComma,
	0xBD: event.KeyMinus,
	0xBE: event.KeyPeriod,
	0xBF: event.KeySlash,
	0xC0: event.KeyGrave,
	0xDB: event.KeyBracketLeft,
	0xDC: event.KeyBackslash,
	0xDD: event.KeyBracketRight,
	0xDE: event.KeyQuote,
	0xE2: event.KeyIntlBackslash, // VK_OEM_102
}

var windowsReverse = invert(windowsKeys)

// FromWindows maps a virtual-key code to a logical key.
func FromWindows(vk uint32) event.Key {
	return lookup(windowsKeys, vk)
}

// ToWindows maps a logical key to a virtual-key code for SendInput.
func ToWindows(key event.Key) (uint32, bool) {
	code, ok := windowsReverse[key]
	return code, ok
}
