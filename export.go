package inputtap

import (
	"inputtap/internal/display"
	"inputtap/internal/event"
	"inputtap/internal/hook"
	"inputtap/internal/simulate"
)

// Aliases re-exporting the event model. The pipeline lives in internal
// packages; this is the whole public surface.

type (
	Event           = event.Event
	EventType       = event.Type
	Key             = event.Key
	Button          = event.Button
	ScrollDirection = event.ScrollDirection
	KeyboardData    = event.KeyboardData
	MouseData       = event.MouseData
	WheelData       = event.WheelData
	Mask            = event.Mask
	KeyInfo         = event.KeyInfo
	Category        = event.Category
)

// Event types.
const (
	HookEnabled   = event.HookEnabled
	HookDisabled  = event.HookDisabled
	KeyPressed    = event.KeyPressed
	KeyReleased   = event.KeyReleased
	KeyTyped      = event.KeyTyped
	MousePressed  = event.MousePressed
	MouseReleased = event.MouseReleased
	MouseClicked  = event.MouseClicked
	MouseMoved    = event.MouseMoved
	MouseDragged  = event.MouseDragged
	MouseWheel    = event.MouseWheel
)

// Mouse buttons.
const (
	ButtonLeft    = event.ButtonLeft
	ButtonRight   = event.ButtonRight
	ButtonMiddle  = event.ButtonMiddle
	Button4       = event.Button4
	Button5       = event.Button5
	ButtonUnknown = event.ButtonUnknown
)

// Scroll directions.
const (
	ScrollUp    = event.ScrollUp
	ScrollDown  = event.ScrollDown
	ScrollLeft  = event.ScrollLeft
	ScrollRight = event.ScrollRight
)

// Event masks.
const (
	MaskAll           = event.MaskAll
	MaskKeyboard      = event.MaskKeyboard
	MaskMouseButtons  = event.MaskMouseButtons
	MaskMouseMovement = event.MaskMouseMovement
	MaskMouseWheel    = event.MaskMouseWheel
	MaskMouseAll      = event.MaskMouseAll
)

// ComputeMask converts subscription pattern strings ("keyboard:*",
// "mouse:click", "mouse:move") into an event mask.
func ComputeMask(patterns []string) Mask {
	return event.ComputeMask(patterns)
}

// AllKeyInfo lists every named key with its display name and category.
func AllKeyInfo() []KeyInfo {
	return event.AllKeyInfo()
}

// KeyCount is the number of named Key values.
const KeyCount = event.KeyCount

// Keys.
const (
	KeyA = event.KeyA
	KeyB = event.KeyB
	KeyC = event.KeyC
	KeyD = event.KeyD
	KeyE = event.KeyE
	KeyF = event.KeyF
	KeyG = event.KeyG
	KeyH = event.KeyH
	KeyI = event.KeyI
	KeyJ = event.KeyJ
	KeyK = event.KeyK
	KeyL = event.KeyL
	KeyM = event.KeyM
	KeyN = event.KeyN
	KeyO = event.KeyO
	KeyP = event.KeyP
	KeyQ = event.KeyQ
	KeyR = event.KeyR
	KeyS = event.KeyS
	KeyT = event.KeyT
	KeyU = event.KeyU
	KeyV = event.KeyV
	KeyW = event.KeyW
	KeyX = event.KeyX
	KeyY = event.KeyY
	KeyZ = event.KeyZ

	KeyNum0 = event.KeyNum0
	KeyNum1 = event.KeyNum1
	KeyNum2 = event.KeyNum2
	KeyNum3 = event.KeyNum3
	KeyNum4 = event.KeyNum4
	KeyNum5 = event.KeyNum5
	KeyNum6 = event.KeyNum6
	KeyNum7 = event.KeyNum7
	KeyNum8 = event.KeyNum8
	KeyNum9 = event.KeyNum9

	KeyF1  = event.KeyF1
	KeyF2  = event.KeyF2
	KeyF3  = event.KeyF3
	KeyF4  = event.KeyF4
	KeyF5  = event.KeyF5
	KeyF6  = event.KeyF6
	KeyF7  = event.KeyF7
	KeyF8  = event.KeyF8
	KeyF9  = event.KeyF9
	KeyF10 = event.KeyF10
	KeyF11 = event.KeyF11
	KeyF12 = event.KeyF12

	KeyEscape       = event.KeyEscape
	KeySpace        = event.KeySpace
	KeyEnter        = event.KeyEnter
	KeyBackspace    = event.KeyBackspace
	KeyTab          = event.KeyTab
	KeyShiftLeft    = event.KeyShiftLeft
	KeyShiftRight   = event.KeyShiftRight
	KeyControlLeft  = event.KeyControlLeft
	KeyControlRight = event.KeyControlRight
	KeyAltLeft      = event.KeyAltLeft
	KeyAltRight     = event.KeyAltRight
	KeyMetaLeft     = event.KeyMetaLeft
	KeyMetaRight    = event.KeyMetaRight
	KeyCapsLock     = event.KeyCapsLock
	KeyDelete       = event.KeyDelete

	KeyArrowLeft  = event.KeyArrowLeft
	KeyArrowRight = event.KeyArrowRight
	KeyArrowUp    = event.KeyArrowUp
	KeyArrowDown  = event.KeyArrowDown

	KeyUnknown = event.KeyUnknown

	KeyInsert   = event.KeyInsert
	KeyHome     = event.KeyHome
	KeyEnd      = event.KeyEnd
	KeyPageUp   = event.KeyPageUp
	KeyPageDown = event.KeyPageDown

	KeyNumLock     = event.KeyNumLock
	KeyScrollLock  = event.KeyScrollLock
	KeyPrintScreen = event.KeyPrintScreen
	KeyPause       = event.KeyPause

	KeyGrave        = event.KeyGrave
	KeyMinus        = event.KeyMinus
	KeyEqual        = event.KeyEqual
	KeyBracketLeft  = event.KeyBracketLeft
	KeyBracketRight = event.KeyBracketRight
	KeyBackslash    = event.KeyBackslash
	KeySemicolon    = event.KeySemicolon
	KeyQuote        = event.KeyQuote
	KeyComma        = event.KeyComma
	KeyPeriod       = event.KeyPeriod
	KeySlash        = event.KeySlash

	KeyF13 = event.KeyF13
	KeyF14 = event.KeyF14
	KeyF15 = event.KeyF15
	KeyF16 = event.KeyF16
	KeyF17 = event.KeyF17
	KeyF18 = event.KeyF18
	KeyF19 = event.KeyF19
	KeyF20 = event.KeyF20
	KeyF21 = event.KeyF21
	KeyF22 = event.KeyF22
	KeyF23 = event.KeyF23
	KeyF24 = event.KeyF24

	KeyNumpad0        = event.KeyNumpad0
	KeyNumpad1        = event.KeyNumpad1
	KeyNumpad2        = event.KeyNumpad2
	KeyNumpad3        = event.KeyNumpad3
	KeyNumpad4        = event.KeyNumpad4
	KeyNumpad5        = event.KeyNumpad5
	KeyNumpad6        = event.KeyNumpad6
	KeyNumpad7        = event.KeyNumpad7
	KeyNumpad8        = event.KeyNumpad8
	KeyNumpad9        = event.KeyNumpad9
	KeyNumpadAdd      = event.KeyNumpadAdd
	KeyNumpadSubtract = event.KeyNumpadSubtract
	KeyNumpadMultiply = event.KeyNumpadMultiply
	KeyNumpadDivide   = event.KeyNumpadDivide
	KeyNumpadDecimal  = event.KeyNumpadDecimal
	KeyNumpadEnter    = event.KeyNumpadEnter
	KeyNumpadEqual    = event.KeyNumpadEqual

	KeyVolumeUp       = event.KeyVolumeUp
	KeyVolumeDown     = event.KeyVolumeDown
	KeyVolumeMute     = event.KeyVolumeMute
	KeyMediaPlayPause = event.KeyMediaPlayPause
	KeyMediaStop      = event.KeyMediaStop
	KeyMediaNext      = event.KeyMediaNext
	KeyMediaPrevious  = event.KeyMediaPrevious

	KeyBrowserBack      = event.KeyBrowserBack
	KeyBrowserForward   = event.KeyBrowserForward
	KeyBrowserRefresh   = event.KeyBrowserRefresh
	KeyBrowserStop      = event.KeyBrowserStop
	KeyBrowserSearch    = event.KeyBrowserSearch
	KeyBrowserFavorites = event.KeyBrowserFavorites
	KeyBrowserHome      = event.KeyBrowserHome

	KeyLaunchMail = event.KeyLaunchMail
	KeyLaunchApp1 = event.KeyLaunchApp1
	KeyLaunchApp2 = event.KeyLaunchApp2

	KeyIntlBackslash = event.KeyIntlBackslash
	KeyIntlYen       = event.KeyIntlYen
	KeyIntlRo        = event.KeyIntlRo

	KeyContextMenu = event.KeyContextMenu
)

// Failure classes.
var (
	ErrPermissionDenied        = hook.ErrPermissionDenied
	ErrHookInstallFailed       = hook.ErrHookInstallFailed
	ErrDisplayConnectionFailed = hook.ErrDisplayConnectionFailed
	ErrAlreadyRunning          = hook.ErrAlreadyRunning
	ErrNotAvailable            = hook.ErrNotAvailable
	ErrSimulationFailed        = simulate.ErrSimulationFailed
	ErrDisplayNotFound         = display.ErrNotFound
)

// Display model.
type (
	Display = display.Display
	Rect    = display.Rect
)
