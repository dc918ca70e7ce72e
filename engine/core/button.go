package core

// Button identifies a keyboard key or a mouse button. The set is closed:
// platform adapters translate native codes into it and map anything they
// cannot name to ButtonUnknown.
type Button uint8

const (
	ButtonUnknown Button = iota

	MouseLeft
	MouseRight
	MouseMiddle
	Mouse4
	Mouse5
	Mouse6
	Mouse7
	Mouse8

	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySemicolon
	KeyEquals
	KeyA
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
	KeyBracketLeft
	KeyBackslash
	KeyBracketRight
	KeyTilde
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyArrowRight
	KeyArrowLeft
	KeyArrowDown
	KeyArrowUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
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
	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9
	KeyNumPadDecimal
	KeyNumPadDivide
	KeyNumPadMultiply
	KeyNumPadSubtract
	KeyNumPadAdd
	KeyNumPadEnter
	KeyNumPadEquals
	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
	KeyMenu

	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonUnknown: "Unknown",
	MouseLeft: "MouseLeft", MouseRight: "MouseRight", MouseMiddle: "MouseMiddle",
	Mouse4: "Mouse4", Mouse5: "Mouse5", Mouse6: "Mouse6", Mouse7: "Mouse7", Mouse8: "Mouse8",
	KeySpace: "Space", KeyApostrophe: "Apostrophe", KeyComma: "Comma", KeyMinus: "Minus",
	KeyPeriod: "Period", KeySlash: "Slash",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeySemicolon: "Semicolon", KeyEquals: "Equals",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",
	KeyBracketLeft: "BracketLeft", KeyBackslash: "Backslash", KeyBracketRight: "BracketRight",
	KeyTilde: "Tilde", KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyArrowRight: "ArrowRight", KeyArrowLeft: "ArrowLeft", KeyArrowDown: "ArrowDown", KeyArrowUp: "ArrowUp",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyHome: "Home", KeyEnd: "End",
	KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock", KeyNumLock: "NumLock",
	KeyPrintScreen: "PrintScreen", KeyPause: "Pause",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyNumPad0: "NumPad0", KeyNumPad1: "NumPad1", KeyNumPad2: "NumPad2", KeyNumPad3: "NumPad3",
	KeyNumPad4: "NumPad4", KeyNumPad5: "NumPad5", KeyNumPad6: "NumPad6", KeyNumPad7: "NumPad7",
	KeyNumPad8: "NumPad8", KeyNumPad9: "NumPad9",
	KeyNumPadDecimal: "NumPadDecimal", KeyNumPadDivide: "NumPadDivide",
	KeyNumPadMultiply: "NumPadMultiply", KeyNumPadSubtract: "NumPadSubtract",
	KeyNumPadAdd: "NumPadAdd", KeyNumPadEnter: "NumPadEnter", KeyNumPadEquals: "NumPadEquals",
	KeyLeftShift: "LeftShift", KeyLeftCtrl: "LeftCtrl", KeyLeftAlt: "LeftAlt", KeyLeftSuper: "LeftSuper",
	KeyRightShift: "RightShift", KeyRightCtrl: "RightCtrl", KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper",
	KeyMenu: "Menu",
}

func (b Button) String() string {
	if b >= buttonCount {
		return "Button(?)"
	}
	return buttonNames[b]
}

// IsMouse reports whether b is one of the mouse buttons.
func (b Button) IsMouse() bool { return b >= MouseLeft && b <= Mouse8 }
