package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/strata/engine/core"
)

var keyTable = map[glfw.Key]core.Button{
	glfw.KeySpace:      core.KeySpace,
	glfw.KeyApostrophe: core.KeyApostrophe,
	glfw.KeyComma:      core.KeyComma,
	glfw.KeyMinus:      core.KeyMinus,
	glfw.KeyPeriod:     core.KeyPeriod,
	glfw.KeySlash:      core.KeySlash,
	glfw.Key0:          core.Key0,
	glfw.Key1:          core.Key1,
	glfw.Key2:          core.Key2,
	glfw.Key3:          core.Key3,
	glfw.Key4:          core.Key4,
	glfw.Key5:          core.Key5,
	glfw.Key6:          core.Key6,
	glfw.Key7:          core.Key7,
	glfw.Key8:          core.Key8,
	glfw.Key9:          core.Key9,
	glfw.KeySemicolon:  core.KeySemicolon,
	glfw.KeyEqual:      core.KeyEquals,
	glfw.KeyA:          core.KeyA,
	glfw.KeyB:          core.KeyB,
	glfw.KeyC:          core.KeyC,
	glfw.KeyD:          core.KeyD,
	glfw.KeyE:          core.KeyE,
	glfw.KeyF:          core.KeyF,
	glfw.KeyG:          core.KeyG,
	glfw.KeyH:          core.KeyH,
	glfw.KeyI:          core.KeyI,
	glfw.KeyJ:          core.KeyJ,
	glfw.KeyK:          core.KeyK,
	glfw.KeyL:          core.KeyL,
	glfw.KeyM:          core.KeyM,
	glfw.KeyN:          core.KeyN,
	glfw.KeyO:          core.KeyO,
	glfw.KeyP:          core.KeyP,
	glfw.KeyQ:          core.KeyQ,
	glfw.KeyR:          core.KeyR,
	glfw.KeyS:          core.KeyS,
	glfw.KeyT:          core.KeyT,
	glfw.KeyU:          core.KeyU,
	glfw.KeyV:          core.KeyV,
	glfw.KeyW:          core.KeyW,
	glfw.KeyX:          core.KeyX,
	glfw.KeyY:          core.KeyY,
	glfw.KeyZ:          core.KeyZ,

	glfw.KeyLeftBracket:  core.KeyBracketLeft,
	glfw.KeyBackslash:    core.KeyBackslash,
	glfw.KeyRightBracket: core.KeyBracketRight,
	glfw.KeyGraveAccent:  core.KeyTilde,
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyRight:        core.KeyArrowRight,
	glfw.KeyLeft:         core.KeyArrowLeft,
	glfw.KeyDown:         core.KeyArrowDown,
	glfw.KeyUp:           core.KeyArrowUp,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyCapsLock:     core.KeyCapsLock,
	glfw.KeyScrollLock:   core.KeyScrollLock,
	glfw.KeyNumLock:      core.KeyNumLock,
	glfw.KeyPrintScreen:  core.KeyPrintScreen,
	glfw.KeyPause:        core.KeyPause,

	glfw.KeyF1:  core.KeyF1,
	glfw.KeyF2:  core.KeyF2,
	glfw.KeyF3:  core.KeyF3,
	glfw.KeyF4:  core.KeyF4,
	glfw.KeyF5:  core.KeyF5,
	glfw.KeyF6:  core.KeyF6,
	glfw.KeyF7:  core.KeyF7,
	glfw.KeyF8:  core.KeyF8,
	glfw.KeyF9:  core.KeyF9,
	glfw.KeyF10: core.KeyF10,
	glfw.KeyF11: core.KeyF11,
	glfw.KeyF12: core.KeyF12,

	glfw.KeyKP0:        core.KeyNumPad0,
	glfw.KeyKP1:        core.KeyNumPad1,
	glfw.KeyKP2:        core.KeyNumPad2,
	glfw.KeyKP3:        core.KeyNumPad3,
	glfw.KeyKP4:        core.KeyNumPad4,
	glfw.KeyKP5:        core.KeyNumPad5,
	glfw.KeyKP6:        core.KeyNumPad6,
	glfw.KeyKP7:        core.KeyNumPad7,
	glfw.KeyKP8:        core.KeyNumPad8,
	glfw.KeyKP9:        core.KeyNumPad9,
	glfw.KeyKPDecimal:  core.KeyNumPadDecimal,
	glfw.KeyKPDivide:   core.KeyNumPadDivide,
	glfw.KeyKPMultiply: core.KeyNumPadMultiply,
	glfw.KeyKPSubtract: core.KeyNumPadSubtract,
	glfw.KeyKPAdd:      core.KeyNumPadAdd,
	glfw.KeyKPEnter:    core.KeyNumPadEnter,
	glfw.KeyKPEqual:    core.KeyNumPadEquals,

	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyLeftControl:  core.KeyLeftCtrl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyRightControl: core.KeyRightCtrl,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyRightSuper:   core.KeyRightSuper,
	glfw.KeyMenu:         core.KeyMenu,
}

func translateKey(k glfw.Key) core.Button {
	if b, ok := keyTable[k]; ok {
		return b
	}
	return core.ButtonUnknown
}

func translateMouseButton(b glfw.MouseButton) core.Button {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft
	case glfw.MouseButtonRight:
		return core.MouseRight
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle
	case glfw.MouseButton4:
		return core.Mouse4
	case glfw.MouseButton5:
		return core.Mouse5
	case glfw.MouseButton6:
		return core.Mouse6
	case glfw.MouseButton7:
		return core.Mouse7
	case glfw.MouseButton8:
		return core.Mouse8
	default:
		return core.ButtonUnknown
	}
}
