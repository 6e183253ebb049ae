package input

import "fmt"

// KeyCode identifies a physical key. Values follow the virtual-key layout so
// they fit a [256]-sized table; the platform layer maps its native key codes
// onto these.
type KeyCode uint16

const (
	KEY_UNKNOWN      KeyCode = 0x00
	KEY_BACKSPACE    KeyCode = 0x08
	KEY_TAB          KeyCode = 0x09
	KEY_ENTER        KeyCode = 0x0D
	KEY_PAUSE        KeyCode = 0x13
	KEY_CAPITAL      KeyCode = 0x14
	KEY_ESCAPE       KeyCode = 0x1B
	KEY_SPACE        KeyCode = 0x20
	KEY_PRIOR        KeyCode = 0x21
	KEY_NEXT         KeyCode = 0x22
	KEY_END          KeyCode = 0x23
	KEY_HOME         KeyCode = 0x24
	KEY_LEFT         KeyCode = 0x25
	KEY_UP           KeyCode = 0x26
	KEY_RIGHT        KeyCode = 0x27
	KEY_DOWN         KeyCode = 0x28
	KEY_PRINT        KeyCode = 0x2A
	KEY_INSERT       KeyCode = 0x2D
	KEY_DELETE       KeyCode = 0x2E
	KEY_0            KeyCode = 0x30
	KEY_1            KeyCode = 0x31
	KEY_2            KeyCode = 0x32
	KEY_3            KeyCode = 0x33
	KEY_4            KeyCode = 0x34
	KEY_5            KeyCode = 0x35
	KEY_6            KeyCode = 0x36
	KEY_7            KeyCode = 0x37
	KEY_8            KeyCode = 0x38
	KEY_9            KeyCode = 0x39
	KEY_A            KeyCode = 0x41
	KEY_B            KeyCode = 0x42
	KEY_C            KeyCode = 0x43
	KEY_D            KeyCode = 0x44
	KEY_E            KeyCode = 0x45
	KEY_F            KeyCode = 0x46
	KEY_G            KeyCode = 0x47
	KEY_H            KeyCode = 0x48
	KEY_I            KeyCode = 0x49
	KEY_J            KeyCode = 0x4A
	KEY_K            KeyCode = 0x4B
	KEY_L            KeyCode = 0x4C
	KEY_M            KeyCode = 0x4D
	KEY_N            KeyCode = 0x4E
	KEY_O            KeyCode = 0x4F
	KEY_P            KeyCode = 0x50
	KEY_Q            KeyCode = 0x51
	KEY_R            KeyCode = 0x52
	KEY_S            KeyCode = 0x53
	KEY_T            KeyCode = 0x54
	KEY_U            KeyCode = 0x55
	KEY_V            KeyCode = 0x56
	KEY_W            KeyCode = 0x57
	KEY_X            KeyCode = 0x58
	KEY_Y            KeyCode = 0x59
	KEY_Z            KeyCode = 0x5A
	KEY_LSUPER       KeyCode = 0x5B
	KEY_RSUPER       KeyCode = 0x5C
	KEY_MENU         KeyCode = 0x5D
	KEY_NUMPAD0      KeyCode = 0x60
	KEY_NUMPAD1      KeyCode = 0x61
	KEY_NUMPAD2      KeyCode = 0x62
	KEY_NUMPAD3      KeyCode = 0x63
	KEY_NUMPAD4      KeyCode = 0x64
	KEY_NUMPAD5      KeyCode = 0x65
	KEY_NUMPAD6      KeyCode = 0x66
	KEY_NUMPAD7      KeyCode = 0x67
	KEY_NUMPAD8      KeyCode = 0x68
	KEY_NUMPAD9      KeyCode = 0x69
	KEY_MULTIPLY     KeyCode = 0x6A
	KEY_ADD          KeyCode = 0x6B
	KEY_SUBTRACT     KeyCode = 0x6D
	KEY_DECIMAL      KeyCode = 0x6E
	KEY_DIVIDE       KeyCode = 0x6F
	KEY_F1           KeyCode = 0x70
	KEY_F2           KeyCode = 0x71
	KEY_F3           KeyCode = 0x72
	KEY_F4           KeyCode = 0x73
	KEY_F5           KeyCode = 0x74
	KEY_F6           KeyCode = 0x75
	KEY_F7           KeyCode = 0x76
	KEY_F8           KeyCode = 0x77
	KEY_F9           KeyCode = 0x78
	KEY_F10          KeyCode = 0x79
	KEY_F11          KeyCode = 0x7A
	KEY_F12          KeyCode = 0x7B
	KEY_NUMLOCK      KeyCode = 0x90
	KEY_SCROLL       KeyCode = 0x91
	KEY_NUMPAD_EQUAL KeyCode = 0x92
	KEY_LSHIFT       KeyCode = 0xA0
	KEY_RSHIFT       KeyCode = 0xA1
	KEY_LCONTROL     KeyCode = 0xA2
	KEY_RCONTROL     KeyCode = 0xA3
	KEY_LALT         KeyCode = 0xA4
	KEY_RALT         KeyCode = 0xA5
	KEY_SEMICOLON    KeyCode = 0xBA
	KEY_EQUAL        KeyCode = 0xBB
	KEY_COMMA        KeyCode = 0xBC
	KEY_MINUS        KeyCode = 0xBD
	KEY_PERIOD       KeyCode = 0xBE
	KEY_SLASH        KeyCode = 0xBF
	KEY_GRAVE        KeyCode = 0xC0
	KEY_LBRACKET     KeyCode = 0xDB
	KEY_BACKSLASH    KeyCode = 0xDC
	KEY_RBRACKET     KeyCode = 0xDD
	KEY_APOSTROPHE   KeyCode = 0xDE
)

const KEYS_MAX_KEYS = 256

var keyNames = map[KeyCode]string{
	KEY_BACKSPACE:    "Backspace",
	KEY_TAB:          "Tab",
	KEY_ENTER:        "Enter",
	KEY_PAUSE:        "Pause",
	KEY_CAPITAL:      "CapsLock",
	KEY_ESCAPE:       "Escape",
	KEY_SPACE:        "Space",
	KEY_PRIOR:        "PageUp",
	KEY_NEXT:         "PageDown",
	KEY_END:          "End",
	KEY_HOME:         "Home",
	KEY_LEFT:         "Left",
	KEY_UP:           "Up",
	KEY_RIGHT:        "Right",
	KEY_DOWN:         "Down",
	KEY_PRINT:        "Print",
	KEY_INSERT:       "Insert",
	KEY_DELETE:       "Delete",
	KEY_0:            "0",
	KEY_1:            "1",
	KEY_2:            "2",
	KEY_3:            "3",
	KEY_4:            "4",
	KEY_5:            "5",
	KEY_6:            "6",
	KEY_7:            "7",
	KEY_8:            "8",
	KEY_9:            "9",
	KEY_A:            "A",
	KEY_B:            "B",
	KEY_C:            "C",
	KEY_D:            "D",
	KEY_E:            "E",
	KEY_F:            "F",
	KEY_G:            "G",
	KEY_H:            "H",
	KEY_I:            "I",
	KEY_J:            "J",
	KEY_K:            "K",
	KEY_L:            "L",
	KEY_M:            "M",
	KEY_N:            "N",
	KEY_O:            "O",
	KEY_P:            "P",
	KEY_Q:            "Q",
	KEY_R:            "R",
	KEY_S:            "S",
	KEY_T:            "T",
	KEY_U:            "U",
	KEY_V:            "V",
	KEY_W:            "W",
	KEY_X:            "X",
	KEY_Y:            "Y",
	KEY_Z:            "Z",
	KEY_LSUPER:       "LeftSuper",
	KEY_RSUPER:       "RightSuper",
	KEY_MENU:         "Menu",
	KEY_NUMPAD0:      "Numpad0",
	KEY_NUMPAD1:      "Numpad1",
	KEY_NUMPAD2:      "Numpad2",
	KEY_NUMPAD3:      "Numpad3",
	KEY_NUMPAD4:      "Numpad4",
	KEY_NUMPAD5:      "Numpad5",
	KEY_NUMPAD6:      "Numpad6",
	KEY_NUMPAD7:      "Numpad7",
	KEY_NUMPAD8:      "Numpad8",
	KEY_NUMPAD9:      "Numpad9",
	KEY_MULTIPLY:     "NumpadMultiply",
	KEY_ADD:          "NumpadAdd",
	KEY_SUBTRACT:     "NumpadSubtract",
	KEY_DECIMAL:      "NumpadDecimal",
	KEY_DIVIDE:       "NumpadDivide",
	KEY_F1:           "F1",
	KEY_F2:           "F2",
	KEY_F3:           "F3",
	KEY_F4:           "F4",
	KEY_F5:           "F5",
	KEY_F6:           "F6",
	KEY_F7:           "F7",
	KEY_F8:           "F8",
	KEY_F9:           "F9",
	KEY_F10:          "F10",
	KEY_F11:          "F11",
	KEY_F12:          "F12",
	KEY_NUMLOCK:      "NumLock",
	KEY_SCROLL:       "ScrollLock",
	KEY_NUMPAD_EQUAL: "NumpadEqual",
	KEY_LSHIFT:       "LeftShift",
	KEY_RSHIFT:       "RightShift",
	KEY_LCONTROL:     "LeftControl",
	KEY_RCONTROL:     "RightControl",
	KEY_LALT:         "LeftAlt",
	KEY_RALT:         "RightAlt",
	KEY_SEMICOLON:    "Semicolon",
	KEY_EQUAL:        "Equal",
	KEY_COMMA:        "Comma",
	KEY_MINUS:        "Minus",
	KEY_PERIOD:       "Period",
	KEY_SLASH:        "Slash",
	KEY_GRAVE:        "Grave",
	KEY_LBRACKET:     "LeftBracket",
	KEY_BACKSLASH:    "Backslash",
	KEY_RBRACKET:     "RightBracket",
	KEY_APOSTROPHE:   "Apostrophe",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%02X)", uint16(k))
}

// Valid reports whether k is a known key.
func (k KeyCode) Valid() bool {
	_, ok := keyNames[k]
	return ok
}
