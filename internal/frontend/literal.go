package frontend

import "sxc/internal/symtab"

// ClassifyLiteral reports the terminal type literal syntax assigns to text,
// if any: "true"/"false" are bool, a run of decimal digits is i32, and a run
// of digits, a single '.', then more digits is f32. Anything else is not a
// literal and belongs to some other definition or call instead.
func ClassifyLiteral(text string) (symtab.Terminal, bool) {
	if text == "true" || text == "false" {
		return symtab.Bool, true
	}
	if isInteger(text) {
		return symtab.I32, true
	}
	if isFloat(text) {
		return symtab.F32, true
	}
	return 0, false
}

func isInteger(text string) bool {
	if text == "" {
		return false
	}
	for _, ch := range text {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// isFloat accepts exactly one or more digits, a single '.', then one or more
// digits; anything else (no dot, no leading digit, trailing dot, two dots)
// is rejected.
func isFloat(text string) bool {
	const (
		stateLeadingInt = iota
		stateInt
		stateLeadingFrac
		stateFrac
	)
	state := stateLeadingInt
	for _, ch := range text {
		switch {
		case ch == '.':
			if state != stateInt {
				return false
			}
			state = stateLeadingFrac
		case ch >= '0' && ch <= '9':
			switch state {
			case stateLeadingInt:
				state = stateInt
			case stateLeadingFrac:
				state = stateFrac
			}
		default:
			return false
		}
	}
	return state == stateFrac
}
