package main

import (
	"gioui.org/io/key"

	"github.com/fjl/gio-scicalc/internal/calc"
)

// keySet is the set of keys the calculator listens for.
// Parentheses can't be expressed in a key.Set and are only reachable by button.
const keySet = "(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,^,%,!,=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]"

// keyAction maps a key event to a calculator action.
// It returns nil for events the calculator does not handle.
func keyAction(e key.Event) calc.Action {
	if e.State == key.Release {
		return nil
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return calc.Digit(e.Name[0])
	case ".":
		return calc.Decimal{}
	case "+":
		return calc.SetOp(calc.OpAdd)
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			return calc.Apply(calc.FuncNegate)
		}
		return calc.SetOp(calc.OpSub)
	case "*":
		return calc.SetOp(calc.OpMul)
	case "/":
		return calc.SetOp(calc.OpDiv)
	case "^":
		return calc.SetOp(calc.OpPow)
	case "%":
		return calc.Apply(calc.FuncPercent)
	case "!":
		return calc.Apply(calc.FuncFactorial)
	case "=", key.NameEnter, key.NameReturn:
		return calc.Evaluate{}
	case key.NameDeleteBackward:
		return calc.Backspace{}
	case key.NameDeleteForward:
		return calc.ClearEntry{}
	case key.NameEscape:
		return calc.ClearAll{}
	}
	return nil
}
