package calc

import "fmt"

// Action is a message a shell sends to the calculator. The set of actions is
// closed; see the types below.
type Action interface {
	apply(c *Calculator)
}

type (
	// Digit enters a digit '0'-'9'.
	Digit byte
	// Decimal enters the decimal point.
	Decimal struct{}
	// SetOp queues a binary operator.
	SetOp Op
	// Evaluate evaluates the pending operation (=).
	Evaluate struct{}
	// Apply applies a scientific function.
	Apply Func
	// Memory runs a memory key.
	Memory MemOp
	// ToggleAngle switches between degrees and radians.
	ToggleAngle struct{}
	// ClearAll is AC.
	ClearAll struct{}
	// ClearEntry is CE.
	ClearEntry struct{}
	// Backspace deletes the last entered character.
	Backspace struct{}
	// Paren enters "(" when Open is set, ")" otherwise.
	Paren struct{ Open bool }
)

func (d Digit) apply(c *Calculator) { c.AppendDigit(byte(d)) }
func (Decimal) apply(c *Calculator) { c.AppendDecimal() }
func (op SetOp) apply(c *Calculator) { c.SetOperator(Op(op)) }
func (Evaluate) apply(c *Calculator) { c.Evaluate() }
func (f Apply) apply(c *Calculator) { c.ApplyFunction(Func(f)) }
func (m Memory) apply(c *Calculator) { c.MemoryOp(MemOp(m)) }
func (ToggleAngle) apply(c *Calculator) { c.ToggleAngleMode() }
func (ClearAll) apply(c *Calculator) { c.ClearAll() }
func (ClearEntry) apply(c *Calculator) { c.ClearEntry() }
func (Backspace) apply(c *Calculator) { c.Backspace() }

func (p Paren) apply(c *Calculator) {
	if p.Open {
		c.OpenParen()
	} else {
		c.CloseParen()
	}
}

// Do runs a single action to completion.
func (c *Calculator) Do(a Action) {
	a.apply(c)
}

var actionNames = map[string]Action{
	".":   Decimal{},
	"=":   Evaluate{},
	"AC":  ClearAll{},
	"CE":  ClearEntry{},
	"DEL": Backspace{},
	"⌫":   Backspace{},
	"(":   Paren{Open: true},
	")":   Paren{Open: false},
	"DEG": ToggleAngle{},
	"RAD": ToggleAngle{},
}

// ParseAction maps a token to an action. Tokens are button labels:
// a digit, ".", "=", "AC", "CE", "DEL", "(", ")", "DEG"/"RAD",
// an operator (see ParseOp), a function (see ParseFunc) or a memory key
// (see ParseMemOp).
func ParseAction(token string) (Action, error) {
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		return Digit(token[0]), nil
	}
	if a, ok := actionNames[token]; ok {
		return a, nil
	}
	if op, err := ParseOp(token); err == nil {
		return SetOp(op), nil
	}
	if f, err := ParseFunc(token); err == nil {
		return Apply(f), nil
	}
	if m, err := ParseMemOp(token); err == nil {
		return Memory(m), nil
	}
	return nil, fmt.Errorf("unknown key %q", token)
}
