package calc

import (
	"fmt"
	"math"
)

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow    // x^y: left raised to right
	OpRevPow // y^x: right raised to left
	OpComb   // nCr
	OpPerm   // nPr
	numOps
)

// Op is a binary operator.
type Op int

func (op Op) String() string {
	switch op {
	case OpNone:
		return "nop"
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpPow:
		return "x^y"
	case OpRevPow:
		return "y^x"
	case OpComb:
		return "nCr"
	case OpPerm:
		return "nPr"
	default:
		panic("unknown op")
	}
}

// apply computes the operation.
func (op Op) apply(x, y float64) float64 {
	switch op {
	case OpNone:
		return y
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpPow:
		return math.Pow(x, y)
	case OpRevPow:
		return math.Pow(y, x)
	case OpComb:
		return Combination(x, y)
	case OpPerm:
		return Permutation(x, y)
	default:
		panic("unknown op")
	}
}

// expr renders "x op y" for the history log.
func (op Op) expr(x, y float64) string {
	switch op {
	case OpPow:
		return FormatNumber(x) + " ^ " + FormatNumber(y)
	case OpRevPow:
		return FormatNumber(y) + " ^ " + FormatNumber(x)
	default:
		return FormatNumber(x) + " " + op.String() + " " + FormatNumber(y)
	}
}

var opNames = map[string]Op{
	"+":   OpAdd,
	"-":   OpSub,
	"−":   OpSub,
	"*":   OpMul,
	"×":   OpMul,
	"x":   OpMul,
	"/":   OpDiv,
	"÷":   OpDiv,
	"^":   OpPow,
	"x^y": OpPow,
	"y^x": OpRevPow,
	"nCr": OpComb,
	"nPr": OpPerm,
}

// ParseOp resolves an operator symbol such as "+", "×" or "nCr".
func ParseOp(sym string) (Op, error) {
	op, ok := opNames[sym]
	if !ok {
		return OpNone, fmt.Errorf("unknown operator %q", sym)
	}
	return op, nil
}

// SetOperator queues op. If an operation is already pending and a right
// operand has been entered since, the pending pair is evaluated first and
// its result becomes the new left operand. A function result or a recalled
// value counts as an operand. Pressing operators back to back just replaces the
// queued one.
func (c *Calculator) SetOperator(op Op) {
	if op <= OpNone || op >= numOps {
		panic(fmt.Errorf("invalid operator %d", op))
	}
	switch {
	case c.hasQueue && !c.operand:
		// No new operand yet.
	case c.hasQueue:
		result := c.pending.apply(c.queued, c.Value())
		c.setResult(result)
		c.queued = result
	default:
		c.queued = c.Value()
	}
	c.pending = op
	c.hasQueue = true
	c.nextDigitResets = true
	c.operand = false
}

// Evaluate applies the pending operation to the display value and records
// it in the history. It does nothing when no operation is pending.
func (c *Calculator) Evaluate() {
	if !c.hasQueue {
		return
	}
	x, y := c.queued, c.Value()
	result := c.pending.apply(x, y)
	c.record(c.pending.expr(x, y), result)
	c.setResult(result)
	c.pending = OpNone
	c.queued = 0
	c.hasQueue = false
	c.operand = false
}
