package calc

import "fmt"

const (
	MemClear MemOp = iota // MC
	MemRecall             // MR
	MemAdd                // M+
	MemSub                // M-
	MemStore              // STO
	MemRecallVar          // RCL
	numMemOps
)

// MemOp is an operation on the memory register or the variable store.
type MemOp int

// DefaultVar is the variable used by STO and RCL.
const DefaultVar = "A"

var memOpNames = [numMemOps]string{
	MemClear:     "MC",
	MemRecall:    "MR",
	MemAdd:       "M+",
	MemSub:       "M-",
	MemStore:     "STO",
	MemRecallVar: "RCL",
}

func (op MemOp) String() string {
	if op < 0 || op >= numMemOps {
		panic("unknown memory op")
	}
	return memOpNames[op]
}

// ParseMemOp resolves a memory key label such as "M+" or "STO".
func ParseMemOp(name string) (MemOp, error) {
	for op, n := range memOpNames {
		if n == name {
			return MemOp(op), nil
		}
	}
	return 0, fmt.Errorf("unknown memory operation %q", name)
}

// MemoryOp runs a memory key. It never touches the pending operation and
// never writes history.
func (c *Calculator) MemoryOp(op MemOp) {
	switch op {
	case MemClear:
		c.memory = 0
	case MemRecall:
		c.load(c.memory)
	case MemAdd:
		c.memory += c.Value()
	case MemSub:
		c.memory -= c.Value()
	case MemStore:
		c.Store(DefaultVar)
	case MemRecallVar:
		c.Recall(DefaultVar)
	default:
		panic(fmt.Errorf("invalid memory op %d", op))
	}
}

// Memory returns the memory register.
func (c *Calculator) Memory() float64 { return c.memory }

// Store writes the display value into variable name.
func (c *Calculator) Store(name string) {
	c.vars[name] = c.Value()
}

// Recall shows variable name on the display. Unset variables are zero.
func (c *Calculator) Recall(name string) {
	c.load(c.vars[name])
}

// Variable returns the value of a stored variable.
func (c *Calculator) Variable(name string) (float64, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// load shows v without treating it as an evaluation.
func (c *Calculator) load(v float64) {
	c.show(v)
	c.operand = true
}
