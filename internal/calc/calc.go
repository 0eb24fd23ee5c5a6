// Package calc implements the calculation core of a scientific calculator.
//
// A Calculator is an accumulator: digits build up the display string, an
// operator captures the display as the left operand, and the next operator
// or Evaluate applies it. Evaluation is strictly left to right. There is no
// operator precedence, and parentheses are only shown on the display, never
// evaluated.
//
// A Calculator is not safe for concurrent use. Each shell owns one and
// re-reads the display after every call.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// AngleMode selects how trigonometric functions interpret angles.
type AngleMode int

const (
	Deg AngleMode = iota
	Rad
)

func (m AngleMode) String() string {
	switch m {
	case Deg:
		return "deg"
	case Rad:
		return "rad"
	default:
		panic("unknown angle mode")
	}
}

// ParseAngleMode parses "deg" or "rad".
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "deg":
		return Deg, nil
	case "rad":
		return Rad, nil
	default:
		return Deg, fmt.Errorf("invalid angle mode %q (want deg or rad)", s)
	}
}

// Calculator holds the state of one calculator session.
type Calculator struct {
	input           string
	nextDigitResets bool
	parens          int

	// result is the unrounded value behind the display while it shows a
	// computed or recalled number. Typed entry clears hasResult.
	result    float64
	hasResult bool
	// operand is set once a right operand has been entered after an operator.
	operand bool

	pending  Op
	queued   float64
	hasQueue bool
	ans      float64

	angle   AngleMode
	memory  float64
	vars    map[string]float64
	history History
	now     func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock sets the clock used to timestamp history entries.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithAngleMode sets the initial angle mode.
func WithAngleMode(m AngleMode) Option {
	return func(c *Calculator) { c.angle = m }
}

// New creates a calculator showing "0".
func New(opts ...Option) *Calculator {
	c := &Calculator{
		input: "0",
		vars:  make(map[string]float64),
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// AppendDigit processes a digit key. Anything but '0'-'9' is ignored.
func (c *Calculator) AppendDigit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	switch {
	case c.nextDigitResets:
		c.input = string(d)
	case c.input == "0" || strings.HasSuffix(c.input, "(0"):
		c.input = c.input[:len(c.input)-1] + string(d)
	default:
		c.input += string(d)
	}
	c.edit()
}

// AppendDecimal inserts the decimal point unless the display already has one.
func (c *Calculator) AppendDecimal() {
	switch {
	case c.nextDigitResets:
		c.input = "0."
	case strings.IndexByte(c.input, '.') >= 0:
		return
	default:
		c.input += "."
	}
	c.edit()
}

// Backspace removes the last character of the entry.
// A displayed result is left alone.
func (c *Calculator) Backspace() {
	if c.nextDigitResets || c.input == "" {
		return
	}
	switch c.input[len(c.input)-1] {
	case '(':
		c.parens--
	case ')':
		c.parens++
	}
	c.input = c.input[:len(c.input)-1]
	if c.input == "" || c.input == "-" {
		c.input = "0"
	}
	c.edit()
}

// OpenParen shows "(" on the display. Parentheses are not evaluated.
func (c *Calculator) OpenParen() {
	if c.nextDigitResets || c.input == "0" {
		c.input = "("
	} else {
		c.input += "("
	}
	c.parens++
	c.edit()
}

// CloseParen shows ")" on the display.
func (c *Calculator) CloseParen() {
	c.input += ")"
	if c.parens > 0 {
		c.parens--
	}
	c.edit()
}

// ClearAll resets the display and drops any pending operation.
// Memory, variables and history survive.
func (c *Calculator) ClearAll() {
	c.input = "0"
	c.parens = 0
	c.pending = OpNone
	c.queued = 0
	c.hasQueue = false
	c.nextDigitResets = false
	c.hasResult = false
	c.operand = false
}

// ClearEntry resets the display only.
func (c *Calculator) ClearEntry() {
	c.input = "0"
	c.parens = 0
	c.edit()
}

// edit marks the display as typed entry.
func (c *Calculator) edit() {
	c.nextDigitResets = false
	c.hasResult = false
	c.operand = true
}

// ToggleAngleMode switches between degrees and radians.
func (c *Calculator) ToggleAngleMode() {
	if c.angle == Deg {
		c.angle = Rad
	} else {
		c.angle = Deg
	}
}

// SetAngleMode sets the angle mode.
func (c *Calculator) SetAngleMode(m AngleMode) { c.angle = m }

// Display returns the current display text.
func (c *Calculator) Display() string { return c.input }

// Value returns the numeric value of the display. For a computed result this
// is the unrounded value, not the 12 digits shown.
func (c *Calculator) Value() float64 {
	if c.hasResult {
		return c.result
	}
	return parse(c.input)
}

// AngleMode returns the current angle mode.
func (c *Calculator) AngleMode() AngleMode { return c.angle }

// Parens returns the number of unclosed parentheses.
func (c *Calculator) Parens() int { return c.parens }

// Ans returns the result of the most recent evaluation.
func (c *Calculator) Ans() float64 { return c.ans }

// Pending returns the queued operator and its left operand.
func (c *Calculator) Pending() (op Op, left float64, ok bool) {
	return c.pending, c.queued, c.hasQueue
}

// History returns the history log, newest first.
func (c *Calculator) History() []Entry { return c.history.Entries() }

// ClearHistory empties the history log.
func (c *Calculator) ClearHistory() { c.history.Clear() }

// setResult puts a computed value on the display.
func (c *Calculator) setResult(v float64) {
	c.show(v)
	c.ans = v
}

// show displays v and keeps it as the operand.
func (c *Calculator) show(v float64) {
	c.input = FormatNumber(v)
	c.result = v
	c.hasResult = true
	c.parens = 0
	c.nextDigitResets = true
}

// record adds a history entry for a completed evaluation.
func (c *Calculator) record(expr string, result float64) {
	c.history.add(Entry{
		Expression: expr,
		Result:     FormatNumber(result),
		Time:       c.now(),
	})
}

// parse reads the number at the start of a display string. Leading "(" are
// skipped and reading stops at the next parenthesis, so "(2(3" is 2.
// Anything unparseable counts as zero.
func parse(input string) float64 {
	s := strings.TrimLeft(input, "( ")
	if i := strings.IndexAny(s, "()"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v // ±Inf or 0
		}
		return 0
	}
	return v
}

// FormatNumber renders v the way the display shows it: rounded to 12
// significant digits, with exponent notation only for very large or very
// small magnitudes.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if abs := math.Abs(r); abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(r, 'e', -1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
