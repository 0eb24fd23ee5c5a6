package calc

import (
	"math"
	"testing"
	"time"
)

func digits(c *Calculator, s string) {
	for i := range s {
		if s[i] == '.' {
			c.AppendDecimal()
		} else {
			c.AppendDigit(s[i])
		}
	}
}

func TestCalcInput(t *testing.T) {
	c := New()
	check(t, c, "0")
	// leading zero is replaced
	c.AppendDigit('0')
	c.AppendDigit('5')
	check(t, c, "5")
	digits(c, "23")
	check(t, c, "523")
	// redo last digit
	c.Backspace()
	c.AppendDigit('4')
	check(t, c, "524")
	// decimal point
	c.AppendDecimal()
	check(t, c, "524.")
	digits(c, "67")
	check(t, c, "524.67")
	// backspace decimals
	c.Backspace()
	check(t, c, "524.6")
	c.Backspace()
	check(t, c, "524.")
	c.Backspace()
	check(t, c, "524")
}

func TestCalcBadInput(t *testing.T) {
	c := New()
	digits(c, "123")
	c.AppendDigit('a')
	check(t, c, "123")
	c.AppendDecimal()
	check(t, c, "123.")
	c.AppendDigit('2')
	check(t, c, "123.2")
	c.AppendDecimal()
	check(t, c, "123.2")
}

func TestCalcBackspaceToZero(t *testing.T) {
	c := New()
	c.AppendDigit('7')
	c.Backspace()
	check(t, c, "0")
	c.Backspace()
	check(t, c, "0")

	digits(c, "5")
	c.ApplyFunction(FuncNegate)
	check(t, c, "-5")
	// results are not edited
	c.Backspace()
	check(t, c, "-5")
}

func TestCalcDecimalAfterResult(t *testing.T) {
	c := New()
	digits(c, "4")
	c.ApplyFunction(FuncSqrt)
	check(t, c, "2")
	c.AppendDecimal()
	c.AppendDigit('5')
	check(t, c, "0.5")
}

func TestCalcAdd(t *testing.T) {
	c := New()
	digits(c, "2")
	c.SetOperator(OpAdd)
	check(t, c, "2")
	digits(c, "3")
	check(t, c, "3")
	c.Evaluate()
	check(t, c, "5")

	h := c.History()
	if len(h) != 1 {
		t.Fatalf("wrong history length %d", len(h))
	}
	if h[0].Expression != "2 + 3" || h[0].Result != "5" {
		t.Fatalf("wrong history entry %+v", h[0])
	}
}

func TestCalcChainNoPrecedence(t *testing.T) {
	c := New()
	digits(c, "2")
	c.SetOperator(OpAdd)
	digits(c, "3")
	c.SetOperator(OpMul)
	// chained evaluation shows the intermediate result
	check(t, c, "5")
	digits(c, "4")
	c.Evaluate()
	check(t, c, "20")

	c.ClearAll()
	digits(c, "2")
	c.SetOperator(OpAdd)
	digits(c, "3")
	c.SetOperator(OpAdd)
	digits(c, "4")
	c.Evaluate()
	check(t, c, "9")

	// only = writes history
	if n := len(c.History()); n != 2 {
		t.Fatalf("wrong history length %d", n)
	}
}

func TestCalcDecimalDivide(t *testing.T) {
	c := New()
	digits(c, "134.2")
	c.SetOperator(OpDiv)
	check(t, c, "134.2")
	c.AppendDigit('2')
	check(t, c, "2")
	c.Evaluate()
	check(t, c, "67.1")
}

func TestCalcOpTwice(t *testing.T) {
	c := New()
	digits(c, "1334")
	c.SetOperator(OpDiv)
	c.SetOperator(OpDiv)
	check(t, c, "1334")
	c.Evaluate()
	check(t, c, "1")
}

func TestCalcOpReplaced(t *testing.T) {
	c := New()
	digits(c, "6")
	c.SetOperator(OpAdd)
	c.SetOperator(OpSub)
	digits(c, "2")
	c.Evaluate()
	check(t, c, "4")
}

func TestCalcDivideByZero(t *testing.T) {
	c := New()
	digits(c, "5")
	c.SetOperator(OpDiv)
	digits(c, "0")
	c.Evaluate()
	check(t, c, "Infinity")
	if h := c.History(); h[0].Expression != "5 ÷ 0" {
		t.Fatalf("wrong expression %q", h[0].Expression)
	}
	// Infinity keeps flowing through further operations.
	c.SetOperator(OpSub)
	c.MemoryOp(MemRecall)
	c.Evaluate()
	check(t, c, "Infinity")

	c.ClearAll()
	c.SetOperator(OpDiv)
	c.Evaluate()
	check(t, c, "NaN")
}

func TestCalcEvaluateWithoutPending(t *testing.T) {
	c := New()
	digits(c, "42")
	c.Evaluate()
	check(t, c, "42")
	if n := len(c.History()); n != 0 {
		t.Fatalf("history written without evaluation: %d entries", n)
	}
	c.SetOperator(OpMul)
	digits(c, "2")
	c.Evaluate()
	c.Evaluate()
	check(t, c, "84")
	if n := len(c.History()); n != 1 {
		t.Fatalf("wrong history length %d", n)
	}
}

func TestCalcFunctionResultIsOperand(t *testing.T) {
	c := New()
	digits(c, "2")
	c.SetOperator(OpAdd)
	digits(c, "9")
	c.ApplyFunction(FuncSqrt)
	c.SetOperator(OpAdd)
	// 2 + 3 was evaluated before the new operator was queued
	check(t, c, "5")
	if op, left, _ := c.Pending(); op != OpAdd || left != 5 {
		t.Fatalf("wrong pending operation %v %v", op, left)
	}
	digits(c, "4")
	c.Evaluate()
	check(t, c, "9")
}

func TestCalcResultPrecision(t *testing.T) {
	c := New()
	digits(c, "1")
	c.SetOperator(OpDiv)
	digits(c, "3")
	c.Evaluate()
	check(t, c, "0.333333333333")
	if v := c.Value(); v != 1.0/3 {
		t.Fatalf("result was rounded: %v", v)
	}
	c.SetOperator(OpMul)
	digits(c, "3")
	c.Evaluate()
	check(t, c, "1")

	c.ClearAll()
	digits(c, "2")
	c.ApplyFunction(FuncSqrt)
	c.ApplyFunction(FuncSquare)
	check(t, c, "2")

	// typed entry is read from the display again
	c.AppendDecimal()
	c.AppendDigit('5')
	if v := c.Value(); v != 0.5 {
		t.Fatalf("wrong value after typing %v", v)
	}
}

func TestCalcEvaluateAfterResultStartsFresh(t *testing.T) {
	c := New()
	digits(c, "8")
	c.SetOperator(OpSub)
	digits(c, "3")
	c.Evaluate()
	digits(c, "7")
	check(t, c, "7")
}

func TestCalcPowers(t *testing.T) {
	c := New()
	digits(c, "2")
	c.SetOperator(OpPow)
	digits(c, "10")
	c.Evaluate()
	check(t, c, "1024")
	if e := c.History()[0].Expression; e != "2 ^ 10" {
		t.Fatalf("wrong expression %q", e)
	}

	digits(c, "2")
	c.SetOperator(OpRevPow)
	digits(c, "10")
	c.Evaluate()
	check(t, c, "100")
	if e := c.History()[0].Expression; e != "10 ^ 2" {
		t.Fatalf("wrong expression %q", e)
	}
}

func TestCalcClearEntryKeepsPending(t *testing.T) {
	c := New()
	digits(c, "9")
	c.SetOperator(OpSub)
	digits(c, "5")
	c.ClearEntry()
	check(t, c, "0")
	digits(c, "4")
	c.Evaluate()
	check(t, c, "5")
}

func TestCalcClearAllDropsPending(t *testing.T) {
	c := New()
	digits(c, "9")
	c.SetOperator(OpSub)
	c.ClearAll()
	check(t, c, "0")
	if _, _, ok := c.Pending(); ok {
		t.Fatal("pending operation survived ClearAll")
	}
	digits(c, "4")
	c.Evaluate()
	check(t, c, "4")
}

func TestCalcParens(t *testing.T) {
	c := New()
	c.OpenParen()
	digits(c, "2")
	c.OpenParen()
	check(t, c, "(2(")
	if c.Parens() != 2 {
		t.Fatalf("wrong paren count %d", c.Parens())
	}
	c.Backspace()
	if c.Parens() != 1 {
		t.Fatalf("wrong paren count %d after backspace", c.Parens())
	}
	c.CloseParen()
	c.CloseParen()
	check(t, c, "(2))")
	if c.Parens() != 0 {
		t.Fatalf("paren count went below zero: %d", c.Parens())
	}
	// Parentheses are cosmetic: the value is the bare number.
	if v := c.Value(); v != 2 {
		t.Fatalf("wrong value %v", v)
	}
	// a number after "(" is not joined to the one before it
	c.OpenParen()
	c.AppendDigit('0')
	c.AppendDigit('3')
	check(t, c, "(2))(3")
	if v := c.Value(); v != 2 {
		t.Fatalf("wrong value %v", v)
	}
	c.SetOperator(OpMul)
	digits(c, "3")
	c.Evaluate()
	check(t, c, "6")
}

func TestCalcAngleMode(t *testing.T) {
	c := New()
	if c.AngleMode() != Deg {
		t.Fatal("default angle mode is not degrees")
	}
	c.ToggleAngleMode()
	if c.AngleMode() != Rad {
		t.Fatal("toggle did not switch to radians")
	}
	c.ToggleAngleMode()
	if c.AngleMode() != Deg {
		t.Fatal("toggle did not switch back to degrees")
	}
	if n := len(c.History()); n != 0 {
		t.Fatalf("mode toggle wrote history")
	}
	c = New(WithAngleMode(Rad))
	if c.AngleMode() != Rad {
		t.Fatal("WithAngleMode ignored")
	}
}

func TestCalcHistoryClock(t *testing.T) {
	ts := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)
	c := New(WithClock(func() time.Time { return ts }))
	c.ApplyFunction(FuncPi)
	if h := c.History(); !h[0].Time.Equal(ts) {
		t.Fatalf("wrong timestamp %v", h[0].Time)
	}
	c.ClearHistory()
	if n := len(c.History()); n != 0 {
		t.Fatalf("history not cleared: %d entries", n)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-12.5, "-12.5"},
		{0.1 + 0.2, "0.3"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-07"},
		{0.000001, "0.000001"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, test := range tests {
		if got := FormatNumber(test.in); got != test.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"0", 0},
		{"12.5", 12.5},
		{"12.", 12},
		{"(3", 3},
		{"(", 0},
		{"2(3)", 2},
		{"((4.5))", 4.5},
		{"-Infinity", math.Inf(-1)},
		{"garbage", 0},
	}
	for _, test := range tests {
		if got := parse(test.in); got != test.want {
			t.Errorf("parse(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func check(t *testing.T, c *Calculator, text string) {
	t.Helper()
	if c.Display() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", c.Display(), text, *c)
	}
}

func TestParseAngleMode(t *testing.T) {
	for in, want := range map[string]AngleMode{"deg": Deg, "RAD": Rad} {
		m, err := ParseAngleMode(in)
		if err != nil || m != want {
			t.Errorf("ParseAngleMode(%q) = %v, %v", in, m, err)
		}
	}
	if _, err := ParseAngleMode("grad"); err == nil {
		t.Error("no error for grad")
	}
}
