package calc

import (
	"fmt"
	"math"
)

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncLog
	FuncLn
	FuncSqrt
	FuncCbrt
	FuncPow10
	FuncExp
	FuncRecip
	FuncSquare
	FuncCube
	FuncNegate
	FuncPercent
	FuncPi
	FuncE
	FuncFactorial
	FuncAns
	numFuncs
)

// Func is a scientific function applied to the display value.
type Func int

type funcInfo struct {
	sym  string // button label
	name string // ASCII name
	// expr renders the history expression for argument s.
	expr func(s string) string
}

func prefix(sym string) func(string) string {
	return func(s string) string { return sym + "(" + s + ")" }
}

func suffix(sym string) func(string) string {
	return func(s string) string { return "(" + s + ")" + sym }
}

func constant(sym string) func(string) string {
	return func(string) string { return sym }
}

var funcs = [numFuncs]funcInfo{
	FuncSin:       {"sin", "sin", prefix("sin")},
	FuncCos:       {"cos", "cos", prefix("cos")},
	FuncTan:       {"tan", "tan", prefix("tan")},
	FuncAsin:      {"sin⁻¹", "asin", prefix("sin⁻¹")},
	FuncAcos:      {"cos⁻¹", "acos", prefix("cos⁻¹")},
	FuncAtan:      {"tan⁻¹", "atan", prefix("tan⁻¹")},
	FuncSinh:      {"sinh", "sinh", prefix("sinh")},
	FuncCosh:      {"cosh", "cosh", prefix("cosh")},
	FuncTanh:      {"tanh", "tanh", prefix("tanh")},
	FuncLog:       {"log", "log", prefix("log")},
	FuncLn:        {"ln", "ln", prefix("ln")},
	FuncSqrt:      {"√x", "sqrt", prefix("√")},
	FuncCbrt:      {"∛x", "cbrt", prefix("∛")},
	FuncPow10:     {"10^x", "pow10", prefix("10^")},
	FuncExp:       {"e^x", "exp", prefix("e^")},
	FuncRecip:     {"1/x", "recip", prefix("1/")},
	FuncSquare:    {"x²", "square", suffix("²")},
	FuncCube:      {"x³", "cube", suffix("³")},
	FuncNegate:    {"±", "negate", prefix("−")},
	FuncPercent:   {"%", "percent", func(s string) string { return s + "%" }},
	FuncPi:        {"π", "pi", constant("π")},
	FuncE:         {"e", "e", constant("e")},
	FuncFactorial: {"n!", "fact", func(s string) string { return s + "!" }},
	FuncAns:       {"Ans", "ans", constant("Ans")},
}

func (f Func) valid() bool { return f >= 0 && f < numFuncs }

func (f Func) String() string {
	if !f.valid() {
		panic("unknown func")
	}
	return funcs[f].sym
}

// Name returns the ASCII name of f.
func (f Func) Name() string {
	if !f.valid() {
		panic("unknown func")
	}
	return funcs[f].name
}

var funcNames = func() map[string]Func {
	m := make(map[string]Func, 2*numFuncs)
	for f := Func(0); f < numFuncs; f++ {
		m[funcs[f].sym] = f
		m[funcs[f].name] = f
	}
	m["√"] = FuncSqrt
	m["∛"] = FuncCbrt
	m["!"] = FuncFactorial
	m["±"] = FuncNegate
	return m
}()

// ParseFunc resolves a function by label ("√x", "sin⁻¹") or name ("sqrt", "asin").
func ParseFunc(name string) (Func, error) {
	f, ok := funcNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown function %q", name)
	}
	return f, nil
}

// eval computes f at x. ans is the previous result and mode the angle mode.
func (f Func) eval(x, ans float64, mode AngleMode) float64 {
	toRad := func(v float64) float64 {
		if mode == Deg {
			return v * math.Pi / 180
		}
		return v
	}
	fromRad := func(v float64) float64 {
		if mode == Deg {
			return v * 180 / math.Pi
		}
		return v
	}

	switch f {
	case FuncSin:
		return math.Sin(toRad(x))
	case FuncCos:
		return math.Cos(toRad(x))
	case FuncTan:
		return math.Tan(toRad(x))
	case FuncAsin:
		return fromRad(math.Asin(x))
	case FuncAcos:
		return fromRad(math.Acos(x))
	case FuncAtan:
		return fromRad(math.Atan(x))
	case FuncSinh:
		return math.Sinh(x)
	case FuncCosh:
		return math.Cosh(x)
	case FuncTanh:
		return math.Tanh(x)
	case FuncLog:
		return math.Log10(x)
	case FuncLn:
		return math.Log(x)
	case FuncSqrt:
		return math.Sqrt(x)
	case FuncCbrt:
		return math.Cbrt(x)
	case FuncPow10:
		return math.Pow(10, x)
	case FuncExp:
		return math.Exp(x)
	case FuncRecip:
		return 1 / x
	case FuncSquare:
		return x * x
	case FuncCube:
		return x * x * x
	case FuncNegate:
		return -x
	case FuncPercent:
		return x / 100
	case FuncPi:
		return math.Pi
	case FuncE:
		return math.E
	case FuncFactorial:
		return Factorial(x)
	case FuncAns:
		return ans
	default:
		panic("unknown func")
	}
}

// ApplyFunction applies f to the display value, records the result in the
// history and shows it. A pending binary operation is left in place, so the
// result becomes its right operand.
func (c *Calculator) ApplyFunction(f Func) {
	if !f.valid() {
		panic(fmt.Errorf("invalid function %d", f))
	}
	x := c.Value()
	result := f.eval(x, c.ans, c.angle)
	c.record(funcs[f].expr(FormatNumber(x)), result)
	c.setResult(result)
	c.operand = true
}
