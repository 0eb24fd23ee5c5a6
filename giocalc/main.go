package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"strings"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/gio-scicalc/internal/calc"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{70, 70, 70, 255}
	funcColor        = color.NRGBA{60, 70, 85, 255}
	memoryColor      = color.NRGBA{60, 80, 70, 255}
	opColor          = color.NRGBA{122, 90, 90, 255}
	activeOpColor    = color.NRGBA{160, 90, 90, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	statusColor      = color.NRGBA{160, 160, 160, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(400)
	designHeight = unit.Dp(720)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// buttonRows is the keypad, by button label. Labels are parsed with
// calc.ParseAction; an empty label leaves the cell blank.
var buttonRows = [...][6]string{
	{"DEG", "MC", "MR", "M+", "M-", "STO"},
	{"RCL", "(", ")", "π", "e", "Ans"},
	{"sin", "cos", "tan", "sinh", "cosh", "tanh"},
	{"sin⁻¹", "cos⁻¹", "tan⁻¹", "log", "ln", "n!"},
	{"x²", "x³", "x^y", "y^x", "√x", "∛x"},
	{"10^x", "e^x", "1/x", "nCr", "nPr", "±"},
	{"7", "8", "9", "⌫", "CE", "AC"},
	{"4", "5", "6", "×", "÷", "%"},
	{"1", "2", "3", "+", "−", ""},
	{"0", "", ".", "", "", "="},
}

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc    *calc.Calculator
	theme   *material.Theme
	buttons [len(buttonRows)][6]*button
	history *historyPanel

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme, c *calc.Calculator) (*calcUI, error) {
	ui := &calcUI{
		calc:    c,
		theme:   theme,
		history: newHistoryPanel(c, theme),
	}
	for row, labels := range buttonRows {
		for col, label := range labels {
			if label == "" {
				continue
			}
			b, err := ui.newButton(label)
			if err != nil {
				return nil, err
			}
			ui.buttons[row][col] = b
		}
	}
	return ui, nil
}

// newButton creates a button for the given label.
func (ui *calcUI) newButton(label string) (*button, error) {
	action, err := calc.ParseAction(label)
	if err != nil {
		return nil, fmt.Errorf("button %q: %w", label, err)
	}
	b := &button{text: label, action: action, op: calc.OpNone}
	switch a := action.(type) {
	case calc.Digit, calc.Decimal:
		b.color = digitColor
	case calc.SetOp:
		b.color = opColor
		b.op = calc.Op(a)
	case calc.Evaluate:
		b.color = opColor
	case calc.Apply:
		b.color = funcColor
	case calc.Memory:
		b.color = memoryColor
	default:
		b.color = specialColor
	}
	return b, nil
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(12, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(4, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutStatus)
			}),
			layout.Flexed(64, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return ui.history.Layout(gtx, ui.cornerRadius)
				})
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, ui.layoutResultText)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.calc.Display())
	l.Color = resultColor
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

// layoutStatus draws the angle mode, memory, parenthesis and pending
// operation indicators.
func (ui *calcUI) layoutStatus(gtx layout.Context) layout.Dimensions {
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.3
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, statusText(ui.calc))
	l.Color = statusColor
	l.Alignment = text.End
	l.MaxLines = 1
	return l.Layout(gtx)
}

// statusText renders the indicator line shown under the display.
func statusText(c *calc.Calculator) string {
	parts := []string{strings.ToUpper(c.AngleMode().String())}
	if c.Memory() != 0 {
		parts = append(parts, "M")
	}
	if n := c.Parens(); n > 0 {
		parts = append(parts, strings.Repeat("(", n))
	}
	if op, left, ok := c.Pending(); ok {
		parts = append(parts, calc.FormatNumber(left)+" "+op.String())
	}
	return strings.Join(parts, "   ")
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked() {
		ui.calc.Do(b.action)
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.4
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		label := b.text
		if _, ok := b.action.(calc.ToggleAngle); ok {
			label = strings.ToUpper(ui.calc.AngleMode().String())
		}
		style := material.Button(ui.theme, &b.clicker, label)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if op, _, ok := ui.calc.Pending(); ok && b.op == op {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: keySet,
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		if ev, ok := ev.(key.Event); ok {
			if a := keyAction(ev); a != nil {
				ui.calc.Do(a)
			}
		}
	}
}

// button is a clickable button.
type button struct {
	op     calc.Op
	text   string
	action calc.Action

	color   color.NRGBA
	clicker widget.Clickable
}

// config is the command line configuration.
type config struct {
	angle calc.AngleMode
}

func parseFlags() (config, error) {
	var (
		cfg   config
		angle = flag.String("angle", "deg", "initial angle mode (deg or rad)")
	)
	flag.Parse()
	mode, err := calc.ParseAngleMode(*angle)
	if err != nil {
		return cfg, err
	}
	cfg.angle = mode
	return cfg, nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("GioCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w, cfg); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, cfg config) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	ui, err := newUI(th, calc.New(calc.WithAngleMode(cfg.angle)))
	if err != nil {
		return err
	}
	log.Printf("calculator started (angle mode %v)", cfg.angle)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}
