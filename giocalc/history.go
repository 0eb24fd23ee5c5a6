package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/gio-scicalc/internal/calc"
)

var (
	historyText       = color.NRGBA{200, 200, 200, 255}
	historyResultText = color.NRGBA{255, 255, 255, 255}
	historyStatusText = color.NRGBA{140, 140, 140, 255}
)

// historyPanel shows the evaluation log, newest first.
type historyPanel struct {
	calc  *calc.Calculator
	theme *material.Theme
	list  layout.List
	clear widget.Clickable

	// This is the cache for entries. It is refreshed when the log changes.
	entries []calc.Entry
}

func newHistoryPanel(c *calc.Calculator, theme *material.Theme) *historyPanel {
	return &historyPanel{
		calc:  c,
		theme: theme,
		list:  layout.List{Axis: layout.Vertical},
	}
}

// Layout draws the panel.
func (p *historyPanel) Layout(gtx layout.Context, cornerRadius int) layout.Dimensions {
	if p.clear.Clicked() {
		p.calc.ClearHistory()
	}
	p.entries = p.calc.History()

	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(p.layoutStatusBar),
			layout.Flexed(1, p.layoutEntries),
		)
	})
}

// layoutStatusBar draws the entry count and the clear button.
func (p *historyPanel) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	flex := layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween, Alignment: layout.Baseline}
	return flex.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Label(p.theme, unit.Sp(12), historyCount(len(p.entries)))
			l.Color = historyStatusText
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if len(p.entries) == 0 {
				return layout.Dimensions{}
			}
			return material.Clickable(gtx, &p.clear, func(gtx layout.Context) layout.Dimensions {
				l := material.Label(p.theme, unit.Sp(12), "Clear")
				l.Color = historyStatusText
				return l.Layout(gtx)
			})
		}),
	)
}

// layoutEntries draws the log.
func (p *historyPanel) layoutEntries(gtx layout.Context) layout.Dimensions {
	return p.list.Layout(gtx, len(p.entries), func(gtx layout.Context, i int) layout.Dimensions {
		e := p.entries[i]
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				l := material.Label(p.theme, unit.Sp(14), e.Expression+" =")
				l.Color = historyText
				l.MaxLines = 1
				return l.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Label(p.theme, unit.Sp(14), e.Result)
				l.Color = historyResultText
				l.Alignment = text.End
				l.MaxLines = 1
				return l.Layout(gtx)
			}),
		)
	})
}

func historyCount(n int) string {
	switch n {
	case 0:
		return "No history."
	case 1:
		return "1 entry."
	default:
		return fmt.Sprintf("%d entries.", n)
	}
}
