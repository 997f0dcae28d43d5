package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/scroll"
)

var (
	styleRow    = tcell.StyleDefault
	styleRowAlt = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	stylePage   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBar    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBarDim = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePanel  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

var menu = []string{"", " Inbox", " Starred", " Sent", " Drafts", " Archive", "", " [m] toggle", " [q] quit"}

// render draws the list, the drawer panel, the scroll bar and the status line
func (a *app) render(screen tcell.Screen) {
	screen.Clear()
	view := a.lines - 1
	panel := a.panelColumns()
	shift := a.contentColumns()
	pageRows := 0
	if a.cfg.Scroll.SnapToPages {
		pageRows = view
	}

	for line := 0; line < view; line++ {
		idx := a.visibleRow(line)
		if idx < 0 {
			continue
		}
		style := styleRow
		if idx%2 == 1 {
			style = styleRowAlt
		}
		text := fmt.Sprintf("  row %04d", idx)
		if pageRows > 0 && idx%pageRows == 0 {
			text = fmt.Sprintf("  row %04d  page %d", idx, idx/pageRows)
			style = stylePage
		}
		drawText(screen, shift, line, a.cols-1, text, style)
	}

	if alpha := a.scroller.ScrollBarAlpha(scroll.Vertical); alpha > 0 {
		style := styleBar
		if alpha < 0.5 {
			style = styleBarDim
		}
		top, size := a.thumb()
		for line := top; line < top+size && line < view; line++ {
			screen.SetContent(a.cols-1, line, '█', nil, style)
		}
	}

	for line := 0; line < view && panel > 0; line++ {
		text := ""
		if line < len(menu) {
			text = menu[line]
		}
		for col := 0; col < panel && col < a.cols; col++ {
			r := ' '
			if col < len(text) {
				r = rune(text[col])
			}
			screen.SetContent(col, line, r, nil, stylePanel)
		}
	}

	status := a.statusLine()
	for col := 0; col < a.cols; col++ {
		r := ' '
		if col < len(status) {
			r = rune(status[col])
		}
		screen.SetContent(col, view, r, nil, styleStatus)
	}
	screen.Show()
}

// drawText writes text starting at col x, clipped to limit
func drawText(screen tcell.Screen, x, y, limit int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= limit {
			return
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
