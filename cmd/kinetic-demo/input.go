package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinetic/drawer"
	"github.com/lixenwraith/kinetic/scroll"
)

// handleEvent applies one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		col, line := ev.Position()
		at := a.clock.Stamp(ev.When())
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			a.wheel(col, line, 0, -1, at)
		case buttons&tcell.WheelDown != 0:
			a.wheel(col, line, 0, 1, at)
		case buttons&tcell.WheelLeft != 0:
			a.wheel(col, line, -1, 0, at)
		case buttons&tcell.WheelRight != 0:
			a.wheel(col, line, 1, 0, at)
		default:
			a.mouse(col, line, buttons&tcell.Button1 != 0, at)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			a.cancelPointer(a.clock.Now())
		}

	case *tcell.EventResize:
		a.resize(ev.Size())
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.scroller.Step(0, -1)
	case tcell.KeyDown:
		a.scroller.Step(0, 1)
	case tcell.KeyPgUp:
		a.scroller.Page(0, -1)
	case tcell.KeyPgDn:
		a.scroller.Page(0, 1)
	case tcell.KeyHome:
		a.scroller.ScrollToPosition(0, 0, scroll.DurationAuto)
	case tcell.KeyEnd:
		_, hi := a.scroller.Bounds(scroll.Vertical)
		a.scroller.ScrollToPosition(0, hi, scroll.DurationAuto)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			a.drawers.Toggle(drawer.Left)
		case 's':
			a.scroller.StopScrolling()
		case ' ':
			if a.clock.IsPaused() {
				a.clock.Resume()
			} else {
				a.clock.Pause()
			}
		}
	}
	return true
}
