// Package ui is the small retained-mode toolkit behind hellobutton.
//
// It owns the object tree (screen, buttons, labels), style resolution,
// layout, event dispatch and refresh scheduling. Pixels never pass through
// this package: a backend supplies a Flusher that draws the invalidated
// part of the screen, a Font that measures text and a PointerReader that
// reports pointer state.
//
// # Basic Usage
//
//	engine := ui.NewEngine(ui.DefaultTheme())
//
//	disp, err := engine.RegisterDisplay(ui.DisplayDriver{
//	    HorRes:  480,
//	    VerRes:  320,
//	    Flusher: backend,
//	    Font:    backend,
//	})
//	if err != nil {
//	    return err
//	}
//	if _, err := engine.RegisterPointer(backend); err != nil {
//	    return err
//	}
//
//	btn := ui.NewButton(disp.Screen())
//	lbl := ui.NewLabel(btn)
//	lbl.SetText("Hello world!")
//	btn.Center()
//
//	btn.AddEventHandler(ui.EventClicked, func(e *ui.Event) {
//	    lbl.SetText("clicked")
//	})
//
//	for running {
//	    engine.TickInc(1)
//	    if err := engine.TimerHandler(); err != nil {
//	        log.Println(err)
//	    }
//	    time.Sleep(time.Millisecond)
//	}
//
// # Style Precedence
//
// A property is taken from the object's local style first, then from added
// styles (the most recently added wins), then from the theme style the object
// was created with. Text color falls back to the parent when nothing on the
// object sets it. Anything else falls back to the zero default.
package ui
