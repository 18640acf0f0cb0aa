/*
Package guigrid builds Gio user interfaces out of tables of widgets.

A window is described as rows of cells. Strings become labels, widgets are
placed as they are, and the Left and Up markers stretch the widget on the left
or above over the marked cell, so that a widget repeated over a rectangle of
cells spans all of it:

	g, err := guigrid.New(
		[]any{"Name:", guigrid.E("name"), guigrid.Left},
		[]any{guigrid.B("Greet"), guigrid.Left, guigrid.B("Quit")},
	)
	if err != nil {
		log.Fatal(err)
	}

Every widget gets a name derived from its text, which can be overridden by
aliases. Callbacks are attached with a table laid over the layout, each callback
being connected to the default signal of the widget below it:

	g.Events(
		[]any{guigrid.Blank, guigrid.Blank, guigrid.Blank},
		[]any{greet, guigrid.Blank, func() { os.Exit(0) }},
	)

	go func() {
		if err := g.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()

The span inference itself lives in the grid subpackage and works on any comparable item type.
*/
package guigrid
