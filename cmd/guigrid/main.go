package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/guigrid"
	"github.com/esimov/guigrid/utils"
	"github.com/olekukonko/tablewriter"
)

const HelpBanner = `
┌─┐┬ ┬┬┌─┐┬─┐┬┌┬┐
│ ┬│ ││││ ┬├┬┘│ ││
└─┘└─┘┴└─┘┴└─┴─┴┘

Declarative grid layouts for Gio.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source = flag.String("in", pipeName, "Layout file")
	title  = flag.String("title", "", "Window title")
	width  = flag.Float64("width", guigrid.DefaultWidth, "Window width")
	height = flag.Float64("height", guigrid.DefaultHeight, "Window height")
	dump   = flag.Bool("dump", false, "Print the widget placements and exit")
	check  = flag.Bool("check", false, "Report the cells covered by a foreign widget and exit")
	echo   = flag.Bool("echo", false, "Log every widget event")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText(utils.Tag, utils.StatusMessage),
		utils.DecorateText("is loading the layout...", utils.DefaultMessage)), time.Millisecond*100)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	spinner.Start()
	g, err := load(*source)
	spinner.Stop()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the layout: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	switch {
	case *dump:
		if err := printPlacements(os.Stdout, g); err != nil {
			log.Fatalf(utils.DecorateText("Unable to print the placements: %v", utils.ErrorMessage), err)
		}
		return
	case *check:
		if n := checkLayout(g); n > 0 {
			os.Exit(1)
		}
		log.Println(utils.Message("every widget covers a rectangle", utils.SuccessMessage))
		return
	}

	if *title != "" {
		g.Config.Title = *title
	}
	g.Config.Width = float32(*width)
	g.Config.Height = float32(*height)

	if *echo {
		for _, w := range g.Widgets() {
			if _, ok := w.(guigrid.Signaler); ok {
				g.Connect(w, logEvent(w))
			}
		}
	}

	go func() {
		if err := g.Run(); err != nil {
			log.Fatalf(utils.DecorateText("Window closed with error: %v", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// load reads and builds the layout found at src, which is a file path or the pipe name.
func load(src string) (*guigrid.Gui, error) {
	var r io.Reader
	if src == pipeName {
		if utils.IsTerminal(os.Stdin) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		r = os.Stdin
	} else {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("unable to open the layout file: %w", err)
		}
		defer f.Close()
		r = f
	}

	rows, err := guigrid.Parse(r)
	if err != nil {
		return nil, err
	}
	return guigrid.New(rows...)
}

// printPlacements writes the grid area of every widget as a table.
func printPlacements(w io.Writer, g *guigrid.Gui) error {
	table := tablewriter.NewWriter(w)
	table.Header("name", "kind", "row", "col", "rowspan", "colspan")
	for _, p := range g.Placements() {
		err := table.Append([]string{
			strconv.Quote(g.Name(p.Item)),
			p.Item.Kind().String(),
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Col),
			strconv.Itoa(p.RowSpan),
			strconv.Itoa(p.ColSpan),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}

// checkLayout warns about every misplaced cell and returns their number.
func checkLayout(g *guigrid.Gui) int {
	cells := g.Misplaced()
	for _, c := range cells {
		w := g.At(c.Row, c.Col)
		log.Println(utils.Message(
			fmt.Sprintf("cell (%d, %d) of %v %q is drawn over by another widget", c.Row, c.Col, w.Kind(), g.Name(w)),
			utils.WarningMessage,
		))
	}
	return len(cells)
}

// logEvent returns a callback printing the widget which fired its signal.
func logEvent(w guigrid.Widget) func(*guigrid.Gui) {
	sig := w.(guigrid.Signaler).Signal().Name()
	return func(g *guigrid.Gui) {
		msg := fmt.Sprintf("%s %s", g.Name(w), sig)
		if e, ok := w.(*guigrid.Edit); ok {
			msg += ": " + strconv.Quote(e.Text())
		}
		log.Println(utils.Message(msg, utils.StatusMessage))
	}
}
