package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gioui.org/app"

	"github.com/esimov/hunkicon"
	"github.com/esimov/hunkicon/utils"
)

const HelpBanner = `
┬ ┬┬ ┬┌┐┌┬┌─┬┌─┐┌─┐┌┐┌
├─┤│ │││││├┴┐││  │ ││││
┴ ┴└─┘┘└┘┴ ┴┴└─┘└─┘┘└┘

Procedural diff viewer app icon generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// The renditions bundled into the ICO container.
var icoSizes = []int{256, 128, 64, 48, 32, 16}

// Version indicates the current build version.
var Version string

// spinner is used to instantiate and call the progress indicator.
var spinner *utils.Spinner

var (
	// Flags
	destination = flag.String("out", "assets/icons", "Destination directory or `-` for stdout")
	variant     = flag.String("variant", "all", "Theme variant to render (or `all` of them)")
	size        = flag.Int("size", hunkicon.DefaultSize, "Size of the rendered icon in pixels")
	format      = flag.String("format", "png", "Encoding format of the full size export (png, bmp, tiff)")
	exports     = flag.String("sizes", "", "Comma separated list of additional PNG export sizes")
	ico         = flag.Bool("ico", false, "Bundle the renditions into a Windows ICO file")
	config      = flag.String("config", "", "Path or URL of a TOML theme configuration file")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of variants to render concurrently")
	preview     = flag.Bool("preview", false, "Show the rendered variants in a GUI window")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *size <= 0 {
		log.Fatalf(utils.DecorateText("The icon size should be a positive number!\n", utils.ErrorMessage))
	}
	exportSizes, err := parseSizes(*exports)
	if err != nil {
		log.Fatalf(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ HUNKICON", utils.StatusMessage),
		utils.DecorateText("is rendering the icon variants...", utils.DefaultMessage))
	spinner = utils.NewSpinner(spinnerText, time.Millisecond*200, true)

	gen := &hunkicon.Generator{
		Size:    *size,
		Preview: *preview,
		Spinner: spinner,
	}

	op := &hunkicon.Ops{
		Dst:      *destination,
		Variant:  *variant,
		Format:   *format,
		Sizes:    exportSizes,
		Ico:      *ico,
		IcoSizes: icoSizes,
		Config:   *config,
		PipeName: pipeName,
		Workers:  *workers,
	}

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	if *preview {
		// The batch operation is moved to a separate goroutine, the main
		// OS thread being reserved for the GUI event loop.
		go func() {
			run(gen, op)
			os.Exit(0)
		}()
		app.Main()
	} else {
		run(gen, op)
	}
}

// run invokes the batch rendering operation and reports its failure.
func run(gen *hunkicon.Generator, op *hunkicon.Ops) {
	if err := gen.Execute(op); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("Rendering failed:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage))
	}
}

// parseSizes converts the comma separated export size list to integers.
func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var sizes []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid export size %q", part)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}
