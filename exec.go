package hunkicon

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/esimov/hunkicon/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// filePrefix starts the file name of every generated icon.
const filePrefix = "hunk-icon"

// allVariants requests every available theme to be rendered.
const allVariants = "all"

// validFormats lists the encoder formats supported for the full size export.
var validFormats = []string{"png", "bmp", "tiff"}

// Ops bundles the options of a batch rendering operation.
type Ops struct {
	Dst      string
	Variant  string
	Format   string
	Sizes    []int
	Ico      bool
	IcoSizes []int
	Config   string
	PipeName string
	Workers  int
}

// result holds the relevant information about the outcome of a variant rendering job.
type result struct {
	path string
	err  error
}

// Execute runs the batch rendering operation: it resolves the requested
// variants, renders them concurrently and writes the exports below op.Dst.
// In case the preview mode is activated it should be invoked in a separate
// goroutine in order to not block the main OS thread.
func (g *Generator) Execute(op *Ops) error {
	if op.Format == "" {
		op.Format = "png"
	}
	if !slices.Contains(validFormats, op.Format) {
		return fmt.Errorf("%v file type not supported", op.Format)
	}
	for _, s := range op.Sizes {
		if s <= 0 || s > g.size() {
			return fmt.Errorf("export size %d should be in the 1-%d range", s, g.size())
		}
	}

	variants, err := g.variants(op)
	if err != nil {
		return err
	}

	// Writing to a pipe means a single variant encoded to the standard output.
	if op.PipeName != "" && op.Dst == op.PipeName {
		return g.pipe(op, variants)
	}

	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	if g.Preview {
		g.wrk = make(chan worker)
		g.quit = make(chan struct{})
		go g.showPreview()
	}

	if g.Spinner != nil {
		g.Spinner.Start()
	}

	now := time.Now()

	// Limit the concurrently rendered variants to maxWorkers.
	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = utils.Min(runtime.NumCPU(), maxWorkers)
	}
	workers = utils.Min(workers, len(variants))

	jobs := make(chan Variant)
	ch := make(chan result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g.consumer(op, jobs, ch)
		}()
	}

	go func() {
		defer close(jobs)
		for _, v := range variants {
			jobs <- v
		}
	}()

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	results := make([]result, 0, len(variants))
	for res := range ch {
		results = append(results, res)
	}

	if g.Spinner != nil {
		g.Spinner.Stop()
	}

	for _, res := range results {
		printStatus(res)
		if res.err != nil && err == nil {
			err = res.err
		}
	}

	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}

	if g.Preview {
		g.pushFrame(nil, "", true)
		<-g.quit

		if err == nil {
			err = g.guiErr
		}
	}

	return err
}

// variants resolves the list of themes to render, merging the custom config
// themes over the built-in ones and applying the variant filter.
func (g *Generator) variants(op *Ops) ([]Variant, error) {
	variants := Variants()

	if op.Config != "" {
		custom, err := LoadConfig(op.Config)
		if err != nil {
			return nil, err
		}
		variants = mergeVariants(variants, custom)
	}

	if op.Variant == "" || op.Variant == allVariants {
		return variants, nil
	}

	idx := slices.IndexFunc(variants, func(v Variant) bool {
		return v.Name == op.Variant
	})
	if idx < 0 {
		names := make([]string, 0, len(variants))
		for _, v := range variants {
			names = append(names, v.Name)
		}
		return nil, fmt.Errorf("unknown variant %q, the available ones are: %s",
			op.Variant, strings.Join(names, ", "))
	}
	return variants[idx : idx+1], nil
}

// consumer reads the variants from the jobs channel and renders each one,
// reporting the outcome on the results channel.
func (g *Generator) consumer(op *Ops, jobs <-chan Variant, res chan<- result) {
	for v := range jobs {
		path, err := g.generate(op, v)
		res <- result{path: path, err: err}
	}
}

// generate renders a single variant and writes every requested export.
func (g *Generator) generate(op *Ops, v Variant) (string, error) {
	raw, err := g.Render(v.Theme)
	if err != nil {
		return "", err
	}
	size := g.size()

	// The image form is only needed by the secondary exports and the preview.
	var img *image.NRGBA
	if op.Format != "png" || len(op.Sizes) > 0 || op.Ico || g.Preview {
		img = scanlinesToImage(size, raw)
	}

	path := filepath.Join(op.Dst, fileName(v.Name, op.Format))
	err = writeFile(path, func(f *os.File) error {
		if op.Format == "png" {
			return EncodePNG(f, size, size, raw)
		}
		return encodeImg(f, op.Format, img)
	})
	if err != nil {
		return "", err
	}

	for _, s := range op.Sizes {
		resized := filepath.Join(op.Dst, fmt.Sprintf("%s-%s-%d.png", filePrefix, v.Name, s))
		res := resizeImg(img, s)

		err = writeFile(resized, func(f *os.File) error {
			return encodeImg(f, "png", res)
		})
		if err != nil {
			return "", err
		}
	}

	if op.Ico {
		if sizes := icoSizes(op.IcoSizes, size); len(sizes) > 0 {
			err = writeFile(filepath.Join(op.Dst, fileName(v.Name, "ico")), func(f *os.File) error {
				return EncodeICO(f, img, sizes)
			})
			if err != nil {
				return "", err
			}
		}
	}

	g.pushFrame(img, v.Name, false)

	return path, nil
}

// pipe encodes a single variant to the standard output.
func (g *Generator) pipe(op *Ops, variants []Variant) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	if len(variants) != 1 {
		return errors.New("a single variant should be selected when writing to a pipe")
	}

	raw, err := g.Render(variants[0].Theme)
	if err != nil {
		return err
	}
	size := g.size()

	if op.Format == "png" {
		return EncodePNG(os.Stdout, size, size, raw)
	}
	return encodeImg(os.Stdout, op.Format, scanlinesToImage(size, raw))
}

// writeFile creates the destination file and hands it over to the encode
// callback, removing the partially written file in case of a failure.
func writeFile(path string, encode func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %v", err)
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// fileName assembles the output file name of a rendered variant.
func fileName(name, ext string) string {
	return fmt.Sprintf("%s-%s.%s", filePrefix, name, ext)
}

// printStatus displays the relevant information about a variant rendering operation.
func printStatus(res result) {
	if res.err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("Error rendering the icon:", utils.ErrorMessage),
			utils.DecorateText(res.err.Error(), utils.DefaultMessage))
		return
	}
	fmt.Fprintf(os.Stderr, "The icon has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(res.path), utils.SuccessMessage),
		utils.DefaultColor)
}
