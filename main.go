package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/imagebuf"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const scenesDir = "scenes"

// options holds the parsed command line
type options struct {
	scene    string
	count    int
	dna      int
	width    int
	height   int
	out      string
	samples  int
	depth    int
	jitter   bool
	workers  int
	seed     int64
	prompt   bool
	writeDNA string
	verbose  bool
	help     bool

	set map[string]bool // flags given explicitly
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.scene, "scene", "default", "Scene: 'default', 'random', 'dna', 'file:<name>' or a .json path")
	fs.IntVar(&opts.count, "count", 0, "Render a random line of N spheres and cubes")
	fs.IntVar(&opts.dna, "dna", 0, "Render a DNA helix with N base pairs")
	fs.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 = scene default)")
	fs.StringVar(&opts.out, "out", "", "Output image (.png, .bmp, .tif); default output/<scene>/render_<timestamp>.png")
	fs.IntVar(&opts.samples, "samples", 4, "Anti-aliasing samples per axis (S×S per pixel)")
	fs.IntVar(&opts.depth, "depth", 5, "Maximum reflection depth")
	fs.BoolVar(&opts.jitter, "jitter", false, "Jitter sub-pixel sample positions")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = number of CPUs)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed for generated scenes and jitter (0 = time based)")
	fs.BoolVar(&opts.prompt, "prompt", false, "Ask for shape count or scene file, resolution and output path")
	fs.StringVar(&opts.writeDNA, "write-dna", "", "Write the DNA helix scene to this JSON file and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return 2
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.help {
		printHelp(fs, stdout)
		return 0
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer core.SetLogger(nil)

	if err := execute(&opts, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintf(w, "  file:<name> - %s/<name>.json\n", scenesDir)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.png")
}

func execute(opts *options, stdin io.Reader, stdout io.Writer) error {
	if opts.prompt {
		if err := promptOptions(opts, stdin, stdout); err != nil {
			return err
		}
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	if opts.writeDNA != "" {
		return writeDNA(opts, stdout)
	}

	sceneID := selectScene(opts)
	src, err := scene.Resolve(sceneID, scene.Options{
		Width:     opts.width,
		Height:    opts.height,
		Count:     max(opts.count, opts.dna),
		Seed:      opts.seed,
		ScenesDir: scenesDir,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Starting Whitted Raytracer...")
	s, err := src.Build()
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	spheres, planes, cubes := s.CountShapes()
	fmt.Fprintf(stdout, "Using %s scene: %d spheres, %d planes, %d cubes at %dx%d\n",
		s.Name, spheres, planes, cubes, s.Width, s.Height)

	outPath := opts.out
	if outPath == "" {
		outPath = defaultOutputPath(sceneID, time.Now())
	}
	// Fail on a bad extension before spending time rendering
	if _, err := imagebuf.FormatForPath(outPath); err != nil {
		return err
	}

	buf, err := imagebuf.New(s.Width, s.Height, s.Background)
	if err != nil {
		return err
	}

	r := renderer.NewRenderer(s, opts.workers)
	r.SetSamplingConfig(samplingFor(opts, r.GetSamplingConfig()))
	r.SetProgressOutput(stdout)

	stats := r.Render(buf)
	fmt.Fprintf(stdout, "Render completed in %v\n", stats.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(stdout, "Stats: %s\n", stats)

	if err := buf.WriteFile(outPath); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", outPath)
	return nil
}

// selectScene maps -count and -dna onto their built-in scenes
func selectScene(opts *options) string {
	switch {
	case opts.count > 0:
		return "random"
	case opts.dna > 0:
		return "dna"
	}
	return opts.scene
}

// samplingFor applies explicitly given flags over the scene's sampling
func samplingFor(opts *options, base renderer.SamplingConfig) renderer.SamplingConfig {
	result := base
	if opts.set["samples"] {
		result.SamplesPerAxis = opts.samples
	}
	if opts.set["depth"] {
		result.MaxDepth = opts.depth
	}
	if opts.jitter {
		result.Jitter = true
	}
	result.Seed = opts.seed
	return result
}

func writeDNA(opts *options, stdout io.Writer) error {
	cfg := scene.DefaultDNAConfig()
	if opts.dna > 0 {
		cfg.Pairs = opts.dna
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if err := scene.WriteDNASceneFile(opts.writeDNA, cfg); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "DNA scene with %d pairs written to %s\n", cfg.Pairs, opts.writeDNA)
	return nil
}

// defaultOutputPath names the output after the scene: built-in IDs as is,
// files by their base name
func defaultOutputPath(sceneID string, now time.Time) string {
	name := strings.TrimPrefix(sceneID, "file:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" || name == "." {
		name = "default"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}

// promptOptions asks for the scene, resolution and output path on stdin.
// An empty answer keeps the current value.
func promptOptions(opts *options, stdin io.Reader, stdout io.Writer) error {
	scanner := bufio.NewScanner(stdin)
	ask := func(question string) string {
		fmt.Fprint(stdout, question)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	if answer := ask("Number of shapes or scene file path: "); answer != "" {
		if n, err := strconv.Atoi(answer); err == nil {
			if n <= 0 {
				return fmt.Errorf("shape count must be positive, got %d", n)
			}
			opts.count = n
		} else {
			opts.count = 0
			opts.scene = answer
		}
	}

	if answer := ask("Resolution (WIDTHxHEIGHT): "); answer != "" {
		width, height, err := parseResolution(answer)
		if err != nil {
			return err
		}
		opts.width, opts.height = width, height
	}

	if answer := ask("Output path: "); answer != "" {
		opts.out = answer
	}
	return scanner.Err()
}

// parseResolution parses "800x600"
func parseResolution(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("resolution %q: expected WIDTHxHEIGHT", s)
	}
	width, errW := strconv.Atoi(strings.TrimSpace(w))
	height, errH := strconv.Atoi(strings.TrimSpace(h))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("resolution %q: %w", s, core.ErrInvalidImageSize)
	}
	return width, height, nil
}
