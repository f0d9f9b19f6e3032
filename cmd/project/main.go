package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/earthmap/internal/projection"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input      string  `short:"i" long:"in"         description:"Input file with one coordinate pair per line. Reads from stdin if empty"`
	Output     string  `short:"o" long:"out"        description:"Output file path. Writes to stdout if empty"`
	Format     string  `short:"f" long:"format"     description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Projection string  `short:"p" long:"projection" description:"Projection (equirectangular or azimuthal)" default:"equirectangular"`
	Width      float64 `short:"W" long:"width"      description:"Surface width in pixels" required:"true"`
	Height     float64 `short:"H" long:"height"     description:"Surface height in pixels" required:"true"`
	Inverse    bool    `short:"r" long:"inverse"    description:"Input pairs are x y pixels; print lon/lat"`
}

// Result is one converted input line.
type Result struct {
	Lon     float64 `json:"lon" yaml:"lon"`
	Lat     float64 `json:"lat" yaml:"lat"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Outside bool    `json:"outside,omitempty" yaml:"outside,omitempty"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --width and --height must be > 0")
		os.Exit(1)
	}

	// Read Input
	var in io.Reader = os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	pr := projection.NewProjector(
		projection.Size{Width: opts.Width, Height: opts.Height},
		projection.ForName(opts.Projection))

	results, skipped, err := convert(in, pr, opts.Inverse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	for _, line := range skipped {
		fmt.Fprintf(os.Stderr, "Skipping invalid line: %q\n", line)
	}

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(results)
	} else {
		outputData, err = json.MarshalIndent(results, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully converted %d points to %s (format: %s)\n", len(results), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}

// convert reads "a b" pairs separated by whitespace or a comma, one per line.
// Blank lines and lines starting with # are ignored; unparsable lines are
// returned in skipped.
func convert(r io.Reader, pr *projection.Projector, inverse bool) (results []Result, skipped []string, err error) {
	results = []Result{}
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) < 2 {
			skipped = append(skipped, line)
			continue
		}
		a, err1 := strconv.ParseFloat(fields[0], 64)
		b, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			skipped = append(skipped, line)
			continue
		}

		if inverse {
			loc := pr.Inverse(a, b)
			results = append(results, Result{Lon: loc.Lon, Lat: loc.Lat, X: a, Y: b, Outside: loc.Outside})
			continue
		}

		p := pr.Forward(a, b)
		results = append(results, Result{Lon: a, Lat: b, X: p.X, Y: p.Y})
	}

	return results, skipped, sc.Err()
}
