// Command mkimagefile converts images to and from the raw imagefile format.
package main

import (
	"bufio"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"lel/viewer"
	"lel/viewer/imagefile"
)

func main() {
	var (
		mode   = pflag.StringP("mode", "m", "encode", "encode|decode.")
		outDir = pflag.StringP("out", "o", "", "Output directory (default: next to each input).")
		jobs   = pflag.IntP("jobs", "j", runtime.NumCPU(), "Files converted in parallel.")
	)
	pflag.Parse()

	if pflag.NArg() == 0 {
		fatalf("usage: mkimagefile [-mode encode] [-out DIR] [-j N] FILE...\n       mkimagefile -mode decode [-out DIR] FILE.if...")
	}

	var conv func(in, out string) error
	var ext string
	switch strings.ToLower(*mode) {
	case "encode":
		conv, ext = encodeFile, ".if"
	case "decode":
		conv, ext = decodeFile, ".png"
	default:
		fatalf("unknown mode: %s", *mode)
	}

	if err := convertAll(pflag.Args(), *outDir, ext, *jobs, conv); err != nil {
		fatalf("%s: %v", *mode, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// convertAll runs conv over every input with at most jobs in flight and
// returns the first error.
func convertAll(inputs []string, outDir, ext string, jobs int, conv func(in, out string) error) error {
	if jobs <= 0 {
		jobs = 1
	}
	var g errgroup.Group
	g.SetLimit(jobs)
	for _, in := range inputs {
		in := in
		out := outputPath(in, outDir, ext)
		g.Go(func() error {
			if err := conv(in, out); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func outputPath(in, outDir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ext
	if outDir == "" {
		return filepath.Join(filepath.Dir(in), base)
	}
	return filepath.Join(outDir, base)
}

func encodeFile(inPath, outPath string) error {
	img, err := readImage(inPath)
	if err != nil {
		return err
	}
	return writeFile(outPath, func(w *bufio.Writer) error {
		return imagefile.Encode(w, imagefile.ToNRGBA(img))
	})
}

func decodeFile(inPath, outPath string) error {
	img, err := readImage(inPath)
	if err != nil {
		return err
	}
	return writeFile(outPath, func(w *bufio.Writer) error {
		return png.Encode(w, imagefile.ToNRGBA(img))
	})
}

func readImage(path string) (*viewer.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := imagefile.Load(f)
	return img, err
}

func writeFile(path string, write func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
