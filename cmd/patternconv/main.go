// patternconv converts between the CSV save format and RLE pattern files.
// The direction is picked from the output extension: .rle encodes, .csv
// decodes back into grid rows.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ineido/cgol/codec"
)

func main() {
	in := flag.String("in", "", "Input file (.csv or .rle)")
	out := flag.String("out", "", "Output file (.csv or .rle)")
	name := flag.String("name", "", "Pattern name written to the #N header when encoding RLE")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *in == "" || *out == "" {
		slog.Error("both -in and -out are required")
		os.Exit(2)
	}

	if err := convert(*in, *out, *name); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
	slog.Info("converted", "in", *in, "out", *out)
}

func convert(in, out, name string) error {
	rows, err := read(in)
	if err != nil {
		return err
	}
	return write(out, name, rows)
}

func read(path string) ([][]float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		p, err := codec.DecodeRLE(f)
		if err != nil {
			return nil, err
		}
		return p.Rows, nil
	}
	doc, err := codec.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return doc.Rows, nil
}

func write(path, name string, rows [][]float64) error {
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := codec.EncodeRLE(f, codec.Pattern{Name: name, Rows: rows}); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return codec.SaveCSV(path, codec.Document{Rows: rows, Seed: -1})
}
