// Package codec implements the text formats the engine's grids travel
// through: the CSV save format (numeric rows plus trailing seed and
// generation records) and the Run Length Encoded pattern format from
// conwaylife.com. The engine itself never parses text; it only exchanges
// numeric rows with this package.
package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrMalformedSave indicates save data that cannot be decoded.
var ErrMalformedSave = errors.New("codec: malformed save data")

// Document bundles everything a save file carries: the grid rows and the
// seed and generation counter needed to resume a run.
type Document struct {
	Rows       [][]float64
	Seed       int64
	Generation int
}

// EncodeCSV writes doc as CSV: one record per grid row, then a "seed"
// record and a "generation" record. Values are written with the shortest
// representation that parses back exactly, so binary grids round-trip
// bit for bit.
func EncodeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	rec := []string{}
	for _, row := range doc.Rows {
		rec = rec[:0]
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing grid row: %w", err)
		}
	}
	if err := cw.Write([]string{"seed", strconv.FormatInt(doc.Seed, 10)}); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}
	if err := cw.Write([]string{"generation", strconv.Itoa(doc.Generation)}); err != nil {
		return fmt.Errorf("writing generation: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads a save document. The trailing seed/generation records
// are accepted in either order; a plain grid-only CSV (the legacy save
// shape) decodes with seed -1 and generation 0. Rectangularity and value
// range are the engine's concern, not the codec's.
func DecodeCSV(r io.Reader) (Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	doc := Document{Seed: -1}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrMalformedSave, err)
		}
		if len(rec) == 0 {
			continue
		}
		if len(rec) == 2 {
			switch rec[0] {
			case "seed":
				v, err := strconv.ParseInt(rec[1], 10, 64)
				if err != nil {
					return Document{}, fmt.Errorf("%w: seed %q", ErrMalformedSave, rec[1])
				}
				doc.Seed = v
				continue
			case "generation":
				v, err := strconv.Atoi(rec[1])
				if err != nil {
					return Document{}, fmt.Errorf("%w: generation %q", ErrMalformedSave, rec[1])
				}
				doc.Generation = v
				continue
			}
		}
		row := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Document{}, fmt.Errorf("%w: cell %q in row %d", ErrMalformedSave, field, len(doc.Rows))
			}
			row[i] = v
		}
		doc.Rows = append(doc.Rows, row)
	}
	if len(doc.Rows) == 0 {
		return Document{}, fmt.Errorf("%w: no grid rows", ErrMalformedSave)
	}
	return doc, nil
}

// SaveCSV writes doc to path, replacing any previous save.
func SaveCSV(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating save file: %w", err)
	}
	if err := EncodeCSV(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadCSV reads a save document from path.
func LoadCSV(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening save file: %w", err)
	}
	defer f.Close()
	return DecodeCSV(f)
}
