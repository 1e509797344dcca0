package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedPattern indicates RLE input that cannot be decoded.
var ErrMalformedPattern = errors.New("codec: malformed RLE pattern")

// rleLineWidth is the column at which encoded pattern bodies wrap, per the
// conwaylife.com file conventions.
const rleLineWidth = 70

// Pattern is a decoded Run Length Encoded pattern
// (https://conwaylife.com/wiki/Run_Length_Encoded). Cells are binary:
// RLE has no representation for fading values.
type Pattern struct {
	Name     string
	Author   string
	Comments []string
	Rule     string
	Width    int
	Height   int
	Rows     [][]float64
}

// DecodeRLE parses an RLE pattern. Header lines (#N, #O, #C) are
// optional; the "x = .., y = .." line is mandatory and must precede the
// pattern body. Rows are padded with dead cells to the declared width, and
// missing trailing rows are filled in, so the result is always a
// rectangular Width x Height grid.
func DecodeRLE(r io.Reader) (Pattern, error) {
	var p Pattern
	var body strings.Builder
	sawRule := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if err := p.decodeHeader(line); err != nil {
				return Pattern{}, err
			}
		case strings.HasPrefix(line, "x"):
			if err := p.decodeRule(line); err != nil {
				return Pattern{}, err
			}
			sawRule = true
		default:
			body.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading pattern: %w", err)
	}
	if !sawRule {
		return Pattern{}, fmt.Errorf("%w: missing x = .., y = .. line", ErrMalformedPattern)
	}
	if err := p.decodeBody(body.String()); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

func (p *Pattern) decodeHeader(line string) error {
	if len(line) < 2 {
		return fmt.Errorf("%w: header %q", ErrMalformedPattern, line)
	}
	value := strings.TrimSpace(line[2:])
	switch line[1] {
	case 'N':
		p.Name = value
	case 'O':
		p.Author = value
	case 'C', 'c':
		p.Comments = append(p.Comments, value)
	default:
		return fmt.Errorf("%w: unknown header %q", ErrMalformedPattern, line)
	}
	return nil
}

func (p *Pattern) decodeRule(line string) error {
	for _, part := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("%w: rule fragment %q", ErrMalformedPattern, part)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x":
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: width %q", ErrMalformedPattern, value)
			}
			p.Width = v
		case "y":
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: height %q", ErrMalformedPattern, value)
			}
			p.Height = v
		case "rule":
			p.Rule = value
		}
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrMalformedPattern, p.Width, p.Height)
	}
	return nil
}

func (p *Pattern) decodeBody(body string) error {
	var rows [][]float64
	row := []float64{}
	count := 0

	endRow := func() error {
		if len(row) > p.Width {
			return fmt.Errorf("%w: row %d longer than declared width %d", ErrMalformedPattern, len(rows), p.Width)
		}
		for len(row) < p.Width {
			row = append(row, 0.0)
		}
		rows = append(rows, row)
		row = []float64{}
		return nil
	}

	runOf := func(v float64) {
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			row = append(row, v)
		}
		count = 0
	}

loop:
	for _, c := range body {
		switch {
		case c >= '0' && c <= '9':
			count = count*10 + int(c-'0')
		case c == 'b':
			runOf(0.0)
		case c == 'o':
			runOf(1.0)
		case c == '$':
			if count == 0 {
				count = 1
			}
			n := count
			count = 0
			if err := endRow(); err != nil {
				return err
			}
			// A multiplier on $ skips whole dead rows.
			for i := 1; i < n; i++ {
				if err := endRow(); err != nil {
					return err
				}
			}
		case c == '!':
			break loop
		default:
			return fmt.Errorf("%w: unexpected %q in pattern body", ErrMalformedPattern, c)
		}
	}
	if err := endRow(); err != nil {
		return err
	}
	if len(rows) > p.Height {
		return fmt.Errorf("%w: %d rows exceed declared height %d", ErrMalformedPattern, len(rows), p.Height)
	}
	for len(rows) < p.Height {
		dead := make([]float64, p.Width)
		rows = append(rows, dead)
	}
	p.Rows = rows
	return nil
}

// EncodeRLE writes the pattern in RLE form: headers, the dimension/rule
// line, then the run-encoded body wrapped at 70 columns. Cell values are
// binarized at 1.0; trailing dead runs in a row are omitted. An empty Rule
// defaults to B3/S23.
func EncodeRLE(w io.Writer, p Pattern) error {
	bw := bufio.NewWriter(w)
	if p.Name != "" {
		fmt.Fprintf(bw, "#N %s\n", p.Name)
	}
	if p.Author != "" {
		fmt.Fprintf(bw, "#O %s\n", p.Author)
	}
	for _, c := range p.Comments {
		fmt.Fprintf(bw, "#C %s\n", c)
	}

	width, height := p.Width, p.Height
	if len(p.Rows) > 0 {
		height = len(p.Rows)
		width = len(p.Rows[0])
	}
	rule := p.Rule
	if rule == "" {
		rule = "B3/S23"
	}
	fmt.Fprintf(bw, "x = %d, y = %d, rule = %s\n", width, height, rule)

	body := encodeBody(p.Rows)
	for len(body) > rleLineWidth {
		bw.WriteString(body[:rleLineWidth])
		bw.WriteByte('\n')
		body = body[rleLineWidth:]
	}
	bw.WriteString(body)
	bw.WriteByte('\n')
	return bw.Flush()
}

func encodeBody(rows [][]float64) string {
	var b strings.Builder
	emit := func(tag byte, count int) {
		if count > 1 {
			b.WriteString(strconv.Itoa(count))
		}
		b.WriteByte(tag)
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('$')
		}
		var tag byte
		count := 0
		for _, v := range row {
			t := byte('b')
			if v >= 1.0 {
				t = 'o'
			}
			if t == tag {
				count++
				continue
			}
			if count > 0 {
				emit(tag, count)
			}
			tag, count = t, 1
		}
		// Trailing dead cells are omitted.
		if tag == 'o' && count > 0 {
			emit('o', count)
		}
	}
	b.WriteByte('!')
	return b.String()
}
