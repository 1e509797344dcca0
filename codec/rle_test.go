package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ineido/cgol/codec"
)

const gliderRLE = `#N Glider
#O Richard K. Guy
#C The smallest, most common, and first discovered spaceship.
x = 3, y = 3, rule = B3/S23
bob$2bo$3o!
`

func TestDecodeGlider(t *testing.T) {
	p, err := codec.DecodeRLE(strings.NewReader(gliderRLE))
	require.NoError(t, err)
	require.Equal(t, "Glider", p.Name)
	require.Equal(t, "Richard K. Guy", p.Author)
	require.Len(t, p.Comments, 1)
	require.Equal(t, "B3/S23", p.Rule)
	require.Equal(t, 3, p.Width)
	require.Equal(t, 3, p.Height)
	require.Equal(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}, p.Rows)
}

func TestEncodeBlinker(t *testing.T) {
	var buf bytes.Buffer
	p := codec.Pattern{Name: "Blinker", Rows: [][]float64{{1, 1, 1}}}
	require.NoError(t, codec.EncodeRLE(&buf, p))
	require.Equal(t, "#N Blinker\nx = 3, y = 1, rule = B3/S23\n3o!\n", buf.String())
}

func TestRLERoundTrip(t *testing.T) {
	p, err := codec.DecodeRLE(strings.NewReader(gliderRLE))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.EncodeRLE(&buf, p))

	back, err := codec.DecodeRLE(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Rows, back.Rows)
	require.Equal(t, p.Name, back.Name)
}

func TestDecodeRowMultiplierAndPadding(t *testing.T) {
	// Short rows pad to the declared width, a multiplier on $ skips dead
	// rows, and missing trailing rows fill in dead.
	p, err := codec.DecodeRLE(strings.NewReader("x = 3, y = 4\no2$3o!"))
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{1, 0, 0},
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}, p.Rows)
}

func TestDecodeErrors(t *testing.T) {
	_, err := codec.DecodeRLE(strings.NewReader("3o!"))
	require.ErrorIs(t, err, codec.ErrMalformedPattern, "missing dimension line")

	_, err = codec.DecodeRLE(strings.NewReader("x = 3, y = 1\n4o!"))
	require.ErrorIs(t, err, codec.ErrMalformedPattern, "row longer than declared width")

	_, err = codec.DecodeRLE(strings.NewReader("x = 2, y = 1\nzz!"))
	require.ErrorIs(t, err, codec.ErrMalformedPattern, "unknown body character")

	_, err = codec.DecodeRLE(strings.NewReader("x = 0, y = 3\n!"))
	require.ErrorIs(t, err, codec.ErrMalformedPattern, "non-positive dimensions")
}
