package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/loader"
	"github.com/katalvlaran/railnet/rail"
)

const classicInput = "Graph: AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7\n"

func TestParse_Classic(t *testing.T) {
	triples, err := loader.Parse(strings.NewReader(classicInput))
	require.NoError(t, err)
	require.Len(t, triples, 9)
	assert.Equal(t, loader.Triple{Source: "A", Destination: "B", Weight: 5}, triples[0])
	assert.Equal(t, loader.Triple{Source: "A", Destination: "E", Weight: 7}, triples[8])
}

func TestParse_Layout(t *testing.T) {
	in := `# rail network
AB5,BC4

  CD12   DC8
graph:DE6`
	triples, err := loader.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []loader.Triple{
		{"A", "B", 5}, {"B", "C", 4}, {"C", "D", 12}, {"D", "C", 8}, {"D", "E", 6},
	}, triples)
}

func TestParse_Empty(t *testing.T) {
	triples, err := loader.Parse(strings.NewReader("\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, triples)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"A", "AB", "ABx", "AB-1", "1B5", "A 5"} {
		_, err := loader.Parse(strings.NewReader("AB5\n" + in))
		assert.ErrorIs(t, err, loader.ErrMalformedRoute, in)
		if err != nil {
			assert.Contains(t, err.Error(), "line 2", in)
		}
	}
}

func TestLoad_IntoNetwork(t *testing.T) {
	n := rail.New()
	count, err := loader.Load(strings.NewReader(classicInput), n)
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	d, err := n.DistanceOfRoute("A", "E", "B", "C", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(22), d)
}

type failingSink struct{ after int }

func (s *failingSink) AddRoute(string, string, int64) error {
	if s.after == 0 {
		return errors.New("sink full")
	}
	s.after--

	return nil
}

func TestLoad_SinkError(t *testing.T) {
	count, err := loader.Load(strings.NewReader("AB1 BC2 CD3"), &failingSink{after: 2})
	require.Error(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, err.Error(), "CD3")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.txt")
	require.NoError(t, os.WriteFile(path, []byte(classicInput), 0o600))

	g := core.NewGraph()
	count, err := loader.LoadFile(path, g)
	require.NoError(t, err)
	assert.Equal(t, 9, count)
	assert.Equal(t, 5, g.StationCount())

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.txt"), g)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
