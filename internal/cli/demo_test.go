package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "", "demo")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo", []byte(out))
}

func TestDemoIgnoresLayoutFlags(t *testing.T) {
	want, err := runDemo()
	require.NoError(t, err)

	out, _, err := execute(t, "", "--width", "10", "--max-indent", "2", "demo")
	require.NoError(t, err)
	require.Equal(t, string(want), out)
}
