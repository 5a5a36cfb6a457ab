package formatters

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
)

func dotGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

func TestDOTFormatter_Format(t *testing.T) {
	formatter := &DOTFormatter{}

	output, err := formatter.Format(sampleSnapshot(), FormatOptions{Label: "app"})

	require.NoError(t, err)
	dotGoldie(t).Assert(t, "dot_app", []byte(output))
}

func TestDOTFormatter_NoLabel(t *testing.T) {
	formatter := &DOTFormatter{}

	output, err := formatter.Format(sampleSnapshot(), FormatOptions{})

	require.NoError(t, err)
	assert.NotContains(t, output, "labelloc")
}

func TestDOTFormatter_EmptyGraph(t *testing.T) {
	formatter := &DOTFormatter{}

	output, err := formatter.Format(codegraph.Snapshot{}, FormatOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "digraph blueprint {")
	assert.Contains(t, output, "rankdir=LR;")
}
