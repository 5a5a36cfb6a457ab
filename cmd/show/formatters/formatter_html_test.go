package formatters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLFormatter_Format(t *testing.T) {
	formatter := &HTMLFormatter{}

	output, err := formatter.Format(sampleSnapshot(), FormatOptions{Label: "app"})

	require.NoError(t, err)
	assert.NotContains(t, output, graphDataMarker)
	assert.NotContains(t, output, graphLabelMarker)
	assert.Contains(t, output, `"file:app.main"`)
	assert.Contains(t, output, `"function:app.util.helper"`)
	assert.Contains(t, output, `const GRAPH_LABEL = "app";`)
	assert.True(t, strings.HasPrefix(output, "<!DOCTYPE html>"))
}
