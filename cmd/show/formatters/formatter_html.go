package formatters

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
)

//go:embed viewer.html
var viewerHTML string

const (
	graphDataMarker  = "__GRAPH_JSON__"
	graphLabelMarker = "__GRAPH_LABEL__"
)

// HTMLFormatter renders graph snapshots as a self-contained interactive
// HTML page.
type HTMLFormatter struct{}

// Format injects the graph JSON into the embedded viewer page. The page
// consumes only the snapshot contract: node identity, label and kind, plus
// edge kind.
func (f *HTMLFormatter) Format(snapshot codegraph.Snapshot, opts FormatOptions) (string, error) {
	jsonFormatter := &JSONFormatter{}
	data, err := jsonFormatter.Format(snapshot, opts)
	if err != nil {
		return "", err
	}

	label, err := json.Marshal(opts.Label)
	if err != nil {
		return "", err
	}

	page := strings.Replace(viewerHTML, graphDataMarker, data, 1)
	page = strings.Replace(page, graphLabelMarker, string(label), 1)
	return page, nil
}
