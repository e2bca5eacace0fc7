package inline

import (
	"encoding/json"
	"io"

	"github.com/statepane/statepane/source"
	"github.com/statepane/statepane/viewstate"
	"github.com/invopop/jsonschema"
)

// Transition is an applied state change.
type Transition struct {
	From    string `json:"from"`
	To      string `json:"to"`
	AfterMs int64  `json:"after_ms" jsonschema:"description=Milliseconds since the run started"`
}

// Output is the JSON document printed by inline mode.
type Output struct {
	RunID       string              `json:"run_id" jsonschema:"format=uuid"`
	Source      string              `json:"source"`
	Target      string              `json:"target"`
	State       viewstate.ViewState `json:"state" jsonschema:"description=Final placeholder state such as content or error"`
	Error       string              `json:"error,omitempty"`
	Items       []*source.Item      `json:"items"`
	Transitions []*Transition       `json:"transitions"`
}

// Schema returns the JSON schema of Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect(&Output{})
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
