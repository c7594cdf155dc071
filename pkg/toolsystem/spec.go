package toolsystem

import "context"

type JSONType string

const (
	JSONString JSONType = "string"
	JSONNumber JSONType = "number"
	JSONObject JSONType = "object"
	JSONArray  JSONType = "array"
	JSONBool   JSONType = "boolean"
)

type ArgSpec struct {
	Name        string
	Type        JSONType
	Description string
	Required    bool
	Enum        []string
}

// ToolSpec is the schema surface handed to the conversation layer so the LLM
// can pick and call tools by name.
type ToolSpec struct {
	Name        string
	Version     string
	Description string
	Args        []ArgSpec
	Tags        []string
}

type ToolHandler func(ctx context.Context, args map[string]any) (map[string]any, error)

type Tool struct {
	Spec    ToolSpec
	Handler ToolHandler
	Version string   // for registry management
	Tags    []string // for categorization
}
