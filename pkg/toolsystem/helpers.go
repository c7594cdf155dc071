package toolsystem

import (
	"fmt"
	"sort"
)

// ToolBuilder helps create tools with a fluent interface
type ToolBuilder struct {
	name        string
	version     string
	description string
	args        map[string]ArgSpec
	handler     ToolHandler
	tags        []string
}

// NewToolBuilder creates a new tool builder
func NewToolBuilder(name, version, description string) *ToolBuilder {
	return &ToolBuilder{
		name:        name,
		version:     version,
		description: description,
		args:        make(map[string]ArgSpec),
		tags:        make([]string, 0),
	}
}

// AddParameter adds a parameter to the tool
func (tb *ToolBuilder) AddParameter(name string, paramType JSONType, description string, required bool, enum ...string) *ToolBuilder {
	tb.args[name] = ArgSpec{
		Name:        name,
		Type:        paramType,
		Description: description,
		Required:    required,
		Enum:        enum,
	}
	return tb
}

// AddStringParameter adds a string parameter
func (tb *ToolBuilder) AddStringParameter(name, description string, required bool, enum ...string) *ToolBuilder {
	return tb.AddParameter(name, JSONString, description, required, enum...)
}

// AddNumberParameter adds a number parameter
func (tb *ToolBuilder) AddNumberParameter(name, description string, required bool) *ToolBuilder {
	return tb.AddParameter(name, JSONNumber, description, required)
}

// AddBooleanParameter adds a boolean parameter
func (tb *ToolBuilder) AddBooleanParameter(name, description string, required bool) *ToolBuilder {
	return tb.AddParameter(name, JSONBool, description, required)
}

// AddArrayParameter adds an array parameter
func (tb *ToolBuilder) AddArrayParameter(name, description string, required bool) *ToolBuilder {
	return tb.AddParameter(name, JSONArray, description, required)
}

// SetHandler sets the tool handler function
func (tb *ToolBuilder) SetHandler(handler ToolHandler) *ToolBuilder {
	tb.handler = handler
	return tb
}

// AddTags adds tags to the tool
func (tb *ToolBuilder) AddTags(tags ...string) *ToolBuilder {
	tb.tags = append(tb.tags, tags...)
	return tb
}

// Build creates the final Tool
func (tb *ToolBuilder) Build() (Tool, error) {
	if tb.handler == nil {
		return Tool{}, fmt.Errorf("handler is required for tool %s", tb.name)
	}

	args := make([]ArgSpec, 0, len(tb.args))
	for _, a := range tb.args {
		args = append(args, a)
	}
	// stable arg order regardless of map iteration
	sort.Slice(args, func(i, j int) bool { return args[i].Name < args[j].Name })

	return Tool{
		Spec: ToolSpec{
			Name:        tb.name,
			Version:     tb.version,
			Description: tb.description,
			Args:        args,
			Tags:        tb.tags,
		},
		Handler: tb.handler,
		Version: tb.version,
		Tags:    tb.tags,
	}, nil
}

// BuildAndRegister creates the tool and registers it to the registry
func (tb *ToolBuilder) BuildAndRegister(registry Registry) error {
	tool, err := tb.Build()
	if err != nil {
		return err
	}
	return registry.Register(tool)
}

// RequireString pulls a required string argument out of a handler's args map.
func RequireString(args map[string]any, name string) (string, error) {
	v, ok := args[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s parameter is required and must be a string", name)
	}
	return v, nil
}

// OptionalString returns the string argument or fallback when absent.
func OptionalString(args map[string]any, name, fallback string) string {
	if v, ok := args[name].(string); ok && v != "" {
		return v
	}
	return fallback
}

// OptionalInt returns the numeric argument as int or fallback when absent.
// JSON numbers arrive as float64.
func OptionalInt(args map[string]any, name string, fallback int) int {
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return fallback
}
