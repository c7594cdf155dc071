package tools

import (
	"fmt"

	"github.com/HackerKing5128/voicecart/internal/domains/cart"
	"github.com/HackerKing5128/voicecart/internal/domains/catalog"
	"github.com/HackerKing5128/voicecart/internal/domains/faq"
	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/internal/domains/recipe"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// DefaultSession is used when a tool call carries no session id.
const DefaultSession = "default"

// ToolDependencies holds all the services that tools need access to
type ToolDependencies struct {
	// Services
	CatalogService catalog.Service
	CartService    cart.Service
	OrderService   order.Service
	FraudService   fraudcase.Service

	// Resolvers
	Recipes *recipe.Resolver
	FAQs    *faq.Searcher

	// System components
	Logger *Logger.Logger
}

// ToolFactory creates tools with dependencies injected
type ToolFactory struct {
	deps     *ToolDependencies
	builders map[string]ToolBuilder
	tools    map[string]toolsystem.Tool
}

// NewToolFactory creates a new tool factory with dependencies
func NewToolFactory(deps *ToolDependencies) *ToolFactory {
	return &ToolFactory{
		deps:     deps,
		builders: make(map[string]ToolBuilder),
		tools:    make(map[string]toolsystem.Tool),
	}
}

// GetDependencies returns the tool dependencies
func (tf *ToolFactory) GetDependencies() *ToolDependencies {
	return tf.deps
}

// ToolBuilder interface for tools that need dependencies
type ToolBuilder interface {
	Build(deps *ToolDependencies) (toolsystem.Tool, error)
}

// RegisterBuilder registers a tool builder with a name
func (tf *ToolFactory) RegisterBuilder(name string, builder ToolBuilder) error {
	if _, exists := tf.builders[name]; exists {
		return fmt.Errorf("tool builder '%s' already registered", name)
	}
	tf.builders[name] = builder
	return nil
}

// BuildTool builds a specific tool by name
func (tf *ToolFactory) BuildTool(name string) (toolsystem.Tool, error) {
	builder, exists := tf.builders[name]
	if !exists {
		return toolsystem.Tool{}, fmt.Errorf("tool builder '%s' not found", name)
	}

	tool, err := builder.Build(tf.deps)
	if err != nil {
		return toolsystem.Tool{}, fmt.Errorf("failed to build tool '%s': %w", name, err)
	}

	tf.tools[name] = tool
	return tool, nil
}

// BuildAllTools builds all registered tools
func (tf *ToolFactory) BuildAllTools() (map[string]toolsystem.Tool, error) {
	for name := range tf.builders {
		if _, err := tf.BuildTool(name); err != nil {
			return nil, err
		}
	}
	return tf.tools, nil
}

// RegisterAll builds every tool and registers it with the registry.
func (tf *ToolFactory) RegisterAll(registry toolsystem.Registry) error {
	built, err := tf.BuildAllTools()
	if err != nil {
		return err
	}
	for name, tool := range built {
		if err := registry.Register(tool); err != nil {
			return fmt.Errorf("failed to register tool '%s': %w", name, err)
		}
	}
	return nil
}

// GetTools returns all built tools
func (tf *ToolFactory) GetTools() map[string]toolsystem.Tool {
	return tf.tools
}
