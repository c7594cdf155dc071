package catalog

import (
	"context"

	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// FAQSearchToolBuilder builds a tool that answers store questions from the
// embedded FAQ table.
type FAQSearchToolBuilder struct{}

func (b *FAQSearchToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("search_faqs", "1.0.0", "Search store FAQs for questions about delivery, fees, payments or refunds").
		AddStringParameter("query", "The customer's question, e.g. 'is delivery free'", true).
		AddNumberParameter("max_results", "How many answers to return, defaults to 3", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			query, err := toolsystem.RequireString(args, "query")
			if err != nil {
				return nil, err
			}
			maxResults := toolsystem.OptionalInt(args, "max_results", 0)

			results := deps.FAQs.Search(query, maxResults)
			return map[string]any{
				"found": len(results) > 0,
				"faqs":  results,
				"count": len(results),
				"query": query,
			}, nil
		}).
		AddTags("faq", "search").
		Build()
}
