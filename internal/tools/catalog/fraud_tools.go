package catalog

import (
	"context"
	"fmt"

	"github.com/HackerKing5128/voicecart/internal/domains/fraudcase"
	"github.com/HackerKing5128/voicecart/internal/tools"
	"github.com/HackerKing5128/voicecart/pkg/toolsystem"
)

// FraudLookupToolBuilder builds a tool that finds a cardholder's open
// fraud case. Only the security question is exposed before the caller
// verifies their identity.
type FraudLookupToolBuilder struct{}

func (b *FraudLookupToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("lookup_fraud_case", "1.0.0", "Find the pending fraud alert for a cardholder by first name").
		AddStringParameter("user_name", "The cardholder's first name", true).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			userName, err := toolsystem.RequireString(args, "user_name")
			if err != nil {
				return nil, err
			}

			c, err := deps.FraudService.LookupPending(ctx, userName)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"case_id":           c.ID,
				"user_name":         c.UserName,
				"security_question": c.SecurityQuestion,
			}, nil
		}).
		AddTags("fraud", "lookup").
		Build()
}

// FraudVerifyToolBuilder builds a tool that checks a security answer
type FraudVerifyToolBuilder struct{}

func (b *FraudVerifyToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("verify_identity", "1.0.0", "Verify the caller's security answer. Transaction details are only revealed on a match.").
		AddNumberParameter("case_id", "The fraud case id from lookup_fraud_case", true).
		AddStringParameter("answer", "The caller's answer to the security question", true).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			caseID, ok := args["case_id"].(float64)
			if !ok {
				return nil, fmt.Errorf("case_id parameter is required and must be a number")
			}
			answer, err := toolsystem.RequireString(args, "answer")
			if err != nil {
				return nil, err
			}

			if err := deps.FraudService.VerifyIdentity(ctx, uint(caseID), answer); err != nil {
				if err == fraudcase.ErrAnswerMismatch {
					return map[string]any{"verified": false}, nil
				}
				return nil, err
			}

			c, err := deps.FraudService.GetCase(ctx, uint(caseID))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"verified":    true,
				"case":        c,
				"card_ending": c.CardEnding,
			}, nil
		}).
		AddTags("fraud", "verify").
		Build()
}

// FraudResolveToolBuilder builds a tool that closes a fraud case
type FraudResolveToolBuilder struct{}

func (b *FraudResolveToolBuilder) Build(deps *tools.ToolDependencies) (toolsystem.Tool, error) {
	return toolsystem.NewToolBuilder("resolve_fraud_case", "1.0.0", "Close a fraud case after the cardholder confirms or disputes the charge").
		AddNumberParameter("case_id", "The fraud case id", true).
		AddStringParameter("outcome", "The cardholder's decision", true, string(fraudcase.StatusConfirmedSafe), string(fraudcase.StatusFraudReported)).
		AddStringParameter("note", "Free-form note about the call outcome", false).
		SetHandler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
			caseID, ok := args["case_id"].(float64)
			if !ok {
				return nil, fmt.Errorf("case_id parameter is required and must be a number")
			}
			outcome, err := toolsystem.RequireString(args, "outcome")
			if err != nil {
				return nil, err
			}
			note := toolsystem.OptionalString(args, "note", "")

			c, err := deps.FraudService.Resolve(ctx, uint(caseID), fraudcase.Status(outcome), note)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"case_id": c.ID,
				"status":  c.Status,
				"note":    c.OutcomeNote,
			}, nil
		}).
		AddTags("fraud", "resolve").
		Build()
}
