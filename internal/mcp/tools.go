package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/standardbeagle/growthkit/internal/analytics"
	"github.com/standardbeagle/growthkit/internal/cro"
	"github.com/standardbeagle/growthkit/internal/prioritize"
	"github.com/standardbeagle/growthkit/internal/sentiment"
)

// RegisterTools adds every calculator and validator tool to srv.
func RegisterTools(srv *server.MCPServer) {
	analyzer := sentiment.NewAnalyzer(sentiment.DefaultLexicon())

	rateTool := mcplib.NewTool("cro_conversion_rate",
		mcplib.WithDescription("Calculate a conversion rate from visitors and conversions, with a benchmark rating."),
		mcplib.WithNumber("visitors",
			mcplib.Required(),
			mcplib.Description("Total number of visitors"),
		),
		mcplib.WithNumber("conversions",
			mcplib.Required(),
			mcplib.Description("Number of conversions"),
		),
	)
	srv.AddTool(rateTool, handleConversionRate)

	impactTool := mcplib.NewTool("cro_revenue_impact",
		mcplib.WithDescription("Project the monthly and annual revenue impact of improving a conversion rate."),
		mcplib.WithNumber("current_rate",
			mcplib.Required(),
			mcplib.Description("Current conversion rate as a percentage"),
		),
		mcplib.WithNumber("improved_rate",
			mcplib.Required(),
			mcplib.Description("Target conversion rate as a percentage"),
		),
		mcplib.WithNumber("monthly_visitors",
			mcplib.Required(),
			mcplib.Description("Monthly visitor count"),
		),
		mcplib.WithNumber("avg_order_value",
			mcplib.Required(),
			mcplib.Description("Average order value in dollars"),
		),
	)
	srv.AddTool(impactTool, handleRevenueImpact)

	sigTool := mcplib.NewTool("cro_significance",
		mcplib.WithDescription("Run a two-proportion z-test on an A/B test and recommend whether to deploy the variant."),
		mcplib.WithNumber("visitors_a",
			mcplib.Required(),
			mcplib.Description("Visitors in the control group"),
		),
		mcplib.WithNumber("conversions_a",
			mcplib.Required(),
			mcplib.Description("Conversions in the control group"),
		),
		mcplib.WithNumber("visitors_b",
			mcplib.Required(),
			mcplib.Description("Visitors in the variant group"),
		),
		mcplib.WithNumber("conversions_b",
			mcplib.Required(),
			mcplib.Description("Conversions in the variant group"),
		),
	)
	srv.AddTool(sigTool, handleSignificance)

	sampleTool := mcplib.NewTool("cro_sample_size",
		mcplib.WithDescription("Estimate the per-variant sample size needed to detect a conversion rate change."),
		mcplib.WithNumber("baseline_rate",
			mcplib.Required(),
			mcplib.Description("Baseline conversion rate as a percentage"),
		),
		mcplib.WithNumber("mde",
			mcplib.Required(),
			mcplib.Description("Minimum detectable effect as a relative percentage"),
		),
		mcplib.WithNumber("confidence",
			mcplib.Description("Confidence level, 95 or 99 (default 95)"),
		),
		mcplib.WithNumber("power",
			mcplib.Description("Statistical power, 80 or 90 (default 80)"),
		),
	)
	srv.AddTool(sampleTool, handleSampleSize)

	funnelTool := mcplib.NewTool("cro_funnel",
		mcplib.WithDescription("Analyze a conversion funnel and identify the biggest drop-off between stages."),
		mcplib.WithArray("stages",
			mcplib.Required(),
			mcplib.Description("Funnel stages in order, each with a name and visitor count"),
			mcplib.Items(map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":     map[string]interface{}{"type": "string"},
					"visitors": map[string]interface{}{"type": "number"},
				},
				"required": []string{"name", "visitors"},
			}),
		),
	)
	srv.AddTool(funnelTool, handleFunnel)

	iceTool := mcplib.NewTool("ice_score",
		mcplib.WithDescription("Score a feature idea with the ICE framework (impact, confidence, ease on a 1-10 scale)."),
		mcplib.WithNumber("impact",
			mcplib.Required(),
			mcplib.Description("Impact rating 1-10"),
		),
		mcplib.WithNumber("confidence",
			mcplib.Required(),
			mcplib.Description("Confidence rating 1-10"),
		),
		mcplib.WithNumber("ease",
			mcplib.Required(),
			mcplib.Description("Ease rating 1-10"),
		),
	)
	srv.AddTool(iceTool, handleICE)

	riceTool := mcplib.NewTool("rice_score",
		mcplib.WithDescription("Score a feature idea with the RICE framework (reach per quarter, impact multiplier, confidence percent, effort in person-months)."),
		mcplib.WithNumber("reach",
			mcplib.Required(),
			mcplib.Description("Users reached per quarter"),
		),
		mcplib.WithNumber("impact",
			mcplib.Required(),
			mcplib.Description("Impact multiplier (0.25, 0.5, 1, 2, 3)"),
		),
		mcplib.WithNumber("confidence",
			mcplib.Required(),
			mcplib.Description("Confidence as a percentage"),
		),
		mcplib.WithNumber("effort",
			mcplib.Required(),
			mcplib.Description("Effort in person-months, must be positive"),
		),
	)
	srv.AddTool(riceTool, handleRICE)

	sentimentTool := mcplib.NewTool("sentiment_analyze",
		mcplib.WithDescription("Score the sentiment of a feedback text on a 1-5 scale with a label and confidence."),
		mcplib.WithString("text",
			mcplib.Required(),
			mcplib.Description("Feedback text to analyze"),
		),
	)
	srv.AddTool(sentimentTool, func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcplib.NewToolResultError(err.Error()), nil
		}
		return jsonResult(analyzer.Analyze(text))
	})

	eventsTool := mcplib.NewTool("events_validate_name",
		mcplib.WithDescription("Validate an analytics event name against Title Case and past-tense naming conventions."),
		mcplib.WithString("name",
			mcplib.Required(),
			mcplib.Description("Event name to validate"),
		),
	)
	srv.AddTool(eventsTool, handleValidateEventName)
}

func handleConversionRate(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	visitors, err := request.RequireInt("visitors")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	conversions, err := request.RequireInt("conversions")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	rate := cro.ConversionRate(conversions, visitors)
	return jsonResult(map[string]interface{}{
		"conversion_rate": rate,
		"benchmark":       cro.RateBenchmark(rate),
	})
}

func handleRevenueImpact(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	currentRate, err := request.RequireFloat("current_rate")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	improvedRate, err := request.RequireFloat("improved_rate")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	monthlyVisitors, err := request.RequireInt("monthly_visitors")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	aov, err := request.RequireFloat("avg_order_value")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	return jsonResult(cro.CalculateRevenueImpact(currentRate, improvedRate, monthlyVisitors, aov))
}

func handleSignificance(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	visitorsA, err := request.RequireInt("visitors_a")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	conversionsA, err := request.RequireInt("conversions_a")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	visitorsB, err := request.RequireInt("visitors_b")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	conversionsB, err := request.RequireInt("conversions_b")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	return jsonResult(cro.CalculateSignificance(visitorsA, conversionsA, visitorsB, conversionsB))
}

func handleSampleSize(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	baseline, err := request.RequireFloat("baseline_rate")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	mde, err := request.RequireFloat("mde")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	confidence := request.GetFloat("confidence", 95)
	power := request.GetFloat("power", 80)

	return jsonResult(cro.CalculateSampleSize(baseline, mde, confidence, power))
}

func handleFunnel(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var args struct {
		Stages []cro.Stage `json:"stages"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("invalid stages: %v", err)), nil
	}

	analysis, err := cro.AnalyzeFunnel(args.Stages)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	return jsonResult(analysis)
}

func handleICE(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	impact, err := request.RequireFloat("impact")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	confidence, err := request.RequireFloat("confidence")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	ease, err := request.RequireFloat("ease")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	score := prioritize.ICE(impact, confidence, ease)
	return jsonResult(map[string]interface{}{
		"score":    score,
		"priority": prioritize.ICEPriority(score),
		"category": prioritize.ICECategory(impact, ease),
	})
}

func handleRICE(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	reach, err := request.RequireFloat("reach")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	impact, err := request.RequireFloat("impact")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	confidence, err := request.RequireFloat("confidence")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	effort, err := request.RequireFloat("effort")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	score, err := prioritize.RICE(reach, impact, confidence, effort)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]interface{}{
		"score":    score,
		"priority": prioritize.RICEPriority(score),
	})
}

func handleValidateEventName(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	return jsonResult(analytics.ValidateEventName(name))
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcplib.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}
