package summary

import (
	"context"
	"fmt"

	"github.com/worldcrafter/lorecheck/internal/config"
	"github.com/worldcrafter/lorecheck/internal/core/common"
	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/llm"
)

const defaultReportPrompt = `You are summarizing a consistency report for a fictional world.

Findings:
%s

Write a short prose digest (at most one paragraph) for the world's author: what kinds of problems were found, which are most urgent, and where to start fixing.

Return a JSON object:
{"summary": "..."}
Return ONLY the JSON object.`

type summaryResult struct {
	Summary string `json:"summary"`
}

// ReportSummarizer turns a report's issue list into a prose digest. Large
// reports are summarized in chunks and the partial digests reduced into one.
type ReportSummarizer struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewReportSummarizer(client llm.LLMClient, prompts config.SummaryPrompts) *ReportSummarizer {
	prompt := prompts.Report
	if prompt == "" {
		prompt = defaultReportPrompt
	}
	return &ReportSummarizer{
		LLM:    client,
		Prompt: prompt,
	}
}

func (s *ReportSummarizer) Summarize(ctx context.Context, report *model.Report) (string, error) {
	if report.TotalIssues == 0 {
		return "No consistency issues found.", nil
	}

	lines := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		lines = append(lines, fmt.Sprintf("- [%s/%s] %s: %s", issue.Severity, issue.Category, issue.Title, issue.Description))
	}
	return s.reduce(ctx, lines)
}

func (s *ReportSummarizer) reduce(ctx context.Context, lines []string) (string, error) {
	const chunkSize = 20

	if len(lines) <= chunkSize {
		findings := ""
		for _, l := range lines {
			findings += l + "\n"
		}

		response, err := s.LLM.Generate(ctx, fmt.Sprintf(s.Prompt, findings))
		if err != nil {
			return "", fmt.Errorf("failed to generate report summary: %w", err)
		}

		result, err := common.ParseJSON[summaryResult](response)
		if err != nil {
			// Some models answer in plain prose despite the instruction.
			return response, nil
		}
		return result.Summary, nil
	}

	var partials []string
	for i := 0; i < len(lines); i += chunkSize {
		end := i + chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		partial, err := s.reduce(ctx, lines[i:end])
		if err != nil {
			continue
		}
		partials = append(partials, "- "+partial)
	}
	if len(partials) == 0 {
		return "", fmt.Errorf("failed to summarize any chunk of the report")
	}

	return s.reduce(ctx, partials)
}
