package checks

import (
	"context"
	"time"

	"github.com/worldcrafter/lorecheck/internal/config"
	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
)

type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
	Prompts       []string
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}

func newTestChecker(mock *MockLLM) *Checker {
	return NewChecker(oracle.New(mock), config.CheckPrompts{})
}

func at(s string) *model.WorldTime {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &model.WorldTime{Time: t}
}
