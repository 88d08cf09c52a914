package ai

import (
	"context"
	"sync"
)

type stubGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	block   bool
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, s.err
}

func (s *stubGenerator) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
