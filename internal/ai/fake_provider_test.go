package ai

import (
	"context"
	"sync"
)

type fakeProvider struct {
	mu         sync.Mutex
	name       string
	configured bool
	reply      string
	err        error
	calls      int
	last       GenerateOptions
}

func (f *fakeProvider) Name() string       { return f.name }
func (f *fakeProvider) IsConfigured() bool { return f.configured }

func (f *fakeProvider) Generate(_ context.Context, opts GenerateOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = opts
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
