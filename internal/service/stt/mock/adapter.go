// Package mock provides a mock STT adapter for testing without cloud
// credentials. It returns canned presentation transcripts, cycling
// through the defaults so successive analyses get different text.
package mock

import (
	"context"
	"sync"
)

// DefaultTranscripts provides sample presentation transcripts.
var DefaultTranscripts = []string{
	"Good morning everyone. Thank you for joining today. Um, I would like to walk you through our quarterly results and, uh, the roadmap for next year.",
	"So basically the project is on track. We have, like, completed most of the milestones and I really appreciate the effort the team has put in.",
	"Please take a look at this slide. You know, the numbers speak for themselves, and I would be happy to answer any questions at the end.",
	"We must improve our delivery times. You need to focus on the core features first, and we should cut the scope where it does not add value.",
	"Thank you all for your attention. I hope this presentation was helpful, and I look forward to your feedback.",
}

// Adapter implements stt.Transcriber with canned responses.
type Adapter struct {
	mu      sync.Mutex
	counter int
	closed  bool
}

// New creates a new mock STT adapter.
func New() *Adapter {
	return &Adapter{}
}

// Transcribe returns the next canned transcript, ignoring the audio file.
func (a *Adapter) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	text := DefaultTranscripts[a.counter%len(DefaultTranscripts)]
	a.counter++
	return text, nil
}

// Close ends the mock session.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}
