// Package stt defines the interface for Speech-to-Text adapters.
package stt

import "context"

// Transcriber defines the interface for STT providers (Google, Azure, AWS, etc.).
// Implementations transcribe a complete audio file in one call; streaming is
// not part of this surface.
type Transcriber interface {
	// Transcribe converts the audio file at audioPath into a transcript.
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Close releases provider resources.
	Close() error
}
