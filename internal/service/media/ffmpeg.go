// Package media extracts the audio track from uploaded presentation
// videos so it can be fed to the STT adapter.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"
)

// AudioFormat defines audio extraction format options.
type AudioFormat struct {
	Codec      string
	SampleRate int
	Channels   int
}

// DefaultSpeechFormat returns the format the STT adapters expect:
// LINEAR16 mono at 16 kHz.
func DefaultSpeechFormat() AudioFormat {
	return AudioFormat{
		Codec:      "pcm_s16le",
		SampleRate: 16000,
		Channels:   1, // mono
	}
}

// Extractor extracts a speech-ready audio file from a video file.
type Extractor interface {
	ExtractAudio(ctx context.Context, videoPath, audioPath string) error
}

// FFmpeg implements Extractor by shelling out to the ffmpeg binary.
type FFmpeg struct {
	logger     zerolog.Logger
	ffmpegPath string
	format     AudioFormat
}

// NewFFmpeg creates an ffmpeg-backed extractor.
func NewFFmpeg(logger zerolog.Logger, format AudioFormat) (*FFmpeg, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	return &FFmpeg{
		logger:     logger.With().Str("component", "media-extractor").Logger(),
		ffmpegPath: path,
		format:     format,
	}, nil
}

// ExtractAudio strips the video stream and writes the audio track to
// audioPath in the configured format, overwriting any existing file.
func (f *FFmpeg) ExtractAudio(ctx context.Context, videoPath, audioPath string) error {
	args := []string{
		"-y", "-hide_banner",
		"-i", videoPath,
		"-vn", // no video
		"-acodec", f.format.Codec,
		"-ar", strconv.Itoa(f.format.SampleRate),
		"-ac", strconv.Itoa(f.format.Channels),
		audioPath,
	}

	f.logger.Debug().
		Str("video", videoPath).
		Str("audio", audioPath).
		Strs("args", args).
		Msg("extracting audio")

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg execution failed: %w: %s", err, lastLine(stderr.Bytes()))
	}

	f.logger.Info().
		Str("video", videoPath).
		Str("audio", audioPath).
		Msg("audio extracted")
	return nil
}

// lastLine returns the final non-empty stderr line, which is where
// ffmpeg puts its actual error message.
func lastLine(out []byte) string {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	if len(lines) == 0 {
		return ""
	}
	return string(bytes.TrimSpace(lines[len(lines)-1]))
}
