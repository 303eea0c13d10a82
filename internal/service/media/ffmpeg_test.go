package media

import "testing"

func TestDefaultSpeechFormat(t *testing.T) {
	f := DefaultSpeechFormat()

	if f.Codec != "pcm_s16le" {
		t.Errorf("codec = %q, want pcm_s16le", f.Codec)
	}
	if f.SampleRate != 16000 {
		t.Errorf("sample rate = %d, want 16000", f.SampleRate)
	}
	if f.Channels != 1 {
		t.Errorf("channels = %d, want 1 (mono)", f.Channels)
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single", "no such file", "no such file"},
		{"multi", "header\nprogress\nInvalid data found", "Invalid data found"},
		{"trailing newline", "error line\n\n", "error line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastLine([]byte(tt.input)); got != tt.want {
				t.Errorf("lastLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
