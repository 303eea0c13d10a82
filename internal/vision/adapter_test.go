package vision

import (
	"testing"

	"github.com/Uday1017/Vocably/internal/models"
)

func TestAdapt_NilReport(t *testing.T) {
	if got := Adapt(nil); got != nil {
		t.Errorf("expected nil signals for nil report, got %+v", got)
	}
}

func TestAdapt_DegenerateReport(t *testing.T) {
	// Analyzer ran but saw nothing: zero frames, unknown expression.
	report := &models.VisualReport{DominantExpression: "unknown", FramesAnalyzed: 0}

	if got := Adapt(report); got != nil {
		t.Errorf("expected nil signals for degenerate report, got %+v", got)
	}
}

func TestAdapt_ValidReport(t *testing.T) {
	report := &models.VisualReport{
		FacePresence:       92.0,
		EyeContactPct:      75.5,
		HandUsagePct:       40.0,
		SmilePct:           22.0,
		DominantExpression: "engaging",
		FramesAnalyzed:     120,
	}

	sig := Adapt(report)
	if sig == nil {
		t.Fatal("expected signals, got nil")
	}
	if sig.EyeContactPct != 75.5 {
		t.Errorf("EyeContactPct = %v, want 75.5", sig.EyeContactPct)
	}
	if sig.HandUsagePct != 40.0 {
		t.Errorf("HandUsagePct = %v, want 40.0", sig.HandUsagePct)
	}
	if sig.SmilePct != 22.0 {
		t.Errorf("SmilePct = %v, want 22.0", sig.SmilePct)
	}
	if sig.DominantExpression != ExpressionEngaging {
		t.Errorf("DominantExpression = %v, want engaging", sig.DominantExpression)
	}
}

func TestAdapt_ClampsPercentages(t *testing.T) {
	report := &models.VisualReport{
		EyeContactPct:      130,
		HandUsagePct:       -5,
		SmilePct:           100.01,
		DominantExpression: "neutral",
		FramesAnalyzed:     10,
	}

	sig := Adapt(report)
	if sig == nil {
		t.Fatal("expected signals, got nil")
	}
	if sig.EyeContactPct != 100 {
		t.Errorf("EyeContactPct = %v, want 100", sig.EyeContactPct)
	}
	if sig.HandUsagePct != 0 {
		t.Errorf("HandUsagePct = %v, want 0", sig.HandUsagePct)
	}
	if sig.SmilePct != 100 {
		t.Errorf("SmilePct = %v, want 100", sig.SmilePct)
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		label string
		want  Expression
	}{
		{"engaging", ExpressionEngaging},
		{"Engaging", ExpressionEngaging},
		{" neutral ", ExpressionNeutral},
		{"serious", ExpressionSerious},
		{"unknown", ExpressionUnknown},
		{"", ExpressionUnknown},
		{"confused", ExpressionUnknown},
	}

	for _, tt := range tests {
		if got := ParseExpression(tt.label); got != tt.want {
			t.Errorf("ParseExpression(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
