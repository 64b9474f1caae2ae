package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{"verbose", defaultZapLevel},
		{"", defaultZapLevel},
	}
	for _, tc := range cases {
		if got := toZapLevel(tc.in); got != tc.want {
			t.Errorf("toZapLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGet_SharedInstance(t *testing.T) {
	// Level strings are normalized, so a shouty config value still resolves.
	a := Get(" INFO ")
	b := Get("debug")
	if a == nil {
		t.Fatal("Get returned nil")
	}
	if a != b {
		t.Fatal("Get returned different instances")
	}
}
