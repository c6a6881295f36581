package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/healthlit/internal/constants"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso date", input: "2024-01-02", want: "2024-01-02"},
		{name: "surrounding space", input: " 2024-01-02 ", want: "2024-01-02"},
		{name: "today", input: "today", want: time.Now().Format(constants.DateFormat)},
		{name: "empty means today", input: "", want: time.Now().Format(constants.DateFormat)},
		{name: "yesterday", input: "Yesterday", want: time.Now().AddDate(0, 0, -1).Format(constants.DateFormat)},
		{name: "slashes", input: "2024/01/02", wantErr: true},
		{name: "impossible day", input: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NormalizeDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full time", input: "07:30:15", want: "07:30:15"},
		{name: "short time widened", input: "07:30", want: "07:30:00"},
		{name: "single digit hour", input: "7:30", want: "07:30:00"},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NormalizeTime() = %q, want %q", got, tt.want)
			}
		})
	}

	now, err := NormalizeTime("")
	if err != nil {
		t.Fatalf("NormalizeTime(\"\") failed: %v", err)
	}
	if _, err := time.Parse(constants.TimeFormat, now); err != nil {
		t.Errorf("expected HH:MM:SS for empty input, got %q", now)
	}
}
