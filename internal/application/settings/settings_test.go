package settings

import (
	"testing"
	"time"
)

func TestAPIConfig_Timeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{name: "positive", seconds: 10, want: 10 * time.Second},
		{name: "zero disables", seconds: 0, want: 0},
		{name: "negative disables", seconds: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := APIConfig{TimeoutSeconds: tt.seconds}.Timeout()
			if got != tt.want {
				t.Fatalf("Timeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
