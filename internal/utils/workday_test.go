package utils

import (
	"strings"
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2025, time.June, 2, h, m, 0, 0, time.UTC)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		wantPercent int
		wantMsg     string
	}{
		{"before work", at(7, 0), 0, "เตรียมตัว"},
		{"start", at(8, 30), 0, "เริ่มต้นวันใหม่"},
		{"quarter", at(10, 45), 25, "สู้ๆ"},
		{"half", at(13, 0), 50, "ผ่านครึ่งทางแล้ว"},
		{"late", at(15, 30), 78, "ใกล้ถึงแล้ว"},
		{"almost", at(17, 0), 94, "อีกนิดเดียว"},
		{"end", at(17, 30), 100, "เลิกงานแล้ว"},
		{"evening", at(21, 0), 100, "เลิกงานแล้ว"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.now)
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", got.Percent, tt.wantPercent)
			}
			if !strings.HasPrefix(got.Message, tt.wantMsg) {
				t.Errorf("Message = %q, want prefix %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "สวัสดีตอนเช้าคุณ, ดวงใจ"},
		{12, "สวัสดีตอนบ่ายคุณ, ดวงใจ"},
		{17, "สวัสดีตอนเย็นคุณ, ดวงใจ"},
	}
	for _, tt := range tests {
		if got := Greeting(at(tt.hour, 0), "ดวงใจ"); got != tt.want {
			t.Errorf("Greeting(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
