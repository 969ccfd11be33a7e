package utils

import (
	"math"
	"time"
)

const (
	workdayStartMinutes = 8*60 + 30
	workdayEndMinutes   = 17*60 + 30
)

// WorkdayProgress is the share of the 08:30-17:30 working day that has elapsed.
type WorkdayProgress struct {
	Percent int
	Message string
}

// Progress computes the workday progress for the wall-clock time of now.
func Progress(now time.Time) WorkdayProgress {
	minutes := now.Hour()*60 + now.Minute()

	switch {
	case minutes < workdayStartMinutes:
		return WorkdayProgress{Percent: 0, Message: "เตรียมตัว! 💪"}
	case minutes >= workdayEndMinutes:
		return WorkdayProgress{Percent: 100, Message: "เลิกงานแล้ว! 🎉"}
	}

	elapsed := float64(minutes - workdayStartMinutes)
	total := float64(workdayEndMinutes - workdayStartMinutes)
	percent := int(math.Round(elapsed / total * 100))

	var msg string
	switch {
	case percent < 25:
		msg = "เริ่มต้นวันใหม่! ☀️"
	case percent < 50:
		msg = "สู้ๆ นะ! 💪"
	case percent < 75:
		msg = "ผ่านครึ่งทางแล้ว! 🌟"
	case percent < 90:
		msg = "ใกล้ถึงแล้ว! 🚀"
	default:
		msg = "อีกนิดเดียว! 🏁"
	}
	return WorkdayProgress{Percent: percent, Message: msg}
}

// Greeting returns the time-of-day salutation for name.
func Greeting(now time.Time, name string) string {
	var g string
	switch h := now.Hour(); {
	case h < 12:
		g = "สวัสดีตอนเช้า"
	case h < 17:
		g = "สวัสดีตอนบ่าย"
	default:
		g = "สวัสดีตอนเย็น"
	}
	return g + "คุณ, " + name
}
