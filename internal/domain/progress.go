package domain

import "fmt"

// ProgressBarWidth is the number of cells in the countdown bar.
const ProgressBarWidth = 30

// Progress is the bar state for one frame.
type Progress struct {
	Filled  int
	Percent int
}

// ComputeProgress applies the bar law: Filled = floor(width*elapsed/total)
// and Percent = floor(elapsed*100/total), with elapsed clamped to [0, total].
func ComputeProgress(elapsed, total int) Progress {
	if total <= 0 {
		return Progress{}
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}
	return Progress{
		Filled:  ProgressBarWidth * elapsed / total,
		Percent: elapsed * 100 / total,
	}
}

// Ratio returns Filled as a fraction of the bar width.
func (p Progress) Ratio() float64 {
	return float64(p.Filled) / float64(ProgressBarWidth)
}

// FormatTime formats whole seconds as zero-padded mm:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
