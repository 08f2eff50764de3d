package datagen

import (
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-creditgen/internal/logging"
)

// ProgressReporter tracks and reports progress through a fixed list of
// generation stages.
type ProgressReporter struct {
	name        string
	totalStages int
	done        int
	rows        int
	started     time.Time
	stageStart  time.Time
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(name string, totalStages, rows int) *ProgressReporter {
	now := time.Now()
	return &ProgressReporter{
		name:        name,
		totalStages: totalStages,
		rows:        rows,
		started:     now,
		stageStart:  now,
	}
}

// StageDone records a finished stage and logs it.
func (p *ProgressReporter) StageDone(stage string) {
	p.done++
	now := time.Now()
	pct := float64(p.done) / float64(p.totalStages) * 100
	log := logging.Stage(stage)
	log.Debug().
		Str("table", p.name).
		Int("step", p.done).
		Int("steps", p.totalStages).
		Float64("percent", pct).
		Dur("elapsed", now.Sub(p.stageStart)).
		Msg("Stage complete")
	p.stageStart = now
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("table", p.name).
		Int("rows", p.rows).
		Int("stages", p.done).
		Dur("elapsed", time.Since(p.started)).
		Msg("Table complete")
}

// FormatSize formats a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
