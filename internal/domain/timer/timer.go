// Package timer implements the start/pause/resume/finish stopwatch kept in a
// StageProgress. All functions are guarded by state checks: calls made out of
// sequence return false and leave the progress untouched.
package timer

import (
	"fmt"
	"time"

	"retifica_os/internal/domain/entities"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// ReopenReason is recorded on the pause opened when a completed activity is reopened.
const ReopenReason = "Reaberto"

// PauseReasons are the presets offered by the pause dialog. Custom text is also accepted.
var PauseReasons = []string{
	"Banheiro",
	"Almoço",
	"Café",
	"Aguardando peça",
	"Aguardando ferramenta",
	"Fim do expediente",
	"Reunião",
}

func StateOf(sp entities.StageProgress) State {
	switch {
	case sp.FinishedAt != nil:
		return StateFinished
	case sp.StartedAt == nil:
		return StateIdle
	case sp.OpenPause() >= 0:
		return StatePaused
	default:
		return StateRunning
	}
}

// Start begins the timer, or resumes it when paused. StartedAt is set once
// and never overwritten.
func Start(sp *entities.StageProgress, now time.Time) bool {
	switch StateOf(*sp) {
	case StateIdle:
		t := now
		sp.StartedAt = &t
		return true
	case StatePaused:
		return Resume(sp, now)
	}
	return false
}

// Pause opens a pause record. Only a running timer can be paused.
func Pause(sp *entities.StageProgress, now time.Time, reason string) bool {
	if StateOf(*sp) != StateRunning {
		return false
	}
	sp.Pauses = append(sp.Pauses, entities.Pause{Start: now, Reason: reason})
	return true
}

// Resume closes the open pause.
func Resume(sp *entities.StageProgress, now time.Time) bool {
	if StateOf(*sp) != StatePaused {
		return false
	}
	idx := sp.OpenPause()
	end := now
	if end.Before(sp.Pauses[idx].Start) {
		end = sp.Pauses[idx].Start
	}
	sp.Pauses[idx].End = &end
	return true
}

// Finish closes any open pause, stamps FinishedAt and returns the worked
// time. ok is false when the timer was idle or already finished.
func Finish(sp *entities.StageProgress, now time.Time) (elapsed time.Duration, ok bool) {
	switch StateOf(*sp) {
	case StatePaused:
		Resume(sp, now)
	case StateRunning:
	default:
		return 0, false
	}
	t := now
	sp.FinishedAt = &t
	return Elapsed(*sp, now), true
}

// Reopen clears FinishedAt and leaves the timer paused from the former
// finish instant, so the gap until the next Start is not counted.
func Reopen(sp *entities.StageProgress) bool {
	if sp.FinishedAt == nil {
		return false
	}
	sp.Pauses = append(sp.Pauses, entities.Pause{Start: *sp.FinishedAt, Reason: ReopenReason})
	sp.FinishedAt = nil
	return true
}

// Elapsed is (end − startedAt) − Σ pauses, where end is FinishedAt when set
// and now otherwise. An open pause counts up to now.
func Elapsed(sp entities.StageProgress, now time.Time) time.Duration {
	if sp.StartedAt == nil {
		return 0
	}
	end := now
	if sp.FinishedAt != nil {
		end = *sp.FinishedAt
	}
	total := end.Sub(*sp.StartedAt) - Paused(sp, end)
	if total < 0 {
		return 0
	}
	return total
}

// Paused sums pause durations up to end.
func Paused(sp entities.StageProgress, end time.Time) time.Duration {
	var d time.Duration
	for _, p := range sp.Pauses {
		stop := end
		if p.End != nil {
			stop = *p.End
		}
		if stop.After(p.Start) {
			d += stop.Sub(p.Start)
		}
	}
	return d
}

// Format renders d as HH:MM:SS. Hours are not wrapped at 24.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
