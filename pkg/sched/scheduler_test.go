package sched

import (
	"errors"
	"testing"
	"time"
)

func at(minute, second int) time.Time {
	return time.Date(2025, 6, 1, 10, minute, second, 0, time.UTC)
}

func TestNextSlot(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		minutes []int
		want    time.Time
	}{
		{"before first offset", at(7, 30), []int{15, 30, 45}, at(15, 0)},
		{"between offsets", at(16, 0), []int{0, 15, 30, 45}, at(30, 0)},
		{"exactly on offset moves to next", at(15, 0), []int{0, 15, 30, 45}, at(30, 0)},
		{"past last offset rolls to next hour", at(50, 0), []int{0, 15, 30, 45}, time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextSlot(tt.now, tt.minutes)
			if !got.Equal(tt.want) {
				t.Fatalf("nextSlot(%v, %v) = %v, want %v", tt.now, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestRunPendingFiresDueJobsInRegistrationOrder(t *testing.T) {
	now := at(14, 59)
	s := NewTickScheduler(WithClock(func() time.Time { return now }))

	var order []string
	s.AddHourlyJob("first", []int{15}, func() error {
		order = append(order, "first")
		return nil
	})
	s.AddHourlyJob("second", []int{15}, func() error {
		order = append(order, "second")
		return nil
	})

	s.RunPending()
	if len(order) != 0 {
		t.Fatalf("no job should fire before its slot, got %v", order)
	}

	now = at(15, 0)
	s.RunPending()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected [first second], got %v", order)
	}
}

func TestRunPendingReschedulesForNextSlot(t *testing.T) {
	now := at(15, 1)
	s := NewTickScheduler(WithClock(func() time.Time { return now }))

	runs := 0
	s.AddHourlyJob("collect", []int{0, 15, 30, 45}, func() error {
		runs++
		return nil
	})

	// Registered at 10:15:01, first slot is 10:30.
	s.RunPending()
	if runs != 0 {
		t.Fatalf("job fired before its slot")
	}

	now = at(30, 2)
	s.RunPending()
	if runs != 1 {
		t.Fatalf("expected 1 run at 10:30, got %d", runs)
	}

	// Same tick again must not re-fire.
	s.RunPending()
	if runs != 1 {
		t.Fatalf("job re-fired within the same slot, got %d runs", runs)
	}

	now = at(45, 0)
	s.RunPending()
	if runs != 2 {
		t.Fatalf("expected 2 runs after 10:45, got %d", runs)
	}
}

func TestJobErrorDoesNotStopOtherJobs(t *testing.T) {
	now := at(19, 59)
	s := NewTickScheduler(WithClock(func() time.Time { return now }))

	ran := false
	s.AddHourlyJob("failing", []int{20}, func() error {
		return errors.New("boom")
	})
	s.AddHourlyJob("healthy", []int{20}, func() error {
		ran = true
		return nil
	})

	now = at(20, 0)
	s.RunPending()
	if !ran {
		t.Fatal("healthy job did not run after failing job errored")
	}
}

func TestJobPanicIsContained(t *testing.T) {
	now := at(4, 59)
	s := NewTickScheduler(WithClock(func() time.Time { return now }))

	ran := false
	s.AddHourlyJob("panicking", []int{5}, func() error {
		panic("boom")
	})
	s.AddHourlyJob("healthy", []int{5}, func() error {
		ran = true
		return nil
	})

	now = at(5, 0)
	s.RunPending()
	if !ran {
		t.Fatal("healthy job did not run after panicking job")
	}

	// The panicking job must still be rescheduled.
	now = time.Date(2025, 6, 1, 11, 5, 0, 0, time.UTC)
	ran = false
	s.RunPending()
	if !ran {
		t.Fatal("jobs were not rescheduled after a panic")
	}
}

func TestAddHourlyJobIgnoresInvalidOffsets(t *testing.T) {
	now := at(9, 59)
	s := NewTickScheduler(WithClock(func() time.Time { return now }))

	runs := 0
	s.AddHourlyJob("mixed", []int{-1, 10, 75}, func() error {
		runs++
		return nil
	})

	now = at(10, 0)
	s.RunPending()
	if runs != 1 {
		t.Fatalf("expected the valid offset to fire once, got %d", runs)
	}

	// A job with no valid offsets is never scheduled.
	s.AddHourlyJob("invalid", []int{-5, 99}, func() error {
		t.Fatal("job with no valid offsets must not run")
		return nil
	})
	now = at(39, 0)
	s.RunPending()
}
