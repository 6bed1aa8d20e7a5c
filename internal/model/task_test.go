package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	before := time.Now()
	task := NewTask("  Buy milk  ", PriorityHigh)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.False(t, task.CreatedAt.Before(before))

	other := NewTask("Buy milk", PriorityHigh)
	assert.NotEqual(t, task.ID, other.ID)
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"low", PriorityLow, true},
		{"L", PriorityLow, true},
		{"medium", PriorityMedium, true},
		{"med", PriorityMedium, true},
		{"HIGH", PriorityHigh, true},
		{" high ", PriorityHigh, true},
		{"urgent", PriorityMedium, false},
		{"", PriorityMedium, false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestSortOptionRoundTrip(t *testing.T) {
	for _, opt := range []SortOption{SortByDateCreated, SortByPriority, SortByAlphabetical} {
		parsed, ok := ParseSortOption(opt.String())
		require.True(t, ok)
		assert.Equal(t, opt, parsed)
	}

	_, ok := ParseSortOption("bogus")
	assert.False(t, ok)
}

func TestSortOptionNextCycles(t *testing.T) {
	assert.Equal(t, SortByPriority, SortByDateCreated.Next())
	assert.Equal(t, SortByAlphabetical, SortByPriority.Next())
	assert.Equal(t, SortByDateCreated, SortByAlphabetical.Next())
}

func mkTask(title string, p Priority, done bool, created time.Time) Task {
	return Task{ID: title, Title: title, Priority: p, Completed: done, CreatedAt: created}
}

func titles(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestSortByDateNewestFirst(t *testing.T) {
	base := time.Now()
	tasks := []Task{
		mkTask("old", PriorityMedium, false, base.Add(-2*time.Hour)),
		mkTask("new", PriorityMedium, false, base),
		mkTask("mid", PriorityMedium, false, base.Add(-time.Hour)),
	}
	SortTasks(tasks, SortByDateCreated)
	assert.Equal(t, []string{"new", "mid", "old"}, titles(tasks))
}

func TestSortByPriorityCompletedLast(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		mkTask("A", PriorityHigh, false, now),
		mkTask("B", PriorityLow, true, now),
		mkTask("C", PriorityMedium, false, now),
	}
	SortTasks(tasks, SortByPriority)
	assert.Equal(t, []string{"A", "C", "B"}, titles(tasks))
}

func TestSortByPriorityCompletedHighStillLast(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		mkTask("done-high", PriorityHigh, true, now),
		mkTask("pending-low", PriorityLow, false, now),
	}
	SortTasks(tasks, SortByPriority)
	assert.Equal(t, []string{"pending-low", "done-high"}, titles(tasks))
}

func TestSortAlphabeticalCaseInsensitive(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		mkTask("banana", PriorityMedium, false, now),
		mkTask("Apple", PriorityMedium, false, now),
	}
	SortTasks(tasks, SortByAlphabetical)
	assert.Equal(t, []string{"Apple", "banana"}, titles(tasks))
}

func TestSortAlphabeticalCompletedLast(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		mkTask("aardvark", PriorityMedium, true, now),
		mkTask("zebra", PriorityMedium, false, now),
	}
	SortTasks(tasks, SortByAlphabetical)
	assert.Equal(t, []string{"zebra", "aardvark"}, titles(tasks))
}

func TestSortIsStable(t *testing.T) {
	now := time.Now()
	// Same priority and completion; relative order must survive.
	tasks := []Task{
		mkTask("first", PriorityMedium, false, now),
		mkTask("second", PriorityMedium, false, now),
		mkTask("third", PriorityMedium, false, now),
	}
	SortTasks(tasks, SortByPriority)
	assert.Equal(t, []string{"first", "second", "third"}, titles(tasks))
}
