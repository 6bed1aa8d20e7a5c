package model

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the ordinal importance of a task.
// The numeric values are part of the persisted format; don't reorder.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "medium"
	}
}

// ParsePriority accepts the names used on the command line.
// Unknown input falls back to medium, the default everywhere else too.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return PriorityLow, true
	case "medium", "med", "m":
		return PriorityMedium, true
	case "high", "h":
		return PriorityHigh, true
	}
	return PriorityMedium, false
}

// Next cycles low -> medium -> high -> low, for the TUI priority key.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Task is the domain model for one user-entered item.
type Task struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
	Priority  Priority
}

// NewTask builds a task with a fresh id and creation time.
// The title must already be validated; NewTask only trims it.
func NewTask(title string, p Priority) Task {
	return Task{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now(),
		Priority:  p,
	}
}

// SortOption selects one of the three total orders for the task list.
type SortOption int

const (
	SortByDateCreated SortOption = iota
	SortByPriority
	SortByAlphabetical
)

func (o SortOption) String() string {
	switch o {
	case SortByPriority:
		return "priority"
	case SortByAlphabetical:
		return "alpha"
	default:
		return "date"
	}
}

// ParseSortOption accepts the names used on the command line and in the
// persisted sort preference.
func ParseSortOption(s string) (SortOption, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date", "created", "datecreated":
		return SortByDateCreated, true
	case "priority", "prio":
		return SortByPriority, true
	case "alpha", "alphabetical", "title":
		return SortByAlphabetical, true
	}
	return SortByDateCreated, false
}

// Next cycles through the options, for the TUI sort key.
func (o SortOption) Next() SortOption {
	switch o {
	case SortByDateCreated:
		return SortByPriority
	case SortByPriority:
		return SortByAlphabetical
	default:
		return SortByDateCreated
	}
}

// SortTasks orders tasks in place. All orders are stable so that items
// comparing equal under the active key keep their relative positions
// instead of jumping around on every re-sort.
//
// Priority and alphabetical order put completed tasks after pending ones,
// whatever their key says.
func SortTasks(tasks []Task, opt SortOption) {
	switch opt {
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i], tasks[j]
			if a.Completed != b.Completed {
				return !a.Completed
			}
			return a.Priority > b.Priority
		})
	case SortByAlphabetical:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i], tasks[j]
			if a.Completed != b.Completed {
				return !a.Completed
			}
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		})
	default: // newest first
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}
