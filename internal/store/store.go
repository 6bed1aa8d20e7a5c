// Package store owns the authoritative in-memory task collection.
// Every mutation re-persists a full snapshot through the injected
// Persister; the presentation layers (CLI, TUI) only read snapshots
// and call mutations, so the store can be tested without either.
package store

import (
	"strings"

	"github.com/ebalint/taskdeck/internal/model"
)

type Store struct {
	tasks []model.Task
	order model.SortOption
	p     Persister
}

// New loads the persisted collection and the last sort choice, falling
// back to defaultSort when none was stored. The loaded order is kept
// as-is; tasks are only re-sorted when the user acts.
func New(p Persister, defaultSort model.SortOption) *Store {
	order, ok := p.LoadSortOption()
	if !ok {
		order = defaultSort
	}
	return &Store{
		tasks: p.Load(),
		order: order,
		p:     p,
	}
}

// Tasks returns a snapshot copy in the current display order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int { return len(s.tasks) }

// Order is the sort option in effect.
func (s *Store) Order() model.SortOption { return s.order }

// Get looks a task up by id.
func (s *Store) Get(id string) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new pending task and re-applies the current order.
// A title that trims to empty is rejected: nothing is stored and the
// second return is false.
func (s *Store) Add(title string, p model.Priority) (model.Task, bool) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, false
	}
	t := model.NewTask(title, p)
	s.tasks = append(s.tasks, t)
	model.SortTasks(s.tasks, s.order)
	s.p.Save(s.tasks)
	return t, true
}

// ToggleCompleted flips the completion flag. An unknown id is a no-op;
// callers normally hold an id taken from a fresh snapshot.
func (s *Store) ToggleCompleted(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.p.Save(s.tasks)
}

// Rename updates title and priority in place. An empty trimmed title
// leaves the task untouched.
func (s *Store) Rename(id, newTitle string, p model.Priority) {
	title := strings.TrimSpace(newTitle)
	if title == "" {
		return
	}
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks[i].Title = title
	s.tasks[i].Priority = p
	model.SortTasks(s.tasks, s.order)
	s.p.Save(s.tasks)
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.p.Save(s.tasks)
}

// RemoveWhere bulk-deletes every task the predicate matches. Used for
// "clear completed" and "clear all".
func (s *Store) RemoveWhere(match func(model.Task) bool) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !match(t) {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.p.Save(s.tasks)
}

// Insert puts a previously removed task back at the given position,
// clamped to the collection bounds. Supports the TUI's undo.
func (s *Store) Insert(i int, t model.Task) {
	if i < 0 {
		i = 0
	}
	if i > len(s.tasks) {
		i = len(s.tasks)
	}
	s.tasks = append(s.tasks[:i], append([]model.Task{t}, s.tasks[i:]...)...)
	s.p.Save(s.tasks)
}

// SortBy re-orders the collection and remembers the choice.
func (s *Store) SortBy(opt model.SortOption) {
	s.order = opt
	model.SortTasks(s.tasks, opt)
	s.p.Save(s.tasks)
	s.p.SaveSortOption(opt)
}

// Reload replaces the in-memory collection with whatever is on disk,
// for when another process rewrote the data file.
func (s *Store) Reload() {
	s.tasks = s.p.Load()
}

// Stats counts completed and pending tasks for headers.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
