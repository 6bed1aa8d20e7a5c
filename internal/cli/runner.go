package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ebalint/taskdeck/internal/model"
	"github.com/ebalint/taskdeck/internal/store"
	"github.com/ebalint/taskdeck/internal/tui"
	"github.com/ebalint/taskdeck/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group    bool   // list grouped by pending/done
	DataPath string // task data file, watched by the interactive list
}

// Run dispatches subcommands against the task store and returns an exit
// code (0 ok, 1 error, 2 usage).
func Run(s *store.Store, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(s, opt)

	case "ui":
		if err := tui.Run(s, opt.DataPath); err != nil {
			ui.Fail("ui: " + err.Error())
			return 1
		}
		return 0

	case "add":
		fs := flag.NewFlagSet("add", flag.ContinueOnError)
		prio := fs.String("p", "medium", "priority: low|medium|high")
		if err := fs.Parse(a); err != nil {
			return 2
		}
		if fs.NArg() == 0 {
			ui.Fail("usage: taskdeck add [-p low|medium|high] <title...>")
			return 2
		}
		return doAdd(s, strings.Join(fs.Args(), " "), *prio)

	case "done":
		id, code := taskIDAt(s, "done", a)
		if code != 0 {
			return code
		}
		s.ToggleCompleted(id)
		ui.OK("toggled")
		return 0

	case "edit":
		fs := flag.NewFlagSet("edit", flag.ContinueOnError)
		prio := fs.String("p", "", "priority: low|medium|high")
		if err := fs.Parse(a); err != nil {
			return 2
		}
		if fs.NArg() < 2 {
			ui.Fail("usage: taskdeck edit [-p low|medium|high] <index> <title...>")
			return 2
		}
		return doEdit(s, fs.Arg(0), strings.Join(fs.Args()[1:], " "), *prio)

	case "rm":
		id, code := taskIDAt(s, "rm", a)
		if code != 0 {
			return code
		}
		s.Remove(id)
		ui.OK("removed")
		return 0

	case "clear":
		return doClear(s, a)

	case "sort":
		if len(a) != 1 {
			ui.Fail("usage: taskdeck sort <date|priority|alpha>")
			return 2
		}
		order, ok := model.ParseSortOption(a[0])
		if !ok {
			ui.Fail("sort: unknown order: " + a[0])
			return 2
		}
		s.SortBy(order)
		ui.OK("sorted by " + order.String())
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`taskdeck - a tiny task list

Usage:
  taskdeck <subcommand> [args]

Subcommands:
  add [-p low|medium|high] <title...>    Add a new task
  ls                                     List tasks
  ui                                     Interactive list
  done <index>                           Toggle done for task at 1-based index
  edit [-p ...] <index> <title...>       Retitle (and reprioritize) a task
  rm <index>                             Remove task at 1-based index
  clear [--completed|--all]              Bulk delete (default: completed)
  sort <date|priority|alpha>             Re-order the list

Examples:
  taskdeck add -p high "Renew passport"
  taskdeck ls
  taskdeck done 2
  taskdeck sort priority
`)
}

// taskIDAt resolves a single 1-based index argument to a task id from the
// current view order.
func taskIDAt(s *store.Store, cmd string, a []string) (string, int) {
	if len(a) != 1 {
		ui.Fail("usage: taskdeck " + cmd + " <index>")
		return "", 2
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(cmd + ": not a number: " + a[0])
		return "", 2
	}
	view := s.Tasks()
	if n < 1 || n > len(view) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(view), n))
		fmt.Fprintln(os.Stderr, ui.Current().Muted.Render("Hint: run `taskdeck ls` to see valid indexes"))
		return "", 2
	}
	return view[n-1].ID, 0
}

// -------------- subcommand impls ----------------

func doList(s *store.Store, opt Options) int {
	tasks := s.Tasks()
	d, p := s.Stats()

	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s",
		t.Title.Render("Tasks"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(tasks),
		t.Muted.Render("("+s.Order().String()+")"),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `taskdeck add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(s *store.Store, title, prio string) int {
	p, ok := model.ParsePriority(prio)
	if !ok {
		ui.Fail("add: unknown priority: " + prio)
		return 2
	}
	if _, ok := s.Add(title, p); !ok {
		ui.Fail("add: empty title")
		return 2
	}
	ui.OK("added")
	return 0
}

func doEdit(s *store.Store, indexArg, title, prio string) int {
	n, err := strconv.Atoi(indexArg)
	if err != nil {
		ui.Fail("edit: not a number: " + indexArg)
		return 2
	}
	view := s.Tasks()
	if n < 1 || n > len(view) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(view), n))
		return 2
	}
	task := view[n-1]
	p := task.Priority
	if prio != "" {
		var ok bool
		if p, ok = model.ParsePriority(prio); !ok {
			ui.Fail("edit: unknown priority: " + prio)
			return 2
		}
	}
	if strings.TrimSpace(title) == "" {
		ui.Fail("edit: empty title")
		return 2
	}
	s.Rename(task.ID, title, p)
	ui.OK("updated")
	return 0
}

func doClear(s *store.Store, a []string) int {
	mode := "--completed"
	if len(a) == 1 {
		mode = a[0]
	} else if len(a) > 1 {
		ui.Fail("usage: taskdeck clear [--completed|--all]")
		return 2
	}
	switch mode {
	case "--completed":
		s.RemoveWhere(func(t model.Task) bool { return t.Completed })
		ui.OK("cleared completed")
	case "--all":
		s.RemoveWhere(func(model.Task) bool { return true })
		ui.OK("cleared all")
	default:
		ui.Fail("usage: taskdeck clear [--completed|--all]")
		return 2
	}
	return 0
}

// -------------- rendering helpers --------------

func flatLines(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.Current().Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, ui.TaskLine(i+1, t))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
