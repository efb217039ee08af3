// Package shell provides a line-oriented command interface to the session
// controller, for terminals where the full-screen view is unavailable.
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/focusring/internal/config"
	"github.com/akyairhashvil/focusring/internal/models"
	"github.com/akyairhashvil/focusring/internal/report"
	"github.com/akyairhashvil/focusring/internal/session"
	"github.com/akyairhashvil/focusring/internal/timer"
	"github.com/chzyer/readline"
)

// Controller is the part of session.Controller the shell drives.
type Controller interface {
	OnChange(l timer.Listener)
	ApplyCustomTime(focusInput, breakInput string)
	StartWork(minutesInput string)
	StartBreak(breakInput string)
	Start()
	Pause()
	Reset()
	Clear()
	SetTheme(name string) string
	Snapshot() models.Snapshot
	Preferences() models.Preferences
	History(limit int) []models.SessionRecord
	ClearHistory()
}

var _ Controller = (*session.Controller)(nil)

// Options carries the optional report collaborators.
type Options struct {
	Reports    report.Source
	ReportsDir string
}

// Shell handles the interactive prompt.
type Shell struct {
	ctx  context.Context
	ctrl Controller
	opts Options
	rl   *readline.Instance
	out  io.Writer

	// Tick output is suppressed while false. Read from the ticker goroutine.
	watch atomic.Bool
}

// New creates a shell reading from the terminal.
func New(ctx context.Context, ctrl Controller, opts Options) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.AppName + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := newShell(ctx, ctrl, opts, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(ctx context.Context, ctrl Controller, opts Options, out io.Writer) *Shell {
	s := &Shell{ctx: ctx, ctrl: ctrl, opts: opts, out: out}
	s.watch.Store(true)
	ctrl.OnChange(s.handleChange)
	return s
}

// Stdout returns a writer that coordinates with the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run reads commands until quit, EOF, or ctx is done.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printStatus()
	fmt.Fprintln(s.out, "Type 'help' for commands.")

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
		if !s.Dispatch(line) {
			return
		}
	}
}

// Dispatch runs one command line. It returns false once the shell should
// exit.
func (s *Shell) Dispatch(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "custom", "c":
		s.ctrl.ApplyCustomTime(arg(args, 0), arg(args, 1))
		prefs := s.ctrl.Preferences()
		fmt.Fprintf(s.out, "Focus %d min, break %d min\n", prefs.FocusMinutes, prefs.BreakMinutes)

	case "work", "w":
		in := arg(args, 0)
		if in == "" {
			in = strconv.Itoa(s.ctrl.Preferences().FocusMinutes)
		}
		s.ctrl.StartWork(in)

	case "break", "b":
		in := arg(args, 0)
		if in == "" {
			in = strconv.Itoa(s.ctrl.Preferences().BreakMinutes)
		}
		s.ctrl.StartBreak(in)

	case "start", "s":
		s.ctrl.Start()

	case "pause", "p":
		s.ctrl.Pause()

	case "reset", "r":
		s.ctrl.Reset()

	case "clear":
		s.ctrl.Clear()
		fmt.Fprintln(s.out, "Settings cleared! Timer reset.")

	case "theme", "t":
		s.cmdTheme(args)

	case "status":
		s.printStatus()

	case "watch":
		s.cmdWatch(args)

	case "history", "h":
		s.cmdHistory(args)

	case "report":
		s.cmdReport(args)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

// handleChange runs under the timer lock and must not call the controller.
func (s *Shell) handleChange(snap models.Snapshot) {
	if !s.watch.Load() && !snap.Completed {
		return
	}
	fmt.Fprintln(s.out, statusLine(snap))
	if snap.Completed {
		fmt.Fprint(s.out, "\a")
	}
}

func (s *Shell) printStatus() {
	fmt.Fprintln(s.out, statusLine(s.ctrl.Snapshot()))
}

func (s *Shell) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Theme: %s (available: %s)\n",
			s.ctrl.Preferences().Theme, strings.Join(config.Themes, ", "))
		return
	}
	name := s.ctrl.SetTheme(args[0])
	if name != args[0] {
		fmt.Fprintf(s.out, "Unknown theme %q, using %s\n", args[0], name)
		return
	}
	fmt.Fprintf(s.out, "Theme: %s\n", name)
}

func (s *Shell) cmdWatch(args []string) {
	on := !s.watch.Load()
	switch arg(args, 0) {
	case "on":
		on = true
	case "off":
		on = false
	}
	s.watch.Store(on)
	fmt.Fprintf(s.out, "Tick output: %s\n", onOff(on))
}

func (s *Shell) cmdHistory(args []string) {
	if arg(args, 0) == "clear" {
		s.ctrl.ClearHistory()
		fmt.Fprintln(s.out, "History cleared.")
		return
	}
	recs := s.ctrl.History(config.HistoryRows)
	if len(recs) == 0 {
		fmt.Fprintln(s.out, "No completed sessions.")
		return
	}
	for _, r := range recs {
		fmt.Fprintf(s.out, "  %s  %-6s %s\n",
			r.CompletedAt.Local().Format("2006-01-02 15:04"), r.Kind, models.FormatClock(r.DurationSeconds))
	}
}

func (s *Shell) cmdReport(args []string) {
	if s.opts.Reports == nil {
		fmt.Fprintln(s.out, "Reports are not configured.")
		return
	}
	dir := s.opts.ReportsDir
	if d := arg(args, 0); d != "" {
		dir = d
	}
	path, err := report.ExportDay(s.ctx, s.opts.Reports, dir, time.Now())
	if err != nil {
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Report saved: %s\n", path)
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Timer Commands:
  custom <focus> <break> - Save preferred minutes and load a focus session
  work [min]             - Load a focus session (default: saved focus time)
  break [min]            - Load a break session (default: saved break time)
  start                  - Start or resume the countdown
  pause                  - Pause the countdown
  reset                  - Rewind to the full session length
  clear                  - Forget all saved settings

Display:
  status                 - Show the timer
  watch [on|off]         - Toggle per-second output
  theme [name]           - Show or select the theme
  history [clear]        - Show (or forget) recent completed sessions
  report [dir]           - Export today's sessions as PDF

  help                   - Show this help
  quit                   - Exit`)
}

func statusLine(snap models.Snapshot) string {
	state := "stopped"
	if snap.Running {
		state = "running"
	}
	return fmt.Sprintf("%s  %-18s %3.0f%%  [%s]", snap.Clock(), snap.Status, snap.Fraction()*100, state)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
