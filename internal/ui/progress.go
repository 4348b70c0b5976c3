package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/moai-starter/internal/resource"
)

// Tally counts written resources by variant.
type Tally struct {
	Files       int
	Binaries    int
	Directories int
}

// Add counts r and returns the label of its variant.
func (t *Tally) Add(r resource.Resource) string {
	c := tallyVisitor{tally: t}
	_ = r.Accept(&c)
	return c.label
}

// Total is the number of resources counted.
func (t Tally) Total() int { return t.Files + t.Binaries + t.Directories }

func (t Tally) String() string {
	return strings.Join([]string{
		plural(t.Files, "file", "files"),
		plural(t.Binaries, "binary", "binaries"),
		plural(t.Directories, "directory", "directories"),
	}, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

type tallyVisitor struct {
	tally *Tally
	label string
}

func (v *tallyVisitor) VisitText(resource.Text) error {
	v.tally.Files++
	v.label = "file"
	return nil
}

func (v *tallyVisitor) VisitBinary(resource.Binary) error {
	v.tally.Binaries++
	v.label = "binary"
	return nil
}

func (v *tallyVisitor) VisitDirectory(resource.Directory) error {
	v.tally.Directories++
	v.label = "dir"
	return nil
}

// terminal creates progress indicators for one output stream. Headless
// sessions and colorless themes get plain log lines instead of animation.
type terminal struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
}

// NewProgress creates a Progress drawing to w. A nil w means os.Stderr.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return newTerminal(theme, hm, w)
}

func newTerminal(theme *Theme, hm *HeadlessManager, w io.Writer) *terminal {
	if w == nil {
		w = os.Stderr
	}
	return &terminal{theme: theme, headless: hm, out: w}
}

func (t *terminal) plain() bool {
	return t.headless.IsHeadless() || t.theme.NoColor
}

// Start returns a bar for writing total resources.
func (t *terminal) Start(title string, total int) ProgressBar {
	if t.plain() {
		return &lineBar{title: title, total: total, out: t.out}
	}
	return &animatedBar{run: startProgram(newWriteModel(t.theme, title, total), t.out)}
}

// Spinner returns an indicator for work of unknown length.
func (t *terminal) Spinner(title string) Spinner {
	if t.plain() {
		_, _ = fmt.Fprintln(t.out, title)
		return &lineSpinner{out: t.out}
	}
	return &animatedSpinner{run: startProgram(newSpinnerModel(t.theme, title), t.out)}
}

// background runs a bubbletea program on its own goroutine until stop.
type background struct {
	program *tea.Program
	once    sync.Once
}

// @MX:WARN: [AUTO] 프로그램은 별도 고루틴에서 실행되며 stop 호출 전까지 종료되지 않습니다.
// @MX:REASON: [AUTO] stop을 호출하지 않으면 고루틴과 터미널 상태가 남습니다
func startProgram(m tea.Model, w io.Writer) *background {
	p := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil))
	go func() {
		_, _ = p.Run()
	}()
	return &background{program: p}
}

func (b *background) send(msg tea.Msg) {
	b.program.Send(msg)
}

// stop delivers the final message and waits for the program to exit.
// Later calls do nothing.
func (b *background) stop(final tea.Msg) {
	b.once.Do(func() {
		b.program.Send(final)
		b.program.Wait()
	})
}

type (
	wroteMsg    struct{ r resource.Resource }
	finishedMsg struct{}
	titleMsg    string
)

// writeModel draws a bar over the resources of one write together with a
// running tally per variant.
type writeModel struct {
	bar      progress.Model
	muted    lipgloss.Style
	title    string
	total    int
	done     int
	last     string
	tally    Tally
	finished bool
}

func newWriteModel(theme *Theme, title string, total int) writeModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return writeModel{bar: bar, muted: theme.Muted, title: title, total: total}
}

func (m writeModel) Init() tea.Cmd { return nil }

func (m writeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wroteMsg:
		m.tally.Add(msg.r)
		m.done = min(m.done+1, m.total)
		m.last = msg.r.Path()
	case finishedMsg:
		m.finished = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finished = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m writeModel) View() string {
	if m.finished {
		return fmt.Sprintf("%s %d/%d (%s)\n", m.title, m.done, m.total, m.tally)
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	return fmt.Sprintf("%s %d/%d %s\n%s\n",
		m.bar.ViewAs(pct), m.done, m.total, truncatePath(m.last, 48),
		m.muted.Render(m.tally.String()))
}

type animatedBar struct {
	run *background
}

func (b *animatedBar) Advance(r resource.Resource) { b.run.send(wroteMsg{r: r}) }
func (b *animatedBar) Done()                       { b.run.stop(finishedMsg{}) }

// lineBar logs one line per resource and a closing tally.
type lineBar struct {
	title string
	total int
	done  int
	tally Tally
	out   io.Writer
}

func (b *lineBar) Advance(r resource.Resource) {
	kind := b.tally.Add(r)
	b.done = min(b.done+1, b.total)
	_, _ = fmt.Fprintf(b.out, "[%d/%d] %-6s %s\n", b.done, b.total, kind, r.Path())
}

func (b *lineBar) Done() {
	_, _ = fmt.Fprintf(b.out, "%s: %s\n", b.title, b.tally)
}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	stopped bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd { return m.spinner.Tick }

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case titleMsg:
		m.title = string(msg)
	case finishedMsg:
		m.stopped = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.stopped = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.stopped {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

type animatedSpinner struct {
	run *background
}

func (s *animatedSpinner) SetTitle(title string) { s.run.send(titleMsg(title)) }
func (s *animatedSpinner) Stop()                 { s.run.stop(finishedMsg{}) }

type lineSpinner struct {
	out io.Writer
}

func (s *lineSpinner) SetTitle(title string) { _, _ = fmt.Fprintln(s.out, title) }
func (s *lineSpinner) Stop()                 {}

// truncatePath keeps the last max runes of p.
func truncatePath(p string, max int) string {
	r := []rune(p)
	if len(r) <= max || max < 4 {
		return p
	}
	return "..." + string(r[len(r)-max+3:])
}

// Tracker adapts the writer's per-resource callback to a ProgressBar. The
// bar is started on the first callback, when the total becomes known.
type Tracker struct {
	mu       sync.Mutex
	progress Progress
	title    string
	bar      ProgressBar
}

// NewTracker creates a Tracker drawing through p.
func NewTracker(p Progress, title string) *Tracker {
	return &Tracker{progress: p, title: title}
}

// Observe records one written resource.
func (t *Tracker) Observe(done, total int, r resource.Resource) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bar == nil {
		t.bar = t.progress.Start(t.title, total)
	}
	t.bar.Advance(r)
}

// Finish completes the bar if one was started.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bar != nil {
		t.bar.Done()
	}
}
