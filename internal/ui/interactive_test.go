package ui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/modu-ai/moai-starter/internal/resource"
)

func sampleResources(t *testing.T) []resource.Resource {
	t.Helper()
	dir, err := resource.NewDirectory("src/main/java")
	if err != nil {
		t.Fatal(err)
	}
	pom, err := resource.NewText("pom.xml", "<project/>", resource.DefaultCharset)
	if err != nil {
		t.Fatal(err)
	}
	png, err := resource.NewBinary("docs/logo.png", []byte{0x89})
	if err != nil {
		t.Fatal(err)
	}
	return []resource.Resource{dir, pom, png}
}

func TestTally(t *testing.T) {
	var tally Tally
	var labels []string
	for _, r := range sampleResources(t) {
		labels = append(labels, tally.Add(r))
	}

	if got := strings.Join(labels, ","); got != "dir,file,binary" {
		t.Errorf("labels = %q", got)
	}
	if tally.Total() != 3 {
		t.Errorf("Total() = %d, want 3", tally.Total())
	}
	if got := tally.String(); got != "1 file, 1 binary, 1 directory" {
		t.Errorf("String() = %q", got)
	}
	if got := (Tally{Files: 2}).String(); got != "2 files, 0 binaries, 0 directories" {
		t.Errorf("String() = %q", got)
	}
}

func TestWriteModelTracksResources(t *testing.T) {
	var m tea.Model = newWriteModel(testTheme(), "Writing", 2)

	for _, r := range sampleResources(t) {
		m, _ = m.Update(wroteMsg{r: r})
	}
	wm := m.(writeModel)
	if wm.done != 2 {
		t.Errorf("done = %d, want it capped at 2", wm.done)
	}
	if wm.last != "docs/logo.png" {
		t.Errorf("last = %q", wm.last)
	}
	view := wm.View()
	for _, want := range []string{"2/2", "docs/logo.png", "1 file, 1 binary, 1 directory"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m, cmd := m.Update(finishedMsg{})
	if cmd == nil {
		t.Fatal("finishing should quit the program")
	}
	if got := m.View(); got != "Writing 2/2 (1 file, 1 binary, 1 directory)\n" {
		t.Errorf("final View() = %q", got)
	}
}

func TestWriteModelCtrlC(t *testing.T) {
	m, cmd := newWriteModel(testTheme(), "Writing", 1).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.(writeModel).finished {
		t.Error("ctrl+c should finish the bar")
	}
}

func TestWriteModelEmptyWrite(t *testing.T) {
	view := newWriteModel(testTheme(), "Writing", 0).View()
	if !strings.Contains(view, "0/0") {
		t.Errorf("View() = %q", view)
	}
}

func TestSpinnerModel(t *testing.T) {
	var m tea.Model = newSpinnerModel(testTheme(), "Rendering templates")
	m, _ = m.Update(titleMsg("Running generators"))
	if !strings.Contains(m.View(), "Running generators") {
		t.Errorf("View() = %q", m.View())
	}
	m, cmd := m.Update(finishedMsg{})
	if cmd == nil || m.View() != "" {
		t.Error("a stopped spinner should quit and clear its line")
	}
}

func TestAnimatedIndicatorsStop(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	term := newTerminal(NewTheme(ThemeConfig{}), hm, io.Discard)

	bar := term.Start("Writing", 3)
	if _, ok := bar.(*animatedBar); !ok {
		t.Fatalf("Start() = %T, want animated bar", bar)
	}
	for _, r := range sampleResources(t) {
		bar.Advance(r)
	}
	bar.Done()
	bar.Done()

	sp := term.Spinner("Rendering templates")
	sp.SetTitle("Running generators")
	sp.Stop()
	sp.Stop()
}
