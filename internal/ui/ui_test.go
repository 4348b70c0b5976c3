package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/modu-ai/moai-starter/internal/writer"
)

func testTheme() *Theme {
	return NewTheme(ThemeConfig{NoColor: true})
}

func headless() *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return hm
}

func TestNewTheme(t *testing.T) {
	dark := NewTheme(ThemeConfig{})
	if dark.Mode != "dark" {
		t.Errorf("Mode = %q, want dark", dark.Mode)
	}
	if dark.Colors.Primary != ColorPrimary {
		t.Errorf("Primary = %q, want %q", dark.Colors.Primary, ColorPrimary)
	}

	light := NewTheme(ThemeConfig{Mode: "light"})
	if light.Colors.Primary == ColorPrimary {
		t.Error("light theme should use its own primary color")
	}

	plain := testTheme()
	if got := plain.Title.Render("moai"); !strings.Contains(got, "moai") {
		t.Errorf("NoColor Title.Render = %q", got)
	}
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("ForceHeadless(true) should report headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) should report interactive")
	}
	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce should drop the override")
	}
}

func TestHeadlessProgressBar(t *testing.T) {
	var buf strings.Builder
	term := newTerminal(testTheme(), headless(), &buf)

	bar := term.Start("Writing", 3)
	for _, r := range sampleResources(t) {
		bar.Advance(r)
	}
	bar.Done()

	want := "[1/3] dir    src/main/java\n" +
		"[2/3] file   pom.xml\n" +
		"[3/3] binary docs/logo.png\n" +
		"Writing: 1 file, 1 binary, 1 directory\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestHeadlessSpinner(t *testing.T) {
	var buf strings.Builder
	term := newTerminal(testTheme(), headless(), &buf)

	sp := term.Spinner("Rendering templates")
	sp.SetTitle("Running generators")
	sp.Stop()

	want := "Rendering templates\nRunning generators\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNoColorFallsBackToLines(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	term := newTerminal(testTheme(), hm, io.Discard)
	if _, ok := term.Start("x", 1).(*lineBar); !ok {
		t.Error("NoColor theme should use the line progress bar")
	}
	if _, ok := term.Spinner("x").(*lineSpinner); !ok {
		t.Error("NoColor theme should use the line spinner")
	}
}

func TestTrackerFollowsWriter(t *testing.T) {
	var buf strings.Builder
	tr := NewTracker(newTerminal(testTheme(), headless(), &buf), "Writing")

	tr.Finish()
	if buf.Len() != 0 {
		t.Fatalf("Finish before any write printed %q", buf.String())
	}

	fs := memfs.New()
	w := writer.NewWriter(fs, nil)
	w.OnProgress(tr.Observe)
	if err := w.Write("orders", sampleResources(t), true); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	tr.Finish()

	out := buf.String()
	for _, want := range []string{
		"[1/3] dir    src/main/java\n",
		"[3/3] binary docs/logo.png\n",
		"Writing: 1 file, 1 binary, 1 directory\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := fs.Stat("orders/pom.xml"); err != nil {
		t.Errorf("pom.xml not written: %v", err)
	}
}

func TestTruncatePath(t *testing.T) {
	if got := truncatePath("short", 10); got != "short" {
		t.Errorf("truncatePath(short) = %q", got)
	}
	got := truncatePath("src/main/java/com/acme/orders/Application.java", 16)
	if got != "...lication.java" {
		t.Errorf("truncatePath = %q, want %q", got, "...lication.java")
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(testTheme(), Summary{
		RequestID: "req-1",
		Profile:   "spring-boot-maven-java",
		Root:      "orders",
		Archive:   "orders.zip",
		Paths: []string{
			"src",
			"src/main",
			"src/main/java",
			"src/main/java/Application.java",
			"pom.xml",
		},
	})

	for _, want := range []string{
		"orders/",
		"src/",
		"main/",
		"Application.java",
		"pom.xml",
		"Generated 5 entries with profile spring-boot-maven-java",
		"archive: orders.zip",
		"request: req-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "pom.xml") > strings.Index(out, "src/") {
		t.Error("entries should be sorted by name")
	}
}

func TestRenderSummaryWithoutArchive(t *testing.T) {
	out := RenderSummary(testTheme(), Summary{Root: "demo", Profile: "p", Paths: []string{"README.md"}})
	if strings.Contains(out, "archive:") {
		t.Errorf("summary without archive mentions one:\n%s", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown(testTheme(), "# Orders\n\nRun `./mvnw test` to verify.\n", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	for _, want := range []string{"Orders", "./mvnw test"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}
