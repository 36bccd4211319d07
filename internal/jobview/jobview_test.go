package jobview

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"mosstui/internal/terminal"
	"mosstui/internal/ui"
)

func render(v *View) []string {
	f := terminal.NewFrame(60, v.Lines())
	v.Draw(f)
	lines := f.Lines()
	for i := range lines {
		lines[i] = ansi.Strip(lines[i])
	}
	return lines
}

func TestView_DrawIsIdempotent(t *testing.T) {
	v := New("fetch", 3)
	v.Update(Started{Name: "glibc"})

	first := render(v)
	second := render(v)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestView_Counters(t *testing.T) {
	v := New("fetch", 3)
	v.Update(Started{Name: "a"})
	v.Update(Started{Name: "b"})
	v.Update(Finished{Name: "a", Duration: time.Second})
	v.Update(Finished{Name: "b", Err: errors.New("404")})

	if v.Done() != 2 || v.Failed() != 1 {
		t.Errorf("Done=%d Failed=%d, want 2 and 1", v.Done(), v.Failed())
	}

	lines := render(v)
	if !strings.Contains(lines[2], "2/3 done") {
		t.Errorf("counter row = %q", lines[2])
	}
	if !strings.Contains(lines[2], "1 failed") {
		t.Errorf("counter row should mention failures: %q", lines[2])
	}
}

func TestView_HeaderShowsRunningStep(t *testing.T) {
	v := New("fetch", 2)
	v.Update(Started{Name: "zlib"})
	v.Update(Started{Name: "xz"})

	header := render(v)[0]
	if !strings.Contains(header, "zlib") || !strings.Contains(header, "+1") {
		t.Errorf("header = %q", header)
	}
}

func TestView_CompleteHeader(t *testing.T) {
	v := New("fetch", 1)
	v.Update(Started{Name: "a"})
	v.Update(Finished{Name: "a"})

	if header := render(v)[0]; !strings.HasPrefix(header, ui.IconSuccess) {
		t.Errorf("header = %q, want success icon", header)
	}
}

func TestView_TickAdvancesSpinnerOnly(t *testing.T) {
	v := New("fetch", 2)
	before := render(v)
	v.Update(Tick{})
	after := render(v)

	if before[0] == after[0] {
		t.Error("tick should change the spinner frame")
	}
	if before[1] != after[1] || before[2] != after[2] {
		t.Error("tick should not change progress or counters")
	}
}
