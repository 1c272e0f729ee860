package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/ui"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type result struct {
	stdout  string
	stderr  string
	err     error
	uiModel *ui.Model
}

func execute(t *testing.T, d deps, args ...string) result {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var res result
	if d.isTerminal == nil {
		d.isTerminal = func() bool { return false }
	}
	if d.runUI == nil {
		d.runUI = func(m ui.Model) error {
			res.uiModel = &m
			return nil
		}
	}
	if d.clip == nil {
		d.clip = &fakeClipboard{}
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd("test", d)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	res.err = cmd.Execute()
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestGenerateDefaults(t *testing.T) {
	res := execute(t, deps{})
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	out := lines(res.stdout)
	if len(out) != 1 || len(out[0]) != generator.DefaultLength {
		t.Fatalf("stdout = %q, want one %d-character password", res.stdout, generator.DefaultLength)
	}
	for _, c := range out[0] {
		if c < 'a' || c > 'z' {
			t.Errorf("unexpected character %q in lowercase-only password", c)
		}
	}
	if res.uiModel != nil {
		t.Error("screen should not open when stdout is not a terminal")
	}
}

func TestGenerateAllFlags(t *testing.T) {
	res := execute(t, deps{}, "--length", "32", "--digits", "--uppercase", "--symbols", "--count", "3")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	pool := generator.Pool(generator.Options{Digits: true, Uppercase: true, Symbols: true})
	out := lines(res.stdout)
	if len(out) != 3 {
		t.Fatalf("got %d passwords, want 3", len(out))
	}
	for _, pw := range out {
		if len(pw) != 32 {
			t.Errorf("password %q has length %d, want 32", pw, len(pw))
		}
		for _, c := range pw {
			if !pool.Contains(c) {
				t.Errorf("unexpected character %q", c)
			}
		}
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	first := execute(t, deps{}, "-l", "20", "-d", "-u", "-s", "--seed", "99")
	second := execute(t, deps{}, "-l", "20", "-d", "-u", "-s", "--seed", "99")
	if first.err != nil || second.err != nil {
		t.Fatalf("unexpected errors: %v, %v", first.err, second.err)
	}
	if first.stdout != second.stdout {
		t.Errorf("seeded runs differ: %q vs %q", first.stdout, second.stdout)
	}

	want, _ := generator.New(generator.NewSeededSource(99)).Generate(generator.Options{
		Length: 20, Digits: true, Uppercase: true, Symbols: true,
	})
	if strings.TrimSpace(first.stdout) != want {
		t.Errorf("stdout = %q, want %q", first.stdout, want)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "too short", args: []string{"--length", "6"}, wantErr: generator.ErrLengthOutOfRange},
		{name: "too long", args: []string{"--length", "33"}, wantErr: generator.ErrLengthOutOfRange},
		{name: "zero count", args: []string{"--count", "0"}, wantErr: ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, deps{}, tt.args...)
			if !errors.Is(res.err, tt.wantErr) {
				t.Errorf("error = %v, want %v", res.err, tt.wantErr)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want nothing", res.stdout)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	clip := &fakeClipboard{}
	res := execute(t, deps{clip: clip}, "--copy", "--count", "2")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}

	out := lines(res.stdout)
	if clip.text != out[len(out)-1] {
		t.Errorf("clipboard = %q, want last password %q", clip.text, out[len(out)-1])
	}
	if !strings.Contains(res.stderr, "Copied to clipboard!") {
		t.Errorf("stderr = %q, want copy notification", res.stderr)
	}
}

func TestCopyFailureKeepsExitStatus(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	res := execute(t, deps{clip: clip}, "-c")
	if res.err != nil {
		t.Fatalf("clipboard failure must not fail the command: %v", res.err)
	}
	if len(lines(res.stdout)[0]) != generator.DefaultLength {
		t.Errorf("stdout = %q, want the password", res.stdout)
	}
	if !strings.Contains(res.stderr, "Could not copy to clipboard") {
		t.Errorf("stderr = %q, want failure notification", res.stderr)
	}
}

func TestConfigDefaultLength(t *testing.T) {
	t.Setenv("PASSGEN_DEFAULT_LENGTH", "12")
	res := execute(t, deps{}, "--digits")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if got := len(strings.TrimSpace(res.stdout)); got != 12 {
		t.Errorf("password length = %d, want 12", got)
	}
}

func TestNoFlagsInTerminalOpensScreen(t *testing.T) {
	res := execute(t, deps{isTerminal: func() bool { return true }})
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.uiModel == nil {
		t.Fatal("expected the screen to open")
	}
	if res.uiModel.Options() != generator.DefaultOptions() {
		t.Errorf("screen options = %+v, want defaults", res.uiModel.Options())
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing", res.stdout)
	}
}

func TestLoggingFlagsInTerminalOpenScreen(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "verbose", args: []string{"-v"}},
		{name: "log level", args: []string{"--log-level", "debug"}},
		{name: "both", args: []string{"--verbose", "--log-level", "warn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, deps{isTerminal: func() bool { return true }}, tt.args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if res.uiModel == nil {
				t.Fatal("expected the screen to open")
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want nothing", res.stdout)
			}
		})
	}
}

func TestScreenDiscardsLogs(t *testing.T) {
	runUI := func(ui.Model) error {
		slog.Warn("clipboard write failed", "error", "no display")
		slog.Debug("generated password")
		return nil
	}

	for _, args := range [][]string{{"-v"}, {"tui", "-v"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := execute(t, deps{isTerminal: func() bool { return true }, runUI: runUI}, args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if res.stderr != "" {
				t.Errorf("stderr = %q, want nothing while the screen runs", res.stderr)
			}
		})
	}
}

func TestLogsRestoredAfterScreen(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	err := runScreen(deps{runUI: func(ui.Model) error {
		slog.Warn("hidden")
		return nil
	}}, ui.New(nil, &fakeClipboard{}, generator.DefaultLength))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slog.Warn("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("log written during screen: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("logger not restored after screen: %q", buf.String())
	}
}

func TestFlagsInTerminalPrint(t *testing.T) {
	res := execute(t, deps{isTerminal: func() bool { return true }}, "-u")
	if res.uiModel != nil {
		t.Error("flags should bypass the screen")
	}
	if len(strings.TrimSpace(res.stdout)) != generator.DefaultLength {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestTUICommand(t *testing.T) {
	res := execute(t, deps{}, "tui", "--length", "15")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if res.uiModel == nil {
		t.Fatal("expected the screen to open")
	}
	if res.uiModel.Options().Length != 15 {
		t.Errorf("screen length = %d, want 15", res.uiModel.Options().Length)
	}
}

func TestVersion(t *testing.T) {
	res := execute(t, deps{}, "--version")
	if res.err != nil {
		t.Fatalf("unexpected error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "test") {
		t.Errorf("stdout = %q, want version", res.stdout)
	}
}
