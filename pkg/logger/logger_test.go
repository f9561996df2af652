package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	in := "\033[32minfo\033[0m ok <b>\n\033[31merror\033[0m bad"
	got := ansiToHTML(in)
	want := `<pre><span style="color: green;">info</span> ok &lt;b&gt;` + "\n" +
		`<span style="color: red;">error</span> bad</pre>`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestAnsiToHTMLUnclosed(t *testing.T) {
	got := ansiToHTML("\033[36mdebug")
	if got != `<pre><span style="color: cyan;">debug</span></pre>` {
		t.Errorf("got %s", got)
	}
}

func TestLoggerBuffer(t *testing.T) {
	z := New()
	z.Info("[t] hello", zap.Int("n", 3))
	z.Debug("[t] details")

	out := z.String()
	if !strings.Contains(out, "[t] hello") || !strings.Contains(out, "n") || !strings.Contains(out, "[t] details") {
		t.Errorf("unexpected buffer:\n%s", out)
	}
	if !strings.Contains(z.HTML(), `<span style="color: green;">info</span>`) {
		t.Errorf("info level is not coloured:\n%s", z.HTML())
	}

	z.ClearLogs()
	if z.String() != "" {
		t.Error("ClearLogs did not reset the buffer")
	}
}

func TestLoggerLevelAndConsole(t *testing.T) {
	var console bytes.Buffer
	z := New(WithLevel(zapcore.WarnLevel), WithConsole(&console))
	z.Info("[t] hidden")
	z.Warn("[t] shown")

	for name, out := range map[string]string{"buffer": z.String(), "console": console.String()} {
		if strings.Contains(out, "hidden") {
			t.Errorf("%s: info record passed a warn level", name)
		}
		if !strings.Contains(out, "[t] shown") {
			t.Errorf("%s: warn record is missing:\n%s", name, out)
		}
	}
}

func TestNop(t *testing.T) {
	z := Nop()
	z.Info("[t] nothing")
	z.Error("[t] nothing")
	if z.String() != "" {
		t.Error("Nop must not record anything")
	}
}
