package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет записи в буфер (для панели логов на странице) и,
// при необходимости, дублирует их в консоль.
type ZapLogger struct {
	log    *zap.Logger
	mu     sync.Mutex
	logBuf *bytes.Buffer
}

type config struct {
	level   zapcore.Level
	console io.Writer
}

type Option func(*config)

// WithConsole дублирует записи в w (например, os.Stderr)
func WithConsole(w io.Writer) Option {
	return func(c *config) {
		c.console = w
	}
}

// WithLevel задает минимальный уровень, по умолчанию Debug
func WithLevel(level zapcore.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

func New(options ...Option) *ZapLogger {
	cfg := config{level: zap.DebugLevel}
	for _, o := range options {
		o(&cfg)
	}

	z := &ZapLogger{logBuf: &bytes.Buffer{}}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(lockedWriter{z}), cfg.level),
	}
	if cfg.console != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(cfg.console)), cfg.level))
	}

	z.log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	return z
}

// Nop ничего не пишет. Для библиотечного кода и тестов.
func Nop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		logBuf: &bytes.Buffer{},
	}
}

// Запись в буфер под мьютексом логгера, чтобы HTML() не читал его посреди записи
type lockedWriter struct {
	z *ZapLogger
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.z.mu.Lock()
	defer w.z.mu.Unlock()
	return w.z.logBuf.Write(p)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiColor = regexp.MustCompile(`\033\[(\d+)m`)

// Переводит ANSI коды цвета в <span> с inline стилями
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiColor.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		colorCode := input[match[2]:match[3]]

		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}

		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(escapeHTML(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")
	return result.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML - содержимое буфера с цветами в виде разметки
func (z *ZapLogger) HTML() string {
	return ansiToHTML(z.String())
}

// String - содержимое буфера как есть
func (z *ZapLogger) String() string {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.logBuf.String()
}

func (z *ZapLogger) ClearLogs() {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logBuf.Reset()
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
