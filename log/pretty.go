package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTime    = lipgloss.NewStyle().Faint(true)
	styleKey     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleString  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleNumber  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleTrue    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFalse   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleSpan    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleMessage = lipgloss.NewStyle().Bold(true)

	styleLevel = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// prettyHandler renders log records as styled single-line text.
//
// Unlike the standard text handler, attribute values are never quoted, and
// each value is colorized according to its kind.
type prettyHandler struct {
	opts       slog.HandlerOptions
	mu         *sync.Mutex
	w          io.Writer
	formatTime FormatTime
	attrs      []slog.Attr
	groups     []string
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		mu:         &sync.Mutex{},
		w:          w,
		formatTime: formatTime,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if stamp := h.formatTime(r.Time); stamp != "" {
			buf.WriteString(styleTime.Render(stamp))
			buf.WriteByte(' ')
		}
	}

	level := Level(r.Level)

	style, ok := styleLevel[level]
	if !ok {
		style = styleMessage
	}

	buf.WriteString(style.Render(strings.ToUpper(level.String())))
	buf.WriteByte(' ')

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			buf.WriteString(styleTime.Render(
				src.File + ":" + strconv.Itoa(src.Line),
			))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(styleMessage.Render(r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()

	// Groups flatten into dotted keys.
	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			member.Key = a.Key + "." + member.Key
			h.writeAttr(buf, member)
		}

		return
	}

	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	buf.WriteByte(' ')
	buf.WriteString(styleKey.Render(key))
	buf.WriteByte('=')
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(styleString.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(styleNumber.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(styleNumber.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(styleNumber.Render(
			strconv.FormatFloat(v.Float64(), 'g', -1, 64),
		))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(styleTrue.Render("true"))
		} else {
			buf.WriteString(styleFalse.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(styleSpan.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(styleSpan.Render(h.formatTime(v.Time())))

	default:
		buf.WriteString(styleString.Render(v.String()))
	}
}
