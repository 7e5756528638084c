package log

import (
	"context"
	"log/slog"
	"slices"
)

// Handler is a [slog.Handler] that emits records through a [Facade]. Each
// record obtains a fresh [FunctionSet], so the prefix reflects the facade
// configuration at the time the record is handled.
//
// Create instances with [NewHandler].
type Handler struct {
	facade *Facade
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a [Handler] writing through f.
func NewHandler(f *Facade) *Handler {
	return &Handler{facade: f}
}

// Enabled reports whether the facade's minimum level lets lvl through.
func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return fromSlogLevel(lvl) >= h.facade.Level()
}

// Handle writes r through the function-set entry matching its level. The
// message is followed by "key=value" pairs for every attribute.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	args := make([]any, 0, 1+len(h.attrs)+r.NumAttrs())
	args = append(args, r.Message)

	for _, a := range h.attrs {
		args = append(args, a.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		args = append(args, h.qualify(a).String())
		return true
	})

	set := h.facade.Logger()

	switch fromSlogLevel(r.Level) {
	case LevelDebug:
		set.Debug(args...)
	case LevelInfo:
		set.Info(args...)
	case LevelWarn:
		set.Warn(args...)
	default:
		set.Error(args...)
	}

	return nil
}

// WithAttrs returns a copy of h that appends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, h.qualify(a))
	}

	return h2
}

// WithGroup returns a copy of h that qualifies subsequent attribute keys with
// name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := h.clone()
	h2.groups = append(h2.groups, name)

	return h2
}

func (h *Handler) clone() *Handler {
	return &Handler{
		facade: h.facade,
		attrs:  slices.Clip(h.attrs),
		groups: slices.Clip(h.groups),
	}
}

func (h *Handler) qualify(a slog.Attr) slog.Attr {
	for _, g := range slices.Backward(h.groups) {
		a.Key = g + "." + a.Key
	}

	return a
}

func fromSlogLevel(lvl slog.Level) Level {
	switch {
	case lvl < slog.LevelInfo:
		return LevelDebug
	case lvl < slog.LevelWarn:
		return LevelInfo
	case lvl < slog.LevelError:
		return LevelWarn
	}

	return LevelError
}
