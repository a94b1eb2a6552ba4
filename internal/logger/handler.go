package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter turns on tracing of the filter decisions to stderr.
var debugFilter = false

// SetDebugFilter enables or disables filter tracing.
func SetDebugFilter(on bool) {
	debugFilter = on
}

func debugFilterf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
}

// filteringHandler wraps a base slog.Handler and drops records rejected by cfg.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// recordSource returns the package directory name and base file name of the caller.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// recordTag returns the value of the tag attribute, if present.
func recordTag(r slog.Record) (tag string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			ok = true
			return false
		}
		return true
	})
	return tag, ok
}

// Handle applies package, file and tag filters before passing the record on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if pkg, file, ok := recordSource(r); ok {
		if !h.cfg.pkgs.allows(pkg) {
			if debugFilter {
				debugFilterf("dropped %q: package %s", r.Message, pkg)
			}
			return nil
		}
		if !h.cfg.files.allows(file) {
			if debugFilter {
				debugFilterf("dropped %q: file %s", r.Message, file)
			}
			return nil
		}
	}

	if tag, ok := recordTag(r); ok {
		if !h.cfg.tags.allows(tag) {
			if debugFilter {
				debugFilterf("dropped %q: tag %s", r.Message, tag)
			}
			return nil
		}
	} else if h.cfg.tags.enabled != nil {
		// Untagged records are hidden once a tag allow-list exists.
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
