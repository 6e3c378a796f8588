// Package logutil configures slog for command-line use: text records with
// trimmed source paths, and a TRACE level below slog.LevelDebug.
package logutil

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/pacebar/pace/envconfig"
)

const LevelTrace slog.Level = -8

// Level picks the log level from the environment. Progress output shares
// stderr with the logger, so anything below warnings stays quiet unless
// debugging is on.
func Level() slog.Level {
	if envconfig.Debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				switch attr.Value.Any().(slog.Level) {
				case LevelTrace:
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
