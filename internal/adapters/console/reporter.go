// Package console prints build results for humans.
package console

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/xtask/internal/core/domain"
	"go.trai.ch/xtask/internal/ui/output"
	"go.trai.ch/xtask/internal/ui/style"
	"go.trai.ch/zerr"
)

// Reporter implements ports.Reporter by writing plain status lines.
type Reporter struct {
	out *termenv.Output
}

// NewReporter creates a Reporter writing to w, or to stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: output.New(w)}
}

// NewReporterWithProfile creates a Reporter with a fixed color profile.
func NewReporterWithProfile(w io.Writer, profile termenv.Profile) *Reporter {
	return &Reporter{out: output.NewWithProfile(w, func() termenv.Profile { return profile })}
}

// Report writes "<tool> exited with return code <code>" followed, when stderr is
// non-empty, by a "[stderr]" block holding the decoded diagnostics.
func (r *Reporter) Report(tool string, res *domain.BuildResult) error {
	color := string(style.Green)
	if !res.Success() {
		color = string(style.Red)
	}

	var b strings.Builder
	b.WriteString(output.Colorize(r.out, tool+" exited with return code "+strconv.Itoa(res.ExitCode), color))
	b.WriteByte('\n')

	if len(res.Stderr) > 0 {
		b.WriteString(output.Colorize(r.out, "[stderr]", string(style.Slate)))
		b.WriteByte('\n')
		text := res.StderrText()
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteByte('\n')
		}
	}

	if _, err := r.out.WriteString(b.String()); err != nil {
		return zerr.Wrap(err, "failed to write build report")
	}
	return nil
}
