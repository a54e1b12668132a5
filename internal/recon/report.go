// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"fmt"
	"io"
	"time"

	"debugrun/internal/runtime"
)

const (
	// TimestampLayout is used for the start and end lines of the timing report.
	TimestampLayout = "2006-01-02 15:04:05"

	pathSegmentIndent = "   "
)

// PrintLayout writes the resolved layout and the plugin search path the
// child will see.
func PrintLayout(w io.Writer, layout Layout, overlay *runtime.EnvOverlay) {
	fmt.Fprintf(w, "Repo root_dir: %s\n", layout.BasePath)
	fmt.Fprintf(w, "Using executable:\n %s\n", layout.Executable)
	fmt.Fprintf(w, "File exists: %t\n", layout.ExecutableExists())
	PrintSearchPath(w, "Initial "+runtime.PluginPathVar, overlay.Get(runtime.PluginPathVar))
}

// PrintSearchPath writes title followed by the non-empty segments of value,
// one per line.
func PrintSearchPath(w io.Writer, title, value string) {
	fmt.Fprintln(w, title)
	for _, segment := range runtime.SplitSearchPath(value) {
		fmt.Fprintln(w, pathSegmentIndent+segment)
	}
}

// PrintTiming writes the start, end and elapsed wall-clock time of result.
func PrintTiming(w io.Writer, result *runtime.Result) {
	fmt.Fprintf(w, "Start date and time : %s\n", result.StartedAt.Format(TimestampLayout))
	fmt.Fprintf(w, "End date and time   : %s\n", result.FinishedAt.Format(TimestampLayout))
	fmt.Fprintf(w, "Execution real time : %s\n", FormatElapsed(result.Elapsed()))
}

// FormatElapsed renders d as [D day[s], ]H:MM:SS[.ffffff]. The fraction is
// omitted when d is a whole number of seconds. Negative durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Microsecond)

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	micros := (d - seconds*time.Second) / time.Microsecond

	out := fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	if micros != 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	switch {
	case days == 1:
		out = "1 day, " + out
	case days > 1:
		out = fmt.Sprintf("%d days, %s", days, out)
	}
	return out
}
