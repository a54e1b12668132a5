// SPDX-License-Identifier: MPL-2.0

package recon

import (
	"strings"

	"debugrun/internal/jana"

	"golang.org/x/exp/slices"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Options are the parameters debugrun always passes to eicrecon.
	Options struct {
		// Plugins are joined with "," into -Pplugins.
		Plugins []string
		// Geometry is the dd4hep XML description.
		Geometry string
		// DebugPluginLoading sets -Pjana:debug_plugin_loading to 1.
		DebugPluginLoading bool
	}

	// Command is the eicrecon argument vector. Element 0 is the executable.
	Command struct {
		args []string
	}
)

// Params returns the built-in parameters for req, in launch order.
func Params(req Request, opts Options) []jana.Param {
	debug := "0"
	if opts.DebugPluginLoading {
		debug = "1"
	}

	return []jana.Param{
		jana.NewGlobalParam("plugins", strings.Join(opts.Plugins, ",")),
		jana.NewParam("dd4hep", "xml_files", opts.Geometry),
		jana.NewParam("dump_flags", "json", req.FlagsDumpFile()),
		jana.NewParam("jana", "debug_plugin_loading", debug),
		jana.NewParam("jana", "nevents", req.EventCount()),
		jana.NewParam("podio", "output_file", req.TreeFile()),
		jana.NewGlobalParam("histsfile", req.HistogramFile()),
	}
}

// BuildCommand assembles executable, built-in parameters, input file and
// passthrough tokens. Nothing is checked against the filesystem.
func BuildCommand(executable string, req Request, opts Options) Command {
	params := Params(req, opts)
	passthrough := req.Passthrough()

	args := make([]string, 0, 2+len(params)+len(passthrough))
	args = append(args, executable)
	args = append(args, jana.Render(params)...)
	args = append(args, req.InputFile())
	args = append(args, passthrough...)

	return Command{args: args}
}

// Args returns a copy of the argument vector.
func (c Command) Args() []string {
	return slices.Clone(c.args)
}

// Executable returns element 0 of the vector.
func (c Command) Executable() string {
	if len(c.args) == 0 {
		return ""
	}
	return c.args[0]
}

// String joins the vector with single spaces, without quoting.
func (c Command) String() string {
	return strings.Join(c.args, " ")
}

// ShellString renders the vector so that it can be pasted into bash.
func (c Command) ShellString() (string, error) {
	quoted := make([]string, 0, len(c.args))
	for _, arg := range c.args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", err
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " "), nil
}
