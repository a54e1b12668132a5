// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	InvalidArgumentsId Id = iota + 1
	ConfigLoadFailedId
	ExecutableNotFoundId
	ChildProcessFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a markdown help page shown next to a failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue as terminal markdown with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	invalidArgumentsIssue = &Issue{
		id: InvalidArgumentsId,
		mdMsg: `
# Invalid arguments

debugrun needs an input file and an output base name.

~~~
$ debugrun input.edm4hep.root run1 -n 100
~~~

- The output base name has no extension; debugrun appends
  ` + "`.tree.edm4eic.root`, `.ana.root` and `.flags.json`" + `.
- Any token starting with ` + "`-P`" + ` or ` + "`-p`" + ` is forwarded to eicrecon unchanged.
- The event count must be a non-negative integer.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show the effective configuration:
~~~
$ debugrun config show
~~~
- Regenerate a default file:
~~~
$ debugrun config init
~~~`,
	}

	executableNotFoundIssue = &Issue{
		id: ExecutableNotFoundId,
		mdMsg: `
# eicrecon executable not found

The reconstruction executable does not exist at the resolved path.

## Things you can try:
- Build EICrecon in the expected build directory
- Point debugrun at your checkout:
~~~
$ debugrun --base-path /path/to/EICrecon input.edm4hep.root run1
~~~
- Or set ` + "`executable`" + ` in your config file`,
		docLinks: []HttpLink{"https://github.com/eic/EICrecon"},
	}

	childProcessFailedIssue = &Issue{
		id: ChildProcessFailedId,
		mdMsg: `
# eicrecon failed

The reconstruction process exited with a non-zero status.

## Things you can try:
- Check the plugin search path printed above
- Re-run with fewer events: ` + "`-n 1`" + `
- Add JANA parameters, e.g. ` + "`-Pjana:debug_plugin_loading=1`" + `
- Run with ` + "`--verbose`" + ` for the resolved environment`,
	}

	issues = map[Id]*Issue{
		invalidArgumentsIssue.Id():   invalidArgumentsIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		executableNotFoundIssue.Id(): executableNotFoundIssue,
		childProcessFailedIssue.Id(): childProcessFailedIssue,
	}
)

// Values returns all catalog entries ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
