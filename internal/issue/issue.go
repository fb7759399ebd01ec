// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	DestinationUnwritableId
	FetchFailedId
	DescriptorWriteFailedId
	InvalidCatalogId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

// Title returns the text of the page's first heading.
func (i *Issue) Title() string {
	for _, line := range strings.Split(string(i.mdMsg), "\n") {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return title
		}
	}
	return ""
}

// Render renders the issue as styled terminal markdown. stylePath is a glamour
// style name ("dark", "light", "notty") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.extLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

assetkit could not read or validate its configuration file.

## Things you can try:
- Show where assetkit looks for its configuration:
~~~
$ assetkit config path
~~~

- Regenerate a default file and edit it again:
~~~
$ assetkit config init
~~~

- Check ` + "`ASSETKIT_*`" + ` environment variables, which override the file.`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	destinationUnwritableIssue = &Issue{
		id: DestinationUnwritableId,
		mdMsg: `
# Cannot write to the asset catalog

An image set directory could not be created under the destination, so the run
was stopped before touching any further assets.

## Things you can try:
- Make sure the destination exists or its parent is writable.
- Point assetkit at another catalog:
~~~
$ assetkit provision --dest path/to/Assets.xcassets
~~~

- Make sure no regular file has the same name as the catalog or an image set.`,
	}

	fetchFailedIssue = &Issue{
		id: FetchFailedId,
		mdMsg: `
# Some assets could not be downloaded

Assets that failed to download were skipped; their image sets were left as
they were. Every other asset was provisioned normally.

## Things you can try:
- Make sure the design tool's asset server is running and reachable.
- Raise the timeout for slow connections:
~~~
$ assetkit provision --timeout 2m
~~~

- Run again; successful assets are simply overwritten.`,
	}

	descriptorWriteFailedIssue = &Issue{
		id: DescriptorWriteFailedId,
		mdMsg: `
# Failed to write Contents.json

The image was downloaded but its descriptor could not be written, so the asset
catalog will not pick it up.

## Things you can try:
- Check free disk space and permissions inside the image set directory.
- Remove anything named ` + "`Contents.json`" + ` that is not a regular file, then run again.`,
		extLinks: []HttpLink{"https://developer.apple.com/library/archive/documentation/Xcode/Reference/xcode_ref-Asset_Catalog_Format/"},
	}

	invalidCatalogIssue = &Issue{
		id: InvalidCatalogId,
		mdMsg: `
# Invalid asset list

The built-in asset list contains an entry with an empty or unsafe name, a
duplicate name, or a source that is not an absolute http(s) URL.

This is a build problem rather than a usage problem; please report it.`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		destinationUnwritableIssue.Id(): destinationUnwritableIssue,
		fetchFailedIssue.Id():           fetchFailedIssue,
		descriptorWriteFailedIssue.Id(): descriptorWriteFailedIssue,
		invalidCatalogIssue.Id():        invalidCatalogIssue,
	}
)

// Values returns every known issue ordered by Id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
