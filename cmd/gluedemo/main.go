// Command gluedemo is a small git look-alike showing every rule kind of cliglue.
//
//	gluedemo remote add origin https://example.com/repo.git
//	gluedemo -vv log --since "2024-01-02" --format oneline
//	gluedemo commit -m "fix parser" -- -odd-file.txt
//	gluedemo --bash-install
package main

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/napalu/cliglue"
	"github.com/napalu/cliglue/completion"
	"github.com/napalu/cliglue/types"
)

var remotes = map[string]string{
	"origin":   "https://example.com/demo.git",
	"upstream": "https://example.com/upstream/demo.git",
}

func remoteNames(string) []string {
	names := make([]string, 0, len(remotes))
	for name := range remotes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func status(b *cliglue.Binding) error {
	fmt.Printf("On branch main (verbosity %d)\n", b.Int("verbose"))
	if b.Has("dir") {
		fmt.Printf("Working directory: %s\n", b.String("dir"))
	}

	return nil
}

func listRemotes(b *cliglue.Binding) error {
	for _, name := range remoteNames("") {
		if b.Int("verbose") > 0 {
			fmt.Printf("%s\t%s\n", name, remotes[name])
			continue
		}
		fmt.Println(name)
	}

	return nil
}

func parseURL(value string) (any, error) {
	u, err := url.Parse(value)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute URL", value)
	}

	return u, nil
}

func addRemote(b *cliglue.Binding) error {
	u, _ := cliglue.Value[*url.URL](b, "url")
	remotes[b.String("name")] = u.String()
	fmt.Printf("added %s -> %s\n", b.String("name"), u)

	return nil
}

func removeRemote(b *cliglue.Binding) error {
	delete(remotes, b.String("name"))
	fmt.Printf("removed %s\n", b.String("name"))

	return nil
}

func showLog(b *cliglue.Binding) error {
	since := "the beginning"
	if b.Has("since") {
		since = b.Time("since").Format(time.DateOnly)
	}
	fmt.Printf("showing %d %s entries since %s\n", b.Int("max_count"), b.String("format"), since)

	return nil
}

func fetch(b *cliglue.Binding) error {
	fmt.Printf("fetching %s (timeout %s, prune %t)\n", b.String("remote"), b.Duration("timeout"), b.Bool("prune"))
	if b.Has("rate_limit") {
		fmt.Printf("limited to %.1f MiB/s\n", b.Float("rate_limit"))
	}

	return nil
}

func commit(b *cliglue.Binding) error {
	paths := b.Strings("paths")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	fmt.Printf("[main] %s (%s)\n", b.String("message"), strings.Join(paths, ", "))

	return nil
}

func about(*cliglue.Binding) error {
	fmt.Println("gluedemo shows how a cliglue declaration maps onto a git-like command line")
	return nil
}

func main() {
	app := cliglue.New(
		cliglue.WithProgramName("gluedemo"),
		cliglue.WithVersion("0.1.0"),
		cliglue.WithDescription("a git-like cliglue demo"),
		cliglue.WithSystemLanguage(),
		cliglue.SetHelpOnError(true),
	).Has(
		cliglue.Flag([]string{"-v", "--verbose"}, cliglue.SetMultiple(true), cliglue.WithHelp("Increase verbosity")),
		cliglue.Parameter([]string{"-C"}, cliglue.WithName("dir"), cliglue.WithHelp("Run as if started in DIR")),
		cliglue.PrimaryOption([]string{"--about"}, cliglue.WithHelp("Describe this program"),
			cliglue.WithRun(cliglue.NewAction("about", about))),
		cliglue.DefaultAction(cliglue.NewAction("status", status,
			cliglue.Want("verbose", types.Int), cliglue.Want("dir", types.String))),

		cliglue.Subcommand([]string{"remote"}, cliglue.WithHelp("Manage remotes")).Has(
			cliglue.DefaultAction(cliglue.NewAction("list remotes", listRemotes, cliglue.Want("verbose", types.Int))),
			cliglue.Subcommand([]string{"add"}, cliglue.WithHelp("Add a remote"),
				cliglue.WithRun(cliglue.NewAction("add remote", addRemote,
					cliglue.Need("name", types.String), cliglue.Need("url", types.Custom)))).Has(
				cliglue.Argument("name"),
				cliglue.Argument("url", cliglue.WithParser(parseURL)),
			),
			cliglue.Subcommand([]string{"remove"}, cliglue.WithAliases("rm"), cliglue.WithHelp("Remove a remote"),
				cliglue.WithRun(cliglue.NewAction("remove remote", removeRemote, cliglue.Need("name", types.String)))).Has(
				cliglue.Argument("name", cliglue.WithChoiceFunc(remoteNames)),
			),
		),

		cliglue.Subcommand([]string{"log"}, cliglue.WithHelp("Show commit logs"),
			cliglue.WithRun(cliglue.NewAction("log", showLog))).Has(
			cliglue.Parameter([]string{"--since"}, cliglue.WithType(types.Time), cliglue.WithHelp("Show commits after a date")),
			cliglue.Parameter([]string{"-n", "--max-count"}, cliglue.WithType(types.Int), cliglue.WithDefault(10),
				cliglue.WithHelp("Limit the number of entries")),
			cliglue.Parameter([]string{"--format"}, cliglue.WithType(types.Choice), cliglue.WithDefault("medium"),
				cliglue.WithChoices("oneline", "short", "medium", "full"), cliglue.WithHelp("Entry layout")),
		),

		cliglue.Subcommand([]string{"fetch"}, cliglue.WithHelp("Download objects from a remote"),
			cliglue.WithRun(cliglue.NewAction("fetch", fetch))).Has(
			cliglue.Argument("remote", cliglue.WithDefault("origin"), cliglue.WithChoiceFunc(remoteNames)),
			cliglue.Parameter([]string{"--timeout"}, cliglue.WithType(types.Duration), cliglue.WithDefault(30*time.Second),
				cliglue.WithHelp("Give up after this long")),
			cliglue.Parameter([]string{"--prune"}, cliglue.WithType(types.Bool), cliglue.WithDefault(false),
				cliglue.WithHelp("Remove remote-tracking references that no longer exist")),
			cliglue.Parameter([]string{"--rate-limit"}, cliglue.WithType(types.Float), cliglue.WithHelp("Maximum transfer rate in MiB/s")),
		),

		cliglue.Subcommand([]string{"commit"}, cliglue.WithHelp("Record changes"),
			cliglue.WithRun(cliglue.NewAction("commit", commit,
				cliglue.Need("message", types.String), cliglue.WantList("paths", types.String)))).Has(
			cliglue.Parameter([]string{"-m", "--message"}, cliglue.SetRequired(true), cliglue.WithHelp("Commit message")),
			cliglue.Flag([]string{"--amend"}, cliglue.WithHelp("Replace the tip of the branch")),
			cliglue.Arguments("paths", cliglue.WithChoiceFunc(completion.FileCompleter)),
		),
	)

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
