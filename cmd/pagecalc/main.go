// Command pagecalc prints the paging plan for a set of inputs.
//
//	pagecalc --page 10 --total 200 --max 5 --query "sort=name"
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	kingpin "github.com/alecthomas/kingpin/v2"

	"github.com/DukeRupert/pagekit/internal/pagination"
	"github.com/DukeRupert/pagekit/internal/settings"
)

type flags struct {
	page         int
	size         int
	total        int
	max          int
	gap          int
	gapSet       bool
	query        string
	profile      string
	profilesFile string
	envPrefix    string
	clamp        bool
	asJSON       bool
}

func newApp(f *flags) *kingpin.Application {
	app := kingpin.New("pagecalc", "Print the paging plan for the given inputs.")
	app.HelpFlag.Short('h')

	app.Flag("page", "Current page (1-based)").Short('p').IntVar(&f.page)
	app.Flag("size", "Records per page").Short('s').IntVar(&f.size)
	app.Flag("total", "Total number of records").Short('t').IntVar(&f.total)
	app.Flag("max", "Maximum numbered pages shown").IntVar(&f.max)
	app.Flag("gap", "Distance before a gap marker is shown").IsSetByUser(&f.gapSet).IntVar(&f.gap)
	app.Flag("query", "Existing query string to carry into links").StringVar(&f.query)
	app.Flag("profile", "Settings profile").Default(settings.DefaultProfile).Envar("PAGING_PROFILE").StringVar(&f.profile)
	app.Flag("profiles-file", "YAML file with paging profiles").Envar("PAGING_PROFILES_FILE").ExistingFileVar(&f.profilesFile)
	app.Flag("env-prefix", "Prefix for environment overrides").Default("PAGING").StringVar(&f.envPrefix)
	app.Flag("clamp", "Never let the window pass the last page").BoolVar(&f.clamp)
	app.Flag("json", "Print the plan as JSON").BoolVar(&f.asJSON)
	return app
}

func run(args []string, stdout io.Writer) error {
	var f flags
	app := newApp(&f)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	chain := settings.Chain{settings.NewEnvSource(f.envPrefix)}
	if f.profilesFile != "" {
		src, err := settings.LoadYAML(f.profilesFile)
		if err != nil {
			return err
		}
		chain = append(chain, src)
	}

	var overrides settings.Overrides
	overrides.Query = f.query
	if f.clamp {
		overrides.ClampWindow = &f.clamp
	}

	var stateOpts []settings.StateOption
	if f.gapSet {
		stateOpts = append(stateOpts, settings.ExplicitGap())
	}
	state := settings.ResolveState(chain, f.profile, pagination.State{
		CurrentPage:       f.page,
		PageSize:          f.size,
		TotalRecords:      f.total,
		MaxDisplayedPages: f.max,
		GapSize:           f.gap,
	}, stateOpts...)
	plan, err := pagination.NewPlan(state, settings.ResolveOptions(chain, f.profile, overrides))
	if err != nil {
		return err
	}

	if f.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	printPlan(stdout, plan)
	return nil
}

func printPlan(w io.Writer, plan *pagination.Plan) {
	s := plan.State
	fmt.Fprintf(w, "page %d of %d (%d records, %d per page)\n", s.CurrentPage, plan.TotalPages, s.TotalRecords, s.PageSize)
	if plan.Empty() {
		fmt.Fprintln(w, "no pages")
		return
	}
	fmt.Fprintf(w, "window %d-%d, records %d-%d\n", plan.Window.Start, plan.Window.End, plan.Offset+1, plan.Offset+min(plan.Limit, s.TotalRecords-plan.Offset))

	pages := make([]string, 0, len(plan.Items))
	for _, p := range plan.Pages() {
		pages = append(pages, strconv.Itoa(p))
	}
	fmt.Fprintf(w, "pages %s\n", strings.Join(pages, " "))

	for _, it := range plan.Items {
		var marks []string
		if it.Current {
			marks = append(marks, "current")
		}
		if it.Kind.IsJump() {
			marks = append(marks, "jump")
		}
		if it.Disabled {
			marks = append(marks, "disabled")
		}
		line := fmt.Sprintf("%-8s %-4s", it.Kind, it.Label)
		if it.Href != "" {
			line += " " + it.Href
		}
		if len(marks) > 0 {
			line += " [" + strings.Join(marks, ",") + "]"
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	if plan.Info != nil {
		for _, l := range []*pagination.InfoLabel{plan.Info.TotalPages, plan.Info.TotalRecords} {
			if l != nil {
				fmt.Fprintln(w, l.Text)
			}
		}
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pagecalc:", err)
		os.Exit(1)
	}
}
