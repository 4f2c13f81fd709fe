package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", defaultConfigFile, "INI file with input paths and settings")
		inputPath  = flag.String("input", "", "Input file (overrides the configured path)")
		dump       = flag.Bool("dump", false, "Pretty-print parsed records to stderr")
		verbose    = flag.Bool("v", false, "Log input details")
		profile    = flag.String("profile", "", "Write an fgprof profile (pprof format) to this file")
		workers    = flag.Int("workers", 0, "Parallelism of record folds (0 means GOMAXPROCS)")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := loadConfig(*configFile, !explicit)
	if err != nil {
		log.Fatal(err)
	}

	if flag.Arg(0) == "import" {
		if err := importInput(cfg, flag.Args()[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}
	r := &run{
		day:     name,
		path:    cfg.inputPath(name),
		workers: cfg.workers,
		out:     os.Stdout,
		dump:    *dump,
		verbose: *verbose,
	}
	if *inputPath != "" {
		r.path = *inputPath
	}
	if *workers > 0 {
		r.workers = *workers
	}
	if err := solve(r, fn, *profile); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] import [solution] [file]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// solve runs fn, optionally under fgprof. The answers are printed only if
// fn succeeds.
func solve(r *run, fn func(*run) error, profile string) error {
	if profile == "" {
		return r.finish(fn(r))
	}
	f, err := os.Create(profile)
	if err != nil {
		return err
	}
	defer f.Close()
	stop := fgprof.Start(f, fgprof.FormatPprof)
	if err := fn(r); err != nil {
		stop()
		return r.finish(err)
	}
	if err := stop(); err != nil {
		return fmt.Errorf("error writing profile: %s", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return r.finish(nil)
}

// A run is a single invocation of one day's solution.
type run struct {
	day     string
	path    string
	workers int
	out     io.Writer
	dump    bool
	verbose bool

	answers []interface{}
	// lineNums[i] is the line number in the input file of the ith line
	// returned by lines. It is nil if no lines were skipped.
	lineNums []int
}

func (r *run) answer(v interface{}) {
	r.answers = append(r.answers, v)
}

// finish prints the answers if err is nil. Otherwise it returns err with
// parse error line numbers translated back to lines of the input file.
func (r *run) finish(err error) error {
	if err != nil {
		var pe *parseError
		if errors.As(err, &pe) && r.lineNums != nil && pe.Line > 0 && pe.Line <= len(r.lineNums) {
			pe.Line = r.lineNums[pe.Line-1]
		}
		return err
	}
	for _, v := range r.answers {
		if _, err := fmt.Fprintln(r.out, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) debug(v interface{}) {
	if r.dump {
		pretty.Fprintf(os.Stderr, "day %s: %# v\n", r.day, v)
	}
}

func (r *run) logf(format string, args ...interface{}) {
	if r.verbose {
		log.Printf("day %s: "+format, append([]interface{}{r.day}, args...)...)
	}
}

var solutions = make(map[string]func(*run) error)

func register(name string, fn func(*run) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
