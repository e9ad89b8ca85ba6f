// Command salesman reads a list of city-to-city distances and prints the
// lengths of the shortest and longest routes that visit every city once.
//
// Usage:
//
//	salesman [-input input.txt] [-quiet] [-survey] [-v]
//
// With no flags it reads input.txt from the working directory, prints the
// distance table dump, then
//
//	MIN: <n>
//	MAX: <n>
//
// Any input or search error aborts with a message on stderr and exit status 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/route"
	"github.com/katalvlaran/salesman/survey"
)

func main() {
	input := flag.String("input", "input.txt", "Path to the distance list")
	quiet := flag.Bool("quiet", false, "Skip the distance table dump")
	doSurvey := flag.Bool("survey", false, "Enumerate every route and print length statistics")
	verbose := flag.Bool("v", false, "Log timings and search statistics to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("salesman: ")

	if err := run(os.Stdout, *input, *quiet, *doSurvey, *verbose); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(out io.Writer, input string, quiet, doSurvey, verbose bool) error {
	start := time.Now()
	t, err := distance.Load(input)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("Loaded %d cities from %s in %v", t.Len(), input, time.Since(start))
	}

	if !quiet {
		if err = distance.Dump(out, t); err != nil {
			return err
		}
	}

	for _, obj := range []route.Objective{route.Minimize, route.Maximize} {
		start = time.Now()
		res, err := route.Search(t, route.DefaultOptions(obj))
		if err != nil {
			return fmt.Errorf("%s search: %w", obj, err)
		}
		if verbose {
			log.Printf("%s: %d routes evaluated, %d branches pruned, %v", obj, res.Leaves, res.Pruned, time.Since(start))
		}
		if _, err = fmt.Fprintf(out, "%s: %d\n", obj, res.Length); err != nil {
			return err
		}
	}

	if doSurvey {
		start = time.Now()
		rep, err := survey.Run(t)
		if err != nil {
			return err
		}
		if verbose {
			log.Printf("Survey done in %v", time.Since(start))
		}
		return rep.Write(out)
	}

	return nil
}
