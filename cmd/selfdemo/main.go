// Command selfdemo builds object graphs and prints the expected and actual
// results of operations on them.
//
// Usage:
//
//	selfdemo [-f scenario.yaml] [-encoding name] [-q]
//
// Without -f, selfdemo runs a built-in walkthrough of evaluation, copying,
// message sends, parent slots, and printing. The exit status is 1 if any check
// fails and 2 if the scenario cannot be loaded.
package main

import (
	_ "embed" // for the built-in scenario
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zephyrtronium/selfobj"
	"github.com/zephyrtronium/selfobj/fixture"
)

//go:embed demo.yaml
var demo []byte

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		scenario string
		encoding string
		quiet    bool
	)
	fs := flag.NewFlagSet("selfdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&scenario, "f", "", "YAML scenario to run instead of the built-in walkthrough")
	fs.StringVar(&encoding, "encoding", "utf8", "output encoding: utf8, latin1, windows1252, utf16, or utf32")
	fs.BoolVar(&quiet, "q", false, "print only failed checks and the summary")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	out, flush, err := encodeOutput(stdout, encoding)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() {
		if err := flush(); err != nil {
			fmt.Fprintln(stderr, err)
		}
	}()

	var g *fixture.Graph
	if scenario == "" {
		g, err = fixture.LoadBytes(demo, builtins())
	} else {
		g, err = fixture.LoadFile(scenario, builtins())
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	failed := 0
	for i, r := range g.RunAll() {
		c := &g.Checks[i]
		if !r.Pass {
			failed++
		} else if quiet {
			continue
		}
		report(out, c, r)
	}
	fmt.Fprintf(out, "%d of %d checks passed\n", len(g.Checks)-failed, len(g.Checks))
	if failed > 0 {
		return 1
	}
	return 0
}

// report prints one check's expected and actual results.
func report(w io.Writer, c *fixture.Check, r fixture.Result) {
	status := "ok"
	if !r.Pass {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s: %s\n", status, c.Label())
	if want := c.Expected(); want != "" {
		fmt.Fprintf(w, "\tExpected: %s\n", want)
	}
	if r.Err != nil {
		fmt.Fprintf(w, "\tActual: error: %v\n", r.Err)
	} else {
		fmt.Fprintf(w, "\tActual: %s\n", r.Got)
	}
}

// builtins returns the primitive functions scenarios may use by name.
func builtins() map[string]selfobj.Fn {
	return map[string]selfobj.Fn{
		"identity":  identity,
		"parameter": parameter,
		"describe":  describe,
	}
}

// identity returns its receiver.
func identity(self *selfobj.Object) (*selfobj.Object, error) {
	return self, nil
}

// parameter evaluates the receiver's parameter slot.
func parameter(self *selfobj.Object) (*selfobj.Object, error) {
	return self.Send(selfobj.ParameterSlot)
}

// describe returns a primitive holding the printed form of the receiver.
func describe(self *selfobj.Object) (*selfobj.Object, error) {
	return selfobj.NewPrimitive(self.Print()), nil
}
