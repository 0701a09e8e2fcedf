// levelcheck validates level files without opening the game. It decodes each
// file, checks every enum and position, and reports what it found. Pass file
// paths as arguments, or -embedded to sweep the levels shipped with the
// binary. Exits non-zero when any level has problems.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/levels"
	"github.com/arcadebit/pegfall/obj"
)

func main() {
	embedded := flag.Bool("embedded", false, "check the embedded levels instead of file arguments")
	verbose := flag.Bool("v", false, "print counts for clean levels too")
	flag.Parse()

	var failed bool
	check := func(label string, f *levels.File, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
			failed = true
			return
		}
		problems := validate(f)
		if len(problems) > 0 {
			failed = true
			fmt.Printf("%s: %d problem(s)\n", label, len(problems))
			for _, p := range problems {
				fmt.Printf("  %s\n", p)
			}
			return
		}
		if *verbose {
			fmt.Printf("%s: ok, %s\n", label, summarize(f))
		}
	}

	if *embedded {
		names := levels.Names()
		if len(names) == 0 {
			fmt.Fprintln(os.Stderr, "no embedded levels found")
			os.Exit(1)
		}
		for _, name := range names {
			f, err := levels.LoadFromFS(name)
			check(name, f, err)
		}
	} else {
		if flag.NArg() == 0 {
			fmt.Fprintln(os.Stderr, "usage: levelcheck [-v] file.json... | levelcheck -embedded")
			os.Exit(2)
		}
		for _, path := range flag.Args() {
			f, err := levels.LoadFile(path)
			check(path, f, err)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// validate returns one message per problem found in the file. Positions must
// sit inside the level rectangle and every enum string must parse.
func validate(f *levels.File) []string {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	checkPos := func(what string, x, y float64) {
		if x < common.LevelLeft || x > common.LevelRight || y < common.LevelBottom || y > common.LevelTop {
			add("%s at (%.3f, %.3f) is outside the level", what, x, y)
		}
	}
	checkPeg := func(what string, p levels.Peg) {
		if _, err := obj.ParsePegColor(p.Color); err != nil {
			add("%s: %v", what, err)
		}
		if _, err := obj.ParsePegType(p.Type); err != nil {
			add("%s: %v", what, err)
		}
		if _, err := obj.ParsePegSize(p.Size); err != nil {
			add("%s: %v", what, err)
		}
	}
	checkChar := func(what string, c levels.Characteristic) {
		if _, err := obj.ParseCharShape(c.Shape); err != nil {
			add("%s: %v", what, err)
		}
		if _, err := obj.ParseBounceType(c.BounceType); err != nil {
			add("%s: %v", what, err)
		}
	}

	if f.Name == "" {
		add("level has no name")
	}

	for i, p := range f.Pegs {
		what := fmt.Sprintf("peg %d", i)
		checkPos(what, p.X, p.Y)
		checkPeg(what, p)
	}
	for i, c := range f.Characteristics {
		what := fmt.Sprintf("characteristic %d", i)
		checkPos(what, c.X, c.Y)
		checkChar(what, c)
	}
	for i, s := range f.Shapes {
		what := fmt.Sprintf("shape %d", i)
		checkPos(what, s.X, s.Y)
		if _, err := obj.ParseShapeType(s.Type); err != nil {
			add("%s: %v", what, err)
		}
		if _, err := obj.ParseAlign(s.Align); err != nil {
			add("%s: %v", what, err)
		}
		if _, err := obj.ParseJustify(s.Justify); err != nil {
			add("%s: %v", what, err)
		}
		if s.Size < 0 {
			add("%s has negative size %.3f", what, s.Size)
		}
		for j, p := range s.ContainedPegs {
			checkPeg(fmt.Sprintf("%s peg %d", what, j), p)
		}
		for j, c := range s.ContainedCharacteristics {
			checkChar(fmt.Sprintf("%s characteristic %d", what, j), c)
		}
	}
	for i, sp := range f.Spacers {
		what := fmt.Sprintf("spacer %d", i)
		checkPos(what, sp.X, sp.Y)
		if sp.Size.Width <= 0 || sp.Size.Height <= 0 {
			add("%s has empty size %.3fx%.3f", what, sp.Size.Width, sp.Size.Height)
		}
		if sp.X-sp.Size.Width/2 < common.LevelLeft || sp.X+sp.Size.Width/2 > common.LevelRight ||
			sp.Y-sp.Size.Height/2 < common.LevelBottom || sp.Y+sp.Size.Height/2 > common.LevelTop {
			add("%s extends past the level edge", what)
		}
	}

	if orangeCount(f) == 0 {
		add("level has no orange pegs, it cannot be cleared")
	}
	return problems
}

func summarize(f *levels.File) string {
	pegs := len(f.Pegs)
	for _, s := range f.Shapes {
		pegs += len(s.ContainedPegs)
	}
	return fmt.Sprintf("%d pegs (%d orange), %d shapes, %d characteristics, %d spacers",
		pegs, orangeCount(f), len(f.Shapes), len(f.Characteristics), len(f.Spacers))
}

func orangeCount(f *levels.File) int {
	n := 0
	for _, p := range f.Pegs {
		if p.Color == "orange" {
			n++
		}
	}
	for _, s := range f.Shapes {
		for _, p := range s.ContainedPegs {
			if p.Color == "orange" {
				n++
			}
		}
	}
	return n
}
