package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	arb "github.com/shabbyrobe/go-arb"
)

// This is a scratch harness for eyeballing how the iterative approximations
// converge. It prints the result of a function at every iteration count up
// to the limit you give it, along with the size of the exact rational
// behind the printed digits, which is the real cost driver. It is not a
// tool, just a lab bench; expect rough edges.

const usage = `Approximation explorer

Usage: <func> <iters> [args...]

Funcs: ln ln2 e exp pi pow sqrt sin cos tan`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	fn := os.Args[1]
	iters, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return err
	}

	args := make([]arb.Rat, 0, len(os.Args)-3)
	for _, raw := range os.Args[3:] {
		v, err := arb.RatFromString(raw)
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	eval, argc, err := lookup(fn)
	if err != nil {
		return err
	}
	if len(args) != argc {
		return fmt.Errorf("%s wants %d args, got %d", fn, argc, len(args))
	}

	for i := 0; i <= iters; i++ {
		result := eval(args, i)
		fmt.Printf("%3d: %-24s num:%d den:%d\n",
			i, result.ToApproxString(22),
			result.Num().Abs().BitLen(), result.Den().BitLen())
	}

	final := eval(args, iters)
	spew.Dump(final.Num().String(), final.Den().String())
	return nil
}

func lookup(fn string) (eval func([]arb.Rat, int) arb.Rat, argc int, err error) {
	switch fn {
	case "ln":
		return func(a []arb.Rat, i int) arb.Rat { return arb.LnIter(a[0], i) }, 1, nil
	case "ln2":
		return func(a []arb.Rat, i int) arb.Rat { return arb.Ln2Iter(i) }, 0, nil
	case "e":
		return func(a []arb.Rat, i int) arb.Rat { return arb.EIter(i) }, 0, nil
	case "exp":
		return func(a []arb.Rat, i int) arb.Rat { return arb.ExpIter(a[0], i) }, 1, nil
	case "pi":
		return func(a []arb.Rat, i int) arb.Rat { return arb.PiIter(i) }, 0, nil
	case "pow":
		return func(a []arb.Rat, i int) arb.Rat { return arb.PowIter(a[0], a[1], i) }, 2, nil
	case "sqrt":
		return func(a []arb.Rat, i int) arb.Rat { return arb.SqrtIter(a[0], i) }, 1, nil
	case "sin":
		return func(a []arb.Rat, i int) arb.Rat { return arb.SinIter(a[0], i) }, 1, nil
	case "cos":
		return func(a []arb.Rat, i int) arb.Rat { return arb.CosIter(a[0], i) }, 1, nil
	case "tan":
		return func(a []arb.Rat, i int) arb.Rat { return arb.TanIter(a[0], i) }, 1, nil
	}
	return nil, 0, fmt.Errorf("unknown func %q", fn)
}
