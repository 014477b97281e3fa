package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/pendulum/parameter"
)

var (
	ticksFlag  = flag.Int("ticks", 600, "Number of simulation ticks")
	dragFlag   = flag.Float64("drag", 6, "Scripted drag in pixels per tick for the first ticks, 0 disables")
	widthFlag  = flag.Int("width", 70, "Plot width in columns")
	heightFlag = flag.Int("height", 10, "Plot height in rows")
)

func main() {
	flag.Parse()

	res, err := runTrace(parameter.DefaultConfig(), *ticksFlag, *dragFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pendulum-trace: %v\n", err)
		os.Exit(1)
	}
	if err := writeReport(os.Stdout, res, *widthFlag, *heightFlag); err != nil {
		fmt.Fprintf(os.Stderr, "pendulum-trace: %v\n", err)
		os.Exit(1)
	}
}
