// Command asm assembles a Redcode warrior source file and writes the
// canonical dump of the resolved program.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.creack.net/redcode/asm"
	"go.creack.net/redcode/core"
	"go.creack.net/redcode/op"
)

func run(input, output string, coreSize int, dumpAll bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	prog, err := asm.Assemble(input, string(data))
	if err != nil {
		return fmt.Errorf("failed to assemble: %w", err)
	}
	for _, diag := range prog.Diagnostics {
		log.Printf("Warning: %s: %s", input, diag)
	}

	out := prog.Dump()
	if dumpAll {
		// Materialize the program in a core image and dump every slot.
		c := core.New(coreSize)
		if err := prog.Load(c, 0); err != nil {
			return err
		}
		out = c.DumpAll()
	}

	if output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	output := flag.String("o", "", "output file, default to stdout")
	coreSize := flag.Int("core-size", op.DefaultCoreSize, "core size used with -a")
	dumpAll := flag.Bool("a", false, "dump the full core image, default slots included")
	flag.Parse()
	input := flag.Arg(0)
	if input == "" {
		tmp := strings.Split(os.Args[0], "/")
		binName := tmp[len(tmp)-1]
		fmt.Fprintf(os.Stderr, "usage: %s <.red path> [options]\n", binName)
		flag.PrintDefaults()
		return
	}

	if err := run(input, *output, *coreSize, *dumpAll); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
