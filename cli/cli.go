// Package cli provides the functions to parse the non-standard CLI flags
// shared by the viewer tools.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.creack.net/redcode/asm"
	"go.creack.net/redcode/op"
)

// Warrior is a warrior source file given on the command line, together with
// its assembled program and load address.
type Warrior struct {
	PathName  string
	ShortName string

	Prog *asm.Program
	At   int // Load address in the core.
}

// Config is the shared configuration of the viewer tools.
type Config struct {
	CoreSize int
	Warriors []*Warrior
}

func parse() (int, []*Warrior, error) {
	coreSize := op.DefaultCoreSize

	var warriors []*Warrior

	// Process arguments manually.
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "-core-size" && i+1 < len(args) {
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return 0, nil, fmt.Errorf("invalid number for -core-size flag: %q", args[i+1])
			}
			coreSize = n
			i++ // Skip the value of -core-size.
			continue
		} else if strings.HasPrefix(arg, "-core-size=") {
			arg = strings.TrimPrefix(arg, "-core-size=")
			n, err := strconv.Atoi(arg)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid number for -core-size flag: %q", arg)
			}
			coreSize = n
			continue
		}

		// If it's not a flag, it's a warrior file.
		if arg[0] != '-' {
			warriors = append(warriors, &Warrior{PathName: arg})
		}
	}
	if len(warriors) == 0 {
		return 0, nil, fmt.Errorf("no warriors provided")
	}
	if coreSize <= 0 {
		return 0, nil, fmt.Errorf("invalid core size %d", coreSize)
	}

	for _, w := range warriors {
		if !strings.HasSuffix(w.PathName, ".red") && !strings.HasSuffix(w.PathName, ".s") {
			return 0, nil, fmt.Errorf("invalid file extension for %q, must be .red or .s", w.PathName)
		}
	}

	return coreSize, warriors, nil
}

func loadWarriors(warriors []*Warrior) error {
	for _, w := range warriors {
		tmp := strings.Split(w.PathName, "/")
		w.ShortName = tmp[len(tmp)-1]
		w.ShortName = strings.TrimSuffix(w.ShortName, ".red")
		w.ShortName = strings.TrimSuffix(w.ShortName, ".s")

		data, err := os.ReadFile(w.PathName)
		if err != nil {
			return fmt.Errorf("failed to read file %q: %w", w.PathName, err)
		}
		prog, err := asm.Assemble(w.PathName, string(data))
		if err != nil {
			return fmt.Errorf("failed to assemble %q: %w", w.PathName, err)
		}
		w.Prog = prog
	}
	return nil
}

// ParseConfig parses the command line, assembles each warrior and spreads
// the load addresses evenly through the core.
func ParseConfig() (Config, error) {
	coreSize, warriors, err := parse()
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := loadWarriors(warriors); err != nil {
		return Config{}, fmt.Errorf("load warriors: %w", err)
	}

	for i, w := range warriors {
		w.At = i * (coreSize / len(warriors))
		if w.At+len(w.Prog.Instructions) > coreSize {
			return Config{}, fmt.Errorf("warrior %q does not fit in core of size %d", w.PathName, coreSize)
		}
	}

	return Config{CoreSize: coreSize, Warriors: warriors}, nil
}
