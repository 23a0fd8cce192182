// Package cliflags registers the partition-selection flags (-p, -s)
// shared by both front ends as plain integer flags on the standard flag
// package rather than cobra, since these are flat getopt-style programs,
// not subcommand trees.
package cliflags

import (
	"errors"
	"flag"

	"github.com/minixfs/minixfs/internal/mbr"
)

// Partition registers -p and -s onto fs and returns an accessor for the
// resulting partition selection once fs.Parse has run.
type Partition struct {
	fs      *flag.FlagSet
	primary int
	sub     int
}

// Register adds -v, -p, and -s to fs, matching the flags described in
// spec.md §6.
func Register(fs *flag.FlagSet) (verbose *bool, part *Partition) {
	verbose = fs.Bool("v", false, "enable verbose diagnostics")
	part = &Partition{fs: fs}
	fs.IntVar(&part.primary, "p", -1, "select primary partition N (0..3)")
	fs.IntVar(&part.sub, "s", -1, "select subpartition M (0..3); requires -p")
	return verbose, part
}

// Selection builds the mbr.Selection implied by which of -p/-s were
// actually passed on the command line, erroring if -s was given without
// -p.
func (p *Partition) Selection() (mbr.Selection, error) {
	var hasP, hasS bool
	p.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			hasP = true
		case "s":
			hasS = true
		}
	})
	if hasS && !hasP {
		return mbr.Selection{}, errors.New("-s requires -p")
	}
	return mbr.Selection{
		HasPrimary: hasP,
		Primary:    p.primary,
		HasSub:     hasS,
		Sub:        p.sub,
	}, nil
}
