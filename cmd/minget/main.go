// Command minget extracts a regular file's contents from a MINIX V3
// filesystem image to an output byte stream.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/minixfs/minixfs/disk"
	"github.com/minixfs/minixfs/internal/cliflags"
	"github.com/minixfs/minixfs/internal/diag"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-v] [-p N [-s M]] imagefile srcpath [dstpath]

Extract the contents of a regular file from a MINIX V3 filesystem image.
If dstpath is omitted, the file's contents are written to standard output.

  -v        enable verbose diagnostics
  -p N      select primary partition N (0..3)
  -s M      select subpartition M (0..3); requires -p
  -h        show this usage text
`, os.Args[0])
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("minget", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = usage
	verbose, part := cliflags.Register(fs)

	if err := fs.Parse(args); err != nil {
		usage()
		return 1
	}

	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 3 {
		usage()
		return 1
	}
	imagePath := rest[0]
	srcPath := rest[1]
	var dstPath string
	if len(rest) == 3 {
		dstPath = rest[2]
	}

	sel, err := part.Selection()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		return 1
	}

	log := diag.New(*verbose)

	d, err := disk.Open(imagePath, sel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer d.Close()

	diag.Superblock(log, d.FSOffset, d.FS, d.Size)

	inode, inum, err := d.FS.Resolve(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	diag.Inode(log, d.FS, inum, inode)

	if !inode.IsRegular() {
		fmt.Fprintf(os.Stderr, "%s: not a regular file\n", srcPath)
		return 1
	}

	out := os.Stdout
	if dstPath != "" {
		f, err := os.Create(dstPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if _, err := d.FS.WriteFile(inode, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
