// Command minls lists a directory, or a single file's metadata entry,
// from a MINIX V3 filesystem image.
package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/minixfs/minixfs/disk"
	"github.com/minixfs/minixfs/filesystem/minix"
	"github.com/minixfs/minixfs/internal/cliflags"
	"github.com/minixfs/minixfs/internal/diag"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-v] [-p N [-s M]] imagefile [path]

List the contents of a directory, or a single file's metadata entry, in a
MINIX V3 filesystem image.

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
	fs := flag.NewFlagSet("minls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = usage
	verbose, part := cliflags.Register(fs)

	if err := fs.Parse(args); err != nil {
		usage()
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		usage()
		return 1
	}
	imagePath := rest[0]
	targetPath := "/"
	if len(rest) == 2 {
		targetPath = rest[1]
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

	inode, inum, err := d.FS.Resolve(targetPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	diag.Inode(log, d.FS, inum, inode)

	canon := minix.Canonicalize(targetPath)

	if inode.IsDirectory() {
		entries, err := d.FS.ReadDir(inode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("%s:\n", canon)
		for _, e := range entries {
			child, err := d.FS.Inode(e.Inode)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			diag.Inode(log, d.FS, e.Inode, child)
			fmt.Println(minix.FormatEntryLine(e.Name, child))
		}
		return 0
	}

	name := path.Base(canon)
	fmt.Println(minix.FormatEntryLine(name, inode))
	return 0
}
