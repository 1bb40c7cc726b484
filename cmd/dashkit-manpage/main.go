package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dashkit/cmd/dashkit"
	"github.com/arthur-debert/dashkit/internal/version"
)

func main() {
	dir := flag.String("dir", "", "write one page per command into this directory instead of stdout")
	flag.Parse()

	rootCmd := dashkit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DASHKIT",
		Section: "1",
		Source:  "dashkit " + version.Version,
		Manual:  "dashkit manual",
	}

	var err error
	if *dir != "" {
		if err = os.MkdirAll(*dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, *dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
