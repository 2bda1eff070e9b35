// Package main is the entry point for the gitstatus CLI.
//
// The binary answers Git status questions for sets of paths: per-file and
// per-directory markers, repository summaries for subdirectories, and the
// current branch. All functionality lives in the internal/cli package.
package main

import (
	"github.com/input-output-hk/catalyst-forge-libs/gitstatus/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
