// Command lc3sim loads a compiled LC-3 object file and drops into an
// interactive debugger REPL over it.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"lc3sim/ioterm"
	"lc3sim/lc3"
	"lc3sim/repl"
)

func main() {
	os.Exit(run())
}

// run builds and executes the root command, translating its outcome
// into the exit codes spec.md §6 documents: 2 for an object or script
// file that can't be opened, 1 for a wrong argument count or any other
// error, 0 on normal quit.
func run() int {
	var scriptPath string

	rootCmd := &cobra.Command{
		Use:   "lc3sim FILE.obj",
		Short: "LC-3 simulator and interactive debugger",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulator(args[0], scriptPath)
		},
	}
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "read REPL commands from FILE instead of stdin")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errOpenFailed) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

var errOpenFailed = errors.New("could not open object file")

func runSimulator(objPath, scriptPath string) error {
	f, err := os.Open(objPath)
	if err != nil {
		return errors.Wrapf(errOpenFailed, "%s: %v", objPath, err)
	}
	defer f.Close()

	host, err := ioterm.StdioHost()
	if err != nil {
		return errors.Wrap(err, "lc3sim: setting up terminal")
	}
	defer host.Close()

	m := lc3.NewMachine(host)
	if err := m.Load(f); err != nil {
		return errors.Wrapf(err, "lc3sim: loading %s", objPath)
	}

	var in *os.File = os.Stdin
	if scriptPath != "" {
		sf, err := os.Open(scriptPath)
		if err != nil {
			return errors.Wrapf(errOpenFailed, "%s: %v", scriptPath, err)
		}
		defer sf.Close()
		in = sf
	}

	session := repl.New(m, in, os.Stdout)
	session.Run()
	return nil
}
