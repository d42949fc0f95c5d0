package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cashbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	subs := make(map[string]*complete.Command, len(cmd.Names()))
	for _, name := range cmd.Names() {
		subs[name] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
			"currency":    predict.Nothing,
		},
	}
	completion.Complete("cbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
