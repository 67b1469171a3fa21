package main

import (
	"os"

	cc "github.com/ivanpirog/coloredcobra"

	"github.com/karnotteam/finrep/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold,
		Commands: cc.HiYellow + cc.Bold,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
