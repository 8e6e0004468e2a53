package main

import (
	"admgate/internal/di"
	"admgate/internal/structures"
	"flag"
	"fmt"
	"os"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to the config file")
	debug := flag.Bool("d", false, "debug mode: mirror logs to stderr")
	flag.Parse()

	_, err := di.InitApp(&structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
