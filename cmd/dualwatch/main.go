package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("dualwatch"),
		kong.Description("Watches a host's IPv4 and IPv6 reachability and logs sustained outages."),
	)

	if err := run(&cli); err != nil {
		os.Exit(1)
	}
}
