package main

import (
	"fmt"
	"os"

	"github.com/go-home-io/panel/emulator"
	"github.com/go-home-io/panel/server"
	"github.com/go-home-io/panel/settings"
	"github.com/jessevdk/go-flags"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}

	s, err := settings.Load(options)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if options.IsDevice {
		s.SystemLogger().Info("Starting device emulator")
		emulator.NewDevice(s.EmulatorSettings(), s.SystemLogger()).Start()
		return
	}

	s.SystemLogger().Info("Starting go-home panel")
	srv, err := server.NewServer(s)
	if err != nil {
		s.SystemLogger().Fatal("Failed to start go-home panel", err)
	}

	srv.Start()
}
