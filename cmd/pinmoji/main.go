// Command pinmoji runs the sync mirror and its local HTTP surface.
//
// Flags:
//
//	--config   path to the YAML config file (default: $CONFIG_PATH, then ./config.yaml)
//	--version  print the build version and exit
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/pinmoji/internal/app"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to the YAML config file")
	showVersion := pflag.Bool("version", false, "print the build version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(app.BuildVersion())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		log.Printf("pinmoji: %v", err)
		stop()
		os.Exit(1)
	}
}
