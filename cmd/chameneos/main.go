// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command chameneos plays the chameneos games on the rendezvous meeting
// place and prints the meeting report.
//
//	chameneos [-n meetings] [-games file.yaml] [-json] [-journal] [-affinity=false] [-timeout d] [meetings]
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"code.hybscloud.com/rendezvous/internal/chameneos"
	"code.hybscloud.com/rendezvous/internal/config"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := chameneos.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
