// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chameneos runs the configured games side by side and reports them.
package chameneos

import (
	"context"
	"fmt"
	"io"
	"log"

	"code.hybscloud.com/rendezvous"
	"code.hybscloud.com/rendezvous/internal/affinity"
	"code.hybscloud.com/rendezvous/internal/config"
	"code.hybscloud.com/rendezvous/internal/report"
)

type outcome struct {
	index  int
	result rendezvous.Result
}

// Run plays every game of cfg concurrently, each with cfg.Meetings meetings,
// and writes the report to out. Diagnostics go to errOut.
//
// A game cannot be interrupted; when ctx ends first Run returns ctx.Err()
// and the games are abandoned. No game is started once ctx is done.
func Run(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("games not started: %w", err)
	}
	logger := log.New(errOut, "chameneos: ", 0)

	var cpus *affinity.Set
	if cfg.Affinity {
		var err error
		if cpus, err = affinity.Load(); err != nil {
			logger.Printf("affinity disabled: %v", err)
		}
	}

	sessions := make([]*rendezvous.Session, len(cfg.Games))
	for i, g := range cfg.Games {
		var opts []rendezvous.Option
		if cpus != nil {
			// Slot 0 means unpinned; games take slots 1, 2, ...
			if pin := cpus.Pinner(i + 1); pin != nil {
				opts = append(opts, rendezvous.WithAffinity(pin))
			}
		}
		if cfg.Journal {
			opts = append(opts, rendezvous.WithJournal(rendezvous.DefaultJournalCapacity))
		}
		s, err := rendezvous.NewSession(cfg.Meetings, g.Colors, opts...)
		if err != nil {
			return fmt.Errorf("game %s: %w", g.Name, err)
		}
		sessions[i] = s
	}

	done := make(chan outcome, len(sessions))
	for i, s := range sessions {
		go func() {
			done <- outcome{index: i, result: s.Run()}
		}()
	}

	results := make([]rendezvous.Result, len(sessions))
	for range sessions {
		select {
		case o := <-done:
			results[o.index] = o.result
			if o.result.AffinityErr != nil {
				logger.Printf("game %s: %v", cfg.Games[o.index].Name, o.result.AffinityErr)
			}
		case <-ctx.Done():
			return fmt.Errorf("games interrupted: %w", ctx.Err())
		}
	}

	if cfg.JSON {
		games := make([]report.Game, len(results))
		for i, r := range results {
			games[i] = report.NewGame(cfg.Games[i].Name, r)
		}
		return report.WriteJSON(out, games)
	}
	if err := report.WriteComplements(out); err != nil {
		return err
	}
	for _, r := range results {
		if err := report.WriteText(out, r); err != nil {
			return err
		}
	}
	return nil
}
