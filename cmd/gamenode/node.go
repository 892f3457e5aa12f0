package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/haakonsen/gamenode/internal/bus"
	"github.com/haakonsen/gamenode/internal/config"
	"github.com/haakonsen/gamenode/internal/game"
	"github.com/haakonsen/gamenode/internal/hw"
	"github.com/haakonsen/gamenode/internal/hw/sim"
	"github.com/haakonsen/gamenode/internal/loop"
	"github.com/haakonsen/gamenode/internal/storage"
)

// node is a fully wired game node: controller, simulated rig, loop
// driver and optional session persistence.
type node struct {
	ctrl      *game.Controller
	rig       *sim.Rig
	ticker    *loop.Ticker
	store     *storage.Store
	sessionID int64
	logger    *log.Logger
}

// buildNode wires the controller, simulated rig, bus notifiers and
// storage from the node configuration.
func buildNode(cfg config.NodeConfig) (*node, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamenode",
	})

	mode, err := game.ParseMode(cfg.Game.Mode)
	if err != nil {
		return nil, err
	}
	difficulty, err := game.ParseDifficulty(cfg.Game.Difficulty)
	if err != nil {
		return nil, err
	}

	gameCfg := game.Config{
		StartingLives: cfg.Game.StartingLives,
		BeamThreshold: cfg.Game.BeamThreshold,
		Mode:          mode,
		Difficulty:    difficulty,
	}

	// The simulated beam idles well above the threshold so the node
	// starts with no obstruction.
	clearLevel := int(cfg.Game.BeamThreshold) * 3
	if clearLevel > 0xFFFF {
		clearLevel = 0xFFFF
	}
	rig := sim.NewRig(uint16(clearLevel))

	dbPath := cfg.Storage.DBPath
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	var store *storage.Store
	var sessionID int64
	if dbPath != "" {
		store, err = storage.Open(dbPath)
		if err != nil {
			logger.Warn("could not open sessions database", "error", err)
			store = nil
		}
	}
	if store != nil {
		sessionID, err = store.BeginSession(mode.String(), difficulty.String())
		if err != nil {
			logger.Warn("could not begin session", "error", err)
			store.Close()
			store = nil
		}
	}

	n := &node{
		rig:       rig,
		store:     store,
		sessionID: sessionID,
		logger:    logger,
	}

	notifiers := bus.Fanout{bus.NewLogger(logger)}
	if store != nil {
		notifiers = append(notifiers, bus.Func(func(m bus.Message) error {
			if m.ID != bus.MsgIDLivesLeft || m.Len < 1 {
				return nil
			}
			return store.RecordLifeLoss(n.sessionID, int(m.Data[0]), int(n.ctrl.Score()))
		}))
	}

	// The ticker needs the controller's tick and the controller needs
	// the ticker as its loop; close over the node to break the cycle.
	n.ticker = loop.New(func() { n.ctrl.Tick() })

	n.ctrl = game.New(gameCfg, game.Deps{
		Rig:      rig.HW(),
		Scaler:   hw.PercentScaler{},
		Notifier: notifiers,
		Loop:     n.ticker,
		Logger:   logger,
	})

	if err := n.ctrl.Init(); err != nil {
		n.close()
		return nil, fmt.Errorf("node init: %w", err)
	}

	return n, nil
}

// finish stops the loop and persists the session result.
func (n *node) finish() {
	n.ctrl.DisableLoop()

	if n.store != nil {
		err := n.store.FinishSession(n.sessionID, int(n.ctrl.Score()), int(n.ctrl.Lives()))
		if err != nil {
			n.logger.Warn("could not save session result", "error", err)
		}
	}

	n.close()
}

func (n *node) close() {
	if n.store != nil {
		n.store.Close()
		n.store = nil
	}
}
