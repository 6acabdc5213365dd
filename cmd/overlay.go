package main

import (
	"fmt"
	"os"

	"statoverlay/internal/apperrors"
	"statoverlay/internal/conf"
	"statoverlay/internal/logging"
	"statoverlay/internal/overlay"
	"statoverlay/internal/screen"
	"statoverlay/internal/shortcut"
	"statoverlay/internal/style"
	"statoverlay/internal/system"
)

func main() {
	log := logging.NewConsoleLogger("statoverlay")
	if err := run(log); err != nil {
		log.Error("overlay stopped", err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func run(log *logging.ZerologAdapter) error {
	store, err := conf.Load(conf.PrimaryPath, conf.FallbackPath)
	if err != nil {
		return err
	}
	cfg := store.Config()
	log.Info("config loaded",
		logging.String("source", store.Source()),
		logging.Int("x", cfg.Window.X),
		logging.Int("y", cfg.Window.Y))

	st, err := style.Parse(cfg.Style)
	if err != nil {
		return apperrors.NewConfigError(store.Source(), err, "invalid qt.qlabel_stylesheet")
	}
	dragKey, err := shortcut.Parse(cfg.Shortcuts.ToggleDrag)
	if err != nil {
		return apperrors.NewConfigError(store.Source(), err, "invalid shortcut.toggle_drag")
	}
	hideKey, err := shortcut.Parse(cfg.Shortcuts.ToggleHide)
	if err != nil {
		return apperrors.NewConfigError(store.Source(), err, "invalid shortcut.toggle_hide")
	}

	if host, err := system.GetHostSummary(); err == nil {
		log.Info("host",
			logging.String("user", host.UserHost()),
			logging.String("os", host.OS),
			logging.String("kernel", host.Kernel),
			logging.String("cpu", host.CPU),
			logging.String("memory", system.ProperUnit(host.MemTotal)))
	} else {
		log.Warn("host info unavailable", logging.Err(err))
	}

	provider, err := system.NewProvider()
	if err != nil {
		return apperrors.NewPlatformError("open metrics provider", err)
	}
	defer provider.Close()

	win, err := screen.New(cfg.Window, st)
	if err != nil {
		return apperrors.NewPlatformError("create window", err)
	}

	ctrl := overlay.New(overlay.Options{
		Interval:  cfg.UpdateInterval,
		IdleAfter: cfg.IdleAfter,
	}, provider, win, store, log)
	win.Attach(ctrl)

	bindings := []struct {
		binding shortcut.Binding
		action  overlay.Action
	}{
		{dragKey, overlay.ActionToggleDrag},
		{hideKey, overlay.ActionToggleHide},
	}
	for _, b := range bindings {
		action := b.action
		if err := shortcut.Register(b.binding, func() { ctrl.Post(overlay.Hotkey{Action: action}) }); err != nil {
			return apperrors.NewPlatformError("register hotkey", err)
		}
		log.Info("hotkey registered",
			logging.String("action", action.String()),
			logging.String("keys", b.binding.String()))
	}

	ctrl.Start()
	defer ctrl.Stop()

	if err := win.Run(); err != nil {
		return fmt.Errorf("window loop: %w", err)
	}
	return nil
}
