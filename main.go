package main

import (
	"context"
	"log/slog"
	"time"

	"joycursor-go/errcode"
	"joycursor-go/services/app"
	"joycursor-go/services/hal"
	"joycursor-go/x/logx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	console, err := hal.OpenConsole()
	if err != nil {
		println("console:", err.Error())
		console = nil
	}
	logger := logx.New(console, slog.LevelInfo)
	logger.Info("boot")

	board, err := hal.Open()
	if err != nil {
		haltForever(logger, "peripheral init", err)
	}

	opt := app.DefaultOptions()
	opt.Logger = logger
	if err := app.Run(context.Background(), board, opt); err != nil {
		haltForever(logger, "device init", err)
	}
}

// haltForever reports a fatal init error once per second and never returns.
func haltForever(logger *slog.Logger, msg string, err error) {
	for {
		logger.Error(msg,
			slog.String("code", string(errcode.Of(err))),
			slog.String("err", err.Error()),
		)
		time.Sleep(time.Second)
	}
}
