package main

import (
	"context"

	"government-trades/cmd/govtrades/commands"
	"government-trades/lib/telemetry"
	"government-trades/lib/util/serviceutil"
)

func main() {
	telemetry.InitSlog(false)

	ctx := serviceutil.SignalContext()
	tel, err := telemetry.SetupFromEnv(ctx, "govtrades")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
