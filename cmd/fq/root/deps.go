package root

import (
	"context"
	"log/slog"
	"os"

	"flowquest/internal/app"
	"flowquest/internal/assist"
	"flowquest/internal/config"
	"flowquest/internal/reward"
	"flowquest/internal/task"
	"flowquest/internal/timer"
)

func buildCoordinator(ctx context.Context) (*app.Coordinator, *config.Env, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: env.SlogLevel()}))

	var interp assist.Interpreter
	if env.GeminiAPIKey == "" {
		logger.Info("no gemini api key set; interpretation runs on static fallbacks")
		interp = assist.Static{}
	} else {
		interp, err = assist.NewGemini(ctx, env.GeminiAPIKey, env.GeminiModel, env.RequestTimeout)
		if err != nil {
			return nil, nil, err
		}
	}

	coord := app.New(
		task.NewStore(),
		timer.NewEngine(env.TimerConfig()),
		reward.NewEngine(),
		interp,
		logger,
	)
	return coord, env, nil
}
