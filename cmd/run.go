package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/app"
	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/logging"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/screens/home"
	"github.com/abhisek/fracdiv/internal/screens/welcome"
	"github.com/abhisek/fracdiv/internal/session"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx, closeLog, err := tuiLogContext(cmd.Context())
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	log := logging.FromContext(ctx)

	provider, err := newProvider(ctx, events, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lessons will run without AI help.")
	}

	diag := diagnosis.NewService(provider)
	defer diag.Close()

	var lessonSvc *lessons.Service
	if provider != nil {
		lessonSvc = lessons.NewService(provider, lessons.DefaultConfig(), events)
		defer lessonSvc.Wait()
	}

	gen := problemgen.New(cfg.Practice.GeneratorConfig(), seededRand(cfg.Practice.Seed))
	planner := session.NewPlanner(gen, cfg.Practice.ExactCount, cfg.Practice.PracticeCount)

	// The last session is ended after the program exits so that Ctrl+C
	// still records it.
	var last *session.Session
	newSession := func() *session.Session {
		if last != nil {
			last.End()
		}
		last = session.New(ctx, session.Options{
			Planner:   planner,
			Events:    events,
			Snapshots: st.SnapshotRepo(),
			Diagnosis: diag,
			Lessons:   lessonSvc,
			Seed:      int64(cfg.Practice.Seed),
		})
		return last
	}
	defer func() {
		if last != nil {
			last.End()
		}
	}()

	deps := home.Deps{
		Events:     events,
		Snapshots:  st.SnapshotRepo(),
		NewSession: newSession,
	}
	root := welcome.New(func() screen.Screen { return home.New(deps) })
	return app.Run(ctx, root)
}

// tuiLogContext swaps the stderr logger for one that writes to the log
// file, since the TUI owns the terminal.
func tuiLogContext(ctx context.Context) (context.Context, func(), error) {
	path := cfg.LogFile
	if path == "" {
		p, err := logging.DefaultLogPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(appName, cfg.Env, cfg.LogLevel, f)
	return logging.IntoContext(ctx, logger), func() { f.Close() }, nil
}

// newProvider resolves the configured LLM provider. It returns a nil
// provider and the reason when LLM features are unavailable.
func newProvider(ctx context.Context, rec llm.Recorder, log zerolog.Logger) (llm.Provider, error) {
	llmCfg, err := cfg.LLM.Resolve()
	if err != nil {
		return nil, err
	}
	p, err := llm.NewProvider(ctx, llmCfg, rec, log)
	if err != nil {
		if !errors.Is(err, llm.ErrNoProvider) {
			log.Warn().Err(err).Msg("llm provider unavailable")
		}
		return nil, err
	}
	log.Info().Str("provider", llmCfg.Provider).Str("model", p.ModelID()).Msg("llm provider ready")
	return p, nil
}

// seededRand returns a deterministic source for a non-zero seed and nil,
// meaning random, otherwise.
func seededRand(seed uint64) problemgen.Rand {
	if seed == 0 {
		return nil
	}
	return problemgen.NewSeededRand(seed)
}
