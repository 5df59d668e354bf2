package main

import (
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/metrics"
	"go-polarity-shooter/internal/storage"
	"io"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/spf13/cobra"
)

// cliFlags - общие флаги всех команд.
type cliFlags struct {
	seed      int64
	config    string
	enemies   string
	store     string
	dataDir   string
	redisAddr string
	debugAddr string
	logFile   string
	verbose   bool
	mute      bool
	strict    bool
	record    string
}

var flags cliFlags

func registerFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.Int64Var(&flags.seed, "seed", 0, "RNG seed (overrides the config file)")
	pf.StringVar(&flags.config, "config", "", "tuning YAML file (default $POLARITY_CONFIG)")
	pf.StringVar(&flags.enemies, "enemies", "", "JSON file overriding enemy definitions")
	pf.StringVar(&flags.store, "store", "memory", "high-score store: memory, badger or redis")
	pf.StringVar(&flags.dataDir, "data-dir", "data/scores", "badger data directory")
	pf.StringVar(&flags.redisAddr, "redis-addr", "localhost:6379", "redis address")
	pf.StringVar(&flags.debugAddr, "debug-addr", "", "serve pprof and /metrics on this address, e.g. localhost:6060")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&flags.verbose, "verbose", false, "debug-level logging")
	pf.BoolVar(&flags.mute, "mute", false, "disable audio")
	pf.BoolVar(&flags.strict, "strict", false, "panic on invalid configuration instead of falling back")
	pf.StringVar(&flags.record, "record", "", "save a replay of the run to this file")
}

// runEnv - собранная игра и её окружение.
type runEnv struct {
	game      *app.Game
	store     storage.Store
	collector *metrics.Collector
	logClose  func()
}

// setup читает конфигурацию, настраивает логи и открывает хранилище.
// logOut - куда писать логи, если --log-file не задан.
func setup(logOut io.Writer) (*runEnv, error) {
	config.StrictMode = flags.strict
	closeLog, err := setupLogging(logOut)
	if err != nil {
		return nil, err
	}
	rt := &runEnv{logClose: closeLog}

	tuning, err := loadTuning()
	if err != nil {
		rt.Close()
		return nil, err
	}
	if flags.enemies != "" {
		if err := defs.LoadEnemyDefinitions(flags.enemies); err != nil {
			rt.Close()
			return nil, err
		}
	}

	store, err := storage.Open(storage.Options{Kind: flags.store, DataDir: flags.dataDir, RedisAddr: flags.redisAddr})
	if err != nil {
		// рекорды не критичны: играем с памятью
		slog.Warn("high-score store unavailable, using memory", "store", flags.store, "error", err)
		store = storage.NewMemoryStore()
	}
	rt.store = store

	rt.game = app.NewGame(app.Options{Tuning: tuning, Store: store})
	app.NewLoggingListener(slog.Default()).Attach(rt.game.EventDispatcher)

	rt.collector = metrics.NewCollector()
	rt.collector.Attach(rt.game.EventDispatcher)
	startDebugServer(flags.debugAddr, rt.collector)
	return rt, nil
}

func loadTuning() (config.Tuning, error) {
	tuning, err := config.Load(flags.config)
	if err != nil {
		return config.Tuning{}, err
	}
	if rootCmd.PersistentFlags().Changed("seed") {
		tuning.Seed = flags.seed
	}
	if err := tuning.Validate(); err != nil {
		return config.Tuning{}, err
	}
	return tuning, nil
}

func setupLogging(out io.Writer) (func(), error) {
	closeFn := func() {}
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	log.SetOutput(out)
	return closeFn, nil
}

func startDebugServer(addr string, collector *metrics.Collector) {
	if addr == "" {
		return
	}
	http.Handle("/metrics", collector.Handler())
	go func() {
		log.Println(http.ListenAndServe(addr, nil))
	}()
	log.Printf("debug server on http://%s (pprof, /metrics)", addr)
}

func (rt *runEnv) Close() {
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
	if rt.logClose != nil {
		rt.logClose()
	}
}
