package main

import (
	"context"
	"net/http"
	"net/http/pprof"
	"os"
	"reflect"
	runtimepprof "runtime/pprof"
	"syscall"
	"time"

	"github.com/SrsBusiness/quadrics/internal/quadrics"
	"github.com/SrsBusiness/quadrics/internal/voxeldb"
	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

// Keeps the config field names readable by the cli package under obfuscation.
var _ = reflect.TypeOf(config{})

type config struct {
	Config    string `cli:""        env:"QUADRICS_CONFIG"     help:"Path to the JSON run config."`
	LogLevel  string `cli:""        env:"QUADRICS_LOG_LEVEL"  help:"Log level (debug|info|warning|error)."`
	LogIndent bool   `cli:""        env:"QUADRICS_LOG_INDENT" help:"Indent logs."`
	Debug     bool   `cli:""        env:"QUADRICS_DEBUG"      help:"Enable debug traces and traversal statistics."`
	PNG       bool   `cli:""        env:"QUADRICS_PNG"        help:"Write one PNG per z slice instead of an animated GIF."`
	ASCII     bool   `cli:""        env:"QUADRICS_ASCII"      help:"Print the configured z plane to stdout."`
	AdminAddr string `cli:""        env:"QUADRICS_ADMIN_ADDR" help:"Admin listening address for metrics and pprof. Empty disables it."`
	DB        string `cli:""        env:"QUADRICS_DB"         help:"Path to the sqlite snapshot database. Empty disables it."`
	Profile   string `cli:",hidden" env:"QUADRICS_PROFILE"    help:"Write a CPU profile to this file."`
	Help      bool   `cli:""        env:"-"                   help:"Show help."`
}

func main() {
	os.Exit(run())
}

func run() int {
	conf := config{
		Config:   "scenes/config.json",
		LogLevel: logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Voxelizes a quadric surface by parallel flood fill.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	quadrics.Debug = conf.Debug
	quadrics.PNG = conf.PNG
	quadrics.ASCII = conf.ASCII

	if conf.Profile != "" {
		f, err := os.Create(conf.Profile)
		if err != nil {
			logs.Fatal(errors.New("creating cpu profile failed").
				WithTag("path", conf.Profile).
				Wrap(err))
		}
		if err := runtimepprof.StartCPUProfile(f); err != nil {
			logs.Fatal(errors.New("starting cpu profile failed").Wrap(err))
		}
		defer func() {
			runtimepprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if conf.AdminAddr != "" {
		admin := newAdminServer(conf.AdminAddr)
		go func() {
			if err := admin.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logs.Warn(errors.New("admin server failed").
					WithTag("addr", conf.AdminAddr).
					Wrap(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = admin.Shutdown(shutdownCtx)
		}()
	}

	var store quadrics.SnapshotStore
	if conf.DB != "" {
		db, err := voxeldb.NewVoxelDB(conf.DB)
		if err != nil {
			logs.Fatal(err)
		}
		defer db.Close()
		store = db
	}

	logs.WithTag("config", conf.Config).
		WithTag("log_level", conf.LogLevel).
		WithTag("admin_addr", conf.AdminAddr).
		WithTag("db", conf.DB).
		Info("starting quadric voxelizer")

	if err := quadrics.Run(ctx, conf.Config, store); err != nil {
		logs.WithTag("config", conf.Config).Error(err)
		return 1
	}
	return 0
}

func newAdminServer(addr string) *http.Server {
	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())
	admin.HandleFunc("/debug/pprof/", pprof.Index)
	admin.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	admin.HandleFunc("/debug/pprof/profile", pprof.Profile)
	admin.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	admin.HandleFunc("/debug/pprof/trace", pprof.Trace)
	admin.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	admin.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	return &http.Server{Addr: addr, Handler: &admin}
}
