// Package config loads cruiseroute settings from defaults, an optional YAML
// file, CRUISEROUTE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/oceancruise/route"
	"github.com/katalvlaran/oceancruise/tsp"
)

// EnvPrefix is prepended to environment keys: CRUISEROUTE_ROUTE_SEED →
// route.seed.
const EnvPrefix = "CRUISEROUTE"

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Route  RouteConfig  `mapstructure:"route"`
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Sheet  SheetConfig  `mapstructure:"sheet"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RouteConfig carries engine and solver settings as plain strings and
// numbers; see SolverOptions and OrientationMode.
type RouteConfig struct {
	Orientation       string        `mapstructure:"orientation"`
	Algorithm         string        `mapstructure:"algorithm"`
	ExactLimit        int           `mapstructure:"exact_limit"`
	Restarts          int           `mapstructure:"restarts"`
	Workers           int           `mapstructure:"workers"`
	Seed              int64         `mapstructure:"seed"`
	MaxIters          int           `mapstructure:"max_iters"`
	TimeLimit         time.Duration `mapstructure:"time_limit"`
	EnableLocalSearch bool          `mapstructure:"local_search"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxStations     int           `mapstructure:"max_stations"`
}

// StoreConfig points at the sqlite database. An empty Path disables
// persistence.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type SheetConfig struct {
	Name string `mapstructure:"name"`
}

// flagKeys maps command-line flag names to configuration keys. Flags that
// are not registered on the given FlagSet are skipped.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"orientation":  "route.orientation",
	"algorithm":    "route.algorithm",
	"seed":         "route.seed",
	"restarts":     "route.restarts",
	"workers":      "route.workers",
	"time-limit":   "route.time_limit",
	"addr":         "server.addr",
	"max-stations": "server.max_stations",
	"db":           "store.path",
	"sheet":        "sheet.name",
}

func setDefaults(v *viper.Viper) {
	def := tsp.DefaultOptions()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("route.orientation", route.Auto.String())
	v.SetDefault("route.algorithm", def.Algo.String())
	v.SetDefault("route.exact_limit", def.ExactLimit)
	v.SetDefault("route.restarts", def.Restarts)
	v.SetDefault("route.workers", def.Workers)
	v.SetDefault("route.seed", def.Seed)
	v.SetDefault("route.max_iters", def.MaxIters)
	v.SetDefault("route.time_limit", def.TimeLimit)
	v.SetDefault("route.local_search", def.EnableLocalSearch)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_stations", 2000)
	v.SetDefault("store.path", "")
	v.SetDefault("sheet.name", "")
}

// RegisterFlags adds the shared flags (--config, logging, route settings,
// --db) to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "info", "log level: debug|info|warn|error")
	fs.String("log-format", "json", "log format: json|text")
	fs.String("orientation", route.Auto.String(), "path orientation: auto|south|west")
	fs.String("algorithm", tsp.Auto.String(), "solver: auto|multistart|twoopt|christofides|heldkarp")
	fs.Int64("seed", 0, "solver random seed")
	fs.Int("restarts", tsp.DefaultOptions().Restarts, "multi-start restarts")
	fs.Int("workers", 0, "parallel solver workers (0 = GOMAXPROCS)")
	fs.Duration("time-limit", 0, "local search time limit (0 = none)")
	fs.String("db", "", "sqlite database file (empty disables persistence)")
}

// Load builds the configuration. flags may be nil; when it carries a
// --config flag that file is read, otherwise cruiseroute.yaml is looked up
// in . and ./configs and is optional.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	var file string
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil {
			file = f.Value.String()
		}
	}

	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("cruiseroute")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug|info|warn|error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json|text, got %q", c.Log.Format))
	}

	if _, err := c.Route.OrientationMode(); err != nil {
		errs = append(errs, fmt.Sprintf("route.orientation: %v", err))
	}
	if _, err := tsp.ParseAlgorithm(c.Route.Algorithm); err != nil {
		errs = append(errs, fmt.Sprintf("route.algorithm: %v", err))
	}
	if c.Route.ExactLimit < 0 || c.Route.ExactLimit > tsp.MaxExactVertices {
		errs = append(errs, fmt.Sprintf("route.exact_limit must be 0-%d, got %d", tsp.MaxExactVertices, c.Route.ExactLimit))
	}
	if c.Route.Restarts < 0 {
		errs = append(errs, "route.restarts must not be negative")
	}
	if c.Route.Workers < 0 {
		errs = append(errs, "route.workers must not be negative")
	}
	if c.Route.MaxIters < 0 {
		errs = append(errs, "route.max_iters must not be negative")
	}
	if c.Route.TimeLimit < 0 {
		errs = append(errs, "route.time_limit must not be negative")
	}

	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "server.shutdown_timeout must be positive")
	}
	if c.Server.MaxStations <= 0 {
		errs = append(errs, "server.max_stations must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// OrientationMode parses the configured orientation string.
func (r RouteConfig) OrientationMode() (route.Orientation, error) {
	return route.ParseOrientation(r.Orientation)
}

// SolverOptions translates the route settings into tsp.Options.
func (r RouteConfig) SolverOptions() (tsp.Options, error) {
	algo, err := tsp.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return tsp.Options{}, err
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.ExactLimit = r.ExactLimit
	opts.Restarts = r.Restarts
	opts.Workers = r.Workers
	opts.Seed = r.Seed
	opts.MaxIters = r.MaxIters
	opts.TimeLimit = r.TimeLimit
	opts.EnableLocalSearch = r.EnableLocalSearch

	return opts, nil
}
