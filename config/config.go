// Package config loads the settings shared by the maze tools. Settings are
// layered: built-in defaults, then an optional YAML file, then environment
// variables (optionally loaded from a .env file). Command-line flags are
// applied on top by each tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kian-mehta/ExtendedEssay/maze"
	"gopkg.in/yaml.v3"
)

// The prefix shared by every environment variable read by Load.
const EnvPrefix = "MAZE_"

var (
	// Returned when a setting has a value outside of its allowed range.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Settings for the HTTP API.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// One of gin's modes: debug, release or test.
	GinMode string `yaml:"gin_mode"`
	// The largest width or height a request may ask for.
	MaxDimension int `yaml:"max_dimension"`
	// The largest maze, in cells, for which a step trace will be returned.
	MaxTraceCells int `yaml:"max_trace_cells"`
	// The most erosion passes a single request may ask for.
	MaxErode int `yaml:"max_erode"`
}

// Returns the address to listen on, in host:port form.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Settings for animating generation in a terminal.
type AnimationConfig struct {
	Enabled    bool          `yaml:"enabled"`
	FrameDelay time.Duration `yaml:"frame_delay"`
	Color      bool          `yaml:"color"`
}

// Settings for the solver statistics run.
type StatsConfig struct {
	// Cell counts of the mazes to generate.
	Sizes []int `yaml:"sizes"`
	// Braid fractions to apply; 0 means a perfect maze.
	BraidFractions []float64 `yaml:"braid_fractions"`
	// The number of mazes generated per size and fraction.
	Trials int `yaml:"trials"`
}

type Config struct {
	// Width and height are numbers of cells
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Algorithm    string  `yaml:"algorithm"`
	Seed         int64   `yaml:"seed"`
	Braid        float64 `yaml:"braid"`
	ErodeAmount  int     `yaml:"erode_amount"`
	ShowSolution bool    `yaml:"show_solution"`
	// A logrus level name, such as "info" or "debug".
	LogLevel  string          `yaml:"log_level"`
	Server    ServerConfig    `yaml:"server"`
	Animation AnimationConfig `yaml:"animation"`
	Stats     StatsConfig     `yaml:"stats"`
}

func Default() Config {
	return Config{
		Width:     20,
		Height:    20,
		Algorithm: string(maze.AlgorithmPrim),
		Seed:      -1,
		LogLevel:  "info",
		Server: ServerConfig{
			Host:          "0.0.0.0",
			Port:          8080,
			GinMode:       "release",
			MaxDimension:  200,
			MaxTraceCells: 2500,
			MaxErode:      20,
		},
		Animation: AnimationConfig{
			FrameDelay: 20 * time.Millisecond,
			Color:      true,
		},
		Stats: StatsConfig{
			Sizes:          []int{100, 400, 1600, 6400},
			BraidFractions: []float64{0, 0.05, 0.1, 0.2},
			Trials:         10,
		},
	}
}

// Loads the configuration. path names an optional YAML file; if it's empty,
// only defaults and the environment are used. Variables in a .env file in
// the working directory are loaded into the environment first, if the file
// exists, without replacing variables that are already set.
func Load(path string) (Config, error) {
	return LoadWithEnvFile(path, ".env")
}

// Same as Load, but reads the given dotenv file instead of .env. A missing
// dotenv file isn't an error.
func LoadWithEnvFile(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, e := os.ReadFile(path)
		if e != nil {
			return Default(), fmt.Errorf("Error reading config file %s: %w",
				path, e)
		}
		e = yaml.Unmarshal(data, &cfg)
		if e != nil {
			return Default(), fmt.Errorf("Error parsing config file %s: %w",
				path, e)
		}
	}
	if envFile != "" {
		e := godotenv.Load(envFile)
		if (e != nil) && !errors.Is(e, os.ErrNotExist) {
			return Default(), fmt.Errorf("Error loading %s: %w", envFile, e)
		}
	}
	e := cfg.applyEnv()
	if e != nil {
		return Default(), e
	}
	e = cfg.Validate()
	if e != nil {
		return Default(), e
	}
	return cfg, nil
}

// Returns the value of the environment variable with the given suffix, if
// it's set to something other than an empty string.
func lookupEnv(suffix string) (string, bool) {
	value, exists := os.LookupEnv(EnvPrefix + suffix)
	value = strings.TrimSpace(value)
	return value, exists && (value != "")
}

func envInt(suffix string, dst *int) error {
	value, ok := lookupEnv(suffix)
	if !ok {
		return nil
	}
	parsed, e := strconv.Atoi(value)
	if e != nil {
		return fmt.Errorf("%w: %s%s must be an integer: %s", ErrInvalidValue,
			EnvPrefix, suffix, e)
	}
	*dst = parsed
	return nil
}

func envInt64(suffix string, dst *int64) error {
	value, ok := lookupEnv(suffix)
	if !ok {
		return nil
	}
	parsed, e := strconv.ParseInt(value, 10, 64)
	if e != nil {
		return fmt.Errorf("%w: %s%s must be an integer: %s", ErrInvalidValue,
			EnvPrefix, suffix, e)
	}
	*dst = parsed
	return nil
}

func envFloat(suffix string, dst *float64) error {
	value, ok := lookupEnv(suffix)
	if !ok {
		return nil
	}
	parsed, e := strconv.ParseFloat(value, 64)
	if e != nil {
		return fmt.Errorf("%w: %s%s must be a number: %s", ErrInvalidValue,
			EnvPrefix, suffix, e)
	}
	*dst = parsed
	return nil
}

func envBool(suffix string, dst *bool) error {
	value, ok := lookupEnv(suffix)
	if !ok {
		return nil
	}
	parsed, e := strconv.ParseBool(value)
	if e != nil {
		return fmt.Errorf("%w: %s%s must be a boolean: %s", ErrInvalidValue,
			EnvPrefix, suffix, e)
	}
	*dst = parsed
	return nil
}

func envString(suffix string, dst *string) error {
	if value, ok := lookupEnv(suffix); ok {
		*dst = value
	}
	return nil
}

func envDuration(suffix string, dst *time.Duration) error {
	value, ok := lookupEnv(suffix)
	if !ok {
		return nil
	}
	parsed, e := time.ParseDuration(value)
	if e != nil {
		return fmt.Errorf("%w: %s%s must be a duration: %s", ErrInvalidValue,
			EnvPrefix, suffix, e)
	}
	*dst = parsed
	return nil
}

// Overrides settings with any MAZE_* environment variables that are set.
func (c *Config) applyEnv() error {
	setters := []error{
		envInt("WIDTH", &c.Width),
		envInt("HEIGHT", &c.Height),
		envString("ALGORITHM", &c.Algorithm),
		envInt64("SEED", &c.Seed),
		envFloat("BRAID", &c.Braid),
		envInt("ERODE_AMOUNT", &c.ErodeAmount),
		envBool("SHOW_SOLUTION", &c.ShowSolution),
		envString("LOG_LEVEL", &c.LogLevel),
		envString("HOST", &c.Server.Host),
		envInt("PORT", &c.Server.Port),
		envString("GIN_MODE", &c.Server.GinMode),
		envInt("MAX_DIMENSION", &c.Server.MaxDimension),
		envInt("MAX_TRACE_CELLS", &c.Server.MaxTraceCells),
		envInt("MAX_ERODE", &c.Server.MaxErode),
		envBool("ANIMATE", &c.Animation.Enabled),
		envDuration("FRAME_DELAY", &c.Animation.FrameDelay),
		envBool("COLOR", &c.Animation.Color),
	}
	return errors.Join(setters...)
}

// Returns an error wrapping ErrInvalidValue if any setting is unusable.
func (c *Config) Validate() error {
	if (c.Width < 1) || (c.Height < 1) {
		return fmt.Errorf("%w: width and height must be at least 1, got "+
			"%dx%d", ErrInvalidValue, c.Width, c.Height)
	}
	if _, e := maze.ParseAlgorithm(c.Algorithm); e != nil {
		return fmt.Errorf("%w: %s", ErrInvalidValue, e)
	}
	if c.Braid < 0 {
		return fmt.Errorf("%w: braid fraction %f is negative",
			ErrInvalidValue, c.Braid)
	}
	if c.ErodeAmount < 0 {
		return fmt.Errorf("%w: erode amount %d is negative", ErrInvalidValue,
			c.ErodeAmount)
	}
	if (c.Server.Port < 0) || (c.Server.Port > 65535) {
		return fmt.Errorf("%w: port %d", ErrInvalidValue, c.Server.Port)
	}
	if c.Server.MaxDimension < 1 {
		return fmt.Errorf("%w: max dimension must be at least 1",
			ErrInvalidValue)
	}
	if c.Server.MaxErode < 0 {
		return fmt.Errorf("%w: max erode %d is negative", ErrInvalidValue,
			c.Server.MaxErode)
	}
	switch c.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: gin mode %q isn't one of %s, %s or %s",
			ErrInvalidValue, c.Server.GinMode, gin.DebugMode, gin.ReleaseMode,
			gin.TestMode)
	}
	if c.Animation.FrameDelay < 0 {
		return fmt.Errorf("%w: negative frame delay", ErrInvalidValue)
	}
	if _, e := ParseLevel(c.LogLevel); e != nil {
		return e
	}
	return nil
}

// Returns the configured generation algorithm.
func (c *Config) ParsedAlgorithm() maze.Algorithm {
	a, e := maze.ParseAlgorithm(c.Algorithm)
	if e != nil {
		return maze.AlgorithmPrim
	}
	return a
}
