package config

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvTCPAddr       = "EIGHTS_TCP_ADDR"
	EnvWSAddr        = "EIGHTS_WS_ADDR"
	EnvOpponentDelay = "EIGHTS_OPPONENT_DELAY"
	EnvOpponentName  = "EIGHTS_OPPONENT_NAME"
	EnvAuthTimeout   = "EIGHTS_AUTH_TIMEOUT"
)

type Config struct {
	TCPAddr string
	// WSAddr is left empty to disable the websocket listener.
	WSAddr string
	// OpponentDelay is how long the computer "thinks" before its move is applied.
	OpponentDelay time.Duration
	OpponentName  string
	AuthTimeout   time.Duration
}

func Default() Config {
	return Config{
		TCPAddr:       ":9999",
		WSAddr:        ":9998",
		OpponentDelay: 1500 * time.Millisecond,
		OpponentName:  "Computer",
		AuthTimeout:   3 * time.Second,
	}
}

var (
	cfg      Config
	loadOnce sync.Once
	loadErr  error
)

// Load reads a .env file when present, then the environment, then the
// command-line flags in args. Later sources win. It only runs once.
func Load(args []string) (Config, error) {
	loadOnce.Do(func() {
		_ = godotenv.Load()
		cfg, loadErr = parse(Default(), os.Getenv, args)
	})
	return cfg, loadErr
}

// Get returns the loaded configuration, or the defaults before Load.
func Get() Config {
	if loadErr != nil || cfg == (Config{}) {
		return Default()
	}
	return cfg
}

func parse(c Config, getenv func(string) string, args []string) (Config, error) {
	if v := getenv(EnvTCPAddr); v != "" {
		c.TCPAddr = v
	}
	if v, ok := lookup(getenv, EnvWSAddr); ok {
		c.WSAddr = v
	}
	if v := getenv(EnvOpponentName); v != "" {
		c.OpponentName = v
	}
	if err := parseDuration(getenv, EnvOpponentDelay, &c.OpponentDelay); err != nil {
		return c, err
	}
	if err := parseDuration(getenv, EnvAuthTimeout, &c.AuthTimeout); err != nil {
		return c, err
	}

	flags := flag.NewFlagSet("eights", flag.ContinueOnError)
	flags.StringVar(&c.TCPAddr, "tcp", c.TCPAddr, "tcp listen address")
	flags.StringVar(&c.WSAddr, "ws", c.WSAddr, "websocket listen address, empty to disable")
	flags.DurationVar(&c.OpponentDelay, "delay", c.OpponentDelay, "computer thinking delay")
	flags.StringVar(&c.OpponentName, "opponent", c.OpponentName, "computer player name")
	if err := flags.Parse(args); err != nil {
		return c, err
	}
	if c.OpponentDelay < 0 {
		return c, fmt.Errorf("opponent delay must not be negative, got %s", c.OpponentDelay)
	}
	return c, nil
}

// lookup treats a variable set to "-" as explicitly empty.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	switch v {
	case "":
		return "", false
	case "-":
		return "", true
	default:
		return v, true
	}
}

func parseDuration(getenv func(string) string, key string, target *time.Duration) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	*target = d
	return nil
}
