package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DatabasePath  string
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
	RemoteTimeout time.Duration
	RandomSeed    int64
}

// RemoteEnabled reports whether the remote assistant path is
// configured. Without a key the assistant runs local-only.
func (c Config) RemoteEnabled() bool {
	return c.OpenAIKey != ""
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeoutSecs int

	fs := flag.NewFlagSet("process-mind", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.OpenAIModel, "model", "", "Remote assistant model")
	fs.IntVar(&timeoutSecs, "remote-timeout", 0, "Remote assistant timeout in seconds")
	fs.Int64Var(&cfg.RandomSeed, "seed", 0, "Generator seed (0 = time-derived)")

	// Secrets stay out of argv
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "process_mind.db"
	}

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_API_BASE")

	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = os.Getenv("OPENAI_MODEL")
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-3.5-turbo"
	}

	if timeoutSecs == 0 {
		if secsStr := os.Getenv("REMOTE_TIMEOUT_SECONDS"); secsStr != "" {
			secs, err := strconv.Atoi(secsStr)
			if err != nil {
				return Config{}, errors.New("invalid REMOTE_TIMEOUT_SECONDS env variable")
			}
			timeoutSecs = secs
		} else {
			timeoutSecs = 30
		}
	}
	if timeoutSecs <= 0 {
		return Config{}, errors.New("remote timeout must be positive")
	}
	cfg.RemoteTimeout = time.Duration(timeoutSecs) * time.Second

	if cfg.RandomSeed == 0 {
		if seedStr := os.Getenv("RANDOM_SEED"); seedStr != "" {
			seed, err := strconv.ParseInt(seedStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid RANDOM_SEED env variable")
			}
			cfg.RandomSeed = seed
		}
	}

	return cfg, nil
}
