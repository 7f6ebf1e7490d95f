package jobqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups all tunables. Values are taken from environment variables with
// the prefix "INSTABOARD_QUEUE_". Example: INSTABOARD_QUEUE_QUEUE_SIZE=8.
type Config struct {
	QueueSize      int           `envconfig:"QUEUE_SIZE"      default:"4"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	// ErrorHandler is called synchronously after a Job returns a non-nil error,
	// panics, or is skipped because its context was already done.
	ErrorHandler func(error) `envconfig:"-"`
}

// LoadConfig populates Config from environment variables (prefix INSTABOARD_QUEUE_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("INSTABOARD_QUEUE", &c)
}
