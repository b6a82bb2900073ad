package scratch

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/storozhukBM/bump"
)

// DefaultPoolSize is the number of idle arenas kept by DefaultConfig.
const DefaultPoolSize = 64

// Config describes a Pool and the arenas it creates:
//
//	pool_size = 16
//
//	[arena]
//	capacity = 65536
//	direction = "down"
type Config struct {
	PoolSize int         `toml:"pool_size"`
	Arena    bump.Config `toml:"arena"`
}

func DefaultConfig() Config {
	return Config{
		PoolSize: DefaultPoolSize,
		Arena:    bump.DefaultConfig(),
	}
}

// DecodeConfig decodes TOML data on top of DefaultConfig.
// Unknown keys are rejected.
func DecodeConfig(data string) (Config, error) {
	result := DefaultConfig()
	md, decodeErr := toml.Decode(data, &result)
	if decodeErr != nil {
		return Config{}, errors.Wrap(decodeErr, "can't decode pool config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Wrapf(bump.InvalidArgumentError, "unknown config keys %v", undecoded)
	}
	return result, nil
}

func (c Config) Validate() error {
	if c.PoolSize <= 0 {
		return errors.Wrapf(bump.InvalidArgumentError, "pool size %v should be positive", c.PoolSize)
	}
	return c.Arena.Validate()
}

// NewPoolFromConfig creates a Pool whose arenas are built from c.Arena.
func NewPoolFromConfig[A bump.MinAlign](c Config) (*Pool, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	arena := c.Arena
	return NewPool(c.PoolSize, func() (bump.Allocator, error) {
		return bump.NewFromConfig[A](arena)
	})
}
