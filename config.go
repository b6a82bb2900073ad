package bump

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultCapacity is the arena capacity used by DefaultConfig.
const DefaultCapacity = 1024 * 1024

// Config describes an arena. It can be decoded from TOML:
//
//	capacity = 65536
//	direction = "down"
//	strategy = "checked"
type Config struct {
	Capacity  int    `toml:"capacity"`
	Direction string `toml:"direction"`
	Strategy  string `toml:"strategy"`
}

// DefaultConfig returns an upward fast arena of DefaultCapacity bytes.
func DefaultConfig() Config {
	return Config{
		Capacity:  DefaultCapacity,
		Direction: Up.String(),
		Strategy:  Fast.String(),
	}
}

// DecodeConfig decodes TOML data on top of DefaultConfig.
// Unknown keys are rejected.
func DecodeConfig(data string) (Config, error) {
	result := DefaultConfig()
	md, decodeErr := toml.Decode(data, &result)
	if decodeErr != nil {
		return Config{}, errors.Wrap(decodeErr, "can't decode arena config")
	}
	return result, checkUndecoded(md)
}

// LoadConfig decodes a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	result := DefaultConfig()
	md, decodeErr := toml.DecodeFile(path, &result)
	if decodeErr != nil {
		return Config{}, errors.Wrapf(decodeErr, "can't load arena config from %v", path)
	}
	return result, checkUndecoded(md)
}

func checkUndecoded(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Wrapf(InvalidArgumentError, "unknown config keys %v", undecoded)
	}
	return nil
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if c.Capacity < 0 || c.Capacity > MaxCapacity {
		return errors.Wrapf(InvalidArgumentError, "capacity %v is out of range [0, %v]", c.Capacity, MaxCapacity)
	}
	if _, err := ParseDirection(c.Direction); err != nil {
		return err
	}
	if _, err := ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

// NewFromConfig creates the arena described by c.
func NewFromConfig[A MinAlign](c Config) (Allocator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d, _ := ParseDirection(c.Direction)
	s, _ := ParseStrategy(c.Strategy)
	infof("creating %v %v arena of %v bytes", s, d, c.Capacity)
	return New[A](d, s, c.Capacity)
}
