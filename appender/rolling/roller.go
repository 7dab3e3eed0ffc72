package rolling

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/errors"
)

var validate = validator.New()

// DeleteRoller discards the rolled file.
type DeleteRoller struct{}

// NewDeleteRoller creates a DeleteRoller.
func NewDeleteRoller() *DeleteRoller {
	return &DeleteRoller{}
}

// Roll implements the Roller interface
func (*DeleteRoller) Roll(path string) error {
	return os.Remove(path)
}

// DeleteRollerConfig is the configuration shape for the "delete" kind.
// The roller takes no options.
type DeleteRollerConfig struct{}

// FixedWindowRoller keeps a fixed window of archived files. The rolled file
// becomes archive index base, displacing older archives upward; the archive
// at base+count-1 is deleted.
type FixedWindowRoller struct {
	pattern string
	base    int
	count   int
}

// NewFixedWindowRoller creates a roller archiving into files named by
// pattern, which must contain the placeholder "{}" for the archive index.
func NewFixedWindowRoller(pattern string, base, count int) (*FixedWindowRoller, error) {
	if !strings.Contains(pattern, "{}") {
		return nil, fmt.Errorf("pattern %q is missing the {} index placeholder", pattern)
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}
	return &FixedWindowRoller{pattern: pattern, base: base, count: count}, nil
}

func (r *FixedWindowRoller) archivePath(index int) string {
	return strings.Replace(r.pattern, "{}", fmt.Sprint(index), 1)
}

// Roll implements the Roller interface
func (r *FixedWindowRoller) Roll(path string) error {
	// Drop the archive that falls out of the window, then shift the rest up.
	oldest := r.archivePath(r.base + r.count - 1)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "FixedWindowRoller", "Roll", "oldest archive removal")
	}
	for i := r.base + r.count - 2; i >= r.base; i-- {
		from := r.archivePath(i)
		if _, err := os.Stat(from); os.IsNotExist(err) {
			continue
		}
		if err := os.Rename(from, r.archivePath(i+1)); err != nil {
			return errors.Wrap(err, "FixedWindowRoller", "Roll", "archive shift")
		}
	}
	if err := os.Rename(path, r.archivePath(r.base)); err != nil {
		return errors.Wrap(err, "FixedWindowRoller", "Roll", "active file archive")
	}
	return nil
}

// FixedWindowRollerConfig is the configuration shape for the
// "fixed_window" kind.
type FixedWindowRollerConfig struct {
	// Pattern names archived files; "{}" is replaced by the archive index.
	// Required.
	Pattern string `json:"pattern" validate:"required"`
	// Base is the index of the newest archive. Defaults to 0.
	Base int `json:"base" validate:"gte=0"`
	// Count is the number of archives kept. Required.
	Count int `json:"count" validate:"required,gte=1"`
}

func registerRollers(r *component.Registry) {
	component.Register(r, "delete", func(_ DeleteRollerConfig, _ *component.Registry) (Roller, error) {
		return NewDeleteRoller(), nil
	})
	component.Register(r, "fixed_window", func(cfg FixedWindowRollerConfig, _ *component.Registry) (Roller, error) {
		if err := validate.Struct(cfg); err != nil {
			return nil, errors.WrapDeserialization(err, "FixedWindowRoller", "Register", "config validation")
		}
		return NewFixedWindowRoller(cfg.Pattern, cfg.Base, cfg.Count)
	})
}
