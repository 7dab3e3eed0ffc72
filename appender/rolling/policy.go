package rolling

import (
	"github.com/Lukazoid/log4rs/appender"
	"github.com/Lukazoid/log4rs/component"
	"github.com/Lukazoid/log4rs/encode"
	"github.com/Lukazoid/log4rs/errors"
)

// CompoundPolicy pairs a trigger with a roller: when the trigger fires, the
// roller archives the active file.
type CompoundPolicy struct {
	trigger Trigger
	roller  Roller
}

// NewCompoundPolicy creates a CompoundPolicy from its two halves.
func NewCompoundPolicy(trigger Trigger, roller Roller) *CompoundPolicy {
	return &CompoundPolicy{trigger: trigger, roller: roller}
}

// Process implements the Policy interface
func (p *CompoundPolicy) Process(file *LogFile) (bool, error) {
	fire, err := p.trigger.Trigger(file)
	if err != nil || !fire {
		return false, err
	}
	if err := p.roller.Roll(file.Path); err != nil {
		return false, err
	}
	return true, nil
}

// CompoundPolicyConfig is the configuration shape for the "compound" kind.
// Trigger and roller are themselves kind-tagged component stanzas, resolved
// through the registry the build function receives.
type CompoundPolicyConfig struct {
	Trigger map[string]any `json:"trigger"`
	Roller  map[string]any `json:"roller"`
}

func registerCompoundPolicy(r *component.Registry) {
	component.Register(r, "compound", func(cfg CompoundPolicyConfig, reg *component.Registry) (Policy, error) {
		if cfg.Trigger == nil {
			return nil, errors.WrapDeserialization(
				errors.ErrMissingConfig, "CompoundPolicy", "Register", "trigger is required")
		}
		if cfg.Roller == nil {
			return nil, errors.WrapDeserialization(
				errors.ErrMissingConfig, "CompoundPolicy", "Register", "roller is required")
		}

		trigger, err := component.DeserializeNested[Trigger](reg, cfg.Trigger, "")
		if err != nil {
			return nil, err
		}
		roller, err := component.DeserializeNested[Roller](reg, cfg.Roller, "")
		if err != nil {
			return nil, err
		}
		return NewCompoundPolicy(trigger, roller), nil
	})
}

// RollingFileConfig is the configuration shape for the "rolling_file"
// appender kind.
type RollingFileConfig struct {
	// Path of the active log file. Required.
	Path string `json:"path" validate:"required"`
	// Encoder is the nested encoder stanza. Defaults to the pattern encoder.
	Encoder map[string]any `json:"encoder"`
	// Policy is the rolling policy stanza. Defaults to the compound kind.
	Policy map[string]any `json:"policy"`
}

// Register registers the rolling_file appender kind and the policy, roller,
// and trigger kinds it composes.
func Register(r *component.Registry) {
	registerCompoundPolicy(r)
	registerRollers(r)
	registerSizeTrigger(r)

	component.Register(r, "rolling_file", func(cfg RollingFileConfig, reg *component.Registry) (appender.Appender, error) {
		if err := validate.Struct(cfg); err != nil {
			return nil, errors.WrapDeserialization(err, "RollingFileAppender", "Register", "config validation")
		}
		if cfg.Policy == nil {
			return nil, errors.WrapDeserialization(
				errors.ErrMissingConfig, "RollingFileAppender", "Register", "policy is required")
		}

		encoder, err := component.DeserializeNested[encode.Encoder](reg, encoderStanza(cfg.Encoder), "pattern")
		if err != nil {
			return nil, err
		}
		policy, err := component.DeserializeNested[Policy](reg, cfg.Policy, "compound")
		if err != nil {
			return nil, err
		}
		return NewRollingFileAppender(cfg.Path, encoder, policy)
	})
}

func encoderStanza(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
