package menu

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/aretw0/screenstack/pkg/navigation"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Definition is a parsed menu file.
type Definition struct {
	Title          string               `yaml:"title" mapstructure:"title"`
	AnimationDelay time.Duration        `yaml:"animation_delay" mapstructure:"animation_delay"`
	Animated       bool                 `yaml:"animated" mapstructure:"animated"`
	Retries        int                  `yaml:"retries" mapstructure:"retries"`
	Start          string               `yaml:"start" mapstructure:"start"`
	Screens        map[string]ScreenDef `yaml:"screens" mapstructure:"screens"`
}

// ScreenDef declares one choice prompt.
type ScreenDef struct {
	Prompt  string      `yaml:"prompt" mapstructure:"prompt"`
	Options []OptionDef `yaml:"options" mapstructure:"options"`
}

// OptionDef declares one selectable entry and its action.
type OptionDef struct {
	Label string `yaml:"label" mapstructure:"label"`
	Push  string `yaml:"push,omitempty" mapstructure:"push"`
	Pop   bool   `yaml:"pop,omitempty" mapstructure:"pop"`
	Say   string `yaml:"say,omitempty" mapstructure:"say"`
	Quit  bool   `yaml:"quit,omitempty" mapstructure:"quit"`
}

// Load reads and parses a menu file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML (or JSON) menu document and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	def := &Definition{
		AnimationDelay: navigation.DefaultAnimationDelay,
		Animated:       true,
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      def,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// Validate reports every structural problem of the definition at once.
func (d *Definition) Validate() error {
	var errs []error

	if len(d.Screens) == 0 {
		errs = append(errs, ErrEmptyMenu)
	}
	if d.Start == "" {
		errs = append(errs, ErrNoStart)
	} else if _, ok := d.Screens[d.Start]; !ok && len(d.Screens) > 0 {
		errs = append(errs, fmt.Errorf("start %q: %w", d.Start, ErrUnknownScreen))
	}
	if d.Retries < 0 {
		errs = append(errs, ErrNegativeRetries)
	}

	for _, id := range d.ScreenIDs() {
		sc := d.Screens[id]
		if len(sc.Options) == 0 {
			errs = append(errs, fmt.Errorf("screen %q: %w", id, ErrNoOptions))
		}
		for i, opt := range sc.Options {
			if err := d.validateOption(opt); err != nil {
				errs = append(errs, fmt.Errorf("screen %q option %d: %w", id, i+1, err))
			}
		}
	}

	return errors.Join(errs...)
}

func (d *Definition) validateOption(opt OptionDef) error {
	var errs []error
	if opt.Label == "" {
		errs = append(errs, ErrNoLabel)
	}

	actions := 0
	for _, set := range []bool{opt.Push != "", opt.Pop, opt.Say != "", opt.Quit} {
		if set {
			actions++
		}
	}
	switch {
	case actions == 0:
		errs = append(errs, ErrNoAction)
	case actions > 1:
		errs = append(errs, ErrAmbiguousAction)
	}

	if opt.Push != "" {
		if _, ok := d.Screens[opt.Push]; !ok {
			errs = append(errs, fmt.Errorf("push %q: %w", opt.Push, ErrUnknownScreen))
		}
	}
	return errors.Join(errs...)
}

// ScreenIDs returns the declared screen IDs in sorted order.
func (d *Definition) ScreenIDs() []string {
	ids := make([]string, 0, len(d.Screens))
	for id := range d.Screens {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
