package descent

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// ConfigEnv names the environment variable holding the directory of conf.toml.
const ConfigEnv = "DESCENT_CONFIG"

var (
	cfgMu     sync.Mutex
	cfgLoaded = false
	config    = Config{}
)

// Config is the model configuration read from conf.toml.
type Config struct {
	Constants  Constants
	Mode       Mode
	ModeSet    bool // model.mode was read from a file
	Atmosphere Atmosphere
	Workers    int
}

// ResolveMode picks the force balance mode: the flag wins over the scenario, which wins over the
// configuration. The second value names where the mode came from, "builtin default" when nothing chose it.
func (c Config) ResolveMode(flagMode string, scenarioMode Mode) (Mode, string, error) {
	switch {
	case flagMode != "":
		m, err := ParseMode(flagMode)
		return m, "flag", err
	case scenarioMode != 0:
		return scenarioMode, "scenario", nil
	case c.ModeSet:
		return c.Mode, "configuration", nil
	}
	return c.Mode, "builtin default", nil
}

// Model returns the model described by this configuration.
func (c Config) Model() Model {
	return Model{Constants: c.Constants, Atmosphere: c.Atmosphere, Mode: c.Mode}
}

// BuiltinConfig returns the configuration used when no file is provided: standard constants,
// sea-level atmosphere and the A+ mode.
func BuiltinConfig() Config {
	return Config{Constants: StandardConstants(), Mode: ModeAPlus, Atmosphere: SeaLevel}
}

// LoadConfig reads conf.toml from the provided directory.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/conf.toml: %w", path, err)
	}
	return configFromViper(v)
}

// DefaultConfig loads the configuration once from the directory in $DESCENT_CONFIG, or returns
// BuiltinConfig when the variable is unset.
func DefaultConfig() (Config, error) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	if cfgLoaded {
		return config, nil
	}
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		config = BuiltinConfig()
		cfgLoaded = true
		return config, nil
	}
	conf, err := LoadConfig(confPath)
	if err != nil {
		return Config{}, err
	}
	config = conf
	cfgLoaded = true
	return config, nil
}

func configFromViper(v *viper.Viper) (Config, error) {
	conf := BuiltinConfig()
	set, err := ParseConstantSet(v.GetString("constants.preset"))
	if err != nil {
		return Config{}, err
	}
	conf.Constants = set.Constants()
	for _, o := range []struct {
		key string
		dst *float64
	}{
		{"constants.knots_to_ms", &conf.Constants.KnotsToMS},
		{"constants.gravity", &conf.Constants.Gravity},
		{"constants.sea_level_density", &conf.Constants.SeaLevelDensity},
		{"constants.scale_height", &conf.Constants.ScaleHeight},
		{"constants.energy_correction", &conf.Constants.EnergyCorrection},
		{"constants.feet_per_nm", &conf.Constants.FeetPerNM},
		{"constants.meters_to_feet", &conf.Constants.MetersToFeet},
	} {
		if v.IsSet(o.key) {
			*o.dst = v.GetFloat64(o.key)
		}
	}
	if err := conf.Constants.Validate(); err != nil {
		return Config{}, err
	}
	if v.IsSet("model.mode") {
		if conf.Mode, err = ParseMode(v.GetString("model.mode")); err != nil {
			return Config{}, err
		}
		conf.ModeSet = true
	}
	if conf.Atmosphere, err = ParseAtmosphere(v.GetString("model.atmosphere")); err != nil {
		return Config{}, err
	}
	conf.Workers = v.GetInt("sweep.workers")
	return conf, nil
}

// Scenario is a batch of cases read from a TOML file.
type Scenario struct {
	Mode   Mode   // zero when the file does not set general.mode
	Output string // optional CSV output path
	Cases  []FlightParameters
	Sweep  *SweepRange // nil without a [sweep] table
}

// SweepRange is an IAS range in the unit of the swept case.
type SweepRange struct {
	From, To float64
	Points   int
}

type caseRecord struct {
	Label      string   `mapstructure:"label"`
	IAS        float64  `mapstructure:"ias"`
	SpeedUnit  string   `mapstructure:"speed_unit"`
	Weight     float64  `mapstructure:"weight"`
	WeightUnit string   `mapstructure:"weight_unit"`
	WingArea   float64  `mapstructure:"wing_area"`
	CD0        float64  `mapstructure:"cd0"`
	K          *float64 `mapstructure:"k"`
	Span       *float64 `mapstructure:"span"`
	Oswald     *float64 `mapstructure:"oswald"`
	IdleThrust float64  `mapstructure:"idle_thrust"`
	Altitude   float64  `mapstructure:"altitude"`
}

func (r caseRecord) params() (FlightParameters, error) {
	p := FlightParameters{Label: r.Label, IAS: r.IAS, Weight: r.Weight, WingArea: r.WingArea, CD0: r.CD0,
		IdleThrust: r.IdleThrust, Altitude: r.Altitude}
	var err error
	if p.SpeedUnit, err = ParseSpeedUnit(r.SpeedUnit); err != nil {
		return p, err
	}
	if p.WeightUnit, err = ParseWeightUnit(r.WeightUnit); err != nil {
		return p, err
	}
	switch {
	case r.K != nil:
		p.K = *r.K
	case r.Span != nil && r.Oswald != nil:
		if p.K, err = InducedDragFactor(*r.Span, r.WingArea, *r.Oswald); err != nil {
			return p, err
		}
	case r.Span != nil:
		return p, invalidInput(FieldOswald, "", "is required with a wing span")
	case r.Oswald != nil:
		return p, invalidInput(FieldSpan, "", "is required with an Oswald factor")
	}
	return p, nil
}

// LoadScenario reads a scenario file. Cases are not validated here: a batch keeps invalid cases
// so that they are reported at their position.
func LoadScenario(file string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", file, err)
	}
	return scenarioFromViper(v)
}

func scenarioFromViper(v *viper.Viper) (Scenario, error) {
	var sc Scenario
	if v.IsSet("general.mode") {
		mode, err := ParseMode(v.GetString("general.mode"))
		if err != nil {
			return sc, err
		}
		sc.Mode = mode
	}
	sc.Output = v.GetString("general.output")
	var records []caseRecord
	if err := v.UnmarshalKey("case", &records); err != nil {
		return sc, fmt.Errorf("could not read the cases: %w", err)
	}
	if len(records) == 0 {
		return sc, errors.New("scenario has no [[case]]")
	}
	for i, r := range records {
		p, err := r.params()
		if err != nil {
			return sc, fmt.Errorf("case #%d (%s): %w", i, r.Label, err)
		}
		sc.Cases = append(sc.Cases, p)
	}
	if v.IsSet("sweep") {
		sc.Sweep = &SweepRange{From: v.GetFloat64("sweep.from"), To: v.GetFloat64("sweep.to"), Points: v.GetInt("sweep.points")}
	}
	return sc, nil
}
