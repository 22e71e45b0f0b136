package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-tally/internal/ports"
)

// AnalysisConfig is the top-level YAML specification for one analysis
// run: which aggregation strategy to apply, with which parameters, and
// how the divisiveness engine should be driven.
type AnalysisConfig struct {
	// Version specifies the configuration schema version.
	Version string `yaml:"version" validate:"required"`
	// Metadata contains descriptive information about the analysis.
	Metadata AnalysisMetadata `yaml:"metadata"`
	// Strategy selects and configures the aggregation strategy.
	Strategy StrategyConfig `yaml:"strategy" validate:"required"`
	// Divisiveness configures the optional divisiveness computation.
	Divisiveness DivisivenessConfig `yaml:"divisiveness"`
}

// AnalysisMetadata describes an analysis for organization and discovery.
type AnalysisMetadata struct {
	// Name is the human-readable identifier for this analysis.
	Name string `yaml:"name" validate:"max=255"`
	// Description explains the analysis' purpose.
	Description string `yaml:"description" validate:"max=1000"`
	// Tags are categorical labels for filtering and grouping.
	Tags []string `yaml:"tags" validate:"max=20,dive,min=1,max=50"`
}

// StrategyConfig selects an aggregation strategy and carries its
// type-specific parameters as flexible YAML, validated per type before
// instantiation.
type StrategyConfig struct {
	// ID is the unique identifier for the strategy instance.
	ID string `yaml:"id" validate:"required,min=1,max=100"`
	// Type names the strategy implementation: borda, copeland, winrate,
	// elo, ahp, or a custom type registered by the caller.
	Type string `yaml:"type" validate:"required,min=1,max=100"`
	// Parameters contains type-specific configuration.
	Parameters yaml.Node `yaml:"parameters"`
}

// DivisivenessConfig drives the divisiveness engine.
type DivisivenessConfig struct {
	// Mode selects the partitioning mode. "exact" requires voter identity
	// on every record; "approximate" works from aggregated counts alone.
	Mode string `yaml:"mode" validate:"omitempty,oneof=exact approximate"`
	// Parallelism bounds concurrent per-alternative computations;
	// 0 defaults to the CPU count.
	Parallelism int `yaml:"parallelism" validate:"min=0,max=1024"`
}

var configValidate = validator.New()

// LoadAnalysisConfig parses and validates a YAML analysis configuration.
// Structural validation uses struct tags; strategy parameters are
// additionally checked against their type's constraints so configuration
// errors surface before any data processing.
func LoadAnalysisConfig(data []byte) (*AnalysisConfig, error) {
	var config AnalysisConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse analysis config: %w", err)
	}
	if err := configValidate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid analysis config: %w", err)
	}
	if err := ValidateStrategyParameters(config.Strategy.Type, config.Strategy.Parameters); err != nil {
		return nil, fmt.Errorf("strategy %q: %w", config.Strategy.ID, err)
	}
	return &config, nil
}

// ValidateStrategyParameters checks type-specific parameter constraints
// for the built-in strategies. Unknown types are left to the registry,
// which validates on instantiation.
func ValidateStrategyParameters(strategyType string, params yaml.Node) error {
	var paramMap map[string]any
	if !params.IsZero() {
		if err := params.Decode(&paramMap); err != nil {
			return fmt.Errorf("failed to decode parameters: %w", err)
		}
	}

	switch strategyType {
	case StrategyBorda, StrategyCopeland, StrategyWinRate:
		if len(paramMap) > 0 {
			return fmt.Errorf("strategy type %s accepts no parameters, got %d", strategyType, len(paramMap))
		}
		return nil
	case StrategyElo:
		return validateNumericParams(paramMap, map[string]paramRule{
			"base_rating": {positive: true},
			"k_factor":    {positive: true},
			"iterations":  {minOne: true},
		})
	case StrategyAHP:
		return validateNumericParams(paramMap, map[string]paramRule{
			"max_iterations": {minOne: true},
			"tolerance":      {positive: true},
		})
	default:
		// Custom strategy types validate their own parameters.
		return nil
	}
}

type paramRule struct {
	positive bool
	minOne   bool
}

func validateNumericParams(params map[string]any, rules map[string]paramRule) error {
	for key, raw := range params {
		rule, known := rules[key]
		if !known {
			return fmt.Errorf("unknown parameter %q", key)
		}
		value, err := asFloat(raw)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", key, err)
		}
		if rule.positive && value <= 0 {
			return fmt.Errorf("parameter %q must be positive, got %v", key, value)
		}
		if rule.minOne && value < 1 {
			return fmt.Errorf("parameter %q must be at least 1, got %v", key, value)
		}
	}
	return nil
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

// BuildStrategy instantiates the configured strategy through the registry,
// converting the YAML parameters into the registry's configuration map.
func (c *AnalysisConfig) BuildStrategy(registry ports.StrategyRegistry) (ports.Strategy, error) {
	var params map[string]any
	if !c.Strategy.Parameters.IsZero() {
		if err := c.Strategy.Parameters.Decode(&params); err != nil {
			return nil, fmt.Errorf("failed to decode strategy parameters: %w", err)
		}
	}
	return registry.CreateStrategy(c.Strategy.Type, c.Strategy.ID, params)
}
