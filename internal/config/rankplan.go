package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/compengine/internal/domain"
)

// LoadRankPlan reads a rank plan from a .toml, .yaml or .yml file. An empty
// path yields the default plan.
func LoadRankPlan(path string) (domain.RankPlan, error) {
	if path == "" {
		return domain.DefaultRankPlan(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RankPlan{}, fmt.Errorf("failed to read rank plan: %w", err)
	}

	var plan domain.RankPlan
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &plan); err != nil {
			return domain.RankPlan{}, fmt.Errorf("failed to decode toml rank plan: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return domain.RankPlan{}, fmt.Errorf("failed to decode yaml rank plan: %w", err)
		}
	default:
		return domain.RankPlan{}, fmt.Errorf("unsupported rank plan format: %s", path)
	}

	if err := plan.Validate(); err != nil {
		return domain.RankPlan{}, err
	}
	return plan, nil
}
