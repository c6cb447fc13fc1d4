package config

import (
	"fmt"
	"os"
	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/logistics"
	"strconv"
	"strings"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Bool parses key as a boolean, returning fallback when unset.
func Bool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s=%q is not a boolean: %w", key, v, err)
	}
	return b, nil
}

func overrideFloat(key string, dst *float64) error {
	v := Get(key, "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: %s=%q is not a number: %w", key, v, err)
	}
	*dst = f
	return nil
}

// LoadParams overlays LOGISTICS_* environment overrides on the default engine parameters.
func LoadParams() (logistics.Params, error) {
	p := logistics.DefaultParams()

	floats := []struct {
		key string
		dst *float64
	}{
		{"LOGISTICS_ROAD_FACTOR", &p.RoadFactor},
		{"LOGISTICS_WALK_THRESHOLD_KM", &p.WalkThresholdKm},
		{"LOGISTICS_TRANSIT_THRESHOLD_KM", &p.TransitThresholdKm},
	}
	for _, f := range floats {
		if err := overrideFloat(f.key, f.dst); err != nil {
			return logistics.Params{}, err
		}
	}

	for _, m := range domain.Modes {
		speed := p.Speeds[m]
		key := "LOGISTICS_SPEED_" + strings.ToUpper(string(m))
		if err := overrideFloat(key, &speed); err != nil {
			return logistics.Params{}, err
		}
		p.Speeds[m] = speed
	}

	if v := Get("LOGISTICS_MIN_DURATION_MINUTES", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return logistics.Params{}, fmt.Errorf("config: LOGISTICS_MIN_DURATION_MINUTES=%q is not an integer: %w", v, err)
		}
		p.MinDurationMinutes = n
	}

	if err := p.Validate(); err != nil {
		return logistics.Params{}, fmt.Errorf("config: %w", err)
	}

	return p, nil
}
