// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvironmentOverrides.
const (
	EnvSpeed        = "HOOP_SPEED"
	EnvAngle        = "HOOP_ANGLE"
	EnvAzimuth      = "HOOP_AZIMUTH"
	EnvLaunchX      = "HOOP_LAUNCH_X"
	EnvLaunchY      = "HOOP_LAUNCH_Y"
	EnvBasketX      = "HOOP_BASKET_X"
	EnvBasketY      = "HOOP_BASKET_Y"
	EnvBasketRadius = "HOOP_BASKET_RADIUS"
	EnvSimSeconds   = "HOOP_SIM_SECONDS"
	EnvSimSteps     = "HOOP_SIM_STEPS"
	EnvGravity      = "HOOP_GRAVITY"
)

// ApplyEnvironmentOverrides overwrites fields of cfg from HOOP_*
// environment variables. Unset variables leave the file/default value
// untouched; an unparseable value is an error rather than a silent
// fallback.
func ApplyEnvironmentOverrides(cfg *Config) error {
	floatTargets := []struct {
		env    string
		target *float64
	}{
		{EnvSpeed, &cfg.Launch.Speed},
		{EnvAngle, &cfg.Launch.AngleDeg},
		{EnvAzimuth, &cfg.Launch.AzimuthDeg},
		{EnvLaunchX, &cfg.Launch.X},
		{EnvLaunchY, &cfg.Launch.Y},
		{EnvBasketX, &cfg.Basket.X},
		{EnvBasketY, &cfg.Basket.Y},
		{EnvBasketRadius, &cfg.Basket.Radius},
		{EnvSimSeconds, &cfg.Sim.Seconds},
		{EnvGravity, &cfg.Sim.Gravity},
	}
	for _, ft := range floatTargets {
		if err := overrideFloat(ft.env, ft.target); err != nil {
			return err
		}
	}
	return overrideInt(EnvSimSteps, &cfg.Sim.Steps)
}

func overrideFloat(env string, target *float64) error {
	raw, ok := os.LookupEnv(env)
	if !ok || raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", env, raw, err)
	}
	*target = value
	return nil
}

func overrideInt(env string, target *int) error {
	raw, ok := os.LookupEnv(env)
	if !ok || raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", env, raw, err)
	}
	*target = value
	return nil
}
