// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Fields are mapped by the
// `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvMap(cfg, env.ToMap(os.Environ()))
}

// parseEnvMap fills cfg from environ instead of the process environment.
func parseEnvMap(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
