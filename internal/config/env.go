// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom fills cfg from environ following the `env` and `envPrefix`
// tags of [StructuredConfig]. Variables that are set but empty are treated
// as unset so they cannot wipe values coming from other sources.
func parseEnvFrom(cfg any, environ map[string]string) error {
	nonEmpty := make(map[string]string, len(environ))
	for k, v := range environ {
		if v != "" {
			nonEmpty[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: nonEmpty}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
