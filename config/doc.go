// Package config loads regkit configuration from YAML files, .env files, and
// REGKIT_-prefixed environment variables, in that order of precedence (env
// wins). Projects embed ServiceConfig in their own config structs and load
// them with LoadConfig.
package config
