// Package config loads env-tagged configuration structs, combining
// godotenv for local development with caarlos0/env parsing.
package config
