// Package config loads the service's settings from defaults, an optional
// config.yaml and TASKFLOW_-prefixed environment variables, then validates
// them before anything else starts.
package config
