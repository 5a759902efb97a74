// Package config handles configuration management for xml2conf.
// It layers built-in defaults, an optional user config file, an explicit
// config file and XML2CONF_* environment variables using koanf.
package config
