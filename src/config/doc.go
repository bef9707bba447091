// Package config defines the configuration shared by the sha256 command and the
// digest store.
//
// The data directory, Config.DataDir, holds an optional configuration file and,
// unless overridden, the badger database:
//
//	sha256.toml // (optional) configuration file, .json and .yaml also work
//	badger_db   // the digest store database
package config
