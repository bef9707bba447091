package commands

import (
	"os"

	"github.com/mosaicnetworks/digest/src/config"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var _config = config.NewDefaultConfig()

// NewRootCmd returns the sha256 root command with all its subcommands.
func NewRootCmd() *cobra.Command {
	_config = config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:               "sha256",
		Short:             "SHA-256 digests and digest-addressed storage",
		PersistentPreRunE: loadConfig,
	}

	AddRootFlags(rootCmd)

	rootCmd.AddCommand(
		NewDigestCmd(),
		NewConstantsCmd(),
		NewPutCmd(),
		NewGetCmd(),
		NewHasCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// AddRootFlags adds the flags shared by all commands
func AddRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("datadir", _config.DataDir, "Top-level directory for configuration and data")
	cmd.PersistentFlags().String("log", _config.LogLevel, "debug, info, warn, error, fatal, panic")
	cmd.PersistentFlags().String("log-file", _config.LogFile, "Also write info and debug logs to this file")

	// Store
	cmd.PersistentFlags().String("db", _config.DatabaseDir, "Database directory")
	cmd.PersistentFlags().Int("cache-size", _config.CacheSize, "Number of entries in the LRU cache")
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

func loadConfig(cmd *cobra.Command, args []string) error {
	err := bindFlagsLoadViper(cmd)
	if err != nil {
		return err
	}

	// If --datadir was explicitely set, but not --db, this will update the
	// default database dir to be inside the new datadir
	_config.SetDataDir(_config.DataDir)

	_config.SetLogger(newLogger())

	_config.Logger().WithFields(logrus.Fields{
		"DataDir":     _config.DataDir,
		"LogLevel":    _config.LogLevel,
		"LogFile":     _config.LogFile,
		"DatabaseDir": _config.DatabaseDir,
		"CacheSize":   _config.CacheSize,
	}).Debug("RUN")

	return nil
}

// Bind all flags and read the config into viper
func bindFlagsLoadViper(cmd *cobra.Command) error {
	v := viper.New()

	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// first unmarshal to read from CLI flags
	if err := v.Unmarshal(_config); err != nil {
		return err
	}

	// look for config file in [datadir]/sha256.toml (.json, .yaml also work)
	v.SetConfigName(config.DefaultConfigName)
	v.AddConfigPath(_config.DataDir)

	// If a config file is found, read it in.
	if err := v.ReadInConfig(); err == nil {
		_config.Logger().Debugf("Using config file: %s", v.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		_config.Logger().Debugf("No config file found in: %s", _config.DataDir)
	} else {
		return err
	}

	// second unmarshal to read from config file
	return v.Unmarshal(_config)
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Level = config.LogLevel(_config.LogLevel)
	logger.Formatter = new(prefixed.TextFormatter)
	logger.Out = os.Stderr

	if _config.LogFile == "" {
		return logger
	}

	f, err := os.OpenFile(_config.LogFile, os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		logger.Infof("Failed to open %s file, using default stderr", _config.LogFile)
		return logger
	}
	f.Close()

	pathMap := lfshook.PathMap{
		logrus.InfoLevel:  _config.LogFile,
		logrus.DebugLevel: _config.LogFile,
	}

	logger.Hooks.Add(lfshook.NewHook(
		pathMap,
		&logrus.TextFormatter{},
	))

	return logger
}
