package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	envVerbose = "MWS2COLS_VERBOSE"
	dotEnvFile = ".env"
)

const (
	flagVerbose          = "verbose"
	flagVerboseShorthand = "v"
)

// loadDotEnv reads dotEnvFile from the working directory when present.
// Variables already set in the environment are not overridden.
func loadDotEnv() error {
	err := godotenv.Load(dotEnvFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func parseEnvBool(key string) (bool, bool, error) {
	v, ok := envString(key)
	if !ok {
		return false, false, nil
	}

	switch strings.ToLower(v) {
	case "1", "t", "true", "y", "yes", "on":
		return true, true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, true, nil
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, false, fmt.Errorf("invalid %s=%q (expected true/false)", key, v)
		}
		return b, true, nil
	}
}

func envString(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// unsetFlag returns the flag when it exists and was not given on the command line.
func unsetFlag(cmd *cobra.Command, flagName string) (*pflag.Flag, bool) {
	f := cmd.Flags().Lookup(flagName)
	if f == nil || f.Changed {
		return nil, false
	}
	return f, true
}

// resolveBoolFlagFromEnv fills a bool flag from envKey. An explicit flag wins.
func resolveBoolFlagFromEnv(cmd *cobra.Command, flagName, envKey string) error {
	f, ok := unsetFlag(cmd, flagName)
	if !ok {
		return nil
	}
	b, ok, err := parseEnvBool(envKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return f.Value.Set(strconv.FormatBool(b))
}
