// Package commands implements the campfin CLI commands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/pkg/campfin"
	"github.com/campfin-io/campfin/pkg/campfinclient"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyEmpty          = errors.New("API key must not be empty")
	ErrInvalidDatePart      = errors.New("year, month, and day must be numbers")
	ErrDistrictNeedsChamber = errors.New("a district requires a chamber (house or senate)")
)

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

// createClient builds an API client from viper configuration.
func createClient() (campfin.Client, error) {
	config := &campfin.Config{
		APIKey: viper.GetString("api-key"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	if viper.GetBool("no-cache") {
		config.Cache = &campfin.CacheConfig{Type: campfin.CacheTypeNone}
	}

	client, err := campfinclient.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// queryFromFlags builds the per-call query from the global cycle and offset
// flags.
func queryFromFlags() *campfin.Query {
	query := campfin.NewQuery()

	if cycle := viper.GetInt("cycle"); cycle > 0 {
		query.WithCycle(cycle)
	}

	if offset := viper.GetInt("offset"); offset > 0 {
		query.WithOffset(offset)
	}

	return query
}

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// encodeYAML writes v to stdout as YAML.
func encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	return encoder.Encode(v)
}
