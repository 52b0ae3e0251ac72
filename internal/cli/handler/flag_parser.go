// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/mission/internal/cli"
)

// AddOutputFlags registers the --json and --quiet flags shared by every command
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// Formatter builds an OutputFormatter from the --json and --quiet flags.
// Commands that do not register them get human output.
func (p *FlagParser) Formatter() *cli.OutputFormatter {
	jsonOutput, quietMode, err := p.OutputFormats()
	if err != nil {
		return cli.NewFormatter(p.cmd, false, false)
	}
	return cli.NewFormatter(p.cmd, jsonOutput, quietMode)
}

// ParseID extracts a required identifier from the positional args, falling
// back to the named flag
func (p *FlagParser) ParseID(args []string, position int, flagName string) (string, error) {
	if len(args) > position {
		if id := strings.TrimSpace(args[position]); id != "" {
			return id, nil
		}
	}
	if flagName != "" && p.cmd.Flags().Lookup(flagName) != nil {
		return p.ParseString(flagName)
	}
	return "", fmt.Errorf("%s is required", flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParseInt extracts a required int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", flagName)
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
