package common

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"sort"
	"strconv"
	"strings"
)

// ConverterConfig holds the settings of the type conversion layer
type ConverterConfig struct {
	// DataDir contains one palette file per protocol (<protocol>.yaml[.zst])
	DataDir string

	// Protocols are created eagerly at startup. Others are created on first use.
	Protocols []int

	// DefaultProtocol is used by commands that are not given a protocol
	DefaultProtocol int

	// Logging configuration
	LogLevel string
}

// Validate checks the configuration for obvious mistakes
func (c *ConverterConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory must not be empty")
	}
	if c.DefaultProtocol <= 0 {
		return errors.Newf("invalid default protocol %d", c.DefaultProtocol)
	}
	for _, p := range c.Protocols {
		if p <= 0 {
			return errors.Newf("invalid protocol %d", p)
		}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseProtocols parses a comma-separated protocol list (e.g. "671,685")
func ParseProtocols(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid protocol %q", part)
		}
		out = append(out, p)
	}
	return out, nil
}

// String returns a formatted string representation of the configuration
func (c *ConverterConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Dictionaries")
	addField("Data Directory", c.DataDir)
	addField("Default Protocol", strconv.Itoa(c.DefaultProtocol))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	addSection("Preloaded Protocols")
	// Sort for consistent output
	protocols := append([]int(nil), c.Protocols...)
	sort.Ints(protocols)
	for i, p := range protocols {
		addField(strconv.Itoa(i), strconv.Itoa(p))
	}

	return sb.String()
}
