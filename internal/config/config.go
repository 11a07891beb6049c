package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/utilkit/checksum"
	"github.com/oshokin/utilkit/drivepath"
	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/platform"
	"github.com/oshokin/utilkit/procutil"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// LogFile is an optional file receiving every log record.
	LogFile string `mapstructure:"log_file"`
	// Platform selects the path conventions: auto, posix or windows.
	Platform string `mapstructure:"platform"`
	// ChecksumAlgorithm is the default digest for the checksum command.
	ChecksumAlgorithm string `mapstructure:"checksum_algorithm"`
	// MaxOutputSize caps each stream captured by the run command (e.g., "1MB", "512KB"); "0" disables the cap.
	MaxOutputSize string `mapstructure:"max_output_size"`
	// WineRootDrive is the Wine drive mapped to the host root directory.
	WineRootDrive string `mapstructure:"wine_root_drive"`
	// WineHomeDrive is the Wine drive mapped to the host home directory.
	WineHomeDrive string `mapstructure:"wine_home_drive"`
	// Filename is the configuration file that was read, empty if defaults were used.
	Filename string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedPlatform is the resolved platform profile.
	ParsedPlatform platform.Platform
	// ParsedChecksumAlgorithm is the parsed default digest.
	ParsedChecksumAlgorithm checksum.Algorithm
	// ParsedMaxOutputSize is the parsed capture limit in bytes, zero when unlimited.
	ParsedMaxOutputSize int64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".utilkit.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultChecksumAlgorithm is the digest used when none is configured.
	DefaultChecksumAlgorithm = string(checksum.MD5)
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownPlatform indicates that the platform name is not recognized.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrInvalidWineDrive indicates that a Wine drive is not a letter followed by a colon.
	ErrInvalidWineDrive = errors.New("invalid wine drive")
	// ErrEmptyKey indicates that SaveValue was called without a key.
	ErrEmptyKey = errors.New("configuration key cannot be empty")
	// ErrInvalidConfigDocument indicates that the configuration file is not a YAML mapping.
	ErrInvalidConfigDocument = errors.New("configuration file is not a YAML mapping")
)

// setDefaults registers the value of every setting missing from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("platform", constants.PlatformAuto)
	v.SetDefault("checksum_algorithm", DefaultChecksumAlgorithm)
	v.SetDefault("max_output_size", humanize.IBytes(procutil.DefaultMaxOutput))
	v.SetDefault("wine_root_drive", drivepath.DefaultWineRootDrive)
	v.SetDefault("wine_home_drive", drivepath.DefaultWineHomeDrive)
}

// LoadConfig loads configuration settings from a YAML file.
// An empty filename reads DefaultConfigFilename if it exists and falls back to defaults otherwise;
// an explicit filename must exist.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	usedFilename := configFilename
	if usedFilename == "" {
		usedFilename = DefaultConfigFilename
	}

	v.SetConfigFile(usedFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if configFilename != "" || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		usedFilename = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Filename = usedFilename

	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedPlatform, err = ParsePlatform(cfg.Platform)
	if err != nil {
		return err
	}

	cfg.ParsedChecksumAlgorithm, err = checksum.ParseAlgorithm(cfg.ChecksumAlgorithm)
	if err != nil {
		return fmt.Errorf("failed to parse checksum algorithm: %w", err)
	}

	maxOutputSize := strings.TrimSpace(cfg.MaxOutputSize)
	if maxOutputSize != "" && maxOutputSize != "0" {
		parsedMaxOutputSize, parseErr := humanize.ParseBytes(maxOutputSize)
		if parseErr != nil {
			return fmt.Errorf("failed to parse max output size: %w", parseErr)
		}

		cfg.ParsedMaxOutputSize = safeUint64ToInt64(parsedMaxOutputSize)
	} else {
		cfg.ParsedMaxOutputSize = 0
	}

	for _, drive := range []string{cfg.WineRootDrive, cfg.WineHomeDrive} {
		if !isDriveLetter(drive) {
			return fmt.Errorf("%w: '%s'", ErrInvalidWineDrive, drive)
		}
	}

	return nil
}

// ParsePlatform resolves a platform name; "auto" and "" mean the host platform.
func ParsePlatform(name string) (platform.Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == constants.PlatformAuto {
		return platform.Current(), nil
	}

	p, ok := platform.ByName(name)
	if !ok {
		return platform.Platform{}, fmt.Errorf("%w: '%s'", ErrUnknownPlatform, name)
	}

	return p, nil
}

// isDriveLetter reports whether value is exactly a drive letter and a colon, such as "Z:".
func isDriveLetter(value string) bool {
	drive, rest := drivepath.SplitDrive(value, platform.Windows)

	return len(value) == len("Z:") && drive != "" && rest == ""
}

// safeUint64ToInt64 converts a uint64 value to an int64, clamping at math.MaxInt64.
func safeUint64ToInt64(val uint64) int64 {
	const maxInt64 = 1<<63 - 1
	if val > maxInt64 {
		return maxInt64
	}

	return int64(val)
}

// SaveValue sets key to value in the configuration file while preserving the original format and order.
// The file is created if it does not exist, whatever its extension.
func SaveValue(configFilename, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	originalContent, err := os.ReadFile(configFilename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err = setValueInNode(&node, key, value); err != nil {
		return fmt.Errorf("failed to set '%s' in %s: %w", key, configFilename, err)
	}

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFilename, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setValueInNode updates key in the YAML node tree, appending it when absent.
// An empty document becomes a mapping; any other non-mapping document is an error.
func setValueInNode(node *yaml.Node, key, value string) error {
	// An empty document has no content yet.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"})
	}

	// The root node is a document node, content[0] is the actual map.
	mapNode := node.Content[0]
	if node.Kind != yaml.DocumentNode || mapNode.Kind != yaml.MappingNode {
		return ErrInvalidConfigDocument
	}

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			// Update the value while preserving style.
			mapNode.Content[i+1].Value = value

			return nil
		}
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle},
	)

	return nil
}
