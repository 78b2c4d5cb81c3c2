// Package config loads and merges application configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/gitree/internal/utils"
)

const (
	// LocalConfigFileName is the per-project configuration file discovered in
	// the working directory.
	LocalConfigFileName = ".gitree.yaml"
	// GlobalConfigDirectoryName is the directory under the user home that
	// holds the global configuration.
	GlobalConfigDirectoryName = ".gitree"
	// GlobalConfigFileName is the file name of the global configuration.
	GlobalConfigFileName = "config.yaml"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	DisableDiscovery bool
}

// ApplicationConfiguration holds configuration defaults mirroring the
// command-line flags. Pointer fields distinguish "unset" from zero values so
// later sources only override what they actually declare.
type ApplicationConfiguration struct {
	MaxDepth         *int               `mapstructure:"max_depth"`
	ShowHidden       *bool              `mapstructure:"show_hidden"`
	Exclude          []string           `mapstructure:"exclude"`
	ExcludeDepth     *int               `mapstructure:"exclude_depth"`
	UseGitignore     *bool              `mapstructure:"use_gitignore"`
	GitignoreDepth   *int               `mapstructure:"gitignore_depth"`
	MaxItems         *int               `mapstructure:"max_items"`
	NoLimit          *bool              `mapstructure:"no_limit"`
	NoFiles          *bool              `mapstructure:"no_files"`
	FilesFirst       *bool              `mapstructure:"files_first"`
	Include          []string           `mapstructure:"include"`
	IncludeFileTypes []string           `mapstructure:"include_file_types"`
	Emoji            *bool              `mapstructure:"emoji"`
	Summary          *bool              `mapstructure:"summary"`
	Contents         *bool              `mapstructure:"contents"`
	Clipboard        *bool              `mapstructure:"clipboard"`
	Tokens           TokenConfiguration `mapstructure:"tokens"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from the global file and
// the local file, with local values overriding global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	if options.DisableDiscovery && options.ExplicitFilePath == "" {
		return ApplicationConfiguration{}, nil
	}

	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if !options.DisableDiscovery {
		if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
			globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
			globalConfig, loadError := loadConfigurationFromPath(globalPath)
			if loadError != nil {
				return ApplicationConfiguration{}, loadError
			}
			merged = merged.Merge(globalConfig)
		}
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath, options.DisableDiscovery)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfig, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfig)
	}

	merged.Exclude = utils.DeduplicatePatterns(merged.Exclude)
	merged.Include = utils.DeduplicatePatterns(merged.Include)
	merged.IncludeFileTypes = utils.DeduplicatePatterns(merged.IncludeFileTypes)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory string, explicitPath string, disableDiscovery bool) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolutePath, resolveError := filepath.Abs(explicitPath)
			if resolveError != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, resolveError)
			}
			return absolutePath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if disableDiscovery || workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, LocalConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInfo, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var loaded ApplicationConfiguration
	if decodeError := reader.Unmarshal(&loaded); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return loaded, nil
}

// Merge overlays override onto the receiver returning the combined
// configuration. Only fields the override actually declares replace the
// receiver's values.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.MaxDepth != nil {
		result.MaxDepth = cloneInt(override.MaxDepth)
	}
	if override.ShowHidden != nil {
		result.ShowHidden = cloneBool(override.ShowHidden)
	}
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	if override.ExcludeDepth != nil {
		result.ExcludeDepth = cloneInt(override.ExcludeDepth)
	}
	if override.UseGitignore != nil {
		result.UseGitignore = cloneBool(override.UseGitignore)
	}
	if override.GitignoreDepth != nil {
		result.GitignoreDepth = cloneInt(override.GitignoreDepth)
	}
	if override.MaxItems != nil {
		result.MaxItems = cloneInt(override.MaxItems)
	}
	if override.NoLimit != nil {
		result.NoLimit = cloneBool(override.NoLimit)
	}
	if override.NoFiles != nil {
		result.NoFiles = cloneBool(override.NoFiles)
	}
	if override.FilesFirst != nil {
		result.FilesFirst = cloneBool(override.FilesFirst)
	}
	if len(override.Include) > 0 {
		result.Include = append([]string{}, utils.DeduplicatePatterns(override.Include)...)
	}
	if len(override.IncludeFileTypes) > 0 {
		result.IncludeFileTypes = append([]string{}, utils.DeduplicatePatterns(override.IncludeFileTypes)...)
	}
	if override.Emoji != nil {
		result.Emoji = cloneBool(override.Emoji)
	}
	if override.Summary != nil {
		result.Summary = cloneBool(override.Summary)
	}
	if override.Contents != nil {
		result.Contents = cloneBool(override.Contents)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (configuration TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
