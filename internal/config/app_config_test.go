package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
}

func TestLoadApplicationConfigurationLocalOverridesGlobal(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
	writeConfigFile(t, globalPath, "max_depth: 3\nemoji: true\nexclude:\n  - vendor\n")
	localPath := filepath.Join(workingDirectory, LocalConfigFileName)
	writeConfigFile(t, localPath, "max_depth: 5\ntokens:\n  enabled: true\n  model: custom\n")

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("load failed: %v", loadError)
	}

	if loaded.MaxDepth == nil || *loaded.MaxDepth != 5 {
		t.Fatalf("local max_depth must win, got %v", loaded.MaxDepth)
	}
	if loaded.Emoji == nil || !*loaded.Emoji {
		t.Fatalf("global emoji must survive when local is silent")
	}
	if len(loaded.Exclude) != 1 || loaded.Exclude[0] != "vendor" {
		t.Fatalf("global excludes must survive, got %v", loaded.Exclude)
	}
	if loaded.Tokens.Enabled == nil || !*loaded.Tokens.Enabled || loaded.Tokens.Model != "custom" {
		t.Fatalf("unexpected token configuration: %+v", loaded.Tokens)
	}
}

func TestLoadApplicationConfigurationMissingFilesAreFine(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("load failed: %v", loadError)
	}
	if loaded.MaxDepth != nil || loaded.ShowHidden != nil || len(loaded.Exclude) != 0 {
		t.Fatalf("expected empty configuration, got %+v", loaded)
	}
}

func TestLoadApplicationConfigurationExplicitPath(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	explicitName := "custom.yaml"
	writeConfigFile(t, filepath.Join(workingDirectory, explicitName), "no_files: true\n")

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitName,
	})
	if loadError != nil {
		t.Fatalf("load failed: %v", loadError)
	}
	if loaded.NoFiles == nil || !*loaded.NoFiles {
		t.Fatalf("explicit configuration not applied: %+v", loaded)
	}
}

func TestLoadApplicationConfigurationDisabledDiscovery(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	writeConfigFile(t, filepath.Join(workingDirectory, LocalConfigFileName), "emoji: true\n")

	loaded, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		DisableDiscovery: true,
	})
	if loadError != nil {
		t.Fatalf("load failed: %v", loadError)
	}
	if loaded.Emoji != nil {
		t.Fatalf("discovery must be skipped, got %+v", loaded)
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)

	directoryPath := filepath.Join(workingDirectory, "confdir")
	if err := os.MkdirAll(directoryPath, 0o755); err != nil {
		t.Fatalf("create directory: %v", err)
	}

	_, loadError := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: "confdir",
	})
	if loadError == nil {
		t.Fatalf("expected error for directory configuration path")
	}
}

func TestMergeOverlaysDeclaredFieldsOnly(t *testing.T) {
	base := ApplicationConfiguration{}
	five := 5
	enabled := true
	overlaid := base.Merge(ApplicationConfiguration{MaxDepth: &five, Summary: &enabled})

	if overlaid.MaxDepth == nil || *overlaid.MaxDepth != 5 {
		t.Fatalf("max depth override missing: %+v", overlaid)
	}
	if overlaid.Summary == nil || !*overlaid.Summary {
		t.Fatalf("summary override missing: %+v", overlaid)
	}
	if overlaid.ShowHidden != nil || overlaid.Emoji != nil {
		t.Fatalf("undeclared fields must remain unset: %+v", overlaid)
	}

	reverted := overlaid.Merge(ApplicationConfiguration{})
	if reverted.MaxDepth == nil || *reverted.MaxDepth != 5 {
		t.Fatalf("empty overlays must not clear existing values: %+v", reverted)
	}
}
