package utils

import (
	"path/filepath"
	"strings"
)

// languageHints maps file extensions to markdown code-fence language hints.
var languageHints = map[string]string{
	".py":       "python",
	".js":       "javascript",
	".ts":       "typescript",
	".jsx":      "jsx",
	".tsx":      "tsx",
	".java":     "java",
	".c":        "c",
	".cpp":      "cpp",
	".cc":       "cpp",
	".h":        "c",
	".hpp":      "cpp",
	".cs":       "csharp",
	".rb":       "ruby",
	".go":       "go",
	".rs":       "rust",
	".php":      "php",
	".swift":    "swift",
	".kt":       "kotlin",
	".scala":    "scala",
	".sh":       "bash",
	".bash":     "bash",
	".zsh":      "zsh",
	".fish":     "fish",
	".ps1":      "powershell",
	".html":     "html",
	".htm":      "html",
	".xml":      "xml",
	".css":      "css",
	".scss":     "scss",
	".sass":     "sass",
	".less":     "less",
	".json":     "json",
	".yaml":     "yaml",
	".yml":      "yaml",
	".toml":     "toml",
	".ini":      "ini",
	".cfg":      "ini",
	".conf":     "conf",
	".md":       "markdown",
	".markdown": "markdown",
	".rst":      "rst",
	".tex":      "latex",
	".sql":      "sql",
	".r":        "r",
	".m":        "matlab",
	".vim":      "vim",
	".lua":      "lua",
	".perl":     "perl",
	".pl":       "perl",
}

// LanguageHint returns the markdown code-fence language hint for a file name,
// or the empty string when the extension is not recognized.
func LanguageHint(fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return languageHints[extension]
}
