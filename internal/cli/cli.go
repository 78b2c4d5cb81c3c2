// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitree/internal/config"
	"github.com/temirov/gitree/internal/export"
	"github.com/temirov/gitree/internal/render"
	"github.com/temirov/gitree/internal/selection"
	"github.com/temirov/gitree/internal/services/clipboard"
	"github.com/temirov/gitree/internal/tokenizer"
	"github.com/temirov/gitree/internal/traverse"
	"github.com/temirov/gitree/internal/types"
	"github.com/temirov/gitree/internal/utils"
)

const (
	maxDepthFlagName         = "max-depth"
	hiddenItemsFlagName      = "hidden-items"
	excludeFlagName          = "exclude"
	excludeDepthFlagName     = "exclude-depth"
	gitignoreDepthFlagName   = "gitignore-depth"
	noGitignoreFlagName      = "no-gitignore"
	maxItemsFlagName         = "max-items"
	noLimitFlagName          = "no-limit"
	noFilesFlagName          = "no-files"
	filesFirstFlagName       = "files-first"
	includeFlagName          = "include"
	includeFileTypesFlagName = "include-file-types"
	emojiFlagName            = "emoji"
	summaryFlagName          = "summary"
	interactiveFlagName      = "interactive"
	zipFlagName              = "zip"
	jsonFlagName             = "json"
	textFlagName             = "txt"
	markdownFlagName         = "md"
	outputFlagName           = "output"
	copyFlagName             = "copy"
	noContentsFlagName       = "no-contents"
	tokensFlagName           = "tokens"
	modelFlagName            = "model"
	configFlagName           = "config"
	noConfigFlagName         = "no-config"
	versionFlagName          = "version"
	forceFlagName            = "force"
	globalFlagName           = "global"

	versionTemplate      = "gitree version: %s\n"
	defaultPath          = "."
	rootUse              = "gitree [paths...]"
	rootShortDescription = "display filtered directory trees"
	rootLongDescription  = `gitree renders directory trees with gitignore-aware filtering.
It supports depth limits, per-directory truncation, include and exclude
patterns, interactive file selection, and JSON, text, markdown, and zip
exports with optional file contents and token counts.`
	rootUsageExample = `  # Render the current directory
  gitree

  # Two levels deep, honoring .gitignore, twenty items per directory
  gitree --max-depth 2 .

  # Export the tree with file contents to markdown
  gitree --md project.md --tokens src`

	initUse              = "init"
	initShortDescription = "write a default configuration file"

	maxDepthFlagDescription         = "maximum depth to descend (0 for unlimited)"
	hiddenItemsFlagDescription      = "show hidden files and directories"
	excludeFlagDescription          = "additional gitignore-style exclude pattern"
	excludeDepthFlagDescription     = "maximum depth exclude patterns apply to (0 for unlimited)"
	gitignoreDepthFlagDescription   = "maximum depth .gitignore files are collected from (0 for unlimited)"
	disableGitignoreFlagDescription = "do not honor .gitignore files"
	maxItemsFlagDescription         = "maximum entries shown per directory"
	noLimitFlagDescription          = "show every entry regardless of the per-directory limit"
	noFilesFlagDescription          = "show directories only"
	filesFirstFlagDescription       = "sort files before directories"
	includeFlagDescription          = "only show files matching this gitignore-style pattern"
	includeFileTypesFlagDescription = "only show files with this extension"
	emojiFlagDescription            = "draw file and folder icons"
	summaryFlagDescription          = "print per-depth directory and file counts"
	interactiveFlagDescription      = "interactively select the files to show"
	zipFlagDescription              = "write the filtered files into a zip archive"
	jsonFlagDescription             = "write the tree as JSON to the given file"
	textFlagDescription             = "write the tree as text to the given file"
	markdownFlagDescription         = "write the tree as markdown to the given file"
	outputFlagDescription           = "write the rendered tree to the given file"
	copyFlagDescription             = "copy the rendered tree to the clipboard"
	noContentsFlagDescription       = "omit file contents from exports"
	tokensFlagDescription           = "annotate exported files with token counts"
	modelFlagDescription            = "tokenizer model to use for token counting"
	configFlagDescription           = "explicit configuration file path"
	noConfigFlagDescription         = "skip configuration file discovery"
	versionFlagDescription          = "display application version"
	forceFlagDescription            = "overwrite an existing configuration file"
	globalFlagDescription           = "write the configuration to the global location"

	markdownOutputExtension   = ".md"
	warningCopyFailedMessage  = "copying to the clipboard failed"
	warningPathSkippedMessage = "skipping path"
	initializedMessageFormat  = "Configuration written to %s\n"
	tokenTotalFormat          = "\nTotal tokens (%s): %d\n"

	errorAbsolutePathFormat = "abs failed for '%s': %w"
	errorPathMissingFormat  = "path '%s' does not exist"
	errorStatFormat         = "stat failed for '%s': %w"
	errorNoValidPaths       = "no valid paths"
	errorOutputWriteFormat  = "writing output to %s: %w"
)

// commandOptions collects every flag value of the root command.
type commandOptions struct {
	maxDepth         int
	showHidden       bool
	excludePatterns  []string
	excludeDepth     int
	gitignoreDepth   int
	disableGitignore bool
	maxItems         int
	noLimit          bool
	noFiles          bool
	filesFirst       bool
	includePatterns  []string
	includeFileTypes []string
	emoji            bool
	summary          bool
	interactive      bool
	zipPath          string
	jsonPath         string
	textPath         string
	markdownPath     string
	outputPath       string
	copyToClipboard  bool
	noContents       bool
	tokensEnabled    bool
	tokenModel       string
	configPath       string
	disableConfig    bool
}

// Execute runs the gitree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	options := commandOptions{
		maxItems:   traverse.DefaultMaxItems,
		tokenModel: tokenizer.DefaultModel,
	}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if len(arguments) == 0 {
				arguments = []string{defaultPath}
			}
			if applyError := applyConfiguration(command, &options); applyError != nil {
				return applyError
			}
			return runTree(arguments, options)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}

	flags := rootCommand.Flags()
	flags.IntVarP(&options.maxDepth, maxDepthFlagName, "L", 0, maxDepthFlagDescription)
	flags.BoolVarP(&options.showHidden, hiddenItemsFlagName, "H", false, hiddenItemsFlagDescription)
	flags.StringArrayVarP(&options.excludePatterns, excludeFlagName, "x", nil, excludeFlagDescription)
	flags.IntVar(&options.excludeDepth, excludeDepthFlagName, 0, excludeDepthFlagDescription)
	flags.IntVar(&options.gitignoreDepth, gitignoreDepthFlagName, 0, gitignoreDepthFlagDescription)
	flags.BoolVar(&options.disableGitignore, noGitignoreFlagName, false, disableGitignoreFlagDescription)
	flags.IntVarP(&options.maxItems, maxItemsFlagName, "m", traverse.DefaultMaxItems, maxItemsFlagDescription)
	flags.BoolVar(&options.noLimit, noLimitFlagName, false, noLimitFlagDescription)
	flags.BoolVar(&options.noFiles, noFilesFlagName, false, noFilesFlagDescription)
	flags.BoolVar(&options.filesFirst, filesFirstFlagName, false, filesFirstFlagDescription)
	flags.StringArrayVarP(&options.includePatterns, includeFlagName, "i", nil, includeFlagDescription)
	flags.StringArrayVarP(&options.includeFileTypes, includeFileTypesFlagName, "t", nil, includeFileTypesFlagDescription)
	flags.BoolVarP(&options.emoji, emojiFlagName, "e", false, emojiFlagDescription)
	flags.BoolVarP(&options.summary, summaryFlagName, "s", false, summaryFlagDescription)
	flags.BoolVarP(&options.interactive, interactiveFlagName, "I", false, interactiveFlagDescription)
	flags.StringVarP(&options.zipPath, zipFlagName, "z", "", zipFlagDescription)
	flags.StringVarP(&options.jsonPath, jsonFlagName, "j", "", jsonFlagDescription)
	flags.StringVar(&options.textPath, textFlagName, "", textFlagDescription)
	flags.StringVar(&options.markdownPath, markdownFlagName, "", markdownFlagDescription)
	flags.StringVarP(&options.outputPath, outputFlagName, "o", "", outputFlagDescription)
	flags.BoolVarP(&options.copyToClipboard, copyFlagName, "c", false, copyFlagDescription)
	flags.BoolVar(&options.noContents, noContentsFlagName, false, noContentsFlagDescription)
	flags.BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	flags.StringVar(&options.tokenModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flags.BoolVar(&options.disableConfig, noConfigFlagName, false, noConfigFlagDescription)

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// applyConfiguration overlays configuration file values onto flags the user
// did not set explicitly. Flags always win over configuration files.
func applyConfiguration(command *cobra.Command, options *commandOptions) error {
	loadedConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configPath,
		DisableDiscovery: options.disableConfig,
	})
	if loadError != nil {
		return loadError
	}

	flags := command.Flags()
	if loadedConfiguration.MaxDepth != nil && !flags.Changed(maxDepthFlagName) {
		options.maxDepth = *loadedConfiguration.MaxDepth
	}
	if loadedConfiguration.ShowHidden != nil && !flags.Changed(hiddenItemsFlagName) {
		options.showHidden = *loadedConfiguration.ShowHidden
	}
	if len(loadedConfiguration.Exclude) > 0 && !flags.Changed(excludeFlagName) {
		options.excludePatterns = loadedConfiguration.Exclude
	}
	if loadedConfiguration.ExcludeDepth != nil && !flags.Changed(excludeDepthFlagName) {
		options.excludeDepth = *loadedConfiguration.ExcludeDepth
	}
	if loadedConfiguration.UseGitignore != nil && !flags.Changed(noGitignoreFlagName) {
		options.disableGitignore = !*loadedConfiguration.UseGitignore
	}
	if loadedConfiguration.GitignoreDepth != nil && !flags.Changed(gitignoreDepthFlagName) {
		options.gitignoreDepth = *loadedConfiguration.GitignoreDepth
	}
	if loadedConfiguration.MaxItems != nil && !flags.Changed(maxItemsFlagName) {
		options.maxItems = *loadedConfiguration.MaxItems
	}
	if loadedConfiguration.NoLimit != nil && !flags.Changed(noLimitFlagName) {
		options.noLimit = *loadedConfiguration.NoLimit
	}
	if loadedConfiguration.NoFiles != nil && !flags.Changed(noFilesFlagName) {
		options.noFiles = *loadedConfiguration.NoFiles
	}
	if loadedConfiguration.FilesFirst != nil && !flags.Changed(filesFirstFlagName) {
		options.filesFirst = *loadedConfiguration.FilesFirst
	}
	if len(loadedConfiguration.Include) > 0 && !flags.Changed(includeFlagName) {
		options.includePatterns = loadedConfiguration.Include
	}
	if len(loadedConfiguration.IncludeFileTypes) > 0 && !flags.Changed(includeFileTypesFlagName) {
		options.includeFileTypes = loadedConfiguration.IncludeFileTypes
	}
	if loadedConfiguration.Emoji != nil && !flags.Changed(emojiFlagName) {
		options.emoji = *loadedConfiguration.Emoji
	}
	if loadedConfiguration.Summary != nil && !flags.Changed(summaryFlagName) {
		options.summary = *loadedConfiguration.Summary
	}
	if loadedConfiguration.Contents != nil && !flags.Changed(noContentsFlagName) {
		options.noContents = !*loadedConfiguration.Contents
	}
	if loadedConfiguration.Clipboard != nil && !flags.Changed(copyFlagName) {
		options.copyToClipboard = *loadedConfiguration.Clipboard
	}
	if loadedConfiguration.Tokens.Enabled != nil && !flags.Changed(tokensFlagName) {
		options.tokensEnabled = *loadedConfiguration.Tokens.Enabled
	}
	if loadedConfiguration.Tokens.Model != "" && !flags.Changed(modelFlagName) {
		options.tokenModel = loadedConfiguration.Tokens.Model
	}
	return nil
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var writeGlobal bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  force,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Printf(initializedMessageFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&writeGlobal, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// buildTraversalConfig converts flag values into the traversal snapshot. A
// zero depth or cap flag means unlimited and maps to a nil pointer.
func buildTraversalConfig(options commandOptions) (traverse.TraversalConfig, error) {
	traversalConfig := traverse.TraversalConfig{
		ShowHidden:       options.showHidden,
		ExtraExcludes:    utils.DeduplicatePatterns(options.excludePatterns),
		RespectGitignore: !options.disableGitignore,
		NoFiles:          options.noFiles,
		IncludePatterns:  utils.DeduplicatePatterns(options.includePatterns),
		IncludeFileTypes: utils.DeduplicatePatterns(options.includeFileTypes),
		FilesFirst:       options.filesFirst,
	}
	if options.maxDepth > 0 {
		maxDepth := options.maxDepth
		traversalConfig.MaxDepth = &maxDepth
	}
	if options.excludeDepth > 0 {
		excludeDepth := options.excludeDepth
		traversalConfig.ExcludeDepth = &excludeDepth
	}
	if options.gitignoreDepth > 0 {
		gitignoreDepth := options.gitignoreDepth
		traversalConfig.GitignoreDepth = &gitignoreDepth
	}
	if !options.noLimit {
		maxItems := options.maxItems
		if validationError := traverse.ValidateMaxItems(&maxItems); validationError != nil {
			return traverse.TraversalConfig{}, validationError
		}
		traversalConfig.MaxItems = &maxItems
	}
	return traversalConfig, nil
}

// runTree orchestrates one invocation: traversal, rendering, and the
// requested side outputs.
func runTree(paths []string, options commandOptions) error {
	loggerInstance, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		return loggerError
	}
	defer loggerInstance.Sync()

	validatedPaths, pathValidationError := resolveAndValidatePaths(paths)
	if pathValidationError != nil {
		return pathValidationError
	}

	traversalConfig, configError := buildTraversalConfig(options)
	if configError != nil {
		return configError
	}

	var whitelists map[string]map[string]struct{}
	if options.interactive {
		directoryRoots := make([]string, 0, len(validatedPaths))
		for _, validatedPath := range validatedPaths {
			if validatedPath.IsDir {
				directoryRoots = append(directoryRoots, validatedPath.AbsolutePath)
			}
		}
		selectedWhitelists, selectionError := selection.SelectWhitelists(directoryRoots, traversalConfig)
		if selectionError != nil {
			return selectionError
		}
		whitelists = selectedWhitelists
		validatedPaths = selectedRoots(validatedPaths, whitelists)
		if len(validatedPaths) == 0 {
			return nil
		}
	}

	var tokenCounter tokenizer.Counter
	if options.tokensEnabled {
		createdCounter, _, counterError := tokenizer.NewCounter(options.tokenModel)
		if counterError != nil {
			return counterError
		}
		tokenCounter = createdCounter
	}

	var renderedOutput strings.Builder
	var firstWalkError error
	for pathIndex, validatedPath := range validatedPaths {
		if pathIndex > 0 {
			renderedOutput.WriteString("\n")
		}
		if walkError := renderTreeForPath(&renderedOutput, validatedPath, traversalConfig, whitelistForRoot(whitelists, validatedPath), options); walkError != nil {
			loggerInstance.Warn(warningPathSkippedMessage, zap.String("path", validatedPath.AbsolutePath), zap.Error(walkError))
			if firstWalkError == nil {
				firstWalkError = walkError
			}
		}
	}

	if options.summary {
		for _, validatedPath := range validatedPaths {
			if !validatedPath.IsDir {
				continue
			}
			if summaryError := render.WriteSummary(&renderedOutput, validatedPath.AbsolutePath, traversalConfig); summaryError != nil {
				return summaryError
			}
		}
	}

	if tokenCounter != nil {
		totalTokens, countError := countTotalTokens(validatedPaths, traversalConfig, whitelists, tokenCounter)
		if countError != nil {
			return countError
		}
		renderedOutput.WriteString(fmt.Sprintf(tokenTotalFormat, tokenCounter.Name(), totalTokens))
	}

	fmt.Print(renderedOutput.String())

	if options.outputPath != "" {
		if writeError := writeRenderedOutput(options.outputPath, renderedOutput.String()); writeError != nil {
			return writeError
		}
	}

	if options.copyToClipboard {
		clipboardService := clipboard.NewService()
		if copyError := clipboardService.CopyOutput(renderedOutput.String()); copyError != nil {
			loggerInstance.Warn(warningCopyFailedMessage, zap.Error(copyError))
		}
	}

	if options.jsonPath != "" || options.textPath != "" || options.markdownPath != "" {
		if exportError := writeStructuredExports(validatedPaths, traversalConfig, whitelists, tokenCounter, options); exportError != nil {
			return exportError
		}
	}

	if options.zipPath != "" {
		zipError := export.WriteZipArchive(export.ZipOptions{
			ArchivePath: options.zipPath,
			Roots:       validatedPaths,
			Config:      traversalConfig,
			Whitelists:  whitelists,
			Logger:      loggerInstance,
		})
		if zipError != nil {
			return zipError
		}
	}

	return firstWalkError
}

// renderTreeForPath draws one root into the shared output buffer.
func renderTreeForPath(
	outputBuffer *strings.Builder,
	validatedPath types.ValidatedPath,
	traversalConfig traverse.TraversalConfig,
	whitelist map[string]struct{},
	options commandOptions,
) error {
	treeRenderer := render.NewTreeRenderer(outputBuffer, options.emoji)
	if rootError := treeRenderer.WriteRoot(rootDisplayName(validatedPath)); rootError != nil {
		return rootError
	}
	if !validatedPath.IsDir {
		return nil
	}
	walker := traverse.NewWalker(traverse.Options{
		Root:      validatedPath.AbsolutePath,
		Config:    traversalConfig,
		Whitelist: whitelist,
	})
	return walker.Walk(true, treeRenderer.Handler())
}

// rootDisplayName formats the root line of one tree. The root renders as its
// bare base name in every mode; connectors, icons, and the directory suffix
// apply only to entries below it.
func rootDisplayName(validatedPath types.ValidatedPath) string {
	return filepath.Base(validatedPath.AbsolutePath)
}

// selectedRoots keeps file roots as given and drops every directory root the
// interactive selection left without files.
func selectedRoots(validatedPaths []types.ValidatedPath, whitelists map[string]map[string]struct{}) []types.ValidatedPath {
	kept := make([]types.ValidatedPath, 0, len(validatedPaths))
	for _, validatedPath := range validatedPaths {
		if validatedPath.IsDir {
			if _, chosen := whitelists[validatedPath.AbsolutePath]; !chosen {
				continue
			}
		}
		kept = append(kept, validatedPath)
	}
	return kept
}

// whitelistForRoot returns the selection set for one root, nil when the root
// is unrestricted.
func whitelistForRoot(whitelists map[string]map[string]struct{}, validatedPath types.ValidatedPath) map[string]struct{} {
	if whitelists == nil {
		return nil
	}
	return whitelists[validatedPath.AbsolutePath]
}

// writeRenderedOutput writes the tree text to a file, fencing it as a code
// block when the destination is markdown.
func writeRenderedOutput(outputPath string, renderedOutput string) error {
	content := renderedOutput
	if strings.EqualFold(filepath.Ext(outputPath), markdownOutputExtension) {
		content = "```\n" + strings.TrimRight(renderedOutput, "\n") + "\n```\n"
	}
	if writeError := os.WriteFile(outputPath, []byte(content), 0o644); writeError != nil {
		return fmt.Errorf(errorOutputWriteFormat, outputPath, writeError)
	}
	return nil
}

// writeStructuredExports materializes the data tree for the last root and
// writes every requested export file.
func writeStructuredExports(
	validatedPaths []types.ValidatedPath,
	traversalConfig traverse.TraversalConfig,
	whitelists map[string]map[string]struct{},
	tokenCounter tokenizer.Counter,
	options commandOptions,
) error {
	exportRoot := validatedPaths[len(validatedPaths)-1]
	includeContents := !options.noContents

	builder := render.NewDataTreeBuilder(filepath.Base(exportRoot.AbsolutePath), render.DataTreeOptions{
		IncludeContents: includeContents,
		TokenCounter:    tokenCounter,
	})
	walker := traverse.NewWalker(traverse.Options{
		Root:      exportRoot.AbsolutePath,
		Config:    traversalConfig,
		Whitelist: whitelistForRoot(whitelists, exportRoot),
	})
	if !exportRoot.IsDir {
		rootNode := builder.Root()
		rootNode.Type = types.NodeTypeFile
		rootNode.Children = nil
		rootNode.Path = filepath.Base(exportRoot.AbsolutePath)
		if includeContents {
			contents := render.ReadFileContents(exportRoot.AbsolutePath, render.DefaultMaxContentBytes)
			rootNode.Contents = &contents
		}
	} else if walkError := walker.Walk(true, builder.Handler()); walkError != nil {
		return walkError
	}

	return export.WriteFiles(builder.Root(), export.Targets{
		JSONPath:     options.jsonPath,
		TextPath:     options.textPath,
		MarkdownPath: options.markdownPath,
	}, options.emoji, includeContents)
}

// countTotalTokens tallies token counts over every admitted file.
func countTotalTokens(
	validatedPaths []types.ValidatedPath,
	traversalConfig traverse.TraversalConfig,
	whitelists map[string]map[string]struct{},
	tokenCounter tokenizer.Counter,
) (int, error) {
	totalTokens := 0
	for _, validatedPath := range validatedPaths {
		walker := traverse.NewWalker(traverse.Options{
			Root:      validatedPath.AbsolutePath,
			Config:    traversalConfig,
			Whitelist: whitelistForRoot(whitelists, validatedPath),
		})
		walkError := walker.Walk(validatedPath.IsDir, func(event traverse.Event) error {
			if event.Kind != traverse.EventFile {
				return nil
			}
			if countResult, countError := tokenizer.CountFile(tokenCounter, event.Entry.Path); countError == nil && countResult.Counted {
				totalTokens += countResult.Tokens
			}
			return nil
		})
		if walkError != nil {
			return 0, walkError
		}
	}
	return totalTokens, nil
}

// resolveAndValidatePaths converts input paths to absolute form and validates their existence.
func resolveAndValidatePaths(inputs []string) ([]types.ValidatedPath, error) {
	seen := make(map[string]struct{})
	var result []types.ValidatedPath
	for _, inputPath := range inputs {
		absolutePath, absolutePathError := filepath.Abs(inputPath)
		if absolutePathError != nil {
			return nil, fmt.Errorf(errorAbsolutePathFormat, inputPath, absolutePathError)
		}
		cleanPath := filepath.Clean(absolutePath)
		if _, ok := seen[cleanPath]; ok {
			continue
		}
		pathInfo, fileStatusError := os.Stat(cleanPath)
		if fileStatusError != nil {
			if os.IsNotExist(fileStatusError) {
				return nil, fmt.Errorf(errorPathMissingFormat, inputPath)
			}
			return nil, fmt.Errorf(errorStatFormat, inputPath, fileStatusError)
		}
		seen[cleanPath] = struct{}{}
		result = append(result, types.ValidatedPath{AbsolutePath: cleanPath, IsDir: pathInfo.IsDir()})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf(errorNoValidPaths)
	}
	return result, nil
}
