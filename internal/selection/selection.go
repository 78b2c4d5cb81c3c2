// Package selection implements the interactive file whitelist picker.
package selection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/temirov/gitree/internal/traverse"
	"github.com/temirov/gitree/internal/utils"
)

// candidate is one selectable file, shown by its root-relative path.
type candidate struct {
	absolutePath string
	displayPath  string
}

// CollectCandidateFiles walks every root with the item limit lifted and
// returns the files the active filters admit, in display order.
func CollectCandidateFiles(roots []string, config traverse.TraversalConfig) ([]string, []string, error) {
	uncappedConfig := config.WithoutItemLimit()
	var candidates []candidate

	for _, rootPath := range roots {
		walker := traverse.NewWalker(traverse.Options{Root: rootPath, Config: uncappedConfig})
		walkError := walker.Walk(true, func(event traverse.Event) error {
			if event.Kind != traverse.EventFile {
				return nil
			}
			candidates = append(candidates, candidate{
				absolutePath: event.Entry.Path,
				displayPath:  utils.RelativePathOrSelf(event.Entry.Path, rootPath),
			})
			return nil
		})
		if walkError != nil {
			return nil, nil, walkError
		}
	}

	sort.SliceStable(candidates, func(firstIndex, secondIndex int) bool {
		return candidates[firstIndex].displayPath < candidates[secondIndex].displayPath
	})

	absolutePaths := make([]string, len(candidates))
	displayPaths := make([]string, len(candidates))
	for candidateIndex, selectable := range candidates {
		absolutePaths[candidateIndex] = selectable.absolutePath
		displayPaths[candidateIndex] = selectable.displayPath
	}
	return absolutePaths, displayPaths, nil
}

// SelectWhitelists presents each root's candidate files in its own fuzzy
// finder prompt and returns the chosen absolute paths keyed by root path.
// A root with no candidates, or one where the user confirmed an empty
// selection, is absent from the result: that root is skipped entirely. An
// aborted prompt keeps its root present with a nil set, leaving the root
// unrestricted.
func SelectWhitelists(roots []string, config traverse.TraversalConfig) (map[string]map[string]struct{}, error) {
	whitelists := make(map[string]map[string]struct{}, len(roots))

	for _, rootPath := range roots {
		absolutePaths, displayPaths, collectError := CollectCandidateFiles([]string{rootPath}, config)
		if collectError != nil {
			return nil, collectError
		}
		if len(absolutePaths) == 0 {
			continue
		}

		selectedIndexes, findError := fuzzyfinder.FindMulti(
			displayPaths,
			func(itemIndex int) string {
				return displayPaths[itemIndex]
			},
		)
		if findError != nil {
			if errors.Is(findError, fuzzyfinder.ErrAbort) {
				whitelists[rootPath] = nil
				continue
			}
			return nil, fmt.Errorf("selecting files: %w", findError)
		}
		if len(selectedIndexes) == 0 {
			continue
		}

		whitelist := make(map[string]struct{}, len(selectedIndexes))
		for _, selectedIndex := range selectedIndexes {
			whitelist[absolutePaths[selectedIndex]] = struct{}{}
		}
		whitelists[rootPath] = whitelist
	}
	return whitelists, nil
}
