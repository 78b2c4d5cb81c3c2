package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/temirov/gitree/internal/traverse"
)

// levelCounts accumulates the directory and file tallies of one depth level.
type levelCounts struct {
	directories int
	files       int
}

// WriteSummary walks the root a second time and prints how many directories
// and files exist at each depth level. The walk deliberately ignores the
// per-directory display cap, the depth limit, and any whitelist: the summary
// answers how many entries exist, not how many were shown.
func WriteSummary(writer io.Writer, root string, config traverse.TraversalConfig) error {
	summaryConfig := config.WithoutItemLimit()
	summaryConfig.MaxDepth = nil
	summaryConfig.ShowHidden = false
	summaryConfig.NoFiles = false
	summaryConfig.ExcludeDepth = nil

	counts := make(map[int]*levelCounts)
	walker := traverse.NewWalker(traverse.Options{Root: root, Config: summaryConfig})
	walkError := walker.Walk(true, func(event traverse.Event) error {
		switch event.Kind {
		case traverse.EventEnterDir:
			countsAtLevel(counts, event.Depth).directories++
		case traverse.EventFile:
			countsAtLevel(counts, event.Depth).files++
		}
		return nil
	})
	if walkError != nil {
		return walkError
	}

	if _, writeError := fmt.Fprintf(writer, "\nDirectory Summary:\n"); writeError != nil {
		return writeError
	}
	levels := make([]int, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	for _, level := range levels {
		if _, writeError := fmt.Fprintf(writer, "Level %d: %d dirs, %d files\n", level, counts[level].directories, counts[level].files); writeError != nil {
			return writeError
		}
	}
	return nil
}

func countsAtLevel(counts map[int]*levelCounts, level int) *levelCounts {
	if counts[level] == nil {
		counts[level] = &levelCounts{}
	}
	return counts[level]
}
