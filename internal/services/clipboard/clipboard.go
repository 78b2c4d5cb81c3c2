// Package clipboard copies rendered tree output to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copier places rendered output on the system clipboard.
type Copier interface {
	CopyOutput(renderedOutput string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// CopyOutput writes renderedOutput to the system clipboard. On headless
// systems the underlying provider fails; callers degrade to a warning.
func (service *Service) CopyOutput(renderedOutput string) error {
	if writeError := clipboard.WriteAll(renderedOutput); writeError != nil {
		return fmt.Errorf("copying output to clipboard: %w", writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
