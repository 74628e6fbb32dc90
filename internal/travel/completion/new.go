package completion

import (
	"travel-planner/pkg/llmprovider"
	pkgLog "travel-planner/pkg/log"
)

type implService struct {
	llm llmprovider.Provider
	l   pkgLog.Logger
}

var _ Service = (*implService)(nil)

// New creates a completion Service backed by a provider (usually a llmprovider.Manager).
func New(llm llmprovider.Provider, l pkgLog.Logger) *implService {
	return &implService{llm: llm, l: l}
}
