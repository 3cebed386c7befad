// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/api"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/usecase"
	"go.uber.org/zap"
)

var _ api.ServerInterface = (*Handler)(nil)

// Handler implements api.ServerInterface using service layer interfaces.
type Handler struct {
	log       *zap.SugaredLogger
	uc        usecase.InterfaceUsecase
	indexPath string
}

// NewHandler constructs an HTTP server with service dependencies.
// indexPath is where GET / redirects to.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, indexPath string) *Handler {
	return &Handler{
		log:       log.Named("http"),
		uc:        usecase,
		indexPath: indexPath,
	}
}
