package http

import (
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/internal/service"
	"github.com/MKhiriev/go-sales-keeper/internal/utils"
)

// Handler serves the sales-keeper REST API on top of [service.Services].
type Handler struct {
	services   *service.Services
	newTraceID func() string

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	return &Handler{
		services:   services,
		newTraceID: utils.NewTraceID,
		logger:     logger,
	}
}
