package http

import (
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
)

// Handler serves the diary API on top of the server services.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{services: services, logger: logger}
	h.logger.Info().Msg("http handler created")
	return h
}
