package http

import (
	"time"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/service"
)

// sessionCookie holds the parameters of the session cookie issued on login.
type sessionCookie struct {
	Name string
	TTL  time.Duration
}

type Handler struct {
	services *service.Services
	cookie   sessionCookie

	logger *logger.Logger
}

// NewHandler wires the REST API to the service layer. cookieName and
// cookieTTL come from the credential store's cookie section.
func NewHandler(services *service.Services, cookieName string, cookieTTL time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie:   sessionCookie{Name: cookieName, TTL: cookieTTL},
		logger:   logger,
	}
}
