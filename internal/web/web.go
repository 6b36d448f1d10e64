package web

import (
	"github.com/alexedwards/scs"
	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/service"
)

const (
	LoginRoute   = "/login"
	AccountRoute = "/account"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
