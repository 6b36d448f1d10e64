package state

import (
	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/graphql"
)

type State struct {
	Client *graphql.Client
	Config config.Configuration
}
