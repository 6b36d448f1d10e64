package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/graphql"
	service "github.com/openlobby/olapp/internal/service/impl"
	"github.com/openlobby/olapp/internal/state"
	"github.com/openlobby/olapp/internal/web"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	client := graphql.NewClient(config.ApiURL, &http.Client{})
	manager := scs.NewCookieManager(config.SessionSecret)
	manager.Secure(!config.Debug)

	state := state.State{
		Client: client,
		Config: config,
	}
	service := service.New(&state)

	handler := web.New(&config, service, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", config.Port).Str("api", config.ApiURL).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
