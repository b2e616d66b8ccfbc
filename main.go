package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/andrisoa/malsci/internal/api"
	"github.com/andrisoa/malsci/internal/config"
	db "github.com/andrisoa/malsci/internal/db/impl"
	"github.com/andrisoa/malsci/internal/feed"
	"github.com/andrisoa/malsci/internal/initialization"
	"github.com/andrisoa/malsci/internal/notification"
	"github.com/andrisoa/malsci/internal/queue"
	"github.com/andrisoa/malsci/internal/session"
	"github.com/andrisoa/malsci/internal/store"
	"github.com/andrisoa/malsci/internal/sync"
	"github.com/andrisoa/malsci/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	err = initialization.SetupDB(&config, d, config.MigrationsFolder, config.DbUrl)
	if err != nil {
		log.Fatal(err)
	}

	q, err := initialization.InitQueue(&config)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}

	secret := config.SessionSecret
	if secret == "" {
		// Sessions will not survive a restart without a configured secret.
		zero.Warn().Msg("no session secret configured, generating one")
		secret = uuid.NewString()
	}
	manager := scs.NewCookieManager(secret)

	dd := db.New(config, d)
	client := api.New(config.ApiBase, &http.Client{}, config.Debug)

	cred, err := session.Load(config.TokenPath)
	if err != nil {
		zero.Warn().Err(err).Msg("no stored credential, polling anonymously until login")
	}
	holder := session.NewHolder(cred)

	st, err := store.New(store.DefaultProfileCap)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	effects := queue.New(ctx, client, holder.Get, q)
	router := notification.NewRouter(effects)

	syncer := sync.New(feed.New(client), client, st, dd, effects, holder.Get)
	syncer.Start(ctx, config.PollInterval, config.PresenceInterval)
	defer syncer.Stop()

	handler := web.New(&config, client, st, effects, router, syncer, holder, manager)
	r := chi.NewRouter()
	handler.Mount(r)

	s := &http.Server{
		Addr:    config.Addr,
		Handler: r,
	}

	zero.Info().Str("addr", config.Addr).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
