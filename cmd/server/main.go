package main

import (
	"flag"
	"net/http"
	"os"
	"padeltour-server/internal/config"
	"padeltour-server/internal/jwt"
	"padeltour-server/internal/mux"
	"padeltour-server/pkg/db"
	"padeltour-server/pkg/model"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	jwt.LoadKeys()

	if len(config.Instance().Admins) == 0 {
		logrus.Warn("no admins are configured, tournaments cannot be created")
	}

	m := mux.NewMux(Version, newStore())
	defer m.Close()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"storage": config.Instance().Storage,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func newStore() model.Store {
	if config.Instance().Storage == config.StorageMemory {
		logrus.Warn("using in-memory storage, tournaments are lost on restart")
		return model.NewMemoryStore()
	}

	// run the db migrations
	db.Migrate()

	return model.NewPGStore(db.Instance())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
