package main

import (
	"database/sql"
	"padeltour-server/internal/config"
	"padeltour-server/pkg/db"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	if config.Instance().Storage != config.StoragePostgres {
		logrus.WithField("storage", config.Instance().Storage).Info("nothing to migrate")
		return
	}

	waitForDB()
	db.Migrate()
}

func waitForDB() {
	timeout := time.NewTimer(time.Second * 30)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return
			}

			logrus.Debug("waiting for database")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
