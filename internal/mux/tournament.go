package mux

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"padeltour-server/internal/rng"
	"padeltour-server/internal/util"
	"padeltour-server/pkg/americana"
	"padeltour-server/pkg/model"
	"padeltour-server/pkg/tournament"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// tournamentSummary is a list entry, without the groups and rounds
type tournamentSummary struct {
	UUID       string       `json:"uuid"`
	Name       string       `json:"name"`
	Format     model.Format `json:"format"`
	CourtCount int          `json:"courtCount"`
	Groups     int          `json:"groups"`
	Rounds     int          `json:"rounds"`
	Created    time.Time    `json:"created"`
	Updated    time.Time    `json:"updated"`
}

func (m *Mux) getTournament() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		tournaments, err := m.store.List(r.Context(), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		summaries := make([]tournamentSummary, len(tournaments))
		for i, t := range tournaments {
			summaries[i] = tournamentSummary{
				UUID:       t.UUID,
				Name:       t.Name,
				Format:     t.Format,
				CourtCount: t.CourtCount,
				Groups:     len(t.Groups),
				Rounds:     len(t.Rounds),
				Created:    t.Created,
				Updated:    t.Updated,
			}
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

type postTournamentPayload struct {
	Name          string            `json:"name"`
	Format        model.Format      `json:"format"`
	CourtCount    int               `json:"courtCount"`
	FixedPartners *bool             `json:"fixedPartners"`
	Shuffle       bool              `json:"shuffle"`
	Pairs         []tournament.Pair `json:"pairs"`
}

func (m *Mux) postTournament() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTournamentPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Name == "" {
			pp.Name = util.GetRandomName()
		}

		if len(pp.Name) > 80 {
			writeJSONError(w, http.StatusBadRequest, errors.New("name cannot be longer than 80 characters"))
			return
		}

		if pp.Shuffle {
			rng.Shuffle(m.rng, len(pp.Pairs), func(i, j int) {
				pp.Pairs[i], pp.Pairs[j] = pp.Pairs[j], pp.Pairs[i]
			})
		}

		var t *model.Tournament
		var err error
		switch pp.Format {
		case model.FormatGroups:
			courtCount := pp.CourtCount
			if courtCount == 0 {
				courtCount = m.options.courtCount
			}

			t, err = model.NewGroupsTournament(pp.Name, pp.Pairs, courtCount)
		case model.FormatAmericana:
			fixed := m.options.fixedPartners
			if pp.FixedPartners != nil {
				fixed = *pp.FixedPartners
			}

			var setup []americana.CourtSetup
			setup, err = courtSetup(pp.Pairs)
			if err == nil {
				t, err = model.NewAmericanaTournament(pp.Name, setup, fixed)
			}
		default:
			err = model.UserError(fmt.Sprintf("format must be %s or %s", model.FormatGroups, model.FormatAmericana))
		}

		if err != nil {
			writeModelError(w, err)
			return
		}

		if err := m.store.Create(r.Context(), t); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"uuid":   t.UUID,
			"format": t.Format,
			"admin":  r.Context().Value(ctxAdminKey),
		}).Info("tournament created")

		writeJSON(w, http.StatusCreated, t)
	}
}

// courtSetup puts the pairs two by two on courts 1, 2, 3...
func courtSetup(pairs []tournament.Pair) ([]americana.CourtSetup, error) {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return nil, model.UserError("an even number of pairs is required")
	}

	setup := make([]americana.CourtSetup, len(pairs)/2)
	for i := range setup {
		setup[i] = americana.CourtSetup{
			CourtNumber: i + 1,
			Pair1:       pairs[i*2],
			Pair2:       pairs[i*2+1],
		}
	}

	return setup, nil
}

func (m *Mux) getTournamentUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := r.Context().Value(ctxTournamentKey).(*model.Tournament)
		writeJSON(w, http.StatusOK, t)
	})
}

func (m *Mux) getTournamentUUIDStandings() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := r.Context().Value(ctxTournamentKey).(*model.Tournament)
		writeJSON(w, http.StatusOK, t.Standings())
	})
}

type scorePayload struct {
	Score1 tournament.Score `json:"score1"`
	Score2 tournament.Score `json:"score2"`
}

// execute runs fn in the tournament's run loop and writes the updated tournament
func (m *Mux) execute(w http.ResponseWriter, r *http.Request, statusCode int, fn func(t *model.Tournament) error) {
	uuid := strings.ToLower(mux.Vars(r)["uuid"])
	t, err := m.director.Execute(r.Context(), uuid, fn)
	if err != nil {
		writeModelError(w, err)
		return
	}

	writeJSON(w, statusCode, t)
}

func (m *Mux) postTournamentUUIDGroupMatch() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		groupID, _ := strconv.Atoi(vars["id"])
		index, _ := strconv.Atoi(vars["index"])

		var sp scorePayload
		if !decodeRequest(w, r, &sp) {
			return
		}

		m.execute(w, r, http.StatusOK, func(t *model.Tournament) error {
			return t.SetMatchScore(groupID, index, sp.Score1, sp.Score2)
		})
	})
}

func (m *Mux) postTournamentUUIDCourt() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		number, _ := strconv.Atoi(mux.Vars(r)["number"])

		var sp scorePayload
		if !decodeRequest(w, r, &sp) {
			return
		}

		m.execute(w, r, http.StatusOK, func(t *model.Tournament) error {
			return t.SetCourtScore(number, sp.Score1, sp.Score2)
		})
	})
}

func (m *Mux) postTournamentUUIDRound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.execute(w, r, http.StatusCreated, func(t *model.Tournament) error {
			_, err := t.AdvanceRound()
			return err
		})
	})
}

func (m *Mux) tournamentMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := strings.ToLower(mux.Vars(r)["uuid"])
		t, err := m.store.Get(r.Context(), uuid)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTournamentKey, t)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
