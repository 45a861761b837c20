package mux

import (
	"context"
	"net/http"
	"padeltour-server/internal/config"
	"padeltour-server/internal/jwt"
	"padeltour-server/internal/rng"
	"padeltour-server/pkg/model"
	"padeltour-server/pkg/room"
	"strings"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxAdminKey ctxKey = iota
	ctxTournamentKey
)

const uuidPattern = "{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	options  options
	version  string
	store    model.Store
	director *room.Director
	rng      rng.Generator

	// store for testing purposes
	authRouter  *gmux.Router
	adminRouter *gmux.Router
}

type options struct {
	// isAdmin decides if the email from a valid token may change tournaments
	isAdmin       func(email string) bool
	courtCount    int
	fixedPartners bool
}

// NewMux returns a new HTTP mux
func NewMux(version string, store model.Store) *Mux {
	director := room.NewDirector(store)
	director.StartShift()

	cfg := config.Instance()
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		store:    store,
		director: director,
		rng:      rng.Crypto{},
		options: options{
			isAdmin:       cfg.IsAdmin,
			courtCount:    cfg.Tournament.CourtCount,
			fixedPartners: cfg.Tournament.FixedPartners,
		},
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	this.adminRouter = this.authRouter.NewRoute().Subrouter()
	this.adminRouter.Use(this.adminMiddleware)

	// requires admin access
	// depends on authMiddleware
	{
		r := this.adminRouter
		r.Methods(http.MethodPost).Path("/tournament").Handler(this.postTournament())

		tr := r.PathPrefix("/tournament/" + uuidPattern).Subrouter()
		tr.Methods(http.MethodPost).Path("/group/{id:[0-9]+}/match/{index:[0-9]+}").Handler(this.postTournamentUUIDGroupMatch())
		tr.Methods(http.MethodPost).Path("/court/{number:[0-9]+}").Handler(this.postTournamentUUIDCourt())
		tr.Methods(http.MethodPost).Path("/round").Handler(this.postTournamentUUIDRound())
	}

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/tournament").Handler(this.getTournament())

		tr := r.PathPrefix("/tournament/" + uuidPattern).Subrouter()
		tr.Use(this.tournamentMiddleware)

		tr.Methods(http.MethodGet).Path("").Handler(this.getTournamentUUID())
		tr.Methods(http.MethodGet).Path("/standings").Handler(this.getTournamentUUIDStandings())
		tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTournamentUUIDWS())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		email, err := jwt.ValidSubject(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxAdminKey, email)
		w.Header().Set("Padeltour-Admin", email)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// adminMiddleware requires authMiddleware to execute first
func (m *Mux) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Context().Value(ctxAdminKey).(string)
		if !m.options.isAdmin(email) {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Close stops the live update run loops
func (m *Mux) Close() {
	m.director.EndShift()
}
