package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-jobboard/internal/config"
	"github.com/jrsteele09/go-jobboard/server/applicationrepo"
	"github.com/jrsteele09/go-jobboard/server/jobrepo"
	"github.com/jrsteele09/go-jobboard/token"
	"github.com/jrsteele09/go-jobboard/token/jwt"
	"github.com/jrsteele09/go-jobboard/users"
	fakeuserrepo "github.com/jrsteele09/go-jobboard/users/repofake"
	"github.com/rs/zerolog/log"
)

// Repos groups the stores behind the mock backend
type Repos struct {
	Users        users.UserRepo
	Jobs         jobrepo.Repo
	Applications applicationrepo.Repo
}

// NewInMemoryRepos returns empty in-memory stores
func NewInMemoryRepos() Repos {
	return Repos{
		Users:        fakeuserrepo.NewFakeUserRepo(),
		Jobs:         jobrepo.NewInMemoryJobRepo(),
		Applications: applicationrepo.NewInMemoryApplicationRepo(),
	}
}

// Server is an in-memory stand-in for the job board REST API. It serves the
// same endpoints with the same JSON shapes so the client can run locally.
type Server struct {
	env     string
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	repos   Repos
	signer  token.Signer
	creator *jwt.Creator
}

func New(cfg config.Config, repos Repos) *Server {
	signer := token.NewHMACSigner(cfg.GetMockSecret())
	s := &Server{
		env:     cfg.GetEnv(),
		mux:     http.NewServeMux(),
		config:  cfg,
		repos:   repos,
		signer:  signer,
		creator: jwt.NewCreator(signer, cfg.GetMockTokenExpiry()),
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		method, path, ok := strings.Cut(route, " ")
		if !ok {
			method, path = "", route
		}
		log.Debug().Str("method", method).Str("path", path).Msg("Route registered")
	}
}
