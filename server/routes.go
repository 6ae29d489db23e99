package server

import (
	"net/http"

	"github.com/jrsteele09/go-jobboard/sessions"
)

func (s *Server) initRoutes() {
	public := s.APIMiddleware()
	authed := s.APIMiddleware(s.RequireAuth())
	employer := s.APIMiddleware(s.RequireAuth(), s.RequireAccountType(sessions.AccountEmployer))
	seeker := s.APIMiddleware(s.RequireAuth(), s.RequireAccountType(sessions.AccountJobSeeker))

	// Jobs
	s.RegisterRouteHandler("GET "+RouteJobs, ChainMiddleware(s.ListJobsHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteJob, ChainMiddleware(s.GetJobHandler(), public...))
	s.RegisterRouteHandler("GET "+RouteJobsByEmployer, ChainMiddleware(s.EmployerJobsHandler(), authed...))
	s.RegisterRouteHandler("POST "+RouteJobsCreate, ChainMiddleware(s.CreateJobHandler(), employer...))
	s.RegisterRouteHandler("PUT "+RouteJob, ChainMiddleware(s.UpdateJobHandler(), employer...))
	s.RegisterRouteHandler("DELETE "+RouteJob, ChainMiddleware(s.DeleteJobHandler(), employer...))

	// Accounts
	s.RegisterRouteHandler("POST "+RouteJobSeekerLogin, ChainMiddleware(s.LoginHandler(sessions.AccountJobSeeker), public...))
	s.RegisterRouteHandler("POST "+RouteEmployerLogin, ChainMiddleware(s.LoginHandler(sessions.AccountEmployer), public...))
	s.RegisterRouteHandler("POST "+RouteJobSeekerReg, ChainMiddleware(s.RegisterHandler(sessions.AccountJobSeeker), public...))
	s.RegisterRouteHandler("POST "+RouteEmployerReg, ChainMiddleware(s.RegisterHandler(sessions.AccountEmployer), public...))
	s.RegisterRouteHandler("POST "+RouteEmployerGet, ChainMiddleware(s.GetEmployerHandler(), public...))

	// Applications
	s.RegisterRouteHandler("POST "+RouteJobSeekerApply, ChainMiddleware(s.ApplyHandler(), seeker...))
	s.RegisterRouteHandler("POST "+RouteJobSeekerApplied, ChainMiddleware(s.AppliedJobsHandler(), seeker...))
	s.RegisterRouteHandler("POST "+RouteEmployerApps, ChainMiddleware(s.EmployerApplicationsHandler(), employer...))
	s.RegisterRouteHandler("PUT "+RouteEmployerApp, ChainMiddleware(s.UpdateApplicationStatusHandler(), employer...))

	// Preflight for every API path
	s.RegisterRouteHandler("OPTIONS /api/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {}, public...))
}
