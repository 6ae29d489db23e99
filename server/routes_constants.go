package server

import "github.com/jrsteele09/go-jobboard/api"

// Route patterns served by the mock backend
const (
	RouteJobs             = api.PathJobs
	RouteJob              = api.PathJobs + "/{id}"
	RouteJobsCreate       = api.PathJobsCreate
	RouteJobsByEmployer   = api.PathJobsByEmployer + "{id}"
	RouteJobSeekerLogin   = api.PathJobSeekerLogin
	RouteJobSeekerReg     = api.PathJobSeekerRegister
	RouteJobSeekerApply   = api.PathJobSeekerApply
	RouteJobSeekerApplied = api.PathJobSeekerAppliedJobs
	RouteEmployerLogin    = api.PathEmployerLogin
	RouteEmployerReg      = api.PathEmployerRegister
	RouteEmployerApps     = api.PathEmployerApplications
	RouteEmployerGet      = api.PathEmployerGet
	RouteEmployerApp      = api.PathEmployerApplication + "{id}"
)
