package gate

// Client route paths. They match the web client's routing table so redirect
// targets mean the same thing on both.
const (
	RouteHome               = "/"
	RouteJobs               = "/jobs"
	RouteJobDetails         = "/jobs/{id}"
	RouteLogin              = "/login"
	RouteRegister           = "/register"
	RouteEmployerDashboard  = "/employer/dashboard"
	RouteJobSeekerDashboard = "/jobseeker/dashboard"
)
