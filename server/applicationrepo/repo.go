package applicationrepo

import "github.com/jrsteele09/go-jobboard/api"

type Repo interface {
	// Insert stores a new application. A second application by the same
	// user to the same job fails with ErrDuplicate.
	Insert(app api.Application) (api.Application, error)
	Get(id string) (api.Application, error)
	SetStatus(id string, status api.ApplicationStatus) (api.Application, error)
	ListByUser(userID string) ([]api.Application, error)
	ListByEmployer(employerID string) ([]api.Application, error)
}
