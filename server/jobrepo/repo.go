package jobrepo

import "github.com/jrsteele09/go-jobboard/api"

// Filter narrows List. Empty fields match everything.
type Filter struct {
	Search     string // case-insensitive match on title, description or company name
	Category   string // case-insensitive exact match
	ID         string
	EmployerID string
}

type Repo interface {
	Insert(job api.Job) (api.Job, error)
	Update(job api.Job) (api.Job, error)
	Delete(id string) error
	Get(id string) (api.Job, error)
	List(filter Filter) ([]api.Job, error)
}
