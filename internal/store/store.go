package store

import (
	"path/filepath"
	"sync"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/params"
	"github.com/inovacc/linkr/internal/secret"
)

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error
	Close() error

	// Repository records
	SaveRepo(repo *model.Repository) error
	GetRepo(id string) (*model.Repository, error)
	ListRepos() ([]model.Repository, error)
	DeleteRepo(id string) error
	RepoExists(id string) (bool, error)

	// Profiles
	SaveProfile(profile *model.Profile) error
	GetProfile(name string) (*model.Profile, error)
	ListProfiles() ([]model.Profile, error)
	DeleteProfile(name string) error
	ProfileExists(name string) (bool, error)

	// Token table (domain -> secret, sealed at rest)
	SetToken(domain, token string) error
	GetToken(domain string) (string, error)
	GetTokens() (map[string]string, error)
	ListTokenDomains() ([]string, error)
	DeleteToken(domain string) error

	// Last-used markers
	GetState() (*model.State, error)
	SaveState(state *model.State) error
}

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized database store.
func GetDB() Store {
	once.Do(lazyInit)

	return db
}

func lazyInit() {
	sealer, err := secret.LoadOrCreate(filepath.Join(params.AppdataDir, "linkr.key"))
	if err != nil {
		panic(err)
	}

	instance, err := initDB(params.AppdataDir, sealer)
	if err != nil {
		panic(err)
	}

	_ = instance.Ping()
	db = instance
}
