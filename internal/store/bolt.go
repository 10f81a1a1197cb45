//go:build !sqlite

package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/secret"
	"go.etcd.io/bbolt"
)

const (
	boltBucketRepos    = "repos"    // key: record ID -> Repository JSON
	boltBucketProfiles = "profiles" // key: profile name -> Profile JSON
	boltBucketTokens   = "tokens"   // key: domain -> sealed token bytes
	boltBucketState    = "state"    // key: "state" -> State JSON
)

const stateKey = "state"

type Bolt struct {
	db     *bbolt.DB
	sealer *secret.Sealer
}

func initDB(dir string, sealer *secret.Sealer) (Store, error) {
	path := filepath.Join(dir, "linkr.bolt")

	return NewBolt(path, sealer)
}

// NewBolt opens (or creates) a bolt store at path.
func NewBolt(path string, sealer *secret.Sealer) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{boltBucketRepos, boltBucketProfiles, boltBucketTokens, boltBucketState} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db, sealer: sealer}, nil
}

func (b *Bolt) Ping() error {
	return b.db.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) SaveRepo(repo *model.Repository) error {
	if repo == nil || repo.ID == "" {
		return errors.New("repository id is required")
	}

	if repo.UID == "" {
		repo.UID = uuid.New().String()
	}

	if repo.CreatedAt.IsZero() {
		repo.CreatedAt = time.Now()
	}

	repo.UpdatedAt = time.Now()

	stored := *repo

	if stored.Token != "" {
		sealed, err := b.sealer.Seal(stored.Token)
		if err != nil {
			return err
		}

		stored.Token = encodeSealed(sealed)
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRepos)).Put([]byte(repo.ID), data)
	})
}

func (b *Bolt) GetRepo(id string) (*model.Repository, error) {
	var repo *model.Repository

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketRepos)).Get([]byte(id))
		if v == nil {
			return nil
		}

		var r model.Repository

		if err := json.Unmarshal(v, &r); err != nil {
			return err
		}

		repo = &r

		return nil
	})
	if err != nil {
		return nil, err
	}

	if repo != nil && repo.Token != "" {
		token, err := b.openSealed(repo.Token)
		if err != nil {
			return nil, err
		}

		repo.Token = token
	}

	return repo, nil
}

func (b *Bolt) ListRepos() ([]model.Repository, error) {
	var out []model.Repository

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRepos)).ForEach(func(k, v []byte) error {
			var r model.Repository

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			// listing never exposes tokens
			r.Token = ""

			out = append(out, r)

			return nil
		})
	})

	return out, err
}

func (b *Bolt) DeleteRepo(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRepos)).Delete([]byte(id))
	})
}

func (b *Bolt) RepoExists(id string) (bool, error) {
	var exists bool

	err := b.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket([]byte(boltBucketRepos)).Get([]byte(id)) != nil

		return nil
	})

	return exists, err
}

func (b *Bolt) SaveProfile(profile *model.Profile) error {
	if profile == nil || profile.Name == "" {
		return errors.New("profile name is required")
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}

	stored := *profile

	if stored.Token != "" {
		sealed, err := b.sealer.Seal(stored.Token)
		if err != nil {
			return err
		}

		stored.Token = encodeSealed(sealed)
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketProfiles)).Put([]byte(profile.Name), data)
	})
}

func (b *Bolt) GetProfile(name string) (*model.Profile, error) {
	var profile *model.Profile

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketProfiles)).Get([]byte(name))
		if v == nil {
			return nil
		}

		var p model.Profile

		if err := json.Unmarshal(v, &p); err != nil {
			return err
		}

		profile = &p

		return nil
	})
	if err != nil {
		return nil, err
	}

	if profile != nil && profile.Token != "" {
		token, err := b.openSealed(profile.Token)
		if err != nil {
			return nil, err
		}

		profile.Token = token
	}

	return profile, nil
}

func (b *Bolt) ListProfiles() ([]model.Profile, error) {
	var out []model.Profile

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketProfiles)).ForEach(func(k, v []byte) error {
			var p model.Profile

			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}

			p.Token = ""

			out = append(out, p)

			return nil
		})
	})

	return out, err
}

func (b *Bolt) DeleteProfile(name string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketProfiles)).Delete([]byte(name))
	})
}

func (b *Bolt) ProfileExists(name string) (bool, error) {
	var exists bool

	err := b.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket([]byte(boltBucketProfiles)).Get([]byte(name)) != nil

		return nil
	})

	return exists, err
}

func (b *Bolt) SetToken(domain, token string) error {
	if domain == "" {
		return errors.New("domain is required")
	}

	sealed, err := b.sealer.Seal(token)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketTokens)).Put([]byte(domain), sealed)
	})
}

func (b *Bolt) GetToken(domain string) (string, error) {
	var sealed []byte

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketTokens)).Get([]byte(domain))
		if v != nil {
			sealed = append([]byte(nil), v...)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	if sealed == nil {
		return "", nil
	}

	return b.sealer.Open(sealed)
}

func (b *Bolt) GetTokens() (map[string]string, error) {
	out := make(map[string]string)

	sealed := make(map[string][]byte)

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketTokens)).ForEach(func(k, v []byte) error {
			sealed[string(k)] = append([]byte(nil), v...)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	for domain, data := range sealed {
		token, err := b.sealer.Open(data)
		if err != nil {
			return nil, err
		}

		out[domain] = token
	}

	return out, nil
}

func (b *Bolt) ListTokenDomains() ([]string, error) {
	var out []string

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketTokens)).ForEach(func(k, v []byte) error {
			out = append(out, string(k))

			return nil
		})
	})

	return out, err
}

func (b *Bolt) DeleteToken(domain string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketTokens)).Delete([]byte(domain))
	})
}

func (b *Bolt) GetState() (*model.State, error) {
	state := &model.State{}

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketState)).Get([]byte(stateKey))
		if v == nil {
			return nil
		}

		return json.Unmarshal(v, state)
	})

	return state, err
}

func (b *Bolt) SaveState(state *model.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketState)).Put([]byte(stateKey), data)
	})
}

func (b *Bolt) openSealed(encoded string) (string, error) {
	data, err := decodeSealed(encoded)
	if err != nil {
		return "", err
	}

	return b.sealer.Open(data)
}
