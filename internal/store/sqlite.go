//go:build sqlite

package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/secret"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS repos (
	id TEXT PRIMARY KEY,
	uid TEXT NOT NULL,
	domain TEXT NOT NULL,
	owner TEXT NOT NULL,
	name TEXT NOT NULL,
	default_branch TEXT NOT NULL DEFAULT '',
	token BLOB,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS profiles (
	name TEXT PRIMARY KEY,
	domain TEXT NOT NULL DEFAULT '',
	format TEXT NOT NULL DEFAULT 'text',
	output_dir TEXT NOT NULL DEFAULT '',
	include_pattern TEXT NOT NULL DEFAULT '',
	exclude_pattern TEXT NOT NULL DEFAULT '',
	keep_clone INTEGER NOT NULL DEFAULT 0,
	token BLOB,
	created_at TIMESTAMP NOT NULL,
	last_used_at TIMESTAMP
);
CREATE TABLE IF NOT EXISTS tokens (
	domain TEXT PRIMARY KEY,
	token BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	last_profile TEXT NOT NULL DEFAULT '',
	last_repo TEXT NOT NULL DEFAULT ''
);
`

// Sqlite implements Store on a local SQLite database.
type Sqlite struct {
	db     *sql.DB
	sealer *secret.Sealer
}

func initDB(dir string, sealer *secret.Sealer) (Store, error) {
	path := filepath.Join(dir, "linkr.sqlite")

	return NewSqlite(path, sealer)
}

// NewSqlite opens (or creates) a sqlite store at path.
func NewSqlite(path string, sealer *secret.Sealer) (*Sqlite, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// single process, single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Sqlite{db: db, sealer: sealer}, nil
}

func (s *Sqlite) Ping() error {
	return s.db.Ping()
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}

func (s *Sqlite) sealToken(token string) ([]byte, error) {
	if token == "" {
		return nil, nil
	}

	return s.sealer.Seal(token)
}

func (s *Sqlite) openToken(sealed []byte) (string, error) {
	if len(sealed) == 0 {
		return "", nil
	}

	return s.sealer.Open(sealed)
}

func (s *Sqlite) SaveRepo(repo *model.Repository) error {
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

	sealed, err := s.sealToken(repo.Token)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO repos (id, uid, domain, owner, name, default_branch, token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET uid=excluded.uid, domain=excluded.domain, owner=excluded.owner,
			name=excluded.name, default_branch=excluded.default_branch, token=excluded.token, updated_at=excluded.updated_at`,
		repo.ID, repo.UID, repo.Domain, repo.Owner, repo.Name, repo.DefaultBranch, sealed, repo.CreatedAt, repo.UpdatedAt)

	return err
}

func (s *Sqlite) GetRepo(id string) (*model.Repository, error) {
	row := s.db.QueryRow(`SELECT id, uid, domain, owner, name, default_branch, token, created_at, updated_at FROM repos WHERE id = ?`, id)

	var (
		r      model.Repository
		sealed []byte
	)

	if err := row.Scan(&r.ID, &r.UID, &r.Domain, &r.Owner, &r.Name, &r.DefaultBranch, &sealed, &r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	token, err := s.openToken(sealed)
	if err != nil {
		return nil, err
	}

	r.Token = token

	return &r, nil
}

func (s *Sqlite) ListRepos() ([]model.Repository, error) {
	rows, err := s.db.Query(`SELECT id, uid, domain, owner, name, default_branch, created_at, updated_at FROM repos ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Repository

	for rows.Next() {
		var r model.Repository

		if err := rows.Scan(&r.ID, &r.UID, &r.Domain, &r.Owner, &r.Name, &r.DefaultBranch, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, rows.Err()
}

func (s *Sqlite) DeleteRepo(id string) error {
	_, err := s.db.Exec(`DELETE FROM repos WHERE id = ?`, id)

	return err
}

func (s *Sqlite) RepoExists(id string) (bool, error) {
	var n int

	if err := s.db.QueryRow(`SELECT COUNT(1) FROM repos WHERE id = ?`, id).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}

func (s *Sqlite) SaveProfile(profile *model.Profile) error {
	if profile == nil || profile.Name == "" {
		return errors.New("profile name is required")
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}

	sealed, err := s.sealToken(profile.Token)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO profiles (name, domain, format, output_dir, include_pattern, exclude_pattern, keep_clone, token, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET domain=excluded.domain, format=excluded.format, output_dir=excluded.output_dir,
			include_pattern=excluded.include_pattern, exclude_pattern=excluded.exclude_pattern,
			keep_clone=excluded.keep_clone, token=excluded.token, last_used_at=excluded.last_used_at`,
		profile.Name, profile.Domain, profile.Format, profile.OutputDir, profile.IncludePattern,
		profile.ExcludePattern, profile.KeepClone, sealed, profile.CreatedAt, profile.LastUsedAt)

	return err
}

func (s *Sqlite) GetProfile(name string) (*model.Profile, error) {
	row := s.db.QueryRow(`SELECT name, domain, format, output_dir, include_pattern, exclude_pattern, keep_clone, token, created_at, last_used_at FROM profiles WHERE name = ?`, name)

	var (
		p      model.Profile
		sealed []byte
		last   sql.NullTime
	)

	if err := row.Scan(&p.Name, &p.Domain, &p.Format, &p.OutputDir, &p.IncludePattern, &p.ExcludePattern, &p.KeepClone, &sealed, &p.CreatedAt, &last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	if last.Valid {
		p.LastUsedAt = last.Time
	}

	token, err := s.openToken(sealed)
	if err != nil {
		return nil, err
	}

	p.Token = token

	return &p, nil
}

func (s *Sqlite) ListProfiles() ([]model.Profile, error) {
	rows, err := s.db.Query(`SELECT name, domain, format, output_dir, include_pattern, exclude_pattern, keep_clone, created_at, last_used_at FROM profiles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Profile

	for rows.Next() {
		var (
			p    model.Profile
			last sql.NullTime
		)

		if err := rows.Scan(&p.Name, &p.Domain, &p.Format, &p.OutputDir, &p.IncludePattern, &p.ExcludePattern, &p.KeepClone, &p.CreatedAt, &last); err != nil {
			return nil, err
		}

		if last.Valid {
			p.LastUsedAt = last.Time
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (s *Sqlite) DeleteProfile(name string) error {
	_, err := s.db.Exec(`DELETE FROM profiles WHERE name = ?`, name)

	return err
}

func (s *Sqlite) ProfileExists(name string) (bool, error) {
	var n int

	if err := s.db.QueryRow(`SELECT COUNT(1) FROM profiles WHERE name = ?`, name).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}

func (s *Sqlite) SetToken(domain, token string) error {
	if domain == "" {
		return errors.New("domain is required")
	}

	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO tokens (domain, token) VALUES (?, ?)
		ON CONFLICT(domain) DO UPDATE SET token=excluded.token`, domain, sealed)

	return err
}

func (s *Sqlite) GetToken(domain string) (string, error) {
	var sealed []byte

	if err := s.db.QueryRow(`SELECT token FROM tokens WHERE domain = ?`, domain).Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", err
	}

	return s.sealer.Open(sealed)
}

func (s *Sqlite) GetTokens() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT domain, token FROM tokens`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]string)

	for rows.Next() {
		var (
			domain string
			sealed []byte
		)

		if err := rows.Scan(&domain, &sealed); err != nil {
			return nil, err
		}

		token, err := s.sealer.Open(sealed)
		if err != nil {
			return nil, err
		}

		out[domain] = token
	}

	return out, rows.Err()
}

func (s *Sqlite) ListTokenDomains() ([]string, error) {
	rows, err := s.db.Query(`SELECT domain FROM tokens ORDER BY domain`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string

	for rows.Next() {
		var domain string

		if err := rows.Scan(&domain); err != nil {
			return nil, err
		}

		out = append(out, domain)
	}

	return out, rows.Err()
}

func (s *Sqlite) DeleteToken(domain string) error {
	_, err := s.db.Exec(`DELETE FROM tokens WHERE domain = ?`, domain)

	return err
}

func (s *Sqlite) GetState() (*model.State, error) {
	state := &model.State{}

	err := s.db.QueryRow(`SELECT last_profile, last_repo FROM state WHERE id = 1`).Scan(&state.LastProfile, &state.LastRepo)
	if errors.Is(err, sql.ErrNoRows) {
		return state, nil
	}

	return state, err
}

func (s *Sqlite) SaveState(state *model.State) error {
	_, err := s.db.Exec(`INSERT INTO state (id, last_profile, last_repo) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET last_profile=excluded.last_profile, last_repo=excluded.last_repo`,
		state.LastProfile, state.LastRepo)

	return err
}
