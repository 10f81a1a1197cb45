// Package core orchestrates the export pipeline: configuration
// resolution, working copy materialization, filtering, URL construction,
// and artifact rendering.
package core

import (
	"context"
	"time"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/rawurl"
	"github.com/inovacc/linkr/internal/render"
	"github.com/inovacc/linkr/internal/resolve"
	"github.com/inovacc/linkr/internal/store"
)

// Confirmer answers yes-no questions. Interactive callers wire a dialog;
// unattended runs use AutoConfirm.
type Confirmer interface {
	Confirm(question string) bool
}

// AutoConfirm answers every question with a fixed value.
type AutoConfirm bool

func (a AutoConfirm) Confirm(string) bool {
	return bool(a)
}

// Request describes one export run.
type Request struct {
	ProfileName string
	RepoID      string
	Overrides   resolve.Overrides

	// Interactive enables confirmation prompts for the exclude pattern,
	// the update-in-place, and the teardown.
	Interactive bool
	Confirm     Confirmer

	// StrictJSON switches the json format to a strictly valid document.
	StrictJSON bool

	// BaseDir overrides the working copy directory (tests).
	BaseDir string
}

// Result reports a completed export.
type Result struct {
	ArtifactPath string
	Count        int
	Config       *resolve.EffectiveConfig
	KeptClone    bool
}

// Run executes the export pipeline against the store. The steps are
// strictly sequential: resolve, materialize, enumerate, filter, build
// prefix, render, optional teardown. Any failure aborts the run; partial
// state (an existing clone, prior artifacts) is left as-is.
func Run(ctx context.Context, st store.Store, req Request) (*Result, error) {
	rec, prof, tokens, err := loadLayers(st, req)
	if err != nil {
		return nil, err
	}

	cfg, err := resolve.Resolve(rec, tokens, prof, req.Overrides)
	if err != nil {
		return nil, err
	}

	confirm := req.Confirm
	if confirm == nil {
		confirm = AutoConfirm(true)
	}

	if req.Interactive && cfg.ExcludePattern != "" {
		if !confirm.Confirm("Apply exclude pattern " + cfg.ExcludePattern + "?") {
			cfg, err = resolve.DropExclude(cfg)
			if err != nil {
				return nil, err
			}
		}
	}

	update := true
	if req.Interactive {
		update = confirm.Confirm("Update existing working copy before export?")
	}

	wc, err := EnsureLocal(ctx, rec, cfg.Token, EnsureLocalOptions{
		Update:  update,
		BaseDir: req.BaseDir,
	})
	if err != nil {
		return nil, err
	}

	requested := req.Overrides.Branch
	if requested == "" {
		requested = rec.DefaultBranch
	}

	branch, err := wc.ResolveBranch(ctx, requested)
	if err != nil {
		return nil, err
	}

	cfg.Branch = branch

	files, err := wc.ListTrackedFiles(ctx)
	if err != nil {
		return nil, err
	}

	filtered := cfg.Filters.Apply(files)

	prefix := rawurl.Prefix(cfg.Domain, cfg.Owner, cfg.Name, cfg.Branch)
	entries := render.Entries(filtered, prefix)

	header := render.Header{
		Repository: cfg.Owner + "/" + cfg.Name,
		Domain:     cfg.Domain,
		Branch:     cfg.Branch,
		Format:     cfg.Format,
		Profile:    cfg.ProfileName,
		Exclude:    cfg.HeaderExclude(),
		Generated:  time.Now(),
	}

	path, err := render.WriteArtifact(cfg.OutputDir, cfg.Name, cfg.Format, header, entries, render.Options{
		StrictJSON: req.StrictJSON,
	})
	if err != nil {
		return nil, err
	}

	kept := cfg.KeepClone
	if req.Interactive && !kept {
		kept = !confirm.Confirm("Remove the local working copy?")
	}

	if !kept {
		if err := wc.Teardown(); err != nil {
			return nil, err
		}
	}

	if err := st.SaveState(&model.State{LastProfile: cfg.ProfileName, LastRepo: cfg.RepoID}); err != nil {
		return nil, err
	}

	return &Result{
		ArtifactPath: path,
		Count:        len(entries),
		Config:       cfg,
		KeptClone:    kept,
	}, nil
}

// ResolveRequest loads the three configuration layers from the store and
// merges them. Missing records surface as typed not-found errors.
func ResolveRequest(st store.Store, req Request) (*resolve.EffectiveConfig, error) {
	rec, prof, tokens, err := loadLayers(st, req)
	if err != nil {
		return nil, err
	}

	return resolve.Resolve(rec, tokens, prof, req.Overrides)
}

func loadLayers(st store.Store, req Request) (*model.Repository, *model.Profile, map[string]string, error) {
	prof, err := st.GetProfile(req.ProfileName)
	if err != nil {
		return nil, nil, nil, err
	}

	if prof == nil {
		return nil, nil, nil, &resolve.ProfileNotFoundError{Name: req.ProfileName}
	}

	rec, err := st.GetRepo(req.RepoID)
	if err != nil {
		return nil, nil, nil, err
	}

	if rec == nil {
		return nil, nil, nil, &resolve.RepoNotFoundError{ID: req.RepoID}
	}

	tokens, err := st.GetTokens()
	if err != nil {
		return nil, nil, nil, err
	}

	return rec, prof, tokens, nil
}

// QuickStart fills an empty request from the last-used markers.
func QuickStart(st store.Store, req Request) (Request, error) {
	state, err := st.GetState()
	if err != nil {
		return req, err
	}

	if req.ProfileName == "" {
		req.ProfileName = state.LastProfile
	}

	if req.RepoID == "" {
		req.RepoID = state.LastRepo
	}

	return req, nil
}
