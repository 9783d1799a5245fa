package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/admin"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

// ModuleService answers "what is running on this keyset": it fans out over
// the account's packages, resolves each package's latest revision and that
// revision's deployments, and keeps the packages with a running deployment on
// the target keyset.
type ModuleService struct {
	admin Admin
	log   zerolog.Logger
}

func NewModuleService(a Admin, log zerolog.Logger) *ModuleService {
	return &ModuleService{admin: a, log: log}
}

// ActiveModules returns one summary per package with a currently running
// deployment on keysetID. The result is a set, not a ranked list; completion
// order is whatever the fan-out produces.
//
// Failures never propagate. A broken package listing, a 404, or any
// per-package lookup error degrades to "nothing running there"; serverless
// modules are an optional feature and their absence is not an error.
func (s *ModuleService) ActiveModules(ctx context.Context, sess model.Session, keysetID int64, delegated string) []model.ModuleSummary {
	pkgs, err := s.admin.Packages(ctx, sess, delegated)
	if err != nil {
		if !admin.IsNotFound(err) {
			s.log.Warn().Err(err).Int64("keyset_id", keysetID).Msg("package listing failed; reporting no modules")
		}
		return []model.ModuleSummary{}
	}
	if len(pkgs) == 0 {
		return []model.ModuleSummary{}
	}

	// Per-package lookups are independent: no shared state, no ordering
	// dependency, and one package's failure or timeout must not cancel its
	// siblings. Each goroutine owns one slot of the results slice.
	results := make([]*model.ModuleSummary, len(pkgs))
	var wg sync.WaitGroup
	for i, p := range pkgs {
		wg.Add(1)
		go func(i int, p model.Package) {
			defer wg.Done()
			results[i] = s.packageModule(ctx, sess, p, keysetID, delegated)
		}(i, p)
	}
	wg.Wait()

	modules := make([]model.ModuleSummary, 0, len(pkgs))
	for _, r := range results {
		if r != nil {
			modules = append(modules, *r)
		}
	}
	return modules
}

// packageModule resolves one package down to its latest running deployment on
// the target keyset, or nil when the package contributes nothing.
func (s *ModuleService) packageModule(ctx context.Context, sess model.Session, pkg model.Package, keysetID int64, delegated string) *model.ModuleSummary {
	revs, err := s.admin.Revisions(ctx, sess, pkg.ID, delegated)
	if err != nil {
		s.logLookupErr(err, pkg, "revision lookup failed")
		return nil
	}
	if len(revs) == 0 {
		return nil
	}
	// Revisions arrive newest-first; only the latest is ever consulted, even
	// when an older one still has a running deployment.
	rev := revs[0]

	deps, err := s.admin.Deployments(ctx, sess, pkg.ID, rev.ID, delegated)
	if err != nil {
		s.logLookupErr(err, pkg, "deployment lookup failed")
		return nil
	}

	// Filter by keyset and state first, then take the most recent survivor.
	// A stopped deployment newer than a running one must not shadow it.
	for _, d := range deps {
		if d.Keyset.ID != keysetID || d.State != model.DeploymentRunning {
			continue
		}
		functions := make([]model.FunctionSummary, 0, len(d.Functions))
		for _, f := range d.Functions {
			functions = append(functions, model.FunctionSummary{
				ID:      f.FunctionRevisionID,
				Name:    f.Name,
				Type:    f.Type,
				Enabled: f.State == model.DeploymentRunning,
			})
		}
		return &model.ModuleSummary{
			PackageID:       pkg.ID,
			PackageName:     pkg.Name,
			RevisionID:      rev.ID,
			RevisionName:    rev.Name,
			DeploymentID:    d.ID,
			DeploymentState: d.State,
			Functions:       functions,
		}
	}
	return nil
}

func (s *ModuleService) logLookupErr(err error, pkg model.Package, msg string) {
	if admin.IsNotFound(err) {
		return
	}
	s.log.Warn().Err(err).Int64("package_id", pkg.ID).Str("package", pkg.Name).Msg(msg)
}
