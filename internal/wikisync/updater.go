// Package wikisync regenerates the API index of the wiki: it walks the
// service directory, checks every service against the library generation
// server, matches sample projects and splices the rendered sections into
// the wiki page.
package wikisync

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/apiwiki/internal/codegen"
	"github.com/agentstation/apiwiki/internal/discovery"
	"github.com/agentstation/apiwiki/internal/samples"
	"github.com/agentstation/apiwiki/internal/transport"
	"github.com/agentstation/apiwiki/internal/wiki"
	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
	"github.com/agentstation/apiwiki/pkg/logging"
	"github.com/agentstation/apiwiki/pkg/retry"
)

// Updater regenerates one wiki page from one samples checkout.
type Updater struct {
	wikiDir    string
	samplesDir string

	endpoints   Endpoints
	transport   *transport.Client
	language    string
	retryPolicy *retry.Policy
	extras      []discovery.Descriptor
	concurrency int
	dryRun      bool

	discovery *discovery.Client
	checker   *codegen.Checker
}

// Option configures an Updater.
type Option func(*Updater)

// WithEndpoints overrides the remote endpoints. Empty fields keep their defaults.
func WithEndpoints(e Endpoints) Option {
	return func(u *Updater) {
		u.endpoints = e
	}
}

// WithTransport sets the HTTP transport shared by every remote call.
func WithTransport(t *transport.Client) Option {
	return func(u *Updater) {
		u.transport = t
	}
}

// WithLanguage selects the client library flavour.
func WithLanguage(lang string) Option {
	return func(u *Updater) {
		u.language = lang
	}
}

// WithRetryPolicy replaces the retry policy of the generation server check.
func WithRetryPolicy(p retry.Policy) Option {
	return func(u *Updater) {
		u.retryPolicy = &p
	}
}

// WithExtras merges descriptors missing from the published directory.
func WithExtras(extras []discovery.Descriptor) Option {
	return func(u *Updater) {
		u.extras = extras
	}
}

// WithConcurrency processes up to n services at once. Output order is unchanged.
func WithConcurrency(n int) Option {
	return func(u *Updater) {
		u.concurrency = n
	}
}

// WithDryRun renders the page without writing it.
func WithDryRun(dryRun bool) Option {
	return func(u *Updater) {
		u.dryRun = dryRun
	}
}

// New creates an Updater for the wiki checkout at wikiDir and the samples
// checkout at samplesDir.
func New(wikiDir, samplesDir string, opts ...Option) *Updater {
	u := &Updater{
		wikiDir:     wikiDir,
		samplesDir:  samplesDir,
		endpoints:   DefaultEndpoints(),
		language:    constants.Language,
		concurrency: constants.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(u)
	}

	u.endpoints = u.endpoints.withDefaults()
	if u.transport == nil {
		u.transport = transport.New()
	}
	u.concurrency = max(1, min(u.concurrency, constants.MaxConcurrency))

	checkerOpts := []codegen.Option{codegen.WithLanguage(u.language)}
	if u.retryPolicy != nil {
		checkerOpts = append(checkerOpts, codegen.WithRetryPolicy(*u.retryPolicy))
	}
	u.discovery = discovery.NewClient(u.transport, u.endpoints.Discovery)
	u.checker = codegen.NewChecker(u.transport, u.endpoints.Codegen, checkerOpts...)
	return u
}

// Path is the wiki page the updater rewrites.
func (u *Updater) Path() string {
	return filepath.Join(u.wikiDir, constants.WikiFile)
}

// Endpoints returns the resolved endpoint set.
func (u *Updater) Endpoints() Endpoints {
	return u.endpoints
}

// Run regenerates the page. Per-service problems are recorded in
// Result.Skipped; only failures that make the whole page impossible to build
// are returned as errors, in which case the page is left untouched.
func (u *Updater) Run(ctx context.Context) (*Result, error) {
	logger := logging.FromContext(ctx)

	found, err := samples.Discover(u.samplesDir)
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("samples", found).Msg("Discovered sample projects")

	dir, err := u.discovery.LoadDirectory(logging.WithOperation(ctx, "load_directory"))
	if err != nil {
		return nil, err
	}
	if len(u.extras) > 0 {
		dir.Merge(u.extras)
		logger.Debug().Int("extras", len(u.extras)).Msg("Merged extra descriptors")
	}

	// Fail on a malformed page before any per-service traffic.
	path := u.Path()
	if _, err := wiki.SpliceFileContent(path, ""); err != nil {
		return nil, err
	}

	sections, skipped, err := u.Process(logging.WithOperation(ctx, "process"), dir, found)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Path:    path,
		Skipped: skipped,
		DryRun:  u.dryRun,
	}
	for _, s := range sections {
		result.Emitted = append(result.Emitted, s.Name+":"+s.Version)
	}
	result.Body = wiki.RenderBody(sections)

	logger = logging.FromContext(logging.WithOperation(ctx, "splice"))

	if u.dryRun {
		doc, err := wiki.SpliceFileContent(path, result.Body)
		if err != nil {
			return nil, err
		}
		result.Document = doc
		logger.Debug().Str("path", path).Msg("Dry run, page not written")
		return result, nil
	}

	if err := wiki.SpliceFile(path, result.Body); err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Int("emitted", len(result.Emitted)).
		Int("skipped", len(result.Skipped)).
		Msg("Updated wiki page")
	return result, nil
}

// Process builds the sections of every eligible service in dir, sorted by
// title. Services are independent; a failure in one only skips that one.
func (u *Updater) Process(ctx context.Context, dir *discovery.Directory, found []string) ([]wiki.Section, []*errors.SkipError, error) {
	items := dir.Sorted()
	sections := make([]*wiki.Section, len(items))
	skips := make([]*errors.SkipError, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sections[i], skips[i] = u.processService(gctx, dir, item, found)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		emitted []wiki.Section
		skipped []*errors.SkipError
	)
	for i := range items {
		if sections[i] != nil {
			emitted = append(emitted, *sections[i])
		}
		if skips[i] != nil {
			skipped = append(skipped, skips[i])
		}
	}
	return emitted, skipped, nil
}

func (u *Updater) processService(ctx context.Context, dir *discovery.Directory, item discovery.Descriptor, found []string) (*wiki.Section, *errors.SkipError) {
	ctx = logging.WithService(ctx, item.Name, item.Version)
	logger := logging.FromContext(ctx)
	logger.Debug().Msg("Processing service")

	skip := func(name, version, reason string, err error) (*wiki.Section, *errors.SkipError) {
		skipErr := errors.NewSkipError(name, version, reason, err)
		logger.Warn().Err(err).Str("reason", reason).Msgf("Skipping %s:%s", name, version)
		return nil, skipErr
	}

	if !item.IsPreferred() {
		return skip(item.Name, item.Version, "not preferred", nil)
	}

	detail := u.discovery.FetchDetail(ctx, item)
	if detail == nil {
		return skip(item.Name, item.Version, "detail document unavailable", nil)
	}
	if detail.Name == "" || detail.Version == "" {
		return skip(item.Name, item.Version, "detail document has no name or version", nil)
	}

	name, version := detail.Name, detail.Version
	versions := dir.Versions(name)
	logger.Debug().Strs("versions", versions).Msg("Known versions")

	if !detail.IsPreferred() {
		return skip(name, version, "not preferred", nil)
	}
	icon := detail.Icon()
	if icon == "" {
		return skip(name, version, "no icon", nil)
	}

	artifact, err := u.checker.Check(ctx, name, version)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			return skip(name, version, "unexpected library file name", err)
		}
		if errors.IsNotFound(err) {
			return skip(name, version, "no library on the codegen server", err)
		}
		return skip(name, version, "could not connect to the codegen server", err)
	}

	matched := samples.Match(name, version, versions, found)
	section := &wiki.Section{
		Name:              name,
		Version:           version,
		Title:             detail.DisplayTitle(),
		Description:       detail.Description,
		Icon:              icon,
		DownloadURL:       u.checker.DownloadURL(name, version),
		JavaDocURL:        u.checker.DocumentationURL(name, version),
		DocumentationLink: detail.DocumentationLink,
		ExplorerURL:       u.endpoints.ExplorerURL(name, version),
		ConsoleURL:        u.endpoints.ConsoleURL(name),
		GroupID:           constants.GroupID,
		ArtifactID:        constants.ArtifactPrefix + name,
		ReleaseVersion:    artifact.ReleaseVersion(version),
	}
	for _, sample := range matched {
		logger.Debug().Str("sample", sample).Msg("Matched sample")
		section.Samples = append(section.Samples, wiki.Sample{
			Name: sample,
			URL:  u.endpoints.SampleURL(sample),
		})
	}

	logger.Info().
		Str("release", section.ReleaseVersion).
		Int("samples", len(section.Samples)).
		Msg("Rendered service")
	return section, nil
}
