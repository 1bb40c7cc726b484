package relocate

import (
	"github.com/arthur-debert/dashkit/pkg/address"
	"github.com/arthur-debert/dashkit/pkg/dashboard"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/types"
)

// Store is the persistence the engine needs: whole-dashboard load and save.
type Store interface {
	Load(slug string) (*dashboard.Document, error)
	Save(slug string, doc *dashboard.Document) error
}

// Options configures an Engine.
type Options struct {
	// DryRun performs the edit in memory but never saves.
	DryRun bool
}

// Engine moves and copies rows and panels between positions of one or two
// dashboards.
type Engine struct {
	store   Store
	context types.ContextResolver
	opts    Options
}

// New creates an Engine reading and writing through store. Source addresses
// always refer to the dashboard resolved by context.
func New(store Store, context types.ContextResolver, opts Options) *Engine {
	return &Engine{store: store, context: context, opts: opts}
}

// Request describes a single relocation.
type Request struct {
	Operation   types.Operation
	Kind        types.Kind
	Source      string
	Destination string
}

// Relocate validates the request, loads the dashboards involved, performs the
// edit and saves whatever changed. Every validation happens before the first
// load, and bounds are checked before the first mutation, so a failed request
// never writes anything.
func (e *Engine) Relocate(req Request) (*Result, error) {
	logger := logging.GetLogger("relocate")

	if !req.Operation.Valid() || !req.Kind.Valid() {
		return nil, errors.Newf(errors.ErrUnsupported,
			"unsupported command %q for entity type %q", req.Operation, req.Kind).
			WithDetail("operation", string(req.Operation)).
			WithDetail("kind", string(req.Kind))
	}

	if e.context == nil || !e.context.HasDefaultDocument() {
		return nil, errors.New(errors.ErrContextMissing,
			"no context dashboard, set one with `dashkit set context dashboard <slug>`")
	}

	src, err := address.Parse(req.Source, req.Kind, address.Source)
	if err != nil {
		return nil, err
	}
	dst, err := address.Parse(req.Destination, req.Kind, address.Destination)
	if err != nil {
		return nil, err
	}

	src.Document = e.context.DefaultDocument()
	if dst.Document == "" {
		dst.Document = src.Document
	}

	done := logging.LogOperationStart(logger, string(req.Operation)+" "+string(req.Kind))
	defer done()

	logger.Info().
		Str("operation", string(req.Operation)).
		Str("kind", string(req.Kind)).
		Str("source", src.String()).
		Str("destination", dst.String()).
		Bool("dryRun", e.opts.DryRun).
		Msg("Relocating")

	p, err := e.load(src, dst)
	if err != nil {
		return nil, err
	}

	var edit func(*plan, types.Operation) error
	if req.Kind == types.KindRow {
		edit = editRows
	} else {
		edit = editPanels
	}
	if err := edit(p, req.Operation); err != nil {
		return nil, err
	}

	result := &Result{
		Operation:   req.Operation,
		Kind:        req.Kind,
		Source:      src,
		Destination: dst,
		DryRun:      e.opts.DryRun,
	}

	for _, target := range p.saveOrder(req.Operation) {
		if e.opts.DryRun {
			result.Pending = append(result.Pending, target.slug)
			continue
		}
		if err := e.store.Save(target.slug, target.doc); err != nil {
			logger.Error().
				Err(err).
				Str("slug", target.slug).
				Strs("saved", result.Saved).
				Msg("Save failed, relocation is incomplete")
			return nil, err
		}
		result.Saved = append(result.Saved, target.slug)
	}

	logger.Info().
		Strs("saved", result.Saved).
		Strs("pending", result.Pending).
		Msg(result.Message())
	return result, nil
}

// load reads the source dashboard and, for a cross-dashboard request, the
// destination dashboard. A destination naming the source dashboard shares its
// tree.
func (e *Engine) load(src, dst address.Location) (*plan, error) {
	srcDoc, err := e.store.Load(src.Document)
	if err != nil {
		return nil, err
	}

	p := &plan{
		src:    src,
		dst:    dst,
		srcDoc: srcDoc,
		dstDoc: srcDoc,
	}
	if p.crossDocument() {
		dstDoc, err := e.store.Load(dst.Document)
		if err != nil {
			return nil, err
		}
		p.dstDoc = dstDoc
	}
	return p, nil
}
