package probe

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/embedhub/vectorgate/vectorstore"
)

// Battery operation names, in execution order.
const (
	OpListCollections  = "list_collections"
	OpCreateCollection = "create_collection"
	OpUpsertPoint      = "upsert_point"
	OpSearch           = "search"
	OpDeletePoint      = "delete_point"
)

// Error kinds a probed operation can fail with.
const (
	KindUnauthorized    = "unauthorized"
	KindNotFound        = "not_found"
	KindInvalidArgument = "invalid_argument"
	KindOther           = "other"
)

// probeDimension is the vector size of the scratch collection. Small on
// purpose; the probe checks permissions, not search quality.
const probeDimension = 4

var probeVector = []float32{0.1, 0.2, 0.3, 0.4}

// Credential is one API key to probe, under a human-readable label.
type Credential struct {
	Label  string
	APIKey string
}

// Outcome records a single attempted operation. ErrorKind and Message
// are empty when OK is true.
type Outcome struct {
	Operation string
	OK        bool
	ErrorKind string
	Message   string
}

// Report collects the battery outcomes for one credential.
type Report struct {
	Label    string
	Outcomes []Outcome
}

// Allowed returns the names of the operations the credential performed
// successfully.
func (r *Report) Allowed() []string {
	var ops []string
	for _, o := range r.Outcomes {
		if o.OK {
			ops = append(ops, o.Operation)
		}
	}
	return ops
}

// Factory builds a vector store client bound to a specific API key. The
// prober creates one client per credential so each battery runs under
// exactly the credential being probed. Returned services implementing
// io.Closer are closed after their battery.
type Factory func(apiKey string) (vectorstore.Service, error)

// Logger matches the subset of logging operations this package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Prober runs the permission battery.
type Prober struct {
	factory    Factory
	log        Logger
	collection string
}

// NewProber constructs a Prober. A nil logger falls back to a no-op. The
// scratch collection name is randomized per Prober so concurrent probes
// against the same instance don't collide.
func NewProber(factory Factory, log Logger) (*Prober, error) {
	if factory == nil {
		return nil, fmt.Errorf("probe: factory is required")
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Prober{
		factory:    factory,
		log:        log,
		collection: "permission_probe_" + uuid.New().String()[:8],
	}, nil
}

// Run probes each credential in order and returns one report per
// credential, in the same order. A credential whose client cannot even
// be constructed gets a report where every operation failed.
func (p *Prober) Run(ctx context.Context, creds []Credential) ([]Report, error) {
	if len(creds) == 0 {
		return nil, &vectorstore.ValidationError{Reason: "no credentials to probe"}
	}

	reports := make([]Report, 0, len(creds))
	for _, cred := range creds {
		reports = append(reports, p.runBattery(ctx, cred))
	}
	return reports, nil
}

// runBattery executes the fixed operation sequence for one credential.
func (p *Prober) runBattery(ctx context.Context, cred Credential) Report {
	report := Report{Label: cred.Label}

	svc, err := p.factory(cred.APIKey)
	if err != nil {
		p.log.Info("probe client construction failed", err, map[string]interface{}{
			"credential": cred.Label,
		})
		for _, op := range []string{OpListCollections, OpCreateCollection, OpUpsertPoint, OpSearch, OpDeletePoint} {
			report.Outcomes = append(report.Outcomes, failedOutcome(op, err))
		}
		return report
	}
	defer p.closeService(svc)

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{OpListCollections, func(ctx context.Context) error {
			_, err := svc.ListCollections(ctx)
			return err
		}},
		{OpCreateCollection, func(ctx context.Context) error {
			return svc.EnsureCollection(ctx, p.collection, probeDimension, vectorstore.DistanceCosine)
		}},
		{OpUpsertPoint, func(ctx context.Context) error {
			return svc.Upsert(ctx, p.collection, []vectorstore.Point{
				{ID: "1", Vector: probeVector, Payload: map[string]any{"name": "probe point"}},
			})
		}},
		{OpSearch, func(ctx context.Context) error {
			_, err := svc.Search(ctx, vectorstore.SearchRequest{
				CollectionName: p.collection,
				Vector:         probeVector,
				Limit:          1,
			})
			return err
		}},
		{OpDeletePoint, func(ctx context.Context) error {
			return svc.Delete(ctx, p.collection, []string{"1"})
		}},
	}

	for _, step := range steps {
		outcome := Outcome{Operation: step.name}
		if err := step.run(ctx); err != nil {
			outcome = failedOutcome(step.name, err)
		} else {
			outcome.OK = true
		}
		report.Outcomes = append(report.Outcomes, outcome)

		p.log.Debug("probe operation finished", nil, map[string]interface{}{
			"credential": cred.Label,
			"operation":  outcome.Operation,
			"ok":         outcome.OK,
			"error_kind": outcome.ErrorKind,
		})
	}

	// Best effort: leave no scratch collection behind. A read-only key
	// could not have created it in the first place.
	_ = svc.EnsureAbsent(ctx, p.collection)

	return report
}

func (p *Prober) closeService(svc vectorstore.Service) {
	if closer, ok := svc.(io.Closer); ok {
		_ = closer.Close()
	}
}

func failedOutcome(operation string, err error) Outcome {
	return Outcome{
		Operation: operation,
		ErrorKind: classify(err),
		Message:   err.Error(),
	}
}

// classify maps an operation error onto the report's error kinds.
func classify(err error) string {
	switch {
	case vectorstore.IsUnauthorized(err):
		return KindUnauthorized
	case vectorstore.IsNotFound(err):
		return KindNotFound
	case vectorstore.IsInvalidArgument(err):
		return KindInvalidArgument
	default:
		return KindOther
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
