package verification

import (
	"context"
	"errors"
	"strings"

	"github.com/telepay/receiptbot/internal/common"
	"github.com/telepay/receiptbot/internal/filex"
	"github.com/telepay/receiptbot/internal/logging"
	"github.com/telepay/receiptbot/internal/models"
	"github.com/telepay/receiptbot/internal/receipts"
)

// Result is the outcome of one pipeline run. Receipt is non-nil only for
// VerdictApproved.
type Result struct {
	Verdict Verdict
	Receipt *models.Receipt
}

// Pipeline orchestrates one verification run per submitted document. A
// single Pipeline value is safe for concurrent use; each run keeps its
// state in a per-invocation value and the only shared mutable resource is
// the duplicate store, which synchronizes at insert time.
type Pipeline struct {
	acquirer   *Acquirer
	renderer   Renderer
	recognizer Recognizer
	fields     *FieldValidator
	metadata   *MetadataValidator
	store      receipts.Repository
	notifier   Notifier
	escalator  Escalator
	languages  []string
	log        logging.Logger
}

func NewPipeline(
	acquirer *Acquirer,
	renderer Renderer,
	recognizer Recognizer,
	fields *FieldValidator,
	metadata *MetadataValidator,
	store receipts.Repository,
	notifier Notifier,
	escalator Escalator,
	cfg Config,
	log logging.Logger,
) *Pipeline {
	return &Pipeline{
		acquirer:   acquirer,
		renderer:   renderer,
		recognizer: recognizer,
		fields:     fields,
		metadata:   metadata,
		store:      store,
		notifier:   notifier,
		escalator:  escalator,
		languages:  cfg.Languages,
		log:        log,
	}
}

// run is the ephemeral state of one pipeline invocation. All derived
// artifacts live under dir, which is removed on every exit path.
type run struct {
	submitter Submitter
	document  Document

	dir     string
	pdfPath string
	imgPath string
	text    string
	hash    string

	verdict Verdict
	receipt *models.Receipt
}

// Run executes the pipeline for one submission and returns its verdict.
// The submitter is notified on every terminal outcome, and a content
// mismatch additionally escalates the original document to the review
// operator.
func (p *Pipeline) Run(ctx context.Context, sub Submitter, doc Document) Result {
	log := p.log.With("userID", sub.UserID)
	r := &run{submitter: sub, document: doc}

	defer p.cleanup(ctx, r)

	for st := StateAcquiring; st != StateDone; {
		next, err := p.step(ctx, st, r)
		if err != nil {
			log.Warn(ctx, "pipeline stage failed", "stage", st.String(), "error", err)
		} else {
			log.Debug(ctx, "pipeline stage done", "stage", st.String())
		}
		st = next
	}

	log.Info(ctx, "verification finished", "verdict", r.verdict.String())

	p.notifier.Notify(ctx, sub, r.verdict)

	if r.verdict == VerdictContentMismatchRejected {
		// Mandatory side effect of this rejection reason only.
		if err := p.escalator.Escalate(ctx, sub, doc.FileID); err != nil {
			log.Error(ctx, "escalation failed", "error", err)
		}
	}

	return Result{Verdict: r.verdict, Receipt: r.receipt}
}

// step performs one state transition. Terminal transitions set r.verdict
// and move to StateDone; the returned error is diagnostic only.
func (p *Pipeline) step(ctx context.Context, st State, r *run) (State, error) {
	switch st {
	case StateAcquiring:
		dir, pdfPath, err := p.acquirer.Acquire(ctx, r.submitter, r.document)
		if err != nil {
			r.verdict = VerdictAcquisitionFailed
			return StateDone, err
		}
		r.dir, r.pdfPath = dir, pdfPath
		return StateRendering, nil

	case StateRendering:
		imgPath, err := p.renderer.RenderFirstPage(ctx, r.pdfPath, r.dir)
		if err != nil {
			r.verdict = VerdictConversionFailed
			return StateDone, err
		}
		r.imgPath = imgPath
		return StateRecognizing, nil

	case StateRecognizing:
		text, err := p.recognizer.Recognize(ctx, r.imgPath, p.languages)
		if err != nil {
			r.verdict = VerdictConversionFailed
			return StateDone, err
		}
		// Lowercase once here; every downstream consumer relies on it.
		r.text = strings.ToLower(text)
		p.log.Debug(ctx, "text recognized", "chars", len(r.text))
		return StateFingerprinting, nil

	case StateFingerprinting:
		r.hash = Fingerprint(r.text)
		return StateDuplicateChecking, nil

	case StateDuplicateChecking:
		seen, err := p.store.Contains(ctx, r.hash)
		if err != nil {
			r.verdict = VerdictStorageFault
			return StateDone, err
		}
		if seen {
			r.verdict = VerdictDuplicateRejected
			return StateDone, nil
		}
		return StateFieldChecking, nil

	case StateFieldChecking:
		if !p.fields.Valid(r.text) {
			r.verdict = VerdictContentMismatchRejected
			return StateDone, nil
		}
		return StateMetadataChecking, nil

	case StateMetadataChecking:
		if !p.metadata.Valid(ctx, r.pdfPath) {
			r.verdict = VerdictContentMismatchRejected
			return StateDone, nil
		}
		return p.record(ctx, r)
	}

	return StateDone, nil
}

// record persists the approved receipt. The Contains pre-check above is
// only an optimization; the unique index makes this insert the
// authoritative duplicate decision, so a lost race downgrades the verdict
// to DuplicateRejected instead of claiming success.
func (p *Pipeline) record(ctx context.Context, r *run) (State, error) {
	receipt, err := p.store.Record(ctx, r.submitter.UserID, r.submitter.Username, r.hash)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateReceipt) {
			r.verdict = VerdictDuplicateRejected
			return StateDone, nil
		}
		r.verdict = VerdictStorageFault
		return StateDone, err
	}

	r.receipt = receipt
	r.verdict = VerdictApproved
	return StateDone, nil
}

// cleanup removes the scoped artifact directory. It runs on every exit
// path, including panics unwinding through Run.
func (p *Pipeline) cleanup(ctx context.Context, r *run) {
	if r.dir == "" {
		return
	}
	if err := filex.Remove(r.dir); err != nil {
		p.log.Error(ctx, "artifact cleanup failed", "dir", r.dir, "error", err)
	}
}
