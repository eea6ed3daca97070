package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"coupon-portal/internal/domain/campaign"
	"coupon-portal/internal/domain/coupon"
	"coupon-portal/internal/domain/form"
	"coupon-portal/internal/pkg/errs"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
	PhaseFailed     Phase = "failed"
)

var (
	ErrSubmissionInFlight  = errs.ErrSubmissionInFlight
	ErrCouponAlreadyIssued = errs.ErrCouponAlreadyIssued
)

// Snapshot is a copy of the workflow state; callers may keep it after the lock is gone.
type Snapshot struct {
	Phase            Phase
	Values           form.Values
	FieldErrors      form.Errors
	Banner           string
	InFlight         bool
	CampaignsLoading bool
	Campaigns        []*campaign.Campaign
	Result           *coupon.Coupon
}

// Workflow is the per-session state container for the coupon form.
//
// Every continuation (catalog result, submission result) re-acquires mu before touching
// state, and mu is never held across a network call.
type Workflow struct {
	mu      sync.Mutex
	gateway CouponGateway
	catalog *CampaignCatalog
	log     *slog.Logger

	started          bool
	campaignsLoading bool
	catalogReady     chan struct{}
	campaigns        []*campaign.Campaign

	values      form.Values
	fieldErrors form.Errors
	banner      string
	inFlight    bool
	phase       Phase
	result      *coupon.Coupon
}

func NewWorkflow(gateway CouponGateway, log *slog.Logger) *Workflow {
	return newWorkflow(gateway, NewCampaignCatalog(gateway, log), log)
}

func newWorkflow(gateway CouponGateway, catalog *CampaignCatalog, log *slog.Logger) *Workflow {
	return &Workflow{
		gateway:      gateway,
		catalog:      catalog,
		log:          log,
		catalogReady: make(chan struct{}),
		fieldErrors:  form.Errors{},
		phase:        PhaseIdle,
	}
}

// WorkflowFactory builds the workflow for a new session.
type WorkflowFactory func() *Workflow

// NewWorkflowFactory shares one catalog between sessions, so sessions created while a
// catalog request is outstanding wait on that request instead of sending their own.
func NewWorkflowFactory(gateway CouponGateway, log *slog.Logger) WorkflowFactory {
	catalog := NewCampaignCatalog(gateway, log)
	return func() *Workflow {
		return newWorkflow(gateway, catalog, log)
	}
}

// Start issues the single catalog request in the background. Later calls are no-ops.
// ctx must outlive the request that created the session (use context.WithoutCancel).
func (w *Workflow) Start(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.campaignsLoading = true
	w.mu.Unlock()

	go w.loadCampaigns(ctx)
}

// CatalogReady is closed once the catalog request has finished, successfully or not.
func (w *Workflow) CatalogReady() <-chan struct{} {
	return w.catalogReady
}

func (w *Workflow) loadCampaigns(ctx context.Context) {
	campaigns, err := w.catalog.Fetch(ctx)

	w.mu.Lock()
	defer func() {
		w.campaignsLoading = false
		close(w.catalogReady)
		w.mu.Unlock()
	}()

	if err != nil {
		w.campaigns = nil
		w.banner = MsgCatalogLoadFailed
		return
	}
	w.campaigns = campaigns
}

// EditField stores the new value and drops that field's error without re-validating it.
func (w *Workflow) EditField(f form.Field, value string) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.fieldErrors = w.fieldErrors.Without(f)
	w.values = w.values.With(f, value)
	return w.snapshotLocked()
}

// Submit validates the current values and, when they pass, asks the coupon service for a
// coupon. Only ErrSubmissionInFlight and ErrCouponAlreadyIssued are returned as errors;
// every other outcome is in the snapshot (field errors, banner, result).
//
// The coupon request outlives ctx: once sent it runs until the service answers, so a
// visitor who leaves mid-request still finds the issued coupon in the session.
func (w *Workflow) Submit(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	if w.inFlight {
		snap := w.snapshotLocked()
		w.mu.Unlock()
		return snap, ErrSubmissionInFlight
	}
	// an issued coupon has to be dismissed with Reset first
	if w.result != nil {
		snap := w.snapshotLocked()
		w.mu.Unlock()
		return snap, ErrCouponAlreadyIssued
	}

	w.banner = ""
	w.inFlight = true
	w.phase = PhaseValidating

	w.fieldErrors = form.Validate(w.values)
	if !w.fieldErrors.Empty() {
		w.inFlight = false
		w.phase = PhaseIdle
		snap := w.snapshotLocked()
		w.mu.Unlock()
		return snap, nil
	}

	req := CouponRequest{
		Name:         w.values.Name,
		Email:        w.values.Email,
		Phone:        w.values.Phone,
		CampaignCode: w.values.CampaignCode,
	}
	w.phase = PhaseSubmitting
	w.mu.Unlock()

	var (
		result  *coupon.Coupon
		failure string
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				w.log.Error("panic while generating coupon", "panic", r)
				result, failure = nil, MsgUnexpectedError
			}
		}()
		result, failure = w.requestCoupon(context.WithoutCancel(ctx), req)
	}()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.inFlight = false
	if failure != "" {
		w.banner = failure
		w.phase = PhaseFailed
		return w.snapshotLocked(), nil
	}
	w.result = result
	w.phase = PhaseSuccess
	return w.snapshotLocked(), nil
}

// requestCoupon returns either the issued coupon or the banner message for the failure.
func (w *Workflow) requestCoupon(ctx context.Context, req CouponRequest) (*coupon.Coupon, string) {
	outcome, err := w.gateway.GenerateCoupon(ctx, req)
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) {
			if remote.IsDuplicateEmail() {
				w.log.Info("coupon already issued for email", "campaign_code", req.CampaignCode)
				return nil, MsgDuplicateEmail
			}
			w.log.Error("coupon service request failed", "status", remote.StatusCode, "error", err)
			return nil, MsgSubmissionFailed
		}
		w.log.Error("unexpected error while generating coupon", "error", err)
		return nil, MsgUnexpectedError
	}

	if outcome == nil || outcome.StatusCode != http.StatusCreated || outcome.Coupon == nil {
		status := 0
		if outcome != nil {
			status = outcome.StatusCode
		}
		w.log.Warn("coupon service did not create a coupon", "status", status)
		return nil, MsgCouldNotGenerate
	}

	w.log.Info("coupon generated",
		"coupon_code", outcome.Coupon.Code().String(),
		"campaign_code", req.CampaignCode,
		"discount_amount", outcome.Coupon.Amount(),
	)
	return outcome.Coupon, ""
}

// Reset dismisses the result and empties the four fields. Field errors and the banner
// are left as they are.
func (w *Workflow) Reset() (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlight {
		return w.snapshotLocked(), ErrSubmissionInFlight
	}
	w.result = nil
	w.values = form.Values{}
	w.phase = PhaseIdle
	return w.snapshotLocked(), nil
}

// Result is nil unless a coupon was issued and not yet dismissed.
func (w *Workflow) Result() *coupon.Coupon {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Close tears the workflow down when its session ends.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.campaigns = nil
	w.result = nil
	w.values = form.Values{}
	w.fieldErrors = form.Errors{}
}

func (w *Workflow) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:            w.phase,
		Values:           w.values,
		FieldErrors:      w.fieldErrors.Clone(),
		Banner:           w.banner,
		InFlight:         w.inFlight,
		CampaignsLoading: w.campaignsLoading,
		Campaigns:        slices.Clone(w.campaigns),
		Result:           w.result,
	}
}
