// Package wizard drives the step-by-step public booking flow against the
// backend API. It owns the client-side state machine: which step the visitor
// is on, what they have picked so far, and which slot fetch is still worth
// showing.
package wizard

import (
	"context"
	"errors"
	"time"

	"bizsuite-service/internal/app/portal/gateway"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

type State string

const (
	StateHome     State = "home"
	StateService  State = "service"
	StateDate     State = "date"
	StateTime     State = "time"
	StateForm     State = "form"
	StateSuccess  State = "success"
	StateNotFound State = "not_found"
)

var (
	ErrTenantUnavailable  = errors.New("business page is not available")
	ErrInvalidTransition  = errors.New("action not allowed in the current step")
	ErrIncompleteBooking  = errors.New("booking details are incomplete")
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
)

// BookingAPI is the slice of the gateway the wizard needs.
type BookingAPI interface {
	GetPublicCompany(ctx context.Context, companySlug string) (*responses.PublicCompanyResponse, error)
	GetAvailability(ctx context.Context, companySlug, date string, durationMinutes int) (*responses.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, companySlug string, request *requests.PublicBooking) (*responses.BookingResponse, error)
}

// Draft is the booking being assembled. It is treated as a value: every
// mutation replaces the whole struct, never a field on a shared pointer.
type Draft struct {
	Service *responses.PublicService
	Date    string
	Time    string
	Name    string
	Email   string
	Phone   string
	Notes   string
}

type slotRequest struct {
	seq             uint64
	date            string
	durationMinutes int
}

// Wizard is not safe for concurrent use by multiple goroutines except for
// ApplySlots, which is how an async fetch hands its result back.
type Wizard struct {
	api         BookingAPI
	companySlug string
	now         func() time.Time

	state   State
	company *responses.PublicCompanyResponse
	draft   Draft

	slots        []string
	slotsMessage string
	slotSeq      uint64

	calendarOffset int
	submitting     bool
	result         *responses.BookingResponse
}

func NewWizard(api BookingAPI, companySlug string, now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}
	return &Wizard{
		api:         api,
		companySlug: companySlug,
		now:         now,
		state:       StateHome,
	}
}

// Start resolves the tenant behind the slug. An unknown or deactivated slug
// freezes the wizard in the not found state; no later action will issue
// another network call.
func (w *Wizard) Start(ctx context.Context) error {
	if w.state == StateNotFound {
		return ErrTenantUnavailable
	}

	company, err := w.api.GetPublicCompany(ctx, w.companySlug)
	if err != nil {
		if isNotFound(err) {
			w.state = StateNotFound
			w.company = nil
			return ErrTenantUnavailable
		}
		return err
	}
	w.company = company
	w.state = StateHome
	return nil
}

func (w *Wizard) Begin() error {
	if w.state != StateHome || w.company == nil {
		return ErrInvalidTransition
	}
	w.state = StateService
	return nil
}

// SelectService moves to the date step. Picking a different service later
// means walking back through the steps, which clears the stale picks on the
// way.
func (w *Wizard) SelectService(service responses.PublicService) error {
	if w.state != StateService {
		return ErrInvalidTransition
	}
	draft := w.draft
	draft.Service = &service
	w.draft = draft
	w.state = StateDate
	return nil
}

// SelectDate moves to the time step and fetches the free slots for the date.
// The fetch result is applied through ApplySlots, so a slow response for an
// abandoned date can never overwrite a newer one.
func (w *Wizard) SelectDate(ctx context.Context, date string) error {
	if w.state != StateDate {
		return ErrInvalidTransition
	}
	draft := w.draft
	draft.Date = date
	draft.Time = ""
	w.draft = draft
	w.slots = nil
	w.slotsMessage = ""
	w.state = StateTime

	request := w.BeginSlotFetch()
	result, err := w.api.GetAvailability(ctx, w.companySlug, request.date, request.durationMinutes)
	w.ApplySlots(request, result, err)
	return err
}

// BeginSlotFetch tags an availability request with the current draft's date
// and duration plus a fresh sequence number.
func (w *Wizard) BeginSlotFetch() slotRequest {
	w.slotSeq++
	return slotRequest{
		seq:             w.slotSeq,
		date:            w.draft.Date,
		durationMinutes: w.durationMinutes(),
	}
}

// ApplySlots accepts a fetch result only while its tag still describes the
// live draft. Anything else is a response to a question nobody is asking
// anymore and is dropped.
func (w *Wizard) ApplySlots(request slotRequest, result *responses.AvailabilityResponse, err error) {
	if request.seq != w.slotSeq {
		return
	}
	if request.date != w.draft.Date || request.durationMinutes != w.durationMinutes() {
		return
	}
	if err != nil || result == nil {
		w.slots = nil
		w.slotsMessage = ""
		return
	}
	w.slots = result.Slots
	w.slotsMessage = result.Message
}

func (w *Wizard) SelectTime(clock string) error {
	if w.state != StateTime {
		return ErrInvalidTransition
	}
	draft := w.draft
	draft.Time = clock
	w.draft = draft
	w.state = StateForm
	return nil
}

// SetContact fills the form step fields. It may be called repeatedly while
// the visitor edits the form.
func (w *Wizard) SetContact(name, email, phone, notes string) error {
	if w.state != StateForm {
		return ErrInvalidTransition
	}
	draft := w.draft
	draft.Name = name
	draft.Email = email
	draft.Phone = phone
	draft.Notes = notes
	w.draft = draft
	return nil
}

func (w *Wizard) CanSubmit() bool {
	if w.state != StateForm || w.submitting {
		return false
	}
	d := w.draft
	return d.Service != nil && d.Date != "" && d.Time != "" &&
		d.Name != "" && d.Email != "" && d.Phone != ""
}

// Submit sends the booking. An incomplete draft never reaches the network,
// and a second call while the first is still out comes straight back.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.state != StateForm {
		return ErrInvalidTransition
	}
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if !w.CanSubmit() {
		return ErrIncompleteBooking
	}

	d := w.draft
	request := &requests.PublicBooking{
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Notes:           d.Notes,
		ServiceName:     d.Service.Name,
		ServicePrice:    d.Service.Price,
		DurationMinutes: w.durationMinutes(),
		Date:            d.Date,
		Time:            d.Time,
	}

	w.submitting = true
	result, err := w.api.CreateBooking(ctx, w.companySlug, request)
	w.submitting = false
	if err != nil {
		return err
	}

	w.result = result
	w.state = StateSuccess
	return nil
}

// Back returns to the previous step and discards the pick that led here, so
// the visitor re-chooses it on the way forward.
func (w *Wizard) Back() error {
	switch w.state {
	case StateService:
		w.state = StateHome
		return nil
	case StateDate:
		draft := w.draft
		draft.Service = nil
		w.draft = draft
		w.state = StateService
		return nil
	case StateTime:
		draft := w.draft
		draft.Date = ""
		draft.Time = ""
		w.draft = draft
		w.slots = nil
		w.slotsMessage = ""
		w.state = StateDate
		return nil
	case StateForm:
		draft := w.draft
		draft.Time = ""
		w.draft = draft
		w.state = StateTime
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Reset starts a fresh booking against the already-loaded tenant.
func (w *Wizard) Reset() error {
	if w.state == StateNotFound {
		return ErrTenantUnavailable
	}
	w.draft = Draft{}
	w.slots = nil
	w.slotsMessage = ""
	w.result = nil
	w.calendarOffset = 0
	w.state = StateHome
	return nil
}

func (w *Wizard) durationMinutes() int {
	if w.draft.Service != nil && w.draft.Service.DurationMinutes > 0 {
		return w.draft.Service.DurationMinutes
	}
	return constvars.DefaultServiceDurationMinutes
}

func (w *Wizard) State() State {
	return w.state
}

func (w *Wizard) Company() *responses.PublicCompanyResponse {
	return w.company
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

func (w *Wizard) Slots() []string {
	return w.slots
}

func (w *Wizard) SlotsMessage() string {
	return w.slotsMessage
}

func (w *Wizard) Result() *responses.BookingResponse {
	return w.result
}

func isNotFound(err error) bool {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == constvars.StatusNotFound
	}
	return false
}
