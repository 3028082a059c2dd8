package wizard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundrybook/models"
	"laundrybook/services/catalog"
)

// DefaultWizardService implements SessionService on top of a SessionStore.
type DefaultWizardService struct {
	Store  SessionStore
	Logger *zap.Logger
}

func NewWizardService(store SessionStore, logger *zap.Logger) *DefaultWizardService {
	return &DefaultWizardService{Store: store, Logger: logger}
}

// Start creates a session on the first page with an all-default draft and
// no completed steps.
func (s *DefaultWizardService) Start(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID:      uuid.New().String(),
		Draft:          models.NewBookingDraft(),
		CurrentPage:    PageAddress,
		CompletedSteps: []int{},
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session started", zap.String("sessionId", session.SessionID))
	return session, nil
}

func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// Update merges partial draft fields into the session. Pure assignment; the
// page gates run on Advance, not here.
func (s *DefaultWizardService) Update(ctx context.Context, sessionID string, update models.DraftUpdate) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := update.Apply(&session.Draft); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance runs the current page's gate, marks the page's steps completed and
// moves forward, clamped at the last page. Completion is monotone: the set
// only ever grows within a session.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := gateForPage(session.CurrentPage, &session.Draft); err != nil {
		return nil, err
	}

	session.CompleteSteps(pageSteps[session.CurrentPage]...)
	if session.CurrentPage < lastPage {
		session.CurrentPage++
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one page backwards, clamped at the first page. It never
// un-completes a step.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentPage > PageAddress {
		session.CurrentPage--
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddService appends a line item priced from the catalog, never from client
// input. Items with variants require a wash-type choice and record the
// variant's price and tag; adding the same item again raises its quantity
// by one more entry.
func (s *DefaultWizardService) AddService(ctx context.Context, sessionID, itemID string, washType models.WashType) (*models.BookingSession, error) {
	item, ok := catalog.FindItem(itemID)
	if !ok {
		return nil, models.NewValidationError(fmt.Sprintf("unknown service %q", itemID))
	}

	line := models.LineItem{ID: item.ID, Name: item.Name, UnitPrice: item.Price}
	if item.HasVariants() {
		if washType == "" {
			return nil, models.NewValidationError("please choose a wash type")
		}
		variant, ok := item.VariantFor(washType)
		if !ok {
			return nil, models.NewValidationError(fmt.Sprintf("invalid wash type %q", washType))
		}
		line.Name = fmt.Sprintf("%s (%s)", item.Name, washType)
		line.UnitPrice = variant.Price
		line.WashType = washType
	} else if washType != "" {
		return nil, models.NewValidationError(fmt.Sprintf("service %q does not take a wash type", itemID))
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Draft.SelectedServices = append(session.Draft.SelectedServices, line)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RemoveService removes the first line item with the given ID, decrementing
// the effective quantity by exactly one. Removing an absent ID is a no-op.
func (s *DefaultWizardService) RemoveService(ctx context.Context, sessionID, itemID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i, line := range session.Draft.SelectedServices {
		if line.ID == itemID {
			session.Draft.SelectedServices = append(
				session.Draft.SelectedServices[:i],
				session.Draft.SelectedServices[i+1:]...)
			break
		}
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards the session.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// View builds the client-facing state: draft, progress indicator and cart
// total, all derived on demand.
func View(session *models.BookingSession) models.SessionView {
	steps := make([]models.StepState, 0, len(stepLabels))
	for step := StepAddress; step <= StepPayment; step++ {
		steps = append(steps, models.StepState{
			Step:      step,
			Label:     stepLabels[step],
			Completed: session.StepCompleted(step),
			Active:    stepPage[step] == session.CurrentPage,
		})
	}
	return models.SessionView{
		SessionID:      session.SessionID,
		Draft:          session.Draft,
		CurrentPage:    session.CurrentPage,
		CompletedSteps: session.CompletedSteps,
		Steps:          steps,
		TotalPrice:     session.Draft.TotalPrice(),
	}
}
