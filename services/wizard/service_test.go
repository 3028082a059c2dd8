package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundrybook/models"
)

func newTestService(t *testing.T) *DefaultWizardService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWizardService(NewRedisSessionStore(client, 30*time.Minute), zap.NewNop())
}

func strPtr(s string) *string { return &s }

// fillAddressPage sets the fields the first page's gate checks.
func fillAddressPage(t *testing.T, svc *DefaultWizardService, id string) {
	t.Helper()
	_, err := svc.Update(context.Background(), id, models.DraftUpdate{
		SelectedAddress: strPtr("HA7 4EB, Stanmore Park, Harrow"),
		AddressDetails:  strPtr("Flat 2, 14 London Rd"),
	})
	require.NoError(t, err)
}

func fillSchedulePage(t *testing.T, svc *DefaultWizardService, id string) {
	t.Helper()
	_, err := svc.Update(context.Background(), id, models.DraftUpdate{
		CollectionDay:         strPtr("Monday"),
		CollectionTime:        strPtr("09:00 - 11:00"),
		CollectionInstruction: strPtr("Ring the bell"),
		DeliveryDay:           strPtr("Wednesday"),
		DeliveryTime:          strPtr("17:00 - 19:00"),
		DeliveryInstruction:   strPtr("Leave with concierge"),
	})
	require.NoError(t, err)
}

func fillContactPage(t *testing.T, svc *DefaultWizardService, id string) {
	t.Helper()
	_, err := svc.Update(context.Background(), id, models.DraftUpdate{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Phone:     strPtr("07700900123"),
		Email:     strPtr("ada@example.com"),
	})
	require.NoError(t, err)
}

func TestStartSession(t *testing.T) {
	svc := newTestService(t)
	session, err := svc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, PageAddress, session.CurrentPage)
	assert.Empty(t, session.CompletedSteps)
	assert.Equal(t, models.SearchModePostcode, session.Draft.SearchMode)
	assert.Equal(t, models.FrequencyOnce, session.Draft.Frequency)
	assert.Equal(t, models.ContactTypeIndividual, session.Draft.ContactType)
	assert.Empty(t, session.Draft.SelectedServices)
}

func TestUpdateRejectsInvalidEnum(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	bad := models.SearchMode("teleport")
	_, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{SearchMode: &bad})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	// The invalid value must not have been persisted.
	got, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SearchModePostcode, got.Draft.SearchMode)
}

func TestAdvanceGatedOnAddress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.SessionID)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	fillAddressPage(t, svc, session.SessionID)

	got, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, PageCollectionDelivery, got.CurrentPage)
	assert.Equal(t, []int{StepAddress}, got.CompletedSteps)
}

func TestAdvanceHotelRequiresRoomNumber(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	hotel := models.AddressTypeHotel
	_, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{
		AddressType:     &hotel,
		SelectedAddress: strPtr("Premier Inn London Stanmore"),
		HotelName:       strPtr("Premier Inn London Stanmore"),
	})
	require.NoError(t, err)

	_, err = svc.Advance(ctx, session.SessionID)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	_, err = svc.Update(ctx, session.SessionID, models.DraftUpdate{RoomNumber: strPtr("214")})
	require.NoError(t, err)

	got, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, PageCollectionDelivery, got.CurrentPage)
}

func TestSchedulePageCompletesTwoSteps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	fillAddressPage(t, svc, session.SessionID)
	_, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	fillSchedulePage(t, svc, session.SessionID)
	got, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, PageServices, got.CurrentPage)
	assert.ElementsMatch(t, []int{StepAddress, StepCollectionTime, StepDeliveryTime}, got.CompletedSteps)
}

func TestBackKeepsCompletedSteps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	fillAddressPage(t, svc, session.SessionID)
	_, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	got, err := svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, PageAddress, got.CurrentPage)
	assert.Equal(t, []int{StepAddress}, got.CompletedSteps)
}

func TestBackClampsAtFirstPage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	got, err := svc.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, PageAddress, got.CurrentPage)
}

func TestAdvanceClampsAtLastPage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	fillAddressPage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	fillSchedulePage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	fillContactPage(t, svc, id)
	got, err := svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, PagePayment, got.CurrentPage)

	// Advancing past the last page stays on it and completes its step.
	got, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, PagePayment, got.CurrentPage)
	assert.ElementsMatch(t,
		[]int{StepAddress, StepCollectionTime, StepDeliveryTime, StepServices, StepContact, StepPayment},
		got.CompletedSteps)
}

func TestAdvanceRequiresServices(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	fillAddressPage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	fillSchedulePage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestCompanyContactRequiresTaxDetails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	fillAddressPage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	fillSchedulePage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.AddService(ctx, id, "ironing", "")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	fillContactPage(t, svc, id)
	company := models.ContactTypeCompany
	_, err = svc.Update(ctx, id, models.DraftUpdate{ContactType: &company})
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	_, err = svc.Update(ctx, id, models.DraftUpdate{
		CompanyName: strPtr("Acme Ltd"),
		TaxNumber:   strPtr("GB123456789"),
	})
	require.NoError(t, err)

	got, err := svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, PagePayment, got.CurrentPage)
}

func TestAddServiceLocksCatalogPrice(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	got, err := svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)
	require.Len(t, got.Draft.SelectedServices, 1)
	assert.Equal(t, "Dry Cleaning", got.Draft.SelectedServices[0].Name)
	assert.Equal(t, 6.99, got.Draft.SelectedServices[0].UnitPrice)
}

func TestAddServiceUnknownItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.AddService(ctx, session.SessionID, "helicopter-wash", "")
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestAddWashRequiresWashType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.AddService(ctx, id, "wash", "")
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	got, err := svc.AddService(ctx, id, "wash", models.WashTypeSeparate)
	require.NoError(t, err)
	require.Len(t, got.Draft.SelectedServices, 1)
	assert.Equal(t, "Wash (separate)", got.Draft.SelectedServices[0].Name)
	assert.Equal(t, 24.99, got.Draft.SelectedServices[0].UnitPrice)
	assert.Equal(t, models.WashTypeSeparate, got.Draft.SelectedServices[0].WashType)
}

func TestAddServiceRejectsWashTypeOnPlainItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.AddService(ctx, session.SessionID, "ironing", models.WashTypeMix)
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestDuplicateServicesAccumulate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)
	got, err := svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)

	require.Len(t, got.Draft.SelectedServices, 2)
	assert.InDelta(t, 13.98, got.Draft.TotalPrice(), 1e-9)
}

func TestRemoveServiceTakesFirstOccurrence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)
	_, err = svc.AddService(ctx, id, "ironing", "")
	require.NoError(t, err)
	_, err = svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)

	got, err := svc.RemoveService(ctx, id, "dry-cleaning")
	require.NoError(t, err)
	require.Len(t, got.Draft.SelectedServices, 2)
	assert.Equal(t, "ironing", got.Draft.SelectedServices[0].ID)
	assert.Equal(t, "dry-cleaning", got.Draft.SelectedServices[1].ID)
}

func TestRemoveThenAddRestoresTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.AddService(ctx, id, "wash", models.WashTypeMix)
	require.NoError(t, err)
	_, err = svc.AddService(ctx, id, "wash-iron", "")
	require.NoError(t, err)
	got, err := svc.AddService(ctx, id, "dry-cleaning", "")
	require.NoError(t, err)
	before := got.Draft.TotalPrice()
	assert.InDelta(t, 28.48, before, 1e-9)

	_, err = svc.RemoveService(ctx, id, "wash-iron")
	require.NoError(t, err)
	got, err = svc.AddService(ctx, id, "wash-iron", "")
	require.NoError(t, err)

	assert.InDelta(t, before, got.Draft.TotalPrice(), 1e-9)
}

func TestRemoveAbsentServiceIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.AddService(ctx, id, "repairs", "")
	require.NoError(t, err)

	got, err := svc.RemoveService(ctx, id, "duvets")
	require.NoError(t, err)
	assert.Len(t, got.Draft.SelectedServices, 1)
}

func TestCancelDiscardsSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, session.SessionID))

	_, err = svc.Get(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestViewProgressIndicator(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	session, err := svc.Start(ctx)
	require.NoError(t, err)
	id := session.SessionID

	fillAddressPage(t, svc, id)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)

	view := View(got)
	require.Len(t, view.Steps, 6)
	assert.True(t, view.Steps[StepAddress].Completed)
	assert.False(t, view.Steps[StepAddress].Active)

	// Both schedule steps sit on the now-active page.
	assert.True(t, view.Steps[StepCollectionTime].Active)
	assert.True(t, view.Steps[StepDeliveryTime].Active)
	assert.False(t, view.Steps[StepCollectionTime].Completed)
	assert.Equal(t, 0.0, view.TotalPrice)
}
