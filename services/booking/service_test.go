package booking

import (
	"errors"
	"testing"
	"time"

	"trimly/models"
	"trimly/services/tasks"
	"trimly/utils"
)

// --- mocks ---

type mockBookingRepo struct {
	CreateFunc         func(b *models.Booking) error
	GetByIDFunc        func(id string) (*models.Booking, error)
	UpdateFunc         func(b *models.Booking) error
	SetPaymentIDFunc   func(bookingID, paymentID string) error
	CountActiveFunc    func(shopID, date string) (int, error)
	ListByCustomerFunc func(customerID string) ([]models.Booking, error)
	ListByShopFunc     func(shopID string, status models.BookingStatus) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(b *models.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(b)
	}
	return nil
}
func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}
func (m *mockBookingRepo) Update(b *models.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(b)
	}
	return nil
}
func (m *mockBookingRepo) SetPaymentID(bookingID, paymentID string) error {
	if m.SetPaymentIDFunc != nil {
		return m.SetPaymentIDFunc(bookingID, paymentID)
	}
	return nil
}
func (m *mockBookingRepo) CountActive(shopID, date string) (int, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(shopID, date)
	}
	return 0, nil
}
func (m *mockBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(customerID)
	}
	return nil, nil
}
func (m *mockBookingRepo) ListByShop(shopID string, status models.BookingStatus) ([]models.Booking, error) {
	if m.ListByShopFunc != nil {
		return m.ListByShopFunc(shopID, status)
	}
	return nil, nil
}

type mockShopRepo struct {
	GetByIDFunc        func(id string) (*models.Shop, error)
	IncrementQueueFunc func(shopID string, estimatedWaitTime int) error
	DecrementQueueFunc func(shopID string) error

	incrementCalls int
	decrementCalls int
}

func (m *mockShopRepo) GetByID(id string) (*models.Shop, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}
func (m *mockShopRepo) IncrementQueue(shopID string, estimatedWaitTime int) error {
	m.incrementCalls++
	if m.IncrementQueueFunc != nil {
		return m.IncrementQueueFunc(shopID, estimatedWaitTime)
	}
	return nil
}
func (m *mockShopRepo) DecrementQueue(shopID string) error {
	m.decrementCalls++
	if m.DecrementQueueFunc != nil {
		return m.DecrementQueueFunc(shopID)
	}
	return nil
}

type mockUserRepo struct {
	GetByIDFunc func(id string) (*models.User, error)
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

type mockNotifier struct {
	requested int
	approved  int
	rejected  int
	reminders int
}

func (m *mockNotifier) NotifyBookingRequested(b *models.Booking, ownerEmail, customerEmail, customerName string, estimatedWaitTime int) {
	m.requested++
}
func (m *mockNotifier) NotifyBookingApproved(b *models.Booking, customerEmail string) { m.approved++ }
func (m *mockNotifier) NotifyBookingRejected(b *models.Booking, customerEmail string) { m.rejected++ }
func (m *mockNotifier) NotifyBookingReminder(customerEmail, shopName, serviceName, date, timeOfDay string) {
	m.reminders++
}

type mockReminderScheduler struct {
	scheduled []tasks.BookingReminderPayload
	fireAts   []time.Time
	err       error
}

func (m *mockReminderScheduler) ScheduleBookingReminder(payload tasks.BookingReminderPayload, fireAt time.Time) error {
	m.scheduled = append(m.scheduled, payload)
	m.fireAts = append(m.fireAts, fireAt)
	return m.err
}

// --- fixtures ---

func testShop() *models.Shop {
	return &models.Shop{
		ID:       "shop-1",
		OwnerID:  "owner-1",
		ShopName: "Fade Factory",
		Services: []models.ShopService{
			{Name: "Haircut", Price: 10, Duration: 30},
		},
	}
}

func testUsers() *mockUserRepo {
	return &mockUserRepo{GetByIDFunc: func(id string) (*models.User, error) {
		switch id {
		case "owner-1":
			return &models.User{ID: "owner-1", Name: "Owner", Email: "owner@example.com"}, nil
		case "cust-1":
			return &models.User{ID: "cust-1", Name: "Asha", Email: "asha@example.com"}, nil
		}
		return nil, nil
	}}
}

func newTestService(bookings *mockBookingRepo, shops *mockShopRepo) (*DefaultBookingService, *mockNotifier) {
	notifier := &mockNotifier{}
	svc := &DefaultBookingService{
		Repo:     bookings,
		ShopRepo: shops,
		UserRepo: testUsers(),
		Notifier: notifier,
	}
	return svc, notifier
}

func assertKind(t *testing.T, err error, kind utils.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Kind != kind {
		t.Fatalf("expected error kind %s, got %s (%v)", kind, appErr.Kind, err)
	}
}

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerID:  "cust-1",
		ShopID:      "shop-1",
		ServiceName: "Haircut",
		BookingDate: "2026-09-15",
		BookingTime: "14:30",
		Price:       10,
	}
}

// --- Create ---

func TestCreateAssignsQueuePositionAndIncrementsLedger(t *testing.T) {
	var created *models.Booking
	var incWait int
	bookings := &mockBookingRepo{
		CountActiveFunc: func(shopID, date string) (int, error) { return 3, nil },
		CreateFunc:      func(b *models.Booking) error { created = b; return nil },
	}
	shops := &mockShopRepo{
		GetByIDFunc:        func(id string) (*models.Shop, error) { return testShop(), nil },
		IncrementQueueFunc: func(shopID string, wait int) error { incWait = wait; return nil },
	}
	svc, notifier := newTestService(bookings, shops)

	res, err := svc.Create(validCreateRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created == nil {
		t.Fatal("booking was not persisted")
	}
	if created.Status != models.BookingPending {
		t.Errorf("expected status pending, got %s", created.Status)
	}
	if created.QueuePosition != 4 {
		t.Errorf("expected queue position 4, got %d", created.QueuePosition)
	}
	if res.EstimatedWaitTime != 45 {
		t.Errorf("expected estimated wait 45, got %d", res.EstimatedWaitTime)
	}
	if incWait != 60 {
		t.Errorf("expected ledger wait 60, got %d", incWait)
	}
	if shops.incrementCalls != 1 {
		t.Errorf("expected exactly one ledger increment, got %d", shops.incrementCalls)
	}
	if created.ShopName != "Fade Factory" {
		t.Errorf("expected shop name snapshot, got %q", created.ShopName)
	}
	if notifier.requested != 1 {
		t.Errorf("expected one request notification, got %d", notifier.requested)
	}
}

func TestCreateEmptyQueueGetsPositionOne(t *testing.T) {
	bookings := &mockBookingRepo{
		CountActiveFunc: func(shopID, date string) (int, error) { return 0, nil },
	}
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(bookings, shops)

	res, err := svc.Create(validCreateRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.Booking.QueuePosition != 1 {
		t.Errorf("expected queue position 1, got %d", res.Booking.QueuePosition)
	}
	if res.EstimatedWaitTime != 0 {
		t.Errorf("expected estimated wait 0, got %d", res.EstimatedWaitTime)
	}
}

func TestCreateDefaultsPriceFromCatalog(t *testing.T) {
	bookings := &mockBookingRepo{}
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(bookings, shops)

	req := validCreateRequest()
	req.Price = 0
	res, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.Booking.Price != 10 {
		t.Errorf("expected catalog price 10, got %v", res.Booking.Price)
	}
}

func TestCreateUnknownServiceWithoutPriceIsRejected(t *testing.T) {
	bookings := &mockBookingRepo{}
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(bookings, shops)

	req := validCreateRequest()
	req.ServiceName = "Hot Towel Shave"
	req.Price = 0
	_, err := svc.Create(req)
	assertKind(t, err, utils.KindValidation)
}

func TestCreateShopNotFound(t *testing.T) {
	svc, _ := newTestService(&mockBookingRepo{}, &mockShopRepo{})
	_, err := svc.Create(validCreateRequest())
	assertKind(t, err, utils.KindNotFound)
}

func TestCreateOwnerWithoutEmailIsRejected(t *testing.T) {
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(&mockBookingRepo{}, shops)
	svc.UserRepo = &mockUserRepo{GetByIDFunc: func(id string) (*models.User, error) {
		if id == "owner-1" {
			return &models.User{ID: "owner-1", Name: "Owner"}, nil
		}
		return &models.User{ID: id, Email: "x@example.com"}, nil
	}}

	_, err := svc.Create(validCreateRequest())
	assertKind(t, err, utils.KindValidation)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(&mockBookingRepo{}, &mockShopRepo{})

	cases := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"missing shop", func(r *CreateBookingRequest) { r.ShopID = "" }},
		{"missing service", func(r *CreateBookingRequest) { r.ServiceName = "" }},
		{"missing date", func(r *CreateBookingRequest) { r.BookingDate = "" }},
		{"bad date format", func(r *CreateBookingRequest) { r.BookingDate = "15/09/2026" }},
		{"missing time", func(r *CreateBookingRequest) { r.BookingTime = "" }},
		{"bad time format", func(r *CreateBookingRequest) { r.BookingTime = "2pm" }},
		{"negative price", func(r *CreateBookingRequest) { r.Price = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.Create(req)
			assertKind(t, err, utils.KindValidation)
		})
	}
}

func TestCreateLedgerFailureSurfaces(t *testing.T) {
	shops := &mockShopRepo{
		GetByIDFunc:        func(id string) (*models.Shop, error) { return testShop(), nil },
		IncrementQueueFunc: func(shopID string, wait int) error { return errors.New("write conflict") },
	}
	svc, _ := newTestService(&mockBookingRepo{}, shops)

	_, err := svc.Create(validCreateRequest())
	assertKind(t, err, utils.KindInternal)
}

// --- TransitionStatus ---

func pendingBooking() *models.Booking {
	// A slot far enough out that reminder scheduling is never skipped.
	slot := time.Now().UTC().AddDate(0, 0, 7)
	return &models.Booking{
		ID:          "bk-1",
		CustomerID:  "cust-1",
		ShopID:      "shop-1",
		ShopName:    "Fade Factory",
		ServiceName: "Haircut",
		BookingDate: slot.Format(models.BookingDateLayout),
		BookingTime: "14:30",
		Price:       10,
		Status:      models.BookingPending,
	}
}

func transitionFixture(status models.BookingStatus) (*DefaultBookingService, *mockShopRepo, *mockNotifier, **models.Booking) {
	b := pendingBooking()
	b.Status = status
	var updated *models.Booking
	bookings := &mockBookingRepo{
		GetByIDFunc: func(id string) (*models.Booking, error) { return b, nil },
		UpdateFunc:  func(bk *models.Booking) error { updated = bk; return nil },
	}
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, notifier := newTestService(bookings, shops)
	return svc, shops, notifier, &updated
}

func TestOwnerApprovesPendingBooking(t *testing.T) {
	svc, shops, notifier, updated := transitionFixture(models.BookingPending)

	b, err := svc.TransitionStatus("bk-1", "owner-1", models.BookingApproved, "")
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if b.Status != models.BookingApproved {
		t.Errorf("expected approved, got %s", b.Status)
	}
	if *updated == nil {
		t.Fatal("booking was not persisted")
	}
	if shops.decrementCalls != 0 {
		t.Errorf("approval must not decrement the queue, got %d calls", shops.decrementCalls)
	}
	if notifier.approved != 1 {
		t.Errorf("expected one approval notification, got %d", notifier.approved)
	}
}

func TestCustomerCannotApprove(t *testing.T) {
	svc, _, _, _ := transitionFixture(models.BookingPending)
	_, err := svc.TransitionStatus("bk-1", "cust-1", models.BookingApproved, "")
	assertKind(t, err, utils.KindForbidden)
}

func TestCustomerCannotReject(t *testing.T) {
	svc, _, _, _ := transitionFixture(models.BookingPending)
	_, err := svc.TransitionStatus("bk-1", "cust-1", models.BookingRejected, "")
	assertKind(t, err, utils.KindForbidden)
}

func TestStrangerCannotTransition(t *testing.T) {
	svc, _, _, _ := transitionFixture(models.BookingConfirmed)
	_, err := svc.TransitionStatus("bk-1", "someone-else", models.BookingCancelled, "")
	assertKind(t, err, utils.KindForbidden)
}

func TestRejectionDecrementsLedgerAndNotifies(t *testing.T) {
	svc, shops, notifier, _ := transitionFixture(models.BookingPending)

	b, err := svc.TransitionStatus("bk-1", "owner-1", models.BookingRejected, "")
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if b.Status != models.BookingRejected {
		t.Errorf("expected rejected, got %s", b.Status)
	}
	if shops.decrementCalls != 1 {
		t.Errorf("rejection must decrement the queue once, got %d", shops.decrementCalls)
	}
	if notifier.rejected != 1 {
		t.Errorf("expected one rejection notification, got %d", notifier.rejected)
	}
}

func TestCompletionStampsTimestampAndDecrements(t *testing.T) {
	svc, shops, _, _ := transitionFixture(models.BookingInProgress)

	before := time.Now().UTC()
	b, err := svc.TransitionStatus("bk-1", "cust-1", models.BookingCompleted, "")
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if b.CompletedAt == nil {
		t.Fatal("expected completedAt to be set")
	}
	if b.CompletedAt.Before(before) {
		t.Errorf("completedAt %v is before the transition", b.CompletedAt)
	}
	if shops.decrementCalls != 1 {
		t.Errorf("completion must decrement the queue once, got %d", shops.decrementCalls)
	}
}

func TestCancellationRecordsReasonAndDecrements(t *testing.T) {
	svc, shops, _, _ := transitionFixture(models.BookingApproved)

	b, err := svc.TransitionStatus("bk-1", "cust-1", models.BookingCancelled, "running late")
	if err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if b.CancellationReason != "running late" {
		t.Errorf("expected cancellation reason to be recorded, got %q", b.CancellationReason)
	}
	if shops.decrementCalls != 1 {
		t.Errorf("cancellation must decrement the queue once, got %d", shops.decrementCalls)
	}
}

func TestIllegalTransitionsAreConflicts(t *testing.T) {
	cases := []struct {
		from models.BookingStatus
		to   models.BookingStatus
	}{
		{models.BookingPending, models.BookingConfirmed},
		{models.BookingPending, models.BookingCompleted},
		{models.BookingApproved, models.BookingInProgress},
		{models.BookingCompleted, models.BookingCancelled},
		{models.BookingRejected, models.BookingApproved},
		{models.BookingCancelled, models.BookingPending},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			svc, shops, _, _ := transitionFixture(tc.from)
			_, err := svc.TransitionStatus("bk-1", "owner-1", tc.to, "")
			assertKind(t, err, utils.KindInvalidTransition)
			if shops.decrementCalls != 0 {
				t.Errorf("rejected transition must not touch the ledger, got %d calls", shops.decrementCalls)
			}
		})
	}
}

func TestUnknownStatusIsValidationError(t *testing.T) {
	svc, _, _, _ := transitionFixture(models.BookingPending)
	_, err := svc.TransitionStatus("bk-1", "owner-1", "finished", "")
	assertKind(t, err, utils.KindValidation)
}

func TestTransitionBookingNotFound(t *testing.T) {
	svc, _ := newTestService(&mockBookingRepo{}, &mockShopRepo{})
	_, err := svc.TransitionStatus("missing", "owner-1", models.BookingApproved, "")
	assertKind(t, err, utils.KindNotFound)
}

func TestApprovalSchedulesReminder(t *testing.T) {
	svc, _, _, _ := transitionFixture(models.BookingPending)
	scheduler := &mockReminderScheduler{}
	svc.Reminders = scheduler

	if _, err := svc.TransitionStatus("bk-1", "owner-1", models.BookingApproved, ""); err != nil {
		t.Fatalf("TransitionStatus failed: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("expected one reminder scheduled, got %d", len(scheduler.scheduled))
	}
	p := scheduler.scheduled[0]
	if p.BookingID != "bk-1" || p.CustomerEmail != "asha@example.com" {
		t.Errorf("unexpected reminder payload: %+v", p)
	}
	if got := scheduler.fireAts[0]; !got.After(time.Now().UTC()) {
		t.Errorf("reminder %v should fire in the future", got)
	}
}

func TestSchedulerFailureDoesNotFailApproval(t *testing.T) {
	svc, _, _, _ := transitionFixture(models.BookingPending)
	svc.Reminders = &mockReminderScheduler{err: errors.New("redis down")}

	if _, err := svc.TransitionStatus("bk-1", "owner-1", models.BookingApproved, ""); err != nil {
		t.Fatalf("scheduler failure must not fail the transition: %v", err)
	}
}

// --- Reschedule ---

func TestRescheduleUpdatesDateAndTime(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingApproved
	bookings := &mockBookingRepo{GetByIDFunc: func(id string) (*models.Booking, error) { return b, nil }}
	svc, _ := newTestService(bookings, &mockShopRepo{})

	updated, err := svc.Reschedule("bk-1", "cust-1", RescheduleRequest{BookingDate: "2026-09-20", BookingTime: "10:00"})
	if err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}
	if updated.BookingDate != "2026-09-20" || updated.BookingTime != "10:00" {
		t.Errorf("expected new slot, got %s %s", updated.BookingDate, updated.BookingTime)
	}
	if updated.Status != models.BookingApproved {
		t.Errorf("reschedule without status must not change status, got %s", updated.Status)
	}
}

func TestRescheduleToPendingResetsQueuePosition(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingApproved
	b.QueuePosition = 4
	bookings := &mockBookingRepo{GetByIDFunc: func(id string) (*models.Booking, error) { return b, nil }}
	svc, _ := newTestService(bookings, &mockShopRepo{})

	updated, err := svc.Reschedule("bk-1", "cust-1", RescheduleRequest{Status: "pending"})
	if err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}
	if updated.Status != models.BookingPending {
		t.Errorf("expected pending, got %s", updated.Status)
	}
	if updated.QueuePosition != 0 {
		t.Errorf("expected queue position reset to 0, got %d", updated.QueuePosition)
	}
}

func TestRescheduleTerminalBookingCannotRequeue(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingCompleted, models.BookingRejected, models.BookingCancelled} {
		t.Run(string(status), func(t *testing.T) {
			b := pendingBooking()
			b.Status = status
			bookings := &mockBookingRepo{GetByIDFunc: func(id string) (*models.Booking, error) { return b, nil }}
			svc, _ := newTestService(bookings, &mockShopRepo{})

			_, err := svc.Reschedule("bk-1", "cust-1", RescheduleRequest{Status: "pending"})
			assertKind(t, err, utils.KindInvalidTransition)
		})
	}
}

func TestRescheduleRejectsBadDate(t *testing.T) {
	bookings := &mockBookingRepo{GetByIDFunc: func(id string) (*models.Booking, error) { return pendingBooking(), nil }}
	svc, _ := newTestService(bookings, &mockShopRepo{})

	_, err := svc.Reschedule("bk-1", "cust-1", RescheduleRequest{BookingDate: "tomorrow"})
	assertKind(t, err, utils.KindValidation)
}

func TestRescheduleByStranger(t *testing.T) {
	bookings := &mockBookingRepo{GetByIDFunc: func(id string) (*models.Booking, error) { return pendingBooking(), nil }}
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(bookings, shops)

	_, err := svc.Reschedule("bk-1", "someone-else", RescheduleRequest{BookingDate: "2026-09-20"})
	assertKind(t, err, utils.KindForbidden)
}

// --- listings ---

func TestListForCustomerEnforcesOwnership(t *testing.T) {
	svc, _ := newTestService(&mockBookingRepo{}, &mockShopRepo{})
	_, err := svc.ListForCustomer("cust-1", "cust-2")
	assertKind(t, err, utils.KindForbidden)
}

func TestListForShopOwnerOnly(t *testing.T) {
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(&mockBookingRepo{}, shops)

	_, err := svc.ListForShop("shop-1", "cust-1", "")
	assertKind(t, err, utils.KindForbidden)
}

func TestListForShopRejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := newTestService(&mockBookingRepo{}, &mockShopRepo{})
	_, err := svc.ListForShop("shop-1", "owner-1", "done")
	assertKind(t, err, utils.KindValidation)
}

func TestListForShopPassesStatusFilter(t *testing.T) {
	var gotStatus models.BookingStatus
	bookings := &mockBookingRepo{
		ListByShopFunc: func(shopID string, status models.BookingStatus) ([]models.Booking, error) {
			gotStatus = status
			return []models.Booking{*pendingBooking()}, nil
		},
	}
	shops := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return testShop(), nil }}
	svc, _ := newTestService(bookings, shops)

	out, err := svc.ListForShop("shop-1", "owner-1", models.BookingPending)
	if err != nil {
		t.Fatalf("ListForShop failed: %v", err)
	}
	if gotStatus != models.BookingPending {
		t.Errorf("expected status filter pending, got %q", gotStatus)
	}
	if len(out) != 1 {
		t.Errorf("expected 1 booking, got %d", len(out))
	}
}
