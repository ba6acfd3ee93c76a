package orderrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepositoryIntegrationTestSuite struct {
	pgtest.Suite
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Truncate("orders", "order_line_items")
	suite.repository = orderrepo.NewGormOrderRepository(suite.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(method order.PaymentMethod, instrumentID *kernel.UUID) *order.Order {
	first, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), suite.money("30.00"), 2)
	suite.Require().NoError(err)
	second, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), suite.money("10.00"), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.LineItem{first, second},
		method, instrumentID, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	o := suite.newOrder(order.Pix, nil)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(got.IsEqual(o))
	suite.Equal(o.OwnerID(), got.OwnerID())
	suite.Equal("70.00", got.Total().String())
	suite.Equal("0.00", got.Discount().String())
	suite.Equal(order.Pix, got.PaymentMethod())
	suite.Nil(got.PaymentInstrumentID())
	suite.Equal(order.Processing, got.Status())
	suite.Nil(got.TrackingCode())
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))

	suite.Require().Len(got.LineItems(), 2)
	for i, item := range o.LineItems() {
		suite.Equal(item.ID(), got.LineItems()[i].ID())
		suite.Equal(item.ProductID(), got.LineItems()[i].ProductID())
		suite.True(item.UnitPrice().IsEqual(got.LineItems()[i].UnitPrice()))
		suite.Equal(item.Quantity(), got.LineItems()[i].Quantity())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_CreditCardKeepsInstrument() {
	ctx := context.Background()
	instrumentID := kernel.NewUUID()
	o := suite.newOrder(order.CreditCard, &instrumentID)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.PaymentInstrumentID())
	suite.Equal(instrumentID, *got.PaymentInstrumentID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Twice_Conflicts() {
	ctx := context.Background()
	o := suite.newOrder(order.Boleto, nil)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndTrackingCode() {
	ctx := context.Background()
	o := suite.newOrder(order.Pix, nil)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	code, err := order.GenerateTrackingCode()
	suite.Require().NoError(err)
	suite.Require().NoError(o.MoveTo(order.PaymentApproved))
	suite.Require().NoError(o.IssueInvoice(code))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InvoiceIssued, got.Status())
	suite.Require().NotNil(got.TrackingCode())
	suite.True(code.IsEqual(*got.TrackingCode()))

	exists, err := suite.repository.TrackingCodeExists(ctx, code)
	suite.Require().NoError(err)
	suite.True(exists)

	other, err := order.GenerateTrackingCode()
	suite.Require().NoError(err)
	exists, err = suite.repository.TrackingCodeExists(ctx, other)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DuplicateTrackingCode_Conflicts() {
	ctx := context.Background()
	code, err := order.GenerateTrackingCode()
	suite.Require().NoError(err)

	first := suite.newOrder(order.Pix, nil)
	second := suite.newOrder(order.Pix, nil)
	for _, o := range []*order.Order{first, second} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
		suite.Require().NoError(o.MoveTo(order.PaymentApproved))
		suite.Require().NoError(o.IssueInvoice(code))
	}

	suite.Require().NoError(suite.repository.Update(ctx, first))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newOrder(order.Pix, nil)

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Two transactions moving the same order: the second one blocks on the row
// lock and then sees the status written by the first.
func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesTransitions() {
	ctx := context.Background()
	o := suite.newOrder(order.Pix, nil)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
		refused int
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.DB.Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx)
				locked, err := repo.GetForUpdate(ctx, o.ID())
				if err != nil {
					return err
				}
				if err = locked.MoveTo(order.PaymentApproved); err != nil {
					return err
				}
				time.Sleep(50 * time.Millisecond)
				return repo.Update(ctx, locked)
			})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				applied++
			} else if errors.Is(err, errs.ErrInvalidTransition) {
				refused++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, applied)
	suite.Equal(1, refused)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
