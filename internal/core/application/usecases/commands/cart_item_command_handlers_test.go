package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	product := ports.Product{ID: kernel.NewUUID(), Name: "Mug", Price: kernel.MustMoney("10.00")}
	cmd, err := commands.NewAddCartItemCommand(userID, product.ID, 3)
	require.NoError(t, err)

	catalog := new(MockCatalog)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Catalog").Return(catalog).Once(),
		catalog.On("GetProduct", mock.Anything, product.ID).Return(product, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Add", mock.Anything, mock.AnythingOfType("*cart.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, item.BelongsTo(userID))
	assert.True(t, item.ProductID().IsEqual(product.ID))
	assert.Equal(t, 3, item.Quantity())

	catalog.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddCartItemCommand(kernel.NewUUID(), productID, 1)

	catalog := new(MockCatalog)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Catalog").Return(catalog).Once()
	catalog.On("GetProduct", mock.Anything, productID).
		Return(ports.Product{}, errs.NewObjectNotFoundError("product", productID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "CartRepository")
	uow.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	item := mustItem(userID, kernel.NewUUID(), 1)
	cmd, err := commands.NewRemoveCartItemCommand(userID, item.ID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		cartRepo.On("Remove", mock.Anything, item.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle_ForeignItemIsForbidden(t *testing.T) {
	ctx := t.Context()
	item := mustItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	cmd, _ := commands.NewRemoveCartItemCommand(kernel.NewUUID(), item.ID())

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	cartRepo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRemoveCartItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewRemoveCartItemCommand(kernel.NewUUID(), itemID)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("Get", mock.Anything, itemID).
		Return(nil, errs.NewObjectNotFoundError("cartItem", itemID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCartItemCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestChangeCartItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	item := mustItem(userID, kernel.NewUUID(), 1)
	cmd, err := commands.NewChangeCartItemQuantityCommand(userID, item.ID(), 4)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		cartRepo.On("Update", mock.Anything, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeCartItemQuantityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity())
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeCartItemQuantityCommandHandler_Handle_ItemConvertedMeanwhile(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	item := mustItem(userID, kernel.NewUUID(), 1)
	cmd, _ := commands.NewChangeCartItemQuantityCommand(userID, item.ID(), 2)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
	cartRepo.On("Update", mock.Anything, item).
		Return(errs.NewObjectNotFoundError("cartItem", item.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeCartItemQuantityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeCartItemQuantityCommandHandler_Handle_ForeignItemIsForbidden(t *testing.T) {
	ctx := t.Context()
	item := mustItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	cmd, _ := commands.NewChangeCartItemQuantityCommand(kernel.NewUUID(), item.ID(), 2)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	cartRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeCartItemQuantityCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, 1, item.Quantity())
	cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
