package mocks

import (
	"context"

	"github.com/showsphere/showsphere-cli/internal/domain"
)

type MockBookingAPI struct {
	domain.BookingAPI
	VerifyTokenFunc       func(ctx context.Context, token string) (*domain.User, error)
	UpdateUserFunc        func(ctx context.Context, userID string, fields domain.UserUpdate) (*domain.User, error)
	FetchShowFunc         func(ctx context.Context, params domain.ShowParams) (*domain.Show, error)
	CreatePaymentLinkFunc func(ctx context.Context, order domain.PurchaseOrder) (*domain.PaymentLink, error)
	VerifyPaymentFunc     func(ctx context.Context, linkID string) (*domain.PaymentResult, error)
	SendInvoiceFunc       func(ctx context.Context, email string, result domain.PaymentResult) error
}

func (m *MockBookingAPI) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	return m.VerifyTokenFunc(ctx, token)
}

func (m *MockBookingAPI) UpdateUser(ctx context.Context, userID string, fields domain.UserUpdate) (*domain.User, error) {
	return m.UpdateUserFunc(ctx, userID, fields)
}

func (m *MockBookingAPI) FetchShow(ctx context.Context, params domain.ShowParams) (*domain.Show, error) {
	return m.FetchShowFunc(ctx, params)
}

func (m *MockBookingAPI) CreatePaymentLink(ctx context.Context, order domain.PurchaseOrder) (*domain.PaymentLink, error) {
	return m.CreatePaymentLinkFunc(ctx, order)
}

func (m *MockBookingAPI) VerifyPayment(ctx context.Context, linkID string) (*domain.PaymentResult, error) {
	return m.VerifyPaymentFunc(ctx, linkID)
}

func (m *MockBookingAPI) SendInvoice(ctx context.Context, email string, result domain.PaymentResult) error {
	return m.SendInvoiceFunc(ctx, email, result)
}
