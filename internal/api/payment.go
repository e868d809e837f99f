package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/showsphere/showsphere-cli/internal/domain"
)

// CreatePaymentLink asks the server for a hosted payment page covering the
// order. The total is repeated as a query parameter, matching the server
// contract.
func (c *Client) CreatePaymentLink(ctx context.Context, order domain.PurchaseOrder) (*domain.PaymentLink, error) {
	query := url.Values{"totalAmount": {order.Amount.String()}}

	var link domain.PaymentLink

	err := c.do(ctx, http.MethodPost, "/payment/create-link", query, "", order, &link)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// VerifyPayment queries the current status of a payment link.
func (c *Client) VerifyPayment(ctx context.Context, linkID string) (*domain.PaymentResult, error) {
	query := url.Values{"link_id": {linkID}}

	var result domain.PaymentResult

	err := c.do(ctx, http.MethodGet, "/payment/verify", query, "", nil, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SendInvoice asks the server to mail the receipt for a paid link. The body
// is the verification payload itself.
func (c *Client) SendInvoice(ctx context.Context, email string, result domain.PaymentResult) error {
	query := url.Values{"email": {email}}

	return c.do(ctx, http.MethodPost, "/email/invoice", query, "", result, nil)
}
