package apiclient

import (
	"context"

	"repair-console/internal/models"
)

// Catalog endpoints feed the console's form selects. They use the simple
// {data, error} envelope; the catalogs are small and unpaginated.

func (c *Client) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return getData[[]models.Brand](ctx, c, "/api/brands", nil)
}

func (c *Client) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	return getData[[]models.Technician](ctx, c, "/api/technicians", nil)
}

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	return getData[[]models.Location](ctx, c, "/api/locations", nil)
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return getData[[]models.PaymentMethod](ctx, c, "/api/payment-methods", nil)
}
