package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"repair-console/internal/models"
)

func (c *Client) ListCustomers(ctx context.Context, page int) (Page[models.Customer], error) {
	v := url.Values{}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return getList[models.Customer](ctx, c, "/api/customers", v)
}

func (c *Client) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	return getData[models.Customer](ctx, c, "/api/customers/"+strconv.Itoa(id), nil)
}

func (c *Client) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (models.Customer, error) {
	return postData[models.Customer](ctx, c, "/api/customers", req)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (models.Customer, error) {
	return putData[models.Customer](ctx, c, "/api/customers/"+strconv.Itoa(id), req)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.delete(ctx, "/api/customers/"+strconv.Itoa(id))
}
