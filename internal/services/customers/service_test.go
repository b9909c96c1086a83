package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cooleradmin/internal/adapters/upstream"
	"cooleradmin/internal/domain"
	"cooleradmin/internal/magiclink"
	"cooleradmin/internal/ports"
)

type fakeAPI struct {
	ports.CoolerClient

	created   domain.NewCustomer
	patched   domain.CustomerPatch
	getErr    error
	customers map[string]domain.Customer
}

func (f *fakeAPI) CreateCustomer(ctx context.Context, nc domain.NewCustomer) (domain.Customer, error) {
	f.created = nc
	return domain.Customer{ID: "cust_new", Name: nc.Name, Email: nc.Email}, nil
}

func (f *fakeAPI) UpdateCustomer(ctx context.Context, id string, patch domain.CustomerPatch) (domain.Customer, error) {
	f.patched = patch
	return f.customers[id], nil
}

func (f *fakeAPI) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	if f.getErr != nil {
		return domain.Customer{}, f.getErr
	}
	c, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, upstream.ErrNotFound
	}
	return c, nil
}

func newIssuer(t *testing.T) *magiclink.Issuer {
	t.Helper()
	iss, err := magiclink.NewIssuer("test-secret", "https://app.example.com/impersonate", 10*time.Minute)
	require.NoError(t, err)
	return iss
}

func TestCreateValidation(t *testing.T) {
	svc := New(&fakeAPI{}, newIssuer(t))

	var ve *ports.ValidationError
	_, err := svc.Create(context.Background(), domain.NewCustomer{Email: "a@b.co"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = svc.Create(context.Background(), domain.NewCustomer{Name: "ACME", Email: "not-an-email"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestCreateTrimsAndForwards(t *testing.T) {
	api := &fakeAPI{}
	svc := New(api, newIssuer(t))

	cust, err := svc.Create(context.Background(), domain.NewCustomer{Name: "  ACME  ", Email: " ops@acme.io "})
	require.NoError(t, err)
	assert.Equal(t, "ACME", api.created.Name)
	assert.Equal(t, "ops@acme.io", api.created.Email)
	assert.Equal(t, "cust_new", cust.ID)
}

func TestUpdateValidation(t *testing.T) {
	svc := New(&fakeAPI{customers: map[string]domain.Customer{}}, newIssuer(t))

	bad := "nope"
	var ve *ports.ValidationError
	_, err := svc.Update(context.Background(), "cust_1", domain.CustomerPatch{Email: &bad})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	status := "archived"
	_, err = svc.Update(context.Background(), "cust_1", domain.CustomerPatch{Status: &status})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}

func TestMagicLinkUnknownCustomer(t *testing.T) {
	svc := New(&fakeAPI{customers: map[string]domain.Customer{}}, newIssuer(t))

	_, err := svc.MagicLink(context.Background(), "cust_missing")
	assert.ErrorIs(t, err, upstream.ErrNotFound)
}

func TestMagicLinkRoundTrip(t *testing.T) {
	api := &fakeAPI{customers: map[string]domain.Customer{
		"cust_1": {ID: "cust_1", Name: "ACME"},
	}}
	iss := newIssuer(t)
	svc := New(api, iss)

	link, err := svc.MagicLink(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Contains(t, link.URL, "token=")
	assert.True(t, link.ExpiresAt.After(time.Now()))

	customerID, err := iss.Verify(link.Token)
	require.NoError(t, err)
	assert.Equal(t, "cust_1", customerID)
}
