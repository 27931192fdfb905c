package vendors

import (
	"context"
	"testing"

	"shubharambh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFinder serves canned vendors keyed by each lookup dimension and
// records which lookups ran, so tests can assert the chain's order.
type fakeFinder struct {
	byUserID  map[string]*models.Vendor
	byEmail   map[string]*models.Vendor
	byName    map[string]*models.Vendor
	calls     []string
	backfills map[string]string // vendorID -> userID
}

func newFakeFinder() *fakeFinder {
	return &fakeFinder{
		byUserID:  map[string]*models.Vendor{},
		byEmail:   map[string]*models.Vendor{},
		byName:    map[string]*models.Vendor{},
		backfills: map[string]string{},
	}
}

func (f *fakeFinder) ByUserID(_ context.Context, userID string) (*models.Vendor, error) {
	f.calls = append(f.calls, "userid:"+userID)
	return f.byUserID[userID], nil
}

func (f *fakeFinder) ByEmail(_ context.Context, email string) (*models.Vendor, error) {
	f.calls = append(f.calls, "email:"+email)
	return f.byEmail[email], nil
}

func (f *fakeFinder) ByOwnerName(_ context.Context, name string) (*models.Vendor, error) {
	f.calls = append(f.calls, "name:"+name)
	return f.byName[name], nil
}

func (f *fakeFinder) SetUserID(_ context.Context, vendorID, userID string) error {
	f.backfills[vendorID] = userID
	return nil
}

func TestResolvePrefersUserID(t *testing.T) {
	f := newFakeFinder()
	f.byUserID["u1"] = &models.Vendor{VendorID: "v-id", UserID: "u1"}
	f.byEmail["priya@example.com"] = &models.Vendor{VendorID: "v-email"}

	v, err := Resolve(context.Background(), f, Session{UserID: "u1", Email: "priya@example.com"}, "")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "v-id", v.VendorID)
	assert.Equal(t, []string{"userid:u1"}, f.calls, "id hit short-circuits the chain")
}

func TestResolveFallsBackToSessionEmail(t *testing.T) {
	f := newFakeFinder()
	f.byEmail["priya@example.com"] = &models.Vendor{VendorID: "v-email"}

	v, err := Resolve(context.Background(), f, Session{UserID: "u1", Email: "Priya@Example.com"}, "")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "v-email", v.VendorID)
	assert.Equal(t, "u1", f.backfills["v-email"], "email hit backfills the userId")
	assert.Equal(t, "u1", v.UserID)
}

func TestResolveFormEmailOnlyWhenDifferent(t *testing.T) {
	f := newFakeFinder()
	f.byEmail["biz@example.com"] = &models.Vendor{VendorID: "v-form"}

	v, err := Resolve(context.Background(), f,
		Session{UserID: "u1", Email: "personal@example.com"}, "biz@example.com")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "v-form", v.VendorID)

	// same address as the session email must not trigger a second lookup
	f2 := newFakeFinder()
	_, err = Resolve(context.Background(), f2,
		Session{Email: "personal@example.com"}, "Personal@Example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"email:personal@example.com"}, f2.calls)
}

func TestResolveOwnerNameLast(t *testing.T) {
	f := newFakeFinder()
	f.byName["Priya Sharma"] = &models.Vendor{VendorID: "v-name"}

	v, err := Resolve(context.Background(), f,
		Session{UserID: "u1", Email: "priya@example.com", Name: "Priya Sharma"}, "")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "v-name", v.VendorID)
	assert.Equal(t, "u1", f.backfills["v-name"])
}

func TestResolveUnregistered(t *testing.T) {
	f := newFakeFinder()

	v, err := Resolve(context.Background(), f,
		Session{UserID: "u1", Email: "new@example.com", Name: "New Vendor"}, "")
	require.NoError(t, err)
	assert.Nil(t, v, "no match means unregistered, not an error")
}

func TestResolveNoBackfillWhenAlreadyLinked(t *testing.T) {
	f := newFakeFinder()
	f.byEmail["priya@example.com"] = &models.Vendor{VendorID: "v1", UserID: "u-other"}

	v, err := Resolve(context.Background(), f, Session{UserID: "u1", Email: "priya@example.com"}, "")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Empty(t, f.backfills, "linked records keep their original userId")
}
