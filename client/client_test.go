package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coca162/Denarius/internal/core/domain"
)

func newStubServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestRegisterPerson(t *testing.T) {
	accountID := uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/person/register/222", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(domain.FormatKey(accountID)))
	})

	got, err := c.RegisterPerson(context.Background(), 222)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestRegisterPersonAlreadyRegistered(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("This person is already registered!"))
	})

	_, err := c.RegisterPerson(context.Background(), 222)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "This person is already registered!", apiErr.Message)
}

func TestAccountFromDiscord(t *testing.T) {
	accountID := uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/person/from_discord/222", r.URL.Path)
		w.Write([]byte(domain.FormatKey(accountID)))
	})

	got, err := c.AccountFromDiscord(context.Background(), 222)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestGetPerson(t *testing.T) {
	accountID := uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/"+domain.FormatKey(accountID), r.URL.Path)
		json.NewEncoder(w).Encode(domain.PersonInfo{DiscordID: 222, Balance: 100})
	})

	info, err := c.GetPerson(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, uint64(222), info.DiscordID)
	assert.Equal(t, int64(100), info.Balance)
}

func TestGetBalance(t *testing.T) {
	accountID := uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eco/balance/"+domain.FormatKey(accountID), r.URL.Path)
		w.Write([]byte("4.242"))
	})

	balance, err := c.GetBalance(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(4242), balance)
}

func TestPrintMoney(t *testing.T) {
	accountID := uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/eco/print/"+domain.FormatKey(accountID)+"/42000", r.URL.Path)
		w.Write([]byte("Printed money!"))
	})

	err := c.PrintMoney(context.Background(), accountID, domain.Money(42000))
	require.NoError(t, err)
}

func TestPayment(t *testing.T) {
	from, to := uuid.New(), uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/eco/payment", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, domain.FormatKey(from), query.Get("from"))
		assert.Equal(t, domain.FormatKey(to), query.Get("to"))
		assert.Equal(t, "10", query.Get("amount"))
		// An ordinary payment never carries the force flag.
		assert.False(t, query.Has("force"))

		w.Write([]byte("Success"))
	})

	err := c.Payment(context.Background(), from, to, domain.Money(10), false)
	require.NoError(t, err)
}

func TestPaymentForce(t *testing.T) {
	from, to := uuid.New(), uuid.New()

	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		assert.Equal(t, "-10", r.URL.Query().Get("amount"))
		w.Write([]byte("Success"))
	})

	err := c.Payment(context.Background(), from, to, domain.Money(-10), true)
	require.NoError(t, err)
}

func TestPaymentInsufficientFunds(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("You lack the funds to send this payment"))
	})

	err := c.Payment(context.Background(), uuid.New(), uuid.New(), domain.Money(150), false)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "You lack the funds to send this payment", apiErr.Message)
}
