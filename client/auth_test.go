package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidationSkipsNetwork(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	cases := []struct {
		name, userName, email, password string
	}{
		{"missing name", "", "a@x.com", "pw123"},
		{"missing email", "Alice", "", "pw123"},
		{"missing password", "Alice", "a@x.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.client.Register(context.Background(), tc.userName, tc.email, tc.password)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Zero(t, env.transport.calls)
			assert.False(t, env.session.Authenticated())
		})
	}
}

func TestRegisterSuccessInstallsToken(t *testing.T) {
	var captured map[string]string
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeJSON(w, http.StatusCreated, `{"success":true,"token":"T1"}`)
	}))

	token, err := env.client.Register(context.Background(), "Alice", "a@x.com", "pw123")
	require.NoError(t, err)

	assert.Equal(t, "T1", token)
	assert.Equal(t, "T1", env.session.Token())
	// Role is always pinned to customer on client-initiated registration.
	assert.Equal(t, "customer", captured["role"])
	assert.Equal(t, "Alice", captured["name"])
}

func TestRegisterFailureLeavesSessionUntouched(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"message":"user already exists","code":"email_taken"}`)
	}))

	_, err := env.client.Register(context.Background(), "Alice", "a@x.com", "pw123")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeEmailTaken, authErr.Code)
	assert.Equal(t, "user already exists", authErr.Message)
	assert.False(t, env.session.Authenticated())
}

func TestLoginSuccessInstallsToken(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"token":"T1"}`)
	}))

	result, err := env.client.Login(context.Background(), "a@x.com", "pw123")
	require.NoError(t, err)

	assert.False(t, result.NeedsRegistration)
	assert.Equal(t, "T1", result.Token)
	assert.Equal(t, "T1", env.session.Token())
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())

	_, err := env.client.Login(context.Background(), "", "pw123")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = env.client.Login(context.Background(), "a@x.com", "")
	require.ErrorAs(t, err, &validationErr)

	assert.Zero(t, env.transport.calls)
}

func TestLoginUnknownAccountSignalsRegistration(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"account not found","code":"account_not_found"}`)
	}))

	result, err := env.client.Login(context.Background(), "nobody@x.com", "pw123")
	require.NoError(t, err)

	assert.True(t, result.NeedsRegistration)
	assert.Equal(t, "account not found", result.Message)
	// Declining registration means no session change at all.
	assert.False(t, env.session.Authenticated())
}

func TestLoginUnknownAccountKeepsExistingToken(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"account not found","code":"account_not_found"}`)
	}))
	require.NoError(t, env.session.SetToken("previous"))

	result, err := env.client.Login(context.Background(), "nobody@x.com", "pw123")
	require.NoError(t, err)

	assert.True(t, result.NeedsRegistration)
	assert.Equal(t, "previous", env.session.Token())
}

func TestLoginWrongPasswordClearsToken(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"invalid credentials","code":"invalid_credentials"}`)
	}))
	require.NoError(t, env.session.SetToken("previous"))

	_, err := env.client.Login(context.Background(), "bob@x.com", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, CodeInvalidCredentials, authErr.Code)
	assert.False(t, env.session.Authenticated())
}

func TestLoginWrongPasswordClearIsIdempotent(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"invalid credentials","code":"invalid_credentials"}`)
	}))

	_, err := env.client.Login(context.Background(), "bob@x.com", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, env.session.Authenticated())
}

func TestLoginFallbackCompletesViaRegister(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(w, http.StatusUnauthorized, `{"message":"account not found","code":"account_not_found"}`)
		case "/auth/register":
			writeJSON(w, http.StatusCreated, `{"success":true,"token":"T2"}`)
		default:
			http.NotFound(w, r)
		}
	}))

	result, err := env.client.Login(context.Background(), "new@x.com", "pw123")
	require.NoError(t, err)
	require.True(t, result.NeedsRegistration)

	// The caller collects the name out-of-band and completes registration.
	token, err := env.client.Register(context.Background(), "New User", "new@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "T2", token)
	assert.Equal(t, "T2", env.session.Token())
}

func TestLoginTransportFailureIsWrapped(t *testing.T) {
	env := newTestEnv(t, http.NotFoundHandler())
	env.transport.next = nil // every request now fails at the transport

	_, err := env.client.Login(context.Background(), "a@x.com", "pw123")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}
