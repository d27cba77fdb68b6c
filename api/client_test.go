package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthsetu/provider-portal/models"
)

func TestBearerTokenInterceptor(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"dashboard":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Dashboard(WithToken(context.Background(), "tok-123"), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// Without a token in the context no header is attached.
	_, err = client.Dashboard(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "", gotAuth)
}

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/healthcare/admin/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"token":"abc","provider_id":42}`))
	}))
	defer server.Close()

	result, err := NewClient(server.URL).Login(context.Background(), "a@b.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "abc", result.Token)
	// Numeric ids are normalized to strings.
	assert.Equal(t, "42", result.ProviderID)
}

func TestLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Login(context.Background(), "a@b.com", "secret1")
	assert.Error(t, err)
}

func TestErrorStatusMapping(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"nope"}`))
		}))

		_, err := NewClient(server.URL).Login(context.Background(), "a@b.com", "secret1")
		assert.Equal(t, status, StatusOf(err))
		assert.False(t, IsNetworkError(err))
		server.Close()
	}
}

func TestNetworkError(t *testing.T) {
	// Nothing listens here.
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Login(context.Background(), "a@b.com", "secret1")
	assert.True(t, IsNetworkError(err))
	assert.Equal(t, 0, StatusOf(err))
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Status: 401}))
	assert.False(t, IsUnauthorized(&Error{Status: 403}))
	assert.False(t, IsUnauthorized(nil))
}

func TestApproveRegistrationReturnsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthcare/admin/approve-registration/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"admin_credentials":{"username":"cityclinic_admin","password":"gen3rated"}}`))
	}))
	defer server.Close()

	creds, err := NewClient(server.URL).ApproveRegistration(context.Background(), "7")
	assert.NoError(t, err)
	assert.Equal(t, &models.AdminCredentials{Username: "cityclinic_admin", Password: "gen3rated"}, creds)
}

func TestApproveRegistrationWithoutCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	creds, err := NewClient(server.URL).ApproveRegistration(context.Background(), "7")
	assert.NoError(t, err)
	assert.Nil(t, creds)
}

func TestResetAdminPasswordComposesCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"new_password":"n3wpass","admin":{"username":"cityclinic_admin"}}`))
	}))
	defer server.Close()

	creds, err := NewClient(server.URL).ResetAdminPassword(context.Background(), "9")
	assert.NoError(t, err)
	assert.Equal(t, "cityclinic_admin", creds.Username)
	assert.Equal(t, "n3wpass", creds.Password)
}

func TestResetAdminPasswordFetchesMissingAdmin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/healthcare/admin/reset-password/9":
			w.Write([]byte(`{"success":true,"new_password":"n3wpass"}`))
		case "/healthcare/admin/9":
			w.Write([]byte(`{"success":true,"admin":{"id":9,"username":"cityclinic_admin"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	creds, err := NewClient(server.URL).ResetAdminPassword(context.Background(), "9")
	assert.NoError(t, err)
	assert.Equal(t, "cityclinic_admin", creds.Username)
	assert.Equal(t, "n3wpass", creds.Password)
}

func TestSaveAvailabilityPayload(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	slots := []models.AvailabilitySlot{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30}}
	err := NewClient(server.URL).SaveAvailability(context.Background(), 3, slots)
	assert.NoError(t, err)
	assert.Contains(t, gotBody, `"doctor_id":3`)
	assert.Contains(t, gotBody, `"availability_slots"`)
	assert.Contains(t, gotBody, `"day_of_week":1`)
}

func TestPendingRegistrations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"registrations":[{"id":1,"name":"City Clinic","type":"clinic"}]}`))
	}))
	defer server.Close()

	regs, err := NewClient(server.URL).PendingRegistrations(context.Background())
	assert.NoError(t, err)
	assert.Len(t, regs, 1)
	assert.Equal(t, "City Clinic", regs[0].Name)
}
