package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallationEndpoints_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/installations/installations"},
		{http.MethodPost, "/installations/installations"},
		{http.MethodGet, "/installations/installations/1"},
		{http.MethodPut, "/installations/installations/1"},
		{http.MethodPatch, "/installations/installations/1"},
		{http.MethodDelete, "/installations/installations/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			resp := env.request(t, route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
	assert.Equal(t, 0, env.store.InstallationCount())
}

func TestCreateInstallation(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/installations", token, map[string]any{
		"customer_name":    "Phillip Moss",
		"address":          "17 Petunia Street",
		"appointment_date": "2022-10-22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := dataObject(t, resp)
	assert.Equal(t, "Phillip Moss", data["customer_name"])
	assert.Equal(t, "17 Petunia Street", data["address"])
	assert.Equal(t, "2022-10-22", data["appointment_date"])
	assert.Equal(t, time.Now().Format("2006-01-02"), data["date_created"])
	assert.Equal(t, time.Now().Format("2006-01-02"), data["date_modified"])
	assert.Nil(t, data["status"])

	resp = env.request(t, http.MethodGet, "/installations/installations", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := dataList(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Phillip Moss", items[0]["customer_name"])
}

func TestCreateInstallation_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/installations", token, map[string]any{
		"customer_name": "Phillip Moss",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, env.store.InstallationCount())
}

func TestCreateInstallation_InvalidAppointmentDate(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/installations", token, map[string]any{
		"customer_name":    "Phillip Moss",
		"address":          "17 Petunia Street",
		"appointment_date": "22/10/2022",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, env.store.InstallationCount())
}

func TestCreateInstallation_WithStatusReference(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", token, map[string]any{"status": "Installation Required"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/installations/installations", token, map[string]any{
		"customer_name": "Phillip Moss",
		"address":       "17 Petunia Street",
		"status":        1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := dataObject(t, resp)
	assert.Equal(t, float64(1), data["status"])
}

func TestCreateInstallation_ForeignStatusRejected(t *testing.T) {
	env := newTestEnv(t)
	tokenOne := env.registerUser(t, "ryantest@vumatel.com")
	tokenTwo := env.registerUser(t, "other@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", tokenTwo, map[string]any{"status": "Installer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/installations/installations", tokenOne, map[string]any{
		"customer_name": "Phillip Moss",
		"address":       "17 Petunia Street",
		"status":        1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, env.store.InstallationCount())
}

func TestListInstallations_NewestFirstAndIsolated(t *testing.T) {
	env := newTestEnv(t)
	tokenOne := env.registerUser(t, "ryantest@vumatel.com")
	tokenTwo := env.registerUser(t, "other@vumatel.com")

	for _, name := range []string{"Phillip Moss", "Jane Fields"} {
		resp := env.request(t, http.MethodPost, "/installations/installations", tokenOne, map[string]any{
			"customer_name": name,
			"address":       "17 Petunia Street",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := env.request(t, http.MethodPost, "/installations/installations", tokenTwo, map[string]any{
		"customer_name": "Other Customer",
		"address":       "1 Elsewhere Road",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/installations/installations", tokenOne, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := dataList(t, resp)
	require.Len(t, items, 2)
	assert.Equal(t, "Jane Fields", items[0]["customer_name"])
	assert.Equal(t, "Phillip Moss", items[1]["customer_name"])

	resp = env.request(t, http.MethodGet, "/installations/installations", tokenTwo, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, dataList(t, resp), 1)
}

func TestGetInstallation_CrossUserIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	tokenOne := env.registerUser(t, "ryantest@vumatel.com")
	tokenTwo := env.registerUser(t, "other@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/installations", tokenOne, map[string]any{
		"customer_name": "Phillip Moss",
		"address":       "17 Petunia Street",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/installations/installations/1", tokenTwo, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatchInstallation(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/installations", token, map[string]any{
		"customer_name": "Phillip Moss",
		"address":       "17 Petunia Street",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPatch, "/installations/installations/1", token, map[string]any{
		"address": "18 Petunia Street",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataObject(t, resp)
	assert.Equal(t, "Phillip Moss", data["customer_name"])
	assert.Equal(t, "18 Petunia Street", data["address"])
}

func TestDeleteInstallation(t *testing.T) {
	env := newTestEnv(t)
	tokenOne := env.registerUser(t, "ryantest@vumatel.com")
	tokenTwo := env.registerUser(t, "other@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/installations", tokenOne, map[string]any{
		"customer_name": "Phillip Moss",
		"address":       "17 Petunia Street",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/installations/installations/1", tokenTwo, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, env.store.InstallationCount())

	resp = env.request(t, http.MethodDelete, "/installations/installations/1", tokenOne, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, env.store.InstallationCount())
}
