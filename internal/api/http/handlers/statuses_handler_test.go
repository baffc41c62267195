package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEndpoints_RequireAuth(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/installations/status"},
		{http.MethodPost, "/installations/status"},
		{http.MethodGet, "/installations/status/1"},
		{http.MethodPut, "/installations/status/1"},
		{http.MethodPatch, "/installations/status/1"},
		{http.MethodDelete, "/installations/status/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			resp := env.request(t, route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
	assert.Equal(t, 0, env.store.StatusCount())
}

func TestCreateStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", token, map[string]any{
		"status": "Installation Required",
		"notes":  "awaiting parts",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := dataObject(t, resp)
	assert.Equal(t, "Installation Required", data["status"])
	assert.Equal(t, "awaiting parts", data["notes"])
	assert.Equal(t, time.Now().Format("2006-01-02"), data["date"])
	assert.NotEmpty(t, data["user"])
	assert.Equal(t, 1, env.store.StatusCount())
}

func TestCreateStatus_EmptyLabel(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", token, map[string]any{
		"status": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, env.store.StatusCount())
}

func TestListStatuses_OrderedAndLimitedToUser(t *testing.T) {
	env := newTestEnv(t)
	tokenOne := env.registerUser(t, "ryantest@vumatel.com")
	tokenTwo := env.registerUser(t, "other@vumatel.com")

	for _, label := range []string{"Installation Required", "Installation Complete"} {
		resp := env.request(t, http.MethodPost, "/installations/status", tokenOne, map[string]any{"status": label})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := env.request(t, http.MethodPost, "/installations/status", tokenTwo, map[string]any{"status": "Installer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/installations/status", tokenOne, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := dataList(t, resp)
	require.Len(t, items, 2)
	assert.Equal(t, "Installation Required", items[0]["status"])
	assert.Equal(t, "Installation Complete", items[1]["status"])

	resp = env.request(t, http.MethodGet, "/installations/status", tokenTwo, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items = dataList(t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Installer", items[0]["status"])
}

func TestGetStatus_CrossUserIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	tokenOne := env.registerUser(t, "ryantest@vumatel.com")
	tokenTwo := env.registerUser(t, "other@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", tokenOne, map[string]any{"status": "Installer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/installations/status/1", tokenTwo, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/installations/status/1", tokenOne, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", token, map[string]any{"status": "Installation Required"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPut, "/installations/status/1", token, map[string]any{
		"status": "Installation Complete",
		"notes":  "done",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataObject(t, resp)
	assert.Equal(t, "Installation Complete", data["status"])
	assert.Equal(t, "done", data["notes"])
}

func TestPatchStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", token, map[string]any{
		"status": "Installation Required",
		"notes":  "awaiting parts",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPatch, "/installations/status/1", token, map[string]any{
		"notes": "parts arrived",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataObject(t, resp)
	assert.Equal(t, "Installation Required", data["status"])
	assert.Equal(t, "parts arrived", data["notes"])
}

func TestDeleteStatus_ProtectedWhileReferenced(t *testing.T) {
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

	resp = env.request(t, http.MethodDelete, "/installations/status/1", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 1, env.store.StatusCount())
	assert.Equal(t, 1, env.store.InstallationCount())
}

func TestDeleteStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "ryantest@vumatel.com")

	resp := env.request(t, http.MethodPost, "/installations/status", token, map[string]any{"status": "Installer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/installations/status/1", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, env.store.StatusCount())
}
