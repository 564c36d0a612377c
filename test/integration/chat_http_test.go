package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hananav-be/internal/bootstrap"
	"hananav-be/internal/config"
	"hananav-be/internal/constant"
	"hananav-be/internal/dto"
	"hananav-be/internal/server"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.Load()
	cfg.Answer.SimulatedDelay = 50 // keep the canned-answer wait short

	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container)
}

func doJSON(t *testing.T, srv *server.Server, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestChatQueryFlowOverHTTP(t *testing.T) {
	srv := setupApp(t)

	// 1. Create session
	status, env := doJSON(t, srv, "POST", "/api/chat/v1/session", nil)
	require.Equal(t, 201, status)
	require.True(t, env.Success)

	var created dto.CreateSessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	sessionPath := fmt.Sprintf("/api/chat/v1/session/%s", created.Id)

	// 2. Submit a query
	status, env = doJSON(t, srv, "POST", sessionPath+"/query", dto.SendQueryRequest{Text: "육아휴직 급여 기준"})
	require.Equal(t, 202, status)
	require.True(t, env.Success)

	var sent dto.SendQueryResponse
	require.NoError(t, json.Unmarshal(env.Data, &sent))
	assert.Equal(t, constant.ChatMessageStatePending, sent.Pending.State)

	// 3. A second submission while pending conflicts
	status, _ = doJSON(t, srv, "POST", sessionPath+"/query", dto.SendQueryRequest{Text: "두번째 질문"})
	assert.Equal(t, 409, status)

	// 4. The pending message resolves in place
	require.Eventually(t, func() bool {
		status, env := doJSON(t, srv, "GET", sessionPath+"/history", nil)
		if status != 200 {
			return false
		}
		var history dto.GetChatHistoryResponse
		if err := json.Unmarshal(env.Data, &history); err != nil {
			return false
		}
		return history.FlowState == constant.FlowStateResolved
	}, 3*time.Second, 50*time.Millisecond)

	status, env = doJSON(t, srv, "GET", sessionPath+"/history", nil)
	require.Equal(t, 200, status)
	var history dto.GetChatHistoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history.Messages, 2)
	resolved := history.Messages[1]
	assert.Equal(t, sent.Pending.Id, resolved.Id)
	assert.Equal(t, constant.ChatMessageStateComplete, resolved.State)
	assert.Equal(t, []string{"1", "2"}, resolved.EvidenceIds)

	// 5. Rollback removes the exchange
	status, env = doJSON(t, srv, "POST", sessionPath+"/rollback", nil)
	require.Equal(t, 200, status)
	var rollback dto.RollbackResponse
	require.NoError(t, json.Unmarshal(env.Data, &rollback))
	assert.Equal(t, 2, rollback.Removed)
	assert.Equal(t, 0, rollback.MessageCount)
}

func TestChatValidationAndErrorsOverHTTP(t *testing.T) {
	srv := setupApp(t)

	// Unknown session
	status, env := doJSON(t, srv, "GET", "/api/chat/v1/session/7f9ad5e2-07f3-4f0d-9a70-1f54c1adbb6d/history", nil)
	assert.Equal(t, 404, status)
	assert.False(t, env.Success)

	// Malformed session id
	status, _ = doJSON(t, srv, "GET", "/api/chat/v1/session/not-a-uuid/history", nil)
	assert.Equal(t, 400, status)

	// Empty query
	status, env = doJSON(t, srv, "POST", "/api/chat/v1/session", nil)
	require.Equal(t, 201, status)
	var created dto.CreateSessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ = doJSON(t, srv, "POST", fmt.Sprintf("/api/chat/v1/session/%s/query", created.Id), dto.SendQueryRequest{Text: "   "})
	assert.Equal(t, 422, status)

	// Invalid mode fails validation
	status, _ = doJSON(t, srv, "PUT", fmt.Sprintf("/api/chat/v1/session/%s/mode", created.Id), map[string]string{"mode": "turbo"})
	assert.Equal(t, 422, status)
}

func TestSavedAndEvidenceOverHTTP(t *testing.T) {
	srv := setupApp(t)

	// Saved query with search
	status, env := doJSON(t, srv, "GET", "/api/saved/v1?search=VPN&category=all", nil)
	require.Equal(t, 200, status)
	var saved []dto.SavedDestinationResponse
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "VPN 접속 오류 해결", saved[0].Title)

	// Evidence detail
	status, _ = doJSON(t, srv, "GET", "/api/evidence/v1/1/detail", nil)
	assert.Equal(t, 200, status)
	status, _ = doJSON(t, srv, "GET", "/api/evidence/v1/999/detail", nil)
	assert.Equal(t, 404, status)

	// Admin dashboard
	status, env = doJSON(t, srv, "GET", "/api/admin/v1/dashboard", nil)
	require.Equal(t, 200, status)
	assert.True(t, env.Success)
}
