package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := NewServer()

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleRankUnrank(t *testing.T) {
	s := NewServer()

	rec := postJSON(t, s, "/api/rank", RankRequest{Sfen: "052143/01734265/00200212"})
	require.Equal(t, http.StatusOK, rec.Code)
	var rank RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rank))
	assert.Equal(t, uint64(27251711060), rank.Num)

	rec = postJSON(t, s, "/api/unrank", UnrankRequest{Num: rank.Num})
	require.Equal(t, http.StatusOK, rec.Code)
	var unrank UnrankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unrank))
	assert.Equal(t, "052143/01734265/00200212", unrank.Sfen)
}

func TestHandleRankInvalid(t *testing.T) {
	s := NewServer()

	rec := postJSON(t, s, "/api/rank", RankRequest{Sfen: "garbage"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolve(t *testing.T) {
	if testing.Short() {
		t.Skip("solve endpoint generates the full solution table")
	}
	s := NewServer()

	rec := postJSON(t, s, "/api/solve", SolveRequest{Scramble: "U"})
	require.Equal(t, http.StatusOK, rec.Code)
	var solve SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solve))
	assert.Equal(t, "U'", solve.Solution)
	assert.Equal(t, 1, solve.Steps)

	// Table is shared; the second request is a plain lookup.
	rec = postJSON(t, s, "/api/solve", SolveRequest{Sfen: "012345/01234567/00000000"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solve))
	assert.Equal(t, "", solve.Solution)
	assert.Equal(t, 0, solve.Steps)
}

func TestHandleSolveBadScramble(t *testing.T) {
	s := NewServer()

	rec := postJSON(t, s, "/api/solve", SolveRequest{Scramble: "U F"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIndex(t *testing.T) {
	s := NewServer()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Skewb Solver")
}
