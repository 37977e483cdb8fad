package gin

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/paperchain"
	"github.com/bobinette/paperchain/registry"
)

const testHash = "00000000000000000000000000000000000000000000000000000000000abc12"

func createServer(t *testing.T) (http.Handler, *paperchain.InMemLedger) {
	t.Helper()

	gin.SetMode(gin.ReleaseMode) // avoid unnecessary log

	ledger := paperchain.NewInMemLedger()
	ledger.Credit("ST1TEST", 100000)

	events := paperchain.NewInMemEventSink()
	service := registry.NewService(paperchain.NewInMemRegistryStore(), ledger, events)

	handler, err := New(service, nil)
	require.NoError(t, err)

	return handler, ledger
}

func createReader(t *testing.T, i interface{}) io.Reader {
	t.Helper()

	data, err := json.Marshal(i)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func do(handler http.Handler, method, url string, body io.Reader, caller string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if caller != "" {
		req.Header.Set("X-Caller", caller)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func setAuthority(t *testing.T, handler http.Handler) {
	t.Helper()

	body := createReader(t, map[string]string{"authority": "ST2TEST"})
	w := do(handler, "PUT", "/paperchain/registry/authority", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func register(t *testing.T, handler http.Handler, caller string) *httptest.ResponseRecorder {
	t.Helper()

	body := createReader(t, map[string]interface{}{
		"hash":        testHash,
		"title":       "Quantum Paper",
		"description": "A quantum algorithm",
		"fundingGoal": 1000,
	})
	return do(handler, "POST", "/paperchain/papers", body, caller)
}

func TestPaperHandler_Register(t *testing.T) {
	handler, ledger := createServer(t)
	setAuthority(t, handler)

	w := register(t, handler, "ST1TEST")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Data struct {
			ID   uint64 `json:"id"`
			Hash string `json:"hash"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, uint64(1), res.Data.ID)
	assert.Equal(t, testHash, res.Data.Hash)

	assert.Equal(t, uint64(1000), ledger.Balance("ST2TEST"))

	// second registration of the same hash conflicts
	w = register(t, handler, "ST1TEST")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestPaperHandler_Register_errors(t *testing.T) {
	tts := map[string]struct {
		caller       string
		title        string
		setAuthority bool
		code         int
	}{
		"missing caller":  {caller: "", title: "Quantum Paper", setAuthority: true, code: http.StatusUnauthorized},
		"empty title":     {caller: "ST1TEST", title: "", setAuthority: true, code: http.StatusBadRequest},
		"no authority":    {caller: "ST1TEST", title: "Quantum Paper", setAuthority: false, code: http.StatusForbidden},
		"no funds caller": {caller: "ST9POOR", title: "Quantum Paper", setAuthority: true, code: http.StatusInternalServerError},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			handler, _ := createServer(t)
			if tt.setAuthority {
				setAuthority(t, handler)
			}

			body := createReader(t, map[string]interface{}{
				"hash":        testHash,
				"title":       tt.title,
				"description": "A quantum algorithm",
				"fundingGoal": 1000,
			})
			w := do(handler, "POST", "/paperchain/papers", body, tt.caller)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestPaperHandler_Get(t *testing.T) {
	handler, _ := createServer(t)
	setAuthority(t, handler)

	w := do(handler, "GET", "/paperchain/papers/"+testHash, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = register(t, handler, "ST1TEST")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(handler, "GET", "/paperchain/papers/"+testHash, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Data paperchain.Paper `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, paperchain.Principal("ST1TEST"), res.Data.Creator)
	assert.Equal(t, "Quantum Paper", res.Data.Title)
	assert.True(t, res.Data.IsActive)
	assert.Equal(t, uint64(0), res.Data.FundedAmount)
}

func TestPaperHandler_Ownership(t *testing.T) {
	handler, _ := createServer(t)
	setAuthority(t, handler)

	w := register(t, handler, "ST1TEST")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Data struct {
			Owner bool `json:"owner"`
		} `json:"data"`
	}

	w = do(handler, "GET", "/paperchain/papers/"+testHash+"/ownership", nil, "ST1TEST")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Data.Owner)

	w = do(handler, "GET", "/paperchain/papers/"+testHash+"/ownership", nil, "ST2FAKE")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Data.Owner)
}

func TestPaperHandler_Deactivate(t *testing.T) {
	handler, _ := createServer(t)
	setAuthority(t, handler)

	w := register(t, handler, "ST1TEST")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(handler, "DELETE", "/paperchain/papers/"+testHash, nil, "ST2FAKE")
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = do(handler, "DELETE", "/paperchain/papers/"+testHash, nil, "ST1TEST")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(handler, "GET", "/paperchain/papers/"+testHash, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Data paperchain.Paper `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Data.IsActive)
}
