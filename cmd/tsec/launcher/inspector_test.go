package launcher

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/tsec-chaincfg/chaincfg"
)

func newTestInspector(t *testing.T, id string) (*Inspector, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	p, err := chaincfg.NewRegistry().Profile(id)
	require.NoError(t, err)
	return NewInspector(p, logger), hook
}

func get(t *testing.T, s *Inspector, path string, body interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if body != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), body), rec.Body.String())
	}
	return rec.Code
}

func TestInspector_params(t *testing.T) {
	s, hook := newTestInspector(t, chaincfg.RegTestID)

	var view paramsView
	require.Equal(t, http.StatusOK, get(t, s, "/params", &view))
	assert.Equal(t, "regtest", view.ID)
	assert.Equal(t, uint32(2016), view.Interval)
	assert.Equal(t, "336h0m0s", view.TargetTimespan)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "HTTP request", entry.Message)
	assert.Equal(t, "/params", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestInspector_checkpoints(t *testing.T) {
	s, _ := newTestInspector(t, chaincfg.RegTestID)

	var all []checkpointView
	require.Equal(t, http.StatusOK, get(t, s, "/checkpoints", &all))
	require.Len(t, all, 1)
	assert.Equal(t, uint64(0), all[0].Height)

	var one checkpointView
	require.Equal(t, http.StatusOK, get(t, s, "/checkpoints/0", &one))
	assert.Equal(t, all[0], one)

	assert.Equal(t, http.StatusNotFound, get(t, s, "/checkpoints/1", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/checkpoints/abc", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/checkpoints/-1", nil))
}

func TestInspector_genesis(t *testing.T) {
	s, _ := newTestInspector(t, chaincfg.RegTestID)

	var view genesisView
	require.Equal(t, http.StatusOK, get(t, s, "/genesis", &view))
	assert.Equal(t, "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206", view.Hash)
	assert.Equal(t, int64(1296688602), view.Time)
	assert.Equal(t, uint32(2), view.Nonce)
	assert.Equal(t, uint64(0x207fffff), uint64(view.Bits))
	assert.Equal(t, "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b", view.MerkleRoot)
	assert.Equal(t, view.MerkleRoot, view.Coinbase)
}

func TestInspector_genesisIntegrityFailure(t *testing.T) {
	// Default hashing cannot reproduce the pinned mainnet hash.
	s, _ := newTestInspector(t, chaincfg.MainNetID)

	var body map[string]string
	require.Equal(t, http.StatusInternalServerError, get(t, s, "/genesis", &body))
	assert.Contains(t, body["error"], "genesis hash mismatch")

	// The rest of the profile stays readable.
	assert.Equal(t, http.StatusOK, get(t, s, "/params", nil))
}

func TestInspector_seeds(t *testing.T) {
	s, _ := newTestInspector(t, chaincfg.MainNetID)

	var view seedsView
	require.Equal(t, http.StatusOK, get(t, s, "/seeds", &view))
	assert.Len(t, view.DNS, 3)
	assert.Equal(t, "59.17.114.210", view.Addrs[0])
	assert.Empty(t, view.HTTP)

	s, _ = newTestInspector(t, chaincfg.RegTestID)
	require.Equal(t, http.StatusOK, get(t, s, "/seeds", &view))
	assert.Empty(t, view.DNS)
	assert.Empty(t, view.Addrs)
}

func TestInspector_serveShutdown(t *testing.T) {
	s, _ := newTestInspector(t, chaincfg.RegTestID)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/params")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("inspector did not stop")
	}
}
