package internal

import (
	"collab-hub/observability"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BADGER_FILEPATH", "/tmp/badger")
	t.Setenv("BLUGE_FILEPATH", "/tmp/bluge")
	t.Setenv("JWT_SECRET", "secret")
	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.NoError(config.Validate())
	req.Equal(9090, config.Port)
	req.Equal(20, config.NotificationFeedWindow)
	req.Equal(5, config.OutboxMaxAttempts)
	req.Empty(config.RedisURL)
	req.False(config.ModerationEnabled)
}

func TestConfig_Validate(t *testing.T) {
	config := Config{Port: 1, OutboxBatchSize: 1, OutboxMaxAttempts: 0, MessageWindow: 1, NotificationFeedWindow: 1, MaxContentLength: 1}
	require.Error(t, config.Validate())
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
	_, err = CharacterRune("")
	req.Error(err)
}

func TestHealthRouter(t *testing.T) {
	req := require.New(t)
	sink := observability.NewLogErrorSink(logs.GetLoggerFromLevel(slog.LevelDebug))
	sink.Report(context.Background(), "fanout.email", errors.New("smtp down"))
	srv := httptest.NewServer(NewHealthRouter(sink))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/healthz")
	req.NoError(err)
	_ = res.Body.Close()
	req.Equal(http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/debug/errors")
	req.NoError(err)
	defer res.Body.Close()
	var counts []observability.OpCount
	req.NoError(json.NewDecoder(res.Body).Decode(&counts))
	req.Equal([]observability.OpCount{{Op: "fanout.email", Count: 1}}, counts)
}
