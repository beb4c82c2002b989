package e2e

import (
	"collab-hub/auth"
	"collab-hub/domain"
	"collab-hub/infrastructure/grpc/client"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
	tokens *auth.TokenManager
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HubAddr == "" {
		s.T().Skip("HUB_ADDR not set, no hub to talk to")
	}
	s.tokens, err = auth.NewTokenManager(s.Config.JWTSecret, time.Hour)
	s.Require().NoError(err)
}

// HubConn dials the hub as user with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) HubConn(t *testing.T, name string, user domain.User) *client.HubClient {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s (as %s) ======", name, user.ID)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	token, err := s.tokens.Generate(user)
	s.Require().NoError(err)

	// 2. Create the client with a Unary Interceptor for logging
	hub, err := client.Dial(s.Config.HubAddr, token,
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, dump(req))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, dump(reply))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to hub at "+s.Config.HubAddr)
	return hub
}

// As runs fn with a hub client authenticated as user, within a contextual test step
func (s *BaseGrpcSuite) As(name string, user domain.User, fn func(ctx context.Context, hub *client.HubClient)) {
	hub := s.HubConn(s.T(), name, user)
	defer func() { _ = hub.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, hub)
}

func (s *BaseGrpcSuite) Client() domain.User {
	return domain.User{ID: s.Config.ClientID, OrganizationID: s.Config.Organization, Name: "e2e client", Role: domain.RoleClient}
}

func (s *BaseGrpcSuite) Admin() domain.User {
	return domain.User{ID: s.Config.AdminID, OrganizationID: s.Config.Organization, Name: "e2e admin", Role: domain.RoleAdmin}
}

func dump(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
