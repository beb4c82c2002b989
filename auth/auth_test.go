package auth

import (
	"collab-hub/domain"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const testSecret = "a-test-secret-that-is-long-enough-for-hs256"

var ada = domain.User{ID: "a1", OrganizationID: "org-1", Name: "Ada", Avatar: "ada.png", Role: domain.RoleAdmin}

func newManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_Rejects_Short_Secret(t *testing.T) {
	_, err := NewTokenManager("short", time.Hour)
	require.Error(t, err)
}

func TestToken_RoundTrip(t *testing.T) {
	req := require.New(t)
	m := newManager(t)

	token, err := m.Generate(ada)
	req.NoError(err)

	claims, err := m.Validate(token)
	req.NoError(err)
	req.Equal(ada, claims.User())
	req.Equal([]string{"admin"}, claims.Roles)
}

func TestToken_Rejections(t *testing.T) {
	m := newManager(t)
	other, err := NewTokenManager(strings.Repeat("x", 40), time.Hour)
	require.NoError(t, err)
	expired, err := NewTokenManager(testSecret, -time.Minute)
	require.NoError(t, err)

	foreign, err := other.Generate(ada)
	require.NoError(t, err)
	stale, err := expired.Generate(ada)
	require.NoError(t, err)
	noTenant, err := m.Generate(domain.User{ID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	badRole, err := m.Generate(ada, "owner")
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "a1", OrganizationID: "org-1", Roles: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer}}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"other secret":    foreign,
		"expired":         stale,
		"no organization": noTenant,
		"unknown role":    badRole,
		"unsigned":        none,
		"garbage":         "not-a-jwt",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Validate(token)
			require.Error(t, err)
		})
	}
}

func TestClaims_User_Role(t *testing.T) {
	tests := []struct {
		roles []string
		want  domain.Role
	}{
		{[]string{"client"}, domain.RoleClient},
		{[]string{"member"}, domain.RoleMember},
		{[]string{"client", "member"}, domain.RoleMember},
		{[]string{"member", "admin"}, domain.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.roles, ","), func(t *testing.T) {
			require.Equal(t, tt.want, Claims{Roles: tt.roles}.User().Role)
		})
	}
}

func TestUnaryInterceptor(t *testing.T) {
	m := newManager(t)
	handler := func(ctx context.Context, _ any) (any, error) {
		return ctx, nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/collabhub.v1.ChatService/PostMessage"}

	t.Run("should fail when metadata is missing", func(t *testing.T) {
		req := require.New(t)
		_, err := UnaryInterceptor(m)(context.Background(), nil, info, handler)
		st, ok := status.FromError(err)
		req.True(ok)
		req.Equal(codes.Unauthenticated, st.Code())
	})

	t.Run("should fail without bearer prefix", func(t *testing.T) {
		req := require.New(t)
		token, err := m.Generate(ada)
		req.NoError(err)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", token))
		_, err = UnaryInterceptor(m)(ctx, nil, info, handler)
		req.Equal(codes.Unauthenticated, status.Code(err))
	})

	t.Run("should fail with invalid token", func(t *testing.T) {
		req := require.New(t)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer invalid"))
		_, err := UnaryInterceptor(m)(ctx, nil, info, handler)
		req.Contains(err.Error(), "invalid or expired token")
	})

	t.Run("should inject the caller when token is valid", func(t *testing.T) {
		req := require.New(t)
		token, err := m.Generate(ada)
		req.NoError(err)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

		res, err := UnaryInterceptor(m)(ctx, nil, info, handler)

		req.NoError(err)
		user, ok := UserFromContext(res.(context.Context))
		req.True(ok)
		req.Equal(ada, user)
	})
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s fakeStream) Context() context.Context { return s.ctx }

func TestStreamInterceptor(t *testing.T) {
	req := require.New(t)
	m := newManager(t)
	token, err := m.Generate(ada)
	req.NoError(err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

	var seen domain.User
	err = StreamInterceptor(m)(nil, fakeStream{ctx: ctx}, &grpc.StreamServerInfo{}, func(_ any, ss grpc.ServerStream) error {
		seen, _ = UserFromContext(ss.Context())
		return nil
	})

	req.NoError(err)
	req.Equal("a1", seen.ID)

	err = StreamInterceptor(m)(nil, fakeStream{ctx: context.Background()}, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		return nil
	})
	req.Equal(codes.Unauthenticated, status.Code(err))
}
