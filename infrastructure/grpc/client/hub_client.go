// Package client dials the hub over gRPC with the CBOR codec and a bearer
// token attached to every call.
package client

import (
	pb "collab-hub/infrastructure/grpc/api"
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// bearer implements credentials.PerRPCCredentials.
type bearer string

func (b bearer) GetRequestMetadata(_ context.Context, _ ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + string(b)}, nil
}

// Plaintext connections may carry the token.
func (bearer) RequireTransportSecurity() bool { return false }

// HubClient bundles the three service stubs over one connection.
type HubClient struct {
	conn          *grpc.ClientConn
	Chat          pb.ChatServiceClient
	Notifications pb.NotificationServiceClient
	Workflow      pb.WorkflowServiceClient
}

// Dial connects to addr. Extra options come after the defaults, so a
// test can swap the dialer.
func Dial(addr, token string, opts ...grpc.DialOption) (*HubClient, error) {
	options := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(pb.Codec{})),
		grpc.WithPerRPCCredentials(bearer(token)),
	}, opts...)
	conn, err := grpc.NewClient(addr, options...)
	if err != nil {
		return nil, fmt.Errorf("dial hub %s: %w", addr, err)
	}
	return &HubClient{
		conn:          conn,
		Chat:          pb.NewChatServiceClient(conn),
		Notifications: pb.NewNotificationServiceClient(conn),
		Workflow:      pb.NewWorkflowServiceClient(conn),
	}, nil
}

func (c *HubClient) Close() error {
	return c.conn.Close()
}
