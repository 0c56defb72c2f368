package e2e

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pbacct "courier/proto/account"
	pbmsg "courier/proto/messaging"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" {
		s.T().Skip("SERVER_ADDR not set, skipping end to end suite")
	}
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(s.Config.ServerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.ServerAddr)
	return conn
}

// WithAuth provides an AuthService client within a contextual test step
func (s *BaseGrpcSuite) WithAuth(name string, fn func(ctx context.Context, client pbacct.AuthServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	client := pbacct.NewAuthServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

// WithFriendships provides an authenticated FriendshipService client
func (s *BaseGrpcSuite) WithFriendships(name, token string, fn func(ctx context.Context, client pbmsg.FriendshipServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	client := pbmsg.NewFriendshipServiceClient(conn)
	ctx, cancel := context.WithTimeout(authContext(token), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

// WithConversations provides an authenticated ConversationService client
func (s *BaseGrpcSuite) WithConversations(name, token string, fn func(ctx context.Context, client pbmsg.ConversationServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	client := pbmsg.NewConversationServiceClient(conn)
	ctx, cancel := context.WithTimeout(authContext(token), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

// WithMessages provides an authenticated MessageService client
func (s *BaseGrpcSuite) WithMessages(name, token string, fn func(ctx context.Context, client pbmsg.MessageServiceClient)) {
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	client := pbmsg.NewMessageServiceClient(conn)
	ctx, cancel := context.WithTimeout(authContext(token), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

func authContext(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+token)
}
