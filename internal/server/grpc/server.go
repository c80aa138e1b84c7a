// Package grpc exposes the store services over gRPC using the contract in
// storeapi.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/dmitrijs2005/studydesk/internal/server/models"
	"github.com/dmitrijs2005/studydesk/internal/server/services"
	"github.com/dmitrijs2005/studydesk/internal/storeapi"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	UserID(accessToken string) (string, error)
}

type paperSvc interface {
	List(ctx context.Context) ([]domain.Paper, error)
	Insert(ctx context.Context, d domain.PaperDraft) (*domain.Paper, error)
	Update(ctx context.Context, id string, p domain.PaperPatch) error
	Delete(ctx context.Context, id string) error
}

type wordSvc interface {
	List(ctx context.Context) ([]domain.Word, error)
	Insert(ctx context.Context, d domain.WordDraft) (*domain.Word, error)
	Update(ctx context.Context, id string, p domain.WordPatch) error
	Delete(ctx context.Context, id string) error
}

type exportSvc interface {
	Export(ctx context.Context) (*services.ExportResult, error)
}

// GRPCServer implements storeapi.StoreServer.
type GRPCServer struct {
	address string
	apiKey  []byte
	users   userSvc
	papers  paperSvc
	words   wordSvc
	exports exportSvc
	logger  logging.Logger
}

var _ storeapi.StoreServer = (*GRPCServer)(nil)

func NewGRPCServer(address, apiKey string, l logging.Logger, us userSvc, ps paperSvc, ws wordSvc, es exportSvc) *GRPCServer {
	return &GRPCServer{
		address: address,
		apiKey:  []byte(apiKey),
		users:   us,
		papers:  ps,
		words:   ws,
		exports: es,
		logger:  l.With("module", "grpc_server"),
	}
}

// Server builds a grpc.Server with the interceptor chain and the store
// service registered, without listening.
func (s *GRPCServer) Server() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.apiKeyInterceptor,
		s.accessTokenInterceptor,
	))
	storeapi.RegisterStoreServer(srv, s)
	return srv
}

// Run serves on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.Server()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
