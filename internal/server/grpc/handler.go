package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/storeapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC codes. The message is passed through
// unchanged so clients can show it.
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, common.ErrorNotFound):
		code = codes.NotFound
	case errors.Is(err, common.ErrorValidation):
		code = codes.InvalidArgument
	case errors.Is(err, common.ErrorAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrRefreshTokenExpired):
		code = codes.Unauthenticated
	case errors.Is(err, common.ErrExportDisabled):
		code = codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}

func (s *GRPCServer) Ping(ctx context.Context, req *storeapi.PingRequest) (*storeapi.PingResponse, error) {
	return &storeapi.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *storeapi.RegisterRequest) (*storeapi.RegisterResponse, error) {
	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", user.Username)
	return &storeapi.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *storeapi.LoginRequest) (*storeapi.TokenPair, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "invalid username or password")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &storeapi.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *storeapi.RefreshTokenRequest) (*storeapi.TokenPair, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &storeapi.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListPapers(ctx context.Context, req *storeapi.ListPapersRequest) (*storeapi.ListPapersResponse, error) {
	papers, err := s.papers.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &storeapi.ListPapersResponse{Papers: papers}, nil
}

func (s *GRPCServer) InsertPaper(ctx context.Context, req *storeapi.InsertPaperRequest) (*storeapi.InsertPaperResponse, error) {
	p, err := s.papers.Insert(ctx, req.Draft)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "paper inserted", p.ID)
	return &storeapi.InsertPaperResponse{Paper: *p}, nil
}

func (s *GRPCServer) UpdatePaper(ctx context.Context, req *storeapi.UpdatePaperRequest) (*storeapi.Empty, error) {
	if err := s.papers.Update(ctx, req.ID, req.Patch); err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "paper updated", req.ID)
	return &storeapi.Empty{}, nil
}

func (s *GRPCServer) DeletePaper(ctx context.Context, req *storeapi.DeleteRequest) (*storeapi.Empty, error) {
	if err := s.papers.Delete(ctx, req.ID); err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "paper deleted", req.ID)
	return &storeapi.Empty{}, nil
}

func (s *GRPCServer) ListWords(ctx context.Context, req *storeapi.ListWordsRequest) (*storeapi.ListWordsResponse, error) {
	words, err := s.words.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &storeapi.ListWordsResponse{Words: words}, nil
}

func (s *GRPCServer) InsertWord(ctx context.Context, req *storeapi.InsertWordRequest) (*storeapi.InsertWordResponse, error) {
	w, err := s.words.Insert(ctx, req.Draft)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "word inserted", w.ID)
	return &storeapi.InsertWordResponse{Word: *w}, nil
}

func (s *GRPCServer) UpdateWord(ctx context.Context, req *storeapi.UpdateWordRequest) (*storeapi.Empty, error) {
	if err := s.words.Update(ctx, req.ID, req.Patch); err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "word updated", req.ID)
	return &storeapi.Empty{}, nil
}

func (s *GRPCServer) DeleteWord(ctx context.Context, req *storeapi.DeleteRequest) (*storeapi.Empty, error) {
	if err := s.words.Delete(ctx, req.ID); err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "word deleted", req.ID)
	return &storeapi.Empty{}, nil
}

func (s *GRPCServer) Export(ctx context.Context, req *storeapi.ExportRequest) (*storeapi.ExportResponse, error) {
	if _, ok := UserIDFromContext(ctx); !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	res, err := s.exports.Export(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logMutation(ctx, "snapshot exported", res.Key)
	return &storeapi.ExportResponse{
		Key:       res.Key,
		URL:       res.URL,
		Papers:    res.Papers,
		Words:     res.Words,
		ExpiresAt: res.ExpiresAt,
	}, nil
}

func (s *GRPCServer) logMutation(ctx context.Context, msg, id string) {
	s.logger.Info(ctx, msg, "id", id)
}
