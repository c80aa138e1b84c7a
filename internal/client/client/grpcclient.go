package client

import (
	"context"
	"crypto/tls"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/common"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/storeapi"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const defaultTimeout = 10 * time.Second

type GRPCClient struct {
	endpointURL string
	apiKey      string
	timeout     time.Duration
	dialOpts    []grpc.DialOption

	conn   *grpc.ClientConn
	client storeapi.StoreClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	// serializes token refreshes
	refreshMu sync.Mutex
}

type Option func(*GRPCClient)

// WithTimeout bounds every store call.
func WithTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.timeout = d }
}

// WithDialOptions appends dial options, replacing the transport
// credentials chosen from the endpoint scheme if they set their own.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

// NewGRPCClient connects lazily to endpointURL. Accepted forms are
// host:port, grpc://host:port and http://host:port (plaintext) and
// grpcs://host:port and https://host:port (TLS).
func NewGRPCClient(endpointURL, apiKey string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey, timeout: defaultTimeout}
	for _, o := range opts {
		o(c)
	}

	target, secure := dialTarget(endpointURL)
	creds := insecure.NewCredentials()
	if secure {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithUnaryInterceptor(c.authInterceptor),
	}, c.dialOpts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = storeapi.NewStoreClient(conn)
	return c, nil
}

func dialTarget(endpoint string) (target string, secure bool) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	for _, p := range []string{"grpcs://", "https://"} {
		if rest, ok := strings.CutPrefix(endpoint, p); ok {
			return rest, true
		}
	}
	for _, p := range []string{"grpc://", "http://"} {
		if rest, ok := strings.CutPrefix(endpoint, p); ok {
			return rest, false
		}
	}
	return endpoint, false
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) tokens() (string, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.refreshToken
}

func (c *GRPCClient) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken, c.refreshToken = access, refresh
	c.mu.Unlock()
}

// SignedIn reports whether Login succeeded and Logout has not been called.
func (c *GRPCClient) SignedIn() bool {
	access, _ := c.tokens()
	return access != ""
}

func (c *GRPCClient) Logout() {
	c.setTokens("", "")
}

func withMetadata(ctx context.Context, key, value string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(key, value)
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) authInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withMetadata(ctx, common.APIKeyHeaderName, c.apiKey)

	access, _ := c.tokens()
	if access == "" || method == storeapi.FullMethod(storeapi.MethodRefreshToken) {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withMetadata(ctx, common.AccessTokenHeaderName, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	fresh, rerr := c.refresh(ctx, access)
	if rerr != nil {
		return err
	}
	return invoker(withMetadata(ctx, common.AccessTokenHeaderName, fresh), method, req, reply, cc, opts...)
}

// refresh rotates the token pair unless another call already replaced the
// stale access token.
func (c *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refresh := c.tokens()
	if access != stale {
		return access, nil
	}
	if refresh == "" {
		return "", ErrUnauthorized
	}

	resp, err := c.client.RefreshToken(ctx, &storeapi.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		// the refresh token is spent or expired; the session is over
		c.setTokens("", "")
		return "", mapError(err)
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.AccessToken, nil
}

func (c *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.Ping(ctx, &storeapi.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Register(ctx context.Context, username, password string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.client.Register(ctx, &storeapi.RegisterRequest{Username: username, Password: password})
	return mapError(err)
}

func (c *GRPCClient) Login(ctx context.Context, username, password string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.Login(ctx, &storeapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return mapError(err)
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (c *GRPCClient) ListPapers(ctx context.Context) ([]domain.Paper, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.ListPapers(ctx, &storeapi.ListPapersRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Papers, nil
}

func (c *GRPCClient) InsertPaper(ctx context.Context, d domain.PaperDraft) (domain.Paper, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.InsertPaper(ctx, &storeapi.InsertPaperRequest{Draft: d})
	if err != nil {
		return domain.Paper{}, mapError(err)
	}
	return resp.Paper, nil
}

func (c *GRPCClient) UpdatePaper(ctx context.Context, id string, p domain.PaperPatch) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.client.UpdatePaper(ctx, &storeapi.UpdatePaperRequest{ID: id, Patch: p})
	return mapError(err)
}

func (c *GRPCClient) DeletePaper(ctx context.Context, id string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.client.DeletePaper(ctx, &storeapi.DeleteRequest{ID: id})
	return mapError(err)
}

func (c *GRPCClient) ListWords(ctx context.Context) ([]domain.Word, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.ListWords(ctx, &storeapi.ListWordsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Words, nil
}

func (c *GRPCClient) InsertWord(ctx context.Context, d domain.WordDraft) (domain.Word, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.InsertWord(ctx, &storeapi.InsertWordRequest{Draft: d})
	if err != nil {
		return domain.Word{}, mapError(err)
	}
	return resp.Word, nil
}

func (c *GRPCClient) UpdateWord(ctx context.Context, id string, p domain.WordPatch) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.client.UpdateWord(ctx, &storeapi.UpdateWordRequest{ID: id, Patch: p})
	return mapError(err)
}

func (c *GRPCClient) DeleteWord(ctx context.Context, id string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.client.DeleteWord(ctx, &storeapi.DeleteRequest{ID: id})
	return mapError(err)
}

// Export asks the store to write a snapshot and returns where to fetch it.
func (c *GRPCClient) Export(ctx context.Context) (*storeapi.ExportResponse, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.client.Export(ctx, &storeapi.ExportRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}
