package chain

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Options configures the gRPC query client.
type Options struct {
	TLS            bool
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *zap.Logger
	DialOptions    []grpc.DialOption
}

// Client dispatches encoded queries to a node's gRPC endpoint and returns the
// proto3 JSON rendering of each response.
type Client struct {
	conn *grpc.ClientConn
	opts Options

	resolver *descriptorResolver

	mu          sync.RWMutex
	outputCache map[string]protoreflect.MessageDescriptor
}

// NewClient creates a new query client for the gRPC target.
func NewClient(target string, opts Options) (*Client, error) {
	creds := insecure.NewCredentials()
	if opts.TLS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(creds)}, opts.DialOptions...)
	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		conn:        conn,
		opts:        opts,
		resolver:    newDescriptorResolver(conn),
		outputCache: make(map[string]protoreflect.MessageDescriptor),
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Query sends the protobuf request body to route and returns the response as proto3 JSON.
func (c *Client) Query(ctx context.Context, route string, data []byte) ([]byte, error) {
	output, err := c.outputDescriptor(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", route, err)
	}

	var reply []byte
	err = withRetry(ctx, c.opts.MaxRetries, c.opts.RetryBackoff, func(ctx context.Context) error {
		callCtx := ctx
		if c.opts.RequestTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.opts.RequestTimeout)
			defer cancel()
		}
		reply = nil
		err := c.conn.Invoke(callCtx, route, &data, &reply, grpc.ForceCodec(rawCodec{}))
		if err != nil && retryable(err) {
			c.opts.Logger.Warn("query failed, retrying", zap.String("route", route), zap.Error(err))
		}
		return err
	}, retryable)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", route, err)
	}

	out, err := renderJSON(output, reply)
	if err != nil {
		return nil, fmt.Errorf("render %s response: %w", route, err)
	}
	return out, nil
}

func (c *Client) outputDescriptor(ctx context.Context, route string) (protoreflect.MessageDescriptor, error) {
	c.mu.RLock()
	desc, ok := c.outputCache[route]
	c.mu.RUnlock()
	if ok {
		return desc, nil
	}

	service, method, err := splitRoute(route)
	if err != nil {
		return nil, err
	}
	desc, err = c.resolver.methodOutput(ctx, service, method)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.outputCache[route] = desc
	c.mu.Unlock()
	return desc, nil
}

// splitRoute splits "/pkg.Service/Method".
func splitRoute(route string) (string, string, error) {
	trimmed := strings.TrimPrefix(route, "/")
	idx := strings.LastIndex(trimmed, "/")
	if !strings.HasPrefix(route, "/") || idx <= 0 || idx == len(trimmed)-1 {
		return "", "", fmt.Errorf("invalid route %q", route)
	}
	return trimmed[:idx], trimmed[idx+1:], nil
}

// retryable reports whether a call may succeed when repeated.
func retryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}
