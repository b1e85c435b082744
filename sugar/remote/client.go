package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/dendrascience/sugarctl/internal/codec"
	"github.com/dendrascience/sugarctl/sugar"
	"github.com/google/uuid"
)

// Client forwards façade calls to a Server. Each call opens a new
// connection, writes one request and waits for its single response. The
// client adds no read deadline of its own: a call lasts as long as the
// implementation takes, or until ctx is done.
type Client struct {
	socketPath string
	logger     *slog.Logger
}

var _ sugar.Commands = (*Client)(nil)

// NewClient returns a Client for the server listening on socketPath.
func NewClient(socketPath string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{socketPath: socketPath, logger: logger}
}

// Call sends req and waits for its settlement. Server-side failures are
// returned as *CallError; transport failures as plain errors.
func (c *Client) Call(ctx context.Context, req sugar.Request) error {
	method := req.Method()
	envelope, err := EncodeRequest(req, uuid.NewString())
	if err != nil {
		return err
	}

	c.logger.Debug("sending request", "method", method, "id", envelope.ID, "socket", c.socketPath)

	response, err := c.send(ctx, envelope)
	if err != nil {
		return fmt.Errorf("calling %s on %s: %w", method, c.socketPath, err)
	}
	if !response.OK {
		return &CallError{Method: method, Message: response.Error}
	}
	return nil
}

func (c *Client) send(ctx context.Context, envelope Request) (*Response, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}
	defer conn.Close()

	// Closing the connection unblocks the read below when ctx ends first.
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	if err := codec.NewEncoder(conn).Encode(envelope); err != nil {
		return nil, fmt.Errorf("writing request: %w", err)
	}
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}

	var response Response
	if err := codec.NewDecoder(io.LimitReader(conn, maxMessageSize)).Decode(&response); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return &response, nil
}

func (c *Client) Bundlr(ctx context.Context, p sugar.BundlrParams) error {
	return c.Call(ctx, p)
}

func (c *Client) CollectionSet(ctx context.Context, p sugar.CollectionSetParams) error {
	return c.Call(ctx, p)
}

func (c *Client) CollectionRemove(ctx context.Context, p sugar.CollectionRemoveParams) error {
	return c.Call(ctx, p)
}

func (c *Client) CreateConfig(ctx context.Context, p sugar.CreateConfigParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Deploy(ctx context.Context, p sugar.DeployParams) error {
	return c.Call(ctx, p)
}

func (c *Client) FreezeDisable(ctx context.Context, p sugar.FreezeDisableParams) error {
	return c.Call(ctx, p)
}

func (c *Client) FreezeEnable(ctx context.Context, p sugar.FreezeEnableParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Hash(ctx context.Context, p sugar.HashParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Launch(ctx context.Context, p sugar.LaunchParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Mint(ctx context.Context, p sugar.MintParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Reveal(ctx context.Context, p sugar.RevealParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Show(ctx context.Context, p sugar.ShowParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Sign(ctx context.Context, p sugar.SignParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Thaw(ctx context.Context, p sugar.ThawParams) error {
	return c.Call(ctx, p)
}

func (c *Client) UnfreezeFunds(ctx context.Context, p sugar.UnfreezeFundsParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Update(ctx context.Context, p sugar.UpdateParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Upload(ctx context.Context, p sugar.UploadParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Validate(ctx context.Context, p sugar.ValidateParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Verify(ctx context.Context, p sugar.VerifyParams) error {
	return c.Call(ctx, p)
}

func (c *Client) Withdraw(ctx context.Context, p sugar.WithdrawParams) error {
	return c.Call(ctx, p)
}
