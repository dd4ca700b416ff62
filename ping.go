package ensemblrest

import (
	"context"
	"errors"
)

// ErrPingFailed is returned by Ping when the service answers without
// reporting itself up.
var ErrPingFailed = errors.New("ensemblrest: ping did not report the service as up")

// Ping calls getInfoPing and checks the reported status. The request counts
// against the client's rate limit like any other call.
func (c *Client) Ping(ctx context.Context) error {
	var pong struct {
		Ping int `json:"ping"`
	}
	if err := c.CallInto(ctx, OpGetInfoPing, nil, &pong); err != nil {
		return err
	}
	if pong.Ping != 1 {
		return ErrPingFailed
	}
	return nil
}
