//go:build linux

package system

import (
	"fmt"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/screensaver"
	"github.com/jezek/xgb/xproto"
)

// x11IdleProbe queries the MIT-SCREEN-SAVER extension, which tracks input
// across the whole X display.
type x11IdleProbe struct {
	conn *xgb.Conn
	root xproto.Drawable
}

func newIdleProbe() (idleProbe, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	if err := screensaver.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("screensaver extension unavailable: %w", err)
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &x11IdleProbe{conn: conn, root: xproto.Drawable(screen.Root)}, nil
}

func (p *x11IdleProbe) IdleDuration() (time.Duration, error) {
	reply, err := screensaver.QueryInfo(p.conn, p.root).Reply()
	if err != nil {
		return 0, fmt.Errorf("screensaver query failed: %w", err)
	}
	return time.Duration(reply.MsSinceUserInput) * time.Millisecond, nil
}

func (p *x11IdleProbe) Close() error {
	p.conn.Close()
	return nil
}
