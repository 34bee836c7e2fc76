package impl_messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/beanstalkd/go-beanstalk"

	"github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging"
)

const (
	putPriority = 1024
	putTTR      = time.Minute
)

// BeanstalkNotifier pushes lifecycle notifications onto a beanstalk tube
// for whatever dispatcher (SMS, app push) drains it. Delivery is
// best-effort by contract: callers log and drop errors, and a broken
// connection is simply re-dialed on the next notify.
type BeanstalkNotifier struct {
	addr string
	tube string

	mu   sync.Mutex
	conn *beanstalk.Conn
}

func NewBeanstalkNotifier(addr, tube string) *BeanstalkNotifier {
	return &BeanstalkNotifier{addr: addr, tube: tube}
}

func (n *BeanstalkNotifier) Notify(_ context.Context, notification messaging.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	conn, err := n.connect()
	if err != nil {
		return err
	}

	tube := beanstalk.NewTube(conn, n.tube)
	if _, err := tube.Put(body, putPriority, 0, putTTR); err != nil {
		// Drop the connection so the next notify starts fresh.
		conn.Close()
		n.conn = nil
		return fmt.Errorf("put notification: %w", err)
	}

	return nil
}

func (n *BeanstalkNotifier) connect() (*beanstalk.Conn, error) {
	if n.conn != nil {
		return n.conn, nil
	}

	conn, err := beanstalk.Dial("tcp", n.addr)
	if err != nil {
		return nil, fmt.Errorf("dial beanstalk at %s: %w", n.addr, err)
	}

	n.conn = conn
	return conn, nil
}

func (n *BeanstalkNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		return nil
	}

	err := n.conn.Close()
	n.conn = nil
	return err
}
