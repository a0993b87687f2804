package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type RegistryUnitSuite struct {
	suite.Suite
}

type fakeConn struct {
	mu     sync.Mutex
	fail   bool
	writes [][]byte
	closed bool
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.writes = append(c.writes, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.writes)
}

func (suite *RegistryUnitSuite) TestSendTo(t provider.T) {
	t.Parallel()

	t.Run("Should deliver to a registered user", func(t provider.T) {
		t.Parallel()
		r := New(nil)
		conn := &fakeConn{}
		r.Register(100, conn)

		r.SendTo(100, []byte(`{"type":"new_question"}`))

		assert.Equal(t, 1, conn.received())
	})

	t.Run("Should be no-op for an unknown user", func(t provider.T) {
		t.Parallel()
		r := New(nil)

		r.SendTo(100, []byte("payload"))
	})

	t.Run("Should evict the handle after a failed send", func(t provider.T) {
		t.Parallel()
		r := New(nil)
		conn := &fakeConn{fail: true}
		r.Register(100, conn)

		r.SendTo(100, []byte("payload"))

		assert.True(t, conn.closed)
		r.SendTo(100, []byte("payload")) // no handle left, nothing to do
		assert.Equal(t, 0, conn.received())
	})
}

func (suite *RegistryUnitSuite) TestRegister(t provider.T) {
	t.Parallel()

	t.Run("Should replace a previous handle", func(t provider.T) {
		t.Parallel()
		r := New(nil)
		old := &fakeConn{}
		fresh := &fakeConn{}
		r.Register(100, old)
		r.Register(100, fresh)

		r.SendTo(100, []byte("payload"))

		assert.Equal(t, 0, old.received())
		assert.Equal(t, 1, fresh.received())
		assert.False(t, old.closed) // superseded handles are not closed here
	})
}

func (suite *RegistryUnitSuite) TestBroadcast(t provider.T) {
	t.Parallel()

	t.Run("Should keep delivering past a stale member", func(t provider.T) {
		t.Parallel()
		r := New(nil)
		stale := &fakeConn{fail: true}
		live := &fakeConn{}
		r.Register(100, stale)
		r.Register(200, live)

		r.Broadcast([]int64{100, 200}, []byte("payload"))

		assert.Equal(t, 1, live.received())
		assert.True(t, stale.closed)
	})

	t.Run("Should skip unregistered members", func(t provider.T) {
		t.Parallel()
		r := New(nil)
		live := &fakeConn{}
		r.Register(200, live)

		r.Broadcast([]int64{100, 200, 300}, []byte("payload"))

		assert.Equal(t, 1, live.received())
	})
}

func (suite *RegistryUnitSuite) TestBroadcastAll(t provider.T) {
	t.Parallel()

	t.Run("Should reach every registered user", func(t provider.T) {
		t.Parallel()
		r := New(nil)
		first := &fakeConn{}
		second := &fakeConn{}
		r.Register(100, first)
		r.Register(200, second)
		r.Unregister(100)

		r.BroadcastAll([]byte("payload"))

		assert.Equal(t, 0, first.received())
		assert.Equal(t, 1, second.received())
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(RegistryUnitSuite))
}
