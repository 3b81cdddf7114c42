package service

import (
	"encoding/json"
	"sync"
	"testing"

	"cafeteria_manager/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	failNext bool
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		return assert.AnError
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messages
}

func TestNotifyUserDeliversEvent(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(7, constants.ROLE_CUSTOMER, conn)

	hub.NotifyUser(7, Event{Type: constants.EVENT_ORDER_STATUS_UPDATE, Data: "ready"})

	msgs := conn.received()
	require.Len(t, msgs, 1)

	var event Event
	require.NoError(t, json.Unmarshal(msgs[0], &event))
	assert.Equal(t, constants.EVENT_ORDER_STATUS_UPDATE, event.Type)
	assert.Equal(t, "ready", event.Data)
}

func TestNotifyUserWithoutConnectionIsNoop(t *testing.T) {
	hub := NewHub()

	// Must not panic or block.
	hub.NotifyUser(42, Event{Type: constants.EVENT_ORDER_STATUS_UPDATE})

	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestRegisterReplacesPreviousConnection(t *testing.T) {
	hub := NewHub()
	old := &fakeConn{}
	newer := &fakeConn{}

	hub.Register(7, constants.ROLE_CUSTOMER, old)
	hub.Register(7, constants.ROLE_CUSTOMER, newer)

	hub.NotifyUser(7, Event{Type: constants.EVENT_ORDER_STATUS_UPDATE})

	assert.Empty(t, old.received())
	assert.Len(t, newer.received(), 1)
	assert.Equal(t, 1, hub.ConnectionCount())
}

func TestUnregisterIgnoresStaleConnection(t *testing.T) {
	hub := NewHub()
	old := &fakeConn{}
	newer := &fakeConn{}

	hub.Register(7, constants.ROLE_CUSTOMER, old)
	hub.Register(7, constants.ROLE_CUSTOMER, newer)

	// The old connection's read loop exits after the replacement.
	hub.Unregister(7, old)
	assert.Equal(t, 1, hub.ConnectionCount())

	hub.Unregister(7, newer)
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestNotifyStaffSkipsCustomers(t *testing.T) {
	hub := NewHub()
	staff := &fakeConn{}
	admin := &fakeConn{}
	customer := &fakeConn{}

	hub.Register(1, constants.ROLE_STAFF, staff)
	hub.Register(2, constants.ROLE_ADMIN, admin)
	hub.Register(3, constants.ROLE_CUSTOMER, customer)

	hub.NotifyStaff(Event{Type: constants.EVENT_NEW_ORDER, Data: "ORD-1"})

	assert.Len(t, staff.received(), 1)
	assert.Len(t, admin.received(), 1)
	assert.Empty(t, customer.received())
}

func TestNotifyDropsFailedConnection(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{failNext: true}
	hub.Register(7, constants.ROLE_CUSTOMER, conn)

	hub.NotifyUser(7, Event{Type: constants.EVENT_ORDER_STATUS_UPDATE})

	assert.True(t, conn.closed)
	assert.Equal(t, 0, hub.ConnectionCount())
}
