//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/boardwalk/monopoly-online/internal/protocol"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetPlayerID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetPlayerID(playerID string) {
	m.Called(playerID)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(id string) {
	m.Called(id)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言的测试）
type SimpleClient struct {
	ID       string
	Name     string
	PlayerID string
	RoomID   string
	Messages []*protocol.Message
}

func (m *SimpleClient) GetID() string                     { return m.ID }
func (m *SimpleClient) GetName() string                   { return m.Name }
func (m *SimpleClient) GetPlayerID() string               { return m.PlayerID }
func (m *SimpleClient) SetPlayerID(playerID string)       { m.PlayerID = playerID }
func (m *SimpleClient) GetRoom() string                   { return m.RoomID }
func (m *SimpleClient) SetRoom(id string)                 { m.RoomID = id }
func (m *SimpleClient) SendMessage(msg *protocol.Message) { m.Messages = append(m.Messages, msg) }
func (m *SimpleClient) Close()                            {}

// MessagesOfType 返回收到的指定类型的消息
func (m *SimpleClient) MessagesOfType(msgType protocol.MessageType) []*protocol.Message {
	var msgs []*protocol.Message
	for _, msg := range m.Messages {
		if msg.Type == msgType {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
