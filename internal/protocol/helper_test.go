package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	// Test creating a simple message
	payload := JoinGamePayload{PlayerID: "alice", HostPlayerID: "bob"}
	msg, err := NewMessage(MsgJoinGame, payload)

	assert.NoError(t, err)
	assert.NotNil(t, msg)
	assert.Equal(t, MsgJoinGame, msg.Type)
	assert.NotEmpty(t, msg.Payload)
}

func TestNewMessage_NilPayload(t *testing.T) {
	msg, err := NewMessage(MsgTriggerTurn, nil)

	assert.NoError(t, err)
	assert.Equal(t, MsgTriggerTurn, msg.Type)
	assert.Empty(t, msg.Payload)
}

func TestEncodeDecode(t *testing.T) {
	// Setup original message
	payload := HostGamePayload{PlayerID: "alice"}
	originalMsg, err := NewMessage(MsgHostGame, payload)
	assert.NoError(t, err)

	// Encode
	bytes, err := originalMsg.Encode()
	assert.NoError(t, err)
	assert.NotEmpty(t, bytes)

	// Decode
	decodedMsg, err := Decode(bytes)
	assert.NoError(t, err)
	assert.NotNil(t, decodedMsg)

	// Verify
	assert.Equal(t, originalMsg.Type, decodedMsg.Type)
	assert.Equal(t, originalMsg.Payload, decodedMsg.Payload)
}

func TestParsePayload(t *testing.T) {
	original := TradeProposalPayload{
		TradeWithPlayerID: "bob",
		Offered:           TradeBundle{Cash: 200, Squares: []int{1, 3}},
		Requested:         TradeBundle{Cash: 0, Squares: []int{6}},
	}
	msg := MustNewMessage(MsgTradeProposal, original)

	parsed, err := ParsePayload[TradeProposalPayload](msg)
	assert.NoError(t, err)
	assert.Equal(t, "bob", parsed.TradeWithPlayerID)
	assert.Equal(t, 200, parsed.Offered.Cash)
	assert.Equal(t, []int{1, 3}, parsed.Offered.Squares)
	assert.Equal(t, []int{6}, parsed.Requested.Squares)
}

func TestParsePayload_Invalid(t *testing.T) {
	msg := &Message{Type: MsgHostGame, Payload: json.RawMessage(`{"playerId":42}`)}

	_, err := ParsePayload[HostGamePayload](msg)
	assert.Error(t, err)
}

func TestWireFieldNames(t *testing.T) {
	// 线上字段必须保持 camelCase，老客户端依赖这些名字
	msg := MustNewMessage(MsgTradeProposal, TradeProposalPayload{
		TradeWithPlayerID: "bob",
		Offered:           TradeBundle{Cash: 50, Squares: []int{}},
	})

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(msg.Payload, &raw))
	assert.Contains(t, raw, "tradeWithPlayerId")
	assert.Contains(t, raw, "offered")
	assert.Contains(t, raw, "requested")
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage(ErrCodeNotYourTurn)
	assert.Equal(t, MsgError, msg.Type)

	parsed, err := ParsePayload[ErrorPayload](msg)
	assert.NoError(t, err)
	assert.Equal(t, ErrCodeNotYourTurn, parsed.Code)
	assert.Equal(t, ErrorMessages[ErrCodeNotYourTurn], parsed.Message)
}

func TestNewErrorMessageWithText(t *testing.T) {
	msg := NewErrorMessageWithText(ErrCodeInvalidTrade, "自定义错误")

	parsed, err := ParsePayload[ErrorPayload](msg)
	assert.NoError(t, err)
	assert.Equal(t, ErrCodeInvalidTrade, parsed.Code)
	assert.Equal(t, "自定义错误", parsed.Message)
}
