// Package gocube decodes the GoCube BLE protocol into trainer moves.
package gocube

import (
	"errors"
	"fmt"
)

// BLE service and characteristic UUIDs (Nordic UART).
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message types sent by the cube.
const (
	MsgRotation    byte = 0x01
	MsgState       byte = 0x02
	MsgOrientation byte = 0x03
	MsgBattery     byte = 0x05
	MsgCubeType    byte = 0x08
)

// Commands written to the RX characteristic.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdEnableOrientation  byte = 0x38
	CmdFlashBacklight     byte = 0x41
)

const (
	framePrefix byte = '*'
	frameCR     byte = '\r'
	frameLF     byte = '\n'
)

var (
	ErrShortFrame    = errors.New("gocube: frame too short")
	ErrFramePrefix   = errors.New("gocube: invalid frame prefix")
	ErrFrameSuffix   = errors.New("gocube: invalid frame suffix")
	ErrFrameLength   = errors.New("gocube: invalid frame length")
	ErrFrameChecksum = errors.New("gocube: invalid frame checksum")
	ErrPayload       = errors.New("gocube: invalid payload")
)

// Message is one decoded notification.
type Message struct {
	Type    byte
	Payload []byte
}

// ParseMessage validates and unwraps a notification frame:
//
//	'*' length type payload... checksum '\r' '\n'
//
// length counts every byte after itself. The checksum is the byte sum of
// everything before it.
func ParseMessage(data []byte) (Message, error) {
	if len(data) < 5 {
		return Message{}, ErrShortFrame
	}
	if data[0] != framePrefix {
		return Message{}, ErrFramePrefix
	}

	length := int(data[1])
	if len(data) < 2+length {
		return Message{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrFrameLength, 2+length, len(data))
	}
	sum := length - 1
	if sum < 3 {
		return Message{}, ErrShortFrame
	}
	if data[sum+1] != frameCR || data[sum+2] != frameLF {
		return Message{}, ErrFrameSuffix
	}

	var checksum byte
	for _, b := range data[:sum] {
		checksum += b
	}
	if checksum != data[sum] {
		return Message{}, fmt.Errorf("%w: frame says 0x%02X, computed 0x%02X", ErrFrameChecksum, data[sum], checksum)
	}

	return Message{Type: data[2], Payload: data[3:sum]}, nil
}

// BuildCommand frames a payload-less command.
func BuildCommand(cmd byte) []byte {
	const length byte = 0x01
	return []byte{framePrefix, length, cmd, framePrefix + length + cmd, frameCR, frameLF}
}

// BuildFrame frames a message the way the cube sends it. The simulator and
// tests use it to produce notifications.
func BuildFrame(msgType byte, payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+6)
	frame = append(frame, framePrefix, byte(len(payload)+4), msgType)
	frame = append(frame, payload...)
	var checksum byte
	for _, b := range frame {
		checksum += b
	}
	return append(frame, checksum, frameCR, frameLF)
}

// MessageTypeName returns a readable name for a message type.
func MessageTypeName(t byte) string {
	switch t {
	case MsgRotation:
		return "rotation"
	case MsgState:
		return "state"
	case MsgOrientation:
		return "orientation"
	case MsgBattery:
		return "battery"
	case MsgCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", t)
	}
}
