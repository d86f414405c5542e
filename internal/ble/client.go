// Package ble talks to GoCube devices over Bluetooth Low Energy.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/cubetrainer/internal/gocube"
)

var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
	ErrServiceNotFound  = errors.New("ble: GoCube service not found")
)

// DefaultConnectTimeout bounds the scan for a named device in Connect.
const DefaultConnectTimeout = 10 * time.Second

var (
	serviceUUID = bluetooth.NewUUID(uuid.MustParse(gocube.ServiceUUID))
	txCharUUID  = bluetooth.NewUUID(uuid.MustParse(gocube.TxCharUUID))
	rxCharUUID  = bluetooth.NewUUID(uuid.MustParse(gocube.RxCharUUID))
)

// ScanResult is a discovered GoCube.
type ScanResult struct {
	Name    string
	Address bluetooth.Address
	RSSI    int16
}

// ID is the address string accepted by Connect.
func (r ScanResult) ID() string { return r.Address.String() }

// Client manages the connection to one cube.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic

	mu         sync.RWMutex
	connected  bool
	deviceName string
	deviceID   string
	battery    int

	onMessage func(gocube.Message)
}

// NewClient enables the default adapter.
func NewClient() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("enable BLE adapter: %w", err)
	}
	return &Client{adapter: adapter, battery: -1}, nil
}

// SetMessageCallback sets the callback for valid frames. Malformed
// notifications are dropped before it is called.
func (c *Client) SetMessageCallback(cb func(gocube.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

func isGoCube(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "gocube")
}

// Scan lists GoCubes advertising within timeout.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
	)
	done := make(chan error, 1)
	go func() {
		done <- c.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			addr := result.Address.String()
			mu.Lock()
			defer mu.Unlock()
			if seen[addr] || !isGoCube(result.LocalName()) {
				return
			}
			seen[addr] = true
			results = append(results, ScanResult{Name: result.LocalName(), Address: result.Address, RSSI: result.RSSI})
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	case err := <-done:
		return nil, fmt.Errorf("scan: %w", err)
	}
	c.adapter.StopScan()
	<-done

	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// Connect scans for the device with the given address, or the first GoCube
// seen when id is empty, and connects to it.
func (c *Client) Connect(ctx context.Context, id string) (ScanResult, error) {
	if c.IsConnected() {
		return ScanResult{}, ErrAlreadyConnected
	}

	found := make(chan ScanResult, 1)
	var once sync.Once
	go func() {
		c.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			if id != "" && result.Address.String() != id {
				return
			}
			if id == "" && !isGoCube(result.LocalName()) {
				return
			}
			once.Do(func() {
				found <- ScanResult{Name: result.LocalName(), Address: result.Address, RSSI: result.RSSI}
			})
		})
	}()

	var target ScanResult
	select {
	case target = <-found:
		c.adapter.StopScan()
	case <-time.After(DefaultConnectTimeout):
		c.adapter.StopScan()
		return ScanResult{}, ErrDeviceNotFound
	case <-ctx.Done():
		c.adapter.StopScan()
		return ScanResult{}, ctx.Err()
	}
	return target, c.ConnectToResult(target)
}

// ConnectToResult connects to a device returned by Scan.
func (c *Client) ConnectToResult(result ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	rx, err := c.attach(device)
	if err != nil {
		device.Disconnect()
		return err
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rx
	c.connected = true
	c.deviceName = result.Name
	c.deviceID = result.ID()
	c.mu.Unlock()

	return c.SendCommand(gocube.CmdRequestBattery)
}

// attach discovers the UART characteristics and subscribes to
// notifications. It returns the characteristic commands are written to.
func (c *Client) attach(device bluetooth.Device) (bluetooth.DeviceCharacteristic, error) {
	var rx bluetooth.DeviceCharacteristic

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		return rx, fmt.Errorf("discover services: %w", err)
	}
	if len(services) == 0 {
		return rx, ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		return rx, fmt.Errorf("discover characteristics: %w", err)
	}

	var tx bluetooth.DeviceCharacteristic
	var haveTx, haveRx bool
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			tx, haveTx = ch, true
		case rxCharUUID:
			rx, haveRx = ch, true
		}
	}
	if !haveTx || !haveRx {
		return rx, ErrServiceNotFound
	}

	if err := tx.EnableNotifications(c.handleNotification); err != nil {
		return rx, fmt.Errorf("enable notifications: %w", err)
	}
	return rx, nil
}

// Disconnect is a no-op when not connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.deviceID = ""
	c.battery = -1
	return err
}

func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

func (c *Client) DeviceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceID
}

// Battery returns the last reported level, or -1 if unknown.
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command frame, falling back to a write with
// response when the adapter rejects the unacknowledged write.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}
	data := gocube.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		if _, err := c.rxChar.Write(data); err != nil {
			return fmt.Errorf("send command 0x%02X: %w", cmd, err)
		}
	}
	return nil
}

func (c *Client) handleNotification(data []byte) {
	msg, err := gocube.ParseMessage(data)
	if err != nil {
		return
	}

	if msg.Type == gocube.MsgBattery {
		if level, err := gocube.DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = level
			c.mu.Unlock()
		}
	}

	c.mu.RLock()
	cb := c.onMessage
	c.mu.RUnlock()
	if cb != nil {
		cb(msg)
	}
}
