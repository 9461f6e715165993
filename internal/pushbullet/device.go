package pushbullet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/notify-you/notify-you/internal/transport"
)

// Device is a snapshot of a device registered to the account.
// It remembers the [Client] it came from so that it can receive pushes;
// a Device built by hand cannot.
type Device struct {
	Active       bool    `json:"active"`
	Iden         string  `json:"iden"`
	Created      float64 `json:"created"`
	Modified     float64 `json:"modified"`
	Type         string  `json:"type"`
	Kind         string  `json:"kind"`
	Nickname     string  `json:"nickname"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	AppVersion   int     `json:"app_version"`
	Pushable     bool    `json:"pushable"`
	Icon         string  `json:"icon"`

	client *Client
}

// Describe returns the nickname of the device, or its iden if it has no nickname.
func (d Device) Describe() string {
	if d.Nickname != "" {
		return d.Nickname
	}
	return d.Iden
}

// ListDevices fetches all devices in the order given by the API.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	resp, err := transport.Get(ctx, c.doer, c.url("/devices"), c.header())
	if err != nil {
		return nil, fmt.Errorf("failed to list the devices: %w", err)
	}

	var list struct {
		Devices []Device `json:"devices"`
	}
	if err := decode(resp, &list); err != nil {
		return nil, err
	}

	for i := range list.Devices {
		list.Devices[i].client = c
	}
	return list.Devices, nil
}

// Selector picks a device by exactly one of its nickname, its iden, and its
// position in [Client.ListDevices].
type Selector struct {
	Name  *string
	Iden  *string
	Index *int
}

// ByName selects the first device with the nickname.
func ByName(name string) Selector { return Selector{Name: &name, Iden: nil, Index: nil} }

// ByIden selects the device with the iden.
func ByIden(iden string) Selector { return Selector{Name: nil, Iden: &iden, Index: nil} }

// ByIndex selects the device at the position.
func ByIndex(index int) Selector { return Selector{Name: nil, Iden: nil, Index: &index} }

func (s Selector) count() int {
	n := 0
	if s.Name != nil {
		n++
	}
	if s.Iden != nil {
		n++
	}
	if s.Index != nil {
		n++
	}
	return n
}

// Describe returns a human-readable description of the selector.
func (s Selector) Describe() string {
	switch {
	case s.count() != 1:
		return "(invalid selector)"
	case s.Name != nil:
		return fmt.Sprintf("name %q", *s.Name)
	case s.Iden != nil:
		return fmt.Sprintf("iden %q", *s.Iden)
	default:
		return "index " + strconv.Itoa(*s.Index)
	}
}

// GetDevice fetches the device list and returns the device picked by sel.
//
// It fails with [ErrInvalidArgument] if sel does not set exactly one field,
// and with [ErrNotFound] if no device matches. Negative indexes never match.
func (c *Client) GetDevice(ctx context.Context, sel Selector) (Device, error) {
	if sel.count() != 1 {
		return Device{}, fmt.Errorf("%w: provide exactly one of name, iden, index", ErrInvalidArgument)
	}

	devices, err := c.ListDevices(ctx)
	if err != nil {
		return Device{}, err
	}

	switch {
	case sel.Index != nil:
		if i := *sel.Index; i >= 0 && i < len(devices) {
			return devices[i], nil
		}
		return Device{}, fmt.Errorf("%w: no device at index %d (%d devices)", ErrNotFound, *sel.Index, len(devices))

	case sel.Name != nil:
		for _, d := range devices {
			if d.Nickname == *sel.Name {
				return d, nil
			}
		}
		return Device{}, fmt.Errorf("%w: no device with name %q", ErrNotFound, *sel.Name)

	default:
		for _, d := range devices {
			if d.Iden == *sel.Iden {
				return d, nil
			}
		}
		return Device{}, fmt.Errorf("%w: no device with iden %q", ErrNotFound, *sel.Iden)
	}
}
