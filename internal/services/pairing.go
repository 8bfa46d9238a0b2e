package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/opio/bpmonitor/internal/common"
	"github.com/opio/bpmonitor/internal/devices"
	"github.com/opio/bpmonitor/internal/logging"
)

// PairingService finds wearables and remembers the one paired last.
type PairingService struct {
	discoverer devices.Discoverer
	logger     logging.Logger

	mu     sync.Mutex
	paired *devices.Device
}

func NewPairingService(d devices.Discoverer, logger logging.Logger) *PairingService {
	return &PairingService{discoverer: d, logger: logger}
}

func (s *PairingService) Discover(ctx context.Context) ([]devices.Device, error) {
	list, err := s.discoverer.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover devices: %w", err)
	}
	return list, nil
}

// Pair pairs the discovered device whose ID or name matches key, ignoring
// case.
func (s *PairingService) Pair(ctx context.Context, key string) (devices.Device, error) {
	list, err := s.Discover(ctx)
	if err != nil {
		return devices.Device{}, err
	}

	for _, d := range list {
		if strings.EqualFold(d.ID, key) || strings.EqualFold(d.Name, key) {
			s.mu.Lock()
			s.paired = &d
			s.mu.Unlock()
			s.logger.Info(ctx, "device paired", "device_id", d.ID)
			return d, nil
		}
	}
	return devices.Device{}, fmt.Errorf("device %q: %w", key, common.ErrorNotFound)
}

// Paired returns the paired device, if any.
func (s *PairingService) Paired() (devices.Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paired == nil {
		return devices.Device{}, false
	}
	return *s.paired, true
}
