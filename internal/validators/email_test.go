package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	mx  map[string][]*net.MX
	ips map[string][]net.IPAddr
}

func (s stubResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if mx, ok := s.mx[name]; ok {
		return mx, nil
	}
	return nil, errors.New("no such host")
}

func (s stubResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if ips, ok := s.ips[host]; ok {
		return ips, nil
	}
	return nil, errors.New("no such host")
}

func TestEmailDomainChecker(t *testing.T) {
	v := NewEmailDomainChecker(stubResolver{
		mx:  map[string][]*net.MX{"salon.fr": {{Host: "mx.salon.fr.", Pref: 10}}},
		ips: map[string][]net.IPAddr{"a-only.fr": {{IP: net.ParseIP("192.0.2.1")}}},
	}, 0)
	ctx := context.Background()

	assert.True(t, v.Valid(ctx, "marie@salon.fr"))
	assert.True(t, v.Valid(ctx, "marie@a-only.fr"))
	assert.False(t, v.Valid(ctx, "marie@nowhere.invalid"))
	assert.False(t, v.Valid(ctx, "marie@"))
	assert.False(t, v.Valid(ctx, "no-at-sign"))
}
