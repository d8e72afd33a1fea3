package http

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrPrivateAddress is returned when a host resolves to a loopback,
// private or link-local address while the private network guard is on.
var ErrPrivateAddress = errors.New("private address not allowed")

// privateNetworks are the CIDR blocks refused by the private network guard.
var privateNetworks []*net.IPNet

func init() {
	for _, cidr := range []string{
		"0.0.0.0/8",
		"10.0.0.0/8",
		"100.64.0.0/10",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"::/128",
		"::1/128",
		"fc00::/7",
		"fe80::/10",
	} {
		_, block, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}
		privateNetworks = append(privateNetworks, block)
	}
}

func isPrivateIP(ip net.IP) bool {
	for _, block := range privateNetworks {
		if block.Contains(ip) {
			return true
		}
	}
	return false
}

// guardedDialContext resolves the host, refuses private addresses and
// then dials the address it checked, so a second lookup cannot swap in a
// different answer.
func guardedDialContext(dialer *net.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}

		ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, err
		}
		if len(ips) == 0 {
			return nil, fmt.Errorf("no addresses for %s", host)
		}

		for _, ip := range ips {
			if isPrivateIP(ip.IP) {
				return nil, fmt.Errorf("%w: %s resolves to %s", ErrPrivateAddress, host, ip.IP)
			}
		}

		return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
	}
}
