// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "net"

// LinkChecker reports whether the host has any usable network link.
type LinkChecker interface {
	HasLink() bool
}

type interfaceLinkChecker struct {
	interfaces func() ([]net.Interface, error)
}

// NewInterfaceLinkChecker returns a [LinkChecker] that looks for at least one
// non-loopback interface that is administratively up and has a running link.
// An error listing interfaces is treated as "link present" so that the
// active probe gets the final word.
func NewInterfaceLinkChecker() LinkChecker {
	return &interfaceLinkChecker{interfaces: net.Interfaces}
}

func (c *interfaceLinkChecker) HasLink() bool {
	ifaces, err := c.interfaces()
	if err != nil {
		return true
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagRunning != 0 {
			return true
		}
	}
	return false
}
