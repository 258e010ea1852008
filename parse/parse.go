package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/volcano/network"
)

// ErrSyntax indicates a line that is not a node description.
var ErrSyntax = errors.New("parse: syntax error")

var lineRE = regexp.MustCompile(`^Valve (\w+) has flow rate=(-?\d+); tunnels? leads? to valves? (.*)$`)

// ParseLine parses one node description.
func ParseLine(line string) (network.NodeSpec, error) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return network.NodeSpec{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return network.NodeSpec{}, fmt.Errorf("%w: rate %q: %v", ErrSyntax, m[2], err)
	}

	var tunnels []string
	for _, to := range strings.Split(m[3], ",") {
		if to = strings.TrimSpace(to); to != "" {
			tunnels = append(tunnels, to)
		}
	}

	return network.NodeSpec{ID: m[1], Rate: rate, Tunnels: tunnels}, nil
}

// Specs parses every line of r, skipping blank lines.
func Specs(r io.Reader) ([]network.NodeSpec, error) {
	var specs []network.NodeSpec
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		spec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return specs, nil
}

// Network parses r and builds the network it describes.
func Network(r io.Reader) (*network.Network, error) {
	specs, err := Specs(r)
	if err != nil {
		return nil, err
	}

	return network.New(specs)
}

// File opens path and parses it with Network.
func File(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer f.Close()

	net, err := Network(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return net, nil
}
