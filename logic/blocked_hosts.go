package logic

import (
	"bufio"
	"os"
	"strings"

	"lamia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blocked_hosts.go -package mocks lamia/logic IBlockedHosts

// Server-level moderation: hosts the operator refuses to federate with.
// The directory consults this before any discovery call goes out.
type IBlockedHosts interface {
	IsBlocked(host string) (bool, error)
}

type blockedHosts struct {
	cfg *shared.Config
}

func NewBlockedHosts(cfg *shared.Config) IBlockedHosts {
	return &blockedHosts{cfg}
}

func (bh *blockedHosts) IsBlocked(host string) (bool, error) {

	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	readFile, err := os.Open(bh.cfg.BlockedHostsFile)
	if err != nil {
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if host == line {
			return true, nil
		}
	}

	return false, nil
}
