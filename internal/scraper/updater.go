package scraper

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/network"
)

// Update downloads remoteURL into localPath, reporting whether the local script changed.
// The file is replaced atomically and left untouched when the content is identical.
func Update(ctx context.Context, remoteURL, localPath string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetch %s: %w", remoteURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("fetch %s: unexpected status %s", remoteURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil && sha256.Sum256(local) == sha256.Sum256(body) {
		log.Debugf("scraper: %s is up to date", localPath)
		return false, nil
	}

	tmp := localPath + ".tmp"
	if err := filesystem.API().WriteFile(tmp, body, 0o644); err != nil {
		return false, err
	}

	if err := filesystem.API().Rename(tmp, localPath); err != nil {
		_ = filesystem.API().Remove(tmp)
		return false, err
	}

	log.Infof("scraper: updated %s from %s", localPath, remoteURL)
	return true, nil
}
