// Package open hands URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/statepane/statepane/constant"
)

// ErrUnsupported is returned on platforms without a known opener.
var ErrUnsupported = fmt.Errorf("no URL opener for %s", runtime.GOOS)

// Start launches the opener for url and returns without waiting for it.
func Start(url string) error {
	cmd, err := opener(runtime.GOOS, url)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func opener(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case constant.Linux:
		return exec.Command("xdg-open", url), nil
	case constant.Darwin:
		return exec.Command("open", url), nil
	case constant.Android:
		return exec.Command("termux-open", url), nil
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", url), nil
	}
	return nil, ErrUnsupported
}
