// Package update checks GitHub for newer releases and runs the installer.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// ReleaseURL is the GitHub API endpoint describing the latest release.
	ReleaseURL = "https://api.github.com/repos/nickcramaro/obsidian-cli/releases/latest"
	// InstallScript is piped into bash by Run.
	InstallScript = "curl -fsSL https://raw.githubusercontent.com/nickcramaro/obsidian-cli/main/install.sh | bash"

	userAgent = "obsidian-cli"
)

// Checker looks up the latest published release.
type Checker struct {
	Client  *http.Client
	URL     string
	Current string
}

// NewChecker returns a Checker for the public release feed.
func NewChecker(current string) *Checker {
	return &Checker{Client: http.DefaultClient, URL: ReleaseURL, Current: current}
}

// Latest returns the newest released version and whether it is newer than
// Current. Lookup failures are reported as "no update".
func (c *Checker) Latest(ctx context.Context) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)

	hc := c.Client
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", false
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest == "" || !newer(latest, c.Current) {
		return "", false
	}
	return latest, true
}

// newer compares semantically when both sides parse, and falls back to plain
// inequality otherwise.
func newer(latest, current string) bool {
	lv, err1 := semver.NewVersion(latest)
	cv, err2 := semver.NewVersion(current)
	if err1 != nil || err2 != nil {
		return latest != current
	}
	return lv.GreaterThan(cv)
}

// Runner executes the install script.
type Runner struct {
	Shell  string
	Script string
}

// NewRunner returns a Runner for the published install script.
func NewRunner() *Runner {
	return &Runner{Shell: "bash", Script: InstallScript}
}

// Run executes the install script with the given output streams.
func (r *Runner) Run(ctx context.Context, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, r.Shell, "-c", r.Script)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("Update failed with code %d", exitErr.ExitCode()) //nolint:stylecheck
		}
		return fmt.Errorf("Failed to run update: %w", err) //nolint:stylecheck
	}
	return nil
}
