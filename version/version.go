package version

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/metafates/gache"
	"github.com/pikbatch/pikbatch/filesystem"
	"github.com/pikbatch/pikbatch/where"
)

// ReleasesURL is the GitHub API endpoint describing the latest release.
var ReleasesURL = "https://api.github.com/repos/pikbatch/pikbatch/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent release version without the "v" prefix, cached for two days.
func Latest() (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}
	if !expired && ver != "" {
		return ver, nil
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	resp, err := resty.New().
		SetTimeout(10 * time.Second).
		R().
		SetResult(&release).
		Get(ReleasesURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("latest release: HTTP %d", resp.StatusCode())
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}
