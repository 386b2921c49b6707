package drive

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/log"
)

// Request is the body of an offline download request.
type Request struct {
	Kind       string `json:"kind"`
	UploadType string `json:"upload_type"`
	URL        URL    `json:"url"`
	ParentID   string `json:"parent_id"`
	FolderType string `json:"folder_type"`
}

// URL wraps the link to download.
type URL struct {
	URL string `json:"url"`
}

// NewRequest builds the body for magnet. An empty parentID targets the drive root.
func NewRequest(magnet, parentID string) Request {
	return Request{
		Kind:       constant.KindFile,
		UploadType: constant.UploadTypeURL,
		URL:        URL{URL: magnet},
		ParentID:   parentID,
	}
}

// Options configures a Client.
type Options struct {
	Endpoint   string
	ParentID   string
	UserAgent  string
	HTTPClient *http.Client
}

// Client submits offline download requests. It never retries and never treats an
// HTTP status as an error on its own: every body goes through Classify.
type Client struct {
	resty    *resty.Client
	endpoint string
	parentID string
}

// NewClient creates a Client. Zero-valued options fall back to the fixed endpoint and root folder.
func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = constant.DriveFilesEndpoint
	}
	if opts.UserAgent == "" {
		opts.UserAgent = constant.UserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}

	r := resty.NewWithClient(opts.HTTPClient).
		SetRetryCount(0).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json")

	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"url":    resp.Request.URL,
			"time":   resp.Time(),
		}).Debug("drive response")
		return nil
	})

	return &Client{
		resty:    r,
		endpoint: opts.Endpoint,
		parentID: opts.ParentID,
	}
}

// Submit posts one magnet link with the bearer token and classifies the answer.
// Transport errors are returned as a failed Result, never as an error.
func (c *Client) Submit(ctx context.Context, token, magnet string) Result {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(NewRequest(magnet, c.parentID)).
		Post(c.endpoint)
	if err != nil {
		return Failure(KindTransport, err.Error())
	}

	return Classify(resp.Body())
}
