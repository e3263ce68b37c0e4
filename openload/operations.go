package openload

import (
	"context"
	"fmt"
	"strconv"
)

// UploadOptions are the optional parameters of UploadLink and UploadFile.
type UploadOptions struct {
	// FolderID is the folder to upload to. Empty means the root folder.
	FolderID string
	// SHA1 is the expected digest. The upload fails if it does not match.
	SHA1 string
	// HTTPOnly requests plain http upload links only.
	HTTPOnly bool
}

func (o UploadOptions) params() map[string]string {
	params := map[string]string{}
	if o.FolderID != "" {
		params["folder"] = o.FolderID
	}
	if o.SHA1 != "" {
		params["sha1"] = o.SHA1
	}
	if o.HTTPOnly {
		params["httponly"] = "true"
	}
	return params
}

// RemoteUploadOptions are the optional parameters of RemoteUpload.
type RemoteUploadOptions struct {
	FolderID string
	// Headers are extra HTTP headers for the remote fetch, separated by
	// newlines (cookies, basic auth).
	Headers string
}

func (o RemoteUploadOptions) params() map[string]string {
	params := map[string]string{}
	if o.FolderID != "" {
		params["folder"] = o.FolderID
	}
	if o.Headers != "" {
		params["headers"] = o.Headers
	}
	return params
}

// RemoteUploadStatusOptions are the optional parameters of RemoteUploadStatus.
type RemoteUploadStatusOptions struct {
	// Limit caps the number of results. The service defaults to 5, max 100.
	Limit int
	// ID selects a single remote upload job.
	ID string
}

func (o RemoteUploadStatusOptions) params() map[string]string {
	params := map[string]string{}
	if o.Limit > 0 {
		params["limit"] = strconv.Itoa(o.Limit)
	}
	if o.ID != "" {
		params["id"] = o.ID
	}
	return params
}

func folderParams(folderID string) map[string]string {
	if folderID == "" {
		return map[string]string{}
	}
	return map[string]string{"folder": folderID}
}

// AccountInfo retrieves account information: storage, traffic and balance.
func (c *Client) AccountInfo(ctx context.Context) (*AccountInfo, error) {
	var result AccountInfo
	if err := c.get(ctx, "account/info", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PrepareDownload requests a download ticket for fileID. The ticket, and the
// solved captcha if one is attached, are then passed to GetDownloadLink.
func (c *Client) PrepareDownload(ctx context.Context, fileID string) (*DownloadTicket, error) {
	var result DownloadTicket
	if err := c.get(ctx, "file/dlticket", map[string]string{"file": fileID}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDownloadLink exchanges a ticket from PrepareDownload for a direct
// download link. captchaResponse is only sent when non-empty.
func (c *Client) GetDownloadLink(ctx context.Context, fileID, ticket, captchaResponse string) (*DownloadLink, error) {
	params := map[string]string{
		"file":   fileID,
		"ticket": ticket,
	}
	if captchaResponse != "" {
		params["captcha_response"] = captchaResponse
	}

	var result DownloadLink
	if err := c.get(ctx, "file/dl", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FileInfo returns metadata for fileID, keyed by file id.
func (c *Client) FileInfo(ctx context.Context, fileID string) (map[string]FileInfo, error) {
	result := map[string]FileInfo{}
	if err := c.get(ctx, "file/info", map[string]string{"file": fileID}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UploadLink requests a single-use upload URL.
func (c *Client) UploadLink(ctx context.Context, opts UploadOptions) (*UploadLink, error) {
	var result UploadLink
	if err := c.get(ctx, "file/ul", opts.params(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadFile uploads the local file at filePath. It requests an upload URL
// first; if that fails nothing is posted.
func (c *Client) UploadFile(ctx context.Context, filePath string, opts UploadOptions) (*UploadResult, error) {
	link, err := c.UploadLink(ctx, opts)
	if err != nil {
		return nil, err
	}
	if link.URL == "" {
		return nil, &TransportError{Op: "file/ul", Err: fmt.Errorf("response carries no upload url")}
	}

	var result UploadResult
	if err := c.upload(ctx, link.URL, filePath, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoteUpload asks the service to fetch remoteURL into the account.
func (c *Client) RemoteUpload(ctx context.Context, remoteURL string, opts RemoteUploadOptions) (*RemoteUpload, error) {
	params := opts.params()
	params["url"] = remoteURL

	var result RemoteUpload
	if err := c.get(ctx, "remotedl/add", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoteUploadStatus reports the state of remote upload jobs.
func (c *Client) RemoteUploadStatus(ctx context.Context, opts RemoteUploadStatusOptions) ([]RemoteUploadStatus, error) {
	var result remoteUploadStatusList
	if err := c.get(ctx, "remotedl/status", opts.params(), &result); err != nil {
		return nil, err
	}
	if result == nil {
		return []RemoteUploadStatus{}, nil
	}
	return result, nil
}

// ListFolder lists the folders and files in folderID, or in the root
// ("Home") folder when folderID is empty.
func (c *Client) ListFolder(ctx context.Context, folderID string) (*FolderListing, error) {
	var result FolderListing
	if err := c.get(ctx, "file/listfolder", folderParams(folderID), &result); err != nil {
		return nil, err
	}
	if result.Folders == nil {
		result.Folders = []FolderEntry{}
	}
	if result.Files == nil {
		result.Files = []FileEntry{}
	}
	return &result, nil
}

// ConvertFile starts converting fileID to a browser-streamable format.
// It reports whether the conversion was started.
func (c *Client) ConvertFile(ctx context.Context, fileID string) (bool, error) {
	var started bool
	if err := c.get(ctx, "file/convert", map[string]string{"file": fileID}, &started); err != nil {
		return false, err
	}
	return started, nil
}

// RunningConversions lists running conversions in folderID, or in the root
// folder when folderID is empty.
func (c *Client) RunningConversions(ctx context.Context, folderID string) ([]Conversion, error) {
	var result []Conversion
	if err := c.get(ctx, "file/runningconverts", folderParams(folderID), &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []Conversion{}
	}
	return result, nil
}

// FailedConversions is announced by the service but not available.
// It always returns ErrUnsupported.
func (c *Client) FailedConversions(ctx context.Context) ([]Conversion, error) {
	return nil, ErrUnsupported
}

// SplashImage returns the URL of the video splash image (thumbnail).
func (c *Client) SplashImage(ctx context.Context, fileID string) (string, error) {
	var splash string
	if err := c.get(ctx, "file/getsplash", map[string]string{"file": fileID}, &splash); err != nil {
		return "", err
	}
	return splash, nil
}
