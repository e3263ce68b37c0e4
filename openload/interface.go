package openload

import "context"

// ClientAPI defines the methods required to interact with openload.
// It mirrors the concrete client so it can be mocked in tests.
type ClientAPI interface {
	AccountInfo(ctx context.Context) (*AccountInfo, error)
	PrepareDownload(ctx context.Context, fileID string) (*DownloadTicket, error)
	GetDownloadLink(ctx context.Context, fileID, ticket, captchaResponse string) (*DownloadLink, error)
	FileInfo(ctx context.Context, fileID string) (map[string]FileInfo, error)
	UploadLink(ctx context.Context, opts UploadOptions) (*UploadLink, error)
	UploadFile(ctx context.Context, filePath string, opts UploadOptions) (*UploadResult, error)
	RemoteUpload(ctx context.Context, remoteURL string, opts RemoteUploadOptions) (*RemoteUpload, error)
	RemoteUploadStatus(ctx context.Context, opts RemoteUploadStatusOptions) ([]RemoteUploadStatus, error)
	ListFolder(ctx context.Context, folderID string) (*FolderListing, error)
	ConvertFile(ctx context.Context, fileID string) (bool, error)
	RunningConversions(ctx context.Context, folderID string) ([]Conversion, error)
	FailedConversions(ctx context.Context) ([]Conversion, error)
	SplashImage(ctx context.Context, fileID string) (string, error)
}
