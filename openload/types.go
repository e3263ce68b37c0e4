package openload

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Int64 decodes from a JSON number or a quoted number. The service is not
// consistent about which one it sends.
type Int64 int64

func (i *Int64) UnmarshalJSON(b []byte) error {
	s, ok := unquoteScalar(b)
	if !ok {
		*i = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = Int64(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("invalid integer %q", s)
	}
	*i = Int64(f)
	return nil
}

// Float64 decodes from a JSON number or a quoted number.
type Float64 float64

func (f *Float64) UnmarshalJSON(b []byte) error {
	s, ok := unquoteScalar(b)
	if !ok {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = Float64(v)
	return nil
}

// FlexString decodes from a JSON string or number. false and null decode
// to the empty string.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	v, ok := unquoteScalar(b)
	if !ok {
		*s = ""
		return nil
	}
	*s = FlexString(v)
	return nil
}

func (s FlexString) String() string { return string(s) }

// unquoteScalar returns the textual value of a JSON scalar. ok is false for
// null, false and empty strings.
func unquoteScalar(b []byte) (string, bool) {
	raw := strings.TrimSpace(string(b))
	switch raw {
	case "", "null", "false", `""`:
		return "", false
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return "", false
		}
		return s, s != ""
	}
	return raw, true
}

// AccountInfo is the result of account/info.
type AccountInfo struct {
	ExtID       string  `json:"extid"`
	Email       string  `json:"email"`
	SignupAt    string  `json:"signup_at"`
	StorageLeft Int64   `json:"storage_left"`
	StorageUsed Int64   `json:"storage_used"`
	Traffic     Traffic `json:"traffic"`
	Balance     Float64 `json:"balance"`
}

// Traffic holds the account's bandwidth counters. -1 means unlimited.
type Traffic struct {
	Left    Int64 `json:"left"`
	Used24h Int64 `json:"used_24h"`
}

// DownloadTicket is the result of file/dlticket. It is single-use and must
// be handed to GetDownloadLink.
type DownloadTicket struct {
	Ticket     string     `json:"ticket"`
	CaptchaURL FlexString `json:"captcha_url"`
	CaptchaW   Int64      `json:"captcha_w"`
	CaptchaH   Int64      `json:"captcha_h"`
	WaitTime   Int64      `json:"wait_time"`
	ValidUntil string     `json:"valid_until"`
}

// NeedsCaptcha returns true if the ticket carries a captcha challenge
func (t *DownloadTicket) NeedsCaptcha() bool {
	return t.CaptchaURL != ""
}

// DownloadLink is the result of file/dl. URL is the direct download link.
type DownloadLink struct {
	Name        string `json:"name"`
	Size        Int64  `json:"size"`
	SHA1        string `json:"sha1"`
	ContentType string `json:"content_type"`
	UploadAt    string `json:"upload_at"`
	URL         string `json:"url"`
	Token       string `json:"token"`
}

// FileInfo describes one file in a file/info result.
type FileInfo struct {
	ID          string `json:"id"`
	Status      Int64  `json:"status"`
	Name        string `json:"name"`
	Size        Int64  `json:"size"`
	SHA1        string `json:"sha1"`
	ContentType string `json:"content_type"`
}

// UploadLink is the result of file/ul.
type UploadLink struct {
	URL        string `json:"url"`
	ValidUntil string `json:"valid_until"`
}

// UploadResult is returned by the upload server after the file body is posted.
type UploadResult struct {
	ContentType string `json:"content_type"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	SHA1        string `json:"sha1"`
	Size        Int64  `json:"size"`
	URL         string `json:"url"`
}

// RemoteUpload is the result of remotedl/add.
type RemoteUpload struct {
	ID       FlexString `json:"id"`
	FolderID FlexString `json:"folderid"`
}

// RemoteUploadStatus describes one remote upload job.
type RemoteUploadStatus struct {
	ID          FlexString `json:"id"`
	RemoteURL   string     `json:"remoteurl"`
	Status      string     `json:"status"`
	BytesLoaded Int64      `json:"bytes_loaded"`
	BytesTotal  Int64      `json:"bytes_total"`
	FolderID    FlexString `json:"folderid"`
	Added       string     `json:"added"`
	LastUpdate  string     `json:"last_update"`
	ExtID       FlexString `json:"extid"`
	URL         FlexString `json:"url"`
}

// remoteUploadStatusList accepts either a list of jobs or an object keyed by
// job id. The object form is ordered by id.
type remoteUploadStatusList []RemoteUploadStatus

func (l *remoteUploadStatusList) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		var list []RemoteUploadStatus
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*l = list
		return nil
	}

	var byID map[string]RemoteUploadStatus
	if err := json.Unmarshal(trimmed, &byID); err != nil {
		return err
	}
	keys := make([]string, 0, len(byID))
	for k := range byID {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	list := make([]RemoteUploadStatus, 0, len(keys))
	for _, k := range keys {
		job := byID[k]
		if job.ID == "" {
			job.ID = FlexString(k)
		}
		list = append(list, job)
	}
	*l = list
	return nil
}

// FolderListing is the result of file/listfolder. Both lists are non-nil.
type FolderListing struct {
	Folders []FolderEntry `json:"folders"`
	Files   []FileEntry   `json:"files"`
}

// FolderEntry is a sub-folder in a listing.
type FolderEntry struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// FileEntry is a file in a listing.
type FileEntry struct {
	Name          string     `json:"name"`
	SHA1          string     `json:"sha1"`
	FolderID      FlexString `json:"folderid"`
	UploadAt      Int64      `json:"upload_at"`
	Status        string     `json:"status"`
	Size          Int64      `json:"size"`
	ContentType   string     `json:"content_type"`
	DownloadCount Int64      `json:"download_count"`
	CStatus       string     `json:"cstatus"`
	Link          string     `json:"link"`
	LinkExtID     string     `json:"linkextid"`
}

// Conversion describes a running file conversion.
type Conversion struct {
	Name       string     `json:"name"`
	ID         FlexString `json:"id"`
	Status     string     `json:"status"`
	LastUpdate string     `json:"last_update"`
	Progress   Float64    `json:"progress"`
	Retries    Int64      `json:"retries"`
	Link       string     `json:"link"`
	LinkExtID  string     `json:"linkextid"`
}
