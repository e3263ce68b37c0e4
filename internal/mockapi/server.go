// Package mockapi serves a fake openload API for tests. Every request is
// recorded so tests can assert on paths, query strings and call counts.
package mockapi

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// Version is the API version segment the server answers on.
	Version = "1"

	// UploadEndpoint is the key under which posted uploads are recorded.
	UploadEndpoint = "upload"
	// UploadField is the multipart field the fake upload server reads.
	UploadField = "upload_file"
)

// Request is a recorded API call.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values

	// Set for uploads only.
	FileName string
	FileSize int64
}

// Response is a canned envelope. If Raw is set it is written verbatim
// instead of an envelope.
type Response struct {
	Status int
	Msg    string
	Result any
	Raw    string
}

// Server is a running fake API.
type Server struct {
	// URL is the API base URL, with the version segment and trailing slash.
	URL string

	srv *httptest.Server

	mu        sync.Mutex
	requests  []Request
	responses map[string]Response
}

// New starts a fake API with the default fixtures installed.
func New() *Server {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{responses: make(map[string]Response)}

	router.POST("/upload/:token", s.handleUpload)
	router.GET("/:version/*endpoint", s.handleAPI)

	s.srv = httptest.NewServer(router)
	s.URL = s.srv.URL + "/" + Version + "/"

	for endpoint, resp := range defaultFixtures(s.srv.URL) {
		s.responses[endpoint] = resp
	}

	return s
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// SetResponse replaces the canned response for endpoint, e.g. "file/ul" or
// UploadEndpoint.
func (s *Server) SetResponse(endpoint string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[endpoint] = resp
}

// Requests returns a copy of every recorded call, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many calls hit endpoint.
func (s *Server) Count(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Endpoint == endpoint {
			n++
		}
	}
	return n
}

// Last returns the most recent call to endpoint.
func (s *Server) Last(endpoint string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Endpoint == endpoint {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

func (s *Server) record(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

func (s *Server) lookup(endpoint string) (Response, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.responses[endpoint]
	return resp, ok
}

func (s *Server) handleAPI(c *gin.Context) {
	endpoint := strings.TrimPrefix(c.Param("endpoint"), "/")
	s.record(Request{
		Method:   c.Request.Method,
		Endpoint: endpoint,
		Query:    c.Request.URL.Query(),
	})

	if c.Param("version") != Version {
		writeEnvelope(c, Response{Status: http.StatusNotFound, Msg: "unknown api version"})
		return
	}

	resp, ok := s.lookup(endpoint)
	if !ok {
		writeEnvelope(c, Response{Status: http.StatusNotFound, Msg: "unknown endpoint " + endpoint})
		return
	}
	writeEnvelope(c, resp)
}

func (s *Server) handleUpload(c *gin.Context) {
	req := Request{
		Method:   c.Request.Method,
		Endpoint: UploadEndpoint,
		Query:    c.Request.URL.Query(),
	}

	header, err := c.FormFile(UploadField)
	if err != nil {
		s.record(req)
		writeEnvelope(c, Response{Status: http.StatusBadRequest, Msg: "missing " + UploadField})
		return
	}

	f, err := header.Open()
	if err != nil {
		s.record(req)
		writeEnvelope(c, Response{Status: http.StatusInternalServerError, Msg: err.Error()})
		return
	}
	defer f.Close()

	h := sha1.New()
	size, err := io.Copy(h, f)
	if err != nil {
		s.record(req)
		writeEnvelope(c, Response{Status: http.StatusInternalServerError, Msg: err.Error()})
		return
	}
	req.FileName = header.Filename
	req.FileSize = size
	s.record(req)

	if resp, ok := s.lookup(UploadEndpoint); ok {
		writeEnvelope(c, resp)
		return
	}

	writeEnvelope(c, Response{
		Status: http.StatusOK,
		Msg:    "OK",
		Result: gin.H{
			"content_type": "application/octet-stream",
			"id":           "UPPjeAk--30",
			"name":         header.Filename,
			"sha1":         hex.EncodeToString(h.Sum(nil)),
			"size":         size,
			"url":          "https://openload.co/f/UPPjeAk--30/" + header.Filename,
		},
	})
}

func writeEnvelope(c *gin.Context, resp Response) {
	if resp.Raw != "" {
		c.Data(http.StatusOK, "application/json", []byte(resp.Raw))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": resp.Status,
		"msg":    resp.Msg,
		"result": resp.Result,
	})
}
