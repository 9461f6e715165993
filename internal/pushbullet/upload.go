package pushbullet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/notify-you/notify-you/internal/file"
	"github.com/notify-you/notify-you/internal/pp"
	"github.com/notify-you/notify-you/internal/transport"
)

// DefaultFileType is the MIME type of files with unknown extensions.
const DefaultFileType = "application/octet-stream"

// DetectFileType guesses the MIME type (without parameters) from the extension.
func DetectFileType(path string) string {
	t := mime.TypeByExtension(filepath.Ext(path))
	if t == "" {
		return DefaultFileType
	}
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		return mediaType
	}
	return t
}

type uploadRequest struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

type uploadResponse struct {
	FileName  string            `json:"file_name"`
	FileType  string            `json:"file_type"`
	FileURL   string            `json:"file_url"`
	UploadURL string            `json:"upload_url"`
	Data      map[string]string `json:"data"`
	Error     *apiError         `json:"error"`
}

// SendFile pushes the local file at path to the device in three steps:
// asking for an upload URL, uploading the file there, and pushing the
// uploaded file. A link is attached to the push if it is not empty.
//
// Unlike [Device.Send], every failure is returned, wrapping [ErrUploadRequest],
// [ErrFileUpload], or [ErrPushSend] depending on the failing step. Steps are
// not retried, and an upload request is not withdrawn when a later step fails.
// A device not obtained from a [Client] gives [ErrInvalidArgument].
func (d Device) SendFile(ctx context.Context, ppfmt pp.PP, title, body, path, link string) error {
	if d.client == nil {
		return fmt.Errorf("%w: the device %q was not obtained from a client", ErrInvalidArgument, d.Describe())
	}

	fileName := filepath.Base(path)
	fileType := DetectFileType(path)

	upload, err := d.requestUpload(ctx, fileName, fileType)
	if err != nil {
		return err
	}
	if upload.FileName == "" {
		upload.FileName = fileName
	}
	if upload.FileType == "" {
		upload.FileType = fileType
	}

	if err := d.upload(ctx, upload, path); err != nil {
		return err
	}

	resp, err := d.post(ctx, File{
		Title:    title,
		Body:     body,
		FileName: upload.FileName,
		FileType: upload.FileType,
		FileURL:  upload.FileURL,
		URL:      link,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPushSend, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w (HTTP %d): %s", ErrPushSend, resp.StatusCode, describeBody(resp.Body))
	}

	ppfmt.Infof(pp.EmojiUpload, "Pushed the file %q to %q", upload.FileName, d.Describe())
	return nil
}

func (d Device) requestUpload(ctx context.Context, fileName, fileType string) (uploadResponse, error) {
	resp, err := transport.PostJSON(ctx, d.client.doer, d.client.url("/upload-request"), d.client.header(),
		uploadRequest{FileName: fileName, FileType: fileType})
	if err != nil {
		return uploadResponse{}, fmt.Errorf("%w: %w", ErrUploadRequest, err)
	}

	var upload uploadResponse
	if err := json.Unmarshal(resp.Body, &upload); err != nil {
		return uploadResponse{}, fmt.Errorf("%w: %w: %w", ErrUploadRequest, ErrDeserialization, err)
	}
	if upload.Error != nil {
		return uploadResponse{}, fmt.Errorf("%w: %s", ErrUploadRequest, upload.Error.String())
	}
	if upload.UploadURL == "" || upload.FileURL == "" {
		return uploadResponse{}, fmt.Errorf("%w: %w (HTTP %d): no upload_url or file_url",
			ErrUploadRequest, ErrDeserialization, resp.StatusCode)
	}

	return upload, nil
}

// uploadBody is the upload form: the fields and the part header from memory,
// then the file itself, then the closing boundary.
type uploadBody struct {
	io.Reader
	file   io.Closer
	length int
}

func (b *uploadBody) Len() int     { return b.length }
func (b *uploadBody) Close() error { return b.file.Close() }

// multipartBody returns the content type of the upload form and a function
// opening the form for reading. The file is reopened on each call and stays
// open only until the returned reader is closed.
func multipartBody(fields map[string]string, fileName, path string) (retryablehttp.ReaderFunc, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", err //nolint:wrapcheck
		}
	}
	if _, err := w.CreateFormFile("file", fileName); err != nil {
		return nil, "", err //nolint:wrapcheck
	}
	split := buf.Len()
	if err := w.Close(); err != nil {
		return nil, "", err //nolint:wrapcheck
	}
	head, tail := buf.Bytes()[:split], buf.Bytes()[split:]

	open := func() (io.Reader, error) {
		f, err := file.Open(path)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		info, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, err //nolint:wrapcheck
		}
		return &uploadBody{
			Reader: io.MultiReader(bytes.NewReader(head), f, bytes.NewReader(tail)),
			file:   f,
			length: len(head) + int(info.Size()) + len(tail),
		}, nil
	}

	return open, w.FormDataContentType(), nil
}

func (d Device) upload(ctx context.Context, upload uploadResponse, path string) error {
	open, contentType, err := multipartBody(upload.Data, upload.FileName, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileUpload, err)
	}

	resp, err := transport.PostStream(ctx, d.client.doer, upload.UploadURL, nil, contentType, open)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileUpload, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w (HTTP %d): %s", ErrFileUpload, resp.StatusCode, describeBody(resp.Body))
	}

	return nil
}
